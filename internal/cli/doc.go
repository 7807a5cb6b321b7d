// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags into the application's internal configuration.
//
// Any malformed argument prints the usage text to the error stream and
// yields an ExitError with code 1; -h/--help prints it to standard output
// and asks the caller to exit cleanly.
package cli
