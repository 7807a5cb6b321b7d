// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the interactive scan-and-repeat loop,
// decoupled from the CLI entrypoint. All console output goes through a
// console.Sink and all input through a prompt.Prompter, so a whole session
// can be driven from tests.
package app
