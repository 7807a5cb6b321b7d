// Package console defines the output sink the rest of the program writes
// to. A Sink understands two things: the current highlight state and plain
// text. Implementations decide what a highlight looks like.
//
//   - Terminal renders highlights as ANSI colors via github.com/fatih/color.
//   - Plain ignores highlights, so piped output carries the same numbers
//     without escape sequences.
//   - Recorder captures every call for assertions in tests.
//
// New picks between Terminal and Plain from a ColorMode.
package console
