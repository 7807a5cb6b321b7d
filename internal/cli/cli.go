package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"github.com/vk/eratosgo/internal/app"
	"github.com/vk/eratosgo/internal/console"
	"github.com/vk/eratosgo/internal/sieve"
)

// ProgramName is used in the usage text.
const ProgramName = "eratosgo"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usageError prints the usage text to errW and returns an ExitError with
// code 1 carrying msg.
func usageError(flagSet *pflag.FlagSet, errW io.Writer, msg string) *ExitError {
	printUsage(flagSet, errW)
	return &ExitError{Code: 1, Message: msg}
}

func printUsage(flagSet *pflag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `Usage: %s [-h] [-n <int>]

Prints every integer from 1 to N in a grid, highlighting the primes found by
the sieve of Eratosthenes, then lists the primes and their count.
Without -n the bound is read interactively, e.g. %d.

Options:

`, ProgramName, app.DefaultBound)
	fmt.Fprintln(w, flagSet.FlagUsages())
}

func newFlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(ProgramName, pflag.ContinueOnError)
	// Usage and errors are printed by Parse itself, to the right stream.
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() {}
	flagSet.SortFlags = false

	flagSet.StringP("number", "n", "", "Number to print all primes up to.")
	flagSet.BoolP("help", "h", false, "Show usage.")
	flagSet.String("color", string(console.ColorAuto), "Color output. Options: 'auto', 'always', 'never'.")
	flagSet.Bool("no-clear", false, "Do not clear the screen before each scan.")
	flagSet.Bool("no-pause", false, "Do not wait for Enter after the banner.")
	flagSet.Bool("palette", false, "Print the terminal's 256-color palette and exit.")
	flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	return flagSet
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Help goes to outW; usage for malformed arguments goes to errW.
func Parse(args []string, outW, errW io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := newFlagSet()

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(flagSet, outW)
			return nil, true, nil
		}
		return nil, false, usageError(flagSet, errW, err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	if help, _ := flagSet.GetBool("help"); help {
		printUsage(flagSet, outW)
		return nil, true, nil
	}

	for _, arg := range flagSet.Args() {
		if arg == "-" {
			return nil, false, usageError(flagSet, errW, "unexpected argument: -")
		}
	}
	if extra := flagSet.Args(); len(extra) > 0 {
		slog.Warn("Ignoring positional arguments.", "args", strings.Join(extra, " "))
	}

	cfg := app.Config{}
	if flagSet.Changed("number") {
		raw, _ := flagSet.GetString("number")
		bound, err := sieve.ParseBound(raw)
		if err != nil {
			return nil, false, usageError(flagSet, errW, fmt.Sprintf("invalid value for -n/--number: %v", err))
		}
		cfg.Bound, cfg.HasBound = bound, true
	}

	colorMode, _ := flagSet.GetString("color")
	cfg.ColorMode = console.ColorMode(strings.ToLower(colorMode))
	noClear, _ := flagSet.GetBool("no-clear")
	cfg.ClearScreen = !noClear
	noPause, _ := flagSet.GetBool("no-pause")
	cfg.Pause = !noPause
	cfg.Palette, _ = flagSet.GetBool("palette")
	logFormat, _ := flagSet.GetString("log-format")
	cfg.LogFormat = strings.ToLower(logFormat)
	logLevel, _ := flagSet.GetString("log-level")
	cfg.LogLevel = strings.ToLower(logLevel)

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, usageError(flagSet, errW, err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
