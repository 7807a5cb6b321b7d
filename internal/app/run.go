package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vk/eratosgo/internal/console"
	"github.com/vk/eratosgo/internal/ctxlog"
	"github.com/vk/eratosgo/internal/prompt"
	"github.com/vk/eratosgo/internal/render"
	"github.com/vk/eratosgo/internal/sieve"
)

const banner = "Sieve of Eratosthenes\n\n"

// Run executes the interactive session: an optional pause, then scans
// repeated for as long as the user answers yes. End of input ends the
// session cleanly.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.Palette {
		a.logger.Debug("Printing color palette.")
		return console.Palette(a.outW)
	}

	err := a.session(ctx)
	if errors.Is(err, prompt.ErrInputClosed) {
		a.logger.Info("Input closed, ending session.")
		err = nil
	}
	if err != nil {
		return err
	}

	if err := a.write("\nBye!\n"); err != nil {
		return err
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) session(ctx context.Context) error {
	if err := a.write(banner); err != nil {
		return err
	}
	if a.config.Pause {
		if err := a.prompter.WaitEnter(ctx); err != nil {
			return err
		}
	}

	bound, haveBound := a.config.Bound, a.config.HasBound
	for round := 1; ; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if a.config.ClearScreen {
			if err := a.sink.Clear(); err != nil {
				return fmt.Errorf("clearing screen: %w", err)
			}
		}

		if !haveBound {
			var err error
			if bound, err = a.prompter.Bound(ctx); err != nil {
				return err
			}
		}
		// A bound from the command line only applies to the first round.
		haveBound = false

		if _, err := a.scan(ctx, round, bound); err != nil {
			return err
		}

		again, err := a.prompter.Restart(ctx)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// scan runs the sieve up to bound, drawing the live grid, the summary of
// primes and the total.
func (a *App) scan(ctx context.Context, round int, bound uint64) (*sieve.Set, error) {
	logger := ctxlog.FromContext(ctx).With("round", round, "bound", bound)
	logger.Debug("Scan started.")
	start := time.Now()

	primes := sieve.NewSet()
	live := render.NewLive(a.sink)
	sieve.Scan(bound, primes, live.Visit)
	if err := live.Close(); err != nil {
		return nil, err
	}

	if err := a.write("\n\nAll the primes sieved below:\n"); err != nil {
		return nil, err
	}
	if err := render.Columns(a.sink, primes.All()); err != nil {
		return nil, err
	}
	total := fmt.Sprintf("\n\nTotal number of primes between 1 and %d is: %d\n", bound, primes.Len())
	if err := a.write(total); err != nil {
		return nil, err
	}

	logger.Debug("Scan finished.", "primes", primes.Len(), "duration", time.Since(start))
	return primes, nil
}

func (a *App) write(s string) error {
	if _, err := a.sink.WriteString(s); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
