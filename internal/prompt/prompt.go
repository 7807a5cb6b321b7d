// Package prompt reads the interactive answers the program needs from a
// line-oriented input: the scan bound, the "go again" confirmation and the
// initial keypress. Every prompt re-asks on invalid input and only gives up
// when the input ends.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vk/eratosgo/internal/ctxlog"
	"github.com/vk/eratosgo/internal/sieve"
)

// ErrInputClosed is returned when the input reaches EOF before a valid
// answer was read.
var ErrInputClosed = errors.New("input closed")

// Prompter writes questions to out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// readLine returns the next line with surrounding whitespace removed. A
// final line without a newline is still returned; ErrInputClosed follows
// on the next call.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) print(s string) error {
	if _, err := io.WriteString(p.out, s); err != nil {
		return fmt.Errorf("writing prompt: %w", err)
	}
	return nil
}

// WaitEnter asks the user to press Enter and consumes one line.
func (p *Prompter) WaitEnter(ctx context.Context) error {
	if err := p.print("\nPress Enter to continue\n"); err != nil {
		return err
	}
	line, err := p.readLine()
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Continue acknowledged.", "input", line)
	return nil
}

// Bound reads a non-negative integer, re-prompting until one is entered.
func (p *Prompter) Bound(ctx context.Context) (uint64, error) {
	logger := ctxlog.FromContext(ctx)
	if err := p.print("\nEnter an integer: "); err != nil {
		return 0, err
	}
	for {
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		n, err := sieve.ParseBound(line)
		if err == nil {
			logger.Debug("Bound accepted.", "bound", n)
			return n, nil
		}
		logger.Debug("Bound rejected.", "input", line, "error", err)
		if err := p.print("\nInvalid integer value! \n\nEnter an integer: "); err != nil {
			return 0, err
		}
	}
}

// Restart asks whether to run again. Only a single Y or N, in either case,
// is accepted; anything else repeats the question.
func (p *Prompter) Restart(ctx context.Context) (bool, error) {
	logger := ctxlog.FromContext(ctx)
	if err := p.print("\nGo again? [Y/n]: "); err != nil {
		return false, err
	}
	for {
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch line {
		case "Y", "y":
			return true, nil
		case "N", "n":
			return false, nil
		}
		logger.Debug("Restart answer rejected.", "input", line)
		if err := p.print("Go again? [Y/n]: "); err != nil {
			return false, err
		}
	}
}
