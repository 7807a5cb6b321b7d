// Package render lays out integers as a fixed-width grid on a console.Sink.
// Live draws the scan as it happens, one highlighted cell per integer;
// Columns prints an already collected sequence.
package render

import (
	"fmt"
	"iter"

	"github.com/vk/eratosgo/internal/console"
	"github.com/vk/eratosgo/internal/sieve"
)

const (
	// CellWidth is the right-aligned width of every cell.
	CellWidth = 10
	// PerRow is the number of cells on a full row.
	PerRow = 10
)

func cell(v uint64) string {
	return fmt.Sprintf("%*d", CellWidth, v)
}

// highlightFor maps a classification to its display state.
func highlightFor(c sieve.Class) console.Highlight {
	switch c {
	case sieve.Prime:
		return console.Prime
	case sieve.Composite:
		return console.Composite
	default:
		return console.Hidden
	}
}

// Live renders a sieve scan cell by cell. Visit has the signature expected
// by sieve.Scan. The first write error is kept and all later output is
// skipped; Close reports it.
type Live struct {
	sink  console.Sink
	index uint64
	err   error
}

func NewLive(sink console.Sink) *Live {
	return &Live{sink: sink}
}

// Visit draws integer i with the highlight for c. A newline starts every
// row, including the first.
func (l *Live) Visit(i uint64, c sieve.Class) {
	if l.err != nil {
		return
	}
	if l.index%PerRow == 0 {
		if _, l.err = l.sink.WriteString("\n"); l.err != nil {
			return
		}
	}
	l.index++
	if l.err = l.sink.SetHighlight(highlightFor(c)); l.err != nil {
		return
	}
	_, l.err = l.sink.WriteString(cell(i))
}

// Close restores the normal highlight and returns the first error seen.
func (l *Live) Close() error {
	if err := l.sink.SetHighlight(console.Normal); err != nil && l.err == nil {
		l.err = err
	}
	if l.err != nil {
		return fmt.Errorf("rendering grid: %w", l.err)
	}
	return nil
}

// Columns prints values in rows of PerRow cells, in the order the iterator
// yields them. A newline starts every row, including the first.
func Columns(sink console.Sink, values iter.Seq[uint64]) error {
	i := 0
	for v := range values {
		if i%PerRow == 0 {
			if _, err := sink.WriteString("\n"); err != nil {
				return fmt.Errorf("printing columns: %w", err)
			}
		}
		if _, err := sink.WriteString(cell(v)); err != nil {
			return fmt.Errorf("printing columns: %w", err)
		}
		i++
	}
	return nil
}
