package console

import (
	"io"

	"github.com/fatih/color"
)

// clearSequence moves the cursor home and erases the display.
const clearSequence = "\x1b[H\x1b[2J"

// Terminal is a Sink for ANSI-capable terminals.
type Terminal struct {
	w       io.Writer
	styles  map[Highlight]*color.Color
	current *color.Color
}

// NewTerminal returns a Terminal writing to w. Colors are always emitted;
// whether w deserves them is decided by New.
func NewTerminal(w io.Writer) *Terminal {
	styles := map[Highlight]*color.Color{
		Hidden:    color.New(color.Concealed),
		Prime:     color.New(color.FgHiGreen),
		Composite: color.New(color.FgHiBlack),
	}
	for _, c := range styles {
		c.EnableColor()
	}
	return &Terminal{w: w, styles: styles}
}

// SetHighlight implements Sink. Unknown highlights fall back to Normal.
func (t *Terminal) SetHighlight(h Highlight) error {
	t.current = t.styles[h]
	return nil
}

// WriteString implements Sink.
func (t *Terminal) WriteString(s string) (int, error) {
	if t.current == nil {
		return io.WriteString(t.w, s)
	}
	// Sprint wraps s in its own set/reset pair, so a failed write never
	// leaves the terminal stuck in a color.
	return io.WriteString(t.w, t.current.Sprint(s))
}

// Clear implements Sink.
func (t *Terminal) Clear() error {
	_, err := io.WriteString(t.w, clearSequence)
	return err
}
