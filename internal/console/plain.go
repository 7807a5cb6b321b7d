package console

import "io"

// Plain is a Sink that drops highlights and never clears.
type Plain struct {
	w io.Writer
}

func NewPlain(w io.Writer) *Plain {
	return &Plain{w: w}
}

func (p *Plain) SetHighlight(Highlight) error { return nil }

func (p *Plain) WriteString(s string) (int, error) {
	return io.WriteString(p.w, s)
}

func (p *Plain) Clear() error { return nil }
