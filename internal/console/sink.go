package console

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Highlight is the display state applied to subsequently written text.
type Highlight uint8

const (
	// Normal is the terminal's default rendition.
	Normal Highlight = iota
	// Hidden text occupies its columns but is not visible.
	Hidden
	// Prime marks a newly found prime.
	Prime
	// Composite marks a number with a non-trivial divisor.
	Composite
)

func (h Highlight) String() string {
	switch h {
	case Normal:
		return "normal"
	case Hidden:
		return "hidden"
	case Prime:
		return "prime"
	case Composite:
		return "composite"
	default:
		return fmt.Sprintf("highlight(%d)", uint8(h))
	}
}

// Sink is the destination for all program output.
type Sink interface {
	// SetHighlight changes how text written afterwards is displayed.
	SetHighlight(h Highlight) error
	// WriteString writes s using the current highlight.
	WriteString(s string) (int, error)
	// Clear erases the screen and homes the cursor, where supported.
	Clear() error
}

// ColorMode selects between colored and plain output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates s as a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("invalid color mode %q: must be 'auto', 'always' or 'never'", s)
	}
}

// New returns a Terminal sink when mode asks for color, or when mode is
// ColorAuto and w is an interactive terminal. Otherwise it returns Plain.
func New(w io.Writer, mode ColorMode) Sink {
	switch mode {
	case ColorAlways:
		return NewTerminal(w)
	case ColorNever:
		return NewPlain(w)
	default:
		if IsTerminal(w) {
			return NewTerminal(w)
		}
		return NewPlain(w)
	}
}

// IsTerminal reports whether w is backed by a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
