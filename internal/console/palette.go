package console

import (
	"fmt"
	"io"

	gookit "github.com/gookit/color"
)

// Palette writes the 256 indexed terminal colors, each number drawn in its
// own color, ten per row. It is a diagnostic for checking what the
// terminal can display. When gookit detects no color support the numbers
// are written uncolored.
func Palette(w io.Writer) error {
	for k := 0; k < 256; k++ {
		if k%10 == 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		cell := fmt.Sprintf("%10d", k)
		if _, err := io.WriteString(w, gookit.C256(uint8(k)).Sprint(cell)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
