package render

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/eratosgo/internal/console"
	"github.com/vk/eratosgo/internal/sieve"
)

// rows splits grid output into its rows, dropping the leading newline.
func rows(t *testing.T, text string) [][]uint64 {
	t.Helper()
	require.True(t, text == "" || strings.HasPrefix(text, "\n"), "grid must start with a newline")

	var out [][]uint64
	for _, line := range strings.Split(strings.TrimPrefix(text, "\n"), "\n") {
		if line == "" {
			continue
		}
		require.Zero(t, len(line)%CellWidth, "row %q is not a whole number of cells", line)
		var row []uint64
		for _, f := range strings.Fields(line) {
			v, err := strconv.ParseUint(f, 10, 64)
			require.NoError(t, err)
			row = append(row, v)
		}
		out = append(out, row)
	}
	return out
}

func TestColumns_RowsOfTenAscending(t *testing.T) {
	t.Parallel()

	for _, bound := range []uint64{0, 10, 29, 30, 2000} {
		t.Run(strconv.FormatUint(bound, 10), func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			primes := sieve.Primes(bound)
			rec := &console.Recorder{}

			// --- Act ---
			err := Columns(rec, primes.All())

			// --- Assert ---
			require.NoError(t, err)
			grid := rows(t, rec.Text())

			var flat []uint64
			for i, row := range grid {
				if i < len(grid)-1 {
					assert.Len(t, row, PerRow, "row %d", i)
				} else {
					assert.NotEmpty(t, row)
					assert.LessOrEqual(t, len(row), PerRow)
				}
				flat = append(flat, row...)
			}
			if primes.Len() == 0 {
				assert.Empty(t, flat)
			} else {
				assert.Equal(t, primes.Values(), flat)
			}
		})
	}
}

func TestColumns_CellFormat(t *testing.T) {
	t.Parallel()

	rec := &console.Recorder{}
	require.NoError(t, Columns(rec, sieve.Primes(10).All()))

	assert.Equal(t, "\n         2         3         5         7", rec.Text())
}

func TestColumns_PropagatesWriteError(t *testing.T) {
	t.Parallel()

	boom := errors.New("broken pipe")
	rec := &console.Recorder{Err: boom}

	err := Columns(rec, sieve.Primes(10).All())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, rec.Count(console.OpWrite), "printing must stop at the first failure")
}

func TestLive_HighlightsByClass(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	rec := &console.Recorder{}
	live := NewLive(rec)

	// --- Act ---
	sieve.Scan(12, sieve.NewSet(), live.Visit)
	require.NoError(t, live.Close())

	// --- Assert ---
	var cells []console.Styled
	for _, s := range rec.Styled() {
		if s.Text != "\n" {
			cells = append(cells, s)
		}
	}
	require.Len(t, cells, 12)
	assert.Equal(t, console.Hidden, cells[0].Highlight, "1 is suppressed")
	assert.Equal(t, cell(1), cells[0].Text)

	wantPrime := map[int]bool{2: true, 3: true, 5: true, 7: true, 11: true}
	for i, c := range cells[1:] {
		n := i + 2
		assert.Equal(t, cell(uint64(n)), c.Text)
		if wantPrime[n] {
			assert.Equal(t, console.Prime, c.Highlight, "n=%d", n)
		} else {
			assert.Equal(t, console.Composite, c.Highlight, "n=%d", n)
		}
	}

	last := rec.Calls[len(rec.Calls)-1]
	assert.Equal(t, console.Call{Op: console.OpHighlight, Highlight: console.Normal}, last, "Close must reset the highlight")
}

func TestLive_RowLayout(t *testing.T) {
	t.Parallel()

	rec := &console.Recorder{}
	live := NewLive(rec)
	sieve.Scan(25, sieve.NewSet(), live.Visit)
	require.NoError(t, live.Close())

	grid := rows(t, rec.Text())
	require.Len(t, grid, 3)
	assert.Len(t, grid[0], 10)
	assert.Len(t, grid[1], 10)
	assert.Len(t, grid[2], 5)
	assert.Equal(t, uint64(1), grid[0][0])
	assert.Equal(t, uint64(11), grid[1][0])
	assert.Equal(t, uint64(25), grid[2][4])
}

func TestLive_EmptyScan(t *testing.T) {
	t.Parallel()

	rec := &console.Recorder{}
	live := NewLive(rec)
	sieve.Scan(0, sieve.NewSet(), live.Visit)
	require.NoError(t, live.Close())

	assert.Empty(t, rec.Text())
}

func TestLive_StopsAfterFirstError(t *testing.T) {
	t.Parallel()

	boom := errors.New("closed terminal")
	rec := &console.Recorder{Err: boom}
	live := NewLive(rec)

	sieve.Scan(100, sieve.NewSet(), live.Visit)
	err := live.Close()

	require.ErrorIs(t, err, boom)
	// The leading newline fails, then Close attempts one reset.
	assert.Len(t, rec.Calls, 2)
}
