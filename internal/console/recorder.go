package console

import "strings"

// Op identifies the Sink method a recorded Call came from.
type Op string

const (
	OpHighlight Op = "highlight"
	OpWrite     Op = "write"
	OpClear     Op = "clear"
)

// Call is one recorded Sink invocation.
type Call struct {
	Op        Op
	Highlight Highlight // set for OpHighlight
	Text      string    // set for OpWrite
}

// Recorder is a Sink test double. It records every call and returns Err
// from each of them, which lets tests simulate a failing terminal.
type Recorder struct {
	Calls []Call
	Err   error
}

func (r *Recorder) SetHighlight(h Highlight) error {
	r.Calls = append(r.Calls, Call{Op: OpHighlight, Highlight: h})
	return r.Err
}

func (r *Recorder) WriteString(s string) (int, error) {
	r.Calls = append(r.Calls, Call{Op: OpWrite, Text: s})
	if r.Err != nil {
		return 0, r.Err
	}
	return len(s), nil
}

func (r *Recorder) Clear() error {
	r.Calls = append(r.Calls, Call{Op: OpClear})
	return r.Err
}

// Text concatenates everything written, ignoring highlights.
func (r *Recorder) Text() string {
	var b strings.Builder
	for _, c := range r.Calls {
		if c.Op == OpWrite {
			b.WriteString(c.Text)
		}
	}
	return b.String()
}

// Styled pairs each written text with the highlight active when it was
// written.
func (r *Recorder) Styled() []Styled {
	var out []Styled
	current := Normal
	for _, c := range r.Calls {
		switch c.Op {
		case OpHighlight:
			current = c.Highlight
		case OpWrite:
			out = append(out, Styled{Highlight: current, Text: c.Text})
		}
	}
	return out
}

// Styled is a piece of text together with its highlight.
type Styled struct {
	Highlight Highlight
	Text      string
}

// Count returns how many calls of kind op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}
