package control

import "strings"

// Value is the parsed content of a single field: either a one-line
// value or an ordered block of continuation lines.
type Value struct {
	// Text is the content of a one-line value. Unused when Multi is set.
	Text string
	// Lines are the continuation lines of a multi-line value, in source
	// order, without trailing newlines. Unused when Multi is clear.
	Lines []string
	// Multi reports whether the value is a multi-line block.
	Multi bool
}

// OneLine returns a single-line value.
func OneLine(text string) Value {
	return Value{Text: text}
}

// MultiLine returns a multi-line value holding the given lines.
func MultiLine(lines ...string) Value {
	return Value{Lines: lines, Multi: true}
}

// Equal reports whether two values have the same shape and content.
func (v Value) Equal(o Value) bool {
	if v.Multi != o.Multi {
		return false
	}
	if !v.Multi {
		return v.Text == o.Text
	}
	if len(v.Lines) != len(o.Lines) {
		return false
	}
	for i := range v.Lines {
		if v.Lines[i] != o.Lines[i] {
			return false
		}
	}
	return true
}

// String returns the value content: the text of a one-line value, or
// the lines of a multi-line value joined with newlines.
func (v Value) String() string {
	if v.Multi {
		return strings.Join(v.Lines, "\n")
	}
	return v.Text
}
