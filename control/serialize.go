package control

import (
	"fmt"
	"io"
	"strings"
)

// countingWriter wraps an io.Writer and counts the bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

// Write writes p to the underlying io.Writer and increments the byte count.
func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// WriteTo renders the stanza in canonical form: "Key: value" for
// one-line fields, "Key:" followed by two-space-indented lines for
// multi-line fields, and a blank line after the last field. Continuation
// lines are always re-indented with two spaces, regardless of the
// indentation of the input they were parsed from.
// This satisfies the io.WriterTo interface.
func (s *Stanza) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	for _, key := range s.keys {
		v := s.fields[key]
		if v.Multi {
			if _, err := fmt.Fprintf(cw, "%s:\n", key); err != nil {
				return cw.n, err
			}
			for _, line := range v.Lines {
				if _, err := fmt.Fprintf(cw, "  %s\n", line); err != nil {
					return cw.n, err
				}
			}
		} else {
			if _, err := fmt.Fprintf(cw, "%s: %s\n", key, v.Text); err != nil {
				return cw.n, err
			}
		}
	}
	_, err := io.WriteString(cw, "\n")
	return cw.n, err
}

// String renders the stanza in canonical form.
func (s *Stanza) String() string {
	var b strings.Builder
	s.WriteTo(&b)
	return b.String()
}

// WriteTo renders every stanza in order. An empty document writes
// nothing. This satisfies the io.WriterTo interface.
func (d Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	for _, st := range d {
		if _, err := st.WriteTo(cw); err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}

// String renders the document in canonical form.
func (d Document) String() string {
	var b strings.Builder
	d.WriteTo(&b)
	return b.String()
}

// Serialize renders a document to its canonical textual form.
func Serialize(d Document) string {
	return d.String()
}
