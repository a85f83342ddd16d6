package control

import "bytes"

// cursor is a position into the input buffer. Cursors are values:
// recognizers take a cursor and return the advanced cursor alongside
// their result, leaving the caller's position untouched on failure.
type cursor struct {
	in  []byte
	pos int
}

func (c cursor) eof() bool { return c.pos >= len(c.in) }

func (c cursor) rest() []byte { return c.in[c.pos:] }

func (c cursor) peek() byte { return c.in[c.pos] }

func (c cursor) advance(n int) cursor {
	c.pos += n
	return c
}

// takeUntil returns the span between the cursor and the first occurrence
// of sep, and a cursor positioned at sep. It reports false when sep does
// not occur in the remaining input.
func takeUntil(c cursor, sep string) ([]byte, cursor, bool) {
	i := bytes.Index(c.rest(), []byte(sep))
	if i < 0 {
		return nil, c, false
	}
	return c.rest()[:i:i], c.advance(i), true
}

// skipOrphanLines consumes stray continuation lines (a single leading
// space through the terminating newline) sitting in front of a field
// name. An indented line without a terminating newline is left alone.
func skipOrphanLines(c cursor) cursor {
	for !c.eof() && c.peek() == ' ' {
		_, nc, ok := takeUntil(c.advance(1), "\n")
		if !ok {
			return c
		}
		c = nc.advance(1)
	}
	return c
}

// fieldName reads the bytes before the next ':', after skipping orphan
// continuation lines. The name must be non-empty and must not begin
// with a newline (an empty line can never start a field).
func fieldName(c cursor) ([]byte, cursor, error) {
	c = skipOrphanLines(c)
	name, nc, ok := takeUntil(c, ":")
	if !ok {
		return nil, c, syntaxErr(c, "field name terminated by ':'")
	}
	if len(name) == 0 || name[0] == '\n' {
		return nil, c, syntaxErr(c, "field name")
	}
	return name, nc, nil
}

// separator consumes the ':' and any horizontal whitespace after it.
func separator(c cursor) (cursor, error) {
	if c.eof() || c.peek() != ':' {
		return c, syntaxErr(c, "':' separator")
	}
	c = c.advance(1)
	for !c.eof() && (c.peek() == ' ' || c.peek() == '\t') {
		c = c.advance(1)
	}
	return c, nil
}

// singleLine reads the bytes up to and including the terminating
// newline, returning the content before the newline. The content may be
// empty.
func singleLine(c cursor) ([]byte, cursor, error) {
	span, nc, ok := takeUntil(c, "\n")
	if !ok {
		return nil, c, syntaxErr(c, "newline-terminated value")
	}
	return span, nc.advance(1), nil
}

// continuationLines reads zero or more lines with exactly one leading
// space, joining their contents with '\n' (no trailing separator).
func continuationLines(c cursor) ([]byte, cursor) {
	var lines [][]byte
	for !c.eof() && c.peek() == ' ' {
		span, nc, ok := takeUntil(c.advance(1), "\n")
		if !ok {
			break
		}
		lines = append(lines, span)
		c = nc.advance(1)
	}
	return bytes.Join(lines, []byte("\n")), c
}

// skipComments consumes zero or more comment blocks, each delimited by a
// leading "--" and a trailing '-' immediately before a newline. The
// content between the delimiters is discarded. A malformed block (no
// closing delimiter) is left unconsumed for the stanza parser to reject.
func skipComments(c cursor) cursor {
	for bytes.HasPrefix(c.rest(), []byte("--")) {
		_, nc, ok := takeUntil(c.advance(2), "-\n")
		if !ok {
			return c
		}
		c = nc.advance(2)
	}
	return c
}

// skipWhitespace consumes spaces, tabs, carriage returns and newlines.
func skipWhitespace(c cursor) cursor {
	for !c.eof() {
		switch c.peek() {
		case ' ', '\t', '\r', '\n':
			c = c.advance(1)
		default:
			return c
		}
	}
	return c
}
