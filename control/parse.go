package control

import (
	"io"
	"strings"
	"unicode/utf8"
)

// rawField is the untyped parse result of one field: the name span, the
// single-line candidate, and the joined continuation-line blob, each
// with the byte offset it was read at.
type rawField struct {
	name    []byte
	nameOff int
	one     []byte
	oneOff  int
	multi   []byte
}

// parseField reads one "Name: value" field, including any continuation
// lines that follow the single-line segment.
func parseField(c cursor) (rawField, cursor, error) {
	name, nc, err := fieldName(c)
	if err != nil {
		return rawField{}, c, err
	}
	nameOff := nc.pos - len(name)

	nc, err = separator(nc)
	if err != nil {
		return rawField{}, c, err
	}

	oneOff := nc.pos
	one, nc, err := singleLine(nc)
	if err != nil {
		return rawField{}, c, err
	}

	multi, nc := continuationLines(nc)

	return rawField{
		name:    name,
		nameOff: nameOff,
		one:     one,
		oneOff:  oneOff,
		multi:   multi,
	}, nc, nil
}

// parseStanza reads one or more fields, then consumes the trailing
// whitespace (including the blank line separating stanzas). A stanza
// must contain at least one field.
func parseStanza(c cursor) ([]rawField, cursor, error) {
	f, nc, err := parseField(c)
	if err != nil {
		return nil, c, err
	}
	fields := []rawField{f}
	for {
		f, next, err := parseField(nc)
		if err != nil {
			break
		}
		fields = append(fields, f)
		nc = next
	}
	return fields, skipWhitespace(nc), nil
}

// buildStanza decodes and classifies raw fields into a Stanza.
//
// A field whose single-line candidate is empty is multi-line: the joined
// continuation blob is split on newlines (an empty blob splits to a
// single empty line, so "Key:" with no continuation is indistinguishable
// from a multi-line field with one empty line). A field with a non-empty
// candidate is one-line and any continuation lines are discarded.
func buildStanza(fields []rawField) (*Stanza, error) {
	st := NewStanza()
	for _, f := range fields {
		if !utf8.Valid(f.name) {
			return nil, &EncodingError{Offset: f.nameOff, What: "field name"}
		}
		key := string(f.name)

		if len(f.one) == 0 {
			if !utf8.Valid(f.multi) {
				return nil, &EncodingError{Offset: f.oneOff, What: "field value"}
			}
			st.Set(key, MultiLine(strings.Split(string(f.multi), "\n")...))
			continue
		}
		if !utf8.Valid(f.one) {
			return nil, &EncodingError{Offset: f.oneOff, What: "field value"}
		}
		st.Set(key, OneLine(string(f.one)))
	}
	return st, nil
}

// ParseOne parses exactly one stanza. It fails if the input holds
// anything other than a single well-formed stanza followed by optional
// trailing whitespace.
func ParseOne(text string) (*Stanza, error) {
	c := cursor{in: []byte(text)}
	fields, nc, err := parseStanza(c)
	if err != nil {
		return nil, err
	}
	if !nc.eof() {
		return nil, syntaxErr(nc, "end of input")
	}
	return buildStanza(fields)
}

// ParseMany parses zero or more stanzas separated by blank lines, each
// optionally preceded by a comment block. Empty input yields an empty
// document, not an error.
func ParseMany(text string) (Document, error) {
	c := cursor{in: []byte(text)}
	doc := Document{}
	for !c.eof() {
		c = skipComments(c)
		fields, nc, err := parseStanza(c)
		if err != nil {
			return nil, err
		}
		st, err := buildStanza(fields)
		if err != nil {
			return nil, err
		}
		doc = append(doc, st)
		c = nc
	}
	return doc, nil
}

// Decode reads the whole stream and parses it with ParseMany.
func Decode(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseMany(string(data))
}
