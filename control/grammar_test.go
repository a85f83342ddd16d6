package control

import (
	"bytes"
	"testing"
)

func TestTakeUntil(t *testing.T) {
	c := cursor{in: []byte("Package: zsync\n")}
	span, nc, ok := takeUntil(c, ":")
	if !ok {
		t.Fatal("expected match")
	}
	if string(span) != "Package" {
		t.Errorf("expected span Package, got %q", span)
	}
	if string(nc.rest()) != ": zsync\n" {
		t.Errorf("unexpected rest %q", nc.rest())
	}

	if _, _, ok := takeUntil(c, "#"); ok {
		t.Error("expected no match for absent separator")
	}
}

func TestSingleLine(t *testing.T) {
	c := cursor{in: []byte("zsync\n")}
	span, nc, err := singleLine(c)
	if err != nil {
		t.Fatalf("singleLine failed: %v", err)
	}
	if string(span) != "zsync" {
		t.Errorf("expected zsync, got %q", span)
	}
	if !nc.eof() {
		t.Errorf("expected input consumed, rest %q", nc.rest())
	}

	// Unterminated line is a syntax error.
	if _, _, err := singleLine(cursor{in: []byte("zsync")}); err == nil {
		t.Error("expected error for unterminated line")
	}
}

func TestContinuationLines(t *testing.T) {
	c := cursor{in: []byte(" a\n b\n c\nD: E")}
	blob, nc := continuationLines(c)
	if string(blob) != "a\nb\nc" {
		t.Errorf("expected joined blob a\\nb\\nc, got %q", blob)
	}
	if string(nc.rest()) != "D: E" {
		t.Errorf("unexpected rest %q", nc.rest())
	}

	// No continuation lines: empty blob, cursor untouched.
	c = cursor{in: []byte("D: E\n")}
	blob, nc = continuationLines(c)
	if len(blob) != 0 {
		t.Errorf("expected empty blob, got %q", blob)
	}
	if nc.pos != 0 {
		t.Errorf("expected cursor untouched, pos %d", nc.pos)
	}
}

func TestFieldName(t *testing.T) {
	name, nc, err := fieldName(cursor{in: []byte("Package: zsync\n")})
	if err != nil {
		t.Fatalf("fieldName failed: %v", err)
	}
	if string(name) != "Package" {
		t.Errorf("expected Package, got %q", name)
	}
	if string(nc.rest()) != ": zsync\n" {
		t.Errorf("unexpected rest %q", nc.rest())
	}

	// Orphan continuation lines before the name are skipped.
	name, nc, err = fieldName(cursor{in: []byte(" b\n c\nD: E\n")})
	if err != nil {
		t.Fatalf("fieldName with orphans failed: %v", err)
	}
	if string(name) != "D" {
		t.Errorf("expected D, got %q", name)
	}
	if string(nc.rest()) != ": E\n" {
		t.Errorf("unexpected rest %q", nc.rest())
	}

	// An empty line can never start a field name.
	if _, _, err := fieldName(cursor{in: []byte("\nD: E\n")}); err == nil {
		t.Error("expected error for name starting with newline")
	}
	// Empty name.
	if _, _, err := fieldName(cursor{in: []byte(": v\n")}); err == nil {
		t.Error("expected error for empty name")
	}
	// No separator at all.
	if _, _, err := fieldName(cursor{in: []byte("no separator\n")}); err == nil {
		t.Error("expected error when ':' is absent")
	}
}

func TestSeparator(t *testing.T) {
	nc, err := separator(cursor{in: []byte(":  \tvalue\n")})
	if err != nil {
		t.Fatalf("separator failed: %v", err)
	}
	if string(nc.rest()) != "value\n" {
		t.Errorf("unexpected rest %q", nc.rest())
	}

	if _, err := separator(cursor{in: []byte("value\n")}); err == nil {
		t.Error("expected error for missing ':'")
	}
}

func TestSkipComments(t *testing.T) {
	c := skipComments(cursor{in: []byte("---abc---\nA: b\n")})
	if string(c.rest()) != "A: b\n" {
		t.Errorf("comment not consumed, rest %q", c.rest())
	}

	// Several blocks in a row.
	c = skipComments(cursor{in: []byte("--x-\n--y-\nA: b\n")})
	if string(c.rest()) != "A: b\n" {
		t.Errorf("comment blocks not consumed, rest %q", c.rest())
	}

	// A block without its closing delimiter is left unconsumed.
	c = skipComments(cursor{in: []byte("--abc\nA: b\n")})
	if c.pos != 0 {
		t.Errorf("malformed comment partially consumed, pos %d", c.pos)
	}
}

func TestParseFieldOneLine(t *testing.T) {
	f, nc, err := parseField(cursor{in: []byte("Package: zsync\n")})
	if err != nil {
		t.Fatalf("parseField failed: %v", err)
	}
	if string(f.name) != "Package" || string(f.one) != "zsync" || len(f.multi) != 0 {
		t.Errorf("unexpected field %q %q %q", f.name, f.one, f.multi)
	}
	if !nc.eof() {
		t.Errorf("expected input consumed, rest %q", nc.rest())
	}
}

func TestParseFieldMultiLine(t *testing.T) {
	f, nc, err := parseField(cursor{in: []byte("c:\n d\n e\nD: E\n")})
	if err != nil {
		t.Fatalf("parseField failed: %v", err)
	}
	if string(f.name) != "c" {
		t.Errorf("expected name c, got %q", f.name)
	}
	if len(f.one) != 0 {
		t.Errorf("expected empty one-line candidate, got %q", f.one)
	}
	if !bytes.Equal(f.multi, []byte("d\ne")) {
		t.Errorf("expected blob d\\ne, got %q", f.multi)
	}
	if string(nc.rest()) != "D: E\n" {
		t.Errorf("unexpected rest %q", nc.rest())
	}
}

func TestSkipWhitespace(t *testing.T) {
	c := skipWhitespace(cursor{in: []byte(" \t\r\n\nA")})
	if string(c.rest()) != "A" {
		t.Errorf("unexpected rest %q", c.rest())
	}
}
