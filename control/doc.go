// Package control parses and serializes the stanza-based text format used
// by Debian-style package metadata: dpkg status records, apt Packages and
// Release indices, and .deb control files.
//
// # Format
//
// A document is a sequence of stanzas separated by blank lines. Each
// stanza is a block of "Key: Value" fields. A value is either a single
// line or a multi-line block of continuation lines, each introduced by a
// single leading space:
//
//	Package: zsync
//	Conffiles:
//	 /etc/zsync.conf 0d1bf23c8a437d8b6d98023dd8618f26
//
// A comment block delimited by "--" and "-" immediately before a newline
// may precede a stanza and is discarded.
//
// # Design Philosophy
//
// Parsing and serialization are pure, synchronous functions over an
// in-memory buffer: no I/O, no shared state, one left-to-right scan.
// Field order is preserved through an insertion-ordered Stanza, so a
// parsed document serializes back with its fields in source order.
// A parse either yields a complete, fully UTF-8-decoded document or an
// error; there is no partial result and no recovery.
package control
