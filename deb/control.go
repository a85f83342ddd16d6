package deb

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/blakesmith/ar"

	"github.com/AOSC-Archive/8dparser/control"
)

// ExtractControl reads a .deb package and returns the raw text of its
// 'control' file. It iterates the outer ar archive to locate the
// control.tar.gz (or uncompressed control.tar) member, then scans that
// tarball for the control file.
func ExtractControl(r io.Reader) (string, error) {
	arR := ar.NewReader(r)

	for {
		header, err := arR.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("reading ar header: %w", err)
		}

		if !strings.HasPrefix(header.Name, "control.tar") {
			continue
		}

		var tr *tar.Reader
		if strings.HasSuffix(strings.TrimSuffix(header.Name, "/"), ".gz") {
			gzr, err := gzip.NewReader(arR)
			if err != nil {
				return "", fmt.Errorf("opening %s: %w", header.Name, err)
			}
			defer gzr.Close()
			tr = tar.NewReader(gzr)
		} else {
			tr = tar.NewReader(arR)
		}

		for {
			th, err := tr.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return "", fmt.Errorf("reading control tar header: %w", err)
			}
			if ControlFile(filepath.Base(th.Name)) != FileControl {
				continue
			}
			var buf bytes.Buffer
			if _, err := io.Copy(&buf, tr); err != nil {
				return "", fmt.Errorf("reading control file: %w", err)
			}
			return buf.String(), nil
		}
	}
	return "", fmt.Errorf("control file not found")
}

// ReadControl extracts the control file of a .deb package and parses it
// into a stanza. A missing final newline is tolerated: control files
// written by hand occasionally lack it.
func ReadControl(r io.Reader) (*control.Stanza, error) {
	text, err := ExtractControl(r)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	st, err := control.ParseOne(text)
	if err != nil {
		return nil, fmt.Errorf("parsing control file: %w", err)
	}
	return st, nil
}

// Identity returns the Package, Version and Architecture fields of a
// control stanza, the three fields that identify a binary package
// within a repository.
func Identity(st *control.Stanza) (name, version, arch string) {
	return st.Field(string(FieldPackage)),
		st.Field(string(FieldVersion)),
		st.Field(string(FieldArchitecture))
}

// StandardFilename returns the canonical .deb filename for a control
// stanza: {Package}_{Version}_{Architecture}.deb.
func StandardFilename(st *control.Stanza) string {
	name, version, arch := Identity(st)
	return fmt.Sprintf("%s_%s_%s.deb", name, version, arch)
}

// Relations returns the comma-separated relationship list held by the
// named field (Depends, Conflicts, ...), with surrounding whitespace
// trimmed from each element. It returns nil when the field is absent or
// empty.
func Relations(st *control.Stanza, field ControlField) []string {
	return splitList(st.Field(string(field)))
}

// splitList splits a comma-separated string into a slice of strings,
// trimming whitespace from each element. It returns nil for an empty
// input.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var res []string
	for _, p := range parts {
		res = append(res, strings.TrimSpace(p))
	}
	return res
}
