package apt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/AOSC-Archive/8dparser/control"
)

// ReleaseField represents a standard field in a Debian Release file.
type ReleaseField string

const (
	RelOrigin               ReleaseField = "Origin"
	RelLabel                ReleaseField = "Label"
	RelSuite                ReleaseField = "Suite"
	RelVersion              ReleaseField = "Version"
	RelCodename             ReleaseField = "Codename"
	RelDate                 ReleaseField = "Date"
	RelValidUntil           ReleaseField = "Valid-Until"
	RelArchitectures        ReleaseField = "Architectures"
	RelComponents           ReleaseField = "Components"
	RelDescription          ReleaseField = "Description"
	RelNotAutomatic         ReleaseField = "NotAutomatic"
	RelButAutomaticUpgrades ReleaseField = "ButAutomaticUpgrades"
	RelAcquireByHash        ReleaseField = "Acquire-By-Hash"
	RelSHA256               ReleaseField = "SHA256"
)

// ArchiveInfo holds the metadata fields of a repository Release file.
// These help APT clients identify the repository (e.g. for pinning or
// trust).
//
// Reference: https://wiki.debian.org/DebianRepository/Format#Release_file
type ArchiveInfo struct {
	Origin               string
	Label                string
	Suite                string
	Version              string
	Codename             string
	Date                 string
	ValidUntil           string
	Architectures        string
	Components           string
	Description          string
	NotAutomatic         string
	ButAutomaticUpgrades string
	AcquireByHash        string
}

// FileEntry is one line of a Release checksum list: the hash, size and
// repository-relative path of an index file.
type FileEntry struct {
	Hash string
	Size int64
	Path string
}

// Release is a parsed repository Release stanza.
type Release struct {
	ArchiveInfo

	// SHA256 lists the index files covered by the release with their
	// checksums, in source order.
	SHA256 []FileEntry

	// Stanza is the full parsed stanza, including any fields not mapped
	// onto ArchiveInfo.
	Stanza *control.Stanza
}

// ParseRelease parses the text of a Release file, which is a single
// stanza whose SHA256 field is a multi-line checksum list.
func ParseRelease(text string) (*Release, error) {
	st, err := control.ParseOne(text)
	if err != nil {
		return nil, fmt.Errorf("parsing Release: %w", err)
	}

	rel := &Release{Stanza: st}
	for _, key := range st.Keys() {
		val := st.Field(key)
		switch ReleaseField(key) {
		case RelOrigin:
			rel.Origin = val
		case RelLabel:
			rel.Label = val
		case RelSuite:
			rel.Suite = val
		case RelVersion:
			rel.Version = val
		case RelCodename:
			rel.Codename = val
		case RelDate:
			rel.Date = val
		case RelValidUntil:
			rel.ValidUntil = val
		case RelArchitectures:
			rel.Architectures = val
		case RelComponents:
			rel.Components = val
		case RelDescription:
			rel.Description = val
		case RelNotAutomatic:
			rel.NotAutomatic = val
		case RelButAutomaticUpgrades:
			rel.ButAutomaticUpgrades = val
		case RelAcquireByHash:
			rel.AcquireByHash = val
		case RelSHA256:
			entries, err := parseChecksums(st)
			if err != nil {
				return nil, err
			}
			rel.SHA256 = entries
		}
	}
	return rel, nil
}

// parseChecksums reads the multi-line SHA256 field into file entries.
// Each line has the form "<hash> <size> <path>".
func parseChecksums(st *control.Stanza) ([]FileEntry, error) {
	v, ok := st.Get(string(RelSHA256))
	if !ok {
		return nil, nil
	}
	if !v.Multi {
		return nil, fmt.Errorf("SHA256 field is not a checksum list")
	}

	var entries []FileEntry
	for _, line := range v.Lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("malformed checksum line %q", line)
		}
		size, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed size in checksum line %q: %w", line, err)
		}
		entries = append(entries, FileEntry{Hash: fields[0], Size: size, Path: fields[2]})
	}
	return entries, nil
}

// BuildRelease renders repository metadata and a checksum list into a
// Release stanza. An empty Date is filled with the current UTC time.
func BuildRelease(info ArchiveInfo, entries []FileEntry) *control.Stanza {
	st := control.NewStanza()
	set := func(field ReleaseField, value string) {
		if value != "" {
			st.Set(string(field), control.OneLine(value))
		}
	}

	set(RelOrigin, info.Origin)
	set(RelLabel, info.Label)
	set(RelSuite, info.Suite)
	set(RelVersion, info.Version)
	set(RelCodename, info.Codename)
	if info.Date != "" {
		set(RelDate, info.Date)
	} else {
		set(RelDate, time.Now().UTC().Format(time.RFC1123Z))
	}
	set(RelValidUntil, info.ValidUntil)
	set(RelArchitectures, info.Architectures)
	set(RelComponents, info.Components)
	set(RelDescription, info.Description)
	set(RelNotAutomatic, info.NotAutomatic)
	set(RelButAutomaticUpgrades, info.ButAutomaticUpgrades)
	set(RelAcquireByHash, info.AcquireByHash)

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s %d %s", e.Hash, e.Size, e.Path))
	}
	st.Set(string(RelSHA256), control.MultiLine(lines...))

	return st
}
