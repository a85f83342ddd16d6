package apt

import (
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/AOSC-Archive/8dparser/control"
	"github.com/AOSC-Archive/8dparser/deb"
)

// Package represents one stanza of a Packages index: the control
// metadata of a .deb plus the repository-level fields telling APT where
// to download it.
type Package struct {
	Name         string
	Version      string
	Architecture string

	// Filename is the relative path or absolute URL of the .deb file.
	Filename string
	Size     int64
	SHA256   string

	// Stanza is the full parsed index stanza, including the fields
	// above, in source order.
	Stanza *control.Stanza
}

// newPackage builds a Package record from a parsed index stanza.
func newPackage(st *control.Stanza) *Package {
	p := &Package{Stanza: st}
	p.Name, p.Version, p.Architecture = deb.Identity(st)
	p.Filename = st.Field(string(deb.FieldFilename))
	if s := st.Field(string(deb.FieldSize)); s != "" {
		p.Size, _ = strconv.ParseInt(s, 10, 64)
	}
	p.SHA256 = st.Field(string(deb.FieldSHA256))
	return p
}

// id identifies a package version within an index.
func (p *Package) id() string {
	return fmt.Sprintf("%s|%s|%s", p.Name, p.Version, p.Architecture)
}

// ParseIndex parses a Packages index from the reader.
func ParseIndex(r io.Reader) ([]*Package, error) {
	doc, err := control.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("parsing Packages index: %w", err)
	}
	pkgs := make([]*Package, 0, len(doc))
	for _, st := range doc {
		pkgs = append(pkgs, newPackage(st))
	}
	return pkgs, nil
}

// FetchIndex downloads and parses a Packages index. URLs ending in .gz
// are decompressed on the fly.
func FetchIndex(url string) ([]*Package, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}

	var r io.Reader = resp.Body
	if strings.HasSuffix(url, ".gz") {
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer gzr.Close()
		r = gzr
	}
	return ParseIndex(r)
}

// PackageIndex is an in-memory, insertion-ordered collection of
// packages. It enforces uniqueness on "Name|Version|Architecture", so
// the same package version cannot be indexed twice.
type PackageIndex struct {
	ids      map[string]*Package
	packages []*Package
}

// NewPackageIndex returns an empty index.
func NewPackageIndex() *PackageIndex {
	return &PackageIndex{ids: make(map[string]*Package)}
}

// Len returns the number of packages in the index.
func (idx *PackageIndex) Len() int { return len(idx.packages) }

// Packages returns the indexed packages in insertion order.
func (idx *PackageIndex) Packages() []*Package {
	pkgs := make([]*Package, len(idx.packages))
	copy(pkgs, idx.packages)
	return pkgs
}

// Get returns the package with the given name, version and architecture.
func (idx *PackageIndex) Get(name, version, arch string) (*Package, bool) {
	p, ok := idx.ids[fmt.Sprintf("%s|%s|%s", name, version, arch)]
	return p, ok
}

// Add inserts a package. It returns an error if a package with the same
// name, version and architecture already exists.
func (idx *PackageIndex) Add(p *Package) error {
	id := p.id()
	if _, exists := idx.ids[id]; exists {
		return fmt.Errorf("duplicate package: %s", id)
	}
	idx.ids[id] = p
	idx.packages = append(idx.packages, p)
	return nil
}

// Append merges another index into this one, preserving the other
// index's order. Useful for aggregating packages from several sources.
func (idx *PackageIndex) Append(other *PackageIndex) error {
	for _, p := range other.packages {
		if err := idx.Add(p); err != nil {
			return err
		}
	}
	return nil
}

// WriteTo regenerates the Packages index text from the stored stanzas,
// in insertion order. This satisfies the io.WriterTo interface.
func (idx *PackageIndex) WriteTo(w io.Writer) (int64, error) {
	doc := make(control.Document, 0, len(idx.packages))
	for _, p := range idx.packages {
		doc = append(doc, p.Stanza)
	}
	return doc.WriteTo(w)
}
