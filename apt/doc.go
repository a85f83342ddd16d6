// Package apt reads and writes the index files of APT repositories:
// Packages indices, Release stanzas, and clearsigned InRelease files.
//
// All heavy lifting is delegated to package control; this package maps
// parsed stanzas onto the repository-level records (package identity,
// download location, checksums) that APT clients exchange.
package apt
