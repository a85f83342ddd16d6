// Package deb reads the control metadata of Debian binary packages.
//
// A .deb file is an ar archive whose control.tar.gz member carries a
// 'control' file in the stanza format parsed by package control. This
// package locates and extracts that stanza from any io.Reader, without
// temporary files or external tools like dpkg, and provides typed
// accessors for the standard control fields.
package deb
