// Package testdata gives tests access to excerpts of Unicode Character
// Database files, checked in below directory "ucd". The full files may be
// fetched with "go run download.go".
package testdata

import (
	"os"
	"path/filepath"
	"runtime"
)

// PropList is the UCD property list fixture, holding at least the
// White_Space property.
const PropList = "PropList.txt"

// Open opens the UCD fixture file for reading. Clients are responsible for
// closing it.
func Open(file string) (*os.File, error) {
	return os.Open(Path(file))
}

// OpenPropList opens the PropList fixture.
func OpenPropList() (*os.File, error) {
	return Open(PropList)
}

// Path returns the path of a UCD fixture file, independent of the working
// directory of the test binary.
func Path(file string) string {
	_, src, _, ok := runtime.Caller(0)
	if !ok {
		panic("testdata: cannot locate fixture directory without caller info")
	}
	return filepath.Join(filepath.Dir(src), "ucd", file)
}
