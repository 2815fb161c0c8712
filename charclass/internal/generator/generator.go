/*
Package generator is a generator for code-point classification tables.

Classes are generated from the Unicode Character Database file "PropList.txt".
The generator looks for it in a directory "$GOPATH/etc/", unless flag -f
names a different file.

Usage

   generator [-v] [-f PropList.txt]

This creates a file "whitespace_table.go" in the current directory. It is designed
to be called from the "charclass" directory (see go:generate in doc.go).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"text/template"
	"time"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/charptr/internal/ucd"
)

var logger = log.New(os.Stderr, "charclass generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

const property = "White_Space"

// Load the UCD property file and collect all code-points of property.
func loadPropList(path string) ([]rune, error) {
	if verbose {
		logger.Printf("reading %s", path)
	}
	defer timeTrack(time.Now(), "loading "+path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p := ucd.NewUCDParser(f)
	list := arraylist.New()
	for p.Next() {
		if p.String(1) != property {
			continue
		}
		from, to := p.Range(0)
		for r := from; r <= to; r++ {
			list.Add(r)
		}
	}
	if err = p.Err(); err != nil {
		return nil, err
	}
	runes := make([]rune, list.Size())
	it := list.Iterator()
	for it.Next() {
		runes[it.Index()] = it.Value().(rune)
	}
	return runes, nil
}

// --- Templates --------------------------------------------------------

var header = `package charclass

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Range table for Unicode property White_Space.
// Will be initialized with SetupClasses().
// Clients can check with unicode.Is(..., rune)
var WhiteSpace *unicode.RangeTable
`

var templateSetup = `
func setupClasses() {

	// Range for property White_Space ({{len .}} code-points)
	WhiteSpace = rangetable.New({{$i:=0}}{{range .}}{{if notfirst $i}}, {{if modeight $i}}
		{{end}}{{end}}{{$i = inc $i}}{{printf "%+q" .}}{{end}})
}
`

// Helper functions for templates
var funcMap = template.FuncMap{
	"modeight": func(i int) bool {
		return i%8 == 0
	},
	"inc": func(i int) int {
		return i + 1
	},
	"notfirst": func(i int) bool {
		return i > 0
	},
}

func makeTemplate(name string, templString string) *template.Template {
	if verbose {
		logger.Printf("creating %s", name)
	}
	t := template.Must(template.New(name).Funcs(funcMap).Parse(templString))
	return t
}

// --- Main -------------------------------------------------------------

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	propList := flag.String("f", os.Getenv("GOPATH")+"/etc/PropList.txt", "path of PropList.txt")
	flag.Parse()
	verbose = *doVerbose
	runes, err := loadPropList(*propList)
	checkFatal(err)
	if verbose {
		logger.Printf("loaded %d code-points for %s\n", len(runes), property)
	}
	f, ioerr := os.Create("whitespace_table.go")
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	w.WriteString(header)
	t := makeTemplate("White_Space table", templateSetup)
	checkFatal(t.Execute(w, runes))
	checkFatal(w.Flush())
}

// --- Util -------------------------------------------------------------

func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", fmt.Sprint(err))
	}
}
