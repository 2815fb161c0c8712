package charclass

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

func setupClasses() {

	// Range for property White_Space (25 code-points)
	WhiteSpace = rangetable.New('\t', '\n', '\v', '\f', '\r', ' ', '\u0085', '\u00a0',
		'\u1680', '\u2000', '\u2001', '\u2002', '\u2003', '\u2004', '\u2005', '\u2006',
		'\u2007', '\u2008', '\u2009', '\u200a', '\u2028', '\u2029', '\u202f', '\u205f',
		'\u3000')
}
