/*
Package charclass classifies single code-points for text cursors.

Cursors of package charptr and its encoding backends never decide on their own
whether a code-point is whitespace, a digit or a letter, nor how it maps between
upper and lower case. They consult a Classifier, which acts as a pure function
table: one query per code-point examined, no state visible to the caller.

Typical Usage

Most clients never touch this package; the cursors use the process-wide
default classifier. To switch to locale-aware case mapping:

  charclass.SetDefault(charclass.NewLocale(language.Turkish))
  p := utf32.New(buf)
  p.ToUpperCase()   // 'i' => 'İ'

A classifier for the user's environment is available as well:

  charclass.SetDefault(charclass.FromEnvironment())

Attention

The whitespace range table is created on first use, or explicitly with

  SetupClasses()

The table is generated from the Unicode Character Database (PropList.txt,
property White_Space) and pinned to the Unicode version given in Version.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package charclass

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

//go:generate go run ./internal/generator -v

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Version is the Unicode version the generated tables conform to.
const Version = "11.0.0"
