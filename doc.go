/*
Package charptr is about text cursors over null-terminated Unicode text.

Description

A text cursor (a “char pointer”) is a lightweight handle over a sequence of
code units in one fixed encoding, terminated by a zero-valued code unit.
Cursors never own the storage they point into: they are created by wrapping a
caller-supplied buffer, copied freely, and simply dropped when no longer
needed. A cursor has no length and no capacity of its own; the only emptiness
test is whether it currently points at the terminator.

Encoding backends live in sub-packages:

  utf32    32-bit code units, one unit per code-point
  utf16    16-bit code units, surrogate pairs for supplementary planes
  utf8     8-bit code units, 1 to 4 units per code-point

Every backend implements a handful of primitive operations, captured by
interface Cursor: read the current code-point, read-and-advance, advance,
write-and-advance, write a terminator, plus a few helpers (Length, At,
BytesRequiredFor). All the interesting algorithms are implemented once, in
this package, as generic functions over these primitives:

  Length, LengthUpTo, BytesRequiredFor
  CopyAll, CopyWithDestByteLimit, CopyWithCharLimit
  Compare, CompareUpTo, CompareIgnoreCase, CompareIgnoreCaseUpTo
  IndexOf, IndexOfChar, IndexOfCharIgnoreCase
  FindEndOfWhitespace
  ParseInt32, ParseInt64, ParseFloat

The generic functions accept two different backends at once. Comparing a
UTF-32 cursor with a UTF-8 cursor yields exactly the ordering obtained from
comparing two UTF-32 cursors holding the same text.

  buf := []rune{'a', 'b', 'c', 0}
  p := utf32.New(buf)
  q := utf8.New([]byte("abd\x00"))
  charptr.Compare(p, q)   // < 0

Value Semantics

Inputs to the generic functions are passed as cursor values and are never
moved from the caller's point of view. Destinations of copy operations are
passed by pointer, and are left positioned at the terminator written:

  dst := utf16.New(make([]uint16, 64))
  charptr.CopyAll(&dst, p)

Unchecked Operations

Cursors perform no bounds checking beyond the terminator. Moving a cursor
outside of its storage, reading past the terminator or writing beyond the
capacity the caller reserved is a violation of the caller's contract. In Go
these violations end in a runtime panic (index out of range) instead of
silently corrupting memory, but they are not reported as errors. Capacity
planning is the caller's responsibility, aided by the BytesRequiredFor
functions.

Failures of searches and parsers are signalled by sentinel values: -1 for
“not found”, 0 for “no numeral present”. Numeric parsers wrap around on
overflow, following the arithmetic of the accumulating integer type. Callers
needing explicit errors use ParseInt32Checked and ParseInt64Checked.

Classification

Predicates like IsWhitespace and case mappings are delegated to the
classifier of package charclass. See charclass.SetDefault for switching to
locale-aware case mappings.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package charptr

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
