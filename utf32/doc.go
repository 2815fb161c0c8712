/*
Package utf32 implements a text cursor over null-terminated UTF-32 text.

A CharPointer wraps caller-owned storage of type []rune, where every rune is
a single code unit and a single code-point. The storage has to be terminated
by a zero rune. The cursor never allocates and never owns the storage:

  buf := make([]rune, 32)
  p := utf32.New(buf)
  charptr.CopyAll(&p, utf8.New([]byte("Hello\x00")))
  p = utf32.New(buf)
  p.Length()          // => 5
  p.IndexOfChar('l')  // => 2

CharPointer satisfies the contract of charptr.Cursor, so every generic
algorithm of package charptr accepts it, in combination with any other
backend. Operations with both operands of type CharPointer are available as
methods as well; some of them (WriteAll, Compare, IndexOfChar, Length) scan
the rune slices directly instead of going through the generic primitives,
with identical results.

No bounds checks are performed beyond what the Go runtime enforces for slices:
moving a cursor outside its storage or reading past the terminator results in
a runtime panic.

Cursors are not safe for concurrent mutation. For a cursor shared between
goroutines and replaced without a lock, see AtomicPointer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package utf32

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
