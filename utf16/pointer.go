/*
Package utf16 implements a text cursor over null-terminated UTF-16 text.

Code-points outside of the Basic Multilingual Plane occupy two code units
(a surrogate pair). Unpaired surrogates decode as U+FFFD and are consumed
one unit at a time.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package utf16

import (
	"unicode"
	gutf16 "unicode/utf16"
	"unicode/utf8"
	"unsafe"

	"github.com/npillmayer/charptr"
)

// UnitSize is the number of bytes of a code unit.
const UnitSize = 2

// CharPointer is a cursor into null-terminated UTF-16 text.
type CharPointer struct {
	data []uint16 // caller-owned storage
	pos  int      // current position within data, in code units
}

var _ charptr.Cursor = (*CharPointer)(nil)

// New creates a cursor pointing to the start of storage.
func New(storage []uint16) CharPointer {
	return CharPointer{data: storage}
}

// Address returns the storage from the current position on.
func (p CharPointer) Address() []uint16 {
	return p.data[p.pos:]
}

// Equal is true if p and other point to the same code unit in memory,
// regardless of the slices they have been created from.
// This is a comparison of handles, not of text.
func (p CharPointer) Equal(other CharPointer) bool {
	if p.inStorage() && other.inStorage() {
		return &p.data[p.pos] == &other.data[other.pos]
	}
	return unsafe.SliceData(p.data) == unsafe.SliceData(other.data) && p.pos == other.pos
}

func (p CharPointer) inStorage() bool {
	return p.pos >= 0 && p.pos < len(p.data)
}

// IsEmpty is true if p points to the terminator.
func (p CharPointer) IsEmpty() bool {
	return p.data[p.pos] == 0
}

func isHighSurrogate(c uint16) bool {
	return c >= 0xd800 && c < 0xdc00
}

func isLowSurrogate(c uint16) bool {
	return c >= 0xdc00 && c < 0xe000
}

// decode returns the code-point at the current position and its number of
// code units.
func (p CharPointer) decode() (rune, int) {
	c := p.data[p.pos]
	switch {
	case isHighSurrogate(c):
		if r := gutf16.DecodeRune(rune(c), rune(p.data[p.pos+1])); r != unicode.ReplacementChar {
			return r, 2
		}
		return unicode.ReplacementChar, 1
	case isLowSurrogate(c):
		return unicode.ReplacementChar, 1
	}
	return rune(c), 1
}

// Get returns the code-point p points to.
func (p CharPointer) Get() rune {
	r, _ := p.decode()
	return r
}

// Advance moves p to the next code-point.
func (p *CharPointer) Advance() {
	_, n := p.decode()
	p.pos += n
}

// Retreat moves p to the previous code-point.
func (p *CharPointer) Retreat() {
	p.pos--
	if p.pos > 0 && isLowSurrogate(p.data[p.pos]) && isHighSurrogate(p.data[p.pos-1]) {
		p.pos--
	}
}

// GetAndAdvance returns the code-point p points to, then advances p.
func (p *CharPointer) GetAndAdvance() rune {
	r, n := p.decode()
	p.pos += n
	return r
}

// At returns the n-th code-point from p, without moving p.
func (p CharPointer) At(n int) rune {
	for ; n > 0; n-- {
		p.Advance()
	}
	return p.Get()
}

// Write stores r at the current position and advances p.
// Invalid code-points are stored as U+FFFD.
func (p *CharPointer) Write(r rune) {
	if !utf8.ValidRune(r) {
		r = unicode.ReplacementChar
	}
	if r >= 0x10000 {
		r1, r2 := gutf16.EncodeRune(r)
		p.data[p.pos], p.data[p.pos+1] = uint16(r1), uint16(r2)
		p.pos += 2
		return
	}
	p.data[p.pos] = uint16(r)
	p.pos++
}

// WriteNull stores a terminator at the current position without moving p.
func (p CharPointer) WriteNull() {
	p.data[p.pos] = 0
}

// Length returns the number of code-points up to the terminator.
func (p CharPointer) Length() int {
	return charptr.Length(p)
}

// BytesRequiredFor returns the number of bytes needed to encode r in UTF-16.
func (CharPointer) BytesRequiredFor(r rune) int {
	if r >= 0x10000 && utf8.ValidRune(r) {
		return 2 * UnitSize
	}
	return UnitSize
}

// SizeInBytes returns the number of bytes used by the text, including the
// terminator.
func (p CharPointer) SizeInBytes() int {
	n := UnitSize
	for q := p; !q.IsEmpty(); {
		n += p.BytesRequiredFor(q.GetAndAdvance())
	}
	return n
}
