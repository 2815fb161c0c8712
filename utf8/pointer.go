/*
Package utf8 implements a text cursor over null-terminated UTF-8 text.

A code-point occupies between 1 and 4 bytes. Invalid byte sequences decode
as U+FFFD and are consumed one byte at a time.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package utf8

import (
	gutf8 "unicode/utf8"
	"unsafe"

	"github.com/npillmayer/charptr"
)

// CharPointer is a cursor into null-terminated UTF-8 text.
type CharPointer struct {
	data []byte // caller-owned storage
	pos  int    // current position within data, in bytes
}

var _ charptr.Cursor = (*CharPointer)(nil)

// New creates a cursor pointing to the start of storage.
func New(storage []byte) CharPointer {
	return CharPointer{data: storage}
}

// Address returns the storage from the current position on.
func (p CharPointer) Address() []byte {
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

func (p CharPointer) decode() (rune, int) {
	if c := p.data[p.pos]; c < gutf8.RuneSelf {
		return rune(c), 1
	}
	return gutf8.DecodeRune(p.data[p.pos:])
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

// Retreat moves p to the start of the previous code-point.
func (p *CharPointer) Retreat() {
	p.pos--
	for i := 1; i < gutf8.UTFMax && p.pos > 0 && !gutf8.RuneStart(p.data[p.pos]); i++ {
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
	if r < gutf8.RuneSelf && r >= 0 {
		p.data[p.pos] = byte(r)
		p.pos++
		return
	}
	_ = p.data[p.pos+p.BytesRequiredFor(r)-1]
	p.pos += gutf8.EncodeRune(p.data[p.pos:], r)
}

// WriteNull stores a terminator at the current position without moving p.
func (p CharPointer) WriteNull() {
	p.data[p.pos] = 0
}

// Length returns the number of code-points up to the terminator.
func (p CharPointer) Length() int {
	return charptr.Length(p)
}

// BytesRequiredFor returns the number of bytes needed to encode r in UTF-8.
func (CharPointer) BytesRequiredFor(r rune) int {
	if n := gutf8.RuneLen(r); n > 0 {
		return n
	}
	return gutf8.RuneLen(gutf8.RuneError)
}

// SizeInBytes returns the number of bytes used by the text, including the
// terminator.
func (p CharPointer) SizeInBytes() int {
	n := 0
	for p.data[p.pos+n] != 0 {
		n++
	}
	return n + 1
}
