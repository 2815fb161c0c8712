package utf32

import (
	"slices"
	"unsafe"

	"github.com/npillmayer/charptr"
	"github.com/npillmayer/charptr/charclass"
)

// UnitSize is the number of bytes of a code unit.
const UnitSize = 4

// CharPointer is a cursor into null-terminated UTF-32 text.
// The zero value does not point to any storage and must not be dereferenced.
type CharPointer struct {
	data []rune // caller-owned storage
	pos  int    // current position within data
}

var _ charptr.Cursor = (*CharPointer)(nil)

// New creates a cursor pointing to the start of storage. storage is not
// validated.
func New(storage []rune) CharPointer {
	return CharPointer{data: storage}
}

// Address returns the storage from the current position on.
// The returned slice shares memory with the caller's storage.
func (p CharPointer) Address() []rune {
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

// Get returns the code-point p points to.
func (p CharPointer) Get() rune {
	return p.data[p.pos]
}

// At returns the code-point n units away from p, without moving p.
func (p CharPointer) At(n int) rune {
	return p.data[p.pos+n]
}

// --- Moving ----------------------------------------------------------------

// Advance moves p to the next code-point.
func (p *CharPointer) Advance() {
	p.pos++
}

// Retreat moves p to the previous code-point.
func (p *CharPointer) Retreat() {
	p.pos--
}

// AdvanceBy moves p forward by n code-points.
func (p *CharPointer) AdvanceBy(n int) {
	p.pos += n
}

// RetreatBy moves p backwards by n code-points.
func (p *CharPointer) RetreatBy(n int) {
	p.pos -= n
}

// Plus returns a cursor n code-points ahead of p.
func (p CharPointer) Plus(n int) CharPointer {
	p.pos += n
	return p
}

// Minus returns a cursor n code-points behind p.
func (p CharPointer) Minus(n int) CharPointer {
	p.pos -= n
	return p
}

// GetAndAdvance returns the code-point p points to, then advances p.
func (p *CharPointer) GetAndAdvance() rune {
	r := p.data[p.pos]
	p.pos++
	return r
}

// --- Writing ---------------------------------------------------------------

// Write stores r at the current position and advances p.
// The text is not terminated.
func (p *CharPointer) Write(r rune) {
	p.data[p.pos] = r
	p.pos++
}

// ReplaceChar stores r at the current position without moving p.
func (p CharPointer) ReplaceChar(r rune) {
	p.data[p.pos] = r
}

// WriteNull stores a terminator at the current position without moving p.
func (p CharPointer) WriteNull() {
	p.data[p.pos] = 0
}

// WriteAll copies src to p, including the terminator, and leaves p pointing
// at the terminator. The destination storage must be large enough.
func (p *CharPointer) WriteAll(src CharPointer) {
	text := src.data[src.pos : src.pos+src.Length()+1]
	_ = p.data[p.pos+len(text)-1] // destination must hold text and terminator
	p.pos += copy(p.data[p.pos:], text) - 1
}

// WriteWithDestByteLimit copies src to p, writing no more than maxBytes bytes,
// terminator included. Returns the number of bytes written, not counting the
// terminator. See charptr.CopyWithDestByteLimit.
func (p *CharPointer) WriteWithDestByteLimit(src CharPointer, maxBytes int) int {
	return charptr.CopyWithDestByteLimit(p, src, maxBytes)
}

// WriteWithCharLimit copies src to p, writing no more than maxChars
// code-points, terminator included. See charptr.CopyWithCharLimit.
func (p *CharPointer) WriteWithCharLimit(src CharPointer, maxChars int) {
	charptr.CopyWithCharLimit(p, src, maxChars)
}

// --- Sizes -----------------------------------------------------------------

// Length returns the number of code-points up to the terminator.
// Length panics if the storage is not terminated.
func (p CharPointer) Length() int {
	n := slices.Index(p.data[p.pos:], 0)
	if n < 0 {
		tracer().Errorf("no terminator within %d code units", len(p.data)-p.pos)
		panic("utf32.CharPointer: storage is not null-terminated")
	}
	return n
}

// LengthUpTo returns the length of the text or maxChars, whichever is lower.
// It never scans beyond the terminator nor beyond maxChars code-points.
func (p CharPointer) LengthUpTo(maxChars int) int {
	return charptr.LengthUpTo(p, maxChars)
}

// SizeInBytes returns the number of bytes used by the text, including the
// terminator.
func (p CharPointer) SizeInBytes() int {
	return UnitSize * (p.Length() + 1)
}

// BytesRequiredFor returns the number of bytes needed to encode r, which is
// constant for UTF-32.
func (CharPointer) BytesRequiredFor(r rune) int {
	return UnitSize
}

// BytesRequiredForText returns the number of bytes needed to represent text
// in UTF-32, not including a terminator. text may be of any encoding.
func BytesRequiredForText[T any, P charptr.Pointer[T]](text T) int {
	return UnitSize * P(&text).Length()
}

// FindTerminatingNull returns a cursor pointing to the terminator of p's text.
func (p CharPointer) FindTerminatingNull() CharPointer {
	return p.Plus(p.Length())
}

// --- Comparing and searching -----------------------------------------------

// Compare compares the text of p with the text of other lexically.
// See charptr.Compare for the semantics of the result.
func (p CharPointer) Compare(other CharPointer) int {
	a, b := p.data[p.pos:], other.data[other.pos:]
	for i := 0; ; i++ {
		if diff := int(a[i]) - int(b[i]); diff != 0 {
			return diff
		}
		if a[i] == 0 {
			return 0
		}
	}
}

// CompareUpTo compares at most maxChars code-points of p and other.
func (p CharPointer) CompareUpTo(other CharPointer, maxChars int) int {
	return charptr.CompareUpTo(p, other, maxChars)
}

// CompareIgnoreCase compares p and other, ignoring case differences.
func (p CharPointer) CompareIgnoreCase(other CharPointer) int {
	return charptr.CompareIgnoreCase(p, other)
}

// CompareIgnoreCaseUpTo compares at most maxChars code-points of p and other,
// ignoring case differences.
func (p CharPointer) CompareIgnoreCaseUpTo(other CharPointer, maxChars int) int {
	return charptr.CompareIgnoreCaseUpTo(p, other, maxChars)
}

// IndexOf returns the code-point offset of needle within p's text, or -1.
func (p CharPointer) IndexOf(needle CharPointer) int {
	return charptr.IndexOf(p, needle)
}

// IndexOfChar returns the offset of the first occurrence of r, or -1.
func (p CharPointer) IndexOfChar(r rune) int {
	for i, c := range p.data[p.pos:] {
		if c == 0 {
			break
		}
		if c == r {
			return i
		}
	}
	return -1
}

// IndexOfCharIgnoreCase returns the offset of the first occurrence of r,
// ignoring case differences, or -1.
func (p CharPointer) IndexOfCharIgnoreCase(r rune) int {
	return charptr.IndexOfCharIgnoreCase(p, r)
}

// FindEndOfWhitespace returns a cursor to the first non-whitespace
// code-point of p's text.
func (p CharPointer) FindEndOfWhitespace() CharPointer {
	return charptr.FindEndOfWhitespace(p)
}

// --- Classification of the current code-point ------------------------------

// IsWhitespace is true if the current code-point is whitespace.
func (p CharPointer) IsWhitespace() bool { return charclass.Default().IsWhitespace(p.Get()) }

// IsDigit is true if the current code-point is a digit.
func (p CharPointer) IsDigit() bool { return charclass.Default().IsDigit(p.Get()) }

// IsLetter is true if the current code-point is a letter.
func (p CharPointer) IsLetter() bool { return charclass.Default().IsLetter(p.Get()) }

// IsLetterOrDigit is true if the current code-point is a letter or a digit.
func (p CharPointer) IsLetterOrDigit() bool { return charclass.Default().IsLetterOrDigit(p.Get()) }

// IsUpperCase is true if the current code-point is upper case.
func (p CharPointer) IsUpperCase() bool { return charclass.Default().IsUpperCase(p.Get()) }

// IsLowerCase is true if the current code-point is lower case.
func (p CharPointer) IsLowerCase() bool { return charclass.Default().IsLowerCase(p.Get()) }

// ToUpperCase returns the upper case version of the current code-point.
func (p CharPointer) ToUpperCase() rune { return charclass.Default().ToUpperCase(p.Get()) }

// ToLowerCase returns the lower case version of the current code-point.
func (p CharPointer) ToLowerCase() rune { return charclass.Default().ToLowerCase(p.Get()) }

// --- Numbers ---------------------------------------------------------------

// IntValue32 parses the text as a 32-bit integer. See charptr.ParseInt32.
func (p CharPointer) IntValue32() int32 {
	return charptr.ParseInt32(p)
}

// IntValue64 parses the text as a 64-bit integer. See charptr.ParseInt64.
func (p CharPointer) IntValue64() int64 {
	return charptr.ParseInt64(p)
}

// DoubleValue parses the text as a floating point number. See charptr.ParseFloat.
func (p CharPointer) DoubleValue() float64 {
	return charptr.ParseFloat(p)
}
