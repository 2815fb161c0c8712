package charptr

import (
	"math"

	"github.com/npillmayer/charptr/charclass"
)

// Length returns the number of code-points of text, up to (and not including)
// the terminator. The count proceeds one code-point at a time.
func Length[T any, P Pointer[T]](text T) int {
	p := P(&text)
	n := 0
	for p.GetAndAdvance() != 0 {
		n++
	}
	return n
}

// LengthUpTo returns the length of text or maxChars, whichever is lower. It
// never reads past the terminator nor beyond maxChars code-points.
func LengthUpTo[T any, P Pointer[T]](text T, maxChars int) int {
	p := P(&text)
	n := 0
	for n < maxChars && p.GetAndAdvance() != 0 {
		n++
	}
	return n
}

// BytesRequiredFor returns the number of bytes needed to represent text in the
// encoding of dest. The terminator is not included. Use it to size a
// destination buffer before a copy across encodings.
func BytesRequiredFor[D, S any, PD Pointer[D], PS Pointer[S]](dest D, text S) int {
	d, s := PD(&dest), PS(&text)
	n := 0
	for c := s.GetAndAdvance(); c != 0; c = s.GetAndAdvance() {
		n += d.BytesRequiredFor(c)
	}
	return n
}

// --- Copying ---------------------------------------------------------------

// CopyAll copies src to dest, including a terminator. dest is left pointing
// at the terminator written.
//
// dest must provide room for BytesRequiredFor(dest, src) bytes plus a
// terminator.
func CopyAll[D, S any, PD Pointer[D], PS Pointer[S]](dest PD, src S) {
	s := PS(&src)
	for {
		c := s.GetAndAdvance()
		if c == 0 {
			break
		}
		dest.Write(c)
	}
	dest.WriteNull()
}

// CopyWithDestByteLimit copies src to dest, writing no more than maxBytes bytes
// to dest, terminator included. Copying stops before the first code-point
// whose encoding would not fit. dest is always terminated, even if src has
// been truncated (unless maxBytes leaves no room for a terminator either).
//
// Returns the number of bytes written, not counting the terminator.
func CopyWithDestByteLimit[D, S any, PD Pointer[D], PS Pointer[S]](dest PD, src S, maxBytes int) int {
	s := PS(&src)
	budget := maxBytes - dest.BytesRequiredFor(0)
	if budget < 0 {
		CT().Debugf("no room for terminator within %d bytes", maxBytes)
		return 0
	}
	written := 0
	for {
		c := s.GetAndAdvance()
		if c == 0 {
			break
		}
		need := dest.BytesRequiredFor(c)
		if written+need > budget {
			CT().Debugf("copy truncated after %d bytes, limit is %d", written, maxBytes)
			break
		}
		dest.Write(c)
		written += need
	}
	dest.WriteNull()
	return written
}

// CopyWithCharLimit copies src to dest, writing no more than maxChars
// code-points to dest, terminator included. dest is always terminated if
// maxChars > 0; for maxChars <= 0 nothing is written.
func CopyWithCharLimit[D, S any, PD Pointer[D], PS Pointer[S]](dest PD, src S, maxChars int) {
	if maxChars <= 0 {
		return
	}
	s := PS(&src)
	for maxChars--; maxChars > 0; maxChars-- {
		c := s.GetAndAdvance()
		if c == 0 {
			break
		}
		dest.Write(c)
	}
	dest.WriteNull()
}

// --- Comparison ------------------------------------------------------------

// Compare compares two texts lexically, code-point by code-point.
// It returns the difference of the first pair of differing code-points,
// i.e. a negative value if a sorts before b, 0 if both are equal, and a
// positive value otherwise. A text which is a prefix of the other sorts first.
func Compare[A, B any, PA Pointer[A], PB Pointer[B]](a A, b B) int {
	return compareRunes(PA(&a), PB(&b), math.MaxInt, nil)
}

// CompareUpTo compares two texts like Compare, but considers at most
// maxChars code-points. Texts equal within the first maxChars code-points
// compare as equal.
func CompareUpTo[A, B any, PA Pointer[A], PB Pointer[B]](a A, b B, maxChars int) int {
	return compareRunes(PA(&a), PB(&b), maxChars, nil)
}

// CompareIgnoreCase compares two texts like Compare, with each code-point
// folded by the default classifier (see charclass.Fold).
func CompareIgnoreCase[A, B any, PA Pointer[A], PB Pointer[B]](a A, b B) int {
	return compareRunes(PA(&a), PB(&b), math.MaxInt, charclass.Default())
}

// CompareIgnoreCaseUpTo compares two texts like CompareUpTo, with each
// code-point folded by the default classifier.
func CompareIgnoreCaseUpTo[A, B any, PA Pointer[A], PB Pointer[B]](a A, b B, maxChars int) int {
	return compareRunes(PA(&a), PB(&b), maxChars, charclass.Default())
}

// compareRunes consumes s1 and s2. If c is non-nil, code-points are folded
// before being compared.
func compareRunes[PA, PB Cursor](s1 PA, s2 PB, limit int, c charclass.Classifier) int {
	for n := 0; n < limit; n++ {
		c1, c2 := s1.GetAndAdvance(), s2.GetAndAdvance()
		if c != nil {
			c1, c2 = charclass.Fold(c, c1), charclass.Fold(c, c2)
		}
		if diff := int(c1) - int(c2); diff != 0 {
			return diff
		}
		if c1 == 0 {
			break
		}
	}
	return 0
}

// --- Searching -------------------------------------------------------------

// IndexOf returns the code-point offset of the first occurrence of needle
// within text, or -1 if needle does not occur. An empty needle is found at
// offset 0. text and needle may use different encodings.
func IndexOf[T, N any, PT Pointer[T], PN Pointer[N]](text T, needle N) int {
	t := PT(&text)
	n := PN(&needle).Length()
	for i := 0; ; i++ {
		probe, nd := text, needle
		if compareRunes(PT(&probe), PN(&nd), n, nil) == 0 {
			return i
		}
		if t.GetAndAdvance() == 0 {
			return -1
		}
	}
}

// IndexOfChar returns the code-point offset of the first occurrence of r
// within text, or -1 if r does not occur before the terminator.
func IndexOfChar[T any, P Pointer[T]](text T, r rune) int {
	p := P(&text)
	for i := 0; !p.IsEmpty(); i++ {
		if p.GetAndAdvance() == r {
			return i
		}
	}
	return -1
}

// IndexOfCharIgnoreCase is like IndexOfChar, with r and the code-points of
// text folded by the default classifier.
func IndexOfCharIgnoreCase[T any, P Pointer[T]](text T, r rune) int {
	c := charclass.Default()
	r = charclass.Fold(c, r)
	p := P(&text)
	for i := 0; !p.IsEmpty(); i++ {
		if charclass.Fold(c, p.GetAndAdvance()) == r {
			return i
		}
	}
	return -1
}

// FindEndOfWhitespace returns a cursor advanced past all leading whitespace
// of text. The result points to the first non-whitespace code-point or to the
// terminator.
func FindEndOfWhitespace[T any, P Pointer[T]](text T) T {
	p := P(&text)
	c := charclass.Default()
	for c.IsWhitespace(p.Get()) {
		p.Advance()
	}
	return text
}

// --- Classification of the current code-point -----------------------------

// IsWhitespace is true if the code-point text points to is whitespace.
func IsWhitespace[T any, P Pointer[T]](text T) bool {
	return charclass.Default().IsWhitespace(P(&text).Get())
}

// IsDigit is true if the code-point text points to is a digit.
func IsDigit[T any, P Pointer[T]](text T) bool {
	return charclass.Default().IsDigit(P(&text).Get())
}

// IsLetter is true if the code-point text points to is a letter.
func IsLetter[T any, P Pointer[T]](text T) bool {
	return charclass.Default().IsLetter(P(&text).Get())
}

// IsLetterOrDigit is true if the code-point text points to is a letter or a digit.
func IsLetterOrDigit[T any, P Pointer[T]](text T) bool {
	return charclass.Default().IsLetterOrDigit(P(&text).Get())
}

// IsUpperCase is true if the code-point text points to is upper case.
func IsUpperCase[T any, P Pointer[T]](text T) bool {
	return charclass.Default().IsUpperCase(P(&text).Get())
}

// IsLowerCase is true if the code-point text points to is lower case.
func IsLowerCase[T any, P Pointer[T]](text T) bool {
	return charclass.Default().IsLowerCase(P(&text).Get())
}

// ToUpperCase returns the upper case mapping of the code-point text points to.
func ToUpperCase[T any, P Pointer[T]](text T) rune {
	return charclass.Default().ToUpperCase(P(&text).Get())
}

// ToLowerCase returns the lower case mapping of the code-point text points to.
func ToLowerCase[T any, P Pointer[T]](text T) rune {
	return charclass.Default().ToLowerCase(P(&text).Get())
}
