package charptr

import (
	"errors"
	"fmt"
	"strconv"
)

// ParseInt32 parses the decimal integer at the start of text: leading
// whitespace, an optional sign, then ASCII digits. Parsing stops at the first
// code-point which is not a digit. Overflow wraps around like int32
// arithmetic; if no digits are present, 0 is returned.
func ParseInt32[T any, P Pointer[T]](text T) int32 {
	return parseInt[int32, T, P](text)
}

// ParseInt64 is like ParseInt32 for 64-bit integers.
func ParseInt64[T any, P Pointer[T]](text T) int64 {
	return parseInt[int64, T, P](text)
}

func parseInt[I int32 | int64, T any, P Pointer[T]](text T) I {
	text = FindEndOfWhitespace[T, P](text)
	p := P(&text)
	neg := parseSign(p)
	var v I
	for c := p.Get(); isDigit(c); c = p.Get() {
		v = v*10 + I(c-'0')
		p.Advance()
	}
	if neg {
		return -v
	}
	return v
}

// ErrNoDigits is returned by the checked parsers if text does not start with
// a numeral. ErrOverflow is returned if the numeral does not fit into the
// target type.
var (
	ErrNoDigits = errors.New("charptr: no digits to parse")
	ErrOverflow = errors.New("charptr: numeral out of range")
)

// ParseInt32Checked parses like ParseInt32, but reports a missing numeral and
// overflow as errors instead of returning 0 or a wrapped-around value.
func ParseInt32Checked[T any, P Pointer[T]](text T) (int32, error) {
	v, err := parseIntChecked[T, P](text, 32)
	return int32(v), err
}

// ParseInt64Checked parses like ParseInt64, but reports a missing numeral and
// overflow as errors instead of returning 0 or a wrapped-around value.
func ParseInt64Checked[T any, P Pointer[T]](text T) (int64, error) {
	return parseIntChecked[T, P](text, 64)
}

func parseIntChecked[T any, P Pointer[T]](text T, bitSize uint) (int64, error) {
	text = FindEndOfWhitespace[T, P](text)
	p := P(&text)
	neg := parseSign(p)
	cutoff := uint64(1) << (bitSize - 1) // magnitude of the smallest value
	if !neg {
		cutoff--
	}
	var v uint64
	digits := 0
	for c := p.Get(); isDigit(c); c = p.Get() {
		d := uint64(c - '0')
		if v > (cutoff-d)/10 {
			CT().Debugf("numeral exceeds %d-bit integer range", bitSize)
			return 0, fmt.Errorf("parse %d-bit integer: %w", bitSize, ErrOverflow)
		}
		v = v*10 + d
		digits++
		p.Advance()
	}
	if digits == 0 {
		return 0, fmt.Errorf("parse %d-bit integer: %w", bitSize, ErrNoDigits)
	}
	if neg {
		return -int64(v), nil
	}
	return int64(v), nil
}

// ParseFloat parses the decimal floating point numeral at the start of text:
// leading whitespace, an optional sign, digits with an optional fraction, and
// an optional exponent. The longest prefix forming a valid numeral is
// converted; an exponent marker without exponent digits is ignored.
// Values out of range saturate to ±Inf or 0. If no numeral is present, 0 is
// returned.
func ParseFloat[T any, P Pointer[T]](text T) float64 {
	text = FindEndOfWhitespace[T, P](text)
	p := P(&text)
	var scratch [64]byte
	buf := scratch[:0]
	if c := p.Get(); c == '-' || c == '+' {
		buf = append(buf, byte(c))
		p.Advance()
	}
	mantissa := 0
	for c := p.Get(); isDigit(c); c = p.Get() {
		buf = append(buf, byte(c))
		mantissa++
		p.Advance()
	}
	if p.Get() == '.' {
		buf = append(buf, '.')
		p.Advance()
		for c := p.Get(); isDigit(c); c = p.Get() {
			buf = append(buf, byte(c))
			mantissa++
			p.Advance()
		}
	}
	if mantissa == 0 {
		return 0
	}
	if c := p.Get(); c == 'e' || c == 'E' {
		mark := len(buf)
		buf = append(buf, 'e')
		p.Advance()
		if c := p.Get(); c == '-' || c == '+' {
			buf = append(buf, byte(c))
			p.Advance()
		}
		expDigits := 0
		for c := p.Get(); isDigit(c); c = p.Get() {
			buf = append(buf, byte(c))
			expDigits++
			p.Advance()
		}
		if expDigits == 0 {
			buf = buf[:mark]
		}
	}
	f, err := strconv.ParseFloat(string(buf), 64)
	if err != nil {
		// only range errors are possible here; f is ±Inf or 0 then
		CT().Debugf("float numeral %q out of range", buf)
	}
	return f
}

func parseSign[P Cursor](p P) (neg bool) {
	switch p.Get() {
	case '-':
		neg = true
		p.Advance()
	case '+':
		p.Advance()
	}
	return
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
