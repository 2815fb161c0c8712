package charptr_test

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/charptr"
	"github.com/npillmayer/schuko/testconfig"
)

func TestParseInt32(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, x := range []struct {
		text string
		v    int32
	}{
		{"42", 42},
		{"  -123abc", -123},
		{"+7", 7},
		{"\t\n 0099", 99},
		{"abc", 0},
		{"", 0},
		{"-", 0},
		{"12 34", 12},
		{"2147483647", math.MaxInt32},
		{"2147483648", math.MinInt32},
		{"-2147483648", math.MinInt32},
	} {
		if v := charptr.ParseInt32(u8(x.text)); v != x.v {
			t.Errorf("expected %q to parse as %d, is %d", x.text, x.v, v)
		}
		if v := charptr.ParseInt32(u16(x.text)); v != x.v {
			t.Errorf("expected utf16 %q to parse as %d, is %d", x.text, x.v, v)
		}
	}
}

func TestParseInt64(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if v := charptr.ParseInt64(u32("  -9876543210")); v != -9876543210 {
		t.Errorf("expected -9876543210, is %d", v)
	}
	if v := charptr.ParseInt64(u32("9223372036854775808")); v != math.MinInt64 {
		t.Errorf("expected overflow to wrap around to %d, is %d", int64(math.MinInt64), v)
	}
	if v := charptr.ParseInt64(u32("x1")); v != 0 {
		t.Errorf("expected 0 for missing digits, is %d", v)
	}
}

func TestParseIntChecked(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if v, err := charptr.ParseInt32Checked(u8(" -2147483648")); err != nil || v != math.MinInt32 {
		t.Errorf("expected %d, is %d (err = %v)", int32(math.MinInt32), v, err)
	}
	if _, err := charptr.ParseInt32Checked(u8("2147483648")); !errors.Is(err, charptr.ErrOverflow) {
		t.Errorf("expected overflow error, is %v", err)
	}
	if _, err := charptr.ParseInt32Checked(u8("+")); !errors.Is(err, charptr.ErrNoDigits) {
		t.Errorf("expected no-digits error, is %v", err)
	}
	if v, err := charptr.ParseInt64Checked(u32("9223372036854775807x")); err != nil || v != math.MaxInt64 {
		t.Errorf("expected %d, is %d (err = %v)", int64(math.MaxInt64), v, err)
	}
	if v, err := charptr.ParseInt64Checked(u32("-9223372036854775808")); err != nil || v != math.MinInt64 {
		t.Errorf("expected %d, is %d (err = %v)", int64(math.MinInt64), v, err)
	}
	if _, err := charptr.ParseInt64Checked(u32("-9223372036854775809")); !errors.Is(err, charptr.ErrOverflow) {
		t.Errorf("expected overflow error, is %v", err)
	}
}

func TestParseFloat(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, x := range []struct {
		text string
		v    float64
	}{
		{"1.5e3", 1500},
		{"  -2.5", -2.5},
		{"+0.25", 0.25},
		{".5", 0.5},
		{"5.", 5},
		{"3e", 3},
		{"3e+", 3},
		{"2E-2", 0.02},
		{"12.5x", 12.5},
		{"1e-400", 0},
		{".", 0},
		{"abc", 0},
		{"", 0},
	} {
		if v := charptr.ParseFloat(u8(x.text)); v != x.v {
			t.Errorf("expected %q to parse as %g, is %g", x.text, x.v, v)
		}
	}
	if v := charptr.ParseFloat(u32("1e400")); !math.IsInf(v, 1) {
		t.Errorf("expected +Inf for out-of-range numeral, is %g", v)
	}
	if v := charptr.ParseFloat(u32("-1e400")); !math.IsInf(v, -1) {
		t.Errorf("expected -Inf for out-of-range numeral, is %g", v)
	}
}
