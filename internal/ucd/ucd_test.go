package ucd

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/charptr/internal/testdata"
)

func TestParseLine(t *testing.T) {
	input := strings.NewReader("000E..001F;CM     # Cc    [18] <control-000E>..<control-001F>")
	p := NewUCDParser(input)
	if !p.Next() {
		t.Fatalf("expected a data line, have error %v", p.Err())
	}
	t.Logf("token = %v", p.Token())
	if p.String(1) != "CM" {
		t.Errorf("expected field #1 to be 'CM', is %q", p.String(1))
	}
	from, to := p.Range(0)
	if from != 0x0e || to != 0x1f {
		t.Errorf("expected range to be 0E..1F, is %02X..%02X", from, to)
	}
	if p.Token().Comment != "Cc    [18] <control-000E>..<control-001F>" {
		t.Errorf("unexpected comment %q", p.Token().Comment)
	}
	if p.Next() {
		t.Errorf("expected end of input")
	}
	if p.Err() != nil {
		t.Errorf("expected no error at end of input, have %v", p.Err())
	}
}

func TestParseSingleCodePoint(t *testing.T) {
	p := NewUCDParser(strings.NewReader("\n# comment only\n0020 ; White_Space # Zs SPACE\n"))
	if !p.Next() {
		t.Fatalf("expected a data line, have error %v", p.Err())
	}
	from, to := p.Range(0)
	if from != ' ' || to != ' ' {
		t.Errorf("expected single code-point range U+0020, is %#U..%#U", from, to)
	}
	if p.Token().LineNo != 3 {
		t.Errorf("expected data line to be line 3, is %d", p.Token().LineNo)
	}
}

func TestParseErrors(t *testing.T) {
	p := NewUCDParser(strings.NewReader("00G0 ; White_Space\n"))
	if p.Next() {
		t.Fatalf("expected hex decoding to fail")
	}
	if p.Err() == nil {
		t.Errorf("expected an error for invalid hex digits")
	}
	p = NewUCDParser(strings.NewReader("0020 White_Space\n"))
	if p.Next() || !errors.Is(p.Err(), ErrSyntax) {
		t.Errorf("expected syntax error for missing separator, have %v", p.Err())
	}
}

func TestPropListFile(t *testing.T) {
	f, err := testdata.OpenPropList()
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	p := NewUCDParser(f)
	cnt := 0
	for p.Next() {
		if p.String(1) != "White_Space" {
			continue
		}
		from, to := p.Range(0)
		cnt += int(to-from) + 1
	}
	if p.Err() != nil {
		t.Fatal(p.Err())
	}
	if cnt != 25 {
		t.Errorf("expected 25 White_Space code-points, have %d", cnt)
	}
}
