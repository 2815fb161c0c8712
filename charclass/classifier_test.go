package charclass

import (
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

func TestWhitespaceTable(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	SetupClasses()
	if WhiteSpace == nil {
		t.Fatalf("whitespace range table not initialized")
	}
	for r := rune(0); r <= 0x3100; r++ {
		if unicode.Is(WhiteSpace, r) != unicode.Is(unicode.White_Space, r) {
			t.Errorf("expected generated table to agree with package unicode for %#U", r)
		}
	}
}

func TestUnicodeClassifier(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	c := Unicode{}
	if !c.IsWhitespace(' ') || !c.IsWhitespace('\t') || !c.IsWhitespace(0x3000) {
		t.Errorf("expected space, tab and ideographic space to be whitespace")
	}
	if c.IsWhitespace('a') || c.IsWhitespace(0) {
		t.Errorf("expected 'a' and NUL not to be whitespace")
	}
	if !c.IsDigit('7') || c.IsDigit('x') {
		t.Errorf("digit classification is wrong")
	}
	if !c.IsLetter(0x00E9) || c.IsLetter('1') {
		t.Errorf("letter classification is wrong")
	}
	if !c.IsLetterOrDigit('1') || !c.IsLetterOrDigit('q') || c.IsLetterOrDigit('-') {
		t.Errorf("letter-or-digit classification is wrong")
	}
	if !c.IsUpperCase('Q') || c.IsUpperCase('q') || !c.IsLowerCase('q') {
		t.Errorf("case classification is wrong")
	}
	if u := c.ToUpperCase('q'); u != 'Q' {
		t.Errorf("expected upper case of 'q' to be 'Q', is %#U", u)
	}
	if l := c.ToLowerCase(0x00C4); l != 0x00E4 {
		t.Errorf("expected lower case of U+00C4 to be U+00E4, is %#U", l)
	}
}

func TestDefaultClassifier(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if _, ok := Default().(Unicode); !ok {
		t.Fatalf("expected default classifier to be Unicode{}, is %T", Default())
	}
	tr := NewLocale(language.Turkish)
	SetDefault(tr)
	if Default() != Classifier(tr) {
		t.Errorf("expected default classifier to be the Turkish locale")
	}
	SetDefault(nil)
	if _, ok := Default().(Unicode); !ok {
		t.Errorf("expected SetDefault(nil) to restore Unicode{}, is %T", Default())
	}
}

func TestFold(t *testing.T) {
	if f := Fold(Unicode{}, 'a'); f != 'A' {
		t.Errorf("expected 'a' to fold to 'A', is %#U", f)
	}
	if Fold(Unicode{}, 'a') != Fold(Unicode{}, 'A') {
		t.Errorf("expected 'a' and 'A' to fold to the same code-point")
	}
}
