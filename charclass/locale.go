package charclass

import (
	"context"
	"unicode/utf8"

	jj "github.com/cloudfoundry/jibber_jabber"
	pool "github.com/jolestar/go-commons-pool"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Locale is a classifier with language-specific case mappings, e.g. for
// Turkish, where 'i' upper-cases to U+0130 LATIN CAPITAL LETTER I WITH DOT ABOVE.
// Predicates other than case mapping are identical to Unicode{}.
//
// Case mappings which would expand a single code-point to more than one
// code-point (e.g. 'ß' => "SS") fall back to the simple mapping of package
// unicode, as a cursor always maps one code-point to one code-point.
//
// Languages without case mappings of their own map exactly like Unicode{};
// for these no case mappers are created at all.
type Locale struct {
	Unicode
	Tag    language.Tag     // language the case mappings are tailored for
	casers *pool.ObjectPool // nil if Tag has no tailored case mappings
	ctx    context.Context
}

// Languages with case mappings deviating from the root mapping
// (Unicode SpecialCasing.txt, plus Greek upper-casing in x/text/cases).
var tailoredCasing = map[string]bool{
	"tr": true, // dotted/dotless i
	"az": true, // dotted/dotless i
	"lt": true, // retained dot above
	"el": true, // accents dropped when upper-casing
}

var _ Classifier = (*Locale)(nil)

// cases.Caser may be stateful and must not be shared between goroutines.
// Casers are therefore pooled per Locale.
type caserPair struct {
	upper, lower cases.Caser
}

// NewLocale creates a classifier with case mappings for language tag.
// Tailored case mappings are only available for Turkish, Azeri, Lithuanian
// and Greek.
func NewLocale(tag language.Tag) *Locale {
	loc := &Locale{Tag: tag, ctx: context.Background()}
	if base, _ := tag.Base(); !tailoredCasing[base.String()] {
		return loc
	}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &caserPair{
				upper: cases.Upper(tag),
				lower: cases.Lower(tag),
			}, nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	loc.casers = pool.NewObjectPool(loc.ctx, factory, config)
	T().Debugf("created case mapping pool for locale %v", tag)
	return loc
}

// FromEnvironment creates a Locale classifier for the user's locale, as
// detected from the environment. If detection fails, "en-US" is assumed.
func FromEnvironment() *Locale {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf(err.Error())
		userLocale = "en-US"
		T().Infof("charclass sets default user locale %v", userLocale)
	} else {
		T().Infof("charclass detected user locale %v", userLocale)
	}
	return NewLocale(language.Make(userLocale))
}

// ToUpperCase is part of interface Classifier.
func (loc *Locale) ToUpperCase(r rune) rune {
	return loc.mapRune(r, true)
}

// ToLowerCase is part of interface Classifier.
func (loc *Locale) ToLowerCase(r rune) rune {
	return loc.mapRune(r, false)
}

func (loc *Locale) mapRune(r rune, upper bool) rune {
	fallback := loc.Unicode.ToLowerCase
	if upper {
		fallback = loc.Unicode.ToUpperCase
	}
	if r == 0 || !utf8.ValidRune(r) {
		return r
	}
	if loc.casers == nil {
		return fallback(r)
	}
	o, err := loc.casers.BorrowObject(loc.ctx)
	if err != nil {
		T().Errorf("cannot borrow case mapper for %v: %v", loc.Tag, err)
		return fallback(r)
	}
	pair := o.(*caserPair)
	var mapped string
	if upper {
		mapped = pair.upper.String(string(r))
	} else {
		mapped = pair.lower.String(string(r))
	}
	_ = loc.casers.ReturnObject(loc.ctx, pair)
	m, size := utf8.DecodeRuneInString(mapped)
	if size == 0 || size != len(mapped) || m == utf8.RuneError {
		return fallback(r)
	}
	return m
}
