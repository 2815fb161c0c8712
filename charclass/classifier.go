package charclass

import (
	"sync"
	"sync/atomic"
	"unicode"
)

// Classifier is a table of predicates and mappings for single code-points.
// Implementations must be pure functions of their argument and safe for
// concurrent use.
type Classifier interface {
	IsWhitespace(r rune) bool
	IsDigit(r rune) bool
	IsLetter(r rune) bool
	IsLetterOrDigit(r rune) bool
	IsUpperCase(r rune) bool
	IsLowerCase(r rune) bool
	ToUpperCase(r rune) rune
	ToLowerCase(r rune) rune
}

var setupOnce sync.Once

// SetupClasses creates the range tables used for classification.
// (Concurrency-safe).
func SetupClasses() {
	setupOnce.Do(setupClasses)
}

// --- Default classifier ----------------------------------------------------

// Unicode is the locale-independent classifier. Whitespace is taken from the
// generated White_Space table, everything else from package unicode.
type Unicode struct{}

var _ Classifier = Unicode{}

// IsWhitespace is part of interface Classifier.
func (Unicode) IsWhitespace(r rune) bool {
	SetupClasses()
	return unicode.Is(WhiteSpace, r)
}

// IsDigit is part of interface Classifier.
func (Unicode) IsDigit(r rune) bool {
	return unicode.IsDigit(r)
}

// IsLetter is part of interface Classifier.
func (Unicode) IsLetter(r rune) bool {
	return unicode.IsLetter(r)
}

// IsLetterOrDigit is part of interface Classifier.
func (Unicode) IsLetterOrDigit(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsUpperCase is part of interface Classifier.
func (Unicode) IsUpperCase(r rune) bool {
	return unicode.IsUpper(r)
}

// IsLowerCase is part of interface Classifier.
func (Unicode) IsLowerCase(r rune) bool {
	return unicode.IsLower(r)
}

// ToUpperCase is part of interface Classifier.
func (Unicode) ToUpperCase(r rune) rune {
	return unicode.ToUpper(r)
}

// ToLowerCase is part of interface Classifier.
func (Unicode) ToLowerCase(r rune) rune {
	return unicode.ToLower(r)
}

// --- Process-wide selection ------------------------------------------------

type holder struct {
	c Classifier
}

var current atomic.Value // of type holder

// Default returns the classifier currently in use by cursors and the
// generic text algorithms. Unless set otherwise, this is Unicode{}.
func Default() Classifier {
	if h, ok := current.Load().(holder); ok {
		return h.c
	}
	return Unicode{}
}

// SetDefault replaces the process-wide classifier. A nil argument restores
// Unicode{}.
func SetDefault(c Classifier) {
	if c == nil {
		c = Unicode{}
	}
	current.Store(holder{c: c})
}

// Fold maps r to the form used by case-insensitive comparison.
// Folding is upper-casing with classifier c.
func Fold(c Classifier, r rune) rune {
	return c.ToUpperCase(r)
}
