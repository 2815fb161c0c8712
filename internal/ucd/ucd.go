/*
Package ucd provides a parser for Unicode Character Database files.

The format of UCD files is defined in http://www.unicode.org/reports/tr44/.
See http://www.unicode.org/Public/UCD/latest/ucd/ for example files.
Data lines look like

   2000..200A    ; White_Space # Zs  [11] EN QUAD..HAIR SPACE

i.e. a single code-point or a range of code-points, followed by fields
separated by semicolons and an optional rest-of-line comment.
Empty lines and lines consisting of a comment only are skipped.

This is a very rough implementation.
Creating Unicode tables is a rare task.
*/
package ucd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Token subsumes the properties of a data line of UCD input.
type Token struct {
	LineNo   int      // line of the token within the input source
	runeFrom rune     // first/single rune
	runeTo   rune     // final rune of range (may be identical to runeFrom)
	Fields   []string // fields of the line, without the leading code-point field
	Comment  string   // rest-of-line comment of data item lines
}

func (token *Token) String() string {
	return fmt.Sprintf("token[at %d %#U..%#U %#v]", token.LineNo,
		token.runeFrom, token.runeTo, token.Fields)
}

// Parser iterates over the data lines of a UCD file.
type Parser struct {
	scanner *bufio.Scanner
	token   *Token
	lineno  int
	err     error
}

// NewUCDParser creates a parser for an input reader.
func NewUCDParser(r io.Reader) *Parser {
	if r == nil {
		r = strings.NewReader("")
	}
	return &Parser{scanner: bufio.NewScanner(r)}
}

// Next advances the parser to the next data line, which will then be available
// through Range, String and Token. It returns false when parsing stops, either
// by reaching the end of the input or an error.
// After Next returns false, Err will return any error that occurred.
func (p *Parser) Next() bool {
	if p.err != nil {
		return false
	}
	for p.scanner.Scan() {
		p.lineno++
		line := p.scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			if strings.TrimSpace(line[:i]) == "" {
				continue // comment line
			}
		} else if strings.TrimSpace(line) == "" {
			continue
		}
		token, err := parseLine(line, p.lineno)
		if err != nil {
			p.err = err
			p.token = nil
			return false
		}
		p.token = token
		return true
	}
	p.err = p.scanner.Err()
	p.token = nil
	return false
}

// Token returns the most recent token produced by a call to Next.
func (p *Parser) Token() *Token {
	return p.token
}

// Range gets the character range from the current data line. i is ignored
// unless it is 0, as only the first field denotes code-points.
func (p *Parser) Range(i int) (from, to rune) {
	if p.token == nil || i != 0 {
		return 0, 0
	}
	return p.token.Range()
}

// String gets field #i (1…n) from the current data line, whitespace trimmed.
func (p *Parser) String(i int) string {
	if p.token == nil {
		return ""
	}
	return p.token.Field(i)
}

// Err returns the first error that was encountered by the parser.
func (p *Parser) Err() error {
	return p.err
}

// Field gets field #i (1…n) from the token.
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Range gets the character range from the token.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}

// ErrSyntax flags a malformed data line.
var ErrSyntax = errors.New("UCD parser: syntax error")

func parseLine(line string, lineno int) (*Token, error) {
	token := &Token{LineNo: lineno}
	if i := strings.IndexByte(line, '#'); i >= 0 {
		token.Comment = strings.TrimSpace(line[i+1:])
		line = line[:i]
	}
	fields := strings.Split(line, ";")
	if len(fields) < 2 {
		return nil, fmt.Errorf("line %d: missing field separator: %w", lineno, ErrSyntax)
	}
	cps := strings.TrimSpace(fields[0])
	from, to := cps, cps
	if i := strings.Index(cps, ".."); i >= 0 {
		from, to = cps[:i], cps[i+2:]
	}
	var err error
	if token.runeFrom, err = hexRune(from); err != nil {
		return nil, fmt.Errorf("line %d: hex decoding error: %w", lineno, err)
	}
	if token.runeTo, err = hexRune(to); err != nil {
		return nil, fmt.Errorf("line %d: hex decoding error: %w", lineno, err)
	}
	if token.runeTo < token.runeFrom {
		return nil, fmt.Errorf("line %d: inverted range %s: %w", lineno, cps, ErrSyntax)
	}
	for _, f := range fields[1:] {
		token.Fields = append(token.Fields, strings.TrimSpace(f))
	}
	return token, nil
}

func hexRune(s string) (rune, error) {
	n, err := strconv.ParseInt(s, 16, 32)
	if err != nil {
		return 0, err
	}
	return rune(n), nil
}
