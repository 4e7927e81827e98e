package scanner

import (
	"strings"

	"github.com/veldt-lang/veldt/source"
)

// Type represents the type of token scanned from the input.
type Type uint8

const (
	// Special tokens
	EOF Type = iota
	ILLEGAL

	// Keywords
	LET  // let
	IN   // in
	IF   // if
	THEN // then
	ELSE // else

	// Literals
	IDENT     // x, foo
	QUALIFIED // Foo.Bar.baz
	INT       // 123
	STRING    // "quoted string"

	// Symbols
	LPAREN // (
	RPAREN // )
	COMMA  // ,
	PLUS   // +
	MINUS  // -
	STAR   // *
	SLASH  // /
	ASSIGN // =
)

var tokenNames = map[Type]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	LET:  "let",
	IN:   "in",
	IF:   "if",
	THEN: "then",
	ELSE: "else",

	IDENT:     "IDENT",
	QUALIFIED: "QUALIFIED",
	INT:       "INT",
	STRING:    "STRING",

	LPAREN: "(",
	RPAREN: ")",
	COMMA:  ",",
	PLUS:   "+",
	MINUS:  "-",
	STAR:   "*",
	SLASH:  "/",
	ASSIGN: "=",
}

func (t Type) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is a lexical token together with the span of source text it was
// scanned from.
type Token struct {
	Type     Type
	Text     string
	Interval source.Interval
}

// Len returns the length of the token in characters.
func (t Token) Len() int { return t.Interval.Len() }

// Range returns the token's location. A qualified name yields a split range
// covering each dot-separated part but not the dots between them; every
// other token is a single contiguous span.
func (t Token) Range() source.Range {
	if t.Type != QUALIFIED {
		return source.FromInterval(t.Interval)
	}
	r := source.NoRange
	for _, part := range t.Parts() {
		r = source.FuseRanges(r, source.FromInterval(part.Interval))
	}
	return r
}

// Parts splits a QUALIFIED token into its dot-separated parts, each carrying
// the sub-interval of the text it came from. Non-qualified tokens are their
// own single part.
func (t Token) Parts() []Token {
	if t.Type != QUALIFIED {
		return []Token{t}
	}

	var parts []Token
	iv := t.Interval
	rest := t.Text
	for {
		k := strings.IndexByte(rest, '.')
		if k < 0 {
			parts = append(parts, Token{Type: IDENT, Text: rest, Interval: iv})
			return parts
		}
		name := rest[:k]
		parts = append(parts, Token{Type: IDENT, Text: name, Interval: source.Take(name, iv)})
		iv = source.Drop(rest[:k+1], iv)
		rest = rest[k+1:]
	}
}
