// Package scanner tokenizes veldt source text.
//
// The scanner is a single-pass rune-at-a-time tokenizer with no
// backtracking. It threads a source.Position through every consumed
// character, so each token carries the exact half-open interval of text it
// was scanned from, with tab and newline columns accounted for.
package scanner

import (
	"unicode"
	"unicode/utf8"

	"github.com/veldt-lang/veldt/source"
)

// Scanner tokenizes veldt source code.
type Scanner struct {
	src      string
	off      int             // Current byte offset into src
	pos      source.Position // Position of the character at off
	tokens   []Token
	interner *Interner
}

// New creates a scanner for the given source text. The filename is carried
// as opaque data on every position for diagnostics.
func New(src, filename string) *Scanner {
	return &Scanner{
		src:      src,
		pos:      source.Start(filename),
		tokens:   make([]Token, 0, len(src)/8+16),
		interner: NewInterner(64),
	}
}

// Interner returns the string interner, useful for the parser.
func (s *Scanner) Interner() *Interner { return s.interner }

// ScanAll tokenizes the entire input and returns all tokens, ending with an
// EOF token whose interval is empty.
func (s *Scanner) ScanAll() []Token {
	for s.off < len(s.src) {
		s.skipSpace()
		if s.off >= len(s.src) {
			break
		}

		if s.peek() == '-' && s.peekAt(1) == '-' {
			s.skipComment()
			continue
		}

		s.tokens = append(s.tokens, s.scanToken())
	}

	s.tokens = append(s.tokens, Token{
		Type:     EOF,
		Interval: source.Interval{Start: s.pos, End: s.pos},
	})

	return s.tokens
}

// scanToken scans the next token from the current position.
func (s *Scanner) scanToken() Token {
	start := s.off
	startPos := s.pos

	r := s.next()

	switch {
	case isIdentStart(r):
		return s.scanName(start, startPos)

	case r >= '0' && r <= '9':
		return s.scanNumber(start, startPos)

	case r == '"':
		return s.scanString(start, startPos)

	case r == '(':
		return s.emit(LPAREN, start, startPos)
	case r == ')':
		return s.emit(RPAREN, start, startPos)
	case r == ',':
		return s.emit(COMMA, start, startPos)
	case r == '+':
		return s.emit(PLUS, start, startPos)
	case r == '-':
		return s.emit(MINUS, start, startPos)
	case r == '*':
		return s.emit(STAR, start, startPos)
	case r == '/':
		return s.emit(SLASH, start, startPos)
	case r == '=':
		return s.emit(ASSIGN, start, startPos)

	default:
		return s.emit(ILLEGAL, start, startPos)
	}
}

// scanName scans an identifier, keyword, or qualified name. Qualified names
// like Foo.Bar.baz are scanned as a single lexeme; Token.Parts recovers the
// per-part sub-intervals.
func (s *Scanner) scanName(start int, startPos source.Position) Token {
	qualified := false

	for s.off < len(s.src) {
		r := s.peek()
		if isIdentPart(r) {
			s.next()
			continue
		}
		// A dot continues the name only when an identifier follows.
		if r == '.' && isIdentStart(s.peekAt(1)) {
			qualified = true
			s.next()
			s.next()
			continue
		}
		break
	}

	text := s.interner.Intern(s.src[start:s.off])
	tok := Token{Text: text, Interval: source.Interval{Start: startPos, End: s.pos}}

	switch {
	case qualified:
		tok.Type = QUALIFIED
	default:
		tok.Type = keywordType(text)
	}
	return tok
}

// scanNumber scans an integer literal.
func (s *Scanner) scanNumber(start int, startPos source.Position) Token {
	for s.off < len(s.src) && s.peek() >= '0' && s.peek() <= '9' {
		s.next()
	}
	return s.emit(INT, start, startPos)
}

// scanString scans a quoted string literal. Strings do not span lines; an
// unterminated string yields an ILLEGAL token covering the consumed text.
func (s *Scanner) scanString(start int, startPos source.Position) Token {
	for s.off < len(s.src) {
		r := s.peek()
		if r == '"' {
			s.next()
			return s.emit(STRING, start, startPos)
		}
		if r == '\n' {
			break
		}
		if r == '\\' && s.off+1 < len(s.src) {
			s.next()
			s.next()
			continue
		}
		s.next()
	}
	return s.emit(ILLEGAL, start, startPos)
}

func (s *Scanner) emit(typ Type, start int, startPos source.Position) Token {
	return Token{
		Type:     typ,
		Text:     s.interner.Intern(s.src[start:s.off]),
		Interval: source.Interval{Start: startPos, End: s.pos},
	}
}

// skipSpace skips whitespace, advancing position tracking through tabs and
// newlines.
func (s *Scanner) skipSpace() {
	for s.off < len(s.src) {
		switch s.peek() {
		case ' ', '\t', '\n', '\r':
			s.next()
		default:
			return
		}
	}
}

// skipComment skips a line comment (-- to end of line).
func (s *Scanner) skipComment() {
	for s.off < len(s.src) && s.peek() != '\n' {
		s.next()
	}
}

func (s *Scanner) next() rune {
	r, w := utf8.DecodeRuneInString(s.src[s.off:])
	s.off += w
	s.pos = s.pos.Advance(r)
	return r
}

func (s *Scanner) peek() rune {
	if s.off >= len(s.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.off:])
	return r
}

// peekAt peeks n runes past the current one.
func (s *Scanner) peekAt(n int) rune {
	off := s.off
	for ; n > 0 && off < len(s.src); n-- {
		_, w := utf8.DecodeRuneInString(s.src[off:])
		off += w
	}
	if off >= len(s.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.src[off:])
	return r
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func keywordType(word string) Type {
	switch word {
	case "let":
		return LET
	case "in":
		return IN
	case "if":
		return IF
	case "then":
		return THEN
	case "else":
		return ELSE
	default:
		return IDENT
	}
}
