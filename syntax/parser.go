package syntax

import (
	"fmt"

	"github.com/veldt-lang/veldt/scanner"
	"github.com/veldt-lang/veldt/source"
)

// ParseError represents a syntax error during parsing.
type ParseError struct {
	Pos     source.Position
	Rng     source.Range // Location of the offending token, may be empty
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Range returns the location of the offending token.
func (e *ParseError) Range() source.Range { return e.Rng }

// Binding powers for infix operators. Calls bind tighter than any operator.
const (
	bpSum     = 10 // + -
	bpProduct = 20 // * /
)

// Parser builds expression trees from a token stream.
type Parser struct {
	tokens []scanner.Token
	pos    int
}

// Parse scans and parses a single expression from src. The filename is
// carried on every position of the result for diagnostics.
func Parse(src, filename string) (Expr, error) {
	return ParseTokens(scanner.New(src, filename).ScanAll())
}

// ParseTokens parses a single expression from an already scanned token
// stream. The stream must end with an EOF token.
func ParseTokens(tokens []scanner.Token) (Expr, error) {
	p := &Parser{tokens: tokens}

	expr, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != scanner.EOF {
		return nil, p.errorAt(tok, "unexpected %s after expression", describe(tok))
	}
	return expr, nil
}

// parseExpr parses an expression with at least the given binding power,
// Pratt style.
func (p *Parser) parseExpr(minBP int) (Expr, error) {
	lhs, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		switch tok.Type {
		case scanner.LPAREN:
			lhs, err = p.parseCall(lhs)
			if err != nil {
				return nil, err
			}

		case scanner.PLUS, scanner.MINUS, scanner.STAR, scanner.SLASH:
			bp := bpSum
			if tok.Type == scanner.STAR || tok.Type == scanner.SLASH {
				bp = bpProduct
			}
			if bp < minBP {
				return lhs, nil
			}
			p.next()

			// Left associative: the right operand must bind strictly tighter.
			rhs, err := p.parseExpr(bp + 1)
			if err != nil {
				return nil, err
			}
			node := &Binary{Op: tok.Text, LHS: lhs, RHS: rhs}
			node.SetRange(source.FuseRanged(lhs, tok, rhs))
			lhs = node

		default:
			return lhs, nil
		}
	}
}

// parsePrefix parses an atom or prefix form.
func (p *Parser) parsePrefix() (Expr, error) {
	tok := p.next()

	switch tok.Type {
	case scanner.IDENT:
		node := &Name{Parts: []string{tok.Text}}
		node.SetRange(tok.Range())
		return node, nil

	case scanner.QUALIFIED:
		parts := tok.Parts()
		node := &Name{Parts: make([]string, len(parts))}
		for i, part := range parts {
			node.Parts[i] = part.Text
		}
		// The split range of the lexeme: each part covered, dots not.
		node.SetRange(tok.Range())
		return node, nil

	case scanner.INT:
		node := &Lit{Kind: IntLit, Value: tok.Text}
		node.SetRange(tok.Range())
		return node, nil

	case scanner.STRING:
		node := &Lit{Kind: StringLit, Value: tok.Text}
		node.SetRange(tok.Range())
		return node, nil

	case scanner.MINUS:
		operand, err := p.parseExpr(bpProduct + 1)
		if err != nil {
			return nil, err
		}
		node := &Unary{Op: tok.Text, Operand: operand}
		node.SetRange(source.FuseRanged(tok, operand))
		return node, nil

	case scanner.LPAREN:
		inner, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		rparen, err := p.expect(scanner.RPAREN)
		if err != nil {
			return nil, err
		}
		node := &Group{Inner: inner}
		node.SetRange(source.FuseRanged(tok, inner, rparen))
		return node, nil

	case scanner.IF:
		return p.parseIf(tok)

	case scanner.LET:
		return p.parseLet(tok)

	case scanner.EOF:
		return nil, p.errorAt(tok, "unexpected end of input")

	default:
		return nil, p.errorAt(tok, "unexpected %s", describe(tok))
	}
}

// parseIf parses the tail of: if cond then a else b. The node's range fuses
// the three keyword tokens with the three sub-expressions.
func (p *Parser) parseIf(ifTok scanner.Token) (Expr, error) {
	cond, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	thenTok, err := p.expect(scanner.THEN)
	if err != nil {
		return nil, err
	}
	thenExpr, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	elseTok, err := p.expect(scanner.ELSE)
	if err != nil {
		return nil, err
	}
	elseExpr, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}

	node := &If{Cond: cond, Then: thenExpr, Else: elseExpr}
	node.SetRange(source.FuseRanged(ifTok, cond, thenTok, thenExpr, elseTok, elseExpr))
	return node, nil
}

// parseLet parses the tail of: let name = value in body.
func (p *Parser) parseLet(letTok scanner.Token) (Expr, error) {
	nameTok, err := p.expect(scanner.IDENT)
	if err != nil {
		return nil, err
	}
	name := &Name{Parts: []string{nameTok.Text}}
	name.SetRange(nameTok.Range())

	assignTok, err := p.expect(scanner.ASSIGN)
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	inTok, err := p.expect(scanner.IN)
	if err != nil {
		return nil, err
	}
	body, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}

	node := &Let{Name: name, Value: value, Body: body}
	node.SetRange(source.FuseRanged(letTok, name, assignTok, value, inTok, body))
	return node, nil
}

// parseCall parses the argument list of a call, the opening paren already
// peeked. The node's range fuses the callee, the parens and every argument.
func (p *Parser) parseCall(fn Expr) (Expr, error) {
	lparen := p.next()

	var args []Expr
	if p.peek().Type != scanner.RPAREN {
		for {
			arg, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.peek().Type != scanner.COMMA {
				break
			}
			p.next()
		}
	}

	rparen, err := p.expect(scanner.RPAREN)
	if err != nil {
		return nil, err
	}

	node := &Call{Fn: fn, Args: args}
	r := source.FuseRanged(fn, lparen)
	r = source.FuseRanges(r, source.RangeOfSlice(args))
	r = source.FuseRanges(r, rparen.Range())
	node.SetRange(r)
	return node, nil
}

func (p *Parser) peek() scanner.Token {
	return p.tokens[p.pos]
}

func (p *Parser) next() scanner.Token {
	tok := p.tokens[p.pos]
	if tok.Type != scanner.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(typ scanner.Type) (scanner.Token, error) {
	tok := p.peek()
	if tok.Type != typ {
		return scanner.Token{}, p.errorAt(tok, "expected %s, found %s", typ, describe(tok))
	}
	return p.next(), nil
}

func (p *Parser) errorAt(tok scanner.Token, format string, args ...any) error {
	return &ParseError{
		Pos:     tok.Interval.Start,
		Rng:     tok.Range(),
		Message: fmt.Sprintf(format, args...),
	}
}

func describe(tok scanner.Token) string {
	switch tok.Type {
	case scanner.EOF:
		return "end of input"
	case scanner.IDENT, scanner.QUALIFIED, scanner.INT, scanner.STRING, scanner.ILLEGAL:
		return fmt.Sprintf("%q", tok.Text)
	default:
		return fmt.Sprintf("%q", tok.Type.String())
	}
}
