// Package syntax declares the types used to represent veldt expression
// trees, and a parser that builds them.
//
// Every node carries a source.Range, fused bottom-up from the ranges of its
// children and the tokens that introduced it, so diagnostics can point at
// the exact pieces of text a node came from.
package syntax

import (
	"github.com/veldt-lang/veldt/source"
)

// Expr is the interface implemented by all expression nodes.
type Expr interface {
	source.Ranged
	source.RangeSetter

	exprNode()
}

// Name is a reference to a possibly qualified name. A qualified name has a
// split range: one piece per part, the dots uncovered.
type Name struct {
	source.WithRange

	Parts []string
}

// String returns the dotted form of the name.
func (n *Name) String() string {
	out := ""
	for i, p := range n.Parts {
		if i > 0 {
			out += "."
		}
		out += p
	}
	return out
}

// LitKind discriminates literal values.
type LitKind uint8

const (
	IntLit LitKind = iota
	StringLit
)

// Lit is an integer or string literal. Value holds the literal text as
// written, quotes included for strings.
type Lit struct {
	source.WithRange

	Kind  LitKind
	Value string
}

// Unary is a prefix operation, currently only negation.
type Unary struct {
	source.WithRange

	Op      string
	Operand Expr
}

// Binary is an infix operation.
type Binary struct {
	source.WithRange

	Op  string
	LHS Expr
	RHS Expr
}

// Call applies a function expression to arguments.
type Call struct {
	source.WithRange

	Fn   Expr
	Args []Expr
}

// Group is a parenthesised expression. It is kept in the tree so its range
// covers the parentheses.
type Group struct {
	source.WithRange

	Inner Expr
}

// If is a conditional expression: if cond then a else b.
type If struct {
	source.WithRange

	Cond Expr
	Then Expr
	Else Expr
}

// Let binds a name in a body: let name = value in body.
type Let struct {
	source.WithRange

	Name  *Name
	Value Expr
	Body  Expr
}

func (*Name) exprNode()   {}
func (*Lit) exprNode()    {}
func (*Unary) exprNode()  {}
func (*Binary) exprNode() {}
func (*Call) exprNode()   {}
func (*Group) exprNode()  {}
func (*If) exprNode()     {}
func (*Let) exprNode()    {}
