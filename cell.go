// Package lisp implements the lexer, parser and evaluator for a small
// Lisp-like expression language: S-expressions with numbers, strings and
// symbols, lists, lambdas, and a handful of special forms and primitive
// operators.
package lisp

import "fmt"

// Kind discriminates the tagged value Cell flows through the lexer,
// parser and evaluator as.
type Kind int

const (
	// Number is a floating-point literal. Payload: Num.
	Number Kind = iota
	// Name is an identifier or a string literal. Payload: Str.
	Name
	// Expr is a parenthesized expression or a list value. Payload: List.
	Expr
	// Proc is a reference to a user-defined procedure. Payload: ProcRef,
	// holding a *Procedure.
	Proc
	// True is the boolean true literal.
	True
	// False is the boolean false literal. Every other Cell is truthy.
	False
	// End is the end-of-input sentinel.
	End

	// Lp and Rp are lexer-only parenthesis tokens.
	Lp
	Rp

	// Quote marks the next cell as unevaluated.
	Quote

	// Special forms.
	Define
	Lambda
	Cond
	Else
	Let
	Begin
	Include
	Empty

	// Primitive operators.
	Add
	Sub
	Mul
	Div
	Less
	Equal
	Greater
	And
	Or
	Not
	Cat
	Cons
	Car
	Cdr
	List

	// Comment is a lexer-only line-comment marker.
	Comment
)

// keywords is the lexer's keyword table: the literal spelling of a
// whitespace-delimited token to the Kind it lexes as.
//
// "not" maps to Not here. The C++ original this was ported from mapped
// it to its Or tag instead, almost certainly a copy-paste typo in its
// own keyword table; that bug is not reproduced.
var keywords = map[string]Kind{
	"define":  Define,
	"lambda":  Lambda,
	"cond":    Cond,
	"cons":    Cons,
	"car":     Car,
	"cdr":     Cdr,
	"list":    List,
	"else":    Else,
	"empty?":  Empty,
	"and":     And,
	"or":      Or,
	"not":     Not,
	"cat":     Cat,
	"include": Include,
	"begin":   Begin,
	"let":     Let,
}

// symbols is the printer's table of Kinds with a fixed,
// literal spelling: single-character primitive operators and
// punctuation keep the same character the lexer reads them from;
// multi-character keywords print as their keyword spelling (the
// original printed these by casting the Kind's underlying enum value
// to a character, which produced unprintable bytes for any keyword
// that the lexer recognizes as a whole word rather than a single
// character — fixed here, not reproduced).
var symbols = map[Kind]string{
	Add:     "+",
	Sub:     "-",
	Mul:     "*",
	Div:     "/",
	Less:    "<",
	Equal:   "=",
	Greater: ">",
	And:     "&",
	Or:      "|",
	Not:     "!",
	Quote:   "'",
	Lp:      "(",
	Rp:      ")",
	Comment: ";",
	True:    "t",
	False:   "f",
	End:     ".",
	Define:  "define",
	Lambda:  "lambda",
	Cond:    "cond",
	Else:    "else",
	Let:     "let",
	Begin:   "begin",
	Include: "include",
	Empty:   "empty?",
	Cat:     "cat",
	Cons:    "cons",
	Car:     "car",
	Cdr:     "cdr",
	List:    "list",
}

// isPrimitive reports whether k is one of the primitive-operator kinds
// dispatched through ApplyPrim.
func isPrimitive(k Kind) bool {
	switch k {
	case Add, Sub, Mul, Div, Less, Equal, Greater, And, Or, Not, Cat, Cons, Car, Cdr, List, Empty:
		return true
	}
	return false
}

// Cell is the universal tagged value used uniformly for lexer tokens,
// parsed AST nodes and runtime values.
//
// Invariants: Kind Number carries Num; Kind Name carries Str; Kind Expr
// carries List; Kind Proc carries ProcRef; every other Kind carries no
// payload.
type Cell struct {
	Kind    Kind
	Num     float64
	Str     string
	List    []Cell
	ProcRef *Procedure
}

// NumberCell builds a Number cell.
func NumberCell(n float64) Cell { return Cell{Kind: Number, Num: n} }

// NameCell builds a Name cell.
func NameCell(s string) Cell { return Cell{Kind: Name, Str: s} }

// ExprCell builds an Expr cell wrapping a list.
func ExprCell(list []Cell) Cell { return Cell{Kind: Expr, List: list} }

// ProcCell builds a Proc cell referring to p.
func ProcCell(p *Procedure) Cell { return Cell{Kind: Proc, ProcRef: p} }

// BoolCell builds a True or False cell.
func BoolCell(b bool) Cell {
	if b {
		return Cell{Kind: True}
	}
	return Cell{Kind: False}
}

// Simple builds a payload-less cell of the given kind.
func Simple(k Kind) Cell { return Cell{Kind: k} }

// Truthy reports whether c is truthy: every Cell is truthy except one
// of Kind False.
func (c Cell) Truthy() bool { return c.Kind != False }

// String renders c the way the printer does; see Print.
func (c Cell) String() string { return Sprint(c) }

// symbolText returns the fixed spelling for payload-less kinds, used by
// the lexer's error messages and the printer.
func symbolText(k Kind) string {
	if s, ok := symbols[k]; ok {
		return s
	}
	return fmt.Sprintf("<kind %d>", k)
}
