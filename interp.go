package lisp

import "io"

// Interp binds together a Stream, the Lexer and Parser reading from it,
// and the top-level Env that accumulates `define`s across successive
// top-level expressions, so that special forms like `include` can
// redirect the active input source mid-evaluation (spec.md §4.4) and a
// caller can read-eval-print in a loop against persistent state.
type Interp struct {
	Stream *Stream
	Lexer  *Lexer
	Parser *Parser
	Global *Env
}

// NewInterp returns an Interp reading source text from r, with a fresh,
// empty top-level Env.
func NewInterp(r io.Reader) *Interp {
	s := NewStream(r)
	lx := NewLexer(s)
	return &Interp{
		Stream: s,
		Lexer:  lx,
		Parser: NewParser(lx, s),
		Global: NewEnv(),
	}
}

// ReadExpr reads one top-level expression from the Interp's Stream,
// discarding any comment lines and include-driven stream switches
// encountered before it.
func (it *Interp) ReadExpr() ([]Cell, error) {
	return it.Parser.ParseExpr(true)
}

// AtBase reports whether the Interp's Stream has popped back to its
// original, non-`include`d source.
func (it *Interp) AtBase() bool {
	return it.Stream.AtBase()
}
