package lisp

import "io"

// Parser turns Lexer tokens into a nested list of Cells representing
// one top-level expression (spec.md §4.2).
type Parser struct {
	lexer  *Lexer
	stream *Stream
}

// NewParser returns a Parser reading tokens from lx, using s to skip
// the rest of a line on a `;` comment.
func NewParser(lx *Lexer, s *Stream) *Parser {
	return &Parser{lexer: lx, stream: s}
}

// ParseExpr reads one parenthesized expression and returns its contents
// as a sequence of Cells. If eatLeading is true, it first discards
// tokens (skipping comment lines as it goes) until it reaches something
// other than Comment — the opening `(` of the top-level expression, or
// End — before reading the expression's body.
func (p *Parser) ParseExpr(eatLeading bool) ([]Cell, error) {
	list, _, err := p.parseUntilClose(eatLeading)
	return list, err
}

// parseUntilClose is ParseExpr's recursive worker. It additionally
// reports which token ended the body (Rp or End), since the caller that
// opened a nested `(` needs to know whether it was closed properly.
func (p *Parser) parseUntilClose(eatLeading bool) ([]Cell, Kind, error) {
	if eatLeading {
		for {
			tok, err := p.lexer.Next()
			if err != nil {
				return nil, End, err
			}
			if tok.Kind != Comment {
				break // discarded: the opening `(` (or End) of the top-level form
			}
			if err := p.stream.SkipLine(); err != nil && err != io.EOF {
				return nil, End, err
			}
		}
	}

	var res []Cell
	for {
		tok, err := p.lexer.Next()
		if err != nil {
			return nil, End, err
		}
		switch tok.Kind {
		case Lp:
			nested, term, err := p.parseUntilClose(false)
			if err != nil {
				return nil, End, err
			}
			if term != Rp {
				return nil, End, parseErrorf("')' expected")
			}
			res = append(res, ExprCell(nested))
		case Rp:
			return res, Rp, nil
		case End:
			return res, End, nil
		case Comment:
			if err := p.stream.SkipLine(); err != nil && err != io.EOF {
				return nil, End, err
			}
		default:
			res = append(res, tok)
		}
	}
}
