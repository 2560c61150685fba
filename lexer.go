package lisp

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// singleCharKinds are the lexer's single-character tokens, returned as
// the corresponding Kind with no payload. Semicolon produces Comment.
var singleCharKinds = map[rune]Kind{
	'!': Not,
	'&': And,
	'\'': Quote,
	'(': Lp,
	')': Rp,
	'*': Mul,
	'+': Add,
	'-': Sub,
	';': Comment,
	'/': Div,
	'<': Less,
	'=': Equal,
	'>': Greater,
	'|': Or,
}

// Lexer produces one Cell per call from a Stream.
type Lexer struct {
	stream *Stream
}

// NewLexer returns a Lexer reading from s.
func NewLexer(s *Stream) *Lexer { return &Lexer{stream: s} }

// Next returns the next token as a Cell, or the End sentinel at
// end-of-input. It is the only exported entry point; see spec.md §4.1.
func (lx *Lexer) Next() (Cell, error) {
	r, err := lx.skipSpace()
	if err == io.EOF {
		return Simple(End), nil
	}
	if err != nil {
		return Cell{}, err
	}

	if k, ok := singleCharKinds[r]; ok {
		return Simple(k), nil
	}

	if r >= '0' && r <= '9' {
		lx.stream.PushRune(r)
		return lx.readNumber()
	}

	if unicode.IsLetter(r) {
		lx.stream.PushRune(r)
		return lx.readWord()
	}

	lx.stream.PushRune(r)
	return lx.readWord()
}

// skipSpace discards whitespace (including newlines) and returns the
// first non-space rune, or io.EOF.
func (lx *Lexer) skipSpace() (rune, error) {
	for {
		r, err := lx.stream.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(r) {
			return r, nil
		}
	}
}

// readNumber reads a floating-point literal using the host's standard
// float-parsing semantics: decimal, optional sign, optional exponent.
// Like readWord, any greedily attached trailing `)` characters are
// pushed back onto the stream one at a time before parsing — otherwise
// the overwhelmingly common case of a number immediately followed by a
// closing paren, e.g. the `3)` at the end of `(+ 1 2 3)`, would read as
// one token and fail strconv.ParseFloat.
func (lx *Lexer) readNumber() (Cell, error) {
	tok, err := lx.readToken()
	if err != nil {
		return Cell{}, err
	}
	tok = lx.stripTrailingParens(tok)
	n, perr := strconv.ParseFloat(tok, 64)
	if perr != nil {
		return Cell{}, fmt.Errorf("%w: malformed number %q", ErrLex, tok)
	}
	return NumberCell(n), nil
}

// readWord reads a whitespace-delimited token, strips any greedily
// attached trailing `)` characters back onto the stream one at a time,
// and returns either the matching keyword Cell or a Name Cell holding
// the remainder.
func (lx *Lexer) readWord() (Cell, error) {
	tok, err := lx.readToken()
	if err != nil {
		return Cell{}, err
	}
	tok = lx.stripTrailingParens(tok)
	if k, ok := keywords[tok]; ok {
		return Simple(k), nil
	}
	return NameCell(tok), nil
}

// stripTrailingParens removes trailing `)` characters from tok, pushing
// each one back onto the stream so the next Next() call recovers it as
// its own Rp token (spec.md §4.1 step 5's greedy adjacency handling).
func (lx *Lexer) stripTrailingParens(tok string) string {
	for len(tok) > 0 && tok[len(tok)-1] == ')' {
		tok = tok[:len(tok)-1]
		lx.stream.PushRune(')')
	}
	return tok
}

// readToken reads runes up to the next whitespace or end-of-input.
func (lx *Lexer) readToken() (string, error) {
	var sb strings.Builder
	for {
		r, err := lx.stream.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if unicode.IsSpace(r) {
			lx.stream.PushRune(r)
			break
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}
