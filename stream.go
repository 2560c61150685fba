package lisp

import (
	"bufio"
	"io"
	"os"
)

// source is one entry in a Stream's stack: a rune reader together with
// whether the stream owns (and must Close on pop) the underlying file.
type source struct {
	r      *bufio.Reader
	closer io.Closer // nil for non-owned sources (the caller-supplied base)
}

// Stream is a stack of input sources. The top of the stack is the
// active source; Include pushes a new source so that `(include "path")`
// can redirect reads mid-parse, and popCurrent pops back to the
// previous source on EOF. The bottom of the stack is the base source
// supplied by the caller and is never closed.
type Stream struct {
	stack    []source
	pushback []rune // LIFO buffer for multi-rune putback, read before any source
}

// NewStream wraps r as the base source of a fresh Stream. The base
// source is never closed by the Stream.
func NewStream(r io.Reader) *Stream {
	return &Stream{stack: []source{{r: bufio.NewReader(r)}}}
}

// Reset closes any owned sources above the base, then replaces the base
// source with r and clears any pending pushback. Used by ExprStr to
// feed successive calls through the same Stream without leaking
// include-opened file handles across calls.
func (s *Stream) Reset(r io.Reader) {
	for !s.AtBase() {
		s.popCurrent()
	}
	s.stack[0] = source{r: bufio.NewReader(r)}
	s.pushback = nil
}

// Include opens path and pushes it as the active source. The pushed
// source is owned: it is closed when it reaches EOF and is popped.
func (s *Stream) Include(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	s.stack = append(s.stack, source{r: bufio.NewReader(f), closer: f})
	return nil
}

// ReadRune reads the next rune from the active source, transparently
// popping exhausted sources (closing owned ones) and retrying against
// the next source down until one yields a rune or the base source is
// exhausted.
func (s *Stream) ReadRune() (rune, error) {
	if n := len(s.pushback); n > 0 {
		r := s.pushback[n-1]
		s.pushback = s.pushback[:n-1]
		return r, nil
	}
	for {
		top := &s.stack[len(s.stack)-1]
		r, _, err := top.r.ReadRune()
		if err == nil {
			return r, nil
		}
		if err != io.EOF {
			return 0, err
		}
		if s.AtBase() {
			return 0, io.EOF
		}
		s.popCurrent()
	}
}

// PushRune pushes r back so the next ReadRune returns it. Repeated
// calls push back multiple runes LIFO, unlike bufio.Reader's single-rune
// lookahead — needed for the lexer's greedy trailing-`)` handling, which
// can putback several characters at once (§4.1 step 5).
func (s *Stream) PushRune(r rune) {
	s.pushback = append(s.pushback, r)
}

// popCurrent closes (if owned) and discards the active source,
// exposing the one beneath it. Called at the base of the stack it would
// leave the stack empty; callers must check AtBase first.
func (s *Stream) popCurrent() {
	n := len(s.stack) - 1
	top := s.stack[n]
	if top.closer != nil {
		top.closer.Close()
	}
	s.stack = s.stack[:n]
}

// AtBase reports whether the stack has been popped back down to the
// original caller-supplied source.
func (s *Stream) AtBase() bool { return len(s.stack) == 1 }

// SkipLine discards runes up to and including the next newline, or
// until the active source is exhausted. Used to implement `;` comments.
func (s *Stream) SkipLine() error {
	for {
		r, err := s.ReadRune()
		if err != nil {
			return err
		}
		if r == '\n' {
			return nil
		}
	}
}
