package lisp

import "strings"

// embedded is the process-global Interp backing ExprStr, created lazily
// on first call and reused across calls so that top-level `define`s
// made by one call are visible to the next — the "initializes globals
// on first call (idempotent)" contract of spec.md §6's embedded entry
// point.
var embedded *Interp

// ExprStr is the embedded entry point described in spec.md §6: it
// evaluates exactly one top-level expression read from text and returns
// the printed result. The language defines no primitive that produces
// output as a side effect (there is no `display`-style primitive in
// §4.5's table), so the "concatenated with any side-effect output"
// clause is presently a no-op; ExprStr's signature still reserves the
// room for it so a future primitive with output side effects would not
// need a signature change.
func ExprStr(text string) (string, error) {
	if embedded == nil {
		embedded = NewInterp(strings.NewReader(text))
	} else {
		embedded.Stream.Reset(strings.NewReader(text))
	}
	seq, err := embedded.ReadExpr()
	if err != nil {
		return "", err
	}
	result, err := embedded.Eval(seq, embedded.Global)
	if err != nil {
		return "", err
	}
	return Sprint(result), nil
}
