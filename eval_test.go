package lisp

import (
	"strings"
	"testing"
)

// evalAll evaluates every top-level expression in input in sequence
// against one Interp, returning the printed form of each result. It
// mirrors the multi-expression, accumulating-environment contract the
// CLI's file mode relies on.
func evalAll(t *testing.T, input string) []string {
	t.Helper()
	it := NewInterp(strings.NewReader(input))
	var out []string
	for {
		seq, err := it.ReadExpr()
		if err != nil {
			t.Fatalf("ReadExpr(%q): %v", input, err)
		}
		if len(seq) == 0 && it.AtBase() {
			return out
		}
		result, err := it.Eval(seq, it.Global)
		if err != nil {
			t.Fatalf("Eval(%q): %v", input, err)
		}
		out = append(out, Sprint(result))
	}
}

func evalOne(t *testing.T, input string) string {
	t.Helper()
	results := evalAll(t, input)
	if len(results) == 0 {
		t.Fatalf("evalOne(%q): no expressions evaluated", input)
	}
	return results[len(results)-1]
}

// TestScenarios covers spec.md §8's "Concrete scenarios" table verbatim.
func TestScenarios(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"(+ 1 2 3)", []string{"6"}},
		{"(define x 10) (+ x 5)", []string{"10", "15"}},
		{"(define (sq x) (* x x)) (sq 7)", []string{"proc", "49"}},
		{"(let ((a 2) (b 3)) (+ a b))", []string{"5"}},
		{"(cond ((< 2 1) 'a) ((= 1 1) 'b) (else 'c))", []string{"b"}},
		{"((lambda (x y) (cat x y)) 'foo 'bar)", []string{"foobar"}},
	}
	for _, tt := range tests {
		got := evalAll(t, tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("evalAll(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("evalAll(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestLexicalScoping(t *testing.T) {
	got := evalOne(t, `
		(define (make-adder n) (lambda (x) (+ x n)))
		(define add5 (make-adder 5))
		(add5 10)
	`)
	if got != "15" {
		t.Errorf("closures do not capture their definition-site env: got %q, want 15", got)
	}
}

func TestShadowing(t *testing.T) {
	got := evalOne(t, `
		(define x 1)
		(let ((x 2)) x)
	`)
	if got != "2" {
		t.Errorf("let did not shadow outer x: got %q, want 2", got)
	}
	got = evalOne(t, "(define x 1) (let ((x 2)) x) (x)")
	if got != "1" {
		t.Errorf("let leaked its binding into the outer frame: got %q, want 1", got)
	}
}

func TestQuoteIdempotence(t *testing.T) {
	if got := evalOne(t, "('foo)"); got != "foo" {
		t.Errorf("('foo) = %q, want foo", got)
	}
	if got := evalOne(t, "('(1 2 3))"); got != "(1 2 3)" {
		t.Errorf("quote of a list should return it unchanged: got %q", got)
	}
}

func TestCondNoMatchNoElse(t *testing.T) {
	got := evalOne(t, "(cond ((= 1 2) 'a))")
	if got != "." {
		t.Errorf("cond with no match and no else = %q, want the default End cell", got)
	}
}

func TestCondElseMustBeLast(t *testing.T) {
	it := NewInterp(strings.NewReader("(cond (else 1) ((= 1 1) 2))"))
	seq, err := it.ReadExpr()
	if err != nil {
		t.Fatalf("ReadExpr: %v", err)
	}
	if _, err := it.Eval(seq, it.Global); err == nil {
		t.Errorf("expected an error for else out of place, got none")
	}
}

func TestBeginSequencesForEffect(t *testing.T) {
	got := evalOne(t, "(define x 0) (begin (define x 1) (define x 2) x)")
	if got != "2" {
		t.Errorf("begin should return its last expression: got %q", got)
	}
}

func TestUnboundVariable(t *testing.T) {
	it := NewInterp(strings.NewReader("(nosuchname)"))
	seq, _ := it.ReadExpr()
	if _, err := it.Eval(seq, it.Global); err == nil {
		t.Errorf("expected an unbound variable error")
	}
}

func TestDefineProcSugar(t *testing.T) {
	got := evalOne(t, "(define (id x) x) (id 42)")
	if got != "42" {
		t.Errorf("define-sugar proc did not apply correctly: got %q", got)
	}
}

func TestLambdaBareAtomBody(t *testing.T) {
	got := evalOne(t, "((lambda (x) x) 9)")
	if got != "9" {
		t.Errorf("lambda with a bare-atom body should evaluate: got %q", got)
	}
}

func TestArgCountMismatch(t *testing.T) {
	it := NewInterp(strings.NewReader("(define (f x y) (+ x y)) (f 1)"))
	seq, _ := it.ReadExpr()
	if _, err := it.Eval(seq, it.Global); err != nil {
		t.Fatalf("defining f: %v", err)
	}
	seq, _ = it.ReadExpr()
	if _, err := it.Eval(seq, it.Global); err == nil {
		t.Errorf("expected an arg-count mismatch error calling f with 1 arg instead of 2")
	}
}

func TestInlineLambdaApplication(t *testing.T) {
	got := evalOne(t, "((lambda (x y z) (+ x (+ y z))) 1 2 3)")
	if got != "6" {
		t.Errorf("applying an inline-expression-headed lambda failed: got %q", got)
	}
}
