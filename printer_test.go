package lisp

import "testing"

func TestPrintNumber(t *testing.T) {
	if got := Sprint(NumberCell(3.5)); got != "3.5" {
		t.Errorf("Sprint(3.5) = %q, want %q", got, "3.5")
	}
	if got := Sprint(NumberCell(42)); got != "42" {
		t.Errorf("Sprint(42) = %q, want %q (no trailing .0)", got, "42")
	}
}

func TestPrintName(t *testing.T) {
	if got := Sprint(NameCell("foo")); got != "foo" {
		t.Errorf("Sprint(Name foo) = %q, want %q", got, "foo")
	}
}

func TestPrintProc(t *testing.T) {
	p := ProcCell(&Procedure{Params: []string{"x"}, Body: []Cell{NumberCell(1)}})
	if got := Sprint(p); got != "proc" {
		t.Errorf("Sprint(Proc) = %q, want %q", got, "proc")
	}
}

func TestPrintExprNested(t *testing.T) {
	inner := ExprCell([]Cell{NumberCell(2), NumberCell(3)})
	outer := ExprCell([]Cell{NameCell("foo"), inner, NumberCell(1)})
	got := Sprint(outer)
	want := "(foo (2 3) 1)"
	if got != want {
		t.Errorf("Sprint(nested Expr) = %q, want %q", got, want)
	}
}

func TestPrintEmptyExpr(t *testing.T) {
	if got := Sprint(ExprCell(nil)); got != "()" {
		t.Errorf("Sprint(empty Expr) = %q, want %q", got, "()")
	}
}

// TestPrintMultiCharKeyword exercises the printer's fixed symbols table:
// a payload-less Kind with a multi-character spelling (a keyword, not a
// single-character operator) must print as that full word.
func TestPrintMultiCharKeyword(t *testing.T) {
	if got := Sprint(Simple(Define)); got != "define" {
		t.Errorf("Sprint(Define) = %q, want %q", got, "define")
	}
	if got := Sprint(Simple(Empty)); got != "empty?" {
		t.Errorf("Sprint(Empty) = %q, want %q", got, "empty?")
	}
}

func TestPrintPrimitiveOperatorAsExprHead(t *testing.T) {
	expr := ExprCell([]Cell{Simple(Add), NumberCell(1), NumberCell(2)})
	if got := Sprint(expr); got != "(+ 1 2)" {
		t.Errorf("Sprint((+ 1 2)) = %q, want %q", got, "(+ 1 2)")
	}
}

func TestPrintBoolean(t *testing.T) {
	if got := Sprint(Simple(True)); got != "t" {
		t.Errorf("Sprint(True) = %q, want %q", got, "t")
	}
	if got := Sprint(Simple(False)); got != "f" {
		t.Errorf("Sprint(False) = %q, want %q", got, "f")
	}
}

func TestCellStringMatchesSprint(t *testing.T) {
	c := NumberCell(7)
	if c.String() != Sprint(c) {
		t.Errorf("Cell.String() = %q, Sprint() = %q, want equal", c.String(), Sprint(c))
	}
}
