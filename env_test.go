package lisp

import "testing"

func TestEnvDefineAndLookup(t *testing.T) {
	e := NewEnv()
	e.Define("x", NumberCell(1))
	v, err := e.Lookup("x")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if v.Num != 1 {
		t.Errorf("Lookup(x) = %v, want 1", v)
	}
}

func TestEnvLookupWalksOuter(t *testing.T) {
	outer := NewEnv()
	outer.Define("x", NumberCell(1))
	inner, err := outer.Extend(nil, nil)
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}
	v, err := inner.Lookup("x")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if v.Num != 1 {
		t.Errorf("Lookup(x) from inner frame = %v, want 1", v)
	}
}

func TestEnvLookupUnbound(t *testing.T) {
	e := NewEnv()
	if _, err := e.Lookup("nope"); err == nil {
		t.Error("Lookup of an undefined name should fail")
	}
}

func TestEnvShadowing(t *testing.T) {
	outer := NewEnv()
	outer.Define("x", NumberCell(1))
	inner, err := outer.Extend([]string{"x"}, []Cell{NumberCell(2)})
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}
	v, _ := inner.Lookup("x")
	if v.Num != 2 {
		t.Errorf("inner x = %v, want 2 (shadowing outer)", v)
	}
	v, _ = outer.Lookup("x")
	if v.Num != 1 {
		t.Errorf("outer x = %v, want 1 (unaffected by inner shadowing)", v)
	}
}

func TestEnvExtendArgCountMismatch(t *testing.T) {
	e := NewEnv()
	if _, err := e.Extend([]string{"a", "b"}, []Cell{NumberCell(1)}); err == nil {
		t.Error("Extend with mismatched params/args should fail")
	}
}
