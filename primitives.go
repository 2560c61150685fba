package lisp

import "github.com/nukata/goarith"

// ApplyPrim dispatches a primitive-operator Cell (one of the Kinds for
// which isPrimitive reports true) against a fully-evaluated argument
// list, per spec.md §4.5. It panics with a typed *EvalError on any
// arity or type mismatch; callers run under a deferred catch.
func ApplyPrim(op Cell, args []Cell) Cell {
	switch op.Kind {
	case Add:
		return foldNumbers(args, func(a, b float64) float64 { return a + b })
	case Sub:
		return foldNumbers(args, func(a, b float64) float64 { return a - b })
	case Mul:
		return foldNumbers(args, func(a, b float64) float64 { return a * b })
	case Div:
		return foldNumbers(args, func(a, b float64) float64 { return a / b })
	case Cat:
		return foldStrings(args)
	case Less:
		return lessPrim(args)
	case Greater:
		return lessPrim(swapPair(args))
	case Equal:
		return equalPrim(args)
	case And:
		return andPrim(args)
	case Or:
		return orPrim(args)
	case Not:
		return notPrim(args)
	case Cons, List:
		return ExprCell(append([]Cell(nil), args...))
	case Car:
		return carPrim(args)
	case Cdr:
		return cdrPrim(args)
	case Empty:
		return emptyPrim(args)
	default:
		panic(evalErrorf(ErrPrimMismatch, "%s: not a primitive: %s", ErrPrimMismatch, Sprint(op)))
	}
}

func foldNumbers(args []Cell, f func(a, b float64) float64) Cell {
	if len(args) < 1 {
		panic(evalErrorf(ErrMalformed, "Primitives take at least one argument"))
	}
	requireNumber(args[0])
	acc := args[0].Num
	for _, a := range args[1:] {
		requireNumber(a)
		acc = f(acc, a.Num)
	}
	return NumberCell(acc)
}

func foldStrings(args []Cell) Cell {
	if len(args) < 1 {
		panic(evalErrorf(ErrMalformed, "Primitives take at least one argument"))
	}
	requireName(args[0])
	acc := args[0].Str
	for _, a := range args[1:] {
		requireName(a)
		acc += a.Str
	}
	return NameCell(acc)
}

func requireNumber(c Cell) {
	if c.Kind != Number {
		panic(evalErrorf(ErrPrimMismatch, "%s: expected a number, got %s", ErrPrimMismatch, Sprint(c)))
	}
}

func requireName(c Cell) {
	if c.Kind != Name {
		panic(evalErrorf(ErrPrimMismatch, "%s: expected a string, got %s", ErrPrimMismatch, Sprint(c)))
	}
}

func swapPair(args []Cell) []Cell {
	if len(args) != 2 {
		panic(evalErrorf(ErrPrimMismatch, "%s: expected 2 args", ErrPrimMismatch))
	}
	return []Cell{args[1], args[0]}
}

// lessPrim implements `<`: numeric comparison via goarith.Number.Cmp
// when the first argument is a Number (the teacher's own call shape for
// its `<` primitive), string comparison otherwise.
func lessPrim(args []Cell) Cell {
	if len(args) != 2 {
		panic(evalErrorf(ErrPrimMismatch, "%s: expected 2 args", ErrPrimMismatch))
	}
	a, b := args[0], args[1]
	if a.Kind == Number {
		requireNumber(b)
		cmp := goarith.AsNumber(a.Num).Cmp(goarith.AsNumber(b.Num))
		return BoolCell(cmp < 0)
	}
	requireName(a)
	requireName(b)
	return BoolCell(a.Str < b.Str)
}

// equalPrim implements `=`: numeric equality (again via goarith.Cmp)
// when the first argument is a Number, string equality for Names,
// pointer identity for Procs, and elementwise equality for lists.
func equalPrim(args []Cell) Cell {
	if len(args) != 2 {
		panic(evalErrorf(ErrPrimMismatch, "%s: expected 2 args", ErrPrimMismatch))
	}
	return BoolCell(cellsEqual(args[0], args[1]))
}

func cellsEqual(a, b Cell) bool {
	switch a.Kind {
	case Number:
		if b.Kind != Number {
			return false
		}
		return goarith.AsNumber(a.Num).Cmp(goarith.AsNumber(b.Num)) == 0
	case Name:
		return b.Kind == Name && a.Str == b.Str
	case Proc:
		return b.Kind == Proc && a.ProcRef == b.ProcRef
	case Expr:
		if b.Kind != Expr || len(a.List) != len(b.List) {
			return false
		}
		for i := range a.List {
			if !cellsEqual(a.List[i], b.List[i]) {
				return false
			}
		}
		return true
	case True, False:
		return a.Kind == b.Kind
	default:
		return a.Kind == b.Kind
	}
}

func andPrim(args []Cell) Cell {
	for _, a := range args {
		if a.Kind == False {
			return a
		}
	}
	return Simple(True)
}

func orPrim(args []Cell) Cell {
	for _, a := range args {
		if a.Kind == True {
			return a
		}
	}
	return Simple(False)
}

func notPrim(args []Cell) Cell {
	if len(args) != 1 {
		panic(evalErrorf(ErrPrimMismatch, "%s: not expects 1 arg", ErrPrimMismatch))
	}
	return BoolCell(args[0].Kind == False)
}

func carPrim(args []Cell) Cell {
	if len(args) != 1 {
		panic(evalErrorf(ErrPrimMismatch, "%s: car expects 1 arg", ErrPrimMismatch))
	}
	a := args[0]
	if a.Kind != Expr || len(a.List) == 0 {
		return a
	}
	return a.List[0]
}

func cdrPrim(args []Cell) Cell {
	if len(args) != 1 {
		panic(evalErrorf(ErrPrimMismatch, "%s: cdr expects 1 arg", ErrPrimMismatch))
	}
	a := args[0]
	if a.Kind != Expr || len(a.List) <= 1 {
		return ExprCell(nil)
	}
	if len(a.List) == 2 {
		return a.List[1]
	}
	return ExprCell(append([]Cell(nil), a.List[1:]...))
}

func emptyPrim(args []Cell) Cell {
	if len(args) != 1 {
		panic(evalErrorf(ErrPrimMismatch, "%s: empty? expects 1 arg", ErrPrimMismatch))
	}
	a := args[0]
	return BoolCell(a.Kind == Expr && len(a.List) == 0)
}
