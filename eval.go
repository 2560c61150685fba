package lisp

// Eval evaluates a sequence of Cells representing one expression and
// returns the value of the expression. It dispatches on the first
// element's Kind per spec.md §4.4.
func (it *Interp) Eval(seq []Cell, env *Env) (result Cell, err error) {
	defer catch(&err)
	result = it.eval(seq, env)
	return
}

// Evlist evaluates each element of seq and returns the sequence of
// their values; used to compute argument lists and other list-returning
// positions.
func (it *Interp) Evlist(seq []Cell, env *Env) (result []Cell, err error) {
	defer catch(&err)
	result = it.evlist(seq, env)
	return
}

// eval is the unexported, panic-on-error recursive worker behind Eval.
func (it *Interp) eval(seq []Cell, env *Env) Cell {
	if len(seq) == 0 {
		return Simple(End)
	}
	head := seq[0]
	switch head.Kind {
	case Number:
		return head

	case Quote:
		if len(seq) < 2 {
			panic(evalErrorf(ErrMalformed, "Quote expects 1 arg"))
		}
		return seq[1]

	case Include:
		if len(seq) < 2 || seq[1].Kind != Name {
			panic(evalErrorf(ErrMalformed, "malformed include"))
		}
		if err := it.Stream.Include(seq[1].Str); err != nil {
			panic(evalErrorf(ErrMalformed, "include %s: %v", seq[1].Str, err))
		}
		return Simple(Include)

	case Begin:
		rest := seq[1:]
		if len(rest) == 0 {
			return Simple(End)
		}
		it.evlist(rest[:len(rest)-1], env)
		return it.eval(rest[len(rest)-1:], env)

	case Lambda:
		if len(seq) < 3 || seq[1].Kind != Expr {
			panic(evalErrorf(ErrMalformed, "Malformed lambda expression"))
		}
		params, err := paramNames(seq[1].List)
		if err != nil {
			panic(err)
		}
		return ProcCell(&Procedure{Params: params, Body: seq[2:], Env: env})

	case Define:
		if len(seq) < 2 {
			panic(evalErrorf(ErrMalformed, "Malformed define expression"))
		}
		switch seq[1].Kind {
		case Name:
			val := it.eval(seq[2:], env)
			env.Define(seq[1].Str, val)
			return val
		case Expr:
			decl := seq[1].List
			if len(decl) == 0 || decl[0].Kind != Name || len(seq) < 3 {
				panic(evalErrorf(ErrMalformed, "Unfamiliar form to define"))
			}
			name := decl[0].Str
			params, err := paramNames(decl[1:])
			if err != nil {
				panic(err)
			}
			proc := ProcCell(&Procedure{Params: params, Body: seq[2:], Env: env})
			env.Define(name, proc)
			return proc
		default:
			panic(evalErrorf(ErrMalformed, "Unfamiliar form to define"))
		}

	case Let:
		if len(seq) < 3 || seq[1].Kind != Expr {
			panic(evalErrorf(ErrMalformed, "Let expects a list of definitions and a body"))
		}
		local := it.bindLet(seq[1].List, env)
		return it.eval(seq[2:], local)

	case Cond:
		return it.evalCond(seq[1:], env)

	case Expr:
		return it.evalHeadExpr(seq, env)

	case Name:
		return it.applyByName(seq, env)

	default:
		if isPrimitive(head.Kind) {
			if len(seq) < 2 {
				panic(evalErrorf(ErrMalformed, "Primitives take at least one argument"))
			}
			args := it.evlist(seq[1:], env)
			return ApplyPrim(head, args)
		}
		panic(evalErrorf(ErrUnmatchedCell, "%s", ErrUnmatchedCell))
	}
}

// evalHeadExpr implements the Expr dispatch row of spec.md §4.4: the
// enclosed sequence is evaluated via evlist, and the single-element
// result is unwrapped; otherwise it is wrapped back into an Expr cell.
//
// If that yields a Proc and seq carries further elements, they are
// evaluated and applied to it — spec.md §8's scenario
// `((lambda (x y) (cat x y)) 'foo 'bar)` requires this: the original
// this was ported from evaluated the leading parenthesized form and
// returned immediately, silently dropping any trailing arguments, which
// made that scenario print `proc` instead of applying it. Applying a
// Proc produced by an inline expression, not just one reached by name,
// is required by that scenario and implemented here.
func (it *Interp) evalHeadExpr(seq []Cell, env *Env) Cell {
	inner := it.evlist(seq[0].List, env)
	var headVal Cell
	if len(inner) == 1 {
		headVal = inner[0]
	} else {
		headVal = ExprCell(inner)
	}
	rest := seq[1:]
	if headVal.Kind != Proc || len(rest) == 0 {
		return headVal
	}
	args := it.evlist(rest, env)
	return it.apply(headVal, args)
}

// applyByName implements the Name dispatch row: look up the head name;
// if it is not a Proc, it is a plain variable reference. Otherwise
// collect arguments, evaluating Number/Quote/Name cells locally as a
// shortcut and falling back to evlist on the remainder at the first
// cell that needs full evaluation.
func (it *Interp) applyByName(seq []Cell, env *Env) Cell {
	v, err := env.Lookup(seq[0].Str)
	if err != nil {
		panic(err)
	}
	if v.Kind != Proc {
		return v
	}
	var args []Cell
	i := 1
	for i < len(seq) {
		switch seq[i].Kind {
		case Number:
			args = append(args, seq[i])
			i++
		case Quote:
			if i+1 >= len(seq) {
				panic(evalErrorf(ErrMalformed, "Quote expects 1 arg"))
			}
			args = append(args, seq[i+1])
			i += 2
		case Name:
			arg, err := env.Lookup(seq[i].Str)
			if err != nil {
				panic(err)
			}
			args = append(args, arg)
			i++
		default:
			args = append(args, it.evlist(seq[i:], env)...)
			i = len(seq)
		}
	}
	return it.apply(v, args)
}

// bindLet evaluates each (name val) pair's val in the outer env and
// binds name in a freshly created inner frame, per spec.md §4.4's Let
// row: values are evaluated in the **outer** env, not the new frame.
// val is evaluated from pair.List[1:], not pair.List[1] alone, so a
// quoted-atom value like 'x (which parses as the two flat Cells Quote,
// Name, not one) still finds its operand — each pair is already closed
// off by its own parens at parse time, so the slice cannot overrun into
// a sibling pair.
func (it *Interp) bindLet(pairs []Cell, outer *Env) *Env {
	local := &Env{vars: make(map[string]Cell, len(pairs)), outer: outer}
	for _, pair := range pairs {
		if pair.Kind != Expr || len(pair.List) < 2 || pair.List[0].Kind != Name {
			panic(evalErrorf(ErrMalformed, "Let expects a list of definitions and a body"))
		}
		val := it.eval(pair.List[1:], outer)
		local.Define(pair.List[0].Str, val)
	}
	return local
}

// evalCond implements the Cond dispatch row over clauses (the elements
// of seq after the leading Cond cell have already been stripped by the
// caller). A clause's consequent is evaluated as c.List[1:], not just
// c.List[1] alone: a quoted-atom consequent like 'b parses as two flat
// Cells (Quote, Name), and slicing to the clause's own end (each clause
// is already closed off by its own parens at parse time) rather than to
// a single Cell lets Quote find its operand — spec.md §8 scenario 5
// exercises exactly this shape.
func (it *Interp) evalCond(clauses []Cell, env *Env) Cell {
	for i, c := range clauses {
		if c.Kind != Expr || len(c.List) < 2 {
			panic(evalErrorf(ErrMalformed, "malformed cond clause"))
		}
		if c.List[0].Kind == Else {
			if i != len(clauses)-1 {
				panic(evalErrorf(ErrMalformed, "Else clause not at end of condition"))
			}
			return it.eval(c.List[1:], env)
		}
		pred := it.eval([]Cell{c.List[0]}, env)
		if pred.Truthy() {
			return it.eval(c.List[1:], env)
		}
	}
	return Simple(End)
}

// apply extends the Proc's closure Env with a new frame binding its
// params to args, and evaluates the Proc's body in the new frame.
func (it *Interp) apply(c Cell, args []Cell) Cell {
	proc := c.ProcRef
	newEnv, err := proc.Env.Extend(proc.Params, args)
	if err != nil {
		panic(err)
	}
	return it.eval(proc.Body, newEnv)
}

// Apply is the exported form of procedure application: extend the
// Proc's closure env with a frame binding params to args (by position),
// then evaluate the body in the new frame.
func (it *Interp) Apply(c Cell, args []Cell) (result Cell, err error) {
	defer catch(&err)
	if c.Kind != Proc {
		panic(evalErrorf(ErrMalformed, "apply: not a procedure"))
	}
	result = it.apply(c, args)
	return
}

// evlist is the unexported, panic-on-error recursive worker behind
// Evlist. It mirrors eval's dispatch but accumulates one result per
// element of seq instead of returning after the first, except for the
// forms that intrinsically consume the whole remaining sequence
// (Include, Begin, Lambda, Define, Let, Cond, a primitive application,
// or applying a Proc), which return immediately just as eval does.
func (it *Interp) evlist(seq []Cell, env *Env) []Cell {
	var res []Cell
	for i := 0; i < len(seq); i++ {
		p := seq[i]
		switch p.Kind {
		case Number:
			res = append(res, p)

		case Quote:
			if i+1 >= len(seq) {
				panic(evalErrorf(ErrMalformed, "Quote expects 1 arg"))
			}
			i++
			res = append(res, seq[i])

		case Include:
			if i+1 >= len(seq) || seq[i+1].Kind != Name {
				panic(evalErrorf(ErrMalformed, "malformed include"))
			}
			if err := it.Stream.Include(seq[i+1].Str); err != nil {
				panic(evalErrorf(ErrMalformed, "include %s: %v", seq[i+1].Str, err))
			}
			return res

		case Begin:
			rest := seq[i+1:]
			if len(rest) == 0 {
				return res
			}
			it.evlist(rest[:len(rest)-1], env)
			return append(res, it.eval(rest[len(rest)-1:], env))

		case Lambda:
			if i+2 >= len(seq) || seq[i+1].Kind != Expr {
				panic(evalErrorf(ErrMalformed, "Malformed lambda expression"))
			}
			params, err := paramNames(seq[i+1].List)
			if err != nil {
				panic(err)
			}
			return append(res, ProcCell(&Procedure{Params: params, Body: seq[i+2:], Env: env}))

		case Define:
			rest := seq[i+1:]
			return append(res, it.eval(append([]Cell{Simple(Define)}, rest...), env))

		case Expr:
			r := it.evlist(p.List, env)
			if len(r) == 1 {
				res = append(res, r[0])
			} else {
				res = append(res, ExprCell(r))
			}

		case Let:
			rest := seq[i+1:]
			return append(res, it.eval(append([]Cell{Simple(Let)}, rest...), env))

		case Cond:
			return append(res, it.evalCond(seq[i+1:], env))

		case Name:
			v, err := env.Lookup(p.Str)
			if err != nil {
				panic(err)
			}
			if v.Kind != Proc {
				res = append(res, v)
				continue
			}
			args := it.collectArgs(seq[i+1:], env)
			return append(res, it.apply(v, args))

		default:
			if isPrimitive(p.Kind) {
				if i+1 >= len(seq) {
					panic(evalErrorf(ErrMalformed, "Primitives take at least one argument"))
				}
				args := it.evlist(seq[i+1:], env)
				return append(res, ApplyPrim(p, args))
			}
			panic(evalErrorf(ErrUnmatchedCell, "%s", ErrUnmatchedCell))
		}
	}
	return res
}

// collectArgs is applyByName's argument-collection shortcut, reused by
// evlist's Name case.
func (it *Interp) collectArgs(seq []Cell, env *Env) []Cell {
	var args []Cell
	i := 0
	for i < len(seq) {
		switch seq[i].Kind {
		case Number:
			args = append(args, seq[i])
			i++
		case Quote:
			if i+1 >= len(seq) {
				panic(evalErrorf(ErrMalformed, "Quote expects 1 arg"))
			}
			args = append(args, seq[i+1])
			i += 2
		case Name:
			v, err := env.Lookup(seq[i].Str)
			if err != nil {
				panic(err)
			}
			args = append(args, v)
			i++
		default:
			args = append(args, it.evlist(seq[i:], env)...)
			i = len(seq)
		}
	}
	return args
}
