package lisp

// Procedure is a user-defined procedure: an ordered list of parameter names,
// an ordered list of body Cells, and the Env it closed over at creation
// time. A Procedure is created by `lambda` or by the `define (name args)
// body` sugar and lives for the remainder of the interpreter's run — it
// holds a non-owning reference to Env, which is why Env is never
// reclaimed (spec.md §3).
type Procedure struct {
	Params []string
	Body   []Cell
	Env    *Env
}

// paramNames extracts the parameter names from a parameter-list Cell
// (the Expr that follows `lambda` or a `(name p1 p2 ...)` define head).
func paramNames(params []Cell) ([]string, error) {
	names := make([]string, len(params))
	for i, p := range params {
		if p.Kind != Name {
			return nil, evalErrorf(ErrMalformed, "%s: parameter %d is not a name", ErrMalformed, i)
		}
		names[i] = p.Str
	}
	return names, nil
}
