package lisp

// Env is a lexical frame: an insertion-stable mapping from name to Cell
// plus an optional outer frame. Lookup walks outer links; Define affects
// only the receiver's own frame. Procedures hold a non-owning reference
// to their closure Env, and Envs are never reclaimed for the life of the
// interpreter (spec.md §3, "Proc / Env ownership") — Go's garbage
// collector already gives pointer-based Envs the storage stability the
// original C++ implementation needed hand-reserved arenas for, so a
// plain `*Env` outer link (the teacher's own representation) is enough;
// no arena or integer-handle indirection is needed to satisfy it.
type Env struct {
	vars  map[string]Cell
	outer *Env
}

// NewEnv creates an empty root Env with no outer frame.
func NewEnv() *Env {
	return &Env{vars: make(map[string]Cell)}
}

// Define inserts or overwrites name in this frame.
func (e *Env) Define(name string, value Cell) {
	e.vars[name] = value
}

// Lookup walks outward to the first frame containing name.
func (e *Env) Lookup(name string) (Cell, error) {
	for env := e; env != nil; env = env.outer {
		if v, ok := env.vars[name]; ok {
			return v, nil
		}
	}
	return Cell{}, evalErrorf(ErrUnboundVar, "%s: %s", ErrUnboundVar, name)
}

// Extend creates a new frame whose outer link is the receiver, binding
// each parameter name to the corresponding argument pairwise by
// position.
func (e *Env) Extend(params []string, args []Cell) (*Env, error) {
	if len(params) != len(args) {
		return nil, evalErrorf(ErrArgCount, "%s: expected %d, got %d", ErrArgCount, len(params), len(args))
	}
	frame := &Env{vars: make(map[string]Cell, len(params)), outer: e}
	for i, p := range params {
		frame.vars[p] = args[i]
	}
	return frame, nil
}
