// env.go
//
// The scope chain. An Env maps symbol names to objects and points at its
// parent; lookup walks outward until the root (parent == nil). Scopes are
// created on entering a user-defined function call and dropped on leaving
// it, strictly nested, never shared across calls.
package lisp

// Env is one scope in the chain.
type Env struct {
	vars   map[string]*Object
	parent *Env
}

// NewEnv returns an empty scope chained onto parent (nil for the root).
func NewEnv(parent *Env) *Env {
	return &Env{vars: map[string]*Object{}, parent: parent}
}

// Define binds name in this scope, shadowing any outer binding.
func (e *Env) Define(name string, v *Object) {
	e.vars[name] = v
}

// Get resolves name through the chain.
func (e *Env) Get(name string) (*Object, bool) {
	v, owner := e.lookup(name)
	if owner == nil {
		return nil, false
	}
	return v, true
}

// lookup resolves name and also reports the scope that owns the binding.
// The owner is what makes symbol memoization an explicit storage-cell
// update: the evaluated result replaces the binding where it lives, not in
// whatever scope happens to be current.
func (e *Env) lookup(name string) (*Object, *Env) {
	for s := e; s != nil; s = s.parent {
		if v, ok := s.vars[name]; ok {
			return v, s
		}
	}
	return nil, nil
}
