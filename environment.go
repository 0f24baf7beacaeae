package wispy

// Environment is a local frame mapping unique Symbols to owned Value
// copies, plus an optional parent frame forming a chain to the global
// frame.
type Environment struct {
	parent *Environment
	vars   map[Symbol]Value
}

// NewEnvironment creates an empty frame with the given parent (nil for the
// global/root frame).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, vars: make(map[Symbol]Value)}
}

// Parent returns e's parent frame, or nil if e is the root.
func (e *Environment) Parent() *Environment { return e.parent }

// SetParent sets e's parent frame. The call machinery uses this to
// transiently chain a Lambda's local frame to its caller's frame for the
// duration of one call; outside of an active call the parent is nil.
func (e *Environment) SetParent(parent *Environment) { e.parent = parent }

// Get looks up sym, walking the parent chain from e to the root, and
// returns an owned copy of the bound value. The second result is false if
// sym is bound nowhere in the chain.
func (e *Environment) Get(sym Symbol) (Value, bool) {
	for frame := e; frame != nil; frame = frame.parent {
		if v, ok := frame.vars[sym]; ok {
			return Copy(v), true
		}
	}
	return nil, false
}

// Put binds sym to val in e's own frame, replacing any existing binding —
// the target of `=`.
func (e *Environment) Put(sym Symbol, val Value) { e.vars[sym] = Copy(val) }

// Def binds sym to val in the root frame of e's chain — the target of
// `def`, regardless of how deeply e is nested.
func (e *Environment) Def(sym Symbol, val Value) {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	root.vars[sym] = Copy(val)
}

// copyLocal returns a new Environment with the same local bindings as e
// (deep-copied) and no parent. Used when a Lambda value is copied, e.g.
// during currying: the copy must not share mutable state with the
// original, and must start parent-less until it is next called.
func (e *Environment) copyLocal() *Environment {
	n := NewEnvironment(nil)
	for sym, val := range e.vars {
		n.vars[sym] = Copy(val)
	}
	return n
}
