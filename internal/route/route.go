// Package route records the path from the initial state to a frontier node.
//
// A Path is an immutable, parent-linked list. Extending a path never
// modifies it, so sibling nodes share their common prefix safely while each
// node still owns a distinct path. Slice materialises a fresh []S that the
// caller owns.
package route

// Path is one step of a route: a state plus a link to the route that led to it.
// The nil *Path is the empty route.
type Path[S any] struct {
	state  S
	parent *Path[S]
	length int
}

// Root starts a route at the given state.
func Root[S any](state S) *Path[S] {
	return &Path[S]{state: state, length: 1}
}

// Extend returns a new route that is p followed by state. p is left unchanged.
func (p *Path[S]) Extend(state S) *Path[S] {
	return &Path[S]{state: state, parent: p, length: p.Len() + 1}
}

// Len returns the number of states in the route.
func (p *Path[S]) Len() int {
	if p == nil {
		return 0
	}
	return p.length
}

// Last returns the final state of the route.
func (p *Path[S]) Last() (S, bool) {
	if p == nil {
		var zero S
		return zero, false
	}
	return p.state, true
}

// Slice returns the states from the first to the last, inclusive.
func (p *Path[S]) Slice() []S {
	out := make([]S, p.Len())
	for i, cur := len(out)-1, p; cur != nil; i, cur = i-1, cur.parent {
		out[i] = cur.state
	}
	return out
}
