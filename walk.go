package qcircuit

// A Visitor defines a Visit method invoked for each layer of an operation's
// wrapper chain encountered by Walk. If the result visitor w is not nil, Walk
// visits the layer underneath with the visitor w, followed by a call of
// w.Visit(nil).
type Visitor interface {
	Visit(op Operation) (w Visitor)
}

// Walk traverses an operation's wrapper chain, outermost first: It starts by
// calling v.Visit(op). If the visitor w returned by v.Visit(op) is not nil
// and op is a tag wrapper, Walk is invoked recursively with visitor w on the
// operation underneath, followed by a call of w.Visit(nil).
//
// An operation that reports no tags is taken to be the raw binding; the chain
// ends there.
func Walk(v Visitor, op Operation) {
	// Start by calling v.Visit(op).
	if v = v.Visit(op); v == nil {
		return
	}
	// Then descend through the tag wrapper, if any.
	if len(op.Tags()) > 0 {
		Walk(v, op.Untagged())
	}
	// Finally, call v.Visit(nil).
	v.Visit(nil)
}

type inspector func(op Operation) bool

func (f inspector) Visit(op Operation) Visitor {
	if f(op) {
		return f
	}
	return nil
}

// Inspect traverses an operation's wrapper chain, outermost first: It starts
// by calling f(op); the op must not be nil. If f returns true, Inspect
// invokes f recursively on the operation underneath the wrapper, followed by
// a call of f(nil).
func Inspect(op Operation, f func(op Operation) bool) {
	Walk(inspector(f), op)
}
