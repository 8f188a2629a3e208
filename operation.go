package qcircuit

// An Operation is an effect that applies to a specific, ordered list of
// qubits: usually a gate bound to those qubits, plus an ordered list of
// opaque tags.
//
// Do not modify the slices returned from its methods; implementations in this
// package return defensive copies, and third-party implementations are
// expected to do the same.
//
// All Operation values are immutable. Every mutator returns a new value, so
// an Operation held by one consumer can never change under another.
type Operation interface {
	// Qubits returns the ordered qubit list the operation applies to.
	Qubits() []Qid

	// Gate returns the underlying gate, or nil for opaque operations that are
	// not backed by one.
	Gate() Gate

	// WithQubits returns a new operation with the qubit list replaced
	// positionally. The replacement list must be structurally consistent with
	// the operation (same length; for gate-backed operations, matching the
	// gate's shape); implementations validate the replacement and refuse to
	// produce an inconsistent operation.
	WithQubits(qids ...Qid) (Operation, error)

	// Tags returns the operation's own ordered, non-deduplicated tag list.
	// Raw bindings report no tags.
	Tags() []Tag

	// Untagged returns the operation with any tag wrapper stripped, recovering
	// the operation as it was before tagging. For operations that carry no
	// wrapper it returns the operation itself.
	Untagged() Operation

	// WithTags wraps the operation in a TaggedOperation carrying exactly the
	// given tags. Tags the operation already reports are discarded, not
	// merged: WithTags replaces.
	WithTags(tags ...Tag) TaggedOperation
}
