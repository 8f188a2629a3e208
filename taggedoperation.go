package qcircuit

import (
	"fmt"
	"slices"
	"strings"
)

// A TaggedOperation decorates a sub-operation with an ordered list of opaque
// tags. The sub-operation is owned exclusively and never modified; Untagged
// hands it back exactly as it was given, so wrapping is always reversible.
//
// The tag list is the wrapper's own. Tags the sub-operation might itself
// report are not merged in; construction replaces.
type TaggedOperation struct {
	sub  Operation
	tags []Tag
}

// NewTaggedOperation wraps sub with exactly the given tags. The tag slice is
// copied, so later modifications by the caller do not leak into the wrapper.
func NewTaggedOperation(sub Operation, tags ...Tag) TaggedOperation {
	return TaggedOperation{sub: sub, tags: slices.Clone(tags)}
}

// Qubits delegates to the sub-operation.
func (op TaggedOperation) Qubits() []Qid { return op.sub.Qubits() }

// Gate delegates to the sub-operation.
func (op TaggedOperation) Gate() Gate { return op.sub.Gate() }

// WithQubits substitutes qubits on the sub-operation and rewraps the result
// with the same tag list; qubit substitution never discards tags.
func (op TaggedOperation) WithQubits(qids ...Qid) (Operation, error) {
	swapped, err := op.sub.WithQubits(qids...)
	if err != nil {
		return nil, err
	}
	return NewTaggedOperation(swapped, op.tags...), nil
}

// Tags returns a copy of exactly the tags given at construction, in order and
// without deduplication.
func (op TaggedOperation) Tags() []Tag { return slices.Clone(op.tags) }

// Untagged returns the sub-operation unchanged, the exact inverse of the
// WithTags that produced this wrapper.
func (op TaggedOperation) Untagged() Operation { return op.sub }

// WithTags returns a wrapper around the same sub-operation carrying exactly
// the given tags. The receiver's tags are discarded, not merged.
func (op TaggedOperation) WithTags(tags ...Tag) TaggedOperation {
	return NewTaggedOperation(op.sub, tags...)
}

func (op TaggedOperation) String() string {
	if len(op.tags) == 0 {
		return fmt.Sprintf("%v", op.sub)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%v [", op.sub)
	for i, tag := range op.tags {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", tag)
	}
	b.WriteByte(']')
	return b.String()
}
