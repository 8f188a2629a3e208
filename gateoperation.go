package qcircuit

import (
	"fmt"
	"slices"
	"strings"
)

// A GateOperation is the default Operation implementation: a gate bound to an
// ordered qubit list. Raw bindings are untagged by construction; tagging goes
// through WithTags, which yields a TaggedOperation rather than mutating the
// binding.
//
// The zero value is not valid; use NewGateOperation or On.
type GateOperation struct {
	gate   Gate
	qubits []Qid
}

// NewGateOperation binds gate to the given ordered qubit list. The binding is
// checked with ValidateArgs at construction, so a structurally invalid
// binding is never built.
func NewGateOperation(gate Gate, qubits []Qid) (GateOperation, error) {
	err := ValidateArgs(gate, qubits)
	measureBinding(gate, err)
	if err != nil {
		return GateOperation{}, fmt.Errorf("bind %s: %w", gateName(gate), err)
	}
	return GateOperation{gate: gate, qubits: slices.Clone(qubits)}, nil
}

// Gate returns the bound gate.
func (op GateOperation) Gate() Gate { return op.gate }

// Qubits returns a copy of the ordered qubit list.
func (op GateOperation) Qubits() []Qid { return slices.Clone(op.qubits) }

// QidShape delegates to the bound gate.
func (op GateOperation) QidShape() QidShape { return op.gate.QidShape() }

// WithGate returns a new binding of the given gate to the same qubit list.
// The replacement is re-validated against the new gate's shape.
func (op GateOperation) WithGate(gate Gate) (GateOperation, error) {
	return NewGateOperation(gate, op.qubits)
}

// WithQubits returns a new binding of the same gate to the given qubit list,
// replaced positionally. The replacement is validated like any other binding.
func (op GateOperation) WithQubits(qids ...Qid) (Operation, error) {
	swapped, err := NewGateOperation(op.gate, qids)
	if err != nil {
		return nil, err
	}
	return swapped, nil
}

// Tags returns nil: a raw binding carries no tags.
func (op GateOperation) Tags() []Tag { return nil }

// Untagged returns the operation itself; there is no wrapper to strip.
func (op GateOperation) Untagged() Operation { return op }

// WithTags wraps the binding in a TaggedOperation carrying exactly the given
// tags.
func (op GateOperation) WithTags(tags ...Tag) TaggedOperation {
	return NewTaggedOperation(op, tags...)
}

func (op GateOperation) String() string {
	var b strings.Builder
	b.WriteString(gateName(op.gate))
	b.WriteByte('(')
	for i, q := range op.qubits {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", q)
	}
	b.WriteByte(')')
	return b.String()
}
