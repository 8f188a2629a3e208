package qcircuit

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// A QidShape is the ordered sequence of dimensions a gate or operation
// expects, one per operand slot. Its length is the arity.
type QidShape []int

// Arity returns the number of operand slots.
func (s QidShape) Arity() int { return len(s) }

// Validate rejects shapes that declare a slot dimension below one.
func (s QidShape) Validate() error {
	for _, d := range s {
		if err := ValidateDimension(d); err != nil {
			return err
		}
	}
	return nil
}

// ValidateArgs is the default application check: the qubit list must match the
// shape's arity, and each qubit's dimension must match its slot. The arity is
// checked first; on a per-slot mismatch the offending index is reported.
func (s QidShape) ValidateArgs(qids []Qid) error {
	if len(qids) != len(s) {
		return &ArityError{Got: len(qids), Want: len(s)}
	}
	for i, q := range qids {
		if q.Dimension() != s[i] {
			return &SlotDimensionError{Slot: i, Got: q.Dimension(), Want: s[i]}
		}
	}
	return nil
}

func (s QidShape) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, d := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(d))
	}
	b.WriteByte(')')
	return b.String()
}

// A Gate is a reusable, qubit-independent effect definition with a fixed
// shape. A gate carries no qubit state of its own; binding it to concrete
// qubits produces an Operation (see NewGateOperation and On).
//
// The shape is the only required capability. Gates whose applicability rules
// go beyond the structural shape check implement ArgsValidator as well.
type Gate interface {
	// QidShape returns the ordered per-slot dimensions the gate expects.
	QidShape() QidShape
}

// ArgsValidator is the interface implemented by gates that constrain their
// operands beyond the default shape check, e.g. gates that only act on
// adjacent lattice positions.
//
// A specialised ValidateArgs replaces the default check entirely, so
// implementations that still want the structural guarantees should begin by
// calling QidShape().ValidateArgs themselves.
type ArgsValidator interface {
	// ValidateArgs returns a nil error if the gate may be applied to the given
	// ordered qubit list, and a non-nil error describing the violation
	// otherwise.
	ValidateArgs(qids []Qid) error
}

// ValidateArgs checks that the given qubit list is applicable to the given
// gate.
//
// If the gate implements ArgsValidator, its specialised check is called
// instead. Otherwise the gate's shape performs the default structural check:
// matching arity, then matching dimension per slot.
func ValidateArgs(g Gate, qids []Qid) error {
	if v, ok := g.(ArgsValidator); ok {
		return v.ValidateArgs(qids)
	}
	return g.QidShape().ValidateArgs(qids)
}

// On binds the gate to the given qubits, validating the binding. It is
// construction sugar for NewGateOperation.
func On(g Gate, qids ...Qid) (GateOperation, error) {
	return NewGateOperation(g, qids)
}

// OnEach binds a single-qubit gate to each of the given qubits in turn,
// returning one operation per qubit. It fails on the first qubit the gate
// cannot be applied to.
func OnEach(g Gate, qids ...Qid) ([]GateOperation, error) {
	ops := make([]GateOperation, 0, len(qids))
	for _, q := range qids {
		op, err := NewGateOperation(g, []Qid{q})
		if err != nil {
			return nil, fmt.Errorf("qubit %v: %w", q, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// An IdentityGate is a gate defined entirely by its shape: it applies to any
// qubit list matching the shape and has no effect. It is the one concrete
// gate this package ships, useful wherever a structurally valid placeholder
// is needed.
//
// The zero value is the zero-arity identity; use NewIdentityGate for anything
// else.
type IdentityGate struct {
	shape QidShape
}

// NewIdentityGate returns the identity gate with the given per-slot
// dimensions. The shape is validated at construction.
func NewIdentityGate(shape ...int) (IdentityGate, error) {
	s := QidShape(slices.Clone(shape))
	if err := s.Validate(); err != nil {
		return IdentityGate{}, err
	}
	return IdentityGate{shape: s}, nil
}

func (g IdentityGate) QidShape() QidShape { return slices.Clone(g.shape) }
func (g IdentityGate) String() string     { return "I" + g.shape.String() }
