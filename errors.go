package qcircuit

import "fmt"

// A DimensionError reports an identifier that was constructed or validated
// with a dimension below one. Values carrying an invalid dimension are never
// built; the error is returned at the point of construction or validation.
type DimensionError struct {
	Dimension int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("wrong qid dimension: expected a positive integer but got %d", e.Dimension)
}

// An ArityError reports a qubit list whose length does not match the arity of
// the gate it is being applied to.
type ArityError struct {
	Got, Want int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("wrong number of qubits: gate expects %d but got %d", e.Want, e.Got)
}

// A SlotDimensionError reports a qubit whose dimension does not match the
// dimension the gate's shape declares for its slot. Slot is the zero-based
// position of the offending qubit.
type SlotDimensionError struct {
	Slot      int
	Got, Want int
}

func (e *SlotDimensionError) Error() string {
	return fmt.Sprintf("wrong qid dimension at slot %d: gate expects %d but got %d", e.Slot, e.Want, e.Got)
}
