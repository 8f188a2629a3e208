package qcircuit

import (
	"errors"
	"fmt"
	"testing"
)

func TestQidShapeValidate(t *testing.T) {
	if err := (QidShape{2, 3, 4}).Validate(); err != nil {
		t.Errorf("Validate() = %v for a well-formed shape", err)
	}

	var dim *DimensionError
	if err := (QidShape{2, 0}).Validate(); !errors.As(err, &dim) {
		t.Errorf("Validate() = %v, expected a *DimensionError for a zero slot", err)
	}
}

func TestQidShapeValidateArgs(t *testing.T) {
	shape := QidShape{2}

	t.Run("matching qubit", func(t *testing.T) {
		if err := shape.ValidateArgs([]Qid{LineQubit{X: 0}}); err != nil {
			t.Errorf("ValidateArgs = %v for a matching qubit", err)
		}
	})

	t.Run("wrong slot dimension", func(t *testing.T) {
		qutrit, err := NewLineQid(0, 3)
		if err != nil {
			t.Fatal(err)
		}
		err = shape.ValidateArgs([]Qid{qutrit})
		var slot *SlotDimensionError
		if !errors.As(err, &slot) {
			t.Fatalf("ValidateArgs = %v, expected a *SlotDimensionError", err)
		}
		if slot.Slot != 0 || slot.Got != 3 || slot.Want != 2 {
			t.Errorf("SlotDimensionError = %+v, expected slot 0, got 3, want 2", slot)
		}
	})

	t.Run("wrong arity", func(t *testing.T) {
		err := shape.ValidateArgs([]Qid{LineQubit{X: 0}, LineQubit{X: 1}})
		var arity *ArityError
		if !errors.As(err, &arity) {
			t.Fatalf("ValidateArgs = %v, expected an *ArityError", err)
		}
		if arity.Got != 2 || arity.Want != 1 {
			t.Errorf("ArityError = %+v, expected got 2, want 1", arity)
		}
	})

	t.Run("arity before slots", func(t *testing.T) {
		// A list that is both too long and dimensionally wrong reports the
		// arity mismatch.
		qutrit, err := NewLineQid(0, 3)
		if err != nil {
			t.Fatal(err)
		}
		err = shape.ValidateArgs([]Qid{qutrit, qutrit})
		var arity *ArityError
		if !errors.As(err, &arity) {
			t.Errorf("ValidateArgs = %v, expected the *ArityError first", err)
		}
	})
}

func TestQidShapeString(t *testing.T) {
	tests := []struct {
		Shape QidShape
		Want  string
	}{
		{Shape: QidShape{}, Want: "()"},
		{Shape: QidShape{2}, Want: "(2)"},
		{Shape: QidShape{2, 3}, Want: "(2, 3)"},
	}
	for _, tt := range tests {
		if got := tt.Shape.String(); got != tt.Want {
			t.Errorf("QidShape%v.String() = %q, expected %q", []int(tt.Shape), got, tt.Want)
		}
	}
}

// evenGate accepts only line qubits at even positions, replacing the default
// check entirely.
type evenGate struct{}

func (evenGate) QidShape() QidShape { return QidShape{2} }

func (g evenGate) ValidateArgs(qids []Qid) error {
	if err := g.QidShape().ValidateArgs(qids); err != nil {
		return err
	}
	q, ok := qids[0].(LineQubit)
	if !ok {
		return fmt.Errorf("acts on line qubits, got %T", qids[0])
	}
	if q.X%2 != 0 {
		return fmt.Errorf("acts on even positions, got %d", q.X)
	}
	return nil
}

func TestValidateArgsDispatch(t *testing.T) {
	t.Run("default check", func(t *testing.T) {
		g, err := NewIdentityGate(2)
		if err != nil {
			t.Fatal(err)
		}
		if err := ValidateArgs(g, []Qid{LineQubit{X: 1}}); err != nil {
			t.Errorf("ValidateArgs = %v for a matching qubit", err)
		}
	})

	t.Run("specialised check", func(t *testing.T) {
		if err := ValidateArgs(evenGate{}, []Qid{LineQubit{X: 2}}); err != nil {
			t.Errorf("ValidateArgs = %v for an even position", err)
		}
		if err := ValidateArgs(evenGate{}, []Qid{LineQubit{X: 3}}); err == nil {
			t.Errorf("ValidateArgs accepted an odd position")
		}
		// The structural check still runs first inside the specialisation.
		var arity *ArityError
		if err := ValidateArgs(evenGate{}, nil); !errors.As(err, &arity) {
			t.Errorf("ValidateArgs(nil) = %v, expected an *ArityError", err)
		}
	})
}

func TestNewIdentityGate(t *testing.T) {
	g, err := NewIdentityGate(2, 3)
	if err != nil {
		t.Fatalf("NewIdentityGate(2, 3): %v", err)
	}
	if got := g.QidShape(); got.Arity() != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("QidShape() = %v, expected (2, 3)", got)
	}
	if got := g.String(); got != "I(2, 3)" {
		t.Errorf("String() = %q, expected %q", got, "I(2, 3)")
	}

	_, err = NewIdentityGate(2, 0)
	var dim *DimensionError
	if !errors.As(err, &dim) {
		t.Errorf("NewIdentityGate(2, 0) = %v, expected a *DimensionError", err)
	}
}

func TestOnEach(t *testing.T) {
	g, err := NewIdentityGate(2)
	if err != nil {
		t.Fatal(err)
	}

	ops, err := OnEach(g, LineRange(3)...)
	if err != nil {
		t.Fatalf("OnEach: %v", err)
	}
	if len(ops) != 3 {
		t.Fatalf("OnEach returned %d operations, expected 3", len(ops))
	}
	for i, op := range ops {
		want := LineQubit{X: int64(i)}
		if qids := op.Qubits(); len(qids) != 1 || !QidsEqual(qids[0], want) {
			t.Errorf("OnEach[%d].Qubits() = %v, expected [%v]", i, qids, want)
		}
	}

	t.Run("first failure wins", func(t *testing.T) {
		qutrit, err := NewLineQid(1, 3)
		if err != nil {
			t.Fatal(err)
		}
		_, err = OnEach(g, LineQubit{X: 0}, qutrit)
		var slot *SlotDimensionError
		if !errors.As(err, &slot) {
			t.Fatalf("OnEach = %v, expected a *SlotDimensionError", err)
		}
	})
}

func TestInverseCompositeGate(t *testing.T) {
	g, err := NewIdentityGate(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	inv := NewInverseCompositeGate(g)

	if got := inv.QidShape(); got.String() != g.QidShape().String() {
		t.Errorf("inverse QidShape() = %v, expected the original's %v", got, g.QidShape())
	}
	if got := inv.Original(); got.QidShape().String() != g.QidShape().String() {
		t.Errorf("Original() = %v, expected the gate being inverted", got)
	}
	if got, want := inv.String(), "I(2, 3)†"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}

	t.Run("binds like the original", func(t *testing.T) {
		qutrit, err := NewLineQid(1, 3)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := On(inv, LineQubit{X: 0}, qutrit); err != nil {
			t.Errorf("On(inverse) = %v for qubits matching the original shape", err)
		}
	})
}
