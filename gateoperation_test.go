package qcircuit

import (
	"errors"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestNewGateOperation(t *testing.T) {
	g, err := NewIdentityGate(2, 2)
	if err != nil {
		t.Fatal(err)
	}

	op, err := NewGateOperation(g, []Qid{LineQubit{X: 0}, LineQubit{X: 1}})
	if err != nil {
		t.Fatalf("NewGateOperation: %v", err)
	}
	if got := op.QidShape(); got.String() != "(2, 2)" {
		t.Errorf("QidShape() = %v, expected (2, 2)", got)
	}
	if got := op.Tags(); got != nil {
		t.Errorf("Tags() = %v, expected nil on a raw binding", got)
	}
	if got := op.Untagged(); !sameOperation(got, op) {
		t.Errorf("Untagged() = %v, expected the binding itself", got)
	}

	t.Run("rejects wrong arity", func(t *testing.T) {
		_, err := NewGateOperation(g, []Qid{LineQubit{X: 0}})
		var arity *ArityError
		if !errors.As(err, &arity) {
			t.Fatalf("NewGateOperation = %v, expected an *ArityError", err)
		}
	})

	t.Run("rejects wrong slot dimension", func(t *testing.T) {
		qutrit, err := NewLineQid(1, 3)
		if err != nil {
			t.Fatal(err)
		}
		_, err = NewGateOperation(g, []Qid{LineQubit{X: 0}, qutrit})
		var slot *SlotDimensionError
		if !errors.As(err, &slot) {
			t.Fatalf("NewGateOperation = %v, expected a *SlotDimensionError", err)
		}
		if slot.Slot != 1 {
			t.Errorf("SlotDimensionError.Slot = %d, expected 1", slot.Slot)
		}
	})

	t.Run("clones the qubit list", func(t *testing.T) {
		qids := []Qid{LineQubit{X: 0}, LineQubit{X: 1}}
		op, err := NewGateOperation(g, qids)
		if err != nil {
			t.Fatal(err)
		}
		qids[0] = LineQubit{X: 99}
		if got := op.Qubits()[0]; !QidsEqual(got, LineQubit{X: 0}) {
			t.Errorf("caller mutation leaked into the binding: Qubits()[0] = %v", got)
		}
	})
}

// sameOperation compares two operations by gate presence and qubit keys, the
// identity the Operation interface defines. Interface equality is not usable
// here because bindings carry slices.
func sameOperation(a, b Operation) bool {
	if (a.Gate() == nil) != (b.Gate() == nil) {
		return false
	}
	aq, bq := a.Qubits(), b.Qubits()
	if len(aq) != len(bq) {
		return false
	}
	for i := range aq {
		if !QidsEqual(aq[i], bq[i]) {
			return false
		}
	}
	return true
}

func TestGateOperationWithQubits(t *testing.T) {
	g, err := NewIdentityGate(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	op, err := On(g, LineQubit{X: 0}, LineQubit{X: 1})
	if err != nil {
		t.Fatal(err)
	}

	swapped, err := op.WithQubits(NamedQubit{Name: "a"}, NamedQubit{Name: "b"})
	if err != nil {
		t.Fatalf("WithQubits: %v", err)
	}
	if got := swapped.Qubits(); !QidsEqual(got[0], NamedQubit{Name: "a"}) || !QidsEqual(got[1], NamedQubit{Name: "b"}) {
		t.Errorf("WithQubits qubits = %v, expected the replacement list", got)
	}
	if got := op.Qubits(); !QidsEqual(got[0], LineQubit{X: 0}) {
		t.Errorf("WithQubits modified the original: %v", got)
	}

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := op.WithQubits(NamedQubit{Name: "a"})
		var arity *ArityError
		if !errors.As(err, &arity) {
			t.Fatalf("WithQubits = %v, expected an *ArityError", err)
		}
	})
}

func TestGateOperationWithGate(t *testing.T) {
	g2, err := NewIdentityGate(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	op, err := On(g2, LineQubit{X: 0}, LineQubit{X: 1})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("compatible gate", func(t *testing.T) {
		swapped, err := op.WithGate(NewInverseCompositeGate(g2))
		if err != nil {
			t.Fatalf("WithGate: %v", err)
		}
		if !sameOperation(swapped, op) {
			t.Errorf("WithGate changed the qubit list: %v", swapped.Qubits())
		}
	})

	t.Run("incompatible gate is re-validated", func(t *testing.T) {
		g3, err := NewIdentityGate(3, 3)
		if err != nil {
			t.Fatal(err)
		}
		_, err = op.WithGate(g3)
		var slot *SlotDimensionError
		if !errors.As(err, &slot) {
			t.Fatalf("WithGate = %v, expected a *SlotDimensionError", err)
		}
	})
}

func TestGateOperationString(t *testing.T) {
	g, err := NewIdentityGate(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	op, err := On(g, LineQubit{X: 0}, LineQubit{X: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := op.String(), "I(2, 2)(q(0), q(1))"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestGateOperationConcurrentReads(t *testing.T) {
	// Operations are immutable values, so concurrent readers need no
	// synchronisation. Run with -race to exercise the claim.
	g, err := NewIdentityGate(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	op, err := On(g, LineQubit{X: 0}, LineQubit{X: 1})
	if err != nil {
		t.Fatal(err)
	}

	var group errgroup.Group
	for i := 0; i < 8; i++ {
		group.Go(func() error {
			for j := 0; j < 100; j++ {
				if got := len(op.Qubits()); got != 2 {
					t.Errorf("Qubits() returned %d qubits", got)
				}
				if _, err := op.WithQubits(NamedQubit{Name: "a"}, NamedQubit{Name: "b"}); err != nil {
					return err
				}
				_ = op.WithTags(VirtualTag{}).Tags()
				_ = op.String()
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		t.Fatal(err)
	}
}
