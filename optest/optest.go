/*
Package optest provides a suite of tests designed to assess implementations of
the qcircuit core capabilities (e.g. custom gates, custom operations).

The tests operate on the specific implementation via the [qcircuit.Gate] and
[qcircuit.Operation] interfaces to check functional correctness and compliance
with the behaviours defined by those interfaces.

Call optest.RunGate and optest.RunOperation in their own tests:

	func TestMyGate(t *testing.T) {
		optest.RunGate(t, MyGate{})
	}

	func TestMyOperation(t *testing.T) {
		op, err := qcircuit.On(MyGate{}, qcircuit.LineQubit{X: 0})
		if err != nil {
			t.Fatal(err)
		}
		optest.RunOperation(t, op, []qcircuit.Qid{qcircuit.LineQubit{X: 7}})
	}

The test cases in this suite focus on the structural contracts: shape
validity, arity and per-slot dimension validation, positional qubit
substitution, and the tag wrap/unwrap laws. So, specific implementations are
encouraged to perform additional tests which are specific to their own
semantics.
*/
package optest

import (
	"testing"

	"github.com/stretchr/testify/require"

	qcircuit "github.com/go-qcircuit/go-qcircuit"
)

// RunGate asserts the structural gate contract: the gate's shape is valid,
// lists with the wrong arity are rejected, and lists with a wrong per-slot
// dimension are rejected.
//
// For gates that do not customise validation (i.e. do not implement
// [qcircuit.ArgsValidator]), RunGate additionally asserts that a qubit list
// exactly matching the shape is accepted and that rejections carry the typed
// errors of the default check. Gates with custom constraints may reject
// matching lists for reasons of their own, so only the rejections are
// asserted for them.
func RunGate(t *testing.T, g qcircuit.Gate) {
	shape := g.QidShape()
	_, custom := g.(qcircuit.ArgsValidator)

	t.Run("shape", func(t *testing.T) {
		require.NoError(t, shape.Validate(), "gate declared a shape with a non-positive slot dimension")
		require.Equal(t, shape.Arity(), len(shape))
	})

	t.Run("accepts-matching-args", func(t *testing.T) {
		if custom {
			t.Skip("gate customises validation; a matching list may still be rejected")
		}
		require.NoError(t, qcircuit.ValidateArgs(g, matchingQids(t, shape)))
	})

	t.Run("rejects-extra-qubit", func(t *testing.T) {
		qids := append(matchingQids(t, shape), qcircuit.NamedQubit{Name: "extra"})
		err := qcircuit.ValidateArgs(g, qids)
		require.Error(t, err)
		if !custom {
			var arity *qcircuit.ArityError
			require.ErrorAs(t, err, &arity)
			require.Equal(t, shape.Arity(), arity.Want)
			require.Equal(t, shape.Arity()+1, arity.Got)
		}
	})

	t.Run("rejects-missing-qubit", func(t *testing.T) {
		if shape.Arity() == 0 {
			t.Skip("zero-arity gate has no qubit to drop")
		}
		qids := matchingQids(t, shape)
		err := qcircuit.ValidateArgs(g, qids[:len(qids)-1])
		require.Error(t, err)
		if !custom {
			var arity *qcircuit.ArityError
			require.ErrorAs(t, err, &arity)
		}
	})

	t.Run("rejects-slot-dimension", func(t *testing.T) {
		if shape.Arity() == 0 {
			t.Skip("zero-arity gate has no slot to violate")
		}
		for slot := range shape {
			qids := matchingQids(t, shape)
			wrong, err := qcircuit.NewLineQid(int64(slot), shape[slot]+1)
			require.NoError(t, err)
			qids[slot] = wrong

			err = qcircuit.ValidateArgs(g, qids)
			require.Error(t, err, "slot %d accepted a qubit of dimension %d", slot, shape[slot]+1)
			if !custom {
				var dim *qcircuit.SlotDimensionError
				require.ErrorAs(t, err, &dim)
				require.Equal(t, slot, dim.Slot)
				require.Equal(t, shape[slot], dim.Want)
				require.Equal(t, shape[slot]+1, dim.Got)
			}
		}
	})
}

// RunOperation asserts the Operation laws on the given untagged operation:
//
//   - WithQubits replaces the qubit list positionally and preserves the gate.
//   - WithTags carries exactly the given tags, and a second WithTags replaces
//     them rather than concatenating.
//   - Untagged is the exact inverse of WithTags with respect to qubits and
//     gate.
//   - WithQubits on a tagged operation never discards tags.
//
// The replacement list must be positionally compatible with the operation's
// current qubit list (same length, same per-slot dimensions).
func RunOperation(t *testing.T, op qcircuit.Operation, replacement []qcircuit.Qid) {
	require.Empty(t, op.Tags(), "RunOperation expects an untagged operation")
	require.Len(t, replacement, len(op.Qubits()), "replacement list is not positionally compatible")

	t.Run("with-qubits", func(t *testing.T) {
		swapped, err := op.WithQubits(replacement...)
		require.NoError(t, err)
		sameQubits(t, replacement, swapped.Qubits())
		sameGate(t, op.Gate(), swapped.Gate())

		// the original operation is untouched
		sameQubits(t, op.Qubits(), op.Untagged().Qubits())
	})

	t.Run("with-tags", func(t *testing.T) {
		t1 := []qcircuit.Tag{qcircuit.VirtualTag{}}
		t2 := []qcircuit.Tag{qcircuit.NewTraceTag(), qcircuit.VirtualTag{}}

		tagged := op.WithTags(t1...)
		sameTags(t, t1, tagged.Tags())
		sameQubits(t, op.Qubits(), tagged.Qubits())
		sameGate(t, op.Gate(), tagged.Gate())

		// replacement, not concatenation
		retagged := tagged.WithTags(t2...)
		sameTags(t, t2, retagged.Tags())

		// untagged recovers the pre-tag operation
		recovered := retagged.Untagged()
		require.Empty(t, recovered.Tags())
		sameQubits(t, op.Qubits(), recovered.Qubits())
		sameGate(t, op.Gate(), recovered.Gate())
	})

	t.Run("substitution-keeps-tags", func(t *testing.T) {
		tags := []qcircuit.Tag{qcircuit.VirtualTag{}, qcircuit.NewTraceTag()}
		swapped, err := op.WithTags(tags...).WithQubits(replacement...)
		require.NoError(t, err)
		sameTags(t, tags, swapped.Tags())
		sameQubits(t, replacement, swapped.Qubits())
	})
}

// matchingQids returns a qubit list that exactly matches the given shape,
// using line qudits of the declared slot dimensions.
func matchingQids(t *testing.T, shape qcircuit.QidShape) []qcircuit.Qid {
	t.Helper()
	qids := make([]qcircuit.Qid, shape.Arity())
	for i, d := range shape {
		q, err := qcircuit.NewLineQid(int64(i), d)
		require.NoError(t, err)
		qids[i] = q
	}
	return qids
}
