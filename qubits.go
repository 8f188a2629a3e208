package qcircuit

import (
	"fmt"
	"math"
)

// This file provides the stock identifier kinds. They cover the common
// hardware layouts (named, linear, grid) so that most programs never need to
// define their own Qid; programs that do only have to satisfy the two-method
// interface.
//
// Comparison keys are type-prefixed so different kinds never collide, and
// integer coordinates use a sign-aware fixed-width encoding so the
// lexicographic key order required by the Qid contract coincides with numeric
// order.

// sortKeyInt64 encodes x as a string whose lexicographic order matches the
// numeric order of int64, negatives included. Non-negative values are
// zero-padded to a fixed width. Negative values are prefixed with '-' (which
// sorts before any digit) and biased by math.MinInt64 so that more negative
// values yield smaller digit strings.
func sortKeyInt64(x int64) string {
	if x >= 0 {
		return fmt.Sprintf("%019d", x)
	}
	return fmt.Sprintf("-%019d", x-math.MinInt64)
}

// A NamedQubit is a qubit (dimension 2) distinguished only by its name. Two
// NamedQubits with the same name are the same qubit.
type NamedQubit struct {
	Name string
}

func (q NamedQubit) ComparisonKey() string { return "named:" + q.Name }
func (q NamedQubit) Dimension() int        { return 2 }
func (q NamedQubit) String() string        { return q.Name }

// A LineQubit is a qubit (dimension 2) at position X on a one-dimensional
// lattice.
type LineQubit struct {
	X int64
}

// ComparisonKey shares the "line:" key space with LineQid, so a LineQubit and
// a LineQid at the same position are the same quantum object regardless of
// their dimensions.
func (q LineQubit) ComparisonKey() string { return "line:" + sortKeyInt64(q.X) }
func (q LineQubit) Dimension() int        { return 2 }
func (q LineQubit) String() string        { return fmt.Sprintf("q(%d)", q.X) }

// LineRange returns the first n line qubits, in order of position starting
// at zero.
func LineRange(n int) []Qid {
	qids := make([]Qid, n)
	for i := range qids {
		qids[i] = LineQubit{X: int64(i)}
	}
	return qids
}

// A GridQubit is a qubit (dimension 2) at a row/column position on a
// two-dimensional lattice.
type GridQubit struct {
	Row, Col int64
}

func (q GridQubit) ComparisonKey() string {
	return "grid:" + sortKeyInt64(q.Row) + "," + sortKeyInt64(q.Col)
}
func (q GridQubit) Dimension() int { return 2 }
func (q GridQubit) String() string { return fmt.Sprintf("q(%d, %d)", q.Row, q.Col) }

// A LineQid is a qudit at position x on a one-dimensional lattice with an
// explicit number of quantum levels.
//
// The zero value is not valid; use NewLineQid.
type LineQid struct {
	x         int64
	dimension int
}

// NewLineQid returns the qudit at position x with the given dimension. The
// dimension is validated at construction.
func NewLineQid(x int64, dimension int) (LineQid, error) {
	if err := ValidateDimension(dimension); err != nil {
		return LineQid{}, err
	}
	return LineQid{x: x, dimension: dimension}, nil
}

// LineQidRange returns the first n line qudits of the given dimension, in
// order of position starting at zero.
func LineQidRange(n, dimension int) ([]Qid, error) {
	qids := make([]Qid, n)
	for i := range qids {
		q, err := NewLineQid(int64(i), dimension)
		if err != nil {
			return nil, err
		}
		qids[i] = q
	}
	return qids, nil
}

// X returns the qudit's position on the lattice.
func (q LineQid) X() int64 { return q.x }

// ComparisonKey shares the "line:" key space with LineQubit; see the note
// there.
func (q LineQid) ComparisonKey() string { return "line:" + sortKeyInt64(q.x) }
func (q LineQid) Dimension() int        { return q.dimension }
func (q LineQid) String() string        { return fmt.Sprintf("q(%d) (d=%d)", q.x, q.dimension) }
