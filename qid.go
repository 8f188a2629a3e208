package qcircuit

import (
	"slices"
	"strconv"
	"strings"
)

// A Qid identifies a discrete quantum object such as a qubit, qudit or
// resonator. Although the qcircuit package could identify objects by any
// comparable type, we require them to implement this interface so that
// identity, ordering and dimension are uniform across heterogeneous qubit
// implementations.
//
// Equality and ordering between any two Qids are defined exclusively by
// lexicographic comparison of their comparison keys (see CompareQids); no
// other field, the dimension included, participates. This yields a
// deterministic total order across qubit kinds that have never heard of each
// other.
type Qid interface {
	// ComparisonKey returns the canonical key used for equality and ordering
	// of identifiers. Two Qids with equal keys are the same quantum object.
	//
	// Keys must be stable: the same logical qubit must report the same key for
	// the lifetime of the program (and, if keys are persisted, across
	// versions of the software).
	ComparisonKey() string
	// Dimension returns the number of quantum levels this qid has.
	// E.g. 2 for a qubit, 3 for a qutrit.
	Dimension() int
}

// ValidateDimension checks that the given dimension is a legal quantum-level
// count. It fails with a *DimensionError for any dimension below one,
// independent of any particular identifier. Concrete Qid constructors call it
// so that invalid identifiers are never built.
func ValidateDimension(dimension int) error {
	if dimension < 1 {
		return &DimensionError{Dimension: dimension}
	}
	return nil
}

// CompareQids compares two identifiers by their comparison keys, returning
// -1, 0 or +1 in the manner of [strings.Compare].
func CompareQids(a, b Qid) int {
	return strings.Compare(a.ComparisonKey(), b.ComparisonKey())
}

// QidsEqual reports whether two identifiers denote the same quantum object.
// Keys alone decide: a qubit and a qudit with the same key are equal even
// though their dimensions differ.
func QidsEqual(a, b Qid) bool {
	return a.ComparisonKey() == b.ComparisonKey()
}

// SortQids sorts the given identifiers in place into their canonical total
// order.
func SortQids(qids []Qid) {
	slices.SortFunc(qids, CompareQids)
}

// QubitAsQid adapts any identifier to an explicit target dimension. It wraps
// the original qubit untouched, so the original can always be recovered via
// Qubit.
//
// The zero value is not valid; use NewQubitAsQid.
type QubitAsQid struct {
	qubit     Qid
	dimension int
}

// NewQubitAsQid wraps qubit with the given target dimension. The dimension is
// validated at construction: adapters carrying a dimension below one are never
// built.
func NewQubitAsQid(qubit Qid, dimension int) (QubitAsQid, error) {
	if err := ValidateDimension(dimension); err != nil {
		return QubitAsQid{}, err
	}
	return QubitAsQid{qubit: qubit, dimension: dimension}, nil
}

// Qubit returns the wrapped identifier unchanged.
func (q QubitAsQid) Qubit() Qid { return q.qubit }

// Dimension returns the adapter's target dimension, not the wrapped qubit's.
func (q QubitAsQid) Dimension() int { return q.dimension }

// ComparisonKey combines the wrapped qubit's own key with the target
// dimension. The combination keeps two distinct wrapped qubits distinct, and
// keeps the same qubit at different target dimensions distinguishable.
func (q QubitAsQid) ComparisonKey() string {
	return q.qubit.ComparisonKey() + "/dim=" + strconv.Itoa(q.dimension)
}

// WithDimension returns an adapter around the same wrapped qubit with the
// given target dimension. If the dimension already matches, the receiver is
// returned unchanged; otherwise a new adapter is constructed (and validated).
func (q QubitAsQid) WithDimension(dimension int) (QubitAsQid, error) {
	if dimension == q.dimension {
		return q, nil
	}
	return NewQubitAsQid(q.qubit, dimension)
}

func (q QubitAsQid) String() string {
	return q.ComparisonKey()
}
