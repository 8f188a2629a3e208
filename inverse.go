package qcircuit

// An InverseCompositeGate is the lazy inverse of another gate. It records the
// original gate and exposes its shape; computing the actual inverse is
// deferred to an external decomposition collaborator, which recovers the
// original via Original.
type InverseCompositeGate struct {
	original Gate
}

// NewInverseCompositeGate returns the lazy inverse of the given gate.
func NewInverseCompositeGate(g Gate) InverseCompositeGate {
	return InverseCompositeGate{original: g}
}

// Original returns the gate being inverted.
func (g InverseCompositeGate) Original() Gate { return g.original }

// QidShape delegates to the original gate: inversion never changes the shape.
func (g InverseCompositeGate) QidShape() QidShape { return g.original.QidShape() }

func (g InverseCompositeGate) String() string { return gateName(g.original) + "†" }
