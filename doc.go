// Package qcircuit provides the core object model of a quantum-circuit
// construction library: identifiers for qubit-like objects, gates, gates bound
// to concrete qubit lists, and opaque annotations attached to those bindings.
//
// The model is open on purpose. Anything exposing a canonical comparison key
// and a dimension is a Qid; anything exposing a QidShape is a Gate; anything
// satisfying the Operation interface composes like a native operation. Third
// parties add their own qubit and gate kinds without touching this package,
// and the structural invariants (arity, per-slot dimension, dimension >= 1)
// are enforced uniformly across all of them.
//
// Every value in this package is immutable once constructed. Mutators such as
// WithQubits, WithGate and WithTags return new values, so holders of an
// operation own an independent, stable snapshot and concurrent readers need no
// locking.
//
// Unitary semantics, decomposition, circuit sequencing, simulation and
// serialization are the business of downstream consumers of these types.
package qcircuit
