package qcircuit

import (
	"maps"
	"sync"
)

// A QidAttributeFunc is a function that defines a specific attribute of
// qubits. For a given Qid, it returns the attribute's value and a bool
// indicating whether that attribute is valid for that Qid.
//
// It usually inspects the given Qid to derive the appropriate value from it,
// but any value of type V is appropriate.
type QidAttributeFunc[V any] func(q Qid) (V, bool)

// A QidMap correlates qubits with a corresponding attribute value, keyed by
// the canonical comparison key so heterogeneous Qid implementations index
// consistently. The generic parameter V denotes the type of the attribute's
// value.
//
// Use the map's Update and Find methods to modify and access the stored
// attribute values by a Qid.
//
// QidMap is designed to be concurrently safe and can be accessed by multiple
// goroutines simultaneously.
type QidMap[V any] struct {
	m           map[string]V
	mu          sync.Mutex
	attributeOf QidAttributeFunc[V]
}

// NewQidMap returns a mapping/view of a single attribute of qubits. The
// provided attr function defines the desired attribute to store for every
// Qid.
//
// If an existing map 'm' is provided to NewQidMap, it will be used; otherwise,
// a new empty map is initialized. Note that 'm' is keyed by comparison key,
// corresponding to the keys the attr function's qubits report.
func NewQidMap[V any](attr QidAttributeFunc[V], m map[string]V) QidMap[V] {
	newMap := make(map[string]V)
	if m != nil {
		maps.Copy(newMap, m)
	}

	return QidMap[V]{
		m:           newMap,
		attributeOf: attr,
	}
}

// Find looks up the given Qid and returns its last known attribute value. If
// the given Qid cannot be found, Find indicates that by returning ok == false.
//
// Find is safe for concurrent use.
func (a *QidMap[V]) Find(q Qid) (v V, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	v, ok = a.m[q.ComparisonKey()]
	return v, ok
}

// Update determines the effective value of the mapped attribute based on the
// given Qid.
//
// If the Qid's attribute value is deemed invalid, this function will expunge
// the Qid from the QidMap: we cannot keep the previous value (if any) because
// of the definition of an "invalid" attribute for a specific qubit (see
// comment on QidAttributeFunc).
//
// Update is safe for concurrent use.
func (a *QidMap[V]) Update(q Qid) {
	a.mu.Lock()
	defer a.mu.Unlock()
	v, ok := a.attributeOf(q)
	if ok {
		a.m[q.ComparisonKey()] = v
	} else {
		delete(a.m, q.ComparisonKey())
	}
}

// Iter applies the provided function 'fn' to each comparison key and its
// associated attribute. Iteration continues until 'fn' returns false, or once
// all stored qubits have been visited.
func (a *QidMap[V]) Iter(fn func(key string, v V) bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for k, v := range a.m {
		if !fn(k, v) {
			break
		}
	}
}
