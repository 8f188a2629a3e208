package qcircuit

import (
	"hash"

	"github.com/google/uuid"
)

// VirtualTag marks an operation as virtual: consumers that map operations onto
// hardware treat a virtual operation as free and never schedule device time
// for it.
type VirtualTag struct {
	Annotation
}

func (VirtualTag) String() string { return "virtual" }

// A TraceTag carries an opaque identifier that lets consumers correlate an
// operation across process boundaries, e.g. between a compiler pass and the
// run report it produces.
type TraceTag struct {
	Annotation
	ID uuid.UUID
}

// NewTraceTag returns a TraceTag with a fresh random identifier.
func NewTraceTag() TraceTag {
	return TraceTag{ID: uuid.New()}
}

// TagAddress hashes the trace identifier directly; the identifier alone is
// the tag's content.
func (t TraceTag) TagAddress(h hash.Hash) error {
	_, err := h.Write(t.ID[:])
	return err
}

func (t TraceTag) String() string { return "trace:" + t.ID.String() }
