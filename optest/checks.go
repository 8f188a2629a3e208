package optest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	qcircuit "github.com/go-qcircuit/go-qcircuit"
)

// Qubit lists are compared by comparison key: the keys alone define identity
// across heterogeneous Qid implementations, and they diff legibly.
func sameQubits(t *testing.T, want, got []qcircuit.Qid) {
	t.Helper()
	if diff := cmp.Diff(qidKeys(want), qidKeys(got)); diff != "" {
		t.Errorf("qubit list mismatch (-want +got):\n%s", diff)
	}
}

func qidKeys(qids []qcircuit.Qid) []string {
	keys := make([]string, len(qids))
	for i, q := range qids {
		keys[i] = q.ComparisonKey()
	}
	return keys
}

// Gates are compared structurally, by shape. The Gate interface does not
// require comparability (gates may carry slices), so identity comparison is
// not available; the shape is the part of the gate the core contracts are
// defined over.
func sameGate(t *testing.T, want, got qcircuit.Gate) {
	t.Helper()
	if want == nil || got == nil {
		require.Equal(t, want == nil, got == nil, "gate presence mismatch")
		return
	}
	if diff := cmp.Diff(want.QidShape(), got.QidShape()); diff != "" {
		t.Errorf("gate shape mismatch (-want +got):\n%s", diff)
	}
}

// Tag lists are compared by content address, the tags' own equality notion.
func sameTags(t *testing.T, want, got []qcircuit.Tag) {
	t.Helper()
	if diff := cmp.Diff(tagAddresses(want), tagAddresses(got)); diff != "" {
		t.Errorf("tag list mismatch (-want +got):\n%s", diff)
	}
}

func tagAddresses(tags []qcircuit.Tag) []string {
	addrs := make([]string, len(tags))
	for i, tag := range tags {
		addrs[i] = qcircuit.MustTagAddress(tag).String()
	}
	return addrs
}
