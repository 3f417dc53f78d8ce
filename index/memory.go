package index

import (
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"

	scierrors "github.com/lintext/textclass/pkg/errors"
)

// MemoryIndex is an in-memory ForwardIndex. Documents are added once and
// then read concurrently by any number of classifiers.
type MemoryIndex struct {
	mu     sync.RWMutex
	docs   []Vector
	labels []ClassLabel
}

// NewMemoryIndex creates an empty in-memory index.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{}
}

// AddDocument stores a labeled document and returns its id. The vector is
// copied, sorted by term id, and stripped of zero-weight entries so that
// lookups always satisfy the ForwardIndex ordering guarantees.
func (m *MemoryIndex) AddDocument(label ClassLabel, vec Vector) DocID {
	clean := make(Vector, 0, len(vec))
	for _, c := range vec {
		if c.Weight != 0 {
			clean = append(clean, c)
		}
	}
	sort.Slice(clean, func(i, j int) bool { return clean[i].Term < clean[j].Term })

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, clean)
	m.labels = append(m.labels, label)
	return DocID(len(m.docs) - 1)
}

// DocVector returns the sparse feature vector of the document.
func (m *MemoryIndex) DocVector(id DocID) (Vector, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if int(id) >= len(m.docs) {
		return nil, scierrors.NewLookupError("MemoryIndex.DocVector", uint64(id), nil)
	}
	return m.docs[id], nil
}

// Label returns the ground-truth class label of the document.
func (m *MemoryIndex) Label(id DocID) (ClassLabel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if int(id) >= len(m.labels) {
		return "", scierrors.NewLookupError("MemoryIndex.Label", uint64(id), nil)
	}
	return m.labels[id], nil
}

// Size returns the number of documents in the index.
func (m *MemoryIndex) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}

// DocIDs returns the ids of all documents, in insertion order.
func (m *MemoryIndex) DocIDs() []DocID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]DocID, len(m.docs))
	for i := range ids {
		ids[i] = DocID(i)
	}
	return ids
}

// Labels returns the distinct class labels present in the index, sorted.
func (m *MemoryIndex) Labels() []ClassLabel {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[ClassLabel]bool, len(m.labels))
	var labels []ClassLabel
	for _, l := range m.labels {
		if !seen[l] {
			seen[l] = true
			labels = append(labels, l)
		}
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}

// Normalize returns a copy of vec scaled to unit L2 norm. A zero vector is
// returned unchanged. Normalization is an explicit helper: the index never
// rescales stored documents on its own.
func Normalize(vec Vector) Vector {
	weights := make([]float64, len(vec))
	for i, c := range vec {
		weights[i] = c.Weight
	}
	norm := floats.Norm(weights, 2)
	if norm == 0 {
		return vec
	}

	out := make(Vector, len(vec))
	for i, c := range vec {
		out[i] = Count{Term: c.Term, Weight: c.Weight / norm}
	}
	return out
}
