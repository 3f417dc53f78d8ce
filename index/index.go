// Package index defines the document source consumed by the classifiers.
//
// A document is identified by a DocID and resolves to a sparse feature
// vector (ordered (term, weight) pairs with no zero weights materialized)
// plus a ground-truth class label. The package provides the ForwardIndex
// contract and an in-memory implementation suitable for tests, examples,
// and small corpora; disk-backed indexes live outside this module and only
// need to satisfy the interface.
package index

// DocID identifies a document within an index.
type DocID uint64

// TermID identifies a feature. Term ids are stable, non-negative, and
// comparable across documents of the same index.
type TermID uint64

// ClassLabel is a document's class, e.g. "positive" or "sports".
type ClassLabel string

// Count is one (term, weight) entry of a sparse feature vector. Weight is
// typically a term frequency or TF-IDF value and is never zero.
type Count struct {
	Term   TermID
	Weight float64
}

// Vector is a document's sparse feature representation. Entries are ordered
// by term id and term ids are unique within a vector; both are guaranteed by
// the index that produced it.
type Vector []Count

// Dot returns the dot product of the sparse vector with a dense weight
// slice. Terms beyond the end of the weights contribute nothing.
func (v Vector) Dot(weights []float64) float64 {
	var sum float64
	for _, c := range v {
		if int(c.Term) < len(weights) {
			sum += weights[c.Term] * c.Weight
		}
	}
	return sum
}

// MaxTerm returns the largest term id in the vector and whether the vector
// has any entries.
func (v Vector) MaxTerm() (TermID, bool) {
	if len(v) == 0 {
		return 0, false
	}
	max := v[0].Term
	for _, c := range v[1:] {
		if c.Term > max {
			max = c.Term
		}
	}
	return max, true
}

// ForwardIndex resolves document ids to their sparse vectors and labels.
// Implementations must be safe for concurrent readers; the classifiers
// only ever read from the index.
type ForwardIndex interface {
	// DocVector returns the sparse feature vector of the document.
	DocVector(id DocID) (Vector, error)

	// Label returns the ground-truth class label of the document.
	Label(id DocID) (ClassLabel, error)
}
