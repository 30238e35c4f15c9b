package vector

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// Index is an in-process vector index using brute-force cosine similarity.
// It backs the summary store when no Atlas Vector Search index is available
// (local mongod, tests). Scans filter by owner, so results are exact.
type Index struct {
	mu      sync.RWMutex
	dim     int
	ids     []string
	owners  []string
	vectors [][]float64
}

// Hit is a scored match returned by Search.
type Hit struct {
	ID    string
	Score float64
}

// New creates an index for vectors of the given dimension.
func New(dim int) (*Index, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("invalid dimension %d", dim)
	}
	return &Index{dim: dim}, nil
}

// Dimension returns the fixed vector dimension of the index.
func (ix *Index) Dimension() int { return ix.dim }

// Add inserts a vector under the given id and owner.
func (ix *Index) Add(id, owner string, vec []float64) error {
	if len(vec) != ix.dim {
		return fmt.Errorf("vector dimension %d does not match index dimension %d", len(vec), ix.dim)
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.ids = append(ix.ids, id)
	ix.owners = append(ix.owners, owner)
	ix.vectors = append(ix.vectors, vec)
	return nil
}

// Search returns up to k hits owned by owner, ordered by descending cosine
// similarity to query.
func (ix *Index) Search(query []float64, owner string, k int) ([]Hit, error) {
	if len(query) != ix.dim {
		return nil, fmt.Errorf("query dimension %d does not match index dimension %d", len(query), ix.dim)
	}
	if k <= 0 {
		k = 5
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	hits := make([]Hit, 0, k)
	for i := range ix.vectors {
		if ix.owners[i] != owner {
			continue
		}
		hits = append(hits, Hit{ID: ix.ids[i], Score: Cosine(query, ix.vectors[i])})
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].Score > hits[b].Score })
	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

// Cosine computes cosine similarity between two equal-length vectors.
// Returns 0 when either vector has zero magnitude.
func Cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
