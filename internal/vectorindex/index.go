package vectorindex

import (
	"errors"
	"math"
	"sort"
	"sync"
)

var (
	ErrDimensionMismatch = errors.New("vectorindex: dimension mismatch")
	ErrEmptyID           = errors.New("vectorindex: id must not be empty")
)

// Match is one nearest-neighbor search hit.
type Match struct {
	ID    string
	Score float64
}

// Index is an in-memory cosine-similarity index over fixed-dimension vectors.
// Vectors are normalized on insert so queries reduce to dot products.
type Index struct {
	mu     sync.RWMutex
	dim    int
	byID   map[string][]float32
	maxCon int
	efCon  int
}

// New creates an index for vectors of the given dimension. The connection
// parameters are accepted for tuning parity with graph-based indexes but a
// workforce-sized corpus is searched exhaustively.
func New(dim, maxConnections, efConstruction int) *Index {
	if dim <= 0 {
		dim = 1536
	}
	if maxConnections <= 0 {
		maxConnections = 16
	}
	if efConstruction <= 0 {
		efConstruction = 200
	}
	return &Index{
		dim:    dim,
		byID:   make(map[string][]float32),
		maxCon: maxConnections,
		efCon:  efConstruction,
	}
}

func (ix *Index) Dimensions() int { return ix.dim }

func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.byID)
}

// Upsert inserts or replaces the vector stored under id.
func (ix *Index) Upsert(id string, vector []float32) error {
	if id == "" {
		return ErrEmptyID
	}
	if len(vector) != ix.dim {
		return ErrDimensionMismatch
	}

	normalized := normalize(vector)

	ix.mu.Lock()
	ix.byID[id] = normalized
	ix.mu.Unlock()
	return nil
}

// Delete removes the vector stored under id, if present.
func (ix *Index) Delete(id string) {
	ix.mu.Lock()
	delete(ix.byID, id)
	ix.mu.Unlock()
}

// Search returns up to k entries most similar to the query vector, ordered by
// descending cosine similarity with ties broken by id for stable output.
func (ix *Index) Search(query []float32, k int) ([]Match, error) {
	if len(query) != ix.dim {
		return nil, ErrDimensionMismatch
	}
	if k <= 0 {
		return nil, nil
	}

	q := normalize(query)

	ix.mu.RLock()
	matches := make([]Match, 0, len(ix.byID))
	for id, vec := range ix.byID {
		matches = append(matches, Match{ID: id, Score: dot(q, vec)})
	}
	ix.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].ID < matches[j].ID
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches, nil
}

func normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	norm := math.Sqrt(sum)
	out := make([]float32, len(v))
	if norm == 0 {
		copy(out, v)
		return out
	}
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
