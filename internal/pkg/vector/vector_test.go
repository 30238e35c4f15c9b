package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float64{1, 0}, []float64{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, Cosine([]float64{1, 0}, []float64{-1, 0}), 1e-9)
	assert.Equal(t, 0.0, Cosine([]float64{0, 0}, []float64{1, 1}))
}

func TestSearchFiltersByOwner(t *testing.T) {
	ix, err := New(2)
	require.NoError(t, err)

	require.NoError(t, ix.Add("a", "alice", []float64{1, 0}))
	require.NoError(t, ix.Add("b", "bob", []float64{1, 0}))
	require.NoError(t, ix.Add("c", "alice", []float64{0, 1}))

	hits, err := ix.Search([]float64{1, 0}, "alice", 10)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "a", hits[0].ID)
	assert.Equal(t, "c", hits[1].ID)
	for _, h := range hits {
		assert.NotEqual(t, "b", h.ID)
	}
}

func TestSearchTruncatesAndOrders(t *testing.T) {
	ix, err := New(2)
	require.NoError(t, err)

	vecs := [][]float64{
		{1, 0}, {0.9, 0.1}, {0.8, 0.2}, {0.7, 0.3}, {0.6, 0.4},
		{0.5, 0.5}, {0.4, 0.6}, {0.3, 0.7}, {0.2, 0.8}, {0.1, 0.9},
	}
	for i, v := range vecs {
		require.NoError(t, ix.Add(string(rune('a'+i)), "u1", v))
	}

	hits, err := ix.Search([]float64{1, 0}, "u1", 3)
	require.NoError(t, err)
	require.Len(t, hits, 3)
	assert.Equal(t, "a", hits[0].ID)
	assert.True(t, hits[0].Score >= hits[1].Score)
	assert.True(t, hits[1].Score >= hits[2].Score)
}

func TestAddRejectsDimensionMismatch(t *testing.T) {
	ix, err := New(3)
	require.NoError(t, err)
	assert.Error(t, ix.Add("a", "u1", []float64{1, 2}))

	_, err = ix.Search([]float64{1, 2}, "u1", 5)
	assert.Error(t, err)
}
