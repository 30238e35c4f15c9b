package docs

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/coinquest/core/internal/modules/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGenerator struct {
	reply string
	err   error
	calls int
}

func (g *stubGenerator) Generate(context.Context, string, string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

// letterFreqEmbedder maps text to a letter-frequency vector. Deterministic,
// so identical text always embeds to the identical vector.
type letterFreqEmbedder struct{ calls int }

func (e *letterFreqEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	e.calls++
	vec := make([]float64, 26)
	for _, r := range text {
		if r >= 'a' && r <= 'z' {
			vec[r-'a']++
		}
		if r >= 'A' && r <= 'Z' {
			vec[r-'A']++
		}
	}
	return vec, nil
}

type recordingStore struct {
	saved []Summary
}

func (s *recordingStore) Save(_ context.Context, summary Summary) (string, error) {
	s.saved = append(s.saved, summary)
	return fmt.Sprintf("doc-%d", len(s.saved)), nil
}

func (s *recordingStore) NearestNeighbors(context.Context, []float64, string, int) ([]SearchResult, error) {
	return nil, nil
}

func newTestService(store SummaryStore, gen Generator, embedder Embedder) *Service {
	return NewService(store, gen, gen, embedder, zap.NewNop())
}

func TestExplainMalformedOutputPersistsNothing(t *testing.T) {
	store := &recordingStore{}
	embedder := &letterFreqEmbedder{}
	gen := &stubGenerator{reply: "I could not read that document, sorry!"}
	svc := newTestService(store, gen, embedder)

	_, _, err := svc.Explain(context.Background(), "user-1", ExplainRequest{
		AgeRange: "12-15",
		DocText:  "A letter about school lunch support arriving next month for your family.",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ai.ErrMalformedOutput))
	assert.Empty(t, store.saved, "no record may be persisted on parse failure")
	assert.Zero(t, embedder.calls, "no embedding call on parse failure")
}

func TestExplainGenerationFailurePropagates(t *testing.T) {
	store := &recordingStore{}
	gen := &stubGenerator{err: fmt.Errorf("%w: connection refused", ai.ErrGenerationUnavailable)}
	svc := newTestService(store, gen, &letterFreqEmbedder{})

	_, _, err := svc.Explain(context.Background(), "user-1", ExplainRequest{
		AgeRange: "8-11",
		DocText:  "A letter about school lunch support arriving next month for your family.",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ai.ErrGenerationUnavailable))
	assert.Empty(t, store.saved)
}

func TestExplainRedactsModelSummaryBeforePersisting(t *testing.T) {
	store := &recordingStore{}
	gen := &stubGenerator{reply: `{
		"oneSentence": "A benefits letter.",
		"breakdown": ["It changes an amount."],
		"keyDetails": {"deadline": null, "amount": null, "whoIsItFrom": null, "whatToDoNext": "Ask a trusted adult."},
		"glossary": [],
		"safeSummary": "Letter for case 123456789, reply to worker@agency.gov."
	}`}
	svc := newTestService(store, gen, &letterFreqEmbedder{})

	result, docID, err := svc.Explain(context.Background(), "user-1", ExplainRequest{
		AgeRange: "16-18",
		DocText:  "A letter about benefit amounts changing at the start of next month.",
	})

	require.NoError(t, err)
	assert.Equal(t, "doc-1", docID)
	require.Len(t, store.saved, 1)
	assert.NotContains(t, store.saved[0].SafeSummary, "123456789")
	assert.NotContains(t, store.saved[0].SafeSummary, "worker@agency.gov")
	assert.Equal(t, result.SafeSummary, store.saved[0].SafeSummary)
	assert.Contains(t, store.saved[0].Tags, "explained")
	assert.Equal(t, "unknown", store.saved[0].DocType)
}

func TestIngestRoundTripSelfSimilarity(t *testing.T) {
	store, err := NewMemoryStore(26)
	require.NoError(t, err)
	svc := newTestService(store, &stubGenerator{}, &letterFreqEmbedder{})

	docText := "The school notice explains the new lunch program starting in September."
	id, err := svc.Ingest(context.Background(), "user-7", IngestRequest{DocText: docText})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	results, err := svc.Search(context.Background(), "user-7", SearchRequest{Query: docText, Limit: 5})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, id, results[0].ID)
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)
}

func TestSearchLimitAndOrdering(t *testing.T) {
	store, err := NewMemoryStore(3)
	require.NoError(t, err)

	// Vectors at decreasing similarity to the query [1,0,0].
	for i := 0; i < 10; i++ {
		_, err := store.Save(context.Background(), Summary{
			UserID:      "user-1",
			SafeSummary: fmt.Sprintf("summary %d", i),
			Embedding:   []float64{10 - float64(i), float64(i), 0},
		})
		require.NoError(t, err)
	}

	results, err := store.NearestNeighbors(context.Background(), []float64{1, 0, 0}, "user-1", 3)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "summary 0", results[0].SafeSummary)
	assert.Equal(t, "summary 1", results[1].SafeSummary)
	assert.Equal(t, "summary 2", results[2].SafeSummary)
	assert.GreaterOrEqual(t, results[0].Score, results[1].Score)
	assert.GreaterOrEqual(t, results[1].Score, results[2].Score)
}

func TestSearchNeverCrossesUsers(t *testing.T) {
	store, err := NewMemoryStore(3)
	require.NoError(t, err)

	_, err = store.Save(context.Background(), Summary{UserID: "alice", SafeSummary: "hers", Embedding: []float64{1, 0, 0}})
	require.NoError(t, err)
	_, err = store.Save(context.Background(), Summary{UserID: "bob", SafeSummary: "his", Embedding: []float64{1, 0, 0}})
	require.NoError(t, err)

	results, err := store.NearestNeighbors(context.Background(), []float64{1, 0, 0}, "alice", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "hers", results[0].SafeSummary)
}

func TestChatAnswersWithoutPersisting(t *testing.T) {
	store := &recordingStore{}
	gen := &stubGenerator{reply: "A deadline is the last day you can do something."}
	svc := newTestService(store, gen, &letterFreqEmbedder{})

	reply, err := svc.Chat(context.Background(), ChatRequest{
		AgeRange:    "8-11",
		SafeSummary: "A letter about a benefits deadline.",
		Message:     "What is a deadline?",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, reply)
	assert.Empty(t, store.saved)
	assert.Equal(t, 1, gen.calls)
}
