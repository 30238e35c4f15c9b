package docs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/coinquest/core/internal/models"
	"github.com/coinquest/core/internal/pkg/vector"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// vectorSearchNumCandidates is the approximate-search candidate pool width.
const vectorSearchNumCandidates = 200

// bruteForceScanLimit caps how many of a user's records the fallback search
// loads when no vector index is available.
const bruteForceScanLimit = 1000

// Summary is a summary record on its way into the store.
type Summary struct {
	UserID      string
	DocType     string
	SafeSummary string
	Embedding   []float64
	Tags        []string
}

// SearchResult is one scored match from NearestNeighbors.
type SearchResult struct {
	ID          string   `json:"_id"`
	DocType     string   `json:"docType"`
	SafeSummary string   `json:"safeSummary"`
	Tags        []string `json:"tags"`
	Score       float64  `json:"score"`
}

// SummaryStore persists safe summaries and serves per-user similarity search.
// Records are write-once; there is no update path.
type SummaryStore interface {
	Save(ctx context.Context, summary Summary) (string, error)
	NearestNeighbors(ctx context.Context, queryVector []float64, userID string, k int) ([]SearchResult, error)
}

// MongoStore keeps summaries in the docchunks collection. With an Atlas
// Vector Search index it runs $vectorSearch with a native userId filter;
// without one it falls back to a brute-force cosine scan over the user's own
// records.
type MongoStore struct {
	db           *mongo.Database
	dims         int
	vectorIndex  string
	vectorSearch bool
}

// NewMongoStore builds a store over db. dims is the deployment-wide embedding
// dimension; Save rejects any vector that does not match it.
func NewMongoStore(db *mongo.Database, dims int, vectorIndex string, vectorSearch bool) *MongoStore {
	return &MongoStore{db: db, dims: dims, vectorIndex: vectorIndex, vectorSearch: vectorSearch}
}

func (s *MongoStore) collection() *mongo.Collection {
	return s.db.Collection(models.DocSummaryModel{}.CollectionName())
}

// Save persists a summary as a single-document write and returns its id.
func (s *MongoStore) Save(ctx context.Context, summary Summary) (string, error) {
	if len(summary.Embedding) != s.dims {
		return "", fmt.Errorf("embedding dimension %d does not match configured dimension %d", len(summary.Embedding), s.dims)
	}

	record := models.DocSummaryModel{
		UserID:      summary.UserID,
		DocType:     summary.DocType,
		SafeSummary: summary.SafeSummary,
		Embedding:   summary.Embedding,
		Tags:        summary.Tags,
		CreatedAt:   time.Now().UTC(),
	}

	res, err := s.collection().InsertOne(ctx, record)
	if err != nil {
		return "", fmt.Errorf("insert summary: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// NearestNeighbors returns up to k of the user's summaries ordered by
// descending similarity to queryVector.
func (s *MongoStore) NearestNeighbors(ctx context.Context, queryVector []float64, userID string, k int) ([]SearchResult, error) {
	if k < 1 {
		k = 5
	}
	if s.vectorSearch {
		return s.vectorSearchNeighbors(ctx, queryVector, userID, k)
	}
	return s.bruteForceNeighbors(ctx, queryVector, userID, k)
}

func (s *MongoStore) vectorSearchNeighbors(ctx context.Context, queryVector []float64, userID string, k int) ([]SearchResult, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$vectorSearch", Value: bson.D{
			{Key: "index", Value: s.vectorIndex},
			{Key: "path", Value: "embedding"},
			{Key: "queryVector", Value: queryVector},
			{Key: "numCandidates", Value: vectorSearchNumCandidates},
			{Key: "limit", Value: k},
			{Key: "filter", Value: bson.D{{Key: "userId", Value: userID}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 1},
			{Key: "docType", Value: 1},
			{Key: "safeSummary", Value: 1},
			{Key: "tags", Value: 1},
			{Key: "score", Value: bson.D{{Key: "$meta", Value: "vectorSearchScore"}}},
		}}},
	}

	cursor, err := s.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID          primitive.ObjectID `bson:"_id"`
		DocType     string             `bson:"docType"`
		SafeSummary string             `bson:"safeSummary"`
		Tags        []string           `bson:"tags"`
		Score       float64            `bson:"score"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode search results: %w", err)
	}

	results := make([]SearchResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, SearchResult{
			ID:          row.ID.Hex(),
			DocType:     row.DocType,
			SafeSummary: row.SafeSummary,
			Tags:        row.Tags,
			Score:       row.Score,
		})
	}
	return results, nil
}

func (s *MongoStore) bruteForceNeighbors(ctx context.Context, queryVector []float64, userID string, k int) ([]SearchResult, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(bruteForceScanLimit)
	cursor, err := s.collection().Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("load summaries: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.DocSummaryModel
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode summaries: %w", err)
	}

	ix, err := vector.New(s.dims)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.DocSummaryModel, len(records))
	for _, record := range records {
		id := record.ID.Hex()
		if err := ix.Add(id, record.UserID, record.Embedding); err != nil {
			continue
		}
		byID[id] = record
	}

	hits, err := ix.Search(queryVector, userID, k)
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(hits))
	for _, hit := range hits {
		record := byID[hit.ID]
		results = append(results, SearchResult{
			ID:          hit.ID,
			DocType:     record.DocType,
			SafeSummary: record.SafeSummary,
			Tags:        record.Tags,
			Score:       hit.Score,
		})
	}
	return results, nil
}

// MemoryStore keeps summaries in process. Used by tests and by deployments
// without any database at all.
type MemoryStore struct {
	mu      sync.RWMutex
	ix      *vector.Index
	records map[string]Summary
}

// NewMemoryStore builds an in-process store for vectors of the given dimension.
func NewMemoryStore(dims int) (*MemoryStore, error) {
	ix, err := vector.New(dims)
	if err != nil {
		return nil, err
	}
	return &MemoryStore{ix: ix, records: make(map[string]Summary)}, nil
}

func (s *MemoryStore) Save(_ context.Context, summary Summary) (string, error) {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ix.Add(id, summary.UserID, summary.Embedding); err != nil {
		return "", err
	}
	s.records[id] = summary
	return id, nil
}

func (s *MemoryStore) NearestNeighbors(_ context.Context, queryVector []float64, userID string, k int) ([]SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hits, err := s.ix.Search(queryVector, userID, k)
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(hits))
	for _, hit := range hits {
		record := s.records[hit.ID]
		results = append(results, SearchResult{
			ID:          hit.ID,
			DocType:     record.DocType,
			SafeSummary: record.SafeSummary,
			Tags:        record.Tags,
			Score:       hit.Score,
		})
	}
	return results, nil
}
