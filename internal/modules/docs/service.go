package docs

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ingestSummaryMaxChars bounds the truncation-only summary produced by ingest.
const ingestSummaryMaxChars = 800

// Generator produces raw model text for a prompt.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, prompt string) (string, error)
}

// Embedder turns text into a similarity vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Service orchestrates the document pipeline: redact, generate, parse, embed,
// persist. Each request is a single attempt; any stage failure ends the
// request and nothing is persisted.
type Service struct {
	store      SummaryStore
	explainGen Generator
	chatGen    Generator
	embedder   Embedder
	logger     *zap.Logger
}

// NewService wires the pipeline. explainGen and chatGen may be the same
// generator; they are split so config can pin features to different models.
func NewService(store SummaryStore, explainGen, chatGen Generator, embedder Embedder, logger *zap.Logger) *Service {
	return &Service{
		store:      store,
		explainGen: explainGen,
		chatGen:    chatGen,
		embedder:   embedder,
		logger:     logger,
	}
}

// Ingest stores a truncation-redaction summary of the document. No generation
// call; the raw text is discarded as soon as the summary is derived.
func (s *Service) Ingest(ctx context.Context, userID string, req IngestRequest) (string, error) {
	safeSummary := truncateHead(Redact(req.DocText), ingestSummaryMaxChars)

	embedding, err := s.embedder.Embed(ctx, safeSummary)
	if err != nil {
		return "", err
	}

	id, err := s.store.Save(ctx, Summary{
		UserID:      userID,
		DocType:     normalizeDocType(req.DocType),
		SafeSummary: safeSummary,
		Embedding:   embedding,
		Tags:        []string{"ingested"},
	})
	if err != nil {
		return "", fmt.Errorf("persist summary: %w", err)
	}

	s.logger.Info("document ingested", zap.String("docId", id), zap.Int("dims", len(embedding)))
	return id, nil
}

// Explain runs the full pipeline and returns the structured explanation plus
// the id of the persisted summary record.
func (s *Service) Explain(ctx context.Context, userID string, req ExplainRequest) (*ExplainResult, string, error) {
	style, err := StyleFor(req.AgeRange)
	if err != nil {
		return nil, "", err
	}

	docType := normalizeDocType(req.DocType)
	prompt := buildExplainPrompt(style, docType, Redact(req.DocText))

	raw, err := s.explainGen.Generate(ctx, explainSystemPrompt, prompt)
	if err != nil {
		return nil, "", err
	}

	result, err := parseExplainResult(raw)
	if err != nil {
		return nil, "", err
	}

	// The model is instructed to keep the summary clean, but it is not
	// trusted to: the same redaction pass runs before anything is stored.
	result.SafeSummary = Redact(result.SafeSummary)

	embedding, err := s.embedder.Embed(ctx, result.SafeSummary)
	if err != nil {
		return nil, "", err
	}

	docID, err := s.store.Save(ctx, Summary{
		UserID:      userID,
		DocType:     docType,
		SafeSummary: result.SafeSummary,
		Embedding:   embedding,
		Tags:        []string{"explained", style.Level},
	})
	if err != nil {
		return nil, "", fmt.Errorf("persist summary: %w", err)
	}

	s.logger.Info("document explained",
		zap.String("docId", docID),
		zap.String("ageRange", req.AgeRange),
		zap.String("docType", docType))
	return result, docID, nil
}

// Chat answers a single follow-up question about a stored summary. Nothing is
// persisted.
func (s *Service) Chat(ctx context.Context, req ChatRequest) (string, error) {
	style, err := StyleFor(req.AgeRange)
	if err != nil {
		return "", err
	}

	prompt := buildChatPrompt(style, Redact(req.SafeSummary), Redact(req.Message))
	return s.chatGen.Generate(ctx, chatSystemPrompt, prompt)
}

// Search embeds the query and returns the user's nearest stored summaries.
func (s *Service) Search(ctx context.Context, userID string, req SearchRequest) ([]SearchResult, error) {
	limit := req.Limit
	if limit < 1 {
		limit = 5
	}

	embedding, err := s.embedder.Embed(ctx, Redact(req.Query))
	if err != nil {
		return nil, err
	}

	return s.store.NearestNeighbors(ctx, embedding, userID, limit)
}

func normalizeDocType(docType string) string {
	if docType == "" {
		return "unknown"
	}
	return docType
}
