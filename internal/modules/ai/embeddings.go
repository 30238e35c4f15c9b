package ai

import (
	"context"
	"fmt"
	"strings"

	appcfg "github.com/coinquest/core/internal/config"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
)

// Embedder turns text into dense vectors via an OpenAI-compatible embeddings
// endpoint. One outbound call per Embed, no retries.
type Embedder struct {
	model  string
	dims   int
	apiKey string
	client openaiclient.Client
}

// NewEmbedder builds an embedder from config. A missing api key is not an
// error here; Embed fails with ErrEmbeddingUnavailable instead, so a
// misconfigured deployment still boots and serves the non-AI endpoints.
func NewEmbedder(cfg appcfg.EmbeddingConfig) *Embedder {
	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		openaioption.WithMaxRetries(0),
	}
	if normalized := normalizeOpenAIBaseURL(cfg.Endpoint); normalized != "" {
		opts = append(opts, openaioption.WithBaseURL(normalized))
	}

	return &Embedder{
		model:  strings.TrimSpace(cfg.Model),
		dims:   cfg.Dimensions,
		apiKey: strings.TrimSpace(cfg.APIKey),
		client: openaiclient.NewClient(opts...),
	}
}

// Dimensions returns the configured vector dimension.
func (e *Embedder) Dimensions() int {
	return e.dims
}

// Embed returns the embedding vector for the given text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float64, error) {
	if e.apiKey == "" {
		return nil, fmt.Errorf("%w: embedding api key is empty", ErrEmbeddingUnavailable)
	}

	params := openaiclient.EmbeddingNewParams{
		Input: openaiclient.EmbeddingNewParamsInputUnion{
			OfString: openaiclient.String(text),
		},
		Model: openaiclient.EmbeddingModel(e.model),
	}
	if e.dims > 0 {
		params.Dimensions = openaiclient.Int(int64(e.dims))
	}

	resp, err := e.client.Embeddings.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingUnavailable, err)
	}

	if resp == nil || len(resp.Data) == 0 {
		return nil, fmt.Errorf("%w: response carried no data", ErrEmbeddingMalformed)
	}
	vec := resp.Data[0].Embedding
	if len(vec) == 0 {
		return nil, fmt.Errorf("%w: response carried an empty vector", ErrEmbeddingMalformed)
	}
	return vec, nil
}
