package ai

import "errors"

// Sentinel errors for the two upstream services. Callers branch with
// errors.Is; no component retries automatically.
var (
	// ErrGenerationUnavailable covers transport errors, non-success status
	// codes and missing credentials on the text-generation service.
	ErrGenerationUnavailable = errors.New("generation service unavailable")

	// ErrMalformedOutput means the model response did not match the expected
	// JSON shape after fence stripping.
	ErrMalformedOutput = errors.New("malformed model output")

	// ErrEmbeddingUnavailable covers transport/credential/status failures on
	// the embedding service.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrEmbeddingMalformed means the embedding response carried no numeric
	// vector.
	ErrEmbeddingMalformed = errors.New("embedding response malformed")
)
