package docs

import (
	"fmt"
	"strings"

	"github.com/coinquest/core/internal/modules/ai"
)

// safeSummaryMaxChars bounds the persisted summary regardless of what the
// model returns.
const safeSummaryMaxChars = 1200

// parseExplainResult decodes and shape-checks a model explanation. A result
// missing its required fields is malformed, never patched up with defaults.
func parseExplainResult(raw string) (*ExplainResult, error) {
	var result ExplainResult
	if err := ai.UnmarshalModelJSON(raw, &result); err != nil {
		return nil, err
	}

	if strings.TrimSpace(result.OneSentence) == "" {
		return nil, fmt.Errorf("%w: missing oneSentence", ai.ErrMalformedOutput)
	}
	if len(result.Breakdown) == 0 {
		return nil, fmt.Errorf("%w: missing breakdown", ai.ErrMalformedOutput)
	}
	if strings.TrimSpace(result.KeyDetails.WhatToDoNext) == "" {
		return nil, fmt.Errorf("%w: missing keyDetails.whatToDoNext", ai.ErrMalformedOutput)
	}
	if strings.TrimSpace(result.SafeSummary) == "" {
		return nil, fmt.Errorf("%w: missing safeSummary", ai.ErrMalformedOutput)
	}

	if result.Glossary == nil {
		result.Glossary = []GlossaryEntry{}
	}
	result.SafeSummary = truncateHead(result.SafeSummary, safeSummaryMaxChars)
	return &result, nil
}
