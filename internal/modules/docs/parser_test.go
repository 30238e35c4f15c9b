package docs

import (
	"errors"
	"strings"
	"testing"

	"github.com/coinquest/core/internal/modules/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validExplainJSON = `{
	"oneSentence": "This letter says your benefit amount changed.",
	"breakdown": ["The agency reviewed your case.", "The monthly amount is different now."],
	"keyDetails": {"deadline": null, "amount": "$120", "whoIsItFrom": "the benefits office", "whatToDoNext": "Show this to a trusted adult."},
	"glossary": [{"term": "Benefit", "meaning": "Money or help from a program."}],
	"safeSummary": "A benefits letter about a changed monthly amount."
}`

func TestParseExplainResultAcceptsFencedJSON(t *testing.T) {
	result, err := parseExplainResult("```json\n" + validExplainJSON + "\n```")
	require.NoError(t, err)
	assert.Equal(t, "This letter says your benefit amount changed.", result.OneSentence)
	assert.Len(t, result.Breakdown, 2)
	assert.Nil(t, result.KeyDetails.Deadline)
	require.NotNil(t, result.KeyDetails.Amount)
	assert.Equal(t, "$120", *result.KeyDetails.Amount)
}

func TestParseExplainResultRejectsNonJSON(t *testing.T) {
	_, err := parseExplainResult("Sorry, I had trouble reading that document.")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ai.ErrMalformedOutput))
}

func TestParseExplainResultRejectsMissingFields(t *testing.T) {
	cases := map[string]string{
		"no oneSentence":  `{"breakdown":["a"],"keyDetails":{"whatToDoNext":"x"},"safeSummary":"s"}`,
		"no breakdown":    `{"oneSentence":"a","keyDetails":{"whatToDoNext":"x"},"safeSummary":"s"}`,
		"no whatToDoNext": `{"oneSentence":"a","breakdown":["b"],"keyDetails":{},"safeSummary":"s"}`,
		"no safeSummary":  `{"oneSentence":"a","breakdown":["b"],"keyDetails":{"whatToDoNext":"x"}}`,
	}

	for name, raw := range cases {
		_, err := parseExplainResult(raw)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ai.ErrMalformedOutput), name)
	}
}

func TestParseExplainResultBoundsSafeSummary(t *testing.T) {
	long := strings.Repeat("x", 5000)
	raw := `{"oneSentence":"a","breakdown":["b"],"keyDetails":{"whatToDoNext":"n"},"safeSummary":"` + long + `"}`

	result, err := parseExplainResult(raw)
	require.NoError(t, err)
	assert.Len(t, result.SafeSummary, safeSummaryMaxChars)
}
