package ai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalModelJSONStripsFences(t *testing.T) {
	var out struct {
		SafeSummary string `json:"safeSummary"`
	}

	raw := "```json\n{\"safeSummary\": \"a permission slip\"}\n```"
	require.NoError(t, UnmarshalModelJSON(raw, &out))
	assert.Equal(t, "a permission slip", out.SafeSummary)
}

func TestUnmarshalModelJSONExtractsObjectFromProse(t *testing.T) {
	var out struct {
		DocType string `json:"docType"`
	}

	raw := "Sure! Here is the JSON you asked for: {\"docType\": \"school_notice\"} Hope that helps."
	require.NoError(t, UnmarshalModelJSON(raw, &out))
	assert.Equal(t, "school_notice", out.DocType)
}

func TestUnmarshalModelJSONRejectsGarbage(t *testing.T) {
	var out map[string]interface{}

	err := UnmarshalModelJSON("I cannot produce JSON today.", &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedOutput))
}

func TestUnmarshalModelJSONRejectsEmpty(t *testing.T) {
	var out map[string]interface{}

	err := UnmarshalModelJSON("   ", &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedOutput))
}

func TestCleanModelJSONHandlesArrays(t *testing.T) {
	raw := "```\n[{\"q\": 1}, {\"q\": 2}]\n```"
	assert.Equal(t, "[{\"q\": 1}, {\"q\": 2}]", CleanModelJSON(raw))
}
