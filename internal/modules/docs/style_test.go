package docs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleForCoversAllBands(t *testing.T) {
	levels := map[string]string{
		"8-11":  "kid",
		"12-15": "teen",
		"16-18": "olderTeen",
	}

	for ageRange, level := range levels {
		style, err := StyleFor(ageRange)
		require.NoError(t, err, ageRange)
		assert.Equal(t, level, style.Level)
		assert.NotEmpty(t, style.Rules)
	}
}

func TestStyleForRejectsUnknownBand(t *testing.T) {
	for _, ageRange := range []string{"", "7-10", "adult", "8 - 11"} {
		_, err := StyleFor(ageRange)
		require.Error(t, err, ageRange)
		assert.True(t, errors.Is(err, ErrInvalidAgeRange))
	}
}
