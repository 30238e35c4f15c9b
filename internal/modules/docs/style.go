package docs

import (
	"errors"
	"fmt"
)

// ErrInvalidAgeRange rejects any audience band outside the three known ones.
var ErrInvalidAgeRange = errors.New("invalid age range")

// Style carries the generation constraints for one audience band.
type Style struct {
	Level string
	Rules []string
}

// StyleFor maps an age range to its explanation style. Exactly three bands
// exist; anything else is an error, never a silent default.
func StyleFor(ageRange string) (Style, error) {
	switch ageRange {
	case "8-11":
		return Style{
			Level: "kid",
			Rules: []string{
				"Use very simple words (Grade 3-5).",
				"Short sentences.",
				"Friendly, calm tone.",
				"Explain confusing words with tiny examples.",
				"Give 1-2 actions max.",
			},
		}, nil
	case "12-15":
		return Style{
			Level: "teen",
			Rules: []string{
				"Simple but not baby-ish.",
				"Explain key terms briefly.",
				"Give clear steps and why they matter.",
				"No legal advice; suggest trusted adult/case worker if serious.",
			},
		}, nil
	case "16-18":
		return Style{
			Level: "olderTeen",
			Rules: []string{
				"More detailed and mature tone.",
				"Include specifics like deadlines/amounts if present.",
				"Still no legal advice; suggest trusted adult/case worker when needed.",
			},
		}, nil
	default:
		return Style{}, fmt.Errorf("%w: %q", ErrInvalidAgeRange, ageRange)
	}
}
