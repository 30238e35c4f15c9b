package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UnmarshalModelJSON decodes a model response into out, tolerating markdown
// code fences and prose around the JSON object. Anything that still fails to
// decode is reported as ErrMalformedOutput.
func UnmarshalModelJSON(raw string, out interface{}) error {
	cleaned := CleanModelJSON(raw)
	if cleaned == "" {
		return fmt.Errorf("%w: empty model response", ErrMalformedOutput)
	}
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	return nil
}

// CleanModelJSON strips markdown fences and trims to the outermost JSON
// object or array. Models wrap JSON in ```json fences or lead with prose
// often enough that decoding the raw text directly is a losing game.
func CleanModelJSON(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	if cleaned == "" {
		return ""
	}

	start, end := -1, -1
	if cleaned[0] != '{' && cleaned[0] != '[' {
		objStart := strings.Index(cleaned, "{")
		arrStart := strings.Index(cleaned, "[")
		start = objStart
		if start == -1 || (arrStart != -1 && arrStart < start) {
			start = arrStart
		}
	} else {
		start = 0
	}
	if start == -1 {
		return ""
	}

	switch cleaned[start] {
	case '{':
		end = strings.LastIndex(cleaned, "}")
	case '[':
		end = strings.LastIndex(cleaned, "]")
	}
	if end == -1 || end < start {
		return ""
	}

	return cleaned[start : end+1]
}
