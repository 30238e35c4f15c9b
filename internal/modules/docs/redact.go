package docs

import "regexp"

// Replacement order matters: emails first so their digit runs are gone before
// the phone and ID patterns scan the text.
var (
	emailPattern = regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w+\b`)
	phonePattern = regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`)
	idPattern    = regexp.MustCompile(`\b\d{6,}\b`)
)

// Redact replaces email-like tokens, phone-number-like tokens and runs of 6+
// digits with fixed placeholders. Pure and idempotent; every piece of user
// text passes through here before it reaches a generation or embedding call.
func Redact(text string) string {
	redacted := emailPattern.ReplaceAllString(text, "[REDACTED_EMAIL]")
	redacted = phonePattern.ReplaceAllString(redacted, "[REDACTED_PHONE]")
	redacted = idPattern.ReplaceAllString(redacted, "[REDACTED_ID]")
	return redacted
}
