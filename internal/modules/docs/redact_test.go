package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactRemovesPersonalTokens(t *testing.T) {
	in := "Contact maria.lopez@example.com or call 555-123-4567 about case 123456789."
	out := Redact(in)

	assert.NotContains(t, out, "maria.lopez@example.com")
	assert.NotContains(t, out, "555-123-4567")
	assert.NotContains(t, out, "123456789")
	assert.Contains(t, out, "[REDACTED_EMAIL]")
	assert.Contains(t, out, "[REDACTED_PHONE]")
	assert.Contains(t, out, "[REDACTED_ID]")
}

func TestRedactLeavesNoMatchableResidue(t *testing.T) {
	inputs := []string{
		"email a@b.co and b@c.org twice",
		"phones 555 123 4567 and 555.123.4567 and 5551234567",
		"ids 000000 and 99999999999999",
		"mixed: a@b.co 555-123-4567 123456",
	}

	for _, in := range inputs {
		out := Redact(in)
		assert.Empty(t, emailPattern.FindString(out), "email residue in %q", out)
		assert.Empty(t, phonePattern.FindString(out), "phone residue in %q", out)
		assert.Empty(t, idPattern.FindString(out), "id residue in %q", out)
	}
}

func TestRedactIsIdempotent(t *testing.T) {
	in := "Send 987654321 to worker@agency.gov, backup line 555-867-5309."
	once := Redact(in)
	assert.Equal(t, once, Redact(once))
}

func TestRedactKeepsShortNumbers(t *testing.T) {
	out := Redact("You owe $45 by room 302 before the 21st.")
	assert.Equal(t, "You owe $45 by room 302 before the 21st.", out)
}
