package destination

import "strings"

// Recognized payment URI schemes. The "//" forms come first so that
// stripping the bare scheme never leaves a dangling "//" behind.
var schemePrefixes = []string{"lightning://", "lightning:", "bitcoin://", "bitcoin:"}

// Normalize prepares a user-supplied payment string for classification:
// non-breaking spaces (pasted along with invoices by some apps) are
// removed, surrounding whitespace is trimmed and a single recognized
// URI scheme prefix is stripped, matched case-insensitively.
func Normalize(raw string) string {
	text := strings.ReplaceAll(raw, "\u00a0", "")
	text = strings.TrimSpace(text)
	for _, prefix := range schemePrefixes {
		if len(text) >= len(prefix) && strings.EqualFold(text[:len(prefix)], prefix) {
			return text[len(prefix):]
		}
	}
	return text
}
