package storeid

import (
	"regexp"
	"strings"
)

// Shareable store links carry a human-readable prefix in front of the store
// UUID ("sharma-store-<uuid>"); internal preview links use the bare UUID.
// Resolve extracts the canonical identifier from either form.

var uuidSuffixRe = regexp.MustCompile(`(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// Resolve returns the best-guess store identifier for a raw route parameter.
// A trailing UUID always wins; a 36-char hyphenated input passes through as
// an assumed bare UUID; anything else is returned unchanged and left for the
// store lookup to reject. Resolve is pure and idempotent.
func Resolve(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if match := uuidSuffixRe.FindString(trimmed); match != "" {
		return match
	}

	if len(trimmed) == 36 && strings.Contains(trimmed, "-") {
		return trimmed
	}

	return trimmed
}
