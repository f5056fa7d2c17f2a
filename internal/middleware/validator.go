package middleware

import (
	"fmt"
	"regexp"
	"strings"
)

// Input sanitization for path/query values that reach the record store.

var shareIDPattern = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}$`)

// ValidateShareID checks the share identifier looks like a generated UUID
// before it is used as a lookup key.
func ValidateShareID(id string) error {
	if id == "" {
		return fmt.Errorf("share id cannot be empty")
	}
	if !shareIDPattern.MatchString(strings.ToLower(id)) {
		return fmt.Errorf("invalid share id format")
	}
	return nil
}

// SanitizeString removes null bytes and control characters from free text
// before it is embedded in prompts or persisted.
func SanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")

	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}
