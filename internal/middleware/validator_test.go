package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateShareID(t *testing.T) {
	assert.NoError(t, ValidateShareID("123e4567-e89b-42d3-a456-426614174000"))
	assert.NoError(t, ValidateShareID("123E4567-E89B-42D3-A456-426614174000"))
	assert.Error(t, ValidateShareID(""))
	assert.Error(t, ValidateShareID("not-a-uuid"))
	assert.Error(t, ValidateShareID("123e4567-e89b-42d3-a456-426614174000' OR 1=1"))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "Alex", SanitizeString("  Alex \x00"))
	assert.Equal(t, "a b", SanitizeString("a\x01 b\x02"))
}
