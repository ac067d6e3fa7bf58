package actions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "Alice", sanitizeName("  Alice  "))
	assert.Equal(t, "Player", sanitizeName(""))
	assert.Equal(t, "Player", sanitizeName("   "))

	long := strings.Repeat("x", 40)
	assert.Len(t, sanitizeName(long), maxNameLength)
}

func TestTruncateKeepsRunesIntact(t *testing.T) {
	assert.Equal(t, "привет", truncate("привет", 10))
	assert.Equal(t, "при", truncate("привет", 3))
	assert.Equal(t, "abc", truncate("abc", 3))
}
