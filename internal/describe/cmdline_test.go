package describe

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateKeepsShortStrings(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 80))
	assert.Equal(t, "trimmed", truncate("  trimmed  ", 80))
}

func TestTruncateCutsOnRuneBoundary(t *testing.T) {
	// A cut through "—" must not leave a partial rune behind.
	s := "Service Host — generic container for services"
	for n := 1; n < len(s); n++ {
		got := truncate(s, n)
		assert.True(t, utf8.ValidString(got), "cut at %d produced invalid UTF-8: %q", n, got)
	}
	assert.Equal(t, "Service Host —", truncate(s, 14))
}
