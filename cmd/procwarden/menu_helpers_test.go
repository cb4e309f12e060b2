package main

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateToKeepsShortStrings(t *testing.T) {
	assert.Equal(t, "notepad.exe", truncateTo("notepad.exe", 28))
}

func TestTruncateToCutsOnRuneBoundary(t *testing.T) {
	s := "Windows Explorer — desktop, taskbar, and file manager"
	for n := 2; n < len(s); n++ {
		got := truncateTo(s, n)
		assert.True(t, utf8.ValidString(got), "cut at %d produced invalid UTF-8: %q", n, got)
	}
	// Rune count, not byte count, decides the cut.
	assert.Equal(t, 20, len([]rune(truncateTo(s, 20))))
}
