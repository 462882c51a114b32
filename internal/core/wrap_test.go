package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapLineNoOpUnderHardLimit(t *testing.T) {
	text := "short text"
	assert.Equal(t, text, WrapLine(text, 30, 37))
}

// S6: a 72-char line gets exactly one embedded newline.
func TestWrapLineInsertsSingleNewline(t *testing.T) {
	text := "This is a reasonably long subtitle line that needs wrapping, definitely."
	wrapped := WrapLine(text, 30, 37)
	assert.Equal(t, 1, strings.Count(wrapped, "\n"))
}

func TestWrapLineFallsBackToWhitespace(t *testing.T) {
	text := strings.Repeat("a", 20) + " " + strings.Repeat("b", 20)
	wrapped := WrapLine(text, 30, 37)
	assert.Equal(t, 1, strings.Count(wrapped, "\n"))
}
