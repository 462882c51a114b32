package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptionsMatchesDocumentedDefaults(t *testing.T) {
	opts := DefaultOptions()

	assert.True(t, opts.UseDictionary)
	assert.True(t, opts.UseIdentical)
	assert.True(t, opts.UseCognates)
	assert.Equal(t, 1, opts.MinTokenLength)
	assert.Equal(t, 5, opts.MinMatchLength)
	assert.Equal(t, 0.7, opts.CognateThreshold)
	assert.Equal(t, 0.7, opts.CognateRange)
	assert.Equal(t, 25, opts.Window)
	assert.Equal(t, 10, opts.MaxMatches)
	assert.Equal(t, 0.5, opts.LengthPenalty)
	assert.Equal(t, 0.5, opts.NotEosPenalty)
	assert.Equal(t, 30, opts.SoftMaxLineLength)
	assert.Equal(t, 37, opts.HardMaxLineLength)
	assert.False(t, opts.BestAlign)
	assert.False(t, opts.Proportion)
	assert.Nil(t, opts.Dictionary)
}
