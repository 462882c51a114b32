package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchScoreDictionary(t *testing.T) {
	dict := &Dictionary{entries: map[string]map[string]struct{}{
		"chat": {"cat": struct{}{}},
	}}
	opts := DefaultOptions()
	opts.UseDictionary = true
	opts.Dictionary = dict

	score := MatchScore([]string{"le", "chat"}, []string{"the", "cat"}, opts)
	assert.Equal(t, 1.0, score)
}

func TestIdenticalRunMatch(t *testing.T) {
	opts := DefaultOptions()
	opts.UseDictionary = false
	opts.UseIdentical = true
	opts.MinMatchLength = 3

	score := MatchScore(
		[]string{"hello", "Paris", "world"},
		[]string{"bonjour", "Paris", "monde"},
		opts,
	)
	assert.Greater(t, score, 0.0)
}

func TestIdenticalRunBelowMinLength(t *testing.T) {
	opts := DefaultOptions()
	opts.UseDictionary = false
	opts.UseIdentical = true
	opts.UseCognates = false
	opts.MinMatchLength = 10

	score := MatchScore([]string{"ab"}, []string{"ab"}, opts)
	assert.Equal(t, 0.0, score)
}

func TestCognateMatch(t *testing.T) {
	opts := DefaultOptions()
	opts.UseDictionary = false
	opts.UseIdentical = false
	opts.UseCognates = true
	opts.CognateThreshold = 0.5

	score := MatchScore([]string{"nation"}, []string{"nación"}, opts)
	assert.Greater(t, score, 0.5)
}

// Property 7: LCS(s,t) = LCS(t,s); LCS(s,s) = |s|.
func TestLCSSymmetryAndIdentity(t *testing.T) {
	a := []rune("kitten")
	b := []rune("sitting")
	assert.Equal(t, lcsLen(a, b), lcsLen(b, a))
	assert.Equal(t, len(a), lcsLen(a, a))
}

func TestPassesFilterUpperCaseOnly(t *testing.T) {
	opts := DefaultOptions()
	opts.UpperCaseOnly = true
	assert.True(t, passesFilter("NASA", opts))
	assert.False(t, passesFilter("Nasa", opts))
}
