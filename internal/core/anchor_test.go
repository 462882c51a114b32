package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokSentence(id string, tokens []string) *Sentence {
	return &Sentence{ID: id, Tokens: tokens}
}

func TestDiscoverAnchorsFindsIdenticalTokenPairs(t *testing.T) {
	src := []*Sentence{
		tokSentence("s1", []string{"Paris", "hello"}),
		tokSentence("s2", []string{"other"}),
	}
	trg := []*Sentence{
		tokSentence("t1", []string{"Paris", "bonjour"}),
		tokSentence("t2", []string{"autre"}),
	}
	opts := DefaultOptions()
	opts.UseDictionary = false
	opts.UseIdentical = true
	opts.MinMatchLength = 1

	prefix, suffix := DiscoverAnchors(src, trg, opts)
	require.NotEmpty(t, prefix)
	assert.Equal(t, 0, prefix[0].I)
	assert.Equal(t, 0, prefix[0].J)
	assert.NotEmpty(t, suffix)
}

func TestCapAnchorsRespectsMaxMatches(t *testing.T) {
	anchors := []Anchor{{I: 0, J: 0, Score: 3}, {I: 1, J: 0, Score: 2}, {I: 2, J: 0, Score: 1}}
	capped := capAnchors(anchors, 2)
	assert.Len(t, capped, 2)
}

func TestCapAnchorsUnboundedWhenZero(t *testing.T) {
	anchors := []Anchor{{I: 0, J: 0, Score: 1}}
	assert.Len(t, capAnchors(anchors, 0), 1)
}
