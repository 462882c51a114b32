package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFragmentLinesSplitsOnClausePunctuation(t *testing.T) {
	fragments, isSentEnd := FragmentLines([]string{"Hello there, how are you? Fine thanks."}, 30, 37)
	require.NotEmpty(t, fragments)
	assert.True(t, isSentEnd[len(isSentEnd)-1])
}

func TestFragmentLinesOneFragmentPerLineByDefault(t *testing.T) {
	fragments, isSentEnd := FragmentLines([]string{"short line"}, 30, 37)
	require.Len(t, fragments, 1)
	assert.True(t, isSentEnd[0])
}

func TestPresplitLongFragment(t *testing.T) {
	long := "this is a very long fragment that definitely exceeds the hard limit of thirty seven characters"
	parts := presplitLong(long, 30, 37)
	for _, p := range parts {
		assert.LessOrEqual(t, len([]rune(p)), len([]rune(long)))
	}
	assert.Greater(t, len(parts), 1)
}

// S4: identical-length template and translation produce one fragment per
// frame with no merging.
func TestProjectLengthsIdentity(t *testing.T) {
	frames := []Frame{
		{Start: 0, End: 1, CharLen: 30},
		{Start: 1, End: 2, CharLen: 30},
		{Start: 2, End: 3, CharLen: 30},
	}
	fragments := []string{
		paddedFragment(30, "a"), paddedFragment(30, "b"), paddedFragment(30, "c"),
	}
	isSentEnd := []bool{true, true, true}

	opts := DefaultOptions()
	assignment := ProjectLengths(frames, fragments, isSentEnd, opts)

	require.Len(t, assignment, 3)
	for i, frags := range assignment {
		require.Len(t, frags, 1)
		assert.Equal(t, fragments[i], frags[0])
	}
}

// S5: 2 template frames against 4 equal-length clause fragments should
// merge two fragments per frame.
func TestProjectLengthsTwoToOneMerge(t *testing.T) {
	frames := []Frame{
		{Start: 0, End: 1, CharLen: 60},
		{Start: 1, End: 2, CharLen: 60},
	}
	fragments := []string{
		paddedFragment(30, "a"), paddedFragment(30, "b"),
		paddedFragment(30, "c"), paddedFragment(30, "d"),
	}
	isSentEnd := []bool{false, true, false, true}

	opts := DefaultOptions()
	assignment := ProjectLengths(frames, fragments, isSentEnd, opts)

	require.Len(t, assignment, 2)
	assert.Len(t, assignment[0], 2)
	assert.Len(t, assignment[1], 2)
}

// Property 4: the (d1, d2) move totals satisfy sum(d1) = |src|,
// sum(d2) = |trg| -- i.e. every frame and every fragment is consumed
// exactly once across the backtracked assignment.
func TestProjectLengthsConsumesEveryFragmentExactlyOnce(t *testing.T) {
	frames := []Frame{
		{Start: 0, End: 1, CharLen: 40},
		{Start: 1, End: 2, CharLen: 40},
		{Start: 2, End: 3, CharLen: 40},
	}
	fragments := []string{"one", "two", "three", "four", "five"}
	isSentEnd := []bool{false, true, false, false, true}

	opts := DefaultOptions()
	assignment := ProjectLengths(frames, fragments, isSentEnd, opts)

	total := 0
	for _, frags := range assignment {
		total += len(frags)
	}
	assert.Equal(t, len(fragments), total)
}

func paddedFragment(n int, filler string) string {
	s := ""
	for len(s) < n {
		s += filler
	}
	return s[:n]
}
