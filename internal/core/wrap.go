package core

import "regexp"

var (
	sentEndCut = regexp.MustCompile(`[.!?")\]][\s]+`)
	clauseCutWrap = regexp.MustCompile(`[,;:'\-][\s]+`)
	anyWsCut = regexp.MustCompile(`[\s]+`)
)

// WrapLine inserts a single newline into text if it exceeds hard, trying
// cut points in priority order and accepting the first that fires:
// sentence punctuation, then clause punctuation (both constrained so the
// right side falls within [min, max] characters), then the whitespace that
// leaves a right side closest to half the text.
func WrapLine(text string, soft, hard int) string {
	runes := []rune(text)
	if len(runes) <= hard {
		return text
	}

	half := len(runes) / 2
	min, max := half, soft
	if min > max {
		min, max = max, min
	}

	if cut, ok := findCut(text, sentEndCut, min, max); ok {
		return splitAt(text, cut)
	}
	if cut, ok := findCut(text, clauseCutWrap, min, max); ok {
		return splitAt(text, cut)
	}
	if cut, ok := findWsCut(text, half); ok {
		return splitAt(text, cut)
	}
	return text
}

// findCut looks for the rightmost match of re whose right side (from the
// end of the match) has length within [min, max] runes.
func findCut(text string, re *regexp.Regexp, min, max int) (int, bool) {
	locs := re.FindAllStringIndex(text, -1)
	total := len([]rune(text))
	best := -1
	for _, loc := range locs {
		rightLen := total - len([]rune(text[:loc[1]]))
		if rightLen >= min && rightLen <= max {
			best = loc[1]
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// findWsCut finds the whitespace whose cut leaves a right side closest to
// half (runes) of the text, on either side of that point; on a tie the
// earlier cut wins.
func findWsCut(text string, half int) (int, bool) {
	locs := anyWsCut.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return 0, false
	}
	total := len([]rune(text))
	target := total - half
	best := locs[0][1]
	bestDist := abs(len([]rune(text[:locs[0][1]])) - target)
	for _, loc := range locs[1:] {
		dist := abs(len([]rune(text[:loc[1]])) - target)
		if dist < bestDist {
			bestDist = dist
			best = loc[1]
		}
	}
	return best, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func splitAt(text string, byteCut int) string {
	left := text[:byteCut]
	right := text[byteCut:]
	for len(left) > 0 && (left[len(left)-1] == ' ' || left[len(left)-1] == '\t') {
		left = left[:len(left)-1]
	}
	return left + "\n" + right
}
