package core

import "sort"

// Anchor is a sentence pair whose token lists share a lexical match strong
// enough to serve as a timing reference, with a score inversely
// proportional to its distance from the nearest document edge.
type Anchor struct {
	I, J  int
	Score float64
}

// DiscoverAnchors finds candidate anchors in the top-Window sentences of
// both documents (the prefix pool) and the bottom-Window sentences (the
// suffix pool), each capped at MaxMatches and sorted best-first with ties
// broken by ascending sentence index on both sides.
func DiscoverAnchors(src, trg []*Sentence, opts Options) (prefix, suffix []Anchor) {
	window := opts.Window
	if window <= 0 {
		window = 25
	}

	prefixSrc := windowLen(len(src), window)
	prefixTrg := windowLen(len(trg), window)
	prefix = scanAnchors(src[:prefixSrc], trg[:prefixTrg], 0, 0, opts, true)

	suffixSrc := windowLen(len(src), window)
	suffixTrg := windowLen(len(trg), window)
	srcOff := len(src) - suffixSrc
	trgOff := len(trg) - suffixTrg
	suffix = scanAnchors(src[srcOff:], trg[trgOff:], srcOff, trgOff, opts, false)

	prefix = capAnchors(prefix, opts.MaxMatches)
	suffix = capAnchors(suffix, opts.MaxMatches)
	return prefix, suffix
}

func windowLen(total, window int) int {
	if window > total {
		return total
	}
	return window
}

func scanAnchors(src, trg []*Sentence, srcOff, trgOff int, opts Options, fromStart bool) []Anchor {
	var anchors []Anchor
	totalSrc := srcOff + len(src)
	totalTrg := trgOff + len(trg)
	for i, s := range src {
		for j, t := range trg {
			score := MatchScore(s.Tokens, t.Tokens, opts)
			if score <= 0 {
				continue
			}
			gi, gj := srcOff+i, trgOff+j
			var dist float64
			if fromStart {
				dist = float64(gi+gj) / 2
			} else {
				dist = float64((totalSrc-1-gi)+(totalTrg-1-gj)) / 2
			}
			anchors = append(anchors, Anchor{I: gi, J: gj, Score: score / (1 + dist)})
		}
	}
	sortAnchors(anchors)
	return anchors
}

func sortAnchors(anchors []Anchor) {
	sort.SliceStable(anchors, func(a, b int) bool {
		if anchors[a].Score != anchors[b].Score {
			return anchors[a].Score > anchors[b].Score
		}
		if anchors[a].I != anchors[b].I {
			return anchors[a].I < anchors[b].I
		}
		return anchors[a].J < anchors[b].J
	})
}

func capAnchors(anchors []Anchor, max int) []Anchor {
	if max <= 0 || len(anchors) <= max {
		return anchors
	}
	return anchors[:max]
}
