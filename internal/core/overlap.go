package core

import "math"

// Link is an alignment record mapping zero-or-more source sentences to
// zero-or-more target sentences. Empty SrcIDs or TrgIDs represent 1:0
// / 0:1 links.
type Link struct {
	SrcIDs        []string
	TrgIDs        []string
	CommonTime    *float64
	NonCommonTime *float64
	OverlapRatio  *float64
}

// AlignResult is C6's full output: the link list plus the bucket counts
// and totals C7 scores candidates with.
type AlignResult struct {
	Links    []Link
	Buckets  map[[2]int]int // keyed by (1+ds, 1+dt)
	Empty    int
	NonEmpty int
}

// moveSet is the allowed (ds, dt) block-merge set: (0,1)/(1,0)/(0,2)/(2,0)
// cover empty-skip decisions, and (0,0) [1:1] is added so a normal,
// non-merged sentence-for-sentence alignment is reachable at all. (1,1)
// [2:2] is deliberately excluded: the move set is bounded at a 1:3/3:1
// ceiling, and a 2:2 merge is always expressible as two separate 1:1 links.
var moveSet = [][2]int{{0, 0}, {0, 1}, {1, 0}, {0, 2}, {2, 0}}

const timeGuard = 0.010 // 10ms guard nudge

// overlapTuple is the six-way decomposition of two frames' relative
// position: the portion each one overlaps the other, plus how much of each
// falls strictly before or after that overlap.
type overlapTuple struct {
	beforeSrc, beforeTrg, afterSrc, afterTrg float64
	common, notCommon                        float64
}

func computeOverlap(s1, s2, t1, t2 float64) overlapTuple {
	common := math.Max(0, math.Min(s2, t2)-math.Max(s1, t1))
	beforeSrc := math.Max(0, math.Min(s2, t1)-s1)
	beforeTrg := math.Max(0, math.Min(t2, s1)-t1)
	afterSrc := math.Max(0, s2-math.Max(s1, t2))
	afterTrg := math.Max(0, t2-math.Max(t1, s2))
	return overlapTuple{
		beforeSrc: beforeSrc, beforeTrg: beforeTrg,
		afterSrc: afterSrc, afterTrg: afterTrg,
		common: common, notCommon: beforeSrc + beforeTrg + afterSrc + afterTrg,
	}
}

// Align is the C6 core dynamic program: a left-to-right walk over (s, t)
// maximizing temporal overlap via many-to-many block merges.
func Align(src, trg []*Sentence) AlignResult {
	res := AlignResult{Buckets: make(map[[2]int]int)}
	s, t := 0, 0

	for s < len(src) && t < len(trg) {
		if src[s].Start >= src[s].End {
			log.Warn().Str("id", src[s].ID).Msg("zero-length or inverted frame, nudging start back")
			src[s].Start = src[s].End - timeGuard
		}

		ov := computeOverlap(src[s].Start, src[s].End, trg[t].Start, trg[t].End)

		switch {
		case ov.common <= 0 && src[s].End <= trg[t].Start:
			res.Links = append(res.Links, Link{SrcIDs: []string{src[s].ID}})
			res.Empty++
			s++
			continue
		case ov.common <= 0 && trg[t].End <= src[s].Start:
			res.Links = append(res.Links, Link{TrgIDs: []string{trg[t].ID}})
			res.Empty++
			t++
			continue
		}

		bestDs, bestDt := 0, 0
		bestOv := ov
		bestNotCommon := math.Inf(1)
		for _, d := range moveSet {
			ns, nt := s+d[0], t+d[1]
			if ns > len(src)-1 || nt > len(trg)-1 {
				continue
			}
			merged := computeOverlap(src[s].Start, src[ns].End, trg[t].Start, trg[nt].End)
			if merged.common <= 0 {
				continue
			}
			if merged.notCommon < bestNotCommon {
				bestNotCommon = merged.notCommon
				bestDs, bestDt = d[0], d[1]
				bestOv = merged
			}
		}

		var srcIDs, trgIDs []string
		for i := s; i <= s+bestDs; i++ {
			srcIDs = append(srcIDs, src[i].ID)
		}
		for j := t; j <= t+bestDt; j++ {
			trgIDs = append(trgIDs, trg[j].ID)
		}

		ratio := 0.0
		if denom := bestOv.common + bestOv.notCommon; denom > 0 {
			ratio = bestOv.common / denom
		}
		common, notCommon := bestOv.common, bestOv.notCommon
		res.Links = append(res.Links, Link{
			SrcIDs: srcIDs, TrgIDs: trgIDs,
			CommonTime: &common, NonCommonTime: &notCommon, OverlapRatio: &ratio,
		})
		res.NonEmpty++
		res.Buckets[[2]int{1 + bestDs, 1 + bestDt}]++

		s += bestDs + 1
		t += bestDt + 1
	}

	for ; s < len(src); s++ {
		res.Links = append(res.Links, Link{SrcIDs: []string{src[s].ID}})
		res.Empty++
	}
	for ; t < len(trg); t++ {
		res.Links = append(res.Links, Link{TrgIDs: []string{trg[t].ID}})
		res.Empty++
	}

	return res
}
