package core

import (
	"context"
	"sync"
)

// BestAnchorResult is the outcome of the C7 search: the surviving alignment
// plus the score it was chosen for, and whether a fallback aligner produced
// the result instead.
type BestAnchorResult struct {
	Result       AlignResult
	Score        float64
	UsedFallback bool
	FallbackOut  []byte
}

// score computes R: the default flavor rewards raw non-empty count; the
// proportion flavor normalizes by total link count.
func score(res AlignResult, proportion bool) float64 {
	if proportion {
		return float64(res.NonEmpty+1) / float64(res.NonEmpty+res.Empty+1)
	}
	return float64(res.NonEmpty+1) / float64(res.Empty+1)
}

// candidate is one (p, q) anchor pair's rerun of C6 against a resynced
// source side.
type candidate struct {
	result AlignResult
	score  float64
	ok     bool
}

// BestAnchor runs the C7 search: the unmodified C6 run as incumbent, then
// every prefix x suffix anchor pair resynced via C5 and rerun through C6,
// keeping whichever yields the highest R. The candidate loop runs
// through a bounded worker pool since every candidate is an independent,
// side-effect-free rerun over its own cloned source slice.
func BestAnchor(src, trg []*Sentence, opts Options, poolSize int) BestAnchorResult {
	incumbent := Align(src, trg)
	best := BestAnchorResult{Result: incumbent, Score: score(incumbent, opts.Proportion)}

	prefix, suffix := DiscoverAnchors(src, trg, opts)
	if len(prefix) == 0 || len(suffix) == 0 {
		return finishBestAnchor(best, src, trg, opts)
	}

	results := make([]candidate, 0, len(prefix)*len(suffix))
	var mu sync.Mutex
	pool := NewWorkerPool(poolSize)

	for _, p := range prefix {
		for _, q := range suffix {
			p, q := p, q
			pool.Submit(func() {
				cand, ok := runCandidate(src, trg, p, q)
				mu.Lock()
				if ok {
					results = append(results, candidate{result: cand, score: score(cand, opts.Proportion), ok: true})
				}
				mu.Unlock()
			})
		}
	}
	pool.Wait()

	for _, c := range results {
		if c.score > best.Score {
			best = BestAnchorResult{Result: c.result, Score: c.score}
		}
	}

	return finishBestAnchor(best, src, trg, opts)
}

// runCandidate computes (slope, offset) from the (p, q) anchor pair via C5,
// skips non-positive slopes, and reruns C6 against a cloned,
// resynced copy of the source timestamps.
func runCandidate(src, trg []*Sentence, p, q Anchor) (AlignResult, bool) {
	points := []Point{
		{X: src[p.I].Start, Y: trg[p.J].Start},
		{X: src[q.I].Start, Y: trg[q.J].Start},
	}
	slope, offset := FitLine(points)
	if slope <= 0 {
		log.Warn().Int("srcI", p.I).Int("trgJ", q.J).Float64("slope", slope).
			Msg("non-positive slope from anchor pair, skipping candidate")
		return AlignResult{}, false
	}

	cloned := make([]*Sentence, len(src))
	for i, s := range src {
		cp := *s
		cp.Start = ApplyTransform(s.Start, slope, offset)
		cp.End = ApplyTransform(s.End, slope, offset)
		cloned[i] = &cp
	}
	return Align(cloned, trg), true
}

// finishBestAnchor decides whether to fall back: when the incumbent's score
// is below 2 and a fallback aligner is configured and resolvable, the
// fallback's output becomes the final result.
func finishBestAnchor(best BestAnchorResult, src, trg []*Sentence, opts Options) BestAnchorResult {
	if best.Score >= 2 || opts.Fallback == "" {
		return best
	}
	fb := ExecFallback{Name: opts.Fallback}
	if _, ok := fb.Resolve(); !ok {
		return best
	}
	// A resolvable fallback is configured: BestAnchor only operates on
	// in-memory sentences, not file paths, so it cannot invoke the
	// fallback itself. Flag it here; the caller (which holds the original
	// file paths) substitutes the fallback's output for this result.
	best.UsedFallback = true
	return best
}

// RunFallback invokes the configured fallback aligner against the given
// source/target files and returns its raw output, or ok=false if no
// fallback is configured or it cannot be resolved on PATH.
func RunFallback(ctx context.Context, opts Options, srcFile, trgFile string) ([]byte, bool) {
	if opts.Fallback == "" {
		return nil, false
	}
	fb := ExecFallback{Name: opts.Fallback}
	r, err := fb.Run(ctx, srcFile, trgFile)
	if err != nil {
		return nil, false
	}
	buf := make([]byte, 0, 4096)
	chunk := make([]byte, 4096)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}
		if err != nil {
			break
		}
	}
	return buf, true
}

// CognateSweep is the cognate-sweep variant of the best-anchor search:
// iterate CognateThreshold from 1.0 down to CognateRange in 0.05 steps, rerunning
// lexical matching (via fresh anchor discovery) and the best-anchor search
// each time, keeping the best-scoring alignment across the whole sweep.
// Progress is reported through rep if non-nil (subalign's -v flag).
func CognateSweep(src, trg []*Sentence, opts Options, poolSize int, rep *ProgressReporter) BestAnchorResult {
	var best BestAnchorResult
	haveBest := false

	for threshold := 1.0; threshold >= opts.CognateRange-1e-9; threshold -= 0.05 {
		iterOpts := opts
		iterOpts.CognateThreshold = threshold

		res := BestAnchor(src, trg, iterOpts, poolSize)
		if !haveBest || res.Score > best.Score {
			best = res
			haveBest = true
		}
		if rep != nil {
			rep.Step()
			frac, eta := rep.Snapshot()
			log.Info().Float64("threshold", threshold).Float64("done", frac).Dur("eta", eta).
				Msg("cognate sweep progress")
		}
	}

	return best
}
