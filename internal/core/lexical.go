package core

import (
	"regexp"
	"unicode"
)

// MatchScore decides whether src and trg token lists share an anchor,
// returning the first positive score from the composite strategy:
// dictionary hit, identical-token run, LCS cognate ratio.
func MatchScore(src, trg []string, opts Options) float64 {
	if opts.UseDictionary && opts.Dictionary != nil {
		if score := dictionaryMatch(src, trg, opts.Dictionary); score > 0 {
			return score
		}
	}
	if opts.UseIdentical {
		if score := identicalRunMatch(src, trg, opts); score > 0 {
			return score
		}
	}
	if opts.UseCognates {
		if score := cognateMatch(src, trg, opts); score > 0 {
			return score
		}
	}
	return 0
}

func dictionaryMatch(src, trg []string, dict *Dictionary) float64 {
	for _, s := range src {
		for _, t := range trg {
			if dict.Has(s, t) {
				return 1
			}
		}
	}
	return 0
}

func passesFilter(tok string, opts Options) bool {
	runes := []rune(tok)
	if len(runes) < opts.MinTokenLength {
		return false
	}
	if opts.UpperCaseOnly {
		for _, r := range runes {
			if unicode.IsLetter(r) && !unicode.IsUpper(r) {
				return false
			}
		}
	}
	if opts.CharSetRegex != "" {
		re, err := regexp.Compile(opts.CharSetRegex)
		if err == nil && !re.MatchString(tok) {
			return false
		}
	}
	return true
}

// identicalRunMatch finds the longest run of identical successive tokens
// shared by src and trg, subject to the filter table, and
// scores it by character length (optionally down-weighted by the token's
// document frequency on both sides).
func identicalRunMatch(src, trg []string, opts Options) float64 {
	bestChars := 0
	var bestSrcFreq, bestTrgFreq int

	for i := range src {
		if !passesFilter(src[i], opts) {
			continue
		}
		for j := range trg {
			if src[i] != trg[j] || !passesFilter(trg[j], opts) {
				continue
			}
			ci, cj := i, j
			chars := 0
			maxSrcFreq, maxTrgFreq := 0, 0
			for ci < len(src) && cj < len(trg) && src[ci] == trg[cj] {
				chars += len([]rune(src[ci]))
				if f := opts.WordFreqSrc[src[ci]]; f > maxSrcFreq {
					maxSrcFreq = f
				}
				if f := opts.WordFreqTrg[trg[cj]]; f > maxTrgFreq {
					maxTrgFreq = f
				}
				ci++
				cj++
			}
			if chars > bestChars {
				bestChars = chars
				bestSrcFreq, bestTrgFreq = maxSrcFreq, maxTrgFreq
			}
		}
	}

	if bestChars <= opts.MinMatchLength {
		return 0
	}
	if opts.UseWordFreq && bestSrcFreq+bestTrgFreq > 0 {
		return float64(bestChars) / float64(bestSrcFreq+bestTrgFreq)
	}
	return float64(bestChars)
}

// cognateMatch finds the best LCS-ratio cognate pair among all token pairs
// passing the filter table.
func cognateMatch(src, trg []string, opts Options) float64 {
	best := 0.0
	for _, s := range src {
		if !passesFilter(s, opts) {
			continue
		}
		sr := []rune(s)
		for _, t := range trg {
			if !passesFilter(t, opts) {
				continue
			}
			tr := []rune(t)
			l := lcsLen(sr, tr)
			denom := len(sr)
			if len(tr) > denom {
				denom = len(tr)
			}
			if denom == 0 {
				continue
			}
			ratio := float64(l) / float64(denom)
			if ratio >= opts.CognateThreshold && ratio > best {
				best = ratio
			}
		}
	}
	return best
}

// lcsLen computes the standard O(|a|*|b|) longest-common-subsequence
// length over runes: diagonal+1 on a character match, otherwise the
// locally maximal neighbour, with the bottom-right cell holding the
// final answer.
func lcsLen(a, b []rune) int {
	n, m := len(a), len(b)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}
	return dp[n][m]
}
