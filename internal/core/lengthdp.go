package core

import (
	"math"
	"regexp"
	"strings"
)

// Frame is one template (source) line the length-DP projector maps
// translation fragments onto: a timed slot with a known character budget.
type Frame struct {
	Start, End float64
	CharLen    int
}

var clauseCut = regexp.MustCompile(`^[^\p{P}]*\p{P}[\s]+`)

// FragmentLines splits each translation line at clause punctuation:
// repeatedly consuming the shortest "non-punct run, punct, whitespace"
// prefix, with any remainder becoming a final fragment. Fragments longer
// than HardMaxLineLength are pre-split on whitespace after at least
// SoftMaxLineLength characters. isSentEnd[j] is true exactly where
// fragment j ends one of the input lines.
func FragmentLines(lines []string, soft, hard int) (fragments []string, isSentEnd []bool) {
	for _, line := range lines {
		frags := fragmentClauses(line)
		var split []string
		for _, f := range frags {
			split = append(split, presplitLong(f, soft, hard)...)
		}
		if len(split) == 0 {
			split = []string{""}
		}
		for i, f := range split {
			fragments = append(fragments, f)
			isSentEnd = append(isSentEnd, i == len(split)-1)
		}
	}
	return fragments, isSentEnd
}

func fragmentClauses(text string) []string {
	var out []string
	remaining := strings.TrimSpace(text)
	for len(remaining) > 0 {
		loc := clauseCut.FindStringIndex(remaining)
		if loc == nil {
			out = append(out, strings.TrimSpace(remaining))
			break
		}
		out = append(out, strings.TrimSpace(remaining[:loc[1]]))
		remaining = remaining[loc[1]:]
	}
	return out
}

func presplitLong(frag string, soft, hard int) []string {
	if len([]rune(frag)) <= hard {
		return []string{frag}
	}
	var out []string
	runes := []rune(frag)
	start := 0
	for len(runes)-start > hard {
		cut := findWhitespaceAfter(runes[start:], soft)
		if cut < 0 {
			break
		}
		out = append(out, strings.TrimSpace(string(runes[start:start+cut])))
		start += cut
	}
	out = append(out, strings.TrimSpace(string(runes[start:])))
	return out
}

func findWhitespaceAfter(runes []rune, minPos int) int {
	for i := minPos; i < len(runes); i++ {
		if runes[i] == ' ' || runes[i] == '\t' {
			return i
		}
	}
	return -1
}

var priorD2 = [5]float64{0.04, 0.24, 0.24, 0.24, 0.24}

// ProjectLengths runs the C8 DP: frames consume target fragments in groups
// of 0 to 4, scored by Gale-Church length-ratio cost plus sentence-end and
// length-limit priors, and backtracks to a per-frame fragment assignment.
// Returns, for each frame, the slice of fragments assigned to it.
func ProjectLengths(frames []Frame, fragments []string, isSentEnd []bool, opts Options) [][]string {
	n1, n2 := len(frames), len(fragments)

	len1 := make([]int, n1+1)
	for i, f := range frames {
		len1[i+1] = len1[i] + f.CharLen
	}
	len2 := make([]int, n2+1)
	for i, f := range fragments {
		len2[i+1] = len2[i] + len([]rune(f))
	}

	hard := opts.HardMaxLineLength
	if hard <= 0 {
		hard = 37
	}
	notEosPenalty := opts.NotEosPenalty
	if notEosPenalty <= 0 {
		notEosPenalty = 0.5
	}
	lengthLimitPenalty := opts.LengthPenalty
	if lengthLimitPenalty <= 0 {
		lengthLimitPenalty = 0.5
	}

	cost := make([][]float64, n1+1)
	move := make([][]int8, n1+1) // d2 taken to reach this cell, -1 if unreached
	for i := range cost {
		cost[i] = make([]float64, n2+1)
		move[i] = make([]int8, n2+1)
		for j := range cost[i] {
			cost[i][j] = math.Inf(1)
			move[i][j] = -1
		}
	}
	cost[0][0] = 0

	for i1 := 1; i1 <= n1; i1++ {
		for i2 := 0; i2 <= n2; i2++ {
			for d2 := 0; d2 <= 4 && d2 <= i2; d2++ {
				prev := cost[i1-1][i2-d2]
				if math.IsInf(prev, 1) {
					continue
				}

				eos := notEosPenalty
				if d2 == 0 || (i2 > 0 && isSentEnd[i2-1]) {
					eos = 1
				}
				span := len2[i2] - len2[i2-d2]
				lenPenalty := lengthLimitPenalty
				if span > hard {
					lenPenalty = 1
				}

				c := prev - math.Log(lenPenalty*eos*priorD2[d2]) +
					matchScore(len1[i1]-len1[i1-1], span)

				if c < cost[i1][i2] {
					cost[i1][i2] = c
					move[i1][i2] = int8(d2)
				}
			}
		}
	}

	assignment := make([][]string, n1)
	i1, i2 := n1, n2
	for i1 > 0 {
		d2 := move[i1][i2]
		if d2 < 0 {
			d2 = 0
		}
		assignment[i1-1] = append([]string{}, fragments[i2-int(d2):i2]...)
		i2 -= int(d2)
		i1--
	}

	return assignment
}
