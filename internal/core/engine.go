package core

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// RunOverlapAlign is the srtalign data flow end to end: C2 -> C4 -> sort ->
// (optional C7 best-anchor, itself driving C3/C5/C6) -> XCES serialization.
// When the best-anchor search fell back to an external aligner, that
// aligner's raw output is returned in place of the XCES serialization.
func RunOverlapAlign(srcPath, trgPath string, format Format, opts Options, poolSize int) (string, error) {
	src, err := ReadDocument(srcPath, format)
	if err != nil {
		return "", err
	}
	trg, err := ReadDocument(trgPath, format)
	if err != nil {
		return "", err
	}

	Interpolate(src, 1, 0)
	Interpolate(trg, 1, 0)
	src.Sort()
	trg.Sort()

	if opts.UseWordFreq {
		opts.WordFreqSrc = BuildWordFreq(src)
		opts.WordFreqTrg = BuildWordFreq(trg)
	}

	var result AlignResult
	if opts.BestAlign {
		var best BestAnchorResult
		if opts.CognateRange > 0 && opts.CognateRange < opts.CognateThreshold {
			var rep *ProgressReporter
			if opts.Verbose {
				steps := int64((1.0-opts.CognateRange)/0.05) + 1
				rep = NewProgressReporter(steps)
			}
			best = CognateSweep(src.Sentences, trg.Sentences, opts, poolSize, rep)
		} else {
			best = BestAnchor(src.Sentences, trg.Sentences, opts, poolSize)
		}
		if best.UsedFallback {
			if out, ok := RunFallback(context.Background(), opts, srcPath, trgPath); ok {
				return string(out), nil
			}
		}
		result = best.Result
	} else {
		result = Align(src.Sentences, trg.Sentences)
	}

	return WriteXCES(result.Links, srcPath, trgPath), nil
}

// RunProjector is the mt2srt data flow: C2 reads the timed template, the
// translation (read from r) is fragmented on clause punctuation, C8 aligns
// cumulative character lengths, and C9 emits wrapped SRT.
func RunProjector(templatePath string, format Format, r io.Reader, opts Options) (string, error) {
	template, err := ReadDocument(templatePath, format)
	if err != nil {
		return "", err
	}
	Interpolate(template, 1, 0)

	frames := make([]Frame, len(template.Sentences))
	for i, s := range template.Sentences {
		frames[i] = Frame{Start: s.Start, End: s.End, CharLen: tokenCharLen(s.Tokens)}
	}

	lines, err := readLines(r)
	if err != nil {
		return "", err
	}
	fragments, isSentEnd := FragmentLines(lines, opts.SoftMaxLineLength, opts.HardMaxLineLength)

	assignment := ProjectLengths(frames, fragments, isSentEnd, opts)

	entries := make([]SRTEntry, len(frames))
	for i, f := range frames {
		entries[i] = SRTEntry{Start: f.Start, End: f.End, Text: strings.Join(assignment[i], " ")}
	}

	return WriteSRT(entries, opts), nil
}

func tokenCharLen(tokens []string) int {
	n := 0
	for _, t := range tokens {
		n += len([]rune(t))
	}
	return n
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, newErr(InputError, err, "reading translation input")
	}
	return lines, nil
}
