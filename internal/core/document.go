package core

import "sort"

// tick is the minimum gap enforced between a sentence's start and end when
// raw timing would otherwise produce start >= end: the start is shifted to
// one tick before the end instead of left degenerate.
const tick = 1e-8

// timeMarker is one inline <time> event as seen by the reader, before C4
// has decided which ones act as "first" and "last".
type timeMarker struct {
	sec float64
	pos int
}

// Sentence is the overlap engine's per-sentence record.
type Sentence struct {
	ID     string
	Tokens []string

	// Markers is the raw, parse-order sequence of inline time events; C4
	// consumes it to derive FirstTime/LastTime below. Readers that already
	// know exact start/end (e.g. SRT) populate it with exactly two entries.
	Markers []timeMarker

	// Resolved markers, in seconds, with the character position at which
	// they apply. A nil *float64 pointer distinguishes "absent" from
	// "zero seconds". Populated by C4 (Interpolate), not the reader.
	FirstTime *float64
	LastTime  *float64
	FirstPos  int
	LastPos   int

	// StartPos/EndPos are the character positions of the sentence's own
	// boundaries (used to interpolate when markers sit elsewhere).
	StartPos int
	EndPos   int

	// Start/End are the derived seconds used by every downstream stage.
	Start float64
	End   float64
}

// Document is an ordered sequence of sentences belonging to one subtitle
// track. Sort re-establishes the invariant that Sentences is ordered by
// Start ascending; inputs may arrive out of order.
type Document struct {
	Sentences []*Sentence
}

func (d *Document) Sort() {
	if sort.SliceIsSorted(d.Sentences, func(i, j int) bool {
		return d.Sentences[i].Start < d.Sentences[j].Start
	}) {
		return
	}
	log.Warn().Msg("sentences arrived unsorted by start time, re-sorting")
	sort.SliceStable(d.Sentences, func(i, j int) bool {
		return d.Sentences[i].Start < d.Sentences[j].Start
	})
}

// FixInversions enforces Start < End on every sentence, nudging Start back
// by one tick when raw timing produced Start >= End.
func (d *Document) FixInversions() {
	for _, s := range d.Sentences {
		if s.Start >= s.End {
			log.Warn().Str("id", s.ID).Msg("zero-length or inverted frame, nudging start back")
			s.Start = s.End - tick
		}
	}
}
