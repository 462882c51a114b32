package core

// Interpolate derives Start/End in seconds for every sentence in doc from
// its raw inline time markers and character positions, applying the
// linear transform (scale, offset) -- default (1, 0) -- and finally
// enforcing Start < End.
func Interpolate(doc *Document, scale, offset float64) {
	resolveMarkers(doc)

	var prevEnd float64
	for i, s := range doc.Sentences {
		if s.FirstTime == nil {
			v := prevEnd
			if i == 0 {
				v = 0
			}
			s.FirstTime = floatPtr(v)
			s.FirstPos = s.StartPos
		}
		if s.LastTime == nil {
			resolveLastFromFollowing(doc, i)
		}

		first := *s.FirstTime
		last := *s.LastTime

		if s.FirstPos != s.StartPos && s.LastPos != s.FirstPos {
			span := last - first
			first = first - span*float64(s.FirstPos-s.StartPos)/float64(s.LastPos-s.FirstPos)
		}
		if s.LastPos != s.EndPos && s.LastPos != s.FirstPos {
			span := last - first
			last = last + span*float64(s.EndPos-s.LastPos)/float64(s.LastPos-s.FirstPos)
		}

		s.Start = scale*first + offset
		s.End = scale*last + offset

		prevEnd = last
	}

	doc.FixInversions()
}

// resolveMarkers applies the "only one marker, demote to last if it sits
// at the sentence end" rule to every sentence's raw Markers list,
// producing FirstTime/FirstPos and LastTime/LastPos (both possibly nil).
func resolveMarkers(doc *Document) {
	for _, s := range doc.Sentences {
		switch len(s.Markers) {
		case 0:
			// left nil; filled in by the forward/backward scan below.
		case 1:
			m := s.Markers[0]
			if m.pos == s.EndPos {
				s.LastTime = floatPtr(m.sec)
				s.LastPos = m.pos
			} else {
				s.FirstTime = floatPtr(m.sec)
				s.FirstPos = m.pos
			}
		default:
			first, last := s.Markers[0], s.Markers[len(s.Markers)-1]
			s.FirstTime = floatPtr(first.sec)
			s.FirstPos = first.pos
			s.LastTime = floatPtr(last.sec)
			s.LastPos = last.pos
		}
	}
}

// resolveLastFromFollowing scans forward for the next sentence with a
// defined First or Last marker and copies it (and its position), falling
// through to this sentence's own termination position otherwise.
func resolveLastFromFollowing(doc *Document, i int) {
	s := doc.Sentences[i]
	for j := i + 1; j < len(doc.Sentences); j++ {
		cand := doc.Sentences[j]
		if cand.FirstTime != nil {
			s.LastTime = floatPtr(*cand.FirstTime)
			s.LastPos = cand.FirstPos
			return
		}
		if cand.LastTime != nil {
			s.LastTime = floatPtr(*cand.LastTime)
			s.LastPos = cand.LastPos
			return
		}
	}
	// Nothing found: fall through to this sentence's own end.
	v := 0.0
	if s.FirstTime != nil {
		v = *s.FirstTime
	}
	s.LastTime = floatPtr(v)
	s.LastPos = s.EndPos
}
