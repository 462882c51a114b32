package core

import (
	"fmt"
	"strings"
)

const xcesProlog = `<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE cesAlign PUBLIC "-//CES//DTD XML cesAlign//EN" "">
`

// WriteXCES serializes links as an XCES cesAlign document: one
// linkGrp per file pair, one link per alignment with a 1-based "SL{n}" id,
// "src ; trg" xtargets, and a 3-decimal overlap ratio (omitted when
// undefined).
func WriteXCES(links []Link, fromDoc, toDoc string) string {
	var b strings.Builder
	b.WriteString(xcesProlog)
	b.WriteString(`<cesAlign version="1.0">` + "\n")
	fmt.Fprintf(&b, "  <linkGrp fromDoc=%q toDoc=%q>\n", fromDoc, toDoc)
	for i, l := range links {
		src := strings.Join(l.SrcIDs, " ")
		trg := strings.Join(l.TrgIDs, " ")
		overlapAttr := ""
		if l.OverlapRatio != nil {
			overlapAttr = fmt.Sprintf(` overlap="%.3f"`, *l.OverlapRatio)
		}
		fmt.Fprintf(&b, `    <link id="SL%d" xtargets=%q%s/>`+"\n", i+1, src+" ; "+trg, overlapAttr)
	}
	b.WriteString("  </linkGrp>\n")
	b.WriteString("</cesAlign>\n")
	return b.String()
}

// WriteSRT serializes timed text entries as an SRT document: a 1-based
// counter from the entry's position, the timestamp line, the line-wrapped text, and a blank
// terminator.
func WriteSRT(entries []SRTEntry, opts Options) string {
	soft, hard := opts.SoftMaxLineLength, opts.HardMaxLineLength
	if soft <= 0 {
		soft = 30
	}
	if hard <= 0 {
		hard = 37
	}

	var b strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&b, "%d\n", i+1)
		fmt.Fprintf(&b, "%s --> %s\n", SecToTime(e.Start), SecToTime(e.End))
		b.WriteString(WrapLine(e.Text, soft, hard))
		b.WriteString("\n\n")
	}
	return b.String()
}

// SRTEntry is one block written by WriteSRT.
type SRTEntry struct {
	Start, End float64
	Text       string
}
