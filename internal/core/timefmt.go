package core

import (
	"fmt"
	"regexp"
	"strconv"
)

// timestampPattern matches "HH:MM:SS,mmm" (comma or dot millisecond
// separator), grounded on the regexp timestamp parser used by srtgears'
// Executor and the split-based parser in blueberry's srt_overlaps helper.
var timestampPattern = regexp.MustCompile(`(\d+):(\d{2}):(\d{2})[,.](\d{3})`)

// TimeToSec parses "HH:MM:SS,mmm" into seconds.
func TimeToSec(ts string) (float64, error) {
	m := timestampPattern.FindStringSubmatch(ts)
	if m == nil {
		return 0, newErr(ParseError, nil, "invalid timestamp %q", ts)
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	s, _ := strconv.Atoi(m[3])
	ms, _ := strconv.Atoi(m[4])
	return float64(h)*3600 + float64(mi)*60 + float64(s) + float64(ms)/1000, nil
}

// SecToTime formats seconds as "HH:MM:SS,mmm". Negative input clamps to 0.
func SecToTime(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	totalMs := int64(sec*1000 + 0.5)
	ms := totalMs % 1000
	totalS := totalMs / 1000
	s := totalS % 60
	totalM := totalS / 60
	m := totalM % 60
	h := totalM / 60
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}
