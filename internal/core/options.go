package core

// Options is the single immutable configuration value threaded through the
// engine, replacing the original process-wide mutable configuration.
// Zero value is not meaningful; use DefaultOptions().
type Options struct {
	// C3 lexical matcher filters.
	UseDictionary    bool
	UseIdentical     bool
	UseCognates      bool
	MinTokenLength   int
	UpperCaseOnly    bool
	CharSetRegex     string // optional; empty means "no extra filter"
	UseWordFreq      bool
	MinMatchLength   int     // identical-run threshold, default 5
	CognateThreshold float64 // default 0.7; swept by -r/-c
	CognateRange     float64 // lower bound of the cognate-threshold sweep

	// C3/C7 anchor discovery.
	Window     int // default 25
	MaxMatches int // default 10; 0 = unbounded

	// C7 best-anchor search.
	BestAlign    bool
	Proportion   bool // -P: R = (nonempty+1)/(nonempty+empty+1)
	Fallback     string
	Verbose      bool

	// C8 length DP.
	LengthPenalty      float64 // LengthLimitPenalty, default 0.5
	NotEosPenalty      float64 // default 0.5
	SoftMaxLineLength  int     // default 30
	HardMaxLineLength  int     // default 37

	// Dictionary, loaded once by the caller and borrowed read-only.
	Dictionary *Dictionary
	WordFreqSrc WordFreq
	WordFreqTrg WordFreq
}

// DefaultOptions returns the documented defaults for a fresh alignment run.
func DefaultOptions() Options {
	return Options{
		UseDictionary:     true,
		UseIdentical:      true,
		UseCognates:       true,
		MinTokenLength:    1,
		MinMatchLength:    5,
		CognateThreshold:  0.7,
		CognateRange:      0.7,
		Window:            25,
		MaxMatches:        10,
		LengthPenalty:     0.5,
		NotEosPenalty:     0.5,
		SoftMaxLineLength: 30,
		HardMaxLineLength: 37,
	}
}
