package types

import "github.com/sirupsen/logrus"

// Options holds construction-time knobs for the engine. The zero value is
// valid and Init() fills in the same defaults New() would use, mirroring
// the teacher's EngineInitOptions.Init() defaulting pattern.
type Options struct {
	// AccumulatorBuckets pins the concurrent accumulator's bucket count.
	// Zero means "one bucket per live document at call time" (the default
	// heuristic from SPEC_FULL.md §4.6).
	AccumulatorBuckets int

	// DefaultMode is used by any overload that doesn't take an explicit
	// Mode argument. Zero value is Seq.
	DefaultMode Mode

	// Logger receives the engine's structured diagnostics (C12). Nil means
	// the package-level default logger is used.
	Logger *logrus.Logger
}

// Init fills unset fields with their defaults, in place.
func (o *Options) Init() {
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
}
