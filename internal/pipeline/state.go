package pipeline

import "github.com/rs/zerolog"

// State is a stage of a pipeline run.
type State int

const (
	Load State = iota
	Normalize
	SelectFeatures
	SplitTrainTest
	Subsample
	FoldSplit
	Train
	Validate
	UpdateBest
	FinalEvaluate
)

var stateNames = [...]string{
	Load:           "LOAD",
	Normalize:      "NORMALIZE",
	SelectFeatures: "SELECT_FEATURES",
	SplitTrainTest: "SPLIT_TRAIN_TEST",
	Subsample:      "SUBSAMPLE",
	FoldSplit:      "FOLD_SPLIT",
	Train:          "TRAIN",
	Validate:       "VALIDATE",
	UpdateBest:     "UPDATE_BEST",
	FinalEvaluate:  "FINAL_EVALUATE",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "UNKNOWN"
	}
	return stateNames[s]
}

// level is the log level of entering s. States repeated for every fold are
// noisier than the once-per-run ones.
func (s State) level() zerolog.Level {
	switch s {
	case FoldSplit, Train, Validate, UpdateBest:
		return zerolog.TraceLevel
	default:
		return zerolog.DebugLevel
	}
}

// best tracks the highest validation F1 seen during a run. A model replaces
// the current best only when its F1 is strictly greater, so ties keep the
// first model and NaN never wins.
type best struct {
	f1      float64
	weights []float64
	last    []float64
}

// offer records weights from one fold and reports whether they became the
// new best.
func (b *best) offer(f1 float64, weights []float64) bool {
	b.last = weights
	if f1 > b.f1 {
		b.f1 = f1
		b.weights = weights
		return true
	}
	return false
}

// result returns the best weights, or the last offered ones with fallback
// set when no fold scored above zero.
func (b *best) result() (weights []float64, fallback bool) {
	if b.weights == nil {
		return b.last, true
	}
	return b.weights, false
}
