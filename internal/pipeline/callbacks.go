package pipeline

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/FlavioCFOliveira/GoFraud/internal/metrics"
)

// FoldResult is the outcome of training and validating one fold.
type FoldResult struct {
	Set      int
	Fold     int
	Train    int
	Validate int
	Report   metrics.Report
	Best     bool
	Elapsed  time.Duration
}

// Callback defines the interface for run callbacks.
type Callback interface {
	OnRunBegin(r *Result)
	OnFoldEnd(fold FoldResult)
	OnRunEnd(r *Result)
}

// BaseCallback provides default empty implementations for Callback.
type BaseCallback struct{}

func (c BaseCallback) OnRunBegin(r *Result)      {}
func (c BaseCallback) OnFoldEnd(fold FoldResult) {}
func (c BaseCallback) OnRunEnd(r *Result)        {}

// LogCallback logs run progress through zerolog.
type LogCallback struct {
	BaseCallback
}

func (c LogCallback) OnRunBegin(r *Result) {
	log.Info().Int("rows", r.Rows).Int("train", r.Train).Int("test", r.Test).
		Strs("selected", r.Selected).Msg("Cross-validation started")
}

func (c LogCallback) OnFoldEnd(fold FoldResult) {
	log.Info().Int("set", fold.Set).Int("fold", fold.Fold).
		Int("train", fold.Train).Int("validate", fold.Validate).
		Float64("f1", fold.Report.F1).Bool("best", fold.Best).
		Dur("elapsed", fold.Elapsed).Msg("Fold complete")
}

func (c LogCallback) OnRunEnd(r *Result) {
	log.Info().Float64("best_f1", r.BestF1).Float64("test_f1", r.Final.F1).
		Int("folds", len(r.Folds)).Msg("Run complete")
}
