// Package pipeline runs the fraud model end to end: load, normalize, select
// features, hold out a test partition, cross-validate over resampled sets and
// report the best model against the held-out rows.
package pipeline

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/FlavioCFOliveira/GoFraud/internal/logistic"
	"github.com/FlavioCFOliveira/GoFraud/internal/metrics"
	"github.com/FlavioCFOliveira/GoFraud/internal/sample"
	"github.com/FlavioCFOliveira/GoFraud/internal/stats"
	"github.com/FlavioCFOliveira/GoFraud/internal/table"
)

// Partition ratios of the train/test split and of each fold split.
const (
	TrainRatio = 0.8
	FoldRatio  = 0.8
)

// Config holds the run parameters.
type Config struct {
	Label     string
	Exclude   []string
	Normalize []string

	Sets  int
	Folds int

	// SampleRate is the keep-rate of clean (label 0) rows in each set.
	SampleRate float64
	Threshold  float64

	CorrelationThreshold float64
	// SelectClass conditions feature correlation on rows with this label
	// (default 1, the fraud rows). Negative disables conditioning.
	SelectClass float64

	LearningRate float64
	Iterations   int
}

// DefaultConfig returns the standard schedule for the creditcard dataset.
func DefaultConfig() Config {
	return Config{
		Label:                "Class",
		Exclude:              []string{"Time"},
		Normalize:            []string{"Amount"},
		Sets:                 20,
		Folds:                5,
		SampleRate:           0.002,
		Threshold:            metrics.DefaultThreshold,
		CorrelationThreshold: stats.DefaultThreshold,
		SelectClass:          1,
		LearningRate:         logistic.DefaultRate,
		Iterations:           logistic.DefaultIterations,
	}
}

// Result summarizes a run. Frauds counts the loaded rows labelled 1.
type Result struct {
	Rows     int
	Frauds   int
	Train    int
	Test     int
	Selected []string
	Folds    []FoldResult
	BestF1   float64
	Weights  []float64
	Final    metrics.Report
}

// Pipeline executes runs for one configuration.
type Pipeline struct {
	cfg       Config
	rng       *rand.Rand
	out       io.Writer
	callbacks []Callback
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithOutput sets where the run summary and final report are printed
// (default stdout).
func WithOutput(w io.Writer) Option {
	return func(p *Pipeline) {
		p.out = w
	}
}

// WithCallbacks registers callbacks notified during Run.
func WithCallbacks(callbacks ...Callback) Option {
	return func(p *Pipeline) {
		p.callbacks = append(p.callbacks, callbacks...)
	}
}

// New creates a Pipeline. rng is the only source of randomness of every run.
func New(cfg Config, rng *rand.Rand, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg: cfg,
		rng: rng,
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pipeline) enter(s State) {
	log.WithLevel(s.level()).Stringer("state", s).Msg("Pipeline state")
}

// Run loads paths and trains, validates and tests the model.
func (p *Pipeline) Run(paths ...string) (*Result, error) {
	cfg := p.cfg
	if cfg.Sets < 1 || cfg.Folds < 1 {
		return nil, errors.Errorf("sets (%d) and folds (%d) must be positive", cfg.Sets, cfg.Folds)
	}

	p.enter(Load)
	data, report := table.NewLoader(table.WithExcludes(cfg.Exclude...)).Load(paths...)
	log.Info().Int("files", report.Files).Int("failed_files", report.FailedFiles).
		Int("rows", report.Rows).Int("bad_records", report.BadRecords).
		Int("bad_fields", report.BadFields).Msg("Data loaded")
	if data.Len() == 0 {
		return nil, errors.Errorf("no rows loaded from %d file(s)", len(paths))
	}
	if !data.HasColumn(cfg.Label) {
		return nil, errors.Errorf("label column %q not found in %v", cfg.Label, data.Columns)
	}
	frauds := data.Count(cfg.Label, 1)
	log.Info().Int("fraud", frauds).Int("clean", data.Count(cfg.Label, 0)).Msg("Class balance")
	fmt.Fprintf(p.out, "Rows Loaded : %d\n", data.Len())

	p.enter(Normalize)
	data = data.Normalize(cfg.Normalize...)

	p.enter(SelectFeatures)
	full, err := data.Flatten(cfg.Label)
	if err != nil {
		return nil, err
	}
	selectOpts := []stats.SelectOption{stats.WithThreshold(cfg.CorrelationThreshold)}
	if cfg.SelectClass >= 0 {
		selectOpts = append(selectOpts, stats.ConditionedOn(cfg.SelectClass))
	}
	selected := stats.Select(full, cfg.Label, selectOpts...)
	if len(selected) == 1 {
		log.Warn().Float64("threshold", cfg.CorrelationThreshold).Msg("No feature passed the correlation threshold")
	}
	data = data.Keep(selected...)

	p.enter(SplitTrainTest)
	train, test := sample.Split(p.rng, data.Records, TrainRatio)
	fmt.Fprintf(p.out, "Train : %d\n", len(train))
	fmt.Fprintf(p.out, "Test  : %d\n", len(test))

	result := &Result{
		Rows:     data.Len(),
		Frauds:   frauds,
		Train:    len(train),
		Test:     len(test),
		Selected: selected,
	}
	for _, cb := range p.callbacks {
		cb.OnRunBegin(result)
	}

	trainer := logistic.NewTrainer(logistic.WithRate(cfg.LearningRate), logistic.WithIterations(cfg.Iterations))
	labelOf := func(r table.Record) float64 { return r[cfg.Label] }

	var tracker best
	for set := 1; set <= cfg.Sets; set++ {
		p.enter(Subsample)
		subset := sample.Subsample(p.rng, train, labelOf, 0, cfg.SampleRate)
		log.Debug().Int("set", set).Int("rows", len(subset)).Msg("Set sampled")

		for fold := 1; fold <= cfg.Folds; fold++ {
			start := time.Now()

			p.enter(FoldSplit)
			fit, validate := sample.Split(p.rng, subset, FoldRatio)

			p.enter(Train)
			fitFrame, err := data.WithRecords(fit).Flatten(cfg.Label)
			if err != nil {
				return nil, err
			}
			weights := trainer.Train(fitFrame)

			p.enter(Validate)
			validateFrame, err := data.WithRecords(validate).Flatten(cfg.Label)
			if err != nil {
				return nil, err
			}
			rep, err := metrics.Evaluate(validateFrame, weights, metrics.WithThreshold(cfg.Threshold))
			if err != nil {
				return nil, errors.Wrapf(err, "set %d fold %d", set, fold)
			}

			improved := tracker.offer(rep.F1, weights)
			if improved {
				p.enter(UpdateBest)
			}

			foldResult := FoldResult{
				Set:      set,
				Fold:     fold,
				Train:    len(fit),
				Validate: len(validate),
				Report:   rep,
				Best:     improved,
				Elapsed:  time.Since(start),
			}
			result.Folds = append(result.Folds, foldResult)
			for _, cb := range p.callbacks {
				cb.OnFoldEnd(foldResult)
			}
		}
	}

	weights, fallback := tracker.result()
	if fallback {
		log.Warn().Int("folds", len(result.Folds)).Msg("No fold scored above zero F1, using the last trained weights")
	}
	result.BestF1 = tracker.f1
	result.Weights = weights
	fmt.Fprintf(p.out, "Best F1 = %v\n", tracker.f1)

	p.enter(FinalEvaluate)
	testFrame, err := data.WithRecords(test).Flatten(cfg.Label)
	if err != nil {
		return nil, err
	}
	final, err := metrics.Evaluate(testFrame, weights, metrics.WithThreshold(cfg.Threshold), metrics.Verbose(p.out))
	if err != nil {
		return nil, errors.Wrap(err, "final evaluation")
	}
	result.Final = final

	for _, cb := range p.callbacks {
		cb.OnRunEnd(result)
	}

	return result, nil
}
