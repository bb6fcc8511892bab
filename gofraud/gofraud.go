package gofraud

import (
	"math/rand/v2"

	"github.com/FlavioCFOliveira/GoFraud/internal/config"
	"github.com/FlavioCFOliveira/GoFraud/internal/logistic"
	"github.com/FlavioCFOliveira/GoFraud/internal/metrics"
	"github.com/FlavioCFOliveira/GoFraud/internal/pipeline"
	"github.com/FlavioCFOliveira/GoFraud/internal/sample"
	"github.com/FlavioCFOliveira/GoFraud/internal/stats"
	"github.com/FlavioCFOliveira/GoFraud/internal/synth"
	"github.com/FlavioCFOliveira/GoFraud/internal/table"
)

// Re-export common types and functions for easier access
type (
	Pipeline   = pipeline.Pipeline
	Config     = pipeline.Config
	Result     = pipeline.Result
	FoldResult = pipeline.FoldResult
	Callback   = pipeline.Callback
	Option     = pipeline.Option

	EnvConfig = config.Config

	Dataset = table.Dataset
	Frame   = table.Frame
	Record  = table.Record

	Trainer   = logistic.Trainer
	Report    = metrics.Report
	Confusion = metrics.Confusion
)

// Pipeline
func NewPipeline(cfg Config, rng *rand.Rand, opts ...Option) *Pipeline {
	return pipeline.New(cfg, rng, opts...)
}

func DefaultConfig() Config {
	return pipeline.DefaultConfig()
}

func LoadConfig() (*EnvConfig, error) {
	return config.Load()
}

// NewRand returns the run's random source. A negative seed is
// non-deterministic.
func NewRand(seed int64) *rand.Rand {
	return sample.NewRand(seed)
}

var (
	WithOutput    = pipeline.WithOutput
	WithCallbacks = pipeline.WithCallbacks
)

// Callbacks
func LogCallback() Callback {
	return pipeline.LogCallback{}
}

func CSVLogger(filename string, append bool) Callback {
	return pipeline.NewCSVLogger(filename, append)
}

// Data
func Load(excludes []string, paths ...string) (*Dataset, table.LoadReport) {
	return table.NewLoader(table.WithExcludes(excludes...)).Load(paths...)
}

func SelectFeatures(frame *Frame, label string, threshold float64) []string {
	return stats.Select(frame, label, stats.WithThreshold(threshold))
}

// Model
func NewTrainer(rate float64, iterations int) *Trainer {
	return logistic.NewTrainer(logistic.WithRate(rate), logistic.WithIterations(iterations))
}

func Classify(weights, x []float64) float64 {
	return logistic.Classify(weights, x)
}

func Evaluate(frame *Frame, weights []float64, threshold float64) (Report, error) {
	return metrics.Evaluate(frame, weights, metrics.WithThreshold(threshold))
}

// Synthetic data
func Generate(rng *rand.Rand, rows int) *Dataset {
	return synth.Generate(rng, synth.WithRows(rows))
}

func WriteCSV(filename string, d *Dataset) error {
	return synth.WriteFile(filename, d)
}
