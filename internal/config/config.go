// Package config defines the environment configuration of the fraud
// pipeline and its loader.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/FlavioCFOliveira/GoFraud/internal/pipeline"
)

// Config holds every setting read from the environment.
type Config struct {
	ModelEnvConfig
	DataEnvConfig
	RunEnvConfig
}

// DataEnvConfig describes the input columns.
type DataEnvConfig struct {
	Label     string   `env:"LABEL" envDefault:"Class"`
	Exclude   []string `env:"EXCLUDE" envDefault:"Time" envSeparator:","`
	Normalize []string `env:"NORMALIZE" envDefault:"Amount" envSeparator:","`
}

// ModelEnvConfig holds the selection, training and evaluation schedule.
type ModelEnvConfig struct {
	Sets                 int     `env:"SETS" envDefault:"20"`
	Folds                int     `env:"FOLDS" envDefault:"5"`
	Threshold            float64 `env:"THRESHOLD" envDefault:"0.998"`
	CorrelationThreshold float64 `env:"CORRELATION_THRESHOLD" envDefault:"0.5"`
	SelectClass          float64 `env:"SELECT_CLASS" envDefault:"1"`
	SampleRate           float64 `env:"SAMPLE_RATE" envDefault:"0.002"`
	LearningRate         float64 `env:"LEARNING_RATE" envDefault:"0.0001"`
	Iterations           int     `env:"ITERATIONS" envDefault:"10000"`
}

// RunEnvConfig configures the process around the pipeline.
type RunEnvConfig struct {
	Seed        int64  `env:"SEED" envDefault:"-1"`
	ReportPath  string `env:"REPORT_PATH"`
	Environment string `env:"ENVIRONMENT" envDefault:"prod"`
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the pipeline cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Label == "":
		return errors.New("LABEL must not be empty")
	case c.Sets <= 0:
		return errors.Errorf("SETS must be positive, got %d", c.Sets)
	case c.Folds <= 0:
		return errors.Errorf("FOLDS must be positive, got %d", c.Folds)
	case c.Iterations <= 0:
		return errors.Errorf("ITERATIONS must be positive, got %d", c.Iterations)
	case !unit(c.Threshold):
		return errors.Errorf("THRESHOLD must be within [0, 1], got %v", c.Threshold)
	case !unit(c.CorrelationThreshold):
		return errors.Errorf("CORRELATION_THRESHOLD must be within [0, 1], got %v", c.CorrelationThreshold)
	case !unit(c.SampleRate):
		return errors.Errorf("SAMPLE_RATE must be within [0, 1], got %v", c.SampleRate)
	case !(c.LearningRate > 0):
		return errors.Errorf("LEARNING_RATE must be positive, got %v", c.LearningRate)
	}
	return nil
}

func unit(v float64) bool {
	return v >= 0 && v <= 1
}

// Pipeline returns the run parameters for pipeline.New.
func (c *Config) Pipeline() pipeline.Config {
	return pipeline.Config{
		Label:                c.Label,
		Exclude:              c.Exclude,
		Normalize:            c.Normalize,
		Sets:                 c.Sets,
		Folds:                c.Folds,
		SampleRate:           c.SampleRate,
		Threshold:            c.Threshold,
		CorrelationThreshold: c.CorrelationThreshold,
		SelectClass:          c.SelectClass,
		LearningRate:         c.LearningRate,
		Iterations:           c.Iterations,
	}
}
