// Package logistic implements a bias-free logistic-regression classifier
// trained with per-example gradient descent.
package logistic

import (
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"

	"github.com/FlavioCFOliveira/GoFraud/internal/activations"
	"github.com/FlavioCFOliveira/GoFraud/internal/loss"
	"github.com/FlavioCFOliveira/GoFraud/internal/opt"
	"github.com/FlavioCFOliveira/GoFraud/internal/table"
)

// Default training schedule.
const (
	DefaultRate       = 0.0001
	DefaultIterations = 10000
)

var sigmoid activations.Activation = activations.Sigmoid{}

// Classify returns the fraud probability of x: sigmoid(weights · x).
// There is no intercept. weights and x must have the same length.
func Classify(weights, x []float64) float64 {
	return sigmoid.Activate(floats.Dot(weights, x))
}

// Trainer fits weights with a fixed learning rate and a fixed number of
// passes over the data.
type Trainer struct {
	Rate       float64
	Iterations int
}

// TrainerOption configures a Trainer.
type TrainerOption func(*Trainer)

// WithRate sets the learning rate.
func WithRate(rate float64) TrainerOption {
	return func(t *Trainer) {
		t.Rate = rate
	}
}

// WithIterations sets the number of passes over the training rows.
func WithIterations(iterations int) TrainerOption {
	return func(t *Trainer) {
		t.Iterations = iterations
	}
}

// NewTrainer creates a Trainer with the default schedule.
func NewTrainer(opts ...TrainerOption) *Trainer {
	t := &Trainer{
		Rate:       DefaultRate,
		Iterations: DefaultIterations,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Train returns weights fitted to frame, one per feature.
//
// Weights start at zero on every call. Each pass visits the rows in order and
// moves every weight by rate * (label - prediction) * feature. There is no
// regularization and no early exit.
func (t *Trainer) Train(frame *table.Frame) []float64 {
	weights := make([]float64, len(frame.Features))
	var optimizer opt.Optimizer = opt.SGD{LearningRate: t.Rate}

	for n := 0; n < t.Iterations; n++ {
		for i, x := range frame.X {
			predicted := Classify(weights, x)
			optimizer.Step(weights, x, frame.Y[i]-predicted)
		}
	}

	if e := log.Debug(); e.Enabled() {
		e.Int("rows", frame.Len()).
			Int("iterations", t.Iterations).
			Float64("loss", loss.BCELoss{}.Forward(Predict(weights, frame), frame.Y)).
			Msg("Training complete")
	}

	return weights
}

// Predict returns Classify for every row of frame.
func Predict(weights []float64, frame *table.Frame) []float64 {
	out := make([]float64, frame.Len())
	for i, x := range frame.X {
		out[i] = Classify(weights, x)
	}
	return out
}
