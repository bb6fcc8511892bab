// Package metrics scores a trained weight vector against labelled rows.
package metrics

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/FlavioCFOliveira/GoFraud/internal/logistic"
	"github.com/FlavioCFOliveira/GoFraud/internal/table"
)

// DefaultThreshold is the probability a prediction must exceed to count as
// fraud. It is deliberately strict because fraud is rare.
const DefaultThreshold = 0.998

// fraud is the label value of the positive class.
const fraud = 1.0

// Confusion is the 2x2 confusion matrix of one evaluation.
type Confusion struct {
	TruePositive  float64 // fraud predicted fraud
	FalseNegative float64 // fraud predicted clean
	FalsePositive float64 // clean predicted fraud
	TrueNegative  float64 // clean predicted clean
}

// String formats the matrix as [[TP, FN], [FP, TN]].
func (c Confusion) String() string {
	return fmt.Sprintf("[[%.1f, %.1f], [%.1f, %.1f]]",
		c.TruePositive, c.FalseNegative, c.FalsePositive, c.TrueNegative)
}

// Report holds the confusion matrix and the metrics derived from it.
// Undefined ratios (for example precision with no positive predictions) are
// NaN and propagate into F1.
type Report struct {
	Confusion Confusion
	Count     int
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
}

// Print writes the matrix and the metrics as percentages.
func (r Report) Print(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, r.Confusion)
	fmt.Fprintf(w, "Accuracy  : %.1f %%\n", r.Accuracy*100)
	fmt.Fprintf(w, "Precision : %.1f %%\n", r.Precision*100)
	fmt.Fprintf(w, "Recall    : %.1f %%\n", r.Recall*100)
	fmt.Fprintf(w, "F1        : %.1f %%\n", r.F1*100)
}

type evaluation struct {
	threshold float64
	label     float64
	filtered  bool
	verbose   io.Writer
}

// Option configures Evaluate.
type Option func(*evaluation)

// WithThreshold sets the decision threshold.
func WithThreshold(threshold float64) Option {
	return func(e *evaluation) {
		e.threshold = threshold
	}
}

// ForLabel only evaluates rows whose true label equals label.
func ForLabel(label float64) Option {
	return func(e *evaluation) {
		e.label = label
		e.filtered = true
	}
}

// Verbose prints the report to w once computed.
func Verbose(w io.Writer) Option {
	return func(e *evaluation) {
		e.verbose = w
	}
}

// Evaluate classifies every row of frame with weights and builds a Report.
// A row is predicted fraud when its probability is strictly above the
// threshold.
func Evaluate(frame *table.Frame, weights []float64, opts ...Option) (Report, error) {
	e := &evaluation{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(e)
	}

	if len(weights) != len(frame.Features) {
		return Report{}, errors.Errorf("weights have %d entries, frame has %d features", len(weights), len(frame.Features))
	}

	var c Confusion
	count := 0
	for i, x := range frame.X {
		label := frame.Y[i]
		if e.filtered && label != e.label {
			continue
		}

		positive := logistic.Classify(weights, x) > e.threshold
		switch {
		case positive && label == fraud:
			c.TruePositive++
		case positive:
			c.FalsePositive++
		case label == fraud:
			c.FalseNegative++
		default:
			c.TrueNegative++
		}
		count++
	}

	report := FromConfusion(c)
	report.Count = count

	if e.verbose != nil {
		report.Print(e.verbose)
	}

	return report, nil
}

// FromConfusion derives accuracy, precision, recall and F1 from c.
func FromConfusion(c Confusion) Report {
	precision := c.TruePositive / (c.TruePositive + c.FalsePositive)
	recall := c.TruePositive / (c.TruePositive + c.FalseNegative)

	return Report{
		Confusion: c,
		Count:     int(c.TruePositive + c.FalseNegative + c.FalsePositive + c.TrueNegative),
		Accuracy:  (c.TruePositive + c.TrueNegative) / (c.TruePositive + c.FalseNegative + c.FalsePositive + c.TrueNegative),
		Precision: precision,
		Recall:    recall,
		F1:        2 * precision * recall / (precision + recall),
	}
}
