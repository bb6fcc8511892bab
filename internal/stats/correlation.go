// Package stats ranks features by their linear association with the label.
package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

type correlation struct {
	labels      []float64
	label       float64
	conditioned bool
}

// CorrelationOption configures Pearson.
type CorrelationOption func(*correlation)

// GivenLabel restricts the sums to rows where labels[i] == label. Contributing
// x and y values that are exactly 0 are counted as -1, so a 0/1 feature is
// read as ±1 within the class.
func GivenLabel(labels []float64, label float64) CorrelationOption {
	return func(c *correlation) {
		c.labels = labels
		c.label = label
		c.conditioned = true
	}
}

// Pearson returns the Pearson correlation coefficient of x against y:
//
//	(nΣxy − ΣxΣy) / (√(nΣx²−(Σx)²) · √(nΣy²−(Σy)²))
//
// n is always len(x), also when conditioned on a label. A denominator factor
// that evaluates to zero is replaced by 1, so a constant column yields the
// bare numerator instead of a division by zero.
func Pearson(x, y []float64, opts ...CorrelationOption) float64 {
	c := &correlation{}
	for _, opt := range opts {
		opt(c)
	}

	xs, ys := x, y
	if c.conditioned {
		xs = make([]float64, 0, len(x))
		ys = make([]float64, 0, len(y))
		for i := range x {
			if c.labels[i] != c.label {
				continue
			}
			xs = append(xs, signed(x[i]))
			ys = append(ys, signed(y[i]))
		}
	}

	n := float64(len(x))
	xSum := floats.Sum(xs)
	ySum := floats.Sum(ys)
	xySum := floats.Dot(xs, ys)
	xxSum := floats.Dot(xs, xs)
	yySum := floats.Dot(ys, ys)

	xd := math.Sqrt(n*xxSum - xSum*xSum)
	yd := math.Sqrt(n*yySum - ySum*ySum)
	if xd == 0 {
		xd = 1
	}
	if yd == 0 {
		yd = 1
	}

	return (n*xySum - xSum*ySum) / (xd * yd)
}

func signed(v float64) float64 {
	if v == 0 {
		return -1
	}
	return v
}
