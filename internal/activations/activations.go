// Package activations provides the squashing functions used by the classifier.
package activations

import "math"

// Activation maps a logit to an output.
type Activation interface {
	// Activate computes f(x)
	Activate(x float64) float64
}

// Sigmoid is the logistic function.
type Sigmoid struct{}

// sigmoid saturates to 0 or 1 for extreme inputs: math.Exp overflows to +Inf
// and 1/(1+Inf) is 0, never a panic.
func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Activate computes 1 / (1 + e^-x)
func (s Sigmoid) Activate(x float64) float64 {
	return sigmoid(x)
}
