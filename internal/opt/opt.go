// Package opt provides optimization algorithms.
package opt

import "gonum.org/v1/gonum/floats"

// Optimizer updates model parameters in place.
type Optimizer interface {
	// Step moves params along direction: params[i] += (lr * scale) * direction[i]
	Step(params, direction []float64, scale float64)
}

// SGD (Stochastic Gradient Descent) optimizer.
type SGD struct {
	LearningRate float64
}

// Step updates params in-place: params[i] += (lr * scale) * direction[i].
// The step size lr*scale is formed first and then applied to each element.
// params and direction must have the same length.
//
// For logistic regression pass the input row as direction and (label -
// prediction) as scale.
func (s SGD) Step(params, direction []float64, scale float64) {
	floats.AddScaled(params, s.LearningRate*scale, direction)
}
