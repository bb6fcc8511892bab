// Package loss provides loss functions used to report training progress.
package loss

import "math"

// BCELoss (Binary Cross Entropy) loss.
// Requires predictions to be in range (0, 1).
type BCELoss struct{}

// Forward computes binary cross entropy: -(1/n) * sum(y*log(p) + (1-y)*log(1-p))
// An empty batch has zero loss.
func (b BCELoss) Forward(yPred, yTrue []float64) float64 {
	n := len(yPred)
	if n != len(yTrue) {
		panic("BCELoss: prediction and target must have same length")
	}
	if n == 0 {
		return 0
	}

	const eps = 1e-10
	var sum float64
	for i := 0; i < n; i++ {
		// Clip predictions to avoid log(0)
		pred := yPred[i]
		if pred < eps {
			pred = eps
		}
		if pred > 1-eps {
			pred = 1 - eps
		}
		sum += yTrue[i]*math.Log(pred) + (1.0-yTrue[i])*math.Log(1.0-pred)
	}
	return -sum / float64(n)
}
