// Package loss provides unit tests for loss functions.
package loss

import (
	"math"
	"testing"
)

// TestBCELossForward tests BCE loss forward pass.
func TestBCELossForward(t *testing.T) {
	bce := BCELoss{}

	tests := []struct {
		name     string
		yPred    []float64
		yTrue    []float64
		expected float64
	}{
		{"Perfect prediction", []float64{0.99, 0.01}, []float64{1.0, 0.0}, 0.01005}, // Close to 0 but not exactly
		{"Uniform distribution", []float64{0.5, 0.5}, []float64{0.5, 0.5}, 0.6931},  // ln(2) ≈ 0.693
		{"Empty batch", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := bce.Forward(tt.yPred, tt.yTrue)
			if math.Abs(result-tt.expected) > 1e-4 {
				t.Errorf("BCELoss.Forward() = %v, want %v", result, tt.expected)
			}
		})
	}
}

// TestBCELossClipsSaturatedPredictions tests that 0/1 predictions stay finite.
func TestBCELossClipsSaturatedPredictions(t *testing.T) {
	bce := BCELoss{}

	result := bce.Forward([]float64{0, 1}, []float64{1, 0})
	if math.IsInf(result, 0) || math.IsNaN(result) {
		t.Errorf("BCELoss.Forward() = %v, want finite value", result)
	}
}

// TestBCELossLengthMismatchPanics tests the length guard.
func TestBCELossLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on length mismatch")
		}
	}()
	BCELoss{}.Forward([]float64{0.5}, []float64{1, 0})
}
