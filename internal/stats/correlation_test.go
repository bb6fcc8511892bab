package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FlavioCFOliveira/GoFraud/internal/table"
)

func TestPearson(t *testing.T) {
	label := []float64{0, 0, 1, 1, 0, 1}

	tests := []struct {
		name string
		x    []float64
		want float64
	}{
		{"identical to label", []float64{0, 0, 1, 1, 0, 1}, 1},
		{"constant offset of label", []float64{5, 5, 6, 6, 5, 6}, 1},
		{"inverse of label", []float64{1, 1, 0, 0, 1, 0}, -1},
		{"constant column is clamped, not NaN", []float64{3, 3, 3, 3, 3, 3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pearson(tt.x, label)
			assert.False(t, math.IsNaN(got))
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPearsonBothConstant(t *testing.T) {
	// Both denominators clamp to 1 and the numerator is 6·12 − 12·6 = 0.
	got := Pearson([]float64{2, 2, 2, 2, 2, 2}, []float64{1, 1, 1, 1, 1, 1})
	assert.Equal(t, 0.0, got)
}

func TestPearsonGivenLabel(t *testing.T) {
	x := []float64{0, 2, 0, 5}
	y := []float64{1, 1, 0, 0}

	// Rows 0 and 1 contribute; x[0] == 0 counts as -1; n stays 4.
	// Σx=1 Σy=2 Σxy=1 Σx²=5 Σy²=2 → (4-2) / (√19 · 2)
	got := Pearson(x, y, GivenLabel(y, 1))

	assert.InDelta(t, 1/math.Sqrt(19), got, 1e-12)
}

func TestPearsonGivenLabelRemapsLabelZeros(t *testing.T) {
	x := []float64{1, 0, 3, 0}
	y := []float64{0, 0, 1, 1}

	// Rows 0 and 1: xs = [1, -1], ys = [-1, -1].
	// Σx=0 Σy=-2 Σxy=0 Σx²=2 Σy²=2 → 0 / (√8 · √(8-4))
	got := Pearson(x, y, GivenLabel(y, 0))

	assert.Equal(t, 0.0, got)
}

func TestSelect(t *testing.T) {
	frame := &table.Frame{
		Features: []string{"V1", "V2", "V3", "V4"},
		X: [][]float64{
			{0, 7, 1, 0.3},
			{0, 7, 1, 0.1},
			{1, 7, 0, 0.2},
			{1, 7, 0, 0.4},
			{0, 7, 1, 0.3},
			{1, 7, 0, 0.1},
		},
		Y: []float64{0, 0, 1, 1, 0, 1},
	}

	got := Select(frame, "Class")
	assert.Equal(t, []string{"V1", "V3", "Class"}, got)

	got = Select(frame, "Class", WithThreshold(1.5))
	assert.Equal(t, []string{"Class"}, got, "label is always last, even alone")
}

func TestSelectConditioned(t *testing.T) {
	frame := &table.Frame{
		Features: []string{"V1"},
		X:        [][]float64{{0}, {2}, {0}, {5}},
		Y:        []float64{1, 1, 0, 0},
	}

	// 1/√19 ≈ 0.229
	assert.Equal(t, []string{"V1", "Class"}, Select(frame, "Class", ConditionedOn(1), WithThreshold(0.2)))
	assert.Equal(t, []string{"Class"}, Select(frame, "Class", ConditionedOn(1), WithThreshold(0.3)))
}
