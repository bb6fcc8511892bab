package stats

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/FlavioCFOliveira/GoFraud/internal/table"
)

// DefaultThreshold is the minimum |correlation| a feature needs to be kept.
const DefaultThreshold = 0.5

type selection struct {
	threshold   float64
	label       float64
	conditioned bool
}

// SelectOption configures Select.
type SelectOption func(*selection)

// WithThreshold sets the |correlation| cutoff. Features must exceed it.
func WithThreshold(threshold float64) SelectOption {
	return func(s *selection) {
		s.threshold = threshold
	}
}

// ConditionedOn correlates using only rows whose label equals label.
// See GivenLabel.
func ConditionedOn(label float64) SelectOption {
	return func(s *selection) {
		s.label = label
		s.conditioned = true
	}
}

// Select returns the features of frame whose Pearson correlation with the
// label exceeds the threshold in absolute value, in feature order, followed by
// labelName as the last element.
func Select(frame *table.Frame, labelName string, opts ...SelectOption) []string {
	s := &selection{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(s)
	}

	var corrOpts []CorrelationOption
	if s.conditioned {
		corrOpts = append(corrOpts, GivenLabel(frame.Y, s.label))
	}

	selected := make([]string, 0, len(frame.Features)+1)
	for j, name := range frame.Features {
		corr := Pearson(frame.Column(j), frame.Y, corrOpts...)
		keep := math.Abs(corr) > s.threshold
		log.Debug().Str("feature", name).Float64("correlation", corr).Bool("selected", keep).Msg("Feature correlation")
		if keep {
			selected = append(selected, name)
		}
	}

	return append(selected, labelName)
}
