// Package sample partitions rows at random.
//
// Every function draws from the *rand.Rand it is given and nothing else, so a
// fixed seed and a fixed call order reproduce the same partitions.
package sample

import (
	"math/rand/v2"
)

// NewRand returns the generator shared by a whole run. A negative seed yields
// a non-deterministic generator.
func NewRand(seed int64) *rand.Rand {
	if seed < 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// Split walks rows once and sends each row to first when a draw is below
// ratio and first holds fewer than floor(ratio*len(rows))+1 rows; otherwise
// to second. Each row consumes exactly one draw. Relative order is kept.
//
// The sizes are approximate: the cap only stops first from overshooting.
func Split[T any](rng *rand.Rand, rows []T, ratio float64) (first, second []T) {
	limit := int(float64(len(rows))*ratio) + 1

	first = make([]T, 0, min(max(limit, 0), len(rows)))
	second = make([]T, 0, len(rows)-cap(first)+1)

	for _, row := range rows {
		if rng.Float64() < ratio && len(first) < limit {
			first = append(first, row)
		} else {
			second = append(second, row)
		}
	}

	return first, second
}

// Subsample keeps every row whose label differs from target, and keeps rows
// labelled target only when a draw is below rate. Only target rows draw.
func Subsample[T any](rng *rand.Rand, rows []T, label func(T) float64, target, rate float64) []T {
	out := make([]T, 0, len(rows))

	for _, row := range rows {
		if label(row) == target {
			if rng.Float64() < rate {
				out = append(out, row)
			}
			continue
		}
		out = append(out, row)
	}

	return out
}
