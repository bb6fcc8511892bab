package table

import (
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
)

// Normalize returns a dataset where each value of the named columns is divided
// by that column's sum over the whole dataset.
//
// A column sum of zero is not guarded: the result holds ±Inf or NaN.
func (d *Dataset) Normalize(columns ...string) *Dataset {
	sums := make(map[string]float64, len(columns))
	for _, name := range columns {
		if !d.HasColumn(name) {
			log.Warn().Str("column", name).Msg("Normalize: column not in dataset, skipping")
			continue
		}
		sum := floats.Sum(d.Values(name))
		if sum == 0 {
			log.Warn().Str("column", name).Msg("Normalize: column sums to zero")
		}
		sums[name] = sum
	}

	out := &Dataset{Columns: d.Columns, Records: make([]Record, len(d.Records))}
	for i, rec := range d.Records {
		cp := rec.Clone()
		for name, sum := range sums {
			if v, ok := cp[name]; ok {
				cp[name] = v / sum
			}
		}
		out.Records[i] = cp
	}
	return out
}

// Keep returns a dataset reduced to the named columns. The column index
// becomes columns, in the given order; names unknown to the dataset are dropped.
func (d *Dataset) Keep(columns ...string) *Dataset {
	kept := make([]string, 0, len(columns))
	for _, name := range columns {
		if d.HasColumn(name) {
			kept = append(kept, name)
		} else {
			log.Warn().Str("column", name).Msg("Keep: column not in dataset, dropping")
		}
	}

	out := &Dataset{Columns: kept, Records: make([]Record, len(d.Records))}
	for i, rec := range d.Records {
		cp := make(Record, len(kept))
		for _, name := range kept {
			if v, ok := rec[name]; ok {
				cp[name] = v
			}
		}
		out.Records[i] = cp
	}
	return out
}
