package table

import "github.com/pkg/errors"

// Frame is the positional view of a dataset used for numeric work.
// X[i][j] is the value of Features[j] in row i; Y[i] is the row's label.
type Frame struct {
	Features []string
	X        [][]float64
	Y        []float64
}

// Flatten lays the dataset out row-major against its column index.
// Features keep column order with the label removed. A value missing from a
// record reads as 0.
func (d *Dataset) Flatten(label string) (*Frame, error) {
	if !d.HasColumn(label) {
		return nil, errors.Errorf("label column %q not in dataset", label)
	}

	features := make([]string, 0, len(d.Columns)-1)
	for _, name := range d.Columns {
		if name != label {
			features = append(features, name)
		}
	}

	frame := &Frame{
		Features: features,
		X:        make([][]float64, len(d.Records)),
		Y:        make([]float64, len(d.Records)),
	}
	for i, rec := range d.Records {
		row := make([]float64, len(features))
		for j, name := range features {
			row[j] = rec[name]
		}
		frame.X[i] = row
		frame.Y[i] = rec[label]
	}
	return frame, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.Y)
}

// Column returns a copy of feature j across all rows.
func (f *Frame) Column(j int) []float64 {
	col := make([]float64, len(f.X))
	for i, row := range f.X {
		col[i] = row[j]
	}
	return col
}
