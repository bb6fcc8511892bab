// Package synth generates card-transaction datasets shaped like the public
// creditcard benchmark: an increasing Time column, anonymised V1..Vk
// components, a transaction Amount and a binary Class label.
//
// Fraud rows are shifted away from the origin in V-space. A share of clean
// "bait" rows is shifted the same way so that a perfect score is out of reach.
package synth

import (
	"encoding/csv"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/FlavioCFOliveira/GoFraud/internal/table"
)

const (
	// TimeColumn is the elapsed-seconds column, usually excluded at load.
	TimeColumn = "Time"
	// AmountColumn is the transaction amount, usually normalized.
	AmountColumn = "Amount"
	// ClassColumn is the label: 1 for fraud, 0 otherwise.
	ClassColumn = "Class"
)

type generator struct {
	rows      int
	features  int
	fraudRate float64
	baitRate  float64
	shift     float64
}

// Option configures Generate.
type Option func(*generator)

// WithRows sets the number of generated rows (default 1000).
func WithRows(n int) Option {
	return func(g *generator) {
		g.rows = n
	}
}

// WithFeatures sets the number of V columns (default 4).
func WithFeatures(k int) Option {
	return func(g *generator) {
		g.features = k
	}
}

// WithFraudRate sets the share of fraud rows (default 0.02).
func WithFraudRate(rate float64) Option {
	return func(g *generator) {
		g.fraudRate = rate
	}
}

// WithBaitRate sets the share of clean rows that look like fraud (default 0.03).
func WithBaitRate(rate float64) Option {
	return func(g *generator) {
		g.baitRate = rate
	}
}

// WithShift sets the mean of the V components of fraud and bait rows
// (default 20). Other rows are standard normal.
func WithShift(shift float64) Option {
	return func(g *generator) {
		g.shift = shift
	}
}

// Columns returns the header for k feature columns.
func Columns(k int) []string {
	cols := make([]string, 0, k+3)
	cols = append(cols, TimeColumn)
	for i := 1; i <= k; i++ {
		cols = append(cols, "V"+strconv.Itoa(i))
	}
	return append(cols, AmountColumn, ClassColumn)
}

// Generate builds a dataset. Fraud and bait counts are the rates applied to
// the row count, rounded, so a given configuration always yields the same
// class balance; only their positions and values depend on rng.
func Generate(rng *rand.Rand, opts ...Option) *table.Dataset {
	g := &generator{
		rows:      1000,
		features:  4,
		fraudRate: 0.02,
		baitRate:  0.03,
		shift:     20,
	}
	for _, opt := range opts {
		opt(g)
	}

	frauds := min(int(math.Round(g.fraudRate*float64(g.rows))), g.rows)
	baits := min(int(math.Round(g.baitRate*float64(g.rows))), g.rows-frauds)

	// Positions in a random permutation decide each row's role.
	role := rng.Perm(g.rows)

	columns := Columns(g.features)
	records := make([]table.Record, g.rows)
	elapsed := 0.0
	for i := range records {
		fraud := role[i] < frauds
		shifted := role[i] < frauds+baits

		rec := make(table.Record, len(columns))
		elapsed += rng.Float64() * 10
		rec[TimeColumn] = math.Floor(elapsed)
		for j := 1; j <= g.features; j++ {
			v := rng.NormFloat64()
			if shifted {
				v += g.shift
			}
			rec["V"+strconv.Itoa(j)] = v
		}
		rec[AmountColumn] = 1 + rng.Float64()*499
		if fraud {
			rec[ClassColumn] = 1
		} else {
			rec[ClassColumn] = 0
		}
		records[i] = rec
	}

	return &table.Dataset{Columns: columns, Records: records}
}

// WriteCSV writes the dataset as comma separated text with a header line.
func WriteCSV(w io.Writer, d *table.Dataset) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(d.Columns); err != nil {
		return errors.Wrap(err, "failed to write header")
	}

	row := make([]string, len(d.Columns))
	for i, rec := range d.Records {
		for j, name := range d.Columns {
			switch name {
			case TimeColumn, ClassColumn:
				row[j] = strconv.FormatFloat(rec[name], 'f', 0, 64)
			case AmountColumn:
				row[j] = strconv.FormatFloat(rec[name], 'f', 2, 64)
			default:
				row[j] = strconv.FormatFloat(rec[name], 'f', 6, 64)
			}
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "failed to write row %d", i)
		}
	}

	writer.Flush()
	return errors.WithStack(writer.Error())
}

// WriteFile writes the dataset to path, replacing any existing file.
func WriteFile(path string, d *table.Dataset) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer file.Close()

	if err := WriteCSV(file, d); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return errors.WithStack(file.Close())
}
