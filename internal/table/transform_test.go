package table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func sampleDataset() *Dataset {
	return &Dataset{
		Columns: []string{"V1", "V2", "Amount", "Class"},
		Records: []Record{
			{"V1": 1, "V2": 10, "Amount": 2, "Class": 0},
			{"V1": 2, "V2": 20, "Amount": 3, "Class": 1},
			{"V1": 3, "V2": 30, "Amount": 5, "Class": 0},
		},
	}
}

func TestNormalizeColumnSumsToOne(t *testing.T) {
	ds := sampleDataset()

	out := ds.Normalize("Amount", "V2")

	assert.InDelta(t, 1.0, floats.Sum(out.Values("Amount")), 1e-12)
	assert.InDelta(t, 1.0, floats.Sum(out.Values("V2")), 1e-12)
	assert.InDelta(t, 0.2, out.Records[0]["Amount"], 1e-12)
	assert.Equal(t, 1.0, out.Records[0]["V1"], "untouched column")
}

func TestNormalizeReturnsNewDataset(t *testing.T) {
	ds := sampleDataset()

	_ = ds.Normalize("Amount")

	assert.Equal(t, 2.0, ds.Records[0]["Amount"], "input must not be mutated")
}

func TestNormalizeSkipsUnknownAndMissing(t *testing.T) {
	ds := sampleDataset()
	delete(ds.Records[1], "Amount")

	out := ds.Normalize("Amount", "Nope")

	_, ok := out.Records[1]["Amount"]
	assert.False(t, ok)
	assert.InDelta(t, 2.0/7.0, out.Records[0]["Amount"], 1e-12)
}

func TestNormalizeZeroSum(t *testing.T) {
	ds := &Dataset{
		Columns: []string{"Amount", "Class"},
		Records: []Record{{"Amount": 0, "Class": 0}},
	}

	out := ds.Normalize("Amount")

	assert.True(t, math.IsNaN(out.Records[0]["Amount"]))
}

func TestKeep(t *testing.T) {
	ds := sampleDataset()

	out := ds.Keep("V2", "Class", "Missing")

	assert.Equal(t, []string{"V2", "Class"}, out.Columns)
	for i, rec := range out.Records {
		assert.Len(t, rec, 2)
		assert.Equal(t, ds.Records[i]["V2"], rec["V2"])
	}
	assert.Len(t, ds.Records[0], 4, "input must not be mutated")
}

func TestFlatten(t *testing.T) {
	ds := sampleDataset()
	delete(ds.Records[2], "V1")

	frame, err := ds.Flatten("Class")
	require.NoError(t, err)

	assert.Equal(t, []string{"V1", "V2", "Amount"}, frame.Features)
	assert.Equal(t, []float64{0, 1, 0}, frame.Y)
	assert.Equal(t, []float64{2, 20, 3}, frame.X[1])
	assert.Equal(t, []float64{0, 30, 5}, frame.X[2], "missing value reads as zero")
	assert.Equal(t, []float64{10, 20, 30}, frame.Column(1))
	assert.Equal(t, 3, frame.Len())
}

func TestFlattenMissingLabel(t *testing.T) {
	_, err := sampleDataset().Flatten("Fraud")
	assert.Error(t, err)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 2, sampleDataset().Count("Class", 0))
	assert.Equal(t, 1, sampleDataset().Count("Class", 1))
}
