// Package table holds labeled numeric records loaded from delimited text and
// the transforms applied to them before modeling.
package table

import "slices"

// Record is one transaction: column name to value.
// A column whose value failed to parse is absent from the record.
type Record map[string]float64

// Clone returns a copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Dataset is an ordered collection of records sharing one column index.
//
// Columns fixes the position of every column name (label included, excluded
// columns removed). It is never mutated; transforms return a new Dataset.
type Dataset struct {
	Columns []string
	Records []Record
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// HasColumn reports whether name is part of the column index.
func (d *Dataset) HasColumn(name string) bool {
	return slices.Contains(d.Columns, name)
}

// WithRecords returns a dataset over records that shares this column index.
func (d *Dataset) WithRecords(records []Record) *Dataset {
	return &Dataset{Columns: d.Columns, Records: records}
}

// Values returns the values present for name, in record order.
func (d *Dataset) Values(name string) []float64 {
	values := make([]float64, 0, len(d.Records))
	for _, rec := range d.Records {
		if v, ok := rec[name]; ok {
			values = append(values, v)
		}
	}
	return values
}

// Count returns how many records have label equal to value.
func (d *Dataset) Count(label string, value float64) int {
	n := 0
	for _, rec := range d.Records {
		if rec[label] == value {
			n++
		}
	}
	return n
}
