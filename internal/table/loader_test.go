package table

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDelimiter(t *testing.T) {
	assert.Equal(t, '\t', Delimiter("creditcard.txt"))
	assert.Equal(t, ',', Delimiter("creditcard.csv"))
	assert.Equal(t, ',', Delimiter("creditcard.txt.gz"))
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`"Class"`, "Class"},
		{`'Class'`, "Class"},
		{`"Class'`, `"Class'`},
		{`""x""`, `"x"`},
		{`"`, `"`},
		{``, ``},
		{`V1`, `V1`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, unquote(tt.in), "unquote(%q)", tt.in)
	}
}

func TestLoaderRead(t *testing.T) {
	input := strings.Join([]string{
		`"Time","V1","Amount","Class"`,
		`0,1.5,10,0`,
		`1,'2.5',20,1`,
		``,
		`2,abc,30,0`,
		`3,4.5,40`,
		`4,5.5,50,0,99`,
	}, "\n")

	ds, report := NewLoader(WithExcludes("Time")).Read(strings.NewReader(input), ',')

	assert.Equal(t, []string{"V1", "Amount", "Class"}, ds.Columns)
	require.Len(t, ds.Records, 3)
	assert.Equal(t, Record{"V1": 1.5, "Amount": 10, "Class": 0}, ds.Records[0])
	assert.Equal(t, Record{"V1": 2.5, "Amount": 20, "Class": 1}, ds.Records[1])

	// The unparsable field is dropped, the record is kept.
	assert.Equal(t, Record{"Amount": 30, "Class": 0}, ds.Records[2])

	assert.Equal(t, 3, report.Rows)
	assert.Equal(t, 1, report.BadFields)
	assert.Equal(t, 2, report.BadRecords)
}

func TestLoaderReadStripsOneQuoteLayer(t *testing.T) {
	input := "\"'Class'\",'\"V1\"',V2\r\n\"'1'\",2,3\r\n"

	ds, report := NewLoader().Read(strings.NewReader(input), ',')

	assert.Equal(t, []string{"'Class'", `"V1"`, "V2"}, ds.Columns)
	assert.Equal(t, 1, report.BadFields)
	assert.Equal(t, Record{`"V1"`: 2, "V2": 3}, ds.Records[0])
}

func TestLoaderReadQuotesDoNotProtectDelimiter(t *testing.T) {
	input := "V1,Class\n\"1,5\",0\n2,1\n"

	ds, report := NewLoader().Read(strings.NewReader(input), ',')

	assert.Equal(t, 1, report.BadRecords)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, Record{"V1": 2, "Class": 1}, ds.Records[0])
}

func TestLoaderReadTabDelimited(t *testing.T) {
	input := "'a'\t'b'\tClass\n1\t2\t0\n3\t4\t1\n"

	ds, report := NewLoader().Read(strings.NewReader(input), '\t')

	assert.Equal(t, []string{"a", "b", "Class"}, ds.Columns)
	assert.Equal(t, 2, report.Rows)
	assert.Equal(t, Record{"a": 3, "b": 4, "Class": 1}, ds.Records[1])
}

func TestLoaderLoadFiles(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "part1.csv", "Time,V1,Class\n0,1,0\n1,2,1\n")
	txtPath := writeFile(t, dir, "part2.txt", "Time\tV1\tClass\n2\t3\t0\n")
	missing := filepath.Join(dir, "missing.csv")

	ds, report := NewLoader(WithExcludes("Time")).Load(csvPath, missing, txtPath)

	assert.Equal(t, []string{"V1", "Class"}, ds.Columns)
	require.Equal(t, 3, ds.Len())
	assert.Equal(t, 3.0, ds.Records[2]["V1"])

	assert.Equal(t, 2, report.Files)
	assert.Equal(t, 1, report.FailedFiles)
	assert.Equal(t, 3, report.Rows)
}

func TestLoaderLastHeaderWins(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.csv", "V1,Class\n1,0\n")
	second := writeFile(t, dir, "b.csv", "V2,Class\n2,1\n")

	ds, _ := NewLoader().Load(first, second)

	assert.Equal(t, []string{"V2", "Class"}, ds.Columns)
	assert.Equal(t, Record{"V1": 1, "Class": 0}, ds.Records[0])
	assert.Equal(t, Record{"V2": 2, "Class": 1}, ds.Records[1])
}

func TestLoaderNoFiles(t *testing.T) {
	ds, report := NewLoader().Load(filepath.Join(t.TempDir(), "nope.csv"))

	assert.Equal(t, 0, ds.Len())
	assert.Nil(t, ds.Columns)
	assert.Equal(t, 1, report.FailedFiles)
}
