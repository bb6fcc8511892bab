package table

import (
	"bufio"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// plainTextExt marks tab-delimited input; everything else is comma-delimited.
const plainTextExt = ".txt"

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// LoadReport counts what a load read and what it skipped.
type LoadReport struct {
	Files       int
	FailedFiles int
	Rows        int
	BadRecords  int
	BadFields   int
}

func (r *LoadReport) add(o LoadReport) {
	r.Files += o.Files
	r.FailedFiles += o.FailedFiles
	r.Rows += o.Rows
	r.BadRecords += o.BadRecords
	r.BadFields += o.BadFields
}

// Loader reads delimited numeric files into a Dataset.
type Loader struct {
	excludes map[string]struct{}
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithExcludes drops the named columns at load time. They never enter the
// column index.
func WithExcludes(names ...string) LoaderOption {
	return func(l *Loader) {
		for _, name := range names {
			l.excludes[name] = struct{}{}
		}
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{excludes: make(map[string]struct{})}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Delimiter returns the field separator used for path.
func Delimiter(path string) rune {
	if strings.HasSuffix(path, plainTextExt) {
		return '\t'
	}
	return ','
}

// Load reads every path and concatenates the rows in order.
//
// Nothing here aborts the whole load: a file that cannot be opened is logged
// and contributes no rows. Each file's header is parsed for its own rows and
// the last header read becomes the column index.
func (l *Loader) Load(paths ...string) (*Dataset, LoadReport) {
	ds := &Dataset{}
	var report LoadReport

	for _, path := range paths {
		log.Info().Str("file", path).Msg("Loading")

		part, r, err := l.loadFile(path)
		report.add(r)
		if err != nil {
			report.FailedFiles++
			log.Error().Stack().Err(err).Str("file", path).Msg("Skipping unreadable file")
			continue
		}

		if part.Columns != nil {
			if ds.Columns != nil && !slices.Equal(ds.Columns, part.Columns) {
				log.Warn().Str("file", path).Strs("columns", part.Columns).Strs("previous", ds.Columns).
					Msg("Header differs from previous file, using the latest")
			}
			ds.Columns = part.Columns
		}
		ds.Records = append(ds.Records, part.Records...)
	}

	return ds, report
}

func (l *Loader) loadFile(path string) (*Dataset, LoadReport, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, LoadReport{}, errors.Wrapf(err, "failed to open %s", path)
	}
	defer file.Close()

	ds, report := l.Read(file, Delimiter(path))
	report.Files = 1
	return ds, report, nil
}

// Read parses one delimited stream. The first non-empty line is the header.
//
// Lines are split on delim as they are; quoting does not protect a delimiter.
// Each token then loses exactly one matching layer of double or single quotes.
func (l *Loader) Read(r io.Reader, delim rune) (*Dataset, LoadReport) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	sep := string(delim)

	ds := &Dataset{}
	var report LoadReport

	var header []string
	var excluded []bool

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if text == "" {
			continue
		}
		fields := strings.Split(text, sep)

		if header == nil {
			header, excluded = l.parseHeader(fields)
			ds.Columns = make([]string, 0, len(header))
			for i, name := range header {
				if !excluded[i] {
					ds.Columns = append(ds.Columns, name)
				}
			}
			continue
		}

		if len(fields) != len(header) {
			report.BadRecords++
			log.Warn().Int("line", line).Int("fields", len(fields)).Int("expected", len(header)).
				Msg("Bad Record")
			continue
		}

		rec := make(Record, len(ds.Columns))
		for i, token := range fields {
			if excluded[i] {
				continue
			}
			value, err := strconv.ParseFloat(strings.TrimSpace(unquote(token)), 64)
			if err != nil {
				report.BadFields++
				log.Warn().Err(err).Int("line", line).Str("column", header[i]).Msg("Unparsable value")
				continue
			}
			rec[header[i]] = value
		}

		ds.Records = append(ds.Records, rec)
		report.Rows++
	}
	if err := scanner.Err(); err != nil {
		log.Error().Stack().Err(errors.WithStack(err)).Int("line", line).Msg("Read aborted")
	}

	return ds, report
}

func (l *Loader) parseHeader(fields []string) (names []string, excluded []bool) {
	names = make([]string, len(fields))
	excluded = make([]bool, len(fields))
	for i, field := range fields {
		names[i] = unquote(field)
		_, excluded[i] = l.excludes[names[i]]
	}
	return names, excluded
}

// unquote strips one matching layer of double or single quotes.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
