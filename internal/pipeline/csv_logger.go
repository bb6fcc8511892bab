package pipeline

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// CSVLogger writes one row per fold to a CSV file.
type CSVLogger struct {
	BaseCallback
	Filename string
	Append   bool

	file   *os.File
	writer *csv.Writer
	start  time.Time
}

// NewCSVLogger creates a new CSVLogger.
func NewCSVLogger(filename string, append bool) *CSVLogger {
	return &CSVLogger{
		Filename: filename,
		Append:   append,
	}
}

func (c *CSVLogger) OnRunBegin(r *Result) {
	mode := os.O_CREATE | os.O_WRONLY
	if c.Append {
		mode |= os.O_APPEND
	} else {
		mode |= os.O_TRUNC
	}

	file, err := os.OpenFile(c.Filename, mode, 0644)
	if err != nil {
		log.Error().Stack().Err(errors.Wrapf(err, "failed to open %s", c.Filename)).Msg("CSV report disabled")
		return
	}
	c.file = file
	c.writer = csv.NewWriter(file)
	c.start = time.Now()

	// Write header if not appending or if file is empty
	info, err := file.Stat()
	if err == nil && (info.Size() == 0 || !c.Append) {
		c.write([]string{"set", "fold", "train", "validate", "f1", "best", "time_seconds"})
	}
}

func (c *CSVLogger) OnFoldEnd(fold FoldResult) {
	if c.writer == nil {
		return
	}

	c.write([]string{
		strconv.Itoa(fold.Set),
		strconv.Itoa(fold.Fold),
		strconv.Itoa(fold.Train),
		strconv.Itoa(fold.Validate),
		strconv.FormatFloat(fold.Report.F1, 'f', 6, 64),
		strconv.FormatBool(fold.Best),
		strconv.FormatFloat(time.Since(c.start).Seconds(), 'f', 2, 64),
	})
}

func (c *CSVLogger) OnRunEnd(r *Result) {
	if c.file != nil {
		c.writer.Flush()
		if err := c.file.Close(); err != nil {
			log.Error().Err(err).Str("file", c.Filename).Msg("Failed to close CSV report")
		}
		c.file = nil
		c.writer = nil
	}
}

func (c *CSVLogger) write(record []string) {
	if err := c.writer.Write(record); err != nil {
		log.Error().Err(err).Str("file", c.Filename).Msg("Failed to write CSV record")
		return
	}
	c.writer.Flush()
}
