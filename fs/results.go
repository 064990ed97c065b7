package fs

import (
	"bytes"
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/pepparse"
)

const (
	// ResultsDir is the directory, relative to the base directory, that
	// result files are written to.
	ResultsDir = "results"

	// TimestampFormat is the layout of the timestamp in result file names.
	TimestampFormat = "2006-01-02_15-04-05"
)

// Ensure CSVSink implements pepparse.Sink at compile time.
var _ pepparse.Sink = (*CSVSink)(nil)

// CSVSink writes each result set to results/<mode>_<timestamp>.csv.
type CSVSink struct {
	baseDir string
	logger  *slog.Logger

	// Now returns the time used in file names. Defaults to time.Now.
	Now func() time.Time
}

// NewCSVSink creates a new CSVSink rooted at baseDir.
func NewCSVSink(baseDir string, logger *slog.Logger) *CSVSink {
	return &CSVSink{baseDir: baseDir, logger: logger, Now: time.Now}
}

// Path returns the file a result set of mode written at t is stored in.
func (s *CSVSink) Path(mode pepparse.Mode, t time.Time) string {
	name := string(mode) + "_" + t.Format(TimestampFormat) + ".csv"
	return filepath.Join(s.baseDir, ResultsDir, name)
}

// WriteResults writes the header and rows of results as UTF-8 CSV with
// "\n" line endings.
func (s *CSVSink) WriteResults(ctx context.Context, mode pepparse.Mode, results *pepparse.ResultSet) error {
	if err := results.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(toRecords(results.All())); err != nil {
		return pepparse.Errorf(pepparse.EINTERNAL, "encoding results: %v", err)
	}

	path := s.Path(mode, s.Now())
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("results saved", "path", path, "rows", results.Len())
	}
	return nil
}

func toRecords(rows []pepparse.Row) [][]string {
	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = row
	}
	return records
}
