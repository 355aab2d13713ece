package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// StatsFile is the name of the CSV file inside the output directory.
const StatsFile = "stats.csv"

// Writer appends Records to <dir>/stats.csv. A nil Writer discards records.
type Writer struct {
	dir           string
	file          *os.File
	headerWritten bool
}

// NewWriter creates the output directory and stats file. Returns nil if dir
// is empty (output disabled).
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, StatsFile))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", StatsFile, err)
	}
	return &Writer{dir: dir, file: f}, nil
}

// Write appends one record, emitting the header on the first call.
func (w *Writer) Write(r Record) error {
	if w == nil {
		return nil
	}
	records := []Record{r}
	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.file); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w.file); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (w *Writer) Dir() string {
	if w == nil {
		return ""
	}
	return w.dir
}

// Close closes the stats file.
func (w *Writer) Close() error {
	if w == nil || w.file == nil {
		return nil
	}
	return w.file.Close()
}
