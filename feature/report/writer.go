package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"bucket-report/feature/inventory"
)

// Supported output formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Header is the first line of the CSV report.
var Header = []string{"Account ID", "Account Aliases", "S3 Bucket Name", "S3 Bucket Region", "Analytics"}

// Writer renders a report.
type Writer interface {
	Write(w io.Writer, r *Report) error
}

// CSVWriter renders the header and one row per bucket.
type CSVWriter struct{}

// Write implements Writer.
func (CSVWriter) Write(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, record := range r.Buckets {
		if err := cw.Write(Row(record)); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", record.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// JSONWriter renders the whole report as indented JSON.
type JSONWriter struct{}

// Write implements Writer.
func (JSONWriter) Write(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode json report: %w", err)
	}
	return nil
}

// Row returns the CSV columns of a record in Header order.
func Row(r inventory.BucketRecord) []string {
	return []string{r.OwnerID, r.AccountAliases, r.Name, r.Region, r.AnalyticsFlag()}
}

// NewWriter returns the writer for the given format.
func NewWriter(format string) (Writer, error) {
	switch format {
	case FormatCSV, "":
		return CSVWriter{}, nil
	case FormatJSON:
		return JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
}

// WriteFile renders the report into path, replacing any existing file.
// A partially written file is removed.
func WriteFile(path, format string, r *Report) (err error) {
	w, err := NewWriter(format)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close report file: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return w.Write(f, r)
}
