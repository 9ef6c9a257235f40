package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// ReportFilename is the default report name for a run started at t.
func ReportFilename(t time.Time, ext string) string {
	return fmt.Sprintf("tenancy_report_%s.%s", t.Format("20060102_150405"), ext)
}

// WriteJSON encodes v indented.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// SaveJSONReport writes v to path.
func SaveJSONReport(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	if err := WriteJSON(f, v); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
