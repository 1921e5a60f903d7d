package tabular

import (
	"fmt"
	"os"
	"strings"
)

// Encode renders records as comma-joined lines in the order given by columns.
// Each record must hold one value per column. No quoting is applied.
func Encode(columns []string, records [][]string, hasHeader bool) string {
	lines := make([]string, 0, len(records)+1)
	if hasHeader {
		lines = append(lines, strings.Join(columns, ","))
	}
	for _, rec := range records {
		lines = append(lines, strings.Join(rec, ","))
	}
	return strings.Join(lines, "\n")
}

// WriteFile encodes records and writes them to path, replacing any existing file.
func WriteFile(path string, columns []string, records [][]string, hasHeader bool) error {
	if err := os.WriteFile(path, []byte(Encode(columns, records, hasHeader)), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
