package tabular

import (
	"fmt"
	"os"
	"strings"
)

// Row is one decoded record. Values are stored in column order.
type Row struct {
	columns []string
	index   map[string]int
	values  []string
}

// Get returns the value of the named column, or "" when the column is unknown.
func (r Row) Get(column string) string {
	if i, ok := r.index[column]; ok {
		return r.values[i]
	}
	return ""
}

// Values returns the row's values in column order.
func (r Row) Values() []string {
	return r.values
}

// Columns returns the column names the row was decoded with.
func (r Row) Columns() []string {
	return r.columns
}

// Decode parses text into rows whose fields are mapped positionally onto columns.
// Empty lines are skipped. When hasHeader is set the first line is discarded.
//
// The field count of a line is expected to match len(columns); a short line
// leaves its trailing columns empty and surplus fields are ignored.
func Decode(text string, columns []string, hasHeader bool) []Row {
	lines := splitLines(text)
	if hasHeader && len(lines) > 0 {
		lines = lines[1:]
	}

	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c] = i
	}

	rows := make([]Row, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}

		values := make([]string, len(columns))
		for i, field := range SplitLine(line) {
			if i >= len(columns) {
				break
			}
			values[i] = Clean(field)
		}
		rows = append(rows, Row{columns: columns, index: index, values: values})
	}
	return rows
}

// ReadFile decodes the file at path.
func ReadFile(path string, columns []string, hasHeader bool) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Decode(string(data), columns, hasHeader), nil
}

// SplitLine splits a line on the commas that sit outside double-quoted fields,
// that is, on every comma followed by an even number of quote characters.
func SplitLine(line string) []string {
	// quotesAfter[i] is the number of '"' in line[i:].
	quotesAfter := make([]int, len(line)+1)
	for i := len(line) - 1; i >= 0; i-- {
		quotesAfter[i] = quotesAfter[i+1]
		if line[i] == '"' {
			quotesAfter[i]++
		}
	}

	var fields []string
	start := 0
	for i := 0; i < len(line); i++ {
		if line[i] == ',' && quotesAfter[i+1]%2 == 0 {
			fields = append(fields, line[start:i])
			start = i + 1
		}
	}
	return append(fields, line[start:])
}

// Clean strips one leading and one trailing double quote, then removes every comma.
func Clean(field string) string {
	field = strings.TrimPrefix(field, `"`)
	field = strings.TrimSuffix(field, `"`)
	return strings.ReplaceAll(field, ",", "")
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
