package airports

import (
	"route-atlas/core/tabular"
)

// ParseTable converts rows decoded with Columns into airports of the given source.
func ParseTable(rows []tabular.Row, source Source) []Airport {
	out := make([]Airport, 0, len(rows))
	for _, row := range rows {
		a := Airport{Source: source}
		for _, col := range Columns {
			a.set(col, row.Get(col))
		}
		out = append(out, a)
	}
	return out
}

// ReadTable reads an airport table with header row.
func ReadTable(path string, source Source) ([]Airport, error) {
	rows, err := tabular.ReadFile(path, Columns, true)
	if err != nil {
		return nil, err
	}
	return ParseTable(rows, source), nil
}

// ReadOverrides reads the override airport table at path.
func ReadOverrides(path string) ([]Airport, error) {
	return ReadTable(path, SourceOverride)
}
