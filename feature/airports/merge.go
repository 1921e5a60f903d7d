package airports

import "route-atlas/core/reconcile"

// Table is the merged airport table. Records keep their insertion order.
type Table struct {
	records []Airport
	first   map[string]int
}

// Merge concatenates registry, lookup and override airports, in that order.
func Merge(primary, backfilled, overrides []Airport) *Table {
	t := &Table{
		records: make([]Airport, 0, len(primary)+len(backfilled)+len(overrides)),
		first:   make(map[string]int),
	}
	t.Append(primary...)
	t.Append(backfilled...)
	t.Append(overrides...)
	return t
}

// Append adds records at the end of the table.
func (t *Table) Append(records ...Airport) {
	for _, a := range records {
		if _, seen := t.first[a.IATA3]; !seen {
			t.first[a.IATA3] = len(t.records)
		}
		t.records = append(t.records, a)
	}
}

// Find returns the first record in table order whose code is code.
//
// First match wins: an override for a code already supplied by the registry
// or a lookup is kept in the table but never returned here.
func (t *Table) Find(code string) (Airport, bool) {
	i, ok := t.first[code]
	if !ok {
		return Airport{}, false
	}
	return t.records[i], true
}

// Len returns the number of records, duplicates included.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns the records in table order.
func (t *Table) Records() []Airport {
	return t.records
}

// Rows returns every record's values in Columns order.
func (t *Table) Rows() [][]string {
	rows := make([][]string, len(t.records))
	for i, a := range t.records {
		rows[i] = a.Values()
	}
	return rows
}

// Codes returns the set of codes present in the table.
func (t *Table) Codes() reconcile.Set {
	s := make(reconcile.Set, len(t.first))
	for code := range t.first {
		s.Add(code)
	}
	return s
}

// Sources counts records by provenance.
func (t *Table) Sources() map[Source]int {
	counts := make(map[Source]int)
	for _, a := range t.records {
		counts[a.Source]++
	}
	return counts
}
