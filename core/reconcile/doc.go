// Package reconcile provides the set arithmetic used to line up two datasets
// that reference each other by key.
//
// Route records reference airports by code; the airport registry may lack some
// of those codes or carry rows with no code at all. The package computes:
//   - the unique keys referenced by one dataset (UniqueEndpoints),
//   - the keys the other dataset can satisfy (KnownKeys),
//   - the gap between them (Difference),
//
// and bundles the three in a Summary via Analyze.
//
// Key matching is exact: no case folding or whitespace trimming is applied.
//
// # Usage Example
//
//	usable, codeless := reconcile.Partition(rows, isCodeless)
//	summary := reconcile.Analyze(endpoints, reconcile.KnownKeys(usable, codeOf))
//	for _, code := range summary.Gap.Sorted() {
//	    // fetch code from a secondary source
//	}
package reconcile
