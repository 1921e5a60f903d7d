package airports

import (
	"route-atlas/core/reconcile"
	"route-atlas/core/tabular"
)

// SplitRegistry wraps decoded registry rows and separates those with a usable
// IATA code from the codeless ones.
func SplitRegistry(rows []tabular.Row) (usable, codeless []RegistryRow) {
	wrapped := make([]RegistryRow, len(rows))
	for i, row := range rows {
		wrapped[i] = NewRegistryRow(row)
	}
	return reconcile.Partition(wrapped, RegistryRow.IsCodeless)
}

// KnownCodes returns the IATA codes of usable registry rows.
func KnownCodes(usable []RegistryRow) reconcile.Set {
	return reconcile.KnownKeys(usable, RegistryRow.IATA)
}

// FromRegistry maps usable registry rows onto the output shape.
func FromRegistry(usable []RegistryRow) []Airport {
	out := make([]Airport, len(usable))
	for i, r := range usable {
		out[i] = r.Airport()
	}
	return out
}
