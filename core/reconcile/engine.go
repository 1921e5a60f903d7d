package reconcile

// Partition splits items by pred. The first slice holds items that do not match,
// the second holds items that do. Relative order is preserved in both.
func Partition[T any](items []T, pred func(T) bool) (nonMatching, matching []T) {
	for _, item := range items {
		if pred(item) {
			matching = append(matching, item)
		} else {
			nonMatching = append(nonMatching, item)
		}
	}
	return nonMatching, matching
}

// UniqueEndpoints returns every key that appears as either endpoint.
func UniqueEndpoints(pairs []Endpoints) Set {
	s := make(Set)
	for _, p := range pairs {
		s.Add(p.From)
		s.Add(p.To)
	}
	return s
}

// KnownKeys collects the key of every item.
func KnownKeys[T any](items []T, key func(T) string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s.Add(key(item))
	}
	return s
}

// Difference returns the keys of a that are not in b.
func Difference(a, b Set) Set {
	d := make(Set)
	for k := range a {
		if !b.Has(k) {
			d.Add(k)
		}
	}
	return d
}

// Analyze compares the keys referenced by pairs against known.
func Analyze(pairs []Endpoints, known Set) Summary {
	referenced := UniqueEndpoints(pairs)
	return Summary{
		Referenced: referenced,
		Known:      known,
		Gap:        Difference(referenced, known),
	}
}
