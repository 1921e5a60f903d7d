package reconcile

import "sort"

// Set is an unordered collection of keys.
type Set map[string]struct{}

// NewSet returns a set holding keys.
func NewSet(keys ...string) Set {
	s := make(Set, len(keys))
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

// Add inserts key.
func (s Set) Add(key string) {
	s[key] = struct{}{}
}

// Remove deletes key.
func (s Set) Remove(key string) {
	delete(s, key)
}

// Has reports whether key is in the set.
func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of keys.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the keys in ascending order.
func (s Set) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Endpoints is a pair of keys referenced by one record.
type Endpoints struct {
	From string
	To   string
}

// Summary is the outcome of comparing referenced keys with known keys.
type Summary struct {
	// Referenced holds every unique key appearing as either endpoint.
	Referenced Set
	// Known holds the keys the reference dataset can resolve.
	Known Set
	// Gap holds referenced keys that are not known.
	Gap Set
}
