package reports

// group holds the members collected under one key.
type group[K comparable, T any] struct {
	key   K
	items []T
}

// groupBy buckets items by the extracted key, preserving first-seen key
// order. Rank-sensitive reports rely on that order for deterministic
// tie-breaking, so it must not depend on map iteration.
func groupBy[K comparable, T any](items []T, keyOf func(T) K) []group[K, T] {
	index := make(map[K]int, len(items))
	groups := make([]group[K, T], 0, len(items))
	for _, item := range items {
		k := keyOf(item)
		at, ok := index[k]
		if !ok {
			index[k] = len(groups)
			groups = append(groups, group[K, T]{key: k})
			at = len(groups) - 1
		}
		groups[at].items = append(groups[at].items, item)
	}
	return groups
}
