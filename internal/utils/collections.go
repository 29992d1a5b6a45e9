package utils

// Unique returns values with duplicates and zero values removed, preserving
// first-seen order.
func Unique[T comparable](values []T) []T {
	var zero T
	seen := make(map[T]struct{}, len(values))
	out := make([]T, 0, len(values))
	for _, v := range values {
		if v == zero {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// UniqueBy returns items deduplicated by key, keeping the first item seen for
// each key and preserving input order.
func UniqueBy[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out
}

// GroupBy buckets items by key. Relative input order is preserved within each
// bucket, and every item lands in exactly one bucket; keys with no items are
// absent from the result.
func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	buckets := make(map[K][]T)
	for _, item := range items {
		k := key(item)
		buckets[k] = append(buckets[k], item)
	}
	return buckets
}
