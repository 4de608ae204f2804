package utils

import (
	"maps"
	"slices"
)

// GetKeys returns the keys of m in ascending byte-wise order.
func GetKeys[T any](m map[string]T) []string {
	return slices.Sorted(maps.Keys(m))
}

// GetValues returns the values of m ordered by their keys.
func GetValues[T any](m map[string]T) []T {
	values := make([]T, 0, len(m))
	for _, k := range GetKeys(m) {
		values = append(values, m[k])
	}
	return values
}
