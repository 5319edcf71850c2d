// Package sequence allocates per-owner sequential display IDs by scanning
// the identifiers already in use and filling the smallest gap, so IDs of
// deleted records get reused.
package sequence

import "strconv"

// Next returns the smallest positive integer not present in used.
// An empty set yields 1; {1,2,3} yields 4; {1,3} yields 2.
//
// The scan-then-pick sequence is not atomic: two concurrent allocations
// for the same owner can observe the same used set and return the same
// value. The unique (user_id, display_id) index is the storage-layer
// backstop for that race.
func Next(used []int) int {
	set := make(map[int]struct{}, len(used))
	for _, id := range used {
		if id > 0 {
			set[id] = struct{}{}
		}
	}

	next := 1
	for {
		if _, ok := set[next]; !ok {
			return next
		}
		next++
	}
}

// NextFromStrings parses the used identifiers as integers, ignoring
// non-numeric values, and returns the smallest free positive integer.
func NextFromStrings(used []string) int {
	ids := make([]int, 0, len(used))
	for _, s := range used {
		if n, err := strconv.Atoi(s); err == nil {
			ids = append(ids, n)
		}
	}
	return Next(ids)
}
