package set

import "fmt"

// MaxPowerSetElements bounds PowerSet: 2^20 subsets is the most we enumerate.
const MaxPowerSetElements = 20

// PowerSetSize returns 2^|s|, or 0 when |s| exceeds MaxPowerSetElements.
func PowerSetSize(s *Set) int {
	n := s.Len()
	if n > MaxPowerSetElements {
		return 0
	}

	return 1 << n
}

// PowerSet enumerates all 2ⁿ subsets of s by bitmask: subset i contains the
// element at index j iff bit j of i is set. Subsets appear in increasing
// order of i and each keeps the set's index order, so for {1, 2} the result
// is [[] [1] [2] [1 2]]. Every subset is a non-nil slice.
//
// Errors:
//   - ErrPowerSetTooLarge when |s| > MaxPowerSetElements.
func PowerSet(s *Set) ([][]int, error) {
	n := s.Len()
	if n > MaxPowerSetElements {
		return nil, fmt.Errorf("PowerSet: %d elements (max %d): %w", n, MaxPowerSetElements, ErrPowerSetTooLarge)
	}

	elems := s.Elements()
	total := 1 << n
	out := make([][]int, 0, total)
	for i := 0; i < total; i++ {
		subset := make([]int, 0, n)
		for j := 0; j < n; j++ {
			if (i>>j)&1 == 1 {
				subset = append(subset, elems[j])
			}
		}
		out = append(out, subset)
	}

	return out, nil
}
