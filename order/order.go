// Package order provides total-order comparators for values whose natural
// order is only partial, chiefly floats with NaN. They are meant for the
// cmp arguments of slices.SortFunc, slices.MaxFunc and friends, where a
// comparator that cannot answer for every pair makes the sort unstable in
// the bad sense.
package order

import "golang.org/x/exp/constraints"

// Compare returns -1, 0 or 1 ordering a against b.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// NaNLast orders floats with every NaN after every number. Two NaNs
// compare equal, so sorting is deterministic.
func NaNLast[F constraints.Float](a, b F) int {
	aNaN, bNaN := a != a, b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}
	return Compare(a, b)
}

// NaNFirst orders floats with every NaN before every number.
func NaNFirst[F constraints.Float](a, b F) int {
	aNaN, bNaN := a != a, b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	}
	return Compare(a, b)
}

// MinBy returns the smallest element of s under cmp, and false when s is
// empty. Ties go to the earliest element.
func MinBy[T any](s []T, cmp func(a, b T) int) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	best := s[0]
	for _, v := range s[1:] {
		if cmp(v, best) < 0 {
			best = v
		}
	}
	return best, true
}

// MaxBy returns the largest element of s under cmp, and false when s is
// empty. Ties go to the earliest element.
func MaxBy[T any](s []T, cmp func(a, b T) int) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	best := s[0]
	for _, v := range s[1:] {
		if cmp(v, best) > 0 {
			best = v
		}
	}
	return best, true
}
