package kai

// Slice helpers for the map/filter patterns that otherwise need an index
// loop and an append every time. All of them are pure: nil in, nil out, and
// the input is never modified.

// MapSlice returns a new slice holding f applied to every element of s.
func MapSlice[T, U any](s []T, f func(T) U) []U {
	if s == nil {
		return nil
	}
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}

// FilterSlice returns the elements of s for which keep returns true.
func FilterSlice[T any](s []T, keep func(T) bool) []T {
	if s == nil {
		return nil
	}
	out := make([]T, 0, len(s))
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// FilterMap projects and filters in one pass: f returns the projected value
// and whether to keep it. It replaces the filter-then-map double loop when
// the predicate and the projection are the same type switch.
func FilterMap[T, U any](s []T, f func(T) (U, bool)) []U {
	if s == nil {
		return nil
	}
	out := make([]U, 0, len(s))
	for _, v := range s {
		if u, ok := f(v); ok {
			out = append(out, u)
		}
	}
	return out
}

// Chain concatenates any number of slices into one new slice. It returns
// nil when every input is nil.
func Chain[T any](slices ...[]T) []T {
	var n int
	allNil := true
	for _, s := range slices {
		if s != nil {
			allNil = false
		}
		n += len(s)
	}
	if allNil {
		return nil
	}
	out := make([]T, 0, n)
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}

// Find returns the first element of s matching pred, as an Option.
func Find[T any](s []T, pred func(T) bool) Option[T] {
	for _, v := range s {
		if pred(v) {
			return Some(v)
		}
	}
	return None[T]()
}
