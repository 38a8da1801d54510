// Package kai is a personal convenience library: a grab bag of small
// generic helpers for the patterns that come up in everyday Go, so that
// application code can import one package instead of re-writing the same
// three-line snippets in every file.
//
// The root package holds the flat, everyday pieces: Option values, slice
// helpers, the Swap cell and the string Adapter. Narrower concerns live in
// subpackages (order, approx, thread, fsx) so that one import covers one
// task area.
//
// No exported name in kai or its subpackages shadows a predeclared Go
// identifier.
package kai

// Ptr returns a pointer to v. Useful for literals and for filling optional
// struct fields in one line.
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns the value p points to, or the zero value of T when p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// DerefOr returns the value p points to, or def when p is nil.
func DerefOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// Ternary returns a when cond is true and b otherwise. Both arguments are
// evaluated; use WhenF if the branches are expensive.
func Ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
