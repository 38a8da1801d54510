// Package approx provides float closeness checks, so that code comparing
// computed floats does not reach for == and trip over rounding error.
//
// NaN is close to nothing, including itself, and the infinities are close
// to nothing, including each other: the checks answer "could these differ
// only by rounding", not "are these the same bit pattern".
package approx

import "golang.org/x/exp/constraints"

// Machine epsilons for the two float sizes.
const (
	eps32 = float32(0x1p-23)
	eps64 = float64(0x1p-52)
)

// epsilon picks the machine epsilon for F's precision, not its identity, so
// named ~float32 types get the float32 epsilon too: a 32-bit float absorbs
// eps64 into 1 without changing it.
func epsilon[F constraints.Float]() F {
	if F(1)+F(eps64) == F(1) {
		return F(eps32)
	}
	return F(eps64)
}

// Equal reports whether a and b are within one machine epsilon of each
// other, for the float size they are instantiated at.
func Equal[F constraints.Float](a, b F) bool {
	return EqualTol(a, b, epsilon[F]())
}

// EqualTol reports whether a and b differ by less than tol.
func EqualTol[F constraints.Float](a, b, tol F) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < tol
}

// EqualSlices reports whether a and b have the same length and are
// element-wise Equal.
func EqualSlices[F constraints.Float](a, b []F) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
