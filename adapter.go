package kai

import (
	"strconv"
	"time"
)

// Codec pairs the parse and format halves of a string representation.
// Parse errors are the only failure mode; Format must succeed for any value
// Parse can produce.
type Codec[T any] struct {
	Parse  func(string) (T, error)
	Format func(T) string
}

// IntCodec is a Codec for base-10 ints.
func IntCodec() Codec[int] {
	return Codec[int]{
		Parse:  strconv.Atoi,
		Format: strconv.Itoa,
	}
}

// Float64Codec is a Codec for float64s in their shortest round-trip form.
func Float64Codec() Codec[float64] {
	return Codec[float64]{
		Parse: func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		},
		Format: func(f float64) string {
			return strconv.FormatFloat(f, 'g', -1, 64)
		},
	}
}

// DurationCodec is a Codec for time.Duration in its standard string form.
func DurationCodec() Codec[time.Duration] {
	return Codec[time.Duration]{
		Parse:  time.ParseDuration,
		Format: time.Duration.String,
	}
}

// Adapter binds a string to its parsed value so the string can be edited as
// if it were the value. Mutate V as needed, then Commit to format the
// result back into the bound string.
type Adapter[T any] struct {
	// V is the working value. It starts as the parse of the bound string.
	V T

	s     *string
	codec Codec[T]
}

// BindAdapter parses *s with c and returns an Adapter over it. The string
// is left untouched until Commit.
func BindAdapter[T any](s *string, c Codec[T]) (*Adapter[T], error) {
	v, err := c.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &Adapter[T]{V: v, s: s, codec: c}, nil
}

// Commit formats the working value back into the bound string. Commit on a
// nil or unbound Adapter is a no-op.
func (a *Adapter[T]) Commit() {
	if a == nil || a.s == nil {
		return
	}
	*a.s = a.codec.Format(a.V)
}

// Edit parses *s with c, hands the value to f to mutate, and writes the
// result back. A parse error is returned with the string untouched.
//
//	n := "41"
//	_ = kai.Edit(&n, kai.IntCodec(), func(v *int) { *v++ })
//	// n == "42"
func Edit[T any](s *string, c Codec[T], f func(*T)) error {
	a, err := BindAdapter(s, c)
	if err != nil {
		return err
	}
	f(&a.V)
	a.Commit()
	return nil
}
