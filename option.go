package kai

import (
	"bytes"
	"encoding/json"

	"gopkg.in/guregu/null.v3"
)

// Option is a value that may be absent. It follows the same Valid
// discipline as the gopkg.in/guregu/null.v3 types and marshals to and from
// JSON the same way: an absent value is JSON null.
//
// The zero Option is None.
type Option[T any] struct {
	V     T
	Valid bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{V: v, Valid: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionFrom builds an Option from the common (value, ok) pair.
func OptionFrom[T any](v T, ok bool) Option[T] {
	if !ok {
		return Option[T]{}
	}
	return Some(v)
}

// OptionFromPtr returns Some of the pointed-to value, or None when p is nil.
func OptionFromPtr[T any](p *T) Option[T] {
	if p == nil {
		return Option[T]{}
	}
	return Some(*p)
}

// When maps a bool to an Option, replacing the four-line
// "if cond { x = v }" dance with a single expression.
func When[T any](cond bool, v T) Option[T] {
	if !cond {
		return Option[T]{}
	}
	return Some(v)
}

// WhenF is When for values that are expensive to build; f is only called
// when cond is true.
func WhenF[T any](cond bool, f func() T) Option[T] {
	if !cond {
		return Option[T]{}
	}
	return Some(f())
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.V, o.Valid
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.Valid
}

// IsNone reports whether the Option is absent.
func (o Option[T]) IsNone() bool {
	return !o.Valid
}

// Or returns the held value, or def when the Option is absent.
func (o Option[T]) Or(def T) T {
	if !o.Valid {
		return def
	}
	return o.V
}

// OrZero returns the held value, or the zero value of T when absent.
func (o Option[T]) OrZero() T {
	if !o.Valid {
		var zero T
		return zero
	}
	return o.V
}

// OrElse returns the held value, calling f for a fallback only when the
// Option is absent.
func (o Option[T]) OrElse(f func() T) T {
	if !o.Valid {
		return f()
	}
	return o.V
}

// Ptr returns a pointer to the held value, or nil when absent. The pointer
// is to a copy; mutating it does not change the Option.
func (o Option[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.V
	return &v
}

// MapOption transforms a present value with f and leaves None untouched.
// A free function because methods cannot introduce type parameters.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.Valid {
		return Option[U]{}
	}
	return Some(f(o.V))
}

// AndThen chains a present value into f, which may itself produce None.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.Valid {
		return Option[U]{}
	}
	return f(o.V)
}

var jsonNull = []byte("null")

// MarshalJSON encodes the held value, or JSON null when absent.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return jsonNull, nil
	}
	return json.Marshal(o.V)
}

// UnmarshalJSON decodes JSON null as None and anything else as a value of T.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*o = Option[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// Interop with gopkg.in/guregu/null.v3, for code that sits next to configs
// and APIs already speaking those types.

// OptionFromNullString converts a null.String.
func OptionFromNullString(s null.String) Option[string] {
	return OptionFrom(s.String, s.Valid)
}

// OptionFromNullInt converts a null.Int.
func OptionFromNullInt(i null.Int) Option[int64] {
	return OptionFrom(i.Int64, i.Valid)
}

// OptionFromNullFloat converts a null.Float.
func OptionFromNullFloat(f null.Float) Option[float64] {
	return OptionFrom(f.Float64, f.Valid)
}

// OptionFromNullBool converts a null.Bool.
func OptionFromNullBool(b null.Bool) Option[bool] {
	return OptionFrom(b.Bool, b.Valid)
}

// ToNullString converts back to a null.String.
func ToNullString(o Option[string]) null.String {
	return null.NewString(o.V, o.Valid)
}

// ToNullInt converts back to a null.Int.
func ToNullInt(o Option[int64]) null.Int {
	return null.NewInt(o.V, o.Valid)
}

// ToNullFloat converts back to a null.Float.
func ToNullFloat(o Option[float64]) null.Float {
	return null.NewFloat(o.V, o.Valid)
}

// ToNullBool converts back to a null.Bool.
func ToNullBool(o Option[bool]) null.Bool {
	return null.NewBool(o.V, o.Valid)
}
