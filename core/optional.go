// SPDX-License-Identifier: MIT

package core

// Optional holds a value that may be absent. It replaces the numeric
// sentinels (-1 parents, max-int depths, infinite distances) inside results.
type Optional[T any] struct {
	Value T
	Valid bool
}

// Some wraps v as a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Valid: true}
}

// None returns an absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Valid
}

// Or returns the value when present, otherwise fallback.
func (o Optional[T]) Or(fallback T) T {
	if o.Valid {
		return o.Value
	}
	return fallback
}
