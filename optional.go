package protocell

import "fmt"

// Optional is the value of an explicit-presence field together with its
// presence. An unset Optional still carries a placeholder, normally the
// field's zero value, so callers can use Value without branching.
type Optional[T any] struct {
	val T
	set bool
}

// Set returns an Optional holding v.
func Set[T any](v T) Optional[T] {
	return Optional[T]{val: v, set: true}
}

// Unset returns an unset Optional carrying placeholder.
func Unset[T any](placeholder T) Optional[T] {
	return Optional[T]{val: placeholder}
}

// IsSet reports whether the field was explicitly set.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Value returns the stored value, or the placeholder when unset.
func (o Optional[T]) Value() T {
	return o.val
}

// Get returns the value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.val, o.set
}

// Or returns the value when set and def otherwise.
func (o Optional[T]) Or(def T) T {
	if o.set {
		return o.val
	}
	return def
}

// String renders o as Set(v) or Unset(v). Strings and byte slices are
// quoted.
func (o Optional[T]) String() string {
	format := "%v"
	switch any(o.val).(type) {
	case string, []byte:
		format = "%q"
	}
	if o.set {
		return fmt.Sprintf("Set("+format+")", o.val)
	}
	return fmt.Sprintf("Unset("+format+")", o.val)
}
