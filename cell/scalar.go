package cell

import "github.com/wippyai/protocell"

// Scalar is the set of fixed-width value kinds, enums included.
type Scalar interface {
	~bool | ~int32 | ~int64 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Implicit is a scalar field with implicit presence.
type Implicit[T Scalar] struct {
	v T
}

func (c *Implicit[T]) Get() T {
	return c.v
}

func (c *Implicit[T]) Set(v T) {
	c.v = v
}

// Clear resets the field to its zero value.
func (c *Implicit[T]) Clear() {
	var zero T
	c.v = zero
}

// Explicit is a scalar field that tracks presence.
type Explicit[T Scalar] struct {
	v   T
	set bool
}

// Get returns the stored value, or the zero value when unset.
func (c *Explicit[T]) Get() T {
	return c.v
}

// Set stores v and marks the field set, even when v is the zero value.
func (c *Explicit[T]) Set(v T) {
	c.v = v
	c.set = true
}

// Clear resets the field to its zero value and marks it unset.
func (c *Explicit[T]) Clear() {
	*c = Explicit[T]{}
}

func (c *Explicit[T]) Has() bool {
	return c.set
}

func (c *Explicit[T]) Opt() protocell.Optional[T] {
	if c.set {
		return protocell.Set(c.v)
	}
	return protocell.Unset(c.v)
}
