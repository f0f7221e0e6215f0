package cell

import "github.com/wippyai/protocell"

// MessagePtr constrains P to be a pointer to the message struct M.
type MessagePtr[M any] interface {
	*M
	protocell.Message
}

// Message is a message-typed field. The cell owns the nested message: it is
// never shared with the caller that supplied it or with any other cell.
type Message[M any, P MessagePtr[M]] struct {
	ptr P
}

// Get returns the nested message, or nil when unset.
func (c *Message[M, P]) Get() P {
	return c.ptr
}

func (c *Message[M, P]) Has() bool {
	return c.ptr != nil
}

// Set stores a deep copy of v. A nil v clears the field.
func (c *Message[M, P]) Set(v P) {
	if v == nil {
		c.ptr = nil
		return
	}
	c.ptr = v.CloneMessage().(P)
}

// Mut returns the nested message for modification, first storing a default
// instance when the field is unset.
func (c *Message[M, P]) Mut() P {
	if c.ptr == nil {
		c.ptr = P(new(M))
	}
	return c.ptr
}

func (c *Message[M, P]) Clear() {
	c.ptr = nil
}

func (c Message[M, P]) Clone() Message[M, P] {
	if c.ptr == nil {
		return c
	}
	return Message[M, P]{ptr: c.ptr.CloneMessage().(P)}
}

func (c Message[M, P]) Equal(o Message[M, P]) bool {
	if c.ptr == nil || o.ptr == nil {
		return c.ptr == nil && o.ptr == nil
	}
	return c.ptr.EqualMessage(o.ptr)
}
