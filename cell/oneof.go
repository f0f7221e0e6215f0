package cell

import (
	"bytes"
	"unsafe"

	"github.com/wippyai/protocell"
)

// Case is the constraint satisfied by oneof discriminant types. The zero
// value always means that no member is set.
type Case interface {
	~int32
}

// Oneof holds the members of one oneof. At most one member is active at a
// time; activating a member drops whatever the previous one stored, so a
// member that is no longer active reads as unset and zero.
//
// Storage is split by representation so that scalar members do not allocate:
// fixed-width values live in num, strings in str, bytes in bytes and nested
// messages in msg.
type Oneof[C Case] struct {
	msg   protocell.Message
	bytes []byte
	str   string
	num   uint64
	tag   C
}

// Case returns the active member, or the zero case when none is set.
func (o *Oneof[C]) Case() C {
	return o.tag
}

// Is reports whether c is the active member.
func (o *Oneof[C]) Is(c C) bool {
	return o.tag == c && c != 0
}

// Reset unsets whichever member is active.
func (o *Oneof[C]) Reset() {
	*o = Oneof[C]{}
}

// Clear unsets member c. It does nothing when another member is active.
func (o *Oneof[C]) Clear(c C) {
	if o.Is(c) {
		o.Reset()
	}
}

func (o *Oneof[C]) activate(c C) {
	*o = Oneof[C]{tag: c}
}

func (o Oneof[C]) Clone() Oneof[C] {
	out := o
	out.bytes = copyBytes(o.bytes)
	if o.msg != nil {
		out.msg = o.msg.CloneMessage()
	}
	return out
}

func (o Oneof[C]) Equal(other Oneof[C]) bool {
	if o.tag != other.tag || o.num != other.num || o.str != other.str {
		return false
	}
	if !bytes.Equal(o.bytes, other.bytes) {
		return false
	}
	return protocell.Equal(o.msg, other.msg)
}

// Scalar values are kept in the low bytes of num. Every Scalar type is at
// most eight bytes wide and num is zeroed on activation, so a value always
// reads back exactly as written.
func putNum[T Scalar](dst *uint64, v T) {
	*(*T)(unsafe.Pointer(dst)) = v
}

func getNum[T Scalar](src *uint64) T {
	return *(*T)(unsafe.Pointer(src))
}

// SetScalar activates member c with value v.
func SetScalar[C Case, T Scalar](o *Oneof[C], c C, v T) {
	o.activate(c)
	putNum(&o.num, v)
}

// ScalarOf returns member c, unset and zero unless c is the active member.
func ScalarOf[T Scalar, C Case](o *Oneof[C], c C) protocell.Optional[T] {
	if !o.Is(c) {
		var zero T
		return protocell.Unset(zero)
	}
	return protocell.Set(getNum[T](&o.num))
}

// SetString activates member c with value v.
func SetString[C Case](o *Oneof[C], c C, v string) {
	o.activate(c)
	o.str = v
}

// StringOf returns member c, unset and empty unless c is the active member.
func StringOf[C Case](o *Oneof[C], c C) protocell.Optional[string] {
	if !o.Is(c) {
		return protocell.Unset("")
	}
	return protocell.Set(o.str)
}

// SetBytes activates member c with a copy of v.
func SetBytes[C Case](o *Oneof[C], c C, v []byte) {
	o.activate(c)
	o.bytes = copyBytes(v)
}

// BytesOf returns member c, unset and empty unless c is the active member. The
// returned slice aliases the oneof and must not be modified.
func BytesOf[C Case](o *Oneof[C], c C) protocell.Optional[[]byte] {
	if !o.Is(c) {
		return protocell.Unset(emptyBytes)
	}
	return protocell.Set(borrowBytes(o.bytes))
}

// SetMessage activates member c with a deep copy of v. A nil v clears c.
func SetMessage[C Case, M any, P MessagePtr[M]](o *Oneof[C], c C, v P) {
	if v == nil {
		o.Clear(c)
		return
	}
	o.activate(c)
	o.msg = v.CloneMessage()
}

// MessageOf returns member c, or nil unless c is the active member.
func MessageOf[M any, P MessagePtr[M], C Case](o *Oneof[C], c C) P {
	if !o.Is(c) {
		return nil
	}
	return o.msg.(P)
}

// MutableMessage returns member c for modification. When c is not the active
// member it is activated with a default message first; otherwise the
// existing message is returned untouched.
func MutableMessage[M any, P MessagePtr[M], C Case](o *Oneof[C], c C) P {
	if o.Is(c) {
		return o.msg.(P)
	}
	o.activate(c)
	p := P(new(M))
	o.msg = p
	return p
}
