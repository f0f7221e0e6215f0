package cell

import (
	"bytes"

	"github.com/wippyai/protocell"
)

// emptyBytes is returned in place of a nil slice so readers always get a
// non-nil, zero-length value. It has zero capacity, so appending to it never
// writes into shared memory.
var emptyBytes = make([]byte, 0)

func copyBytes(v []byte) []byte {
	if len(v) == 0 {
		return nil
	}
	return append([]byte(nil), v...)
}

func borrowBytes(b []byte) []byte {
	if b == nil {
		return emptyBytes
	}
	return b
}

// Bytes is a bytes field with implicit presence.
type Bytes struct {
	b []byte
}

// Get returns the stored bytes. The result aliases the cell and must not be
// modified.
func (c *Bytes) Get() []byte {
	return borrowBytes(c.b)
}

// Set stores a copy of v.
func (c *Bytes) Set(v []byte) {
	c.b = copyBytes(v)
}

// SetString stores the bytes of s.
func (c *Bytes) SetString(s string) {
	if s == "" {
		c.b = nil
		return
	}
	c.b = []byte(s)
}

func (c *Bytes) Clear() {
	c.b = nil
}

func (c Bytes) Clone() Bytes {
	return Bytes{b: copyBytes(c.b)}
}

func (c Bytes) Equal(o Bytes) bool {
	return bytes.Equal(c.b, o.b)
}

// ExplicitBytes is a bytes field that tracks presence.
type ExplicitBytes struct {
	b   []byte
	set bool
}

// Get returns the stored bytes, empty when unset. The result aliases the
// cell and must not be modified.
func (c *ExplicitBytes) Get() []byte {
	return borrowBytes(c.b)
}

// Set stores a copy of v and marks the field set, even when v is empty.
func (c *ExplicitBytes) Set(v []byte) {
	c.b = copyBytes(v)
	c.set = true
}

// SetString stores the bytes of s and marks the field set.
func (c *ExplicitBytes) SetString(s string) {
	c.b = nil
	if s != "" {
		c.b = []byte(s)
	}
	c.set = true
}

func (c *ExplicitBytes) Clear() {
	*c = ExplicitBytes{}
}

func (c *ExplicitBytes) Has() bool {
	return c.set
}

func (c *ExplicitBytes) Opt() protocell.Optional[[]byte] {
	if c.set {
		return protocell.Set(borrowBytes(c.b))
	}
	return protocell.Unset(emptyBytes)
}

func (c ExplicitBytes) Clone() ExplicitBytes {
	return ExplicitBytes{b: copyBytes(c.b), set: c.set}
}

func (c ExplicitBytes) Equal(o ExplicitBytes) bool {
	return c.set == o.set && bytes.Equal(c.b, o.b)
}

// String is a string field with implicit presence. Go strings are
// immutable, so storing one never aliases caller memory that can change.
type String struct {
	s string
}

func (c *String) Get() string {
	return c.s
}

func (c *String) Set(v string) {
	c.s = v
}

// SetBytes stores a copy of v as a string.
func (c *String) SetBytes(v []byte) {
	c.s = string(v)
}

func (c *String) Clear() {
	c.s = ""
}

// ExplicitString is a string field that tracks presence.
type ExplicitString struct {
	s   string
	set bool
}

func (c *ExplicitString) Get() string {
	return c.s
}

// Set stores v and marks the field set, even when v is empty.
func (c *ExplicitString) Set(v string) {
	c.s = v
	c.set = true
}

// SetBytes stores a copy of v and marks the field set.
func (c *ExplicitString) SetBytes(v []byte) {
	c.Set(string(v))
}

func (c *ExplicitString) Clear() {
	*c = ExplicitString{}
}

func (c *ExplicitString) Has() bool {
	return c.set
}

func (c *ExplicitString) Opt() protocell.Optional[string] {
	if c.set {
		return protocell.Set(c.s)
	}
	return protocell.Unset("")
}
