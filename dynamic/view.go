package dynamic

import (
	"sync"

	"github.com/wippyai/protocell"
	"github.com/wippyai/protocell/errors"
	"github.com/wippyai/protocell/schema"
)

// defaults holds one shared empty message per descriptor. Views of unset
// message fields read from it and never write to it.
var defaults sync.Map // *schema.Message -> *Message

func defaultMessage(desc *schema.Message) *Message {
	if m, ok := defaults.Load(desc); ok {
		return m.(*Message)
	}
	m, _ := defaults.LoadOrStore(desc, New(desc))
	return m.(*Message)
}

// View is a read-only view of a Message. It refers to the message rather
// than copying it, so it observes later writes, and it stays valid for as
// long as it is held. The zero View refers to no message.
type View struct {
	m *Message
}

// IsValid reports whether v refers to a message.
func (v View) IsValid() bool {
	return v.m != nil
}

func (v View) rec() (*Message, error) {
	if v.m == nil {
		return nil, errors.NilPointer(errors.PhaseAccess, nil, "dynamic.View")
	}
	return v.m, nil
}

// Descriptor returns the message type, or nil for the zero View.
func (v View) Descriptor() *schema.Message {
	if v.m == nil {
		return nil
	}
	return v.m.desc
}

// Get returns the value of the field called name. Message values are
// read-only; use Value.View or View.Message to read them.
func (v View) Get(name string) (Value, error) {
	m, err := v.rec()
	if err != nil {
		return Value{}, err
	}
	val, err := m.Get(name)
	if err != nil {
		return Value{}, err
	}
	return val.readOnly(), nil
}

func (v View) Has(name string) (bool, error) {
	m, err := v.rec()
	if err != nil {
		return false, err
	}
	return m.Has(name)
}

func (v View) Opt(name string) (protocell.Optional[Value], error) {
	m, err := v.rec()
	if err != nil {
		return protocell.Optional[Value]{}, err
	}
	opt, err := m.Opt(name)
	if err != nil {
		return protocell.Optional[Value]{}, err
	}
	if val, ok := opt.Get(); ok {
		return protocell.Set(val.readOnly()), nil
	}
	return protocell.Unset(opt.Value().readOnly()), nil
}

func (v View) WhichOneof(name string) (*schema.Field, error) {
	m, err := v.rec()
	if err != nil {
		return nil, err
	}
	return m.WhichOneof(name)
}

// Message returns a view of the message field called name. An unset field
// yields a view of an empty message of the field's type.
func (v View) Message(name string) (View, error) {
	m, err := v.rec()
	if err != nil {
		return View{}, err
	}
	f, err := m.field(name)
	if err != nil {
		return View{}, err
	}
	if f.Kind != schema.KindMessage {
		return View{}, errors.TypeMismatch(errors.PhaseAccess, m.path(f), "dynamic.View", f.TypeString())
	}
	if m.set[f.Index] {
		return View{m: m.values[f.Index].msg}, nil
	}
	return View{m: defaultMessage(f.Message)}, nil
}

func (v View) Range(fn func(*schema.Field, Value) bool) {
	if v.m != nil {
		v.m.Range(func(f *schema.Field, val Value) bool {
			return fn(f, val.readOnly())
		})
	}
}

// ToOwned returns a deep copy of the viewed message.
func (v View) ToOwned() *Message {
	return v.m.Clone()
}

func (v View) String() string {
	if v.m == nil {
		return "<nil>"
	}
	return v.m.String()
}
