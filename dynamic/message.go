package dynamic

import (
	"github.com/wippyai/protocell"
	"github.com/wippyai/protocell/errors"
	"github.com/wippyai/protocell/schema"
	"go.uber.org/zap"
)

// Message is a message record laid out from a schema descriptor at runtime.
// It follows the same rules as generated messages: implicit fields never
// remember being set to their default, explicit fields do, at most one
// member of each oneof is set and nested messages are owned.
//
// The descriptor must have been validated. A Message is not safe for
// concurrent use when one of the goroutines modifies it.
type Message struct {
	desc   *schema.Message
	values []Value         // by Field.Index
	set    []bool          // by Field.Index
	active []*schema.Field // by Oneof.Index
}

var _ protocell.Message = (*Message)(nil)

// New returns an empty message of type desc.
func New(desc *schema.Message) *Message {
	return &Message{
		desc:   desc,
		values: make([]Value, len(desc.Fields)),
		set:    make([]bool, len(desc.Fields)),
		active: make([]*schema.Field, len(desc.Oneofs)),
	}
}

// Descriptor returns the message type.
func (m *Message) Descriptor() *schema.Message {
	return m.desc
}

func (m *Message) field(name string) (*schema.Field, error) {
	f := m.desc.Field(name)
	if f == nil {
		return nil, errors.FieldUnknown(errors.PhaseAccess, []string{m.desc.Name}, name)
	}
	return f, nil
}

func (m *Message) path(f *schema.Field) []string {
	return []string{m.desc.Name, f.Name}
}

// Get returns the value of the field called name, or its default when the
// field is unset. An unset message field reads as a message Value holding nil.
func (m *Message) Get(name string) (Value, error) {
	f, err := m.field(name)
	if err != nil {
		return Value{}, err
	}
	return m.get(f), nil
}

func (m *Message) get(f *schema.Field) Value {
	if m.set[f.Index] {
		return m.values[f.Index]
	}
	return zeroValue(f)
}

// Set stores v in the field called name. v may be a Value or a Go value of a
// compatible type: any integer for integer and enum fields, an enumerator
// name for enum fields, float32 or float64 for floating point fields, string
// or []byte for string and bytes fields and *Message or View for message
// fields. Bytes and messages are copied. Setting nil or a nil *Message
// clears a message field.
//
// Setting a oneof member makes it the active member.
func (m *Message) Set(name string, v any) error {
	f, err := m.field(name)
	if err != nil {
		return err
	}
	val, err := convert(f, v, m.path(f))
	if err != nil {
		return err
	}
	m.store(f, val)
	return nil
}

// SetText parses text as a value of the field called name and stores it.
func (m *Message) SetText(name, text string) error {
	f, err := m.field(name)
	if err != nil {
		return err
	}
	val, err := parseText(f, text, m.path(f))
	if err != nil {
		return err
	}
	m.store(f, val)
	return nil
}

func (m *Message) store(f *schema.Field, val Value) {
	switch {
	case f.Kind == schema.KindMessage:
		if val.msg == nil {
			m.clear(f)
			return
		}
		val.msg = val.msg.Clone()
	case len(val.bytes) == 0:
		val.bytes = nil
	default:
		val.bytes = append([]byte(nil), val.bytes...)
	}

	if o := f.Oneof; o != nil {
		m.activate(o, f)
	} else if !f.HasPresence() && val.isZero() {
		m.values[f.Index], m.set[f.Index] = Value{}, false
		return
	}
	m.values[f.Index], m.set[f.Index] = val, true
}

func (m *Message) activate(o *schema.Oneof, f *schema.Field) {
	prev := m.active[o.Index]
	if prev == f {
		return
	}
	if prev != nil {
		m.values[prev.Index], m.set[prev.Index] = Value{}, false
		if ce := Logger().Check(zap.DebugLevel, "oneof member displaced"); ce != nil {
			ce.Write(
				zap.String("message", m.desc.Name),
				zap.String("oneof", o.Name),
				zap.String("from", prev.Name),
				zap.String("to", f.Name))
		}
	}
	m.active[o.Index] = f
}

// Clear unsets the field called name. Clearing a oneof member that is not
// the active member does nothing.
func (m *Message) Clear(name string) error {
	f, err := m.field(name)
	if err != nil {
		return err
	}
	m.clear(f)
	return nil
}

func (m *Message) clear(f *schema.Field) {
	if o := f.Oneof; o != nil {
		if m.active[o.Index] != f {
			return
		}
		m.active[o.Index] = nil
	}
	m.values[f.Index], m.set[f.Index] = Value{}, false
}

// Has reports whether the field called name is set. Fields with implicit
// presence cannot answer and yield a no_presence error.
func (m *Message) Has(name string) (bool, error) {
	f, err := m.field(name)
	if err != nil {
		return false, err
	}
	if !f.HasPresence() {
		return false, errors.NoPresence(errors.PhaseAccess, m.path(f), f.Name)
	}
	return m.set[f.Index], nil
}

// Opt returns the field called name together with its presence. Unset fields
// carry their default value.
func (m *Message) Opt(name string) (protocell.Optional[Value], error) {
	f, err := m.field(name)
	if err != nil {
		return protocell.Optional[Value]{}, err
	}
	if !f.HasPresence() {
		return protocell.Optional[Value]{}, errors.NoPresence(errors.PhaseAccess, m.path(f), f.Name)
	}
	if m.set[f.Index] {
		return protocell.Set(m.values[f.Index]), nil
	}
	return protocell.Unset(zeroValue(f)), nil
}

// WhichOneof returns the active member of the oneof called name, or nil when
// no member is set.
func (m *Message) WhichOneof(name string) (*schema.Field, error) {
	o := m.desc.Oneof(name)
	if o == nil {
		return nil, errors.NotFound(errors.PhaseAccess, "oneof", name)
	}
	return m.active[o.Index], nil
}

// ClearOneof unsets whichever member of the oneof called name is active.
func (m *Message) ClearOneof(name string) error {
	o := m.desc.Oneof(name)
	if o == nil {
		return errors.NotFound(errors.PhaseAccess, "oneof", name)
	}
	if f := m.active[o.Index]; f != nil {
		m.clear(f)
	}
	return nil
}

// Mutable returns the message stored in the message field called name for
// modification. An unset field is first set to an empty message; for a oneof
// member this makes it the active member.
func (m *Message) Mutable(name string) (*Message, error) {
	f, err := m.field(name)
	if err != nil {
		return nil, err
	}
	if f.Kind != schema.KindMessage {
		return nil, errors.TypeMismatch(errors.PhaseAccess, m.path(f), "*dynamic.Message", f.TypeString())
	}
	if m.set[f.Index] {
		return m.values[f.Index].msg, nil
	}

	nm := New(f.Message)
	if f.Oneof != nil {
		m.activate(f.Oneof, f)
	}
	m.values[f.Index], m.set[f.Index] = MessageValue(nm), true
	if ce := Logger().Check(zap.DebugLevel, "message field materialized"); ce != nil {
		ce.Write(zap.String("message", m.desc.Name), zap.String("field", f.Name))
	}
	return nm, nil
}

// Range calls fn for every set field in declaration order until fn returns
// false. Implicit fields holding their default are not set.
func (m *Message) Range(fn func(*schema.Field, Value) bool) {
	for i, f := range m.desc.Fields {
		if m.set[i] && !fn(f, m.values[i]) {
			return
		}
	}
}

// Reset clears every field.
func (m *Message) Reset() {
	clear(m.values)
	clear(m.set)
	clear(m.active)
}

// Clone returns a deep copy of m.
func (m *Message) Clone() *Message {
	if m == nil {
		return nil
	}
	out := &Message{
		desc:   m.desc,
		values: make([]Value, len(m.values)),
		set:    append([]bool(nil), m.set...),
		active: append([]*schema.Field(nil), m.active...),
	}
	for i, v := range m.values {
		out.values[i] = v.clone()
	}
	return out
}

// Equal reports whether m and o have the same type and the same fields set
// to the same values.
func (m *Message) Equal(o *Message) bool {
	if m == nil || o == nil {
		return m == nil && o == nil
	}
	if m.desc != o.desc {
		return false
	}
	for i := range m.values {
		if m.set[i] != o.set[i] {
			return false
		}
		if m.set[i] && !m.values[i].Equal(o.values[i]) {
			return false
		}
	}
	return true
}

func (m *Message) CloneMessage() protocell.Message {
	return m.Clone()
}

func (m *Message) EqualMessage(other protocell.Message) bool {
	o, ok := other.(*Message)
	return ok && m.Equal(o)
}

// AsView returns a read-only view of m.
func (m *Message) AsView() View {
	return View{m: m}
}
