package schema

// EnumValue is one named enumerator.
type EnumValue struct {
	Name   string
	Number int32
}

// Enum describes an enum type. Enums are open: fields of an enum kind may
// hold numbers that no value declares.
type Enum struct {
	Name   string
	Values []EnumValue
}

// ByNumber returns the first enumerator numbered n.
func (e *Enum) ByNumber(n int32) (EnumValue, bool) {
	for _, v := range e.Values {
		if v.Number == n {
			return v, true
		}
	}
	return EnumValue{}, false
}

// ByName returns the enumerator called name.
func (e *Enum) ByName(name string) (EnumValue, bool) {
	for _, v := range e.Values {
		if v.Name == name {
			return v, true
		}
	}
	return EnumValue{}, false
}

// Default returns the first declared enumerator, which is always numbered zero
// in a valid schema.
func (e *Enum) Default() EnumValue {
	if len(e.Values) == 0 {
		return EnumValue{}
	}
	return e.Values[0]
}

// Field describes one field of a message.
//
// Kind is resolved from TypeName when the field references an enum or a
// message; Enum or Message then points at the referenced descriptor.
type Field struct {
	Enum     *Enum
	Message  *Message
	Oneof    *Oneof
	Name     string
	TypeName string
	Index    int
	Number   int32
	Kind     Kind
	Optional bool
}

// Presence returns the field's presence discipline. Fields track presence
// when they are declared optional, belong to a oneof or hold a message.
func (f *Field) Presence() Presence {
	if f.Optional || f.Oneof != nil || f.Kind == KindMessage {
		return PresenceExplicit
	}
	return PresenceImplicit
}

// HasPresence reports whether the field tracks presence.
func (f *Field) HasPresence() bool {
	return f.Presence() == PresenceExplicit
}

// TypeString renders the field type as it would appear in a schema document.
func (f *Field) TypeString() string {
	switch {
	case f.Kind == KindEnum && f.Enum != nil:
		return f.Enum.Name
	case f.Kind == KindMessage && f.Message != nil:
		return f.Message.Name
	case f.TypeName != "":
		return f.TypeName
	default:
		return f.Kind.String()
	}
}

// Oneof groups fields of which at most one is set at a time.
type Oneof struct {
	Name   string
	Fields []*Field
	Index  int
}

// Message describes a message type.
type Message struct {
	byName   map[string]*Field
	byNumber map[int32]*Field
	Name     string
	Fields   []*Field
	Oneofs   []*Oneof
}

// AddField appends f to the message.
func (m *Message) AddField(f *Field) *Field {
	f.Index = len(m.Fields)
	m.Fields = append(m.Fields, f)
	m.byName, m.byNumber = nil, nil
	return f
}

// AddOneof declares a oneof called name whose members are fields. The members
// are appended to the message fields in order.
func (m *Message) AddOneof(name string, fields ...*Field) *Oneof {
	o := &Oneof{Name: name, Index: len(m.Oneofs)}
	for _, f := range fields {
		f.Oneof = o
		o.Fields = append(o.Fields, m.AddField(f))
	}
	m.Oneofs = append(m.Oneofs, o)
	return o
}

// Field returns the field called name.
func (m *Message) Field(name string) *Field {
	if m.byName != nil {
		return m.byName[name]
	}
	for _, f := range m.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// FieldByNumber returns the field numbered n.
func (m *Message) FieldByNumber(n int32) *Field {
	if m.byNumber != nil {
		return m.byNumber[n]
	}
	for _, f := range m.Fields {
		if f.Number == n {
			return f
		}
	}
	return nil
}

// Oneof returns the oneof called name.
func (m *Message) Oneof(name string) *Oneof {
	for _, o := range m.Oneofs {
		if o.Name == name {
			return o
		}
	}
	return nil
}

func (m *Message) index() {
	m.byName = make(map[string]*Field, len(m.Fields))
	m.byNumber = make(map[int32]*Field, len(m.Fields))
	for _, f := range m.Fields {
		m.byName[f.Name] = f
		m.byNumber[f.Number] = f
	}
}

// File is a set of message and enum declarations that reference each other
// by name. Names are dotted: a message Foo declaring Bar names it Foo.Bar.
type File struct {
	Package  string
	Messages []*Message
	Enums    []*Enum
}

// Message returns the message called name.
func (f *File) Message(name string) *Message {
	for _, m := range f.Messages {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Enum returns the enum called name.
func (f *File) Enum(name string) *Enum {
	for _, e := range f.Enums {
		if e.Name == name {
			return e
		}
	}
	return nil
}
