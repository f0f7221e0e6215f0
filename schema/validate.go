package schema

import (
	"strings"

	"github.com/wippyai/protocell/errors"
	"go.uber.org/zap"
)

// Field number limits.
const (
	MinFieldNumber      = 1
	MaxFieldNumber      = 1<<29 - 1
	FirstReservedNumber = 19000
	LastReservedNumber  = 19999
)

// ValidNumber reports whether n may be used as a field number.
func ValidNumber(n int32) bool {
	if n < MinFieldNumber || n > MaxFieldNumber {
		return false
	}
	return n < FirstReservedNumber || n > LastReservedNumber
}

// Validate checks the declarations, resolves type references and indexes
// every message for lookup. It returns the first problem found.
func (f *File) Validate() error {
	types := make(map[string]bool, len(f.Messages)+len(f.Enums))

	for _, e := range f.Enums {
		if err := validateEnum(e); err != nil {
			return err
		}
		if types[e.Name] {
			return errors.Duplicate(errors.PhaseSchema, []string{e.Name}, "type name", e.Name)
		}
		types[e.Name] = true
	}

	for _, m := range f.Messages {
		if m.Name == "" {
			return errors.InvalidData(errors.PhaseSchema, nil, "message name is empty")
		}
		if types[m.Name] {
			return errors.Duplicate(errors.PhaseSchema, []string{m.Name}, "type name", m.Name)
		}
		types[m.Name] = true
	}

	for _, m := range f.Messages {
		if err := f.validateMessage(m); err != nil {
			return err
		}
		m.index()
	}

	Logger().Debug("schema validated",
		zap.String("package", f.Package),
		zap.Int("messages", len(f.Messages)),
		zap.Int("enums", len(f.Enums)))
	return nil
}

func validateEnum(e *Enum) error {
	if e.Name == "" {
		return errors.InvalidData(errors.PhaseSchema, nil, "enum name is empty")
	}
	path := []string{e.Name}
	if len(e.Values) == 0 {
		return errors.InvalidData(errors.PhaseSchema, path, "enum declares no values")
	}
	if e.Values[0].Number != 0 {
		return errors.New(errors.PhaseSchema, errors.KindInvalidEnum).
			Path(path...).
			Value(e.Values[0].Number).
			Detail("first value %s must be numbered 0", e.Values[0].Name).
			Build()
	}
	seen := make(map[string]bool, len(e.Values))
	for _, v := range e.Values {
		if v.Name == "" {
			return errors.InvalidData(errors.PhaseSchema, path, "enum value name is empty")
		}
		if seen[v.Name] {
			return errors.Duplicate(errors.PhaseSchema, path, "enum value", v.Name)
		}
		seen[v.Name] = true
	}
	return nil
}

func (f *File) validateMessage(m *Message) error {
	names := make(map[string]bool, len(m.Fields))
	numbers := make(map[int32]bool, len(m.Fields))

	for i, fd := range m.Fields {
		path := []string{m.Name, fd.Name}
		if fd.Name == "" {
			return errors.InvalidData(errors.PhaseSchema, []string{m.Name}, "field name is empty")
		}
		if names[fd.Name] {
			return errors.Duplicate(errors.PhaseSchema, path, "field name", fd.Name)
		}
		names[fd.Name] = true

		if !ValidNumber(fd.Number) {
			return errors.InvalidNumber(errors.PhaseSchema, path, fd.Number)
		}
		if numbers[fd.Number] {
			return errors.Duplicate(errors.PhaseSchema, path, "field number", fd.Number)
		}
		numbers[fd.Number] = true

		if fd.Oneof != nil && fd.Optional {
			return errors.InvalidData(errors.PhaseSchema, path, "oneof members cannot be declared optional")
		}
		if err := f.resolve(m, fd, path); err != nil {
			return err
		}
		fd.Index = i
	}

	for i, o := range m.Oneofs {
		path := []string{m.Name, o.Name}
		if o.Name == "" {
			return errors.InvalidData(errors.PhaseSchema, []string{m.Name}, "oneof name is empty")
		}
		if names[o.Name] {
			return errors.Duplicate(errors.PhaseSchema, path, "name", o.Name)
		}
		names[o.Name] = true
		if len(o.Fields) == 0 {
			return errors.InvalidData(errors.PhaseSchema, path, "oneof declares no members")
		}
		for _, fd := range o.Fields {
			if fd.Oneof != o || m.Field(fd.Name) != fd {
				return errors.InvalidData(errors.PhaseSchema, path,
					"member "+fd.Name+" is not a field of "+m.Name)
			}
		}
		o.Index = i
	}
	return nil
}

// resolve binds fd to the enum or message it names. Names are looked up
// from the innermost scope of m outwards, so inside Foo the name Bar finds
// Foo.Bar before a top-level Bar.
func (f *File) resolve(m *Message, fd *Field, path []string) error {
	if fd.TypeName == "" {
		switch {
		case fd.Kind == KindEnum && fd.Enum == nil:
			return errors.InvalidData(errors.PhaseSchema, path, "enum field names no enum type")
		case fd.Kind == KindMessage && fd.Message == nil:
			return errors.InvalidData(errors.PhaseSchema, path, "message field names no message type")
		case fd.Kind > KindMessage:
			return errors.Unsupported(errors.PhaseSchema, "field kind "+fd.Kind.String())
		}
		return nil
	}

	for scope := m.Name; ; {
		name := fd.TypeName
		if scope != "" {
			name = scope + "." + fd.TypeName
		}
		if e := f.Enum(name); e != nil {
			fd.Kind, fd.Enum, fd.Message = KindEnum, e, nil
			return nil
		}
		if msg := f.Message(name); msg != nil {
			fd.Kind, fd.Message, fd.Enum = KindMessage, msg, nil
			return nil
		}
		if scope == "" {
			break
		}
		if i := strings.LastIndexByte(scope, '.'); i >= 0 {
			scope = scope[:i]
		} else {
			scope = ""
		}
	}
	return errors.FieldMissing(errors.PhaseSchema, path, fd.TypeName)
}
