package schema

import (
	"strings"
	"sync"

	"github.com/wippyai/protocell/errors"
	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"
)

// Compiler turns WIT type definitions into message and enum descriptors.
//
// Records become messages with fields numbered from 1 in declaration order.
// A record field of variant type becomes a oneof named after the field, whose
// members are named field_case; payload-less cases become bool members.
// option<T> marks a field optional, list<u8> maps to bytes and enums map
// case i to number i. Other WIT kinds are rejected.
type Compiler struct {
	cache sync.Map // *wit.TypeDef -> *Message or *Enum
	mu    sync.Mutex
	file  File
}

func NewCompiler() *Compiler {
	return &Compiler{}
}

// CompileMessage compiles a named WIT record.
func (c *Compiler) CompileMessage(t wit.Type) (*Message, error) {
	td, ok := t.(*wit.TypeDef)
	if !ok {
		return nil, errors.TypeMismatch(errors.PhaseCompile, nil, witTypeName(t), "record")
	}
	if cached, ok := c.cache.Load(td); ok {
		if m, ok := cached.(*Message); ok {
			return m, nil
		}
	}
	r, ok := td.Kind.(*wit.Record)
	if !ok {
		return nil, errors.TypeMismatch(errors.PhaseCompile, nil, witTypeName(t), "record")
	}
	if td.Name == nil {
		return nil, errors.Unsupported(errors.PhaseCompile, "anonymous record at top level")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.compileRecord(td, r, messageName(*td.Name))
}

// CompileEnum compiles a named WIT enum.
func (c *Compiler) CompileEnum(t wit.Type) (*Enum, error) {
	td, ok := t.(*wit.TypeDef)
	if !ok {
		return nil, errors.TypeMismatch(errors.PhaseCompile, nil, witTypeName(t), "enum")
	}
	en, ok := td.Kind.(*wit.Enum)
	if !ok {
		return nil, errors.TypeMismatch(errors.PhaseCompile, nil, witTypeName(t), "enum")
	}
	if td.Name == nil {
		return nil, errors.Unsupported(errors.PhaseCompile, "anonymous enum at top level")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.compileEnum(td, en, messageName(*td.Name))
}

// CompileField compiles a single field of WIT type t. Records and enums the
// type refers to are compiled as well and recorded in File.
func (c *Compiler) CompileField(name string, number int32, t wit.Type) (*Field, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fd := &Field{Name: name, Number: number}
	if err := c.compileType(fd, t, "", []string{name}); err != nil {
		return nil, err
	}
	return fd, nil
}

// File returns the descriptors compiled so far.
func (c *Compiler) File() *File {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &File{
		Package:  c.file.Package,
		Messages: append([]*Message(nil), c.file.Messages...),
		Enums:    append([]*Enum(nil), c.file.Enums...),
	}
}

func (c *Compiler) compileRecord(td *wit.TypeDef, r *wit.Record, name string) (*Message, error) {
	if cached, ok := c.cache.Load(td); ok {
		if m, ok := cached.(*Message); ok {
			return m, nil
		}
	}

	m := &Message{Name: name}
	number := int32(1)
	for _, wf := range r.Fields {
		fname := fieldName(wf.Name)
		path := []string{name, fname}

		if v, ok := variantOf(wf.Type); ok {
			members := make([]*Field, 0, len(v.Cases))
			for _, cs := range v.Cases {
				member := &Field{Name: fname + "_" + fieldName(cs.Name), Number: number}
				number++
				if cs.Type == nil {
					member.Kind = KindBool
				} else if err := c.compileType(member, cs.Type, name, append(path, cs.Name)); err != nil {
					return nil, err
				}
				if member.Optional {
					return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
						Path(append(path, cs.Name)...).
						Detail("option payload in a variant case").
						Build()
				}
				members = append(members, member)
			}
			m.AddOneof(fname, members...)
			continue
		}

		fd := &Field{Name: fname, Number: number}
		number++
		if err := c.compileType(fd, wf.Type, name, path); err != nil {
			return nil, err
		}
		m.AddField(fd)
	}

	c.cache.Store(td, m)
	c.file.Messages = append(c.file.Messages, m)
	Logger().Debug("compiled WIT record",
		zap.String("message", name),
		zap.Int("fields", len(m.Fields)),
		zap.Int("oneofs", len(m.Oneofs)))
	return m, nil
}

func (c *Compiler) compileEnum(td *wit.TypeDef, en *wit.Enum, name string) (*Enum, error) {
	if cached, ok := c.cache.Load(td); ok {
		if e, ok := cached.(*Enum); ok {
			return e, nil
		}
	}
	if len(en.Cases) == 0 {
		return nil, errors.InvalidData(errors.PhaseCompile, []string{name}, "enum declares no cases")
	}

	e := &Enum{Name: name, Values: make([]EnumValue, 0, len(en.Cases))}
	for i, cs := range en.Cases {
		e.Values = append(e.Values, EnumValue{
			Name:   strings.ToUpper(fieldName(cs.Name)),
			Number: int32(i),
		})
	}

	c.cache.Store(td, e)
	c.file.Enums = append(c.file.Enums, e)
	return e, nil
}

// compileType sets the kind of fd from t. scope names the enclosing message
// and is used to name anonymous records and enums.
func (c *Compiler) compileType(fd *Field, t wit.Type, scope string, path []string) error {
	switch t := t.(type) {
	case wit.Bool:
		fd.Kind = KindBool
	case wit.S8, wit.S16, wit.S32:
		fd.Kind = KindInt32
	case wit.S64:
		fd.Kind = KindInt64
	case wit.U8, wit.U16, wit.U32, wit.Char:
		fd.Kind = KindUint32
	case wit.U64:
		fd.Kind = KindUint64
	case wit.F32:
		fd.Kind = KindFloat
	case wit.F64:
		fd.Kind = KindDouble
	case wit.String:
		fd.Kind = KindString
	case *wit.TypeDef:
		return c.compileTypeDef(fd, t, scope, path)
	default:
		return errors.New(errors.PhaseCompile, errors.KindUnsupported).
			Path(path...).
			Detail("unsupported WIT type: %T", t).
			Build()
	}
	return nil
}

func (c *Compiler) compileTypeDef(fd *Field, td *wit.TypeDef, scope string, path []string) error {
	switch kind := td.Kind.(type) {
	case *wit.Record:
		m, err := c.compileRecord(td, kind, nestedName(td, scope, fd.Name))
		if err != nil {
			return err
		}
		fd.Kind, fd.Message = KindMessage, m
	case *wit.Enum:
		e, err := c.compileEnum(td, kind, nestedName(td, scope, fd.Name))
		if err != nil {
			return err
		}
		fd.Kind, fd.Enum = KindEnum, e
	case *wit.Option:
		if fd.Optional {
			return errors.New(errors.PhaseCompile, errors.KindUnsupported).
				Path(path...).
				Detail("nested option").
				Build()
		}
		fd.Optional = true
		return c.compileType(fd, kind.Type, scope, path)
	case *wit.List:
		if _, ok := kind.Type.(wit.U8); !ok {
			return errors.New(errors.PhaseCompile, errors.KindUnsupported).
				Path(path...).
				Detail("list<%s>: only list<u8> is supported", witTypeName(kind.Type)).
				Build()
		}
		fd.Kind = KindBytes
	case *wit.Variant:
		return errors.New(errors.PhaseCompile, errors.KindUnsupported).
			Path(path...).
			Detail("variant is only supported as a record field").
			Build()
	case wit.Type:
		return c.compileType(fd, kind, scope, path)
	default:
		return errors.New(errors.PhaseCompile, errors.KindUnsupported).
			Path(path...).
			Detail("unsupported TypeDef kind: %T", kind).
			Build()
	}
	return nil
}

func variantOf(t wit.Type) (*wit.Variant, bool) {
	td, ok := t.(*wit.TypeDef)
	if !ok {
		return nil, false
	}
	v, ok := td.Kind.(*wit.Variant)
	return v, ok
}

func nestedName(td *wit.TypeDef, scope, field string) string {
	if td.Name != nil {
		return messageName(*td.Name)
	}
	if scope == "" {
		return messageName(field)
	}
	return scope + "." + messageName(field)
}

// messageName converts a kebab-case WIT name to CamelCase.
func messageName(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		if r == '-' || r == '_' {
			upper = true
			continue
		}
		if upper {
			b.WriteString(strings.ToUpper(string(r)))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// fieldName converts a kebab-case WIT name to snake_case.
func fieldName(s string) string {
	return strings.ReplaceAll(s, "-", "_")
}

func witTypeName(t wit.Type) string {
	switch v := t.(type) {
	case nil:
		return "nil"
	case *wit.TypeDef:
		if v.Name != nil {
			return *v.Name
		}
		return "typedef"
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	default:
		return "unknown"
	}
}
