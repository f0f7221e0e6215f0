package schema

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/wippyai/protocell/errors"
	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// witPrefix marks a field type written as a WIT type name, for example
// "wit:u8" or "wit:char".
const witPrefix = "wit:"

type document struct {
	Package  string       `yaml:"package" toml:"package"`
	Enums    []enumDoc    `yaml:"enums" toml:"enums"`
	Messages []messageDoc `yaml:"messages" toml:"messages"`
}

type enumDoc struct {
	Name   string         `yaml:"name" toml:"name"`
	Values []enumValueDoc `yaml:"values" toml:"values"`
}

type enumValueDoc struct {
	Name   string `yaml:"name" toml:"name"`
	Number int32  `yaml:"number" toml:"number"`
}

type messageDoc struct {
	Name     string       `yaml:"name" toml:"name"`
	Fields   []fieldDoc   `yaml:"fields" toml:"fields"`
	Oneofs   []oneofDoc   `yaml:"oneofs" toml:"oneofs"`
	Messages []messageDoc `yaml:"messages" toml:"messages"`
	Enums    []enumDoc    `yaml:"enums" toml:"enums"`
}

type oneofDoc struct {
	Name   string     `yaml:"name" toml:"name"`
	Fields []fieldDoc `yaml:"fields" toml:"fields"`
}

type fieldDoc struct {
	Name     string `yaml:"name" toml:"name"`
	Type     string `yaml:"type" toml:"type"`
	Number   int32  `yaml:"number" toml:"number"`
	Optional bool   `yaml:"optional" toml:"optional"`
}

// LoadYAML parses a YAML schema document and validates it.
func LoadYAML(data []byte) (*File, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.Load("decode YAML schema", err)
	}
	return build(&doc)
}

// LoadTOML parses a TOML schema document and validates it. Keys the
// document format does not define are rejected.
func LoadTOML(data []byte) (*File, error) {
	var doc document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, errors.Load("decode TOML schema", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.PhaseLoad, errors.KindFieldUnknown).
			Detail("unknown key %q", undecoded[0].String()).
			Build()
	}
	return build(&doc)
}

// LoadFile reads a schema document, choosing the format by extension:
// .yaml and .yml are YAML, .toml is TOML.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load("read schema "+path, err)
	}

	var f *File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		f, err = LoadYAML(data)
	case ".toml":
		f, err = LoadTOML(data)
	default:
		return nil, errors.Unsupported(errors.PhaseLoad, "schema file extension "+ext)
	}
	if err != nil {
		return nil, err
	}

	Logger().Info("schema loaded",
		zap.String("path", path),
		zap.String("package", f.Package),
		zap.Int("messages", len(f.Messages)),
		zap.Int("enums", len(f.Enums)))
	return f, nil
}

func build(doc *document) (*File, error) {
	b := &builder{
		file:     &File{Package: doc.Package},
		compiler: NewCompiler(),
	}
	for i := range doc.Enums {
		b.enum(&doc.Enums[i], "")
	}
	for i := range doc.Messages {
		if err := b.message(&doc.Messages[i], ""); err != nil {
			return nil, err
		}
	}

	compiled := b.compiler.File()
	b.file.Messages = append(b.file.Messages, compiled.Messages...)
	b.file.Enums = append(b.file.Enums, compiled.Enums...)

	if err := b.file.Validate(); err != nil {
		return nil, err
	}
	return b.file, nil
}

type builder struct {
	file     *File
	compiler *Compiler
}

func (b *builder) enum(doc *enumDoc, scope string) {
	e := &Enum{Name: qualify(scope, doc.Name)}
	for _, v := range doc.Values {
		e.Values = append(e.Values, EnumValue(v))
	}
	b.file.Enums = append(b.file.Enums, e)
}

func (b *builder) message(doc *messageDoc, scope string) error {
	m := &Message{Name: qualify(scope, doc.Name)}
	b.file.Messages = append(b.file.Messages, m)

	for i := range doc.Fields {
		f, err := b.field(&doc.Fields[i], m.Name)
		if err != nil {
			return err
		}
		m.AddField(f)
	}
	for _, od := range doc.Oneofs {
		members := make([]*Field, 0, len(od.Fields))
		for i := range od.Fields {
			f, err := b.field(&od.Fields[i], m.Name)
			if err != nil {
				return err
			}
			members = append(members, f)
		}
		m.AddOneof(od.Name, members...)
	}

	for i := range doc.Enums {
		b.enum(&doc.Enums[i], m.Name)
	}
	for i := range doc.Messages {
		if err := b.message(&doc.Messages[i], m.Name); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) field(doc *fieldDoc, scope string) (*Field, error) {
	path := []string{scope, doc.Name}
	typ := strings.TrimSpace(doc.Type)
	if typ == "" {
		return nil, errors.InvalidData(errors.PhaseLoad, path, "field type is empty")
	}

	if expr, ok := strings.CutPrefix(typ, witPrefix); ok {
		t, err := wit.ParseType(strings.TrimSpace(expr))
		if err != nil {
			return nil, errors.New(errors.PhaseLoad, errors.KindInvalidData).
				Path(path...).
				Cause(err).
				Detail("parse WIT type %q", expr).
				Build()
		}
		f, err := b.compiler.CompileField(doc.Name, doc.Number, t)
		if err != nil {
			return nil, err
		}
		f.Optional = f.Optional || doc.Optional
		return f, nil
	}

	f := &Field{Name: doc.Name, Number: doc.Number, Optional: doc.Optional}
	if k, ok := ParseKind(typ); ok {
		if k == KindEnum || k == KindMessage {
			return nil, errors.InvalidData(errors.PhaseLoad, path,
				k.String()+" fields must name the "+k.String()+" type")
		}
		f.Kind = k
		return f, nil
	}
	f.TypeName = typ
	return f, nil
}

func qualify(scope, name string) string {
	if scope == "" {
		return name
	}
	return scope + "." + name
}
