package schema

import (
	stderrors "errors"
	"sync"
	"testing"

	"github.com/wippyai/protocell/errors"
	"go.bytecodealliance.org/wit"
)

func strPtr(s string) *string { return &s }

func colorEnum() *wit.TypeDef {
	return &wit.TypeDef{
		Name: strPtr("color"),
		Kind: &wit.Enum{Cases: []wit.EnumCase{{Name: "unspecified"}, {Name: "red"}, {Name: "dark-blue"}}},
	}
}

func TestCompiler_Record(t *testing.T) {
	point := &wit.TypeDef{
		Name: strPtr("point"),
		Kind: &wit.Record{Fields: []wit.Field{
			{Name: "x", Type: wit.S32{}},
			{Name: "y", Type: wit.S32{}},
		}},
	}
	shape := &wit.TypeDef{
		Name: strPtr("shape-info"),
		Kind: &wit.Record{Fields: []wit.Field{
			{Name: "id", Type: wit.U64{}},
			{Name: "label", Type: wit.String{}},
			{Name: "weight", Type: &wit.TypeDef{Kind: &wit.Option{Type: wit.F32{}}}},
			{Name: "raw-data", Type: &wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}},
			{Name: "origin", Type: point},
			{Name: "color", Type: colorEnum()},
			{Name: "visible", Type: wit.Bool{}},
			{Name: "small", Type: wit.S8{}},
		}},
	}

	c := NewCompiler()
	m, err := c.CompileMessage(shape)
	if err != nil {
		t.Fatalf("CompileMessage failed: %v", err)
	}
	if m.Name != "ShapeInfo" {
		t.Errorf("Name = %q, want ShapeInfo", m.Name)
	}

	tests := []struct {
		name     string
		kind     Kind
		number   int32
		presence Presence
	}{
		{"id", KindUint64, 1, PresenceImplicit},
		{"label", KindString, 2, PresenceImplicit},
		{"weight", KindFloat, 3, PresenceExplicit},
		{"raw_data", KindBytes, 4, PresenceImplicit},
		{"origin", KindMessage, 5, PresenceExplicit},
		{"color", KindEnum, 6, PresenceImplicit},
		{"visible", KindBool, 7, PresenceImplicit},
		{"small", KindInt32, 8, PresenceImplicit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := m.Field(tt.name)
			if f == nil {
				t.Fatalf("field %q missing", tt.name)
			}
			if f.Kind != tt.kind || f.Number != tt.number || f.Presence() != tt.presence {
				t.Errorf("field = %v #%d %v, want %v #%d %v",
					f.Kind, f.Number, f.Presence(), tt.kind, tt.number, tt.presence)
			}
		})
	}

	if got := m.Field("origin").Message; got == nil || got.Name != "Point" {
		t.Errorf("origin message = %v, want Point", got)
	}
	e := m.Field("color").Enum
	if e == nil || e.Name != "Color" {
		t.Fatalf("color enum = %v, want Color", e)
	}
	if v, ok := e.ByNumber(2); !ok || v.Name != "DARK_BLUE" {
		t.Errorf("ByNumber(2) = %v, %v, want DARK_BLUE", v, ok)
	}

	file := c.File()
	if len(file.Messages) != 2 || len(file.Enums) != 1 {
		t.Errorf("File() has %d messages, %d enums, want 2, 1", len(file.Messages), len(file.Enums))
	}
	if err := file.Validate(); err != nil {
		t.Errorf("compiled file does not validate: %v", err)
	}
}

func TestCompiler_Variant(t *testing.T) {
	event := &wit.TypeDef{
		Name: strPtr("event"),
		Kind: &wit.Record{Fields: []wit.Field{
			{Name: "seq", Type: wit.U32{}},
			{Name: "payload", Type: &wit.TypeDef{Kind: &wit.Variant{Cases: []wit.Case{
				{Name: "text", Type: wit.String{}},
				{Name: "code", Type: wit.S64{}},
				{Name: "empty"},
			}}}},
			{Name: "after", Type: wit.Bool{}},
		}},
	}

	m, err := NewCompiler().CompileMessage(event)
	if err != nil {
		t.Fatalf("CompileMessage failed: %v", err)
	}

	o := m.Oneof("payload")
	if o == nil {
		t.Fatal("oneof payload missing")
	}
	want := []struct {
		name   string
		kind   Kind
		number int32
	}{
		{"payload_text", KindString, 2},
		{"payload_code", KindInt64, 3},
		{"payload_empty", KindBool, 4},
	}
	if len(o.Fields) != len(want) {
		t.Fatalf("oneof has %d members, want %d", len(o.Fields), len(want))
	}
	for i, w := range want {
		f := o.Fields[i]
		if f.Name != w.name || f.Kind != w.kind || f.Number != w.number {
			t.Errorf("member %d = %s %v #%d, want %s %v #%d", i, f.Name, f.Kind, f.Number, w.name, w.kind, w.number)
		}
		if !f.HasPresence() {
			t.Errorf("member %s should track presence", f.Name)
		}
	}
	if got := m.Field("after").Number; got != 5 {
		t.Errorf("after.Number = %d, want 5", got)
	}
}

func TestCompiler_Unsupported(t *testing.T) {
	tests := []struct {
		typ  wit.Type
		name string
	}{
		{name: "list of u32", typ: &wit.TypeDef{Kind: &wit.List{Type: wit.U32{}}}},
		{name: "tuple", typ: &wit.TypeDef{Kind: &wit.Tuple{Types: []wit.Type{wit.U32{}, wit.U32{}}}}},
		{name: "result", typ: &wit.TypeDef{Kind: &wit.Result{OK: wit.S32{}, Err: wit.String{}}}},
		{name: "nested option", typ: &wit.TypeDef{Kind: &wit.Option{Type: &wit.TypeDef{Kind: &wit.Option{Type: wit.U8{}}}}}},
		{name: "bare variant", typ: &wit.TypeDef{Kind: &wit.Variant{Cases: []wit.Case{{Name: "a"}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCompiler().CompileField("f", 1, tt.typ)
			if err == nil {
				t.Fatal("CompileField succeeded, want error")
			}
			target := &errors.Error{Phase: errors.PhaseCompile, Kind: errors.KindUnsupported}
			if !stderrors.Is(err, target) {
				t.Errorf("error = %v, want compile/unsupported", err)
			}
		})
	}
}

func TestCompiler_NotARecord(t *testing.T) {
	c := NewCompiler()
	if _, err := c.CompileMessage(wit.U32{}); err == nil {
		t.Error("CompileMessage(u32) should fail")
	}
	if _, err := c.CompileMessage(colorEnum()); err == nil {
		t.Error("CompileMessage(enum) should fail")
	}
	anon := &wit.TypeDef{Kind: &wit.Record{Fields: []wit.Field{{Name: "a", Type: wit.U8{}}}}}
	if _, err := c.CompileMessage(anon); err == nil {
		t.Error("CompileMessage(anonymous record) should fail")
	}
}

func TestCompiler_Cache(t *testing.T) {
	rec := &wit.TypeDef{
		Name: strPtr("cached"),
		Kind: &wit.Record{Fields: []wit.Field{{Name: "v", Type: wit.U16{}}}},
	}
	c := NewCompiler()

	var wg sync.WaitGroup
	results := make([]*Message, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m, err := c.CompileMessage(rec)
			if err != nil {
				t.Errorf("CompileMessage failed: %v", err)
				return
			}
			results[i] = m
		}(i)
	}
	wg.Wait()

	for i, m := range results {
		if m != results[0] {
			t.Errorf("result %d is a different descriptor", i)
		}
	}
	if n := len(c.File().Messages); n != 1 {
		t.Errorf("File() has %d messages, want 1", n)
	}
}

func TestCompiler_Enum(t *testing.T) {
	e, err := NewCompiler().CompileEnum(colorEnum())
	if err != nil {
		t.Fatalf("CompileEnum failed: %v", err)
	}
	if e.Default().Name != "UNSPECIFIED" || e.Default().Number != 0 {
		t.Errorf("Default() = %v", e.Default())
	}

	empty := &wit.TypeDef{Name: strPtr("empty"), Kind: &wit.Enum{}}
	if _, err := NewCompiler().CompileEnum(empty); err == nil {
		t.Error("CompileEnum(empty) should fail")
	}
}
