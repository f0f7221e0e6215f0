package dynamic

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/protocell"
	"github.com/wippyai/protocell/errors"
	"github.com/wippyai/protocell/schema"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const testSchema = `
package: test
enums:
  - name: Color
    values:
      - {name: COLOR_UNSPECIFIED, number: 0}
      - {name: RED, number: 1}
      - {name: BLUE, number: 2}
messages:
  - name: Nested
    fields:
      - {name: bb, number: 1, type: int32}
  - name: Other
    fields:
      - {name: bb, number: 1, type: int32}
  - name: Record
    fields:
      - {name: i32, number: 1, type: int32}
      - {name: u32, number: 2, type: uint32}
      - {name: i64, number: 3, type: sint64}
      - {name: u64, number: 4, type: fixed64}
      - {name: f, number: 5, type: float}
      - {name: d, number: 6, type: double}
      - {name: flag, number: 7, type: bool}
      - {name: s, number: 8, type: string}
      - {name: b, number: 9, type: bytes}
      - {name: color, number: 10, type: Color}
      - {name: opt_i32, number: 11, type: int32, optional: true}
      - {name: opt_s, number: 12, type: string, optional: true}
      - {name: opt_color, number: 13, type: Color, optional: true}
      - {name: child, number: 14, type: Nested}
    oneofs:
      - name: choice
        fields:
          - {name: choice_u32, number: 20, type: uint32}
          - {name: choice_s, number: 21, type: string}
          - {name: choice_b, number: 22, type: bytes}
          - {name: choice_msg, number: 23, type: Nested}
`

func loadSchema(t *testing.T) *schema.File {
	t.Helper()
	f, err := schema.LoadYAML([]byte(testSchema))
	if err != nil {
		t.Fatalf("LoadYAML failed: %v", err)
	}
	return f
}

func newRecord(t *testing.T) *Message {
	t.Helper()
	return New(loadSchema(t).Message("Record"))
}

func mustSet(t *testing.T, m *Message, name string, v any) {
	t.Helper()
	if err := m.Set(name, v); err != nil {
		t.Fatalf("Set(%s, %v) failed: %v", name, v, err)
	}
}

func mustGet(t *testing.T, m *Message, name string) Value {
	t.Helper()
	v, err := m.Get(name)
	if err != nil {
		t.Fatalf("Get(%s) failed: %v", name, err)
	}
	return v
}

func isKind(err error, kind errors.Kind) bool {
	var e *errors.Error
	return stderrors.As(err, &e) && e.Kind == kind
}

func TestImplicitPresence(t *testing.T) {
	m := newRecord(t)
	empty := New(m.Descriptor())

	mustSet(t, m, "i32", 0)
	mustSet(t, m, "s", "")
	mustSet(t, m, "b", []byte{})
	mustSet(t, m, "color", "COLOR_UNSPECIFIED")
	if !m.Equal(empty) {
		t.Error("setting defaults on implicit fields should leave no trace")
	}

	mustSet(t, m, "i32", 5)
	if got := mustGet(t, m, "i32").Int(); got != 5 {
		t.Errorf("i32 = %d, want 5", got)
	}
	mustSet(t, m, "i32", 0)
	if !m.Equal(empty) {
		t.Error("resetting i32 to 0 should match a fresh message")
	}

	if _, err := m.Has("i32"); !isKind(err, errors.KindNoPresence) {
		t.Errorf("Has(i32) error = %v, want no_presence", err)
	}
	if _, err := m.Opt("s"); !isKind(err, errors.KindNoPresence) {
		t.Errorf("Opt(s) error = %v, want no_presence", err)
	}
}

func TestExplicitPresence(t *testing.T) {
	m := newRecord(t)
	if has, _ := m.Has("opt_i32"); has {
		t.Fatal("opt_i32 should start unset")
	}
	opt, err := m.Opt("opt_i32")
	if err != nil || opt.IsSet() || opt.Value().Int() != 0 {
		t.Fatalf("Opt(opt_i32) = %v, %v, want Unset(0)", opt, err)
	}

	mustSet(t, m, "opt_i32", 0)
	if has, _ := m.Has("opt_i32"); !has {
		t.Error("setting 0 should mark opt_i32 set")
	}
	if opt, _ := m.Opt("opt_i32"); !opt.IsSet() || opt.Value().Int() != 0 {
		t.Errorf("Opt(opt_i32) = %v, want Set(0)", opt)
	}
	if m.Equal(New(m.Descriptor())) {
		t.Error("message with opt_i32 set to 0 should differ from an empty one")
	}

	mustSet(t, m, "opt_s", "")
	if opt, _ := m.Opt("opt_s"); !opt.IsSet() || opt.Value().String() != "" {
		t.Errorf("Opt(opt_s) = %v, want Set(\"\")", opt)
	}

	if opt, _ := m.Opt("opt_color"); opt.IsSet() || opt.Value().Enum() != 0 {
		t.Errorf("Opt(opt_color) = %v, want Unset(0)", opt)
	}
	mustSet(t, m, "opt_color", "COLOR_UNSPECIFIED")
	if opt, _ := m.Opt("opt_color"); !opt.IsSet() {
		t.Error("opt_color should be set to its default")
	}

	if err := m.Clear("opt_i32"); err != nil {
		t.Fatal(err)
	}
	if has, _ := m.Has("opt_i32"); has {
		t.Error("Clear should unset opt_i32")
	}
}

func TestSetTypeChecks(t *testing.T) {
	other := New(loadSchema(t).Message("Other"))

	tests := []struct {
		value any
		name  string
		field string
		kind  errors.Kind
	}{
		{name: "int32 overflow", field: "i32", value: int64(1) << 40, kind: errors.KindOverflow},
		{name: "int32 underflow", field: "i32", value: int64(-1) << 40, kind: errors.KindOverflow},
		{name: "negative uint32", field: "u32", value: -1, kind: errors.KindOverflow},
		{name: "uint32 overflow", field: "u32", value: uint64(1) << 32, kind: errors.KindOverflow},
		{name: "negative fixed64", field: "u64", value: int8(-1), kind: errors.KindOverflow},
		{name: "string into int", field: "i32", value: "1", kind: errors.KindTypeMismatch},
		{name: "float into int", field: "i64", value: 1.5, kind: errors.KindTypeMismatch},
		{name: "int into bool", field: "flag", value: 1, kind: errors.KindTypeMismatch},
		{name: "int into float", field: "f", value: 1, kind: errors.KindTypeMismatch},
		{name: "float32 overflow", field: "f", value: 1e40, kind: errors.KindOverflow},
		{name: "int into string", field: "s", value: 3, kind: errors.KindTypeMismatch},
		{name: "unknown enum name", field: "color", value: "GREEN", kind: errors.KindInvalidEnum},
		{name: "enum number overflow", field: "color", value: int64(1) << 33, kind: errors.KindOverflow},
		{name: "wrong message type", field: "child", value: other, kind: errors.KindTypeMismatch},
		{name: "string into message", field: "child", value: "x", kind: errors.KindTypeMismatch},
		{name: "unknown field", field: "nope", value: 1, kind: errors.KindFieldUnknown},
		{name: "invalid Value", field: "i32", value: Value{}, kind: errors.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newRecord(t)
			err := m.Set(tt.field, tt.value)
			if !isKind(err, tt.kind) {
				t.Errorf("Set(%s, %v) error = %v, want %s", tt.field, tt.value, err, tt.kind)
			}
			if !m.Equal(New(m.Descriptor())) {
				t.Error("a rejected Set must not modify the message")
			}
		})
	}
}

func TestSetAcceptedValues(t *testing.T) {
	type myEnum int32

	tests := []struct {
		value any
		check func(Value) bool
		field string
	}{
		{field: "i32", value: int8(-3), check: func(v Value) bool { return v.Int() == -3 }},
		{field: "i32", value: Int32Value(7), check: func(v Value) bool { return v.Int() == 7 }},
		{field: "u32", value: uint16(65535), check: func(v Value) bool { return v.Uint() == 65535 }},
		{field: "i64", value: int64(-1) << 62, check: func(v Value) bool { return v.Int() == -1<<62 }},
		{field: "u64", value: uint64(1<<64 - 1), check: func(v Value) bool { return v.Uint() == 1<<64-1 }},
		{field: "f", value: float32(0.5), check: func(v Value) bool { return v.Float() == 0.5 }},
		{field: "d", value: 2.25, check: func(v Value) bool { return v.Float() == 2.25 }},
		{field: "flag", value: true, check: func(v Value) bool { return v.Bool() }},
		{field: "s", value: []byte("from bytes"), check: func(v Value) bool { return v.String() == "from bytes" }},
		{field: "b", value: "from string", check: func(v Value) bool { return string(v.Bytes()) == "from string" }},
		{field: "color", value: "BLUE", check: func(v Value) bool { return v.Enum() == 2 }},
		{field: "color", value: myEnum(1), check: func(v Value) bool { return v.Enum() == 1 }},
		{field: "color", value: schema.EnumValue{Name: "RED", Number: 1}, check: func(v Value) bool { return v.Enum() == 1 }},
		// Enums are open: undeclared numbers are kept.
		{field: "color", value: 99, check: func(v Value) bool { return v.Enum() == 99 }},
		{field: "color", value: -4, check: func(v Value) bool { return v.Enum() == -4 }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			m := newRecord(t)
			mustSet(t, m, tt.field, tt.value)
			if got := mustGet(t, m, tt.field); !tt.check(got) {
				t.Errorf("Get(%s) = %v after Set(%v)", tt.field, got, tt.value)
			}
		})
	}
}

func TestBytesAreCopied(t *testing.T) {
	m := newRecord(t)
	in := []byte("abc")
	mustSet(t, m, "b", in)
	in[0] = 'X'
	if got := string(mustGet(t, m, "b").Bytes()); got != "abc" {
		t.Errorf("b = %q, want abc", got)
	}
	if got := mustGet(t, newRecord(t), "b").Bytes(); got == nil || len(got) != 0 {
		t.Errorf("unset b = %#v, want empty non-nil", got)
	}
}

func TestOneof(t *testing.T) {
	m := newRecord(t)
	if f, _ := m.WhichOneof("choice"); f != nil {
		t.Fatalf("WhichOneof = %v, want nil", f.Name)
	}

	mustSet(t, m, "choice_u32", 0)
	if f, _ := m.WhichOneof("choice"); f == nil || f.Name != "choice_u32" {
		t.Fatal("choice_u32 should be active even when set to 0")
	}
	if has, err := m.Has("choice_u32"); err != nil || !has {
		t.Errorf("Has(choice_u32) = %v, %v, want true", has, err)
	}

	mustSet(t, m, "choice_s", "x")
	if f, _ := m.WhichOneof("choice"); f.Name != "choice_s" {
		t.Errorf("WhichOneof = %s, want choice_s", f.Name)
	}
	if has, _ := m.Has("choice_u32"); has {
		t.Error("choice_u32 should be unset after choice_s was set")
	}
	if got := mustGet(t, m, "choice_u32").Uint(); got != 0 {
		t.Errorf("displaced choice_u32 reads %d, want 0", got)
	}

	// Clearing an inactive member does nothing.
	if err := m.Clear("choice_u32"); err != nil {
		t.Fatal(err)
	}
	if f, _ := m.WhichOneof("choice"); f == nil || f.Name != "choice_s" {
		t.Error("clearing an inactive member must keep the active one")
	}

	if err := m.ClearOneof("choice"); err != nil {
		t.Fatal(err)
	}
	if f, _ := m.WhichOneof("choice"); f != nil {
		t.Errorf("WhichOneof after ClearOneof = %s, want nil", f.Name)
	}
	if !m.Equal(New(m.Descriptor())) {
		t.Error("message should be empty after ClearOneof")
	}

	if _, err := m.WhichOneof("missing"); !isKind(err, errors.KindNotFound) {
		t.Errorf("WhichOneof(missing) error = %v, want not_found", err)
	}
}

func TestMutable(t *testing.T) {
	m := newRecord(t)
	if has, _ := m.Has("child"); has {
		t.Fatal("child should start unset")
	}
	if got := mustGet(t, m, "child").Message(); got != nil {
		t.Errorf("unset child = %v, want nil", got)
	}

	child, err := m.Mutable("child")
	if err != nil {
		t.Fatal(err)
	}
	mustSet(t, child, "bb", 4)
	if has, _ := m.Has("child"); !has {
		t.Error("Mutable should materialize child")
	}
	if got := mustGet(t, mustGet(t, m, "child").Message(), "bb").Int(); got != 4 {
		t.Errorf("child.bb = %d, want 4", got)
	}

	again, _ := m.Mutable("child")
	if again != child {
		t.Error("Mutable on a set field should return the existing message")
	}

	mustSet(t, m, "choice_s", "x")
	cm, err := m.Mutable("choice_msg")
	if err != nil {
		t.Fatal(err)
	}
	if f, _ := m.WhichOneof("choice"); f.Name != "choice_msg" {
		t.Errorf("Mutable should activate choice_msg, active is %s", f.Name)
	}
	if got := mustGet(t, cm, "bb").Int(); got != 0 {
		t.Errorf("new choice_msg.bb = %d, want 0", got)
	}

	if _, err := m.Mutable("i32"); !isKind(err, errors.KindTypeMismatch) {
		t.Errorf("Mutable(i32) error = %v, want type_mismatch", err)
	}
}

func TestSetMessageCopies(t *testing.T) {
	file := loadSchema(t)
	m := New(file.Message("Record"))
	child := New(file.Message("Nested"))
	mustSet(t, child, "bb", 1)

	mustSet(t, m, "child", child)
	mustSet(t, child, "bb", 2)
	if got := mustGet(t, mustGet(t, m, "child").Message(), "bb").Int(); got != 1 {
		t.Errorf("child.bb = %d, want 1", got)
	}

	mustSet(t, m, "child", (*Message)(nil))
	if has, _ := m.Has("child"); has {
		t.Error("setting nil should clear child")
	}

	mustSet(t, m, "child", child)
	mustSet(t, m, "child", nil)
	if has, _ := m.Has("child"); has {
		t.Error("setting untyped nil should clear child")
	}
	if err := m.Set("i32", nil); !isKind(err, errors.KindTypeMismatch) {
		t.Errorf("Set(i32, nil) error = %v, want type_mismatch", err)
	}
}

func TestCloneEqual(t *testing.T) {
	m := newRecord(t)
	mustSet(t, m, "s", "text")
	mustSet(t, m, "b", []byte{1, 2})
	child, _ := m.Mutable("child")
	mustSet(t, child, "bb", 3)
	mustSet(t, m, "choice_b", []byte("z"))

	c := m.Clone()
	if !c.Equal(m) || !protocell.Equal(c, m) {
		t.Fatal("clone should equal original")
	}

	cc, _ := c.Mutable("child")
	mustSet(t, cc, "bb", 30)
	if got := mustGet(t, child, "bb").Int(); got != 3 {
		t.Errorf("original child.bb = %d after changing clone, want 3", got)
	}
	if c.Equal(m) {
		t.Error("clone and original should differ after modification")
	}

	typed := protocell.Clone(m)
	if !typed.Equal(m) {
		t.Error("protocell.Clone should return an equal copy")
	}

	m.Reset()
	if !m.Equal(New(m.Descriptor())) {
		t.Error("Reset should empty the message")
	}
	if f, _ := m.WhichOneof("choice"); f != nil {
		t.Error("Reset should clear oneofs")
	}
}

func TestRangeOrder(t *testing.T) {
	m := newRecord(t)
	mustSet(t, m, "choice_s", "c")
	mustSet(t, m, "opt_s", "")
	mustSet(t, m, "i32", 1)
	mustSet(t, m, "u32", 0)

	var names []string
	m.Range(func(f *schema.Field, _ Value) bool {
		names = append(names, f.Name)
		return true
	})
	want := []string{"i32", "opt_s", "choice_s"}
	if len(names) != len(want) {
		t.Fatalf("Range visited %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Range[%d] = %s, want %s", i, names[i], want[i])
		}
	}

	count := 0
	m.Range(func(*schema.Field, Value) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("Range visited %d fields after stop, want 1", count)
	}
}

func TestString(t *testing.T) {
	m := newRecord(t)
	mustSet(t, m, "i32", 5)
	mustSet(t, m, "color", "RED")
	child, _ := m.Mutable("child")
	mustSet(t, child, "bb", 2)
	mustSet(t, m, "choice_s", "x")

	want := `i32: 5 color: RED child { bb: 2 } choice_s: "x"`
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	mustSet(t, m, "color", 42)
	if got := New(m.Descriptor()).String(); got != "" {
		t.Errorf("empty String() = %q", got)
	}
	e := New(m.Descriptor())
	mustSet(t, e, "color", 42)
	if got := e.String(); got != "color: 42" {
		t.Errorf("String() = %q, want color: 42", got)
	}
}

func TestSetText(t *testing.T) {
	tests := []struct {
		field string
		text  string
		want  string
		kind  errors.Kind
	}{
		{field: "i32", text: "-12", want: "-12"},
		{field: "u32", text: "0x10", want: "16"},
		{field: "u64", text: "18446744073709551615", want: "18446744073709551615"},
		{field: "d", text: "2.5", want: "2.5"},
		{field: "flag", text: "true", want: "true"},
		{field: "s", text: "hello", want: "hello"},
		{field: "color", text: "BLUE", want: "2"},
		{field: "color", text: "17", want: "17"},
		{field: "i32", text: "3000000000", kind: errors.KindOverflow},
		{field: "u32", text: "abc", kind: errors.KindInvalidInput},
		{field: "color", text: "PURPLE", kind: errors.KindInvalidEnum},
		{field: "child", text: "x", kind: errors.KindUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.field+"="+tt.text, func(t *testing.T) {
			m := newRecord(t)
			err := m.SetText(tt.field, tt.text)
			if tt.kind != "" {
				if !isKind(err, tt.kind) {
					t.Errorf("SetText error = %v, want %s", err, tt.kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("SetText failed: %v", err)
			}
			if got := mustGet(t, m, tt.field).String(); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestOneofDisplacementIsLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	defer SetLogger(prev)

	m := newRecord(t)
	mustSet(t, m, "choice_u32", 1)
	mustSet(t, m, "choice_s", "x")
	if _, err := m.Mutable("child"); err != nil {
		t.Fatal(err)
	}

	displaced := logs.FilterMessage("oneof member displaced").All()
	if len(displaced) != 1 {
		t.Fatalf("logged %d displacements, want 1", len(displaced))
	}
	fields := displaced[0].ContextMap()
	if fields["from"] != "choice_u32" || fields["to"] != "choice_s" {
		t.Errorf("displacement fields = %v", fields)
	}
	if n := logs.FilterMessage("message field materialized").Len(); n != 1 {
		t.Errorf("logged %d materializations, want 1", n)
	}
}

func TestSetLoggerNilRestoresNop(t *testing.T) {
	prev := Logger()
	defer SetLogger(prev)

	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() is nil after SetLogger(nil)")
	}
	m := newRecord(t)
	mustSet(t, m, "choice_u32", 1)
	mustSet(t, m, "choice_s", "x")
}
