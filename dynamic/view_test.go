package dynamic

import (
	"sync"
	"testing"

	"github.com/wippyai/protocell/errors"
	"github.com/wippyai/protocell/schema"
)

func TestViewObservesWrites(t *testing.T) {
	m := newRecord(t)
	v := m.AsView()
	if has, _ := v.Has("opt_i32"); has {
		t.Fatal("opt_i32 should start unset")
	}

	mustSet(t, m, "opt_i32", 9)
	opt, err := v.Opt("opt_i32")
	if err != nil || !opt.IsSet() || opt.Value().Int() != 9 {
		t.Errorf("Opt(opt_i32) = %v, %v, want Set(9)", opt, err)
	}
	if v.Descriptor() != m.Descriptor() {
		t.Error("view descriptor differs from message descriptor")
	}
}

func TestViewOutlivesItsSource(t *testing.T) {
	m := newRecord(t)
	mustSet(t, m, "choice_s", "kept")

	active := func() string {
		view := m.AsView()
		f, err := view.WhichOneof("choice")
		if err != nil || f == nil {
			return ""
		}
		v, _ := view.Get(f.Name)
		return v.String()
	}()
	if active != "kept" {
		t.Errorf("active member = %q, want kept", active)
	}

	child := func() View {
		c, _ := m.Mutable("child")
		mustSet(t, c, "bb", 6)
		nested, err := m.AsView().Message("child")
		if err != nil {
			t.Fatal(err)
		}
		return nested
	}()
	if got, _ := child.Get("bb"); got.Int() != 6 {
		t.Errorf("child.bb = %d, want 6", got.Int())
	}
}

func TestViewOfUnsetMessageReadsDefaults(t *testing.T) {
	m := newRecord(t)
	nested, err := m.AsView().Message("choice_msg")
	if err != nil {
		t.Fatal(err)
	}
	if !nested.IsValid() {
		t.Fatal("view of an unset message field should still be valid")
	}
	if got, _ := nested.Get("bb"); got.Int() != 0 {
		t.Errorf("bb = %d, want 0", got.Int())
	}
	if f, _ := m.WhichOneof("choice"); f != nil {
		t.Error("reading through a view must not activate the member")
	}
	if nested.String() != "" {
		t.Errorf("String() = %q, want empty", nested.String())
	}

	if _, err := m.AsView().Message("i32"); !isKind(err, errors.KindTypeMismatch) {
		t.Errorf("Message(i32) error = %v, want type_mismatch", err)
	}
}

func TestZeroView(t *testing.T) {
	var v View
	if v.IsValid() {
		t.Error("zero View should not be valid")
	}
	if v.Descriptor() != nil {
		t.Error("zero View should have no descriptor")
	}
	if _, err := v.Get("x"); !isKind(err, errors.KindNilPointer) {
		t.Errorf("Get error = %v, want nil_pointer", err)
	}
	if v.ToOwned() != nil {
		t.Error("ToOwned of zero View should be nil")
	}
	v.Range(func(_ *schema.Field, _ Value) bool {
		t.Error("Range on zero View should not call fn")
		return true
	})
}

func TestViewToOwned(t *testing.T) {
	m := newRecord(t)
	mustSet(t, m, "s", "a")
	owned := m.AsView().ToOwned()
	mustSet(t, m, "s", "b")
	if got := mustGet(t, owned, "s").String(); got != "a" {
		t.Errorf("owned s = %q, want a", got)
	}
}

func TestConcurrentViewReads(t *testing.T) {
	m := newRecord(t)
	mustSet(t, m, "s", "shared")
	mustSet(t, m, "choice_u32", 3)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := m.AsView()
			for j := 0; j < 50; j++ {
				s, err := v.Get("s")
				if err != nil || s.String() != "shared" {
					t.Errorf("Get(s) = %v, %v", s, err)
					return
				}
				if _, err := v.Message("child"); err != nil {
					t.Errorf("Message(child) failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestViewValuesAreReadOnly(t *testing.T) {
	m := newRecord(t)
	c, _ := m.Mutable("child")
	mustSet(t, c, "bb", 1)
	v := m.AsView()

	got, err := v.Get("child")
	if err != nil {
		t.Fatal(err)
	}
	if got.Message() != nil {
		t.Fatal("Get through a view must not expose the nested *Message")
	}
	if _, ok := got.Interface().(View); !ok {
		t.Errorf("Interface() = %T, want View", got.Interface())
	}
	if bb, _ := got.View().Get("bb"); bb.Int() != 1 {
		t.Errorf("child.bb through Value.View = %d, want 1", bb.Int())
	}

	opt, err := v.Opt("child")
	if err != nil || !opt.IsSet() {
		t.Fatalf("Opt(child) = %v, %v, want set", opt, err)
	}
	if opt.Value().Message() != nil {
		t.Error("Opt through a view must not expose the nested *Message")
	}

	v.Range(func(f *schema.Field, val Value) bool {
		if val.Message() != nil {
			t.Errorf("Range exposed *Message for %s", f.Name)
		}
		return true
	})

	if bb := mustGet(t, c, "bb"); bb.Int() != 1 {
		t.Errorf("owner child.bb = %d, want 1", bb.Int())
	}
	if !got.Equal(mustGet(t, m, "child")) {
		t.Error("read-only value should equal the owned value")
	}
}

func TestSetFromViewValueCopies(t *testing.T) {
	src := newRecord(t)
	c, _ := src.Mutable("child")
	mustSet(t, c, "bb", 5)

	val, _ := src.AsView().Get("child")
	dst := New(src.Descriptor())
	mustSet(t, dst, "child", val)
	mustSet(t, c, "bb", 6)

	if got := mustGet(t, mustGet(t, dst, "child").Message(), "bb").Int(); got != 5 {
		t.Errorf("dst child.bb = %d, want 5", got)
	}

	nested, _ := src.AsView().Message("child")
	mustSet(t, dst, "choice_msg", nested)
	if f, _ := dst.WhichOneof("choice"); f == nil || f.Name != "choice_msg" {
		t.Errorf("active member = %v, want choice_msg", f)
	}
}
