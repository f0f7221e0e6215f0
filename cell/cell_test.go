package cell

import (
	"bytes"
	"testing"

	"github.com/wippyai/protocell"
)

type point struct {
	x Implicit[int32]
	y Explicit[int32]
}

func (p *point) Reset() { *p = point{} }

func (p *point) CloneMessage() protocell.Message {
	c := *p
	return &c
}

func (p *point) EqualMessage(other protocell.Message) bool {
	o, ok := other.(*point)
	if !ok {
		return false
	}
	return p.x.Get() == o.x.Get() && p.y.Has() == o.y.Has() && p.y.Get() == o.y.Get()
}

type testCase int32

const (
	caseNotSet testCase = iota
	caseNum
	caseFlag
	caseText
	caseData
	casePoint
	caseRatio
)

func TestImplicitClearIsUnobservable(t *testing.T) {
	var c Implicit[uint32]
	if got := c.Get(); got != 0 {
		t.Fatalf("Get() = %d, want 0", got)
	}
	c.Set(42)
	if got := c.Get(); got != 42 {
		t.Errorf("Get() = %d, want 42", got)
	}
	c.Clear()
	if c != (Implicit[uint32]{}) {
		t.Errorf("cleared cell %+v differs from a fresh one", c)
	}
}

func TestExplicitZeroIsSet(t *testing.T) {
	var c Explicit[bool]
	if c.Has() {
		t.Fatal("fresh cell should be unset")
	}
	if opt := c.Opt(); opt.IsSet() || opt.Value() {
		t.Errorf("Opt() = %v, want Unset(false)", opt)
	}

	c.Set(false)
	if !c.Has() {
		t.Error("setting the zero value should mark the cell set")
	}
	if opt := c.Opt(); opt != protocell.Set(false) {
		t.Errorf("Opt() = %v, want Set(false)", opt)
	}

	c.Clear()
	if c.Has() {
		t.Error("Clear should unset the cell")
	}
}

func TestExplicitFloatRoundTrip(t *testing.T) {
	values := []float64{0, -0.5, 1e300, 3.25}
	for _, v := range values {
		var c Explicit[float64]
		c.Set(v)
		if got := c.Get(); got != v {
			t.Errorf("Get() = %v, want %v", got, v)
		}
	}
}

func TestBytesCopiesInput(t *testing.T) {
	var c Bytes
	if got := c.Get(); got == nil || len(got) != 0 {
		t.Fatalf("Get() = %#v, want empty non-nil", got)
	}

	buf := []byte("hello world")
	c.Set(buf)
	buf[0] = 'j'
	if got := c.Get(); !bytes.Equal(got, []byte("hello world")) {
		t.Errorf("Get() = %q, caller buffer was aliased", got)
	}

	c.SetString("accessors_test")
	if got := c.Get(); string(got) != "accessors_test" {
		t.Errorf("Get() = %q, want accessors_test", got)
	}

	c.Set(nil)
	if got := c.Get(); len(got) != 0 {
		t.Errorf("Get() = %q, want empty", got)
	}
}

func TestExplicitBytes(t *testing.T) {
	var c ExplicitBytes
	opt := c.Opt()
	if opt.IsSet() || len(opt.Value()) != 0 {
		t.Fatalf("Opt() = %v, want Unset(\"\")", opt)
	}

	c.Set([]byte("\xffbinary\x85non-utf8"))
	if got := c.Opt(); !got.IsSet() || string(got.Value()) != "\xffbinary\x85non-utf8" {
		t.Errorf("Opt() = %v, want Set(binary)", got)
	}

	c.Set([]byte{})
	if got := c.Opt(); !got.IsSet() || len(got.Value()) != 0 {
		t.Errorf("Opt() = %v, want Set(\"\")", got)
	}

	clone := c.Clone()
	if !clone.Equal(c) {
		t.Error("clone should equal original")
	}
	c.Clear()
	if clone.Equal(c) {
		t.Error("set-to-empty and unset must differ")
	}
}

func TestExplicitString(t *testing.T) {
	var c ExplicitString
	if got := c.Opt(); got != protocell.Unset("") {
		t.Fatalf("Opt() = %v, want Unset(\"\")", got)
	}
	src := []byte("hello world")
	c.SetBytes(src)
	src[0] = 'y'
	if got := c.Get(); got != "hello world" {
		t.Errorf("Get() = %q, want hello world", got)
	}
	c.Set("")
	if got := c.Opt(); got != protocell.Set("") {
		t.Errorf("Opt() = %v, want Set(\"\")", got)
	}
}

func TestMessageCellOwnsCopy(t *testing.T) {
	var c Message[point, *point]
	if c.Has() || c.Get() != nil {
		t.Fatal("fresh message cell should be unset")
	}

	src := &point{}
	src.x.Set(7)
	c.Set(src)
	src.x.Set(8)
	if got := c.Get().x.Get(); got != 7 {
		t.Errorf("nested x = %d, want 7 (argument must not be retained)", got)
	}

	c.Set(nil)
	if c.Has() {
		t.Error("Set(nil) should clear the field")
	}

	m := c.Mut()
	if !c.Has() {
		t.Fatal("Mut should materialize the field")
	}
	m.y.Set(0)
	if !c.Get().y.Has() {
		t.Error("mutation through Mut should be visible")
	}
	if c.Mut() != m {
		t.Error("Mut on a set field must return the existing message")
	}

	clone := c.Clone()
	if !clone.Equal(c) {
		t.Error("clone should equal original")
	}
	clone.Get().x.Set(99)
	if c.Get().x.Get() == 99 {
		t.Error("clone shares storage with original")
	}
}

func TestOneofExclusivity(t *testing.T) {
	var o Oneof[testCase]
	if o.Case() != caseNotSet {
		t.Fatalf("Case() = %d, want not set", o.Case())
	}

	SetScalar(&o, caseNum, uint32(7))
	if got := ScalarOf[uint32](&o, caseNum); got != protocell.Set(uint32(7)) {
		t.Errorf("num = %v, want Set(7)", got)
	}
	if got := ScalarOf[bool](&o, caseFlag); got.IsSet() {
		t.Errorf("flag = %v, want Unset", got)
	}

	SetBytes(&o, caseData, []byte("123"))
	if got := ScalarOf[uint32](&o, caseNum); got != protocell.Unset(uint32(0)) {
		t.Errorf("num after switching = %v, want Unset(0)", got)
	}
	if o.Case() != caseData {
		t.Errorf("Case() = %d, want data", o.Case())
	}

	o.Clear(caseNum)
	if o.Case() != caseData {
		t.Error("clearing an inactive member must not disturb the active one")
	}
	o.Clear(caseData)
	if o.Case() != caseNotSet {
		t.Errorf("Case() = %d, want not set", o.Case())
	}
}

func TestOneofLastWriteWins(t *testing.T) {
	var o Oneof[testCase]
	SetString(&o, caseText, "first")
	SetScalar(&o, caseRatio, float32(0.5))
	SetString(&o, caseText, "second")

	if got := StringOf(&o, caseText); got != protocell.Set("second") {
		t.Errorf("text = %v, want Set(second)", got)
	}
	if got := ScalarOf[float32](&o, caseRatio); got.IsSet() {
		t.Errorf("ratio = %v, want Unset", got)
	}
}

func TestOneofScalarWidths(t *testing.T) {
	var o Oneof[testCase]
	SetScalar(&o, caseNum, int64(-1))
	SetScalar(&o, caseFlag, true)
	if got := ScalarOf[bool](&o, caseFlag).Value(); !got {
		t.Error("flag should read back true")
	}
	SetScalar(&o, caseNum, int32(-2))
	if got := ScalarOf[int32](&o, caseNum).Value(); got != -2 {
		t.Errorf("num = %d, want -2", got)
	}
}

func TestOneofMutableMessage(t *testing.T) {
	var o Oneof[testCase]
	SetScalar(&o, caseNum, uint32(1))

	p := MutableMessage[point](&o, casePoint)
	if o.Case() != casePoint {
		t.Fatalf("Case() = %d, want point", o.Case())
	}
	p.x.Set(5)
	if got := MessageOf[point](&o, casePoint).x.Get(); got != 5 {
		t.Errorf("x = %d, want 5", got)
	}

	again := MutableMessage[point](&o, casePoint)
	if again != p || again.x.Get() != 5 {
		t.Error("MutableMessage on the active member must not reinitialize it")
	}

	SetString(&o, caseText, "x")
	if MessageOf[point](&o, casePoint) != nil {
		t.Error("inactive message member should read nil")
	}
}

func TestOneofCloneIsDeep(t *testing.T) {
	var o Oneof[testCase]
	src := &point{}
	src.x.Set(3)
	SetMessage(&o, casePoint, src)

	clone := o.Clone()
	if !clone.Equal(o) {
		t.Fatal("clone should equal original")
	}
	MessageOf[point](&clone, casePoint).x.Set(4)
	if MessageOf[point](&o, casePoint).x.Get() != 3 {
		t.Error("clone shares the nested message")
	}

	SetMessage[testCase, point](&o, casePoint, nil)
	if o.Case() != caseNotSet {
		t.Error("SetMessage(nil) should clear the active member")
	}
}
