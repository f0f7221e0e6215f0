package unittest

import (
	"strconv"

	"github.com/wippyai/protocell"
	"github.com/wippyai/protocell/cell"
)

// TestOneof2_NestedEnum is the enum declared inside TestOneof2.
type TestOneof2_NestedEnum int32

const (
	TestOneof2_UNKNOWN TestOneof2_NestedEnum = 0
	TestOneof2_FOO     TestOneof2_NestedEnum = 1
	TestOneof2_BAR     TestOneof2_NestedEnum = 2
	TestOneof2_BAZ     TestOneof2_NestedEnum = 3
)

var testOneof2_NestedEnum_type = protocell.NewEnumType("TestOneof2.NestedEnum",
	protocell.EnumValue[TestOneof2_NestedEnum]{Name: "UNKNOWN", Number: TestOneof2_UNKNOWN},
	protocell.EnumValue[TestOneof2_NestedEnum]{Name: "FOO", Number: TestOneof2_FOO},
	protocell.EnumValue[TestOneof2_NestedEnum]{Name: "BAR", Number: TestOneof2_BAR},
	protocell.EnumValue[TestOneof2_NestedEnum]{Name: "BAZ", Number: TestOneof2_BAZ},
)

func (x TestOneof2_NestedEnum) String() string {
	return testOneof2_NestedEnum_type.String(x)
}

// Closed projects x onto the declared enumerators of TestOneof2.NestedEnum.
func (x TestOneof2_NestedEnum) Closed() protocell.Closed[TestOneof2_NestedEnum] {
	return testOneof2_NestedEnum_type.Classify(x)
}

// TestOneof2_NestedEnumType returns the enumerator table of TestOneof2.NestedEnum.
func TestOneof2_NestedEnumType() *protocell.EnumType[TestOneof2_NestedEnum] {
	return testOneof2_NestedEnum_type
}

// TestOneof2_NestedMessage is the message declared inside TestOneof2.
type TestOneof2_NestedMessage struct {
	mooInt   cell.Implicit[int64]
	corgeInt cell.Implicit[int32]
}

// NewTestOneof2_NestedMessage returns an empty TestOneof2_NestedMessage.
func NewTestOneof2_NestedMessage() *TestOneof2_NestedMessage {
	return &TestOneof2_NestedMessage{}
}

var defaultTestOneof2_NestedMessage TestOneof2_NestedMessage

func (m *TestOneof2_NestedMessage) Reset() {
	*m = TestOneof2_NestedMessage{}
}

// Clone returns a deep copy of m.
func (m *TestOneof2_NestedMessage) Clone() *TestOneof2_NestedMessage {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

func (m *TestOneof2_NestedMessage) CloneMessage() protocell.Message {
	return m.Clone()
}

// Equal reports whether m and o hold the same values with the same presence.
func (m *TestOneof2_NestedMessage) Equal(o *TestOneof2_NestedMessage) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.mooInt == o.mooInt &&
		m.corgeInt == o.corgeInt
}

func (m *TestOneof2_NestedMessage) EqualMessage(other protocell.Message) bool {
	o, ok := other.(*TestOneof2_NestedMessage)
	return ok && m.Equal(o)
}

// AsView returns a read-only view of m. The view stays usable for as long
// as m is.
func (m *TestOneof2_NestedMessage) AsView() TestOneof2_NestedMessageView {
	return TestOneof2_NestedMessageView{m: m}
}

func (m *TestOneof2_NestedMessage) MooInt() int64 {
	return m.mooInt.Get()
}

func (m *TestOneof2_NestedMessage) SetMooInt(v int64) {
	m.mooInt.Set(v)
}

func (m *TestOneof2_NestedMessage) ClearMooInt() {
	m.mooInt.Clear()
}

func (m *TestOneof2_NestedMessage) CorgeInt() int32 {
	return m.corgeInt.Get()
}

func (m *TestOneof2_NestedMessage) SetCorgeInt(v int32) {
	m.corgeInt.Set(v)
}

func (m *TestOneof2_NestedMessage) ClearCorgeInt() {
	m.corgeInt.Clear()
}

// TestOneof2_NestedMessageView is a read-only view of a TestOneof2_NestedMessage.
// The zero TestOneof2_NestedMessageView reads as an empty message.
type TestOneof2_NestedMessageView struct {
	m *TestOneof2_NestedMessage
}

func (v TestOneof2_NestedMessageView) rec() *TestOneof2_NestedMessage {
	if v.m == nil {
		return &defaultTestOneof2_NestedMessage
	}
	return v.m
}

// ToOwned returns a deep copy of the viewed message.
func (v TestOneof2_NestedMessageView) ToOwned() *TestOneof2_NestedMessage {
	return v.rec().Clone()
}

func (v TestOneof2_NestedMessageView) MooInt() int64 {
	return v.rec().mooInt.Get()
}

func (v TestOneof2_NestedMessageView) CorgeInt() int32 {
	return v.rec().corgeInt.Get()
}

// TestOneof2 has two independent oneofs next to plain fields.
type TestOneof2 struct {
	bazInt    cell.Implicit[int32]
	bazString cell.String
	foo       cell.Oneof[TestOneof2_FooCase]
	bar       cell.Oneof[TestOneof2_BarCase]
}

// NewTestOneof2 returns an empty TestOneof2.
func NewTestOneof2() *TestOneof2 {
	return &TestOneof2{}
}

var defaultTestOneof2 TestOneof2

func (m *TestOneof2) Reset() {
	*m = TestOneof2{}
}

// Clone returns a deep copy of m.
func (m *TestOneof2) Clone() *TestOneof2 {
	if m == nil {
		return nil
	}
	c := *m
	c.foo = m.foo.Clone()
	c.bar = m.bar.Clone()
	return &c
}

func (m *TestOneof2) CloneMessage() protocell.Message {
	return m.Clone()
}

// Equal reports whether m and o hold the same values with the same presence.
func (m *TestOneof2) Equal(o *TestOneof2) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.bazInt == o.bazInt &&
		m.bazString == o.bazString &&
		m.foo.Equal(o.foo) &&
		m.bar.Equal(o.bar)
}

func (m *TestOneof2) EqualMessage(other protocell.Message) bool {
	o, ok := other.(*TestOneof2)
	return ok && m.Equal(o)
}

// AsView returns a read-only view of m. The view stays usable for as long
// as m is.
func (m *TestOneof2) AsView() TestOneof2View {
	return TestOneof2View{m: m}
}

func (m *TestOneof2) BazInt() int32 {
	return m.bazInt.Get()
}

func (m *TestOneof2) SetBazInt(v int32) {
	m.bazInt.Set(v)
}

func (m *TestOneof2) ClearBazInt() {
	m.bazInt.Clear()
}

func (m *TestOneof2) BazString() string {
	return m.bazString.Get()
}

func (m *TestOneof2) SetBazString(v string) {
	m.bazString.Set(v)
}

func (m *TestOneof2) ClearBazString() {
	m.bazString.Clear()
}

// Foo returns the active member of the foo oneof.
func (m *TestOneof2) Foo() TestOneof2_Foo {
	return m.AsView().Foo()
}

func (m *TestOneof2) FooCase() TestOneof2_FooCase {
	return m.foo.Case()
}

// ClearFoo unsets whichever member of foo is active.
func (m *TestOneof2) ClearFoo() {
	m.foo.Reset()
}

func (m *TestOneof2) FooInt() int32 {
	return cell.ScalarOf[int32](&m.foo, TestOneof2_FooIntCase).Value()
}

// SetFooInt makes foo_int the active member of foo.
func (m *TestOneof2) SetFooInt(v int32) {
	cell.SetScalar(&m.foo, TestOneof2_FooIntCase, v)
}

// ClearFooInt unsets foo_int. It does nothing when another member of foo
// is active.
func (m *TestOneof2) ClearFooInt() {
	m.foo.Clear(TestOneof2_FooIntCase)
}

func (m *TestOneof2) HasFooInt() bool {
	return m.foo.Is(TestOneof2_FooIntCase)
}

func (m *TestOneof2) FooIntOpt() protocell.Optional[int32] {
	return cell.ScalarOf[int32](&m.foo, TestOneof2_FooIntCase)
}

func (m *TestOneof2) FooString() string {
	return cell.StringOf(&m.foo, TestOneof2_FooStringCase).Value()
}

// SetFooString makes foo_string the active member of foo.
func (m *TestOneof2) SetFooString(v string) {
	cell.SetString(&m.foo, TestOneof2_FooStringCase, v)
}

// ClearFooString unsets foo_string. It does nothing when another member of foo
// is active.
func (m *TestOneof2) ClearFooString() {
	m.foo.Clear(TestOneof2_FooStringCase)
}

func (m *TestOneof2) HasFooString() bool {
	return m.foo.Is(TestOneof2_FooStringCase)
}

func (m *TestOneof2) FooStringOpt() protocell.Optional[string] {
	return cell.StringOf(&m.foo, TestOneof2_FooStringCase)
}

func (m *TestOneof2) FooBytes() []byte {
	return cell.BytesOf(&m.foo, TestOneof2_FooBytesCase).Value()
}

// SetFooBytes makes foo_bytes the active member of foo.
func (m *TestOneof2) SetFooBytes(v []byte) {
	cell.SetBytes(&m.foo, TestOneof2_FooBytesCase, v)
}

// ClearFooBytes unsets foo_bytes. It does nothing when another member of foo
// is active.
func (m *TestOneof2) ClearFooBytes() {
	m.foo.Clear(TestOneof2_FooBytesCase)
}

func (m *TestOneof2) HasFooBytes() bool {
	return m.foo.Is(TestOneof2_FooBytesCase)
}

func (m *TestOneof2) FooBytesOpt() protocell.Optional[[]byte] {
	return cell.BytesOf(&m.foo, TestOneof2_FooBytesCase)
}

func (m *TestOneof2) FooEnum() TestOneof2_NestedEnum {
	return cell.ScalarOf[TestOneof2_NestedEnum](&m.foo, TestOneof2_FooEnumCase).Value()
}

// SetFooEnum makes foo_enum the active member of foo.
func (m *TestOneof2) SetFooEnum(v TestOneof2_NestedEnum) {
	cell.SetScalar(&m.foo, TestOneof2_FooEnumCase, v)
}

// ClearFooEnum unsets foo_enum. It does nothing when another member of foo
// is active.
func (m *TestOneof2) ClearFooEnum() {
	m.foo.Clear(TestOneof2_FooEnumCase)
}

func (m *TestOneof2) HasFooEnum() bool {
	return m.foo.Is(TestOneof2_FooEnumCase)
}

func (m *TestOneof2) FooEnumOpt() protocell.Optional[TestOneof2_NestedEnum] {
	return cell.ScalarOf[TestOneof2_NestedEnum](&m.foo, TestOneof2_FooEnumCase)
}

func (m *TestOneof2) FooMessage() TestOneof2_NestedMessageView {
	return m.AsView().FooMessage()
}

// FooMessageMut returns foo_message for modification. When another member of
// foo is active, or none is, foo_message becomes the active member holding a
// default message.
func (m *TestOneof2) FooMessageMut() *TestOneof2_NestedMessage {
	return cell.MutableMessage[TestOneof2_NestedMessage](&m.foo, TestOneof2_FooMessageCase)
}

// SetFooMessage makes foo_message the active member of foo, holding a copy of v.
// A nil v clears foo_message.
func (m *TestOneof2) SetFooMessage(v *TestOneof2_NestedMessage) {
	cell.SetMessage(&m.foo, TestOneof2_FooMessageCase, v)
}

// ClearFooMessage unsets foo_message. It does nothing when another member of foo
// is active.
func (m *TestOneof2) ClearFooMessage() {
	m.foo.Clear(TestOneof2_FooMessageCase)
}

func (m *TestOneof2) HasFooMessage() bool {
	return m.foo.Is(TestOneof2_FooMessageCase)
}

func (m *TestOneof2) FooMessageOpt() protocell.Optional[TestOneof2_NestedMessageView] {
	return m.AsView().FooMessageOpt()
}

// Bar returns the active member of the bar oneof.
func (m *TestOneof2) Bar() TestOneof2_Bar {
	return m.AsView().Bar()
}

func (m *TestOneof2) BarCase() TestOneof2_BarCase {
	return m.bar.Case()
}

// ClearBar unsets whichever member of bar is active.
func (m *TestOneof2) ClearBar() {
	m.bar.Reset()
}

func (m *TestOneof2) BarInt() int32 {
	return cell.ScalarOf[int32](&m.bar, TestOneof2_BarIntCase).Value()
}

// SetBarInt makes bar_int the active member of bar.
func (m *TestOneof2) SetBarInt(v int32) {
	cell.SetScalar(&m.bar, TestOneof2_BarIntCase, v)
}

// ClearBarInt unsets bar_int. It does nothing when another member of bar
// is active.
func (m *TestOneof2) ClearBarInt() {
	m.bar.Clear(TestOneof2_BarIntCase)
}

func (m *TestOneof2) HasBarInt() bool {
	return m.bar.Is(TestOneof2_BarIntCase)
}

func (m *TestOneof2) BarIntOpt() protocell.Optional[int32] {
	return cell.ScalarOf[int32](&m.bar, TestOneof2_BarIntCase)
}

func (m *TestOneof2) BarString() string {
	return cell.StringOf(&m.bar, TestOneof2_BarStringCase).Value()
}

// SetBarString makes bar_string the active member of bar.
func (m *TestOneof2) SetBarString(v string) {
	cell.SetString(&m.bar, TestOneof2_BarStringCase, v)
}

// ClearBarString unsets bar_string. It does nothing when another member of bar
// is active.
func (m *TestOneof2) ClearBarString() {
	m.bar.Clear(TestOneof2_BarStringCase)
}

func (m *TestOneof2) HasBarString() bool {
	return m.bar.Is(TestOneof2_BarStringCase)
}

func (m *TestOneof2) BarStringOpt() protocell.Optional[string] {
	return cell.StringOf(&m.bar, TestOneof2_BarStringCase)
}

func (m *TestOneof2) BarBool() bool {
	return cell.ScalarOf[bool](&m.bar, TestOneof2_BarBoolCase).Value()
}

// SetBarBool makes bar_bool the active member of bar.
func (m *TestOneof2) SetBarBool(v bool) {
	cell.SetScalar(&m.bar, TestOneof2_BarBoolCase, v)
}

// ClearBarBool unsets bar_bool. It does nothing when another member of bar
// is active.
func (m *TestOneof2) ClearBarBool() {
	m.bar.Clear(TestOneof2_BarBoolCase)
}

func (m *TestOneof2) HasBarBool() bool {
	return m.bar.Is(TestOneof2_BarBoolCase)
}

func (m *TestOneof2) BarBoolOpt() protocell.Optional[bool] {
	return cell.ScalarOf[bool](&m.bar, TestOneof2_BarBoolCase)
}

// TestOneof2View is a read-only view of a TestOneof2.
// The zero TestOneof2View reads as an empty message.
type TestOneof2View struct {
	m *TestOneof2
}

func (v TestOneof2View) rec() *TestOneof2 {
	if v.m == nil {
		return &defaultTestOneof2
	}
	return v.m
}

// ToOwned returns a deep copy of the viewed message.
func (v TestOneof2View) ToOwned() *TestOneof2 {
	return v.rec().Clone()
}

func (v TestOneof2View) BazInt() int32 {
	return v.rec().bazInt.Get()
}

func (v TestOneof2View) BazString() string {
	return v.rec().bazString.Get()
}

func (v TestOneof2View) FooCase() TestOneof2_FooCase {
	return v.rec().foo.Case()
}

// Foo returns the active member of the foo oneof. The result does not
// depend on the view and may outlive it.
func (v TestOneof2View) Foo() TestOneof2_Foo {
	r := v.rec()
	switch r.foo.Case() {
	case TestOneof2_FooIntCase:
		return TestOneof2_FooInt{FooInt: v.FooInt()}
	case TestOneof2_FooStringCase:
		return TestOneof2_FooString{FooString: v.FooString()}
	case TestOneof2_FooBytesCase:
		return TestOneof2_FooBytes{FooBytes: v.FooBytes()}
	case TestOneof2_FooEnumCase:
		return TestOneof2_FooEnum{FooEnum: v.FooEnum()}
	case TestOneof2_FooMessageCase:
		return TestOneof2_FooMessage{FooMessage: v.FooMessage()}
	default:
		return TestOneof2_FooNotSet{}
	}
}

func (v TestOneof2View) FooInt() int32 {
	return cell.ScalarOf[int32](&v.rec().foo, TestOneof2_FooIntCase).Value()
}

func (v TestOneof2View) HasFooInt() bool {
	return v.rec().foo.Is(TestOneof2_FooIntCase)
}

func (v TestOneof2View) FooIntOpt() protocell.Optional[int32] {
	return cell.ScalarOf[int32](&v.rec().foo, TestOneof2_FooIntCase)
}

func (v TestOneof2View) FooString() string {
	return cell.StringOf(&v.rec().foo, TestOneof2_FooStringCase).Value()
}

func (v TestOneof2View) HasFooString() bool {
	return v.rec().foo.Is(TestOneof2_FooStringCase)
}

func (v TestOneof2View) FooStringOpt() protocell.Optional[string] {
	return cell.StringOf(&v.rec().foo, TestOneof2_FooStringCase)
}

func (v TestOneof2View) FooBytes() []byte {
	return cell.BytesOf(&v.rec().foo, TestOneof2_FooBytesCase).Value()
}

func (v TestOneof2View) HasFooBytes() bool {
	return v.rec().foo.Is(TestOneof2_FooBytesCase)
}

func (v TestOneof2View) FooBytesOpt() protocell.Optional[[]byte] {
	return cell.BytesOf(&v.rec().foo, TestOneof2_FooBytesCase)
}

func (v TestOneof2View) FooEnum() TestOneof2_NestedEnum {
	return cell.ScalarOf[TestOneof2_NestedEnum](&v.rec().foo, TestOneof2_FooEnumCase).Value()
}

func (v TestOneof2View) HasFooEnum() bool {
	return v.rec().foo.Is(TestOneof2_FooEnumCase)
}

func (v TestOneof2View) FooEnumOpt() protocell.Optional[TestOneof2_NestedEnum] {
	return cell.ScalarOf[TestOneof2_NestedEnum](&v.rec().foo, TestOneof2_FooEnumCase)
}

func (v TestOneof2View) FooMessage() TestOneof2_NestedMessageView {
	return TestOneof2_NestedMessageView{m: cell.MessageOf[TestOneof2_NestedMessage](&v.rec().foo, TestOneof2_FooMessageCase)}
}

func (v TestOneof2View) HasFooMessage() bool {
	return v.rec().foo.Is(TestOneof2_FooMessageCase)
}

func (v TestOneof2View) FooMessageOpt() protocell.Optional[TestOneof2_NestedMessageView] {
	if p := cell.MessageOf[TestOneof2_NestedMessage](&v.rec().foo, TestOneof2_FooMessageCase); p != nil {
		return protocell.Set(TestOneof2_NestedMessageView{m: p})
	}
	return protocell.Unset(TestOneof2_NestedMessageView{})
}

func (v TestOneof2View) BarCase() TestOneof2_BarCase {
	return v.rec().bar.Case()
}

// Bar returns the active member of the bar oneof. The result does not
// depend on the view and may outlive it.
func (v TestOneof2View) Bar() TestOneof2_Bar {
	r := v.rec()
	switch r.bar.Case() {
	case TestOneof2_BarIntCase:
		return TestOneof2_BarInt{BarInt: v.BarInt()}
	case TestOneof2_BarStringCase:
		return TestOneof2_BarString{BarString: v.BarString()}
	case TestOneof2_BarBoolCase:
		return TestOneof2_BarBool{BarBool: v.BarBool()}
	default:
		return TestOneof2_BarNotSet{}
	}
}

func (v TestOneof2View) BarInt() int32 {
	return cell.ScalarOf[int32](&v.rec().bar, TestOneof2_BarIntCase).Value()
}

func (v TestOneof2View) HasBarInt() bool {
	return v.rec().bar.Is(TestOneof2_BarIntCase)
}

func (v TestOneof2View) BarIntOpt() protocell.Optional[int32] {
	return cell.ScalarOf[int32](&v.rec().bar, TestOneof2_BarIntCase)
}

func (v TestOneof2View) BarString() string {
	return cell.StringOf(&v.rec().bar, TestOneof2_BarStringCase).Value()
}

func (v TestOneof2View) HasBarString() bool {
	return v.rec().bar.Is(TestOneof2_BarStringCase)
}

func (v TestOneof2View) BarStringOpt() protocell.Optional[string] {
	return cell.StringOf(&v.rec().bar, TestOneof2_BarStringCase)
}

func (v TestOneof2View) BarBool() bool {
	return cell.ScalarOf[bool](&v.rec().bar, TestOneof2_BarBoolCase).Value()
}

func (v TestOneof2View) HasBarBool() bool {
	return v.rec().bar.Is(TestOneof2_BarBoolCase)
}

func (v TestOneof2View) BarBoolOpt() protocell.Optional[bool] {
	return cell.ScalarOf[bool](&v.rec().bar, TestOneof2_BarBoolCase)
}

// TestOneof2_FooCase identifies the active member of the foo oneof.
type TestOneof2_FooCase int32

const (
	TestOneof2_FooNotSetCase  TestOneof2_FooCase = 0
	TestOneof2_FooIntCase     TestOneof2_FooCase = 1
	TestOneof2_FooStringCase  TestOneof2_FooCase = 2
	TestOneof2_FooBytesCase   TestOneof2_FooCase = 4
	TestOneof2_FooEnumCase    TestOneof2_FooCase = 6
	TestOneof2_FooMessageCase TestOneof2_FooCase = 7
)

func (c TestOneof2_FooCase) String() string {
	switch c {
	case TestOneof2_FooNotSetCase:
		return "not_set"
	case TestOneof2_FooIntCase:
		return "foo_int"
	case TestOneof2_FooStringCase:
		return "foo_string"
	case TestOneof2_FooBytesCase:
		return "foo_bytes"
	case TestOneof2_FooEnumCase:
		return "foo_enum"
	case TestOneof2_FooMessageCase:
		return "foo_message"
	default:
		return "foo(" + strconv.Itoa(int(c)) + ")"
	}
}

// TestOneof2_Foo is the value of the foo oneof: TestOneof2_FooNotSet or one of
// TestOneof2_FooInt, TestOneof2_FooString, TestOneof2_FooBytes, TestOneof2_FooEnum, TestOneof2_FooMessage.
type TestOneof2_Foo interface {
	Case() TestOneof2_FooCase
	isTestOneof2_Foo()
}

type TestOneof2_FooNotSet struct{}

type TestOneof2_FooInt struct {
	FooInt int32
}

type TestOneof2_FooString struct {
	FooString string
}

type TestOneof2_FooBytes struct {
	FooBytes []byte
}

type TestOneof2_FooEnum struct {
	FooEnum TestOneof2_NestedEnum
}

type TestOneof2_FooMessage struct {
	FooMessage TestOneof2_NestedMessageView
}

func (TestOneof2_FooNotSet) Case() TestOneof2_FooCase {
	return TestOneof2_FooNotSetCase
}

func (TestOneof2_FooNotSet) isTestOneof2_Foo() {}

func (TestOneof2_FooInt) Case() TestOneof2_FooCase {
	return TestOneof2_FooIntCase
}

func (TestOneof2_FooInt) isTestOneof2_Foo() {}

func (TestOneof2_FooString) Case() TestOneof2_FooCase {
	return TestOneof2_FooStringCase
}

func (TestOneof2_FooString) isTestOneof2_Foo() {}

func (TestOneof2_FooBytes) Case() TestOneof2_FooCase {
	return TestOneof2_FooBytesCase
}

func (TestOneof2_FooBytes) isTestOneof2_Foo() {}

func (TestOneof2_FooEnum) Case() TestOneof2_FooCase {
	return TestOneof2_FooEnumCase
}

func (TestOneof2_FooEnum) isTestOneof2_Foo() {}

func (TestOneof2_FooMessage) Case() TestOneof2_FooCase {
	return TestOneof2_FooMessageCase
}

func (TestOneof2_FooMessage) isTestOneof2_Foo() {}

// TestOneof2_BarCase identifies the active member of the bar oneof.
type TestOneof2_BarCase int32

const (
	TestOneof2_BarNotSetCase TestOneof2_BarCase = 0
	TestOneof2_BarIntCase    TestOneof2_BarCase = 12
	TestOneof2_BarStringCase TestOneof2_BarCase = 13
	TestOneof2_BarBoolCase   TestOneof2_BarCase = 16
)

func (c TestOneof2_BarCase) String() string {
	switch c {
	case TestOneof2_BarNotSetCase:
		return "not_set"
	case TestOneof2_BarIntCase:
		return "bar_int"
	case TestOneof2_BarStringCase:
		return "bar_string"
	case TestOneof2_BarBoolCase:
		return "bar_bool"
	default:
		return "bar(" + strconv.Itoa(int(c)) + ")"
	}
}

// TestOneof2_Bar is the value of the bar oneof: TestOneof2_BarNotSet or one of
// TestOneof2_BarInt, TestOneof2_BarString, TestOneof2_BarBool.
type TestOneof2_Bar interface {
	Case() TestOneof2_BarCase
	isTestOneof2_Bar()
}

type TestOneof2_BarNotSet struct{}

type TestOneof2_BarInt struct {
	BarInt int32
}

type TestOneof2_BarString struct {
	BarString string
}

type TestOneof2_BarBool struct {
	BarBool bool
}

func (TestOneof2_BarNotSet) Case() TestOneof2_BarCase {
	return TestOneof2_BarNotSetCase
}

func (TestOneof2_BarNotSet) isTestOneof2_Bar() {}

func (TestOneof2_BarInt) Case() TestOneof2_BarCase {
	return TestOneof2_BarIntCase
}

func (TestOneof2_BarInt) isTestOneof2_Bar() {}

func (TestOneof2_BarString) Case() TestOneof2_BarCase {
	return TestOneof2_BarStringCase
}

func (TestOneof2_BarString) isTestOneof2_Bar() {}

func (TestOneof2_BarBool) Case() TestOneof2_BarCase {
	return TestOneof2_BarBoolCase
}

func (TestOneof2_BarBool) isTestOneof2_Bar() {}
