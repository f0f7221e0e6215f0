package unittest

import (
	"github.com/wippyai/protocell"
	"github.com/wippyai/protocell/cell"
)

// TestProto3Optional_NestedEnum is the enum declared inside TestProto3Optional.
type TestProto3Optional_NestedEnum int32

const (
	TestProto3Optional_UNSPECIFIED TestProto3Optional_NestedEnum = 0
	TestProto3Optional_FOO         TestProto3Optional_NestedEnum = 1
	TestProto3Optional_BAR         TestProto3Optional_NestedEnum = 2
	TestProto3Optional_BAZ         TestProto3Optional_NestedEnum = 3
	TestProto3Optional_NEG         TestProto3Optional_NestedEnum = -1
)

var testProto3Optional_NestedEnum_type = protocell.NewEnumType("TestProto3Optional.NestedEnum",
	protocell.EnumValue[TestProto3Optional_NestedEnum]{Name: "UNSPECIFIED", Number: TestProto3Optional_UNSPECIFIED},
	protocell.EnumValue[TestProto3Optional_NestedEnum]{Name: "FOO", Number: TestProto3Optional_FOO},
	protocell.EnumValue[TestProto3Optional_NestedEnum]{Name: "BAR", Number: TestProto3Optional_BAR},
	protocell.EnumValue[TestProto3Optional_NestedEnum]{Name: "BAZ", Number: TestProto3Optional_BAZ},
	protocell.EnumValue[TestProto3Optional_NestedEnum]{Name: "NEG", Number: TestProto3Optional_NEG},
)

func (x TestProto3Optional_NestedEnum) String() string {
	return testProto3Optional_NestedEnum_type.String(x)
}

// Closed projects x onto the declared enumerators of TestProto3Optional.NestedEnum.
func (x TestProto3Optional_NestedEnum) Closed() protocell.Closed[TestProto3Optional_NestedEnum] {
	return testProto3Optional_NestedEnum_type.Classify(x)
}

// TestProto3Optional_NestedEnumType returns the enumerator table of TestProto3Optional.NestedEnum.
func TestProto3Optional_NestedEnumType() *protocell.EnumType[TestProto3Optional_NestedEnum] {
	return testProto3Optional_NestedEnum_type
}

// TestProto3Optional_NestedMessage is the message declared inside
// TestProto3Optional.
type TestProto3Optional_NestedMessage struct {
	bb cell.Explicit[int32]
}

// NewTestProto3Optional_NestedMessage returns an empty TestProto3Optional_NestedMessage.
func NewTestProto3Optional_NestedMessage() *TestProto3Optional_NestedMessage {
	return &TestProto3Optional_NestedMessage{}
}

var defaultTestProto3Optional_NestedMessage TestProto3Optional_NestedMessage

func (m *TestProto3Optional_NestedMessage) Reset() {
	*m = TestProto3Optional_NestedMessage{}
}

// Clone returns a deep copy of m.
func (m *TestProto3Optional_NestedMessage) Clone() *TestProto3Optional_NestedMessage {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

func (m *TestProto3Optional_NestedMessage) CloneMessage() protocell.Message {
	return m.Clone()
}

// Equal reports whether m and o hold the same values with the same presence.
func (m *TestProto3Optional_NestedMessage) Equal(o *TestProto3Optional_NestedMessage) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.bb == o.bb
}

func (m *TestProto3Optional_NestedMessage) EqualMessage(other protocell.Message) bool {
	o, ok := other.(*TestProto3Optional_NestedMessage)
	return ok && m.Equal(o)
}

// AsView returns a read-only view of m. The view stays usable for as long
// as m is.
func (m *TestProto3Optional_NestedMessage) AsView() TestProto3Optional_NestedMessageView {
	return TestProto3Optional_NestedMessageView{m: m}
}

func (m *TestProto3Optional_NestedMessage) Bb() int32 {
	return m.bb.Get()
}

func (m *TestProto3Optional_NestedMessage) SetBb(v int32) {
	m.bb.Set(v)
}

func (m *TestProto3Optional_NestedMessage) ClearBb() {
	m.bb.Clear()
}

func (m *TestProto3Optional_NestedMessage) HasBb() bool {
	return m.bb.Has()
}

func (m *TestProto3Optional_NestedMessage) BbOpt() protocell.Optional[int32] {
	return m.bb.Opt()
}

// TestProto3Optional_NestedMessageView is a read-only view of a TestProto3Optional_NestedMessage.
// The zero TestProto3Optional_NestedMessageView reads as an empty message.
type TestProto3Optional_NestedMessageView struct {
	m *TestProto3Optional_NestedMessage
}

func (v TestProto3Optional_NestedMessageView) rec() *TestProto3Optional_NestedMessage {
	if v.m == nil {
		return &defaultTestProto3Optional_NestedMessage
	}
	return v.m
}

// ToOwned returns a deep copy of the viewed message.
func (v TestProto3Optional_NestedMessageView) ToOwned() *TestProto3Optional_NestedMessage {
	return v.rec().Clone()
}

func (v TestProto3Optional_NestedMessageView) Bb() int32 {
	return v.rec().bb.Get()
}

func (v TestProto3Optional_NestedMessageView) HasBb() bool {
	return v.rec().bb.Has()
}

func (v TestProto3Optional_NestedMessageView) BbOpt() protocell.Optional[int32] {
	return v.rec().bb.Opt()
}

// TestProto3Optional declares every optional_* field with the proto3
// optional marker, so each of them tracks presence. singular_int32 is the
// one field left with implicit presence.
type TestProto3Optional struct {
	optionalInt32         cell.Explicit[int32]
	optionalInt64         cell.Explicit[int64]
	optionalUint32        cell.Explicit[uint32]
	optionalUint64        cell.Explicit[uint64]
	optionalFixed32       cell.Explicit[uint32]
	optionalFloat         cell.Explicit[float32]
	optionalDouble        cell.Explicit[float64]
	optionalBool          cell.Explicit[bool]
	optionalString        cell.ExplicitString
	optionalBytes         cell.ExplicitBytes
	optionalNestedMessage cell.Message[TestProto3Optional_NestedMessage, *TestProto3Optional_NestedMessage]
	optionalNestedEnum    cell.Explicit[TestProto3Optional_NestedEnum]
	singularInt32         cell.Implicit[int32]
}

// NewTestProto3Optional returns an empty TestProto3Optional.
func NewTestProto3Optional() *TestProto3Optional {
	return &TestProto3Optional{}
}

var defaultTestProto3Optional TestProto3Optional

func (m *TestProto3Optional) Reset() {
	*m = TestProto3Optional{}
}

// Clone returns a deep copy of m.
func (m *TestProto3Optional) Clone() *TestProto3Optional {
	if m == nil {
		return nil
	}
	c := *m
	c.optionalBytes = m.optionalBytes.Clone()
	c.optionalNestedMessage = m.optionalNestedMessage.Clone()
	return &c
}

func (m *TestProto3Optional) CloneMessage() protocell.Message {
	return m.Clone()
}

// Equal reports whether m and o hold the same values with the same presence.
func (m *TestProto3Optional) Equal(o *TestProto3Optional) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.optionalInt32 == o.optionalInt32 &&
		m.optionalInt64 == o.optionalInt64 &&
		m.optionalUint32 == o.optionalUint32 &&
		m.optionalUint64 == o.optionalUint64 &&
		m.optionalFixed32 == o.optionalFixed32 &&
		m.optionalFloat == o.optionalFloat &&
		m.optionalDouble == o.optionalDouble &&
		m.optionalBool == o.optionalBool &&
		m.optionalString == o.optionalString &&
		m.optionalBytes.Equal(o.optionalBytes) &&
		m.optionalNestedMessage.Equal(o.optionalNestedMessage) &&
		m.optionalNestedEnum == o.optionalNestedEnum &&
		m.singularInt32 == o.singularInt32
}

func (m *TestProto3Optional) EqualMessage(other protocell.Message) bool {
	o, ok := other.(*TestProto3Optional)
	return ok && m.Equal(o)
}

// AsView returns a read-only view of m. The view stays usable for as long
// as m is.
func (m *TestProto3Optional) AsView() TestProto3OptionalView {
	return TestProto3OptionalView{m: m}
}

func (m *TestProto3Optional) OptionalInt32() int32 {
	return m.optionalInt32.Get()
}

func (m *TestProto3Optional) SetOptionalInt32(v int32) {
	m.optionalInt32.Set(v)
}

func (m *TestProto3Optional) ClearOptionalInt32() {
	m.optionalInt32.Clear()
}

func (m *TestProto3Optional) HasOptionalInt32() bool {
	return m.optionalInt32.Has()
}

func (m *TestProto3Optional) OptionalInt32Opt() protocell.Optional[int32] {
	return m.optionalInt32.Opt()
}

func (m *TestProto3Optional) OptionalInt64() int64 {
	return m.optionalInt64.Get()
}

func (m *TestProto3Optional) SetOptionalInt64(v int64) {
	m.optionalInt64.Set(v)
}

func (m *TestProto3Optional) ClearOptionalInt64() {
	m.optionalInt64.Clear()
}

func (m *TestProto3Optional) HasOptionalInt64() bool {
	return m.optionalInt64.Has()
}

func (m *TestProto3Optional) OptionalInt64Opt() protocell.Optional[int64] {
	return m.optionalInt64.Opt()
}

func (m *TestProto3Optional) OptionalUint32() uint32 {
	return m.optionalUint32.Get()
}

func (m *TestProto3Optional) SetOptionalUint32(v uint32) {
	m.optionalUint32.Set(v)
}

func (m *TestProto3Optional) ClearOptionalUint32() {
	m.optionalUint32.Clear()
}

func (m *TestProto3Optional) HasOptionalUint32() bool {
	return m.optionalUint32.Has()
}

func (m *TestProto3Optional) OptionalUint32Opt() protocell.Optional[uint32] {
	return m.optionalUint32.Opt()
}

func (m *TestProto3Optional) OptionalUint64() uint64 {
	return m.optionalUint64.Get()
}

func (m *TestProto3Optional) SetOptionalUint64(v uint64) {
	m.optionalUint64.Set(v)
}

func (m *TestProto3Optional) ClearOptionalUint64() {
	m.optionalUint64.Clear()
}

func (m *TestProto3Optional) HasOptionalUint64() bool {
	return m.optionalUint64.Has()
}

func (m *TestProto3Optional) OptionalUint64Opt() protocell.Optional[uint64] {
	return m.optionalUint64.Opt()
}

func (m *TestProto3Optional) OptionalFixed32() uint32 {
	return m.optionalFixed32.Get()
}

func (m *TestProto3Optional) SetOptionalFixed32(v uint32) {
	m.optionalFixed32.Set(v)
}

func (m *TestProto3Optional) ClearOptionalFixed32() {
	m.optionalFixed32.Clear()
}

func (m *TestProto3Optional) HasOptionalFixed32() bool {
	return m.optionalFixed32.Has()
}

func (m *TestProto3Optional) OptionalFixed32Opt() protocell.Optional[uint32] {
	return m.optionalFixed32.Opt()
}

func (m *TestProto3Optional) OptionalFloat() float32 {
	return m.optionalFloat.Get()
}

func (m *TestProto3Optional) SetOptionalFloat(v float32) {
	m.optionalFloat.Set(v)
}

func (m *TestProto3Optional) ClearOptionalFloat() {
	m.optionalFloat.Clear()
}

func (m *TestProto3Optional) HasOptionalFloat() bool {
	return m.optionalFloat.Has()
}

func (m *TestProto3Optional) OptionalFloatOpt() protocell.Optional[float32] {
	return m.optionalFloat.Opt()
}

func (m *TestProto3Optional) OptionalDouble() float64 {
	return m.optionalDouble.Get()
}

func (m *TestProto3Optional) SetOptionalDouble(v float64) {
	m.optionalDouble.Set(v)
}

func (m *TestProto3Optional) ClearOptionalDouble() {
	m.optionalDouble.Clear()
}

func (m *TestProto3Optional) HasOptionalDouble() bool {
	return m.optionalDouble.Has()
}

func (m *TestProto3Optional) OptionalDoubleOpt() protocell.Optional[float64] {
	return m.optionalDouble.Opt()
}

func (m *TestProto3Optional) OptionalBool() bool {
	return m.optionalBool.Get()
}

func (m *TestProto3Optional) SetOptionalBool(v bool) {
	m.optionalBool.Set(v)
}

func (m *TestProto3Optional) ClearOptionalBool() {
	m.optionalBool.Clear()
}

func (m *TestProto3Optional) HasOptionalBool() bool {
	return m.optionalBool.Has()
}

func (m *TestProto3Optional) OptionalBoolOpt() protocell.Optional[bool] {
	return m.optionalBool.Opt()
}

func (m *TestProto3Optional) OptionalString() string {
	return m.optionalString.Get()
}

func (m *TestProto3Optional) SetOptionalString(v string) {
	m.optionalString.Set(v)
}

func (m *TestProto3Optional) ClearOptionalString() {
	m.optionalString.Clear()
}

func (m *TestProto3Optional) HasOptionalString() bool {
	return m.optionalString.Has()
}

func (m *TestProto3Optional) OptionalStringOpt() protocell.Optional[string] {
	return m.optionalString.Opt()
}

func (m *TestProto3Optional) OptionalBytes() []byte {
	return m.optionalBytes.Get()
}

// SetOptionalBytes stores a copy of v.
func (m *TestProto3Optional) SetOptionalBytes(v []byte) {
	m.optionalBytes.Set(v)
}

func (m *TestProto3Optional) ClearOptionalBytes() {
	m.optionalBytes.Clear()
}

func (m *TestProto3Optional) HasOptionalBytes() bool {
	return m.optionalBytes.Has()
}

func (m *TestProto3Optional) OptionalBytesOpt() protocell.Optional[[]byte] {
	return m.optionalBytes.Opt()
}

func (m *TestProto3Optional) OptionalNestedMessage() TestProto3Optional_NestedMessageView {
	return TestProto3Optional_NestedMessageView{m: m.optionalNestedMessage.Get()}
}

// OptionalNestedMessageMut returns optional_nested_message for modification, setting it to a default
// message first when it is unset.
func (m *TestProto3Optional) OptionalNestedMessageMut() *TestProto3Optional_NestedMessage {
	return m.optionalNestedMessage.Mut()
}

// SetOptionalNestedMessage stores a copy of v. A nil v clears the field.
func (m *TestProto3Optional) SetOptionalNestedMessage(v *TestProto3Optional_NestedMessage) {
	m.optionalNestedMessage.Set(v)
}

func (m *TestProto3Optional) ClearOptionalNestedMessage() {
	m.optionalNestedMessage.Clear()
}

func (m *TestProto3Optional) HasOptionalNestedMessage() bool {
	return m.optionalNestedMessage.Has()
}

func (m *TestProto3Optional) OptionalNestedMessageOpt() protocell.Optional[TestProto3Optional_NestedMessageView] {
	return m.AsView().OptionalNestedMessageOpt()
}

func (m *TestProto3Optional) OptionalNestedEnum() TestProto3Optional_NestedEnum {
	return m.optionalNestedEnum.Get()
}

func (m *TestProto3Optional) SetOptionalNestedEnum(v TestProto3Optional_NestedEnum) {
	m.optionalNestedEnum.Set(v)
}

func (m *TestProto3Optional) ClearOptionalNestedEnum() {
	m.optionalNestedEnum.Clear()
}

func (m *TestProto3Optional) HasOptionalNestedEnum() bool {
	return m.optionalNestedEnum.Has()
}

func (m *TestProto3Optional) OptionalNestedEnumOpt() protocell.Optional[TestProto3Optional_NestedEnum] {
	return m.optionalNestedEnum.Opt()
}

func (m *TestProto3Optional) SingularInt32() int32 {
	return m.singularInt32.Get()
}

func (m *TestProto3Optional) SetSingularInt32(v int32) {
	m.singularInt32.Set(v)
}

func (m *TestProto3Optional) ClearSingularInt32() {
	m.singularInt32.Clear()
}

// TestProto3OptionalView is a read-only view of a TestProto3Optional.
// The zero TestProto3OptionalView reads as an empty message.
type TestProto3OptionalView struct {
	m *TestProto3Optional
}

func (v TestProto3OptionalView) rec() *TestProto3Optional {
	if v.m == nil {
		return &defaultTestProto3Optional
	}
	return v.m
}

// ToOwned returns a deep copy of the viewed message.
func (v TestProto3OptionalView) ToOwned() *TestProto3Optional {
	return v.rec().Clone()
}

func (v TestProto3OptionalView) OptionalInt32() int32 {
	return v.rec().optionalInt32.Get()
}

func (v TestProto3OptionalView) HasOptionalInt32() bool {
	return v.rec().optionalInt32.Has()
}

func (v TestProto3OptionalView) OptionalInt32Opt() protocell.Optional[int32] {
	return v.rec().optionalInt32.Opt()
}

func (v TestProto3OptionalView) OptionalInt64() int64 {
	return v.rec().optionalInt64.Get()
}

func (v TestProto3OptionalView) HasOptionalInt64() bool {
	return v.rec().optionalInt64.Has()
}

func (v TestProto3OptionalView) OptionalInt64Opt() protocell.Optional[int64] {
	return v.rec().optionalInt64.Opt()
}

func (v TestProto3OptionalView) OptionalUint32() uint32 {
	return v.rec().optionalUint32.Get()
}

func (v TestProto3OptionalView) HasOptionalUint32() bool {
	return v.rec().optionalUint32.Has()
}

func (v TestProto3OptionalView) OptionalUint32Opt() protocell.Optional[uint32] {
	return v.rec().optionalUint32.Opt()
}

func (v TestProto3OptionalView) OptionalUint64() uint64 {
	return v.rec().optionalUint64.Get()
}

func (v TestProto3OptionalView) HasOptionalUint64() bool {
	return v.rec().optionalUint64.Has()
}

func (v TestProto3OptionalView) OptionalUint64Opt() protocell.Optional[uint64] {
	return v.rec().optionalUint64.Opt()
}

func (v TestProto3OptionalView) OptionalFixed32() uint32 {
	return v.rec().optionalFixed32.Get()
}

func (v TestProto3OptionalView) HasOptionalFixed32() bool {
	return v.rec().optionalFixed32.Has()
}

func (v TestProto3OptionalView) OptionalFixed32Opt() protocell.Optional[uint32] {
	return v.rec().optionalFixed32.Opt()
}

func (v TestProto3OptionalView) OptionalFloat() float32 {
	return v.rec().optionalFloat.Get()
}

func (v TestProto3OptionalView) HasOptionalFloat() bool {
	return v.rec().optionalFloat.Has()
}

func (v TestProto3OptionalView) OptionalFloatOpt() protocell.Optional[float32] {
	return v.rec().optionalFloat.Opt()
}

func (v TestProto3OptionalView) OptionalDouble() float64 {
	return v.rec().optionalDouble.Get()
}

func (v TestProto3OptionalView) HasOptionalDouble() bool {
	return v.rec().optionalDouble.Has()
}

func (v TestProto3OptionalView) OptionalDoubleOpt() protocell.Optional[float64] {
	return v.rec().optionalDouble.Opt()
}

func (v TestProto3OptionalView) OptionalBool() bool {
	return v.rec().optionalBool.Get()
}

func (v TestProto3OptionalView) HasOptionalBool() bool {
	return v.rec().optionalBool.Has()
}

func (v TestProto3OptionalView) OptionalBoolOpt() protocell.Optional[bool] {
	return v.rec().optionalBool.Opt()
}

func (v TestProto3OptionalView) OptionalString() string {
	return v.rec().optionalString.Get()
}

func (v TestProto3OptionalView) HasOptionalString() bool {
	return v.rec().optionalString.Has()
}

func (v TestProto3OptionalView) OptionalStringOpt() protocell.Optional[string] {
	return v.rec().optionalString.Opt()
}

func (v TestProto3OptionalView) OptionalBytes() []byte {
	return v.rec().optionalBytes.Get()
}

func (v TestProto3OptionalView) HasOptionalBytes() bool {
	return v.rec().optionalBytes.Has()
}

func (v TestProto3OptionalView) OptionalBytesOpt() protocell.Optional[[]byte] {
	return v.rec().optionalBytes.Opt()
}

func (v TestProto3OptionalView) OptionalNestedMessage() TestProto3Optional_NestedMessageView {
	return TestProto3Optional_NestedMessageView{m: v.rec().optionalNestedMessage.Get()}
}

func (v TestProto3OptionalView) HasOptionalNestedMessage() bool {
	return v.rec().optionalNestedMessage.Has()
}

func (v TestProto3OptionalView) OptionalNestedMessageOpt() protocell.Optional[TestProto3Optional_NestedMessageView] {
	if p := v.rec().optionalNestedMessage.Get(); p != nil {
		return protocell.Set(TestProto3Optional_NestedMessageView{m: p})
	}
	return protocell.Unset(TestProto3Optional_NestedMessageView{})
}

func (v TestProto3OptionalView) OptionalNestedEnum() TestProto3Optional_NestedEnum {
	return v.rec().optionalNestedEnum.Get()
}

func (v TestProto3OptionalView) HasOptionalNestedEnum() bool {
	return v.rec().optionalNestedEnum.Has()
}

func (v TestProto3OptionalView) OptionalNestedEnumOpt() protocell.Optional[TestProto3Optional_NestedEnum] {
	return v.rec().optionalNestedEnum.Opt()
}

func (v TestProto3OptionalView) SingularInt32() int32 {
	return v.rec().singularInt32.Get()
}
