package unittest

import (
	"strconv"

	"github.com/wippyai/protocell"
	"github.com/wippyai/protocell/cell"
)

// ForeignEnum is declared at file scope and used by TestAllTypes.
type ForeignEnum int32

const (
	ForeignEnum_FOREIGN_ZERO ForeignEnum = 0
	ForeignEnum_FOREIGN_FOO  ForeignEnum = 4
	ForeignEnum_FOREIGN_BAR  ForeignEnum = 5
	ForeignEnum_FOREIGN_BAZ  ForeignEnum = 6
)

var foreignEnum_type = protocell.NewEnumType("ForeignEnum",
	protocell.EnumValue[ForeignEnum]{Name: "FOREIGN_ZERO", Number: ForeignEnum_FOREIGN_ZERO},
	protocell.EnumValue[ForeignEnum]{Name: "FOREIGN_FOO", Number: ForeignEnum_FOREIGN_FOO},
	protocell.EnumValue[ForeignEnum]{Name: "FOREIGN_BAR", Number: ForeignEnum_FOREIGN_BAR},
	protocell.EnumValue[ForeignEnum]{Name: "FOREIGN_BAZ", Number: ForeignEnum_FOREIGN_BAZ},
)

func (x ForeignEnum) String() string {
	return foreignEnum_type.String(x)
}

// Closed projects x onto the declared enumerators of ForeignEnum.
func (x ForeignEnum) Closed() protocell.Closed[ForeignEnum] {
	return foreignEnum_type.Classify(x)
}

// ForeignEnumType returns the enumerator table of ForeignEnum.
func ForeignEnumType() *protocell.EnumType[ForeignEnum] {
	return foreignEnum_type
}

// TestAllTypes_NestedEnum is the enum declared inside TestAllTypes.
type TestAllTypes_NestedEnum int32

const (
	TestAllTypes_ZERO TestAllTypes_NestedEnum = 0
	TestAllTypes_FOO  TestAllTypes_NestedEnum = 1
	TestAllTypes_BAR  TestAllTypes_NestedEnum = 2
	TestAllTypes_BAZ  TestAllTypes_NestedEnum = 3
	TestAllTypes_NEG  TestAllTypes_NestedEnum = -1
)

var testAllTypes_NestedEnum_type = protocell.NewEnumType("TestAllTypes.NestedEnum",
	protocell.EnumValue[TestAllTypes_NestedEnum]{Name: "ZERO", Number: TestAllTypes_ZERO},
	protocell.EnumValue[TestAllTypes_NestedEnum]{Name: "FOO", Number: TestAllTypes_FOO},
	protocell.EnumValue[TestAllTypes_NestedEnum]{Name: "BAR", Number: TestAllTypes_BAR},
	protocell.EnumValue[TestAllTypes_NestedEnum]{Name: "BAZ", Number: TestAllTypes_BAZ},
	protocell.EnumValue[TestAllTypes_NestedEnum]{Name: "NEG", Number: TestAllTypes_NEG},
)

func (x TestAllTypes_NestedEnum) String() string {
	return testAllTypes_NestedEnum_type.String(x)
}

// Closed projects x onto the declared enumerators of TestAllTypes.NestedEnum.
func (x TestAllTypes_NestedEnum) Closed() protocell.Closed[TestAllTypes_NestedEnum] {
	return testAllTypes_NestedEnum_type.Classify(x)
}

// TestAllTypes_NestedEnumType returns the enumerator table of TestAllTypes.NestedEnum.
func TestAllTypes_NestedEnumType() *protocell.EnumType[TestAllTypes_NestedEnum] {
	return testAllTypes_NestedEnum_type
}

// ForeignMessage is a message declared at file scope.
type ForeignMessage struct {
	c cell.Implicit[int32]
}

// NewForeignMessage returns an empty ForeignMessage.
func NewForeignMessage() *ForeignMessage {
	return &ForeignMessage{}
}

var defaultForeignMessage ForeignMessage

func (m *ForeignMessage) Reset() {
	*m = ForeignMessage{}
}

// Clone returns a deep copy of m.
func (m *ForeignMessage) Clone() *ForeignMessage {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

func (m *ForeignMessage) CloneMessage() protocell.Message {
	return m.Clone()
}

// Equal reports whether m and o hold the same values with the same presence.
func (m *ForeignMessage) Equal(o *ForeignMessage) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.c == o.c
}

func (m *ForeignMessage) EqualMessage(other protocell.Message) bool {
	o, ok := other.(*ForeignMessage)
	return ok && m.Equal(o)
}

// AsView returns a read-only view of m. The view stays usable for as long
// as m is.
func (m *ForeignMessage) AsView() ForeignMessageView {
	return ForeignMessageView{m: m}
}

func (m *ForeignMessage) C() int32 {
	return m.c.Get()
}

func (m *ForeignMessage) SetC(v int32) {
	m.c.Set(v)
}

func (m *ForeignMessage) ClearC() {
	m.c.Clear()
}

// ForeignMessageView is a read-only view of a ForeignMessage.
// The zero ForeignMessageView reads as an empty message.
type ForeignMessageView struct {
	m *ForeignMessage
}

func (v ForeignMessageView) rec() *ForeignMessage {
	if v.m == nil {
		return &defaultForeignMessage
	}
	return v.m
}

// ToOwned returns a deep copy of the viewed message.
func (v ForeignMessageView) ToOwned() *ForeignMessage {
	return v.rec().Clone()
}

func (v ForeignMessageView) C() int32 {
	return v.rec().c.Get()
}

// TestAllTypes_NestedMessage is the message declared inside TestAllTypes.
type TestAllTypes_NestedMessage struct {
	bb cell.Implicit[int32]
}

// NewTestAllTypes_NestedMessage returns an empty TestAllTypes_NestedMessage.
func NewTestAllTypes_NestedMessage() *TestAllTypes_NestedMessage {
	return &TestAllTypes_NestedMessage{}
}

var defaultTestAllTypes_NestedMessage TestAllTypes_NestedMessage

func (m *TestAllTypes_NestedMessage) Reset() {
	*m = TestAllTypes_NestedMessage{}
}

// Clone returns a deep copy of m.
func (m *TestAllTypes_NestedMessage) Clone() *TestAllTypes_NestedMessage {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

func (m *TestAllTypes_NestedMessage) CloneMessage() protocell.Message {
	return m.Clone()
}

// Equal reports whether m and o hold the same values with the same presence.
func (m *TestAllTypes_NestedMessage) Equal(o *TestAllTypes_NestedMessage) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.bb == o.bb
}

func (m *TestAllTypes_NestedMessage) EqualMessage(other protocell.Message) bool {
	o, ok := other.(*TestAllTypes_NestedMessage)
	return ok && m.Equal(o)
}

// AsView returns a read-only view of m. The view stays usable for as long
// as m is.
func (m *TestAllTypes_NestedMessage) AsView() TestAllTypes_NestedMessageView {
	return TestAllTypes_NestedMessageView{m: m}
}

func (m *TestAllTypes_NestedMessage) Bb() int32 {
	return m.bb.Get()
}

func (m *TestAllTypes_NestedMessage) SetBb(v int32) {
	m.bb.Set(v)
}

func (m *TestAllTypes_NestedMessage) ClearBb() {
	m.bb.Clear()
}

// TestAllTypes_NestedMessageView is a read-only view of a TestAllTypes_NestedMessage.
// The zero TestAllTypes_NestedMessageView reads as an empty message.
type TestAllTypes_NestedMessageView struct {
	m *TestAllTypes_NestedMessage
}

func (v TestAllTypes_NestedMessageView) rec() *TestAllTypes_NestedMessage {
	if v.m == nil {
		return &defaultTestAllTypes_NestedMessage
	}
	return v.m
}

// ToOwned returns a deep copy of the viewed message.
func (v TestAllTypes_NestedMessageView) ToOwned() *TestAllTypes_NestedMessage {
	return v.rec().Clone()
}

func (v TestAllTypes_NestedMessageView) Bb() int32 {
	return v.rec().bb.Get()
}

// TestAllTypes covers every singular field kind with proto3 default
// presence. Despite their names, none of its optional_* scalar, string,
// bytes or enum fields track presence.
type TestAllTypes struct {
	optionalInt32          cell.Implicit[int32]
	optionalInt64          cell.Implicit[int64]
	optionalUint32         cell.Implicit[uint32]
	optionalUint64         cell.Implicit[uint64]
	optionalFixed32        cell.Implicit[uint32]
	optionalFixed64        cell.Implicit[uint64]
	optionalFloat          cell.Implicit[float32]
	optionalDouble         cell.Implicit[float64]
	optionalBool           cell.Implicit[bool]
	optionalString         cell.String
	optionalBytes          cell.Bytes
	optionalNestedMessage  cell.Message[TestAllTypes_NestedMessage, *TestAllTypes_NestedMessage]
	optionalForeignMessage cell.Message[ForeignMessage, *ForeignMessage]
	optionalNestedEnum     cell.Implicit[TestAllTypes_NestedEnum]
	optionalForeignEnum    cell.Implicit[ForeignEnum]
	oneofField             cell.Oneof[TestAllTypes_OneofFieldCase]
}

// NewTestAllTypes returns an empty TestAllTypes.
func NewTestAllTypes() *TestAllTypes {
	return &TestAllTypes{}
}

var defaultTestAllTypes TestAllTypes

func (m *TestAllTypes) Reset() {
	*m = TestAllTypes{}
}

// Clone returns a deep copy of m.
func (m *TestAllTypes) Clone() *TestAllTypes {
	if m == nil {
		return nil
	}
	c := *m
	c.optionalBytes = m.optionalBytes.Clone()
	c.optionalNestedMessage = m.optionalNestedMessage.Clone()
	c.optionalForeignMessage = m.optionalForeignMessage.Clone()
	c.oneofField = m.oneofField.Clone()
	return &c
}

func (m *TestAllTypes) CloneMessage() protocell.Message {
	return m.Clone()
}

// Equal reports whether m and o hold the same values with the same presence.
func (m *TestAllTypes) Equal(o *TestAllTypes) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.optionalInt32 == o.optionalInt32 &&
		m.optionalInt64 == o.optionalInt64 &&
		m.optionalUint32 == o.optionalUint32 &&
		m.optionalUint64 == o.optionalUint64 &&
		m.optionalFixed32 == o.optionalFixed32 &&
		m.optionalFixed64 == o.optionalFixed64 &&
		m.optionalFloat == o.optionalFloat &&
		m.optionalDouble == o.optionalDouble &&
		m.optionalBool == o.optionalBool &&
		m.optionalString == o.optionalString &&
		m.optionalBytes.Equal(o.optionalBytes) &&
		m.optionalNestedMessage.Equal(o.optionalNestedMessage) &&
		m.optionalForeignMessage.Equal(o.optionalForeignMessage) &&
		m.optionalNestedEnum == o.optionalNestedEnum &&
		m.optionalForeignEnum == o.optionalForeignEnum &&
		m.oneofField.Equal(o.oneofField)
}

func (m *TestAllTypes) EqualMessage(other protocell.Message) bool {
	o, ok := other.(*TestAllTypes)
	return ok && m.Equal(o)
}

// AsView returns a read-only view of m. The view stays usable for as long
// as m is.
func (m *TestAllTypes) AsView() TestAllTypesView {
	return TestAllTypesView{m: m}
}

func (m *TestAllTypes) OptionalInt32() int32 {
	return m.optionalInt32.Get()
}

func (m *TestAllTypes) SetOptionalInt32(v int32) {
	m.optionalInt32.Set(v)
}

func (m *TestAllTypes) ClearOptionalInt32() {
	m.optionalInt32.Clear()
}

func (m *TestAllTypes) OptionalInt64() int64 {
	return m.optionalInt64.Get()
}

func (m *TestAllTypes) SetOptionalInt64(v int64) {
	m.optionalInt64.Set(v)
}

func (m *TestAllTypes) ClearOptionalInt64() {
	m.optionalInt64.Clear()
}

func (m *TestAllTypes) OptionalUint32() uint32 {
	return m.optionalUint32.Get()
}

func (m *TestAllTypes) SetOptionalUint32(v uint32) {
	m.optionalUint32.Set(v)
}

func (m *TestAllTypes) ClearOptionalUint32() {
	m.optionalUint32.Clear()
}

func (m *TestAllTypes) OptionalUint64() uint64 {
	return m.optionalUint64.Get()
}

func (m *TestAllTypes) SetOptionalUint64(v uint64) {
	m.optionalUint64.Set(v)
}

func (m *TestAllTypes) ClearOptionalUint64() {
	m.optionalUint64.Clear()
}

func (m *TestAllTypes) OptionalFixed32() uint32 {
	return m.optionalFixed32.Get()
}

func (m *TestAllTypes) SetOptionalFixed32(v uint32) {
	m.optionalFixed32.Set(v)
}

func (m *TestAllTypes) ClearOptionalFixed32() {
	m.optionalFixed32.Clear()
}

func (m *TestAllTypes) OptionalFixed64() uint64 {
	return m.optionalFixed64.Get()
}

func (m *TestAllTypes) SetOptionalFixed64(v uint64) {
	m.optionalFixed64.Set(v)
}

func (m *TestAllTypes) ClearOptionalFixed64() {
	m.optionalFixed64.Clear()
}

func (m *TestAllTypes) OptionalFloat() float32 {
	return m.optionalFloat.Get()
}

func (m *TestAllTypes) SetOptionalFloat(v float32) {
	m.optionalFloat.Set(v)
}

func (m *TestAllTypes) ClearOptionalFloat() {
	m.optionalFloat.Clear()
}

func (m *TestAllTypes) OptionalDouble() float64 {
	return m.optionalDouble.Get()
}

func (m *TestAllTypes) SetOptionalDouble(v float64) {
	m.optionalDouble.Set(v)
}

func (m *TestAllTypes) ClearOptionalDouble() {
	m.optionalDouble.Clear()
}

func (m *TestAllTypes) OptionalBool() bool {
	return m.optionalBool.Get()
}

func (m *TestAllTypes) SetOptionalBool(v bool) {
	m.optionalBool.Set(v)
}

func (m *TestAllTypes) ClearOptionalBool() {
	m.optionalBool.Clear()
}

func (m *TestAllTypes) OptionalString() string {
	return m.optionalString.Get()
}

func (m *TestAllTypes) SetOptionalString(v string) {
	m.optionalString.Set(v)
}

func (m *TestAllTypes) ClearOptionalString() {
	m.optionalString.Clear()
}

func (m *TestAllTypes) OptionalBytes() []byte {
	return m.optionalBytes.Get()
}

// SetOptionalBytes stores a copy of v.
func (m *TestAllTypes) SetOptionalBytes(v []byte) {
	m.optionalBytes.Set(v)
}

func (m *TestAllTypes) ClearOptionalBytes() {
	m.optionalBytes.Clear()
}

func (m *TestAllTypes) OptionalNestedMessage() TestAllTypes_NestedMessageView {
	return TestAllTypes_NestedMessageView{m: m.optionalNestedMessage.Get()}
}

// OptionalNestedMessageMut returns optional_nested_message for modification, setting it to a default
// message first when it is unset.
func (m *TestAllTypes) OptionalNestedMessageMut() *TestAllTypes_NestedMessage {
	return m.optionalNestedMessage.Mut()
}

// SetOptionalNestedMessage stores a copy of v. A nil v clears the field.
func (m *TestAllTypes) SetOptionalNestedMessage(v *TestAllTypes_NestedMessage) {
	m.optionalNestedMessage.Set(v)
}

func (m *TestAllTypes) ClearOptionalNestedMessage() {
	m.optionalNestedMessage.Clear()
}

func (m *TestAllTypes) HasOptionalNestedMessage() bool {
	return m.optionalNestedMessage.Has()
}

func (m *TestAllTypes) OptionalNestedMessageOpt() protocell.Optional[TestAllTypes_NestedMessageView] {
	return m.AsView().OptionalNestedMessageOpt()
}

func (m *TestAllTypes) OptionalForeignMessage() ForeignMessageView {
	return ForeignMessageView{m: m.optionalForeignMessage.Get()}
}

// OptionalForeignMessageMut returns optional_foreign_message for modification, setting it to a default
// message first when it is unset.
func (m *TestAllTypes) OptionalForeignMessageMut() *ForeignMessage {
	return m.optionalForeignMessage.Mut()
}

// SetOptionalForeignMessage stores a copy of v. A nil v clears the field.
func (m *TestAllTypes) SetOptionalForeignMessage(v *ForeignMessage) {
	m.optionalForeignMessage.Set(v)
}

func (m *TestAllTypes) ClearOptionalForeignMessage() {
	m.optionalForeignMessage.Clear()
}

func (m *TestAllTypes) HasOptionalForeignMessage() bool {
	return m.optionalForeignMessage.Has()
}

func (m *TestAllTypes) OptionalForeignMessageOpt() protocell.Optional[ForeignMessageView] {
	return m.AsView().OptionalForeignMessageOpt()
}

func (m *TestAllTypes) OptionalNestedEnum() TestAllTypes_NestedEnum {
	return m.optionalNestedEnum.Get()
}

func (m *TestAllTypes) SetOptionalNestedEnum(v TestAllTypes_NestedEnum) {
	m.optionalNestedEnum.Set(v)
}

func (m *TestAllTypes) ClearOptionalNestedEnum() {
	m.optionalNestedEnum.Clear()
}

func (m *TestAllTypes) OptionalForeignEnum() ForeignEnum {
	return m.optionalForeignEnum.Get()
}

func (m *TestAllTypes) SetOptionalForeignEnum(v ForeignEnum) {
	m.optionalForeignEnum.Set(v)
}

func (m *TestAllTypes) ClearOptionalForeignEnum() {
	m.optionalForeignEnum.Clear()
}

// OneofField returns the active member of the oneof_field oneof.
func (m *TestAllTypes) OneofField() TestAllTypes_OneofField {
	return m.AsView().OneofField()
}

func (m *TestAllTypes) OneofFieldCase() TestAllTypes_OneofFieldCase {
	return m.oneofField.Case()
}

// ClearOneofField unsets whichever member of oneof_field is active.
func (m *TestAllTypes) ClearOneofField() {
	m.oneofField.Reset()
}

func (m *TestAllTypes) OneofUint32() uint32 {
	return cell.ScalarOf[uint32](&m.oneofField, TestAllTypes_OneofUint32Case).Value()
}

// SetOneofUint32 makes oneof_uint32 the active member of oneof_field.
func (m *TestAllTypes) SetOneofUint32(v uint32) {
	cell.SetScalar(&m.oneofField, TestAllTypes_OneofUint32Case, v)
}

// ClearOneofUint32 unsets oneof_uint32. It does nothing when another member of oneof_field
// is active.
func (m *TestAllTypes) ClearOneofUint32() {
	m.oneofField.Clear(TestAllTypes_OneofUint32Case)
}

func (m *TestAllTypes) HasOneofUint32() bool {
	return m.oneofField.Is(TestAllTypes_OneofUint32Case)
}

func (m *TestAllTypes) OneofUint32Opt() protocell.Optional[uint32] {
	return cell.ScalarOf[uint32](&m.oneofField, TestAllTypes_OneofUint32Case)
}

func (m *TestAllTypes) OneofNestedMessage() TestAllTypes_NestedMessageView {
	return m.AsView().OneofNestedMessage()
}

// OneofNestedMessageMut returns oneof_nested_message for modification. When another member of
// oneof_field is active, or none is, oneof_nested_message becomes the active member holding a
// default message.
func (m *TestAllTypes) OneofNestedMessageMut() *TestAllTypes_NestedMessage {
	return cell.MutableMessage[TestAllTypes_NestedMessage](&m.oneofField, TestAllTypes_OneofNestedMessageCase)
}

// SetOneofNestedMessage makes oneof_nested_message the active member of oneof_field, holding a copy of v.
// A nil v clears oneof_nested_message.
func (m *TestAllTypes) SetOneofNestedMessage(v *TestAllTypes_NestedMessage) {
	cell.SetMessage(&m.oneofField, TestAllTypes_OneofNestedMessageCase, v)
}

// ClearOneofNestedMessage unsets oneof_nested_message. It does nothing when another member of oneof_field
// is active.
func (m *TestAllTypes) ClearOneofNestedMessage() {
	m.oneofField.Clear(TestAllTypes_OneofNestedMessageCase)
}

func (m *TestAllTypes) HasOneofNestedMessage() bool {
	return m.oneofField.Is(TestAllTypes_OneofNestedMessageCase)
}

func (m *TestAllTypes) OneofNestedMessageOpt() protocell.Optional[TestAllTypes_NestedMessageView] {
	return m.AsView().OneofNestedMessageOpt()
}

func (m *TestAllTypes) OneofString() string {
	return cell.StringOf(&m.oneofField, TestAllTypes_OneofStringCase).Value()
}

// SetOneofString makes oneof_string the active member of oneof_field.
func (m *TestAllTypes) SetOneofString(v string) {
	cell.SetString(&m.oneofField, TestAllTypes_OneofStringCase, v)
}

// ClearOneofString unsets oneof_string. It does nothing when another member of oneof_field
// is active.
func (m *TestAllTypes) ClearOneofString() {
	m.oneofField.Clear(TestAllTypes_OneofStringCase)
}

func (m *TestAllTypes) HasOneofString() bool {
	return m.oneofField.Is(TestAllTypes_OneofStringCase)
}

func (m *TestAllTypes) OneofStringOpt() protocell.Optional[string] {
	return cell.StringOf(&m.oneofField, TestAllTypes_OneofStringCase)
}

func (m *TestAllTypes) OneofBytes() []byte {
	return cell.BytesOf(&m.oneofField, TestAllTypes_OneofBytesCase).Value()
}

// SetOneofBytes makes oneof_bytes the active member of oneof_field.
func (m *TestAllTypes) SetOneofBytes(v []byte) {
	cell.SetBytes(&m.oneofField, TestAllTypes_OneofBytesCase, v)
}

// ClearOneofBytes unsets oneof_bytes. It does nothing when another member of oneof_field
// is active.
func (m *TestAllTypes) ClearOneofBytes() {
	m.oneofField.Clear(TestAllTypes_OneofBytesCase)
}

func (m *TestAllTypes) HasOneofBytes() bool {
	return m.oneofField.Is(TestAllTypes_OneofBytesCase)
}

func (m *TestAllTypes) OneofBytesOpt() protocell.Optional[[]byte] {
	return cell.BytesOf(&m.oneofField, TestAllTypes_OneofBytesCase)
}

// TestAllTypesView is a read-only view of a TestAllTypes.
// The zero TestAllTypesView reads as an empty message.
type TestAllTypesView struct {
	m *TestAllTypes
}

func (v TestAllTypesView) rec() *TestAllTypes {
	if v.m == nil {
		return &defaultTestAllTypes
	}
	return v.m
}

// ToOwned returns a deep copy of the viewed message.
func (v TestAllTypesView) ToOwned() *TestAllTypes {
	return v.rec().Clone()
}

func (v TestAllTypesView) OptionalInt32() int32 {
	return v.rec().optionalInt32.Get()
}

func (v TestAllTypesView) OptionalInt64() int64 {
	return v.rec().optionalInt64.Get()
}

func (v TestAllTypesView) OptionalUint32() uint32 {
	return v.rec().optionalUint32.Get()
}

func (v TestAllTypesView) OptionalUint64() uint64 {
	return v.rec().optionalUint64.Get()
}

func (v TestAllTypesView) OptionalFixed32() uint32 {
	return v.rec().optionalFixed32.Get()
}

func (v TestAllTypesView) OptionalFixed64() uint64 {
	return v.rec().optionalFixed64.Get()
}

func (v TestAllTypesView) OptionalFloat() float32 {
	return v.rec().optionalFloat.Get()
}

func (v TestAllTypesView) OptionalDouble() float64 {
	return v.rec().optionalDouble.Get()
}

func (v TestAllTypesView) OptionalBool() bool {
	return v.rec().optionalBool.Get()
}

func (v TestAllTypesView) OptionalString() string {
	return v.rec().optionalString.Get()
}

func (v TestAllTypesView) OptionalBytes() []byte {
	return v.rec().optionalBytes.Get()
}

func (v TestAllTypesView) OptionalNestedMessage() TestAllTypes_NestedMessageView {
	return TestAllTypes_NestedMessageView{m: v.rec().optionalNestedMessage.Get()}
}

func (v TestAllTypesView) HasOptionalNestedMessage() bool {
	return v.rec().optionalNestedMessage.Has()
}

func (v TestAllTypesView) OptionalNestedMessageOpt() protocell.Optional[TestAllTypes_NestedMessageView] {
	if p := v.rec().optionalNestedMessage.Get(); p != nil {
		return protocell.Set(TestAllTypes_NestedMessageView{m: p})
	}
	return protocell.Unset(TestAllTypes_NestedMessageView{})
}

func (v TestAllTypesView) OptionalForeignMessage() ForeignMessageView {
	return ForeignMessageView{m: v.rec().optionalForeignMessage.Get()}
}

func (v TestAllTypesView) HasOptionalForeignMessage() bool {
	return v.rec().optionalForeignMessage.Has()
}

func (v TestAllTypesView) OptionalForeignMessageOpt() protocell.Optional[ForeignMessageView] {
	if p := v.rec().optionalForeignMessage.Get(); p != nil {
		return protocell.Set(ForeignMessageView{m: p})
	}
	return protocell.Unset(ForeignMessageView{})
}

func (v TestAllTypesView) OptionalNestedEnum() TestAllTypes_NestedEnum {
	return v.rec().optionalNestedEnum.Get()
}

func (v TestAllTypesView) OptionalForeignEnum() ForeignEnum {
	return v.rec().optionalForeignEnum.Get()
}

func (v TestAllTypesView) OneofFieldCase() TestAllTypes_OneofFieldCase {
	return v.rec().oneofField.Case()
}

// OneofField returns the active member of the oneof_field oneof. The result does not
// depend on the view and may outlive it.
func (v TestAllTypesView) OneofField() TestAllTypes_OneofField {
	r := v.rec()
	switch r.oneofField.Case() {
	case TestAllTypes_OneofUint32Case:
		return TestAllTypes_OneofUint32{OneofUint32: v.OneofUint32()}
	case TestAllTypes_OneofNestedMessageCase:
		return TestAllTypes_OneofNestedMessage{OneofNestedMessage: v.OneofNestedMessage()}
	case TestAllTypes_OneofStringCase:
		return TestAllTypes_OneofString{OneofString: v.OneofString()}
	case TestAllTypes_OneofBytesCase:
		return TestAllTypes_OneofBytes{OneofBytes: v.OneofBytes()}
	default:
		return TestAllTypes_OneofFieldNotSet{}
	}
}

func (v TestAllTypesView) OneofUint32() uint32 {
	return cell.ScalarOf[uint32](&v.rec().oneofField, TestAllTypes_OneofUint32Case).Value()
}

func (v TestAllTypesView) HasOneofUint32() bool {
	return v.rec().oneofField.Is(TestAllTypes_OneofUint32Case)
}

func (v TestAllTypesView) OneofUint32Opt() protocell.Optional[uint32] {
	return cell.ScalarOf[uint32](&v.rec().oneofField, TestAllTypes_OneofUint32Case)
}

func (v TestAllTypesView) OneofNestedMessage() TestAllTypes_NestedMessageView {
	return TestAllTypes_NestedMessageView{m: cell.MessageOf[TestAllTypes_NestedMessage](&v.rec().oneofField, TestAllTypes_OneofNestedMessageCase)}
}

func (v TestAllTypesView) HasOneofNestedMessage() bool {
	return v.rec().oneofField.Is(TestAllTypes_OneofNestedMessageCase)
}

func (v TestAllTypesView) OneofNestedMessageOpt() protocell.Optional[TestAllTypes_NestedMessageView] {
	if p := cell.MessageOf[TestAllTypes_NestedMessage](&v.rec().oneofField, TestAllTypes_OneofNestedMessageCase); p != nil {
		return protocell.Set(TestAllTypes_NestedMessageView{m: p})
	}
	return protocell.Unset(TestAllTypes_NestedMessageView{})
}

func (v TestAllTypesView) OneofString() string {
	return cell.StringOf(&v.rec().oneofField, TestAllTypes_OneofStringCase).Value()
}

func (v TestAllTypesView) HasOneofString() bool {
	return v.rec().oneofField.Is(TestAllTypes_OneofStringCase)
}

func (v TestAllTypesView) OneofStringOpt() protocell.Optional[string] {
	return cell.StringOf(&v.rec().oneofField, TestAllTypes_OneofStringCase)
}

func (v TestAllTypesView) OneofBytes() []byte {
	return cell.BytesOf(&v.rec().oneofField, TestAllTypes_OneofBytesCase).Value()
}

func (v TestAllTypesView) HasOneofBytes() bool {
	return v.rec().oneofField.Is(TestAllTypes_OneofBytesCase)
}

func (v TestAllTypesView) OneofBytesOpt() protocell.Optional[[]byte] {
	return cell.BytesOf(&v.rec().oneofField, TestAllTypes_OneofBytesCase)
}

// TestAllTypes_OneofFieldCase identifies the active member of the oneof_field oneof.
type TestAllTypes_OneofFieldCase int32

const (
	TestAllTypes_OneofFieldNotSetCase   TestAllTypes_OneofFieldCase = 0
	TestAllTypes_OneofUint32Case        TestAllTypes_OneofFieldCase = 111
	TestAllTypes_OneofNestedMessageCase TestAllTypes_OneofFieldCase = 112
	TestAllTypes_OneofStringCase        TestAllTypes_OneofFieldCase = 113
	TestAllTypes_OneofBytesCase         TestAllTypes_OneofFieldCase = 114
)

func (c TestAllTypes_OneofFieldCase) String() string {
	switch c {
	case TestAllTypes_OneofFieldNotSetCase:
		return "not_set"
	case TestAllTypes_OneofUint32Case:
		return "oneof_uint32"
	case TestAllTypes_OneofNestedMessageCase:
		return "oneof_nested_message"
	case TestAllTypes_OneofStringCase:
		return "oneof_string"
	case TestAllTypes_OneofBytesCase:
		return "oneof_bytes"
	default:
		return "oneof_field(" + strconv.Itoa(int(c)) + ")"
	}
}

// TestAllTypes_OneofField is the value of the oneof_field oneof: TestAllTypes_OneofFieldNotSet or one of
// TestAllTypes_OneofUint32, TestAllTypes_OneofNestedMessage, TestAllTypes_OneofString, TestAllTypes_OneofBytes.
type TestAllTypes_OneofField interface {
	Case() TestAllTypes_OneofFieldCase
	isTestAllTypes_OneofField()
}

type TestAllTypes_OneofFieldNotSet struct{}

type TestAllTypes_OneofUint32 struct {
	OneofUint32 uint32
}

type TestAllTypes_OneofNestedMessage struct {
	OneofNestedMessage TestAllTypes_NestedMessageView
}

type TestAllTypes_OneofString struct {
	OneofString string
}

type TestAllTypes_OneofBytes struct {
	OneofBytes []byte
}

func (TestAllTypes_OneofFieldNotSet) Case() TestAllTypes_OneofFieldCase {
	return TestAllTypes_OneofFieldNotSetCase
}

func (TestAllTypes_OneofFieldNotSet) isTestAllTypes_OneofField() {}

func (TestAllTypes_OneofUint32) Case() TestAllTypes_OneofFieldCase {
	return TestAllTypes_OneofUint32Case
}

func (TestAllTypes_OneofUint32) isTestAllTypes_OneofField() {}

func (TestAllTypes_OneofNestedMessage) Case() TestAllTypes_OneofFieldCase {
	return TestAllTypes_OneofNestedMessageCase
}

func (TestAllTypes_OneofNestedMessage) isTestAllTypes_OneofField() {}

func (TestAllTypes_OneofString) Case() TestAllTypes_OneofFieldCase {
	return TestAllTypes_OneofStringCase
}

func (TestAllTypes_OneofString) isTestAllTypes_OneofField() {}

func (TestAllTypes_OneofBytes) Case() TestAllTypes_OneofFieldCase {
	return TestAllTypes_OneofBytesCase
}

func (TestAllTypes_OneofBytes) isTestAllTypes_OneofField() {}
