package dynamic

import (
	"bytes"
	"math"
	"strconv"

	"github.com/wippyai/protocell/schema"
)

// Value holds one field value of any kind. The zero Value is invalid and
// stands for "no value".
//
// Numbers are kept in num: signed integers and enums as two's complement,
// floats as their IEEE-754 bits. Bytes held by a Value returned from a
// Message alias the message and must not be modified.
//
// A Value read through a View is read-only: its nested message is only
// reachable through View.
type Value struct {
	msg   *Message
	bytes []byte
	str   string
	num   uint64
	kind  schema.Kind
	valid bool
	ro    bool
}

func BoolValue(v bool) Value {
	var n uint64
	if v {
		n = 1
	}
	return Value{kind: schema.KindBool, num: n, valid: true}
}

func Int32Value(v int32) Value {
	return Value{kind: schema.KindInt32, num: uint64(int64(v)), valid: true}
}

func Int64Value(v int64) Value {
	return Value{kind: schema.KindInt64, num: uint64(v), valid: true}
}

func Uint32Value(v uint32) Value {
	return Value{kind: schema.KindUint32, num: uint64(v), valid: true}
}

func Uint64Value(v uint64) Value {
	return Value{kind: schema.KindUint64, num: v, valid: true}
}

func Float32Value(v float32) Value {
	return Value{kind: schema.KindFloat, num: math.Float64bits(float64(v)), valid: true}
}

func Float64Value(v float64) Value {
	return Value{kind: schema.KindDouble, num: math.Float64bits(v), valid: true}
}

func StringValue(v string) Value {
	return Value{kind: schema.KindString, str: v, valid: true}
}

// BytesValue returns a Value holding v. The slice is not copied.
func BytesValue(v []byte) Value {
	return Value{kind: schema.KindBytes, bytes: v, valid: true}
}

// EnumValue returns a Value holding the enum number n.
func EnumValue(n int32) Value {
	return Value{kind: schema.KindEnum, num: uint64(int64(n)), valid: true}
}

// MessageValue returns a Value holding m. The message is not copied.
func MessageValue(m *Message) Value {
	return Value{kind: schema.KindMessage, msg: m, valid: true}
}

// IsValid reports whether v holds a value.
func (v Value) IsValid() bool {
	return v.valid
}

// Kind returns the kind v was created with.
func (v Value) Kind() schema.Kind {
	return v.kind
}

func (v Value) Bool() bool {
	return v.num != 0
}

// Int returns a signed integer or enum value widened to int64.
func (v Value) Int() int64 {
	return int64(v.num)
}

// Uint returns an unsigned integer value widened to uint64.
func (v Value) Uint() uint64 {
	return v.num
}

func (v Value) Float() float64 {
	return math.Float64frombits(v.num)
}

func (v Value) Bytes() []byte {
	if v.bytes == nil && v.kind == schema.KindBytes {
		return []byte{}
	}
	return v.bytes
}

// Enum returns the enum number.
func (v Value) Enum() int32 {
	return int32(v.num)
}

// Message returns the message held by v. It is nil for an unset message
// field read through Get and for any Value read through a View.
func (v Value) Message() *Message {
	if v.ro {
		return nil
	}
	return v.msg
}

// View returns a read-only view of the message held by v. It is the zero
// View when v holds no message.
func (v Value) View() View {
	return View{m: v.msg}
}

func (v Value) readOnly() Value {
	v.ro = true
	return v
}

// String returns the string held by v. For other kinds it returns the value
// formatted as text.
func (v Value) String() string {
	if !v.valid {
		return "<invalid>"
	}
	switch v.kind {
	case schema.KindString:
		return v.str
	case schema.KindBool:
		return strconv.FormatBool(v.Bool())
	case schema.KindUint32, schema.KindUint64, schema.KindFixed32, schema.KindFixed64:
		return strconv.FormatUint(v.num, 10)
	case schema.KindFloat:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case schema.KindDouble:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case schema.KindBytes:
		return strconv.Quote(string(v.bytes))
	case schema.KindMessage:
		if v.msg == nil {
			return "{}"
		}
		return "{" + v.msg.String() + "}"
	default:
		return strconv.FormatInt(v.Int(), 10)
	}
}

// Interface returns v as the Go value generated accessors use for its kind.
// A read-only message Value yields a View.
func (v Value) Interface() any {
	if !v.valid {
		return nil
	}
	switch v.kind {
	case schema.KindBool:
		return v.Bool()
	case schema.KindInt32, schema.KindSint32, schema.KindSfixed32, schema.KindEnum:
		return int32(v.num)
	case schema.KindInt64, schema.KindSint64, schema.KindSfixed64:
		return int64(v.num)
	case schema.KindUint32, schema.KindFixed32:
		return uint32(v.num)
	case schema.KindUint64, schema.KindFixed64:
		return v.num
	case schema.KindFloat:
		return float32(v.Float())
	case schema.KindDouble:
		return v.Float()
	case schema.KindString:
		return v.str
	case schema.KindBytes:
		return v.Bytes()
	default:
		if v.ro {
			return v.View()
		}
		return v.msg
	}
}

// Equal reports whether v and o hold the same kind and value. Messages are
// compared deeply.
func (v Value) Equal(o Value) bool {
	if v.valid != o.valid || v.kind != o.kind || v.num != o.num || v.str != o.str {
		return false
	}
	if !bytes.Equal(v.bytes, o.bytes) {
		return false
	}
	if v.msg == nil || o.msg == nil {
		return v.msg == nil && o.msg == nil
	}
	return v.msg.Equal(o.msg)
}

func (v Value) isZero() bool {
	return v.num == 0 && v.str == "" && len(v.bytes) == 0 && v.msg == nil
}

func (v Value) clone() Value {
	if v.bytes != nil {
		v.bytes = append([]byte(nil), v.bytes...)
	}
	if v.msg != nil {
		v.msg = v.msg.Clone()
	}
	return v
}

// zeroValue returns the default value of f.
func zeroValue(f *schema.Field) Value {
	v := Value{kind: f.Kind, valid: true}
	if f.Kind == schema.KindEnum && f.Enum != nil {
		v.num = uint64(int64(f.Enum.Default().Number))
	}
	return v
}
