package dynamic

import (
	stderrors "errors"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/wippyai/protocell/errors"
	"github.com/wippyai/protocell/schema"
)

// convert checks that v can be stored in f and returns it as a Value of the
// field's kind. Integers are range checked against the field kind. Enum
// fields accept enumerator names and any int32 number, declared or not.
func convert(f *schema.Field, v any, path []string) (Value, error) {
	if val, ok := v.(Value); ok {
		if !val.valid {
			return Value{}, errors.InvalidInput(errors.PhaseAccess, "invalid Value")
		}
		if val.kind == schema.KindMessage {
			v = val.msg
		} else {
			v = val.Interface()
		}
	}

	switch f.Kind {
	case schema.KindBool:
		b, ok := v.(bool)
		if !ok {
			return Value{}, mismatch(f, v, path)
		}
		return BoolValue(b), nil

	case schema.KindFloat, schema.KindDouble:
		x, ok := toFloat(v)
		if !ok {
			return Value{}, mismatch(f, v, path)
		}
		if f.Kind == schema.KindFloat {
			if math.Abs(x) > math.MaxFloat32 && !math.IsInf(x, 0) {
				return Value{}, errors.Overflow(errors.PhaseAccess, path, x, f.Kind.String())
			}
			return Float32Value(float32(x)), nil
		}
		return Float64Value(x), nil

	case schema.KindString:
		switch s := v.(type) {
		case string:
			return StringValue(s), nil
		case []byte:
			return StringValue(string(s)), nil
		}
		return Value{}, mismatch(f, v, path)

	case schema.KindBytes:
		switch b := v.(type) {
		case []byte:
			return BytesValue(b), nil
		case string:
			return BytesValue([]byte(b)), nil
		}
		return Value{}, mismatch(f, v, path)

	case schema.KindEnum:
		return convertEnum(f, v, path)

	case schema.KindMessage:
		var m *Message
		switch x := v.(type) {
		case nil:
		case *Message:
			m = x
		case View:
			m = x.m
		default:
			return Value{}, mismatch(f, v, path)
		}
		if m != nil && m.desc != f.Message {
			return Value{}, errors.TypeMismatch(errors.PhaseAccess, path, m.desc.Name, f.Message.Name)
		}
		return MessageValue(m), nil
	}

	lo, hi, ok := f.Kind.Range()
	if !ok {
		return Value{}, errors.Unsupported(errors.PhaseAccess, "field kind "+f.Kind.String())
	}
	n, neg, ok := toInteger(v)
	if !ok {
		return Value{}, mismatch(f, v, path)
	}
	if neg {
		if int64(n) < lo {
			return Value{}, errors.Overflow(errors.PhaseAccess, path, int64(n), f.Kind.String())
		}
	} else if n > hi {
		return Value{}, errors.Overflow(errors.PhaseAccess, path, n, f.Kind.String())
	}
	return Value{kind: f.Kind, num: n, valid: true}, nil
}

func convertEnum(f *schema.Field, v any, path []string) (Value, error) {
	if name, ok := v.(string); ok {
		ev, found := f.Enum.ByName(name)
		if !found {
			return Value{}, errors.InvalidEnum(errors.PhaseAccess, path, name, f.Enum.Name)
		}
		return EnumValue(ev.Number), nil
	}
	if ev, ok := v.(schema.EnumValue); ok {
		return EnumValue(ev.Number), nil
	}
	n, neg, ok := toInteger(v)
	if !ok {
		return Value{}, mismatch(f, v, path)
	}
	if (neg && int64(n) < math.MinInt32) || (!neg && n > math.MaxInt32) {
		return Value{}, errors.Overflow(errors.PhaseAccess, path, v, f.Enum.Name)
	}
	return EnumValue(int32(int64(n))), nil
}

// toInteger widens any Go integer to 64 bits. neg reports whether the value
// is a negative signed integer, in which case n holds its two's complement.
func toInteger(v any) (n uint64, neg bool, ok bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		return uint64(i), i < 0, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), false, true
	default:
		return 0, false, false
	}
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func mismatch(f *schema.Field, v any, path []string) error {
	return errors.TypeMismatch(errors.PhaseAccess, path, fmt.Sprintf("%T", v), f.TypeString())
}

// parseText parses text as a value of f, the way a command line would
// spell it. Enum fields take an enumerator name or a number.
func parseText(f *schema.Field, text string, path []string) (Value, error) {
	var (
		v   any
		err error
	)
	switch f.Kind {
	case schema.KindBool:
		v, err = strconv.ParseBool(text)
	case schema.KindInt32, schema.KindSint32, schema.KindSfixed32:
		v, err = strconv.ParseInt(text, 0, 32)
	case schema.KindInt64, schema.KindSint64, schema.KindSfixed64:
		v, err = strconv.ParseInt(text, 0, 64)
	case schema.KindUint32, schema.KindFixed32:
		v, err = strconv.ParseUint(text, 0, 32)
	case schema.KindUint64, schema.KindFixed64:
		v, err = strconv.ParseUint(text, 0, 64)
	case schema.KindFloat:
		v, err = strconv.ParseFloat(text, 32)
	case schema.KindDouble:
		v, err = strconv.ParseFloat(text, 64)
	case schema.KindString:
		v = text
	case schema.KindBytes:
		v = []byte(text)
	case schema.KindEnum:
		if _, ok := f.Enum.ByName(text); ok {
			v = text
		} else if n, perr := strconv.ParseInt(text, 0, 32); perr == nil {
			v = int32(n)
		} else {
			return Value{}, errors.InvalidEnum(errors.PhaseAccess, path, text, f.Enum.Name)
		}
	default:
		return Value{}, errors.New(errors.PhaseAccess, errors.KindUnsupported).
			Path(path...).
			Detail("%s fields cannot be set from text", f.Kind).
			Build()
	}
	if err != nil {
		kind := errors.KindInvalidInput
		if stderrors.Is(err, strconv.ErrRange) {
			kind = errors.KindOverflow
		}
		return Value{}, errors.New(errors.PhaseAccess, kind).
			Path(path...).
			FieldType(f.Kind.String()).
			Value(text).
			Cause(err).
			Build()
	}
	return convert(f, v, path)
}
