package schema

import "math"

// Kind is the declared type of a field.
type Kind uint8

const (
	KindBool Kind = iota
	KindInt32
	KindInt64
	KindUint32
	KindUint64
	KindSint32
	KindSint64
	KindFixed32
	KindFixed64
	KindSfixed32
	KindSfixed64
	KindFloat
	KindDouble
	KindString
	KindBytes
	KindEnum
	KindMessage
)

var kindNames = [...]string{
	KindBool:     "bool",
	KindInt32:    "int32",
	KindInt64:    "int64",
	KindUint32:   "uint32",
	KindUint64:   "uint64",
	KindSint32:   "sint32",
	KindSint64:   "sint64",
	KindFixed32:  "fixed32",
	KindFixed64:  "fixed64",
	KindSfixed32: "sfixed32",
	KindSfixed64: "sfixed64",
	KindFloat:    "float",
	KindDouble:   "double",
	KindString:   "string",
	KindBytes:    "bytes",
	KindEnum:     "enum",
	KindMessage:  "message",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsScalar reports whether values of k are fixed-width numbers or bools.
// Enums count as scalars: they are stored as their int32 number.
func (k Kind) IsScalar() bool {
	return k <= KindDouble || k == KindEnum
}

// GoType returns the Go type generated accessors use for k.
func (k Kind) GoType() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt32, KindSint32, KindSfixed32, KindEnum:
		return "int32"
	case KindInt64, KindSint64, KindSfixed64:
		return "int64"
	case KindUint32, KindFixed32:
		return "uint32"
	case KindUint64, KindFixed64:
		return "uint64"
	case KindFloat:
		return "float32"
	case KindDouble:
		return "float64"
	case KindString:
		return "string"
	case KindBytes:
		return "[]byte"
	case KindMessage:
		return "message"
	default:
		return "unknown"
	}
}

// Range returns the inclusive bounds of an integer kind. ok is false for
// kinds that are not integers.
func (k Kind) Range() (lo int64, hi uint64, ok bool) {
	switch k {
	case KindInt32, KindSint32, KindSfixed32, KindEnum:
		return math.MinInt32, math.MaxInt32, true
	case KindInt64, KindSint64, KindSfixed64:
		return math.MinInt64, math.MaxInt64, true
	case KindUint32, KindFixed32:
		return 0, math.MaxUint32, true
	case KindUint64, KindFixed64:
		return 0, math.MaxUint64, true
	default:
		return 0, 0, false
	}
}

// ParseKind returns the kind called name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Presence tells whether a field distinguishes "set to the default" from
// "never set".
type Presence uint8

const (
	PresenceImplicit Presence = iota
	PresenceExplicit
)

func (p Presence) String() string {
	if p == PresenceExplicit {
		return "explicit"
	}
	return "implicit"
}
