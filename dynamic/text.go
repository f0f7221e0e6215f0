package dynamic

import (
	"strconv"
	"strings"

	"github.com/wippyai/protocell/schema"
)

// String renders the set fields of m on one line in text format, for
// example `id: 7 note: "x" detail { size: 3 }`. Enum values print as their
// enumerator name when one is declared.
func (m *Message) String() string {
	var b strings.Builder
	m.writeText(&b)
	return b.String()
}

func (m *Message) writeText(b *strings.Builder) {
	first := true
	m.Range(func(f *schema.Field, v Value) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false

		b.WriteString(f.Name)
		if f.Kind == schema.KindMessage {
			b.WriteString(" {")
			if inner := v.msg.String(); inner != "" {
				b.WriteByte(' ')
				b.WriteString(inner)
			}
			b.WriteString(" }")
			return true
		}
		b.WriteString(": ")
		b.WriteString(FormatValue(f, v))
		return true
	})
}

// FormatValue renders v the way the text format prints field f: strings
// quoted, enums by name when the number is declared.
func FormatValue(f *schema.Field, v Value) string {
	switch f.Kind {
	case schema.KindString:
		return strconv.Quote(v.str)
	case schema.KindEnum:
		if f.Enum != nil {
			if ev, ok := f.Enum.ByNumber(v.Enum()); ok {
				return ev.Name
			}
		}
		return strconv.FormatInt(int64(v.Enum()), 10)
	default:
		return v.String()
	}
}
