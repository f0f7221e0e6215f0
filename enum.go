package protocell

import (
	"sort"
	"strconv"
)

// Enum is the constraint satisfied by enum types. Enums are open: a value of
// an enum type may hold any int32, named or not.
type Enum interface {
	~int32
}

// EnumValue pairs an enumerator name with its number.
type EnumValue[E Enum] struct {
	Name   string
	Number E
}

// EnumType describes the named enumerators of one enum. The first
// enumerator is the default and must be numbered zero.
type EnumType[E Enum] struct {
	names  map[E]string
	values map[string]E
	name   string
	order  []EnumValue[E]
}

// NewEnumType builds the enumerator table for the enum called name.
// When several names share a number, the first one is used for display.
func NewEnumType[E Enum](name string, values ...EnumValue[E]) *EnumType[E] {
	t := &EnumType[E]{
		name:   name,
		names:  make(map[E]string, len(values)),
		values: make(map[string]E, len(values)),
		order:  values,
	}
	for _, v := range values {
		if _, dup := t.names[v.Number]; !dup {
			t.names[v.Number] = v.Name
		}
		t.values[v.Name] = v.Number
	}
	return t
}

// FullName returns the enum name.
func (t *EnumType[E]) FullName() string {
	return t.name
}

// Name returns the enumerator name for e.
func (t *EnumType[E]) Name(e E) (string, bool) {
	n, ok := t.names[e]
	return n, ok
}

// Value returns the number of the enumerator called name.
func (t *EnumType[E]) Value(name string) (E, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Known reports whether e names a declared enumerator.
func (t *EnumType[E]) Known(e E) bool {
	_, ok := t.names[e]
	return ok
}

// Values returns the declared enumerators sorted by number.
func (t *EnumType[E]) Values() []EnumValue[E] {
	out := make([]EnumValue[E], len(t.order))
	copy(out, t.order)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// String renders e as its enumerator name, or UNRECOGNIZED(n) when e has no
// declared name.
func (t *EnumType[E]) String(e E) string {
	if n, ok := t.names[e]; ok {
		return n
	}
	return "UNRECOGNIZED(" + strconv.FormatInt(int64(e), 10) + ")"
}

// Classify projects e onto the closed set of declared enumerators.
func (t *EnumType[E]) Classify(e E) Closed[E] {
	return Closed[E]{raw: e, known: t.Known(e)}
}

// Closed is an enum value seen through the closed set of declared
// enumerators: either one of them, or an unrecognized raw number.
type Closed[E Enum] struct {
	raw   E
	known bool
}

// Known returns the enumerator when the raw value is declared.
func (c Closed[E]) Known() (E, bool) {
	if !c.known {
		var zero E
		return zero, false
	}
	return c.raw, true
}

// Unrecognized returns the raw number when it has no declared enumerator.
func (c Closed[E]) Unrecognized() (int32, bool) {
	if c.known {
		return 0, false
	}
	return int32(c.raw), true
}

// Raw returns the stored number regardless of whether it is declared.
func (c Closed[E]) Raw() E {
	return c.raw
}
