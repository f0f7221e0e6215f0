// Package dynamic implements message records whose layout is given by a
// schema descriptor at runtime instead of by generated code.
//
// Fields are addressed by name. A dynamic Message obeys the same presence,
// oneof and ownership rules as generated messages:
//
//	desc := file.Message("Item")
//	m := dynamic.New(desc)
//	m.Set("id", 7)             // implicit: no presence
//	m.Set("note", "")          // explicit: set, even though empty
//	m.Set("cents", int64(250)) // oneof member becomes active
//	m.Set("label", "sale")     // displaces cents
//	detail, _ := m.Mutable("detail")
//	detail.Set("size", 3)
//
// Values come back as Value, a tagged union over the field kinds. View gives
// read-only access with the same lifetime rules as generated views.
package dynamic
