// Package protocell provides the in-memory runtime for schema-typed messages.
//
// A message is a fixed set of fields declared by a schema. Each field has a
// kind (bool, integer, float, string, bytes, enum or message) and a presence
// discipline that the schema fixes once and for all:
//
//   - Implicit presence: the field holds a value and nothing else. Setting the
//     zero value and never setting the field are indistinguishable.
//   - Explicit presence: the field additionally tracks whether it was set.
//     Setting the zero value is observably different from leaving it unset.
//
// Fields marked optional, every member of a oneof and every message-typed
// field have explicit presence. Field names carry no meaning here: a field
// called optional_bytes may well have implicit presence.
//
// # Architecture Overview
//
//	protocell/           Optional, Message, Clone/Equal, open enum helpers
//	├── cell/            Value cells, owned nested messages, oneof unions
//	├── schema/          Field/oneof/enum/message descriptors, WIT compiler, YAML/TOML loaders
//	├── dynamic/         Schema-driven messages with name based access
//	├── errors/          Structured error types
//	└── cmd/cellctl/     Inspector for schema files and dynamic messages
//
// # Accessors
//
// Message types are emitted in a fixed shape. For a field foo:
//
//	m.Foo()            // current value, zero value when unset
//	m.SetFoo(v)        // store v; explicit fields become set
//	m.ClearFoo()       // back to zero; explicit fields become unset
//	m.HasFoo()         // explicit presence only
//	m.FooOpt()         // explicit presence only, Optional[T]
//
// Message-typed fields add FooMut, which materializes a default nested
// message when the field is unset and returns a pointer to the owned value.
//
// For a oneof bar, m.Bar() returns a value of a sealed interface type with one
// implementation per member, and m.BarCase() returns the discriminant. Setting
// any member discards whatever the previously active member held.
//
// # Views
//
// m.AsView() returns a read-only projection of m. The view refers to the
// message itself rather than to the expression that produced it, so it can be
// stored, returned from functions and read later for as long as the message is
// reachable:
//
//	func firstCase(m *unittest.TestAllTypes) unittest.TestAllTypes_OneofField {
//	    return m.AsView().OneofField()
//	}
//
// Strings and bytes returned from views alias the message storage. They must
// not be modified.
//
// # Thread Safety
//
// A message and the messages it owns form a tree with one owner. Any number of
// goroutines may read views of a message concurrently as long as no goroutine
// mutates it at the same time. Nothing in this module takes locks on message
// data.
package protocell
