// Package cell provides the storage slots that message types are built from.
//
// Every field of a message is backed by one cell, chosen by the field's kind
// and presence discipline:
//
//	Kind                     Implicit presence    Explicit presence
//	──────────────────────────────────────────────────────────────────
//	bool, ints, floats, enum Implicit[T]          Explicit[T]
//	string                   String               ExplicitString
//	bytes                    Bytes                ExplicitBytes
//	message                  -                    Message[M, P]
//	oneof member             -                    Oneof[C] (shared)
//
// Implicit cells have no Has or Opt method. Asking an implicit field whether
// it was set does not compile.
//
// Cells that take strings or bytes always copy their input, and cells that
// hold nested messages always hold their own copy, so a message never aliases
// a caller's buffer or message after a setter returns.
//
// The members of a oneof share a single Oneof cell. The package-level
// functions SetScalar, ScalarOf, SetString, StringOf, SetBytes, BytesOf,
// SetMessage, MessageOf and MutableMessage operate on one member of it.
package cell
