// Package unittest holds the message types the runtime is tested against.
//
// The types follow the shape the code generator emits for a schema: one Go
// struct per message built from cell types, one accessor family per field,
// a View type per message and a sealed interface plus discriminant per oneof.
//
// TestAllTypes and TestProto3Optional deliberately declare fields with the
// same names but different presence. TestAllTypes.optional_bytes has implicit
// presence and therefore no Has or Opt accessor; TestProto3Optional.optional_bytes
// is declared optional and has both.
package unittest
