// Package errors provides structured error types for the protocell module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go/schema type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAccess, errors.KindTypeMismatch).
//		Path("TestAllTypes", "optional_int32").
//		GoType("string").
//		FieldType("int32").
//		Detail("cannot convert string to integer").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseAccess, path, "string", "int32")
//	err := errors.FieldUnknown(errors.PhaseAccess, path, "nope")
//
// Generated accessors never return errors: a field that does not exist has
// no accessor. Errors come from schema validation, schema loading and name
// based access on dynamic messages.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
