// Package schema describes message types at runtime.
//
// A File holds message and enum descriptors. Descriptors can be built in
// code, loaded from YAML or TOML schema documents, or compiled from WIT type
// definitions. File.Validate resolves type references and checks the
// declarations before a descriptor is used by the dynamic package.
//
// A YAML schema document looks like this:
//
//	package: shop
//	enums:
//	  - name: Status
//	    values:
//	      - {name: STATUS_UNSPECIFIED, number: 0}
//	      - {name: ACTIVE, number: 1}
//	messages:
//	  - name: Item
//	    fields:
//	      - {name: id, number: 1, type: uint64}
//	      - {name: note, number: 2, type: string, optional: true}
//	      - {name: status, number: 3, type: Status}
//	      - {name: weight, number: 4, type: "wit:f32", optional: true}
//	    oneofs:
//	      - name: price
//	        fields:
//	          - {name: cents, number: 10, type: int64}
//	          - {name: label, number: 11, type: string}
//
// Field types are kind names, names of messages or enums declared in the
// file, or WIT primitive type names prefixed with "wit:". A WIT type is
// mapped the way Compiler maps record fields, so "wit:s16" is an int32 field.
package schema
