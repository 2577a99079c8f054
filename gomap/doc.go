// Package gomap maps plist values to Go structs and back.
//
// A struct is a record: each exported field is one dictionary entry,
// described by a `plist` struct tag.
//
//	type Anchor struct {
//	    Name string
//	    Pos  font.Point `plist:"default"`
//	    Rest map[string]*ir.Node `plist:"rest"`
//	}
//
// Tag keys:
//
//	field=<key>     wire key, instead of the lower camel case field name
//	default         absent means the zero value; the zero value is not written
//	default=<expr>  absent means expr; a value equal to expr is not written
//	optional        absent means nil (pointers are always optional)
//	required        absent is an error (the default for other fields)
//	always          write the field even when it equals its default
//	rest            receives every key no other field claims, and is
//	                written back as is; must be map[string]*ir.Node
//	-               ignore the field
//
// A record with no rest field rejects unknown keys with
// [convert.UnrecognisedFieldsError].
//
// Conversions are found, in order, in the [convert.Register] registry,
// through [Unmarshaler] and [Marshaler] methods, and then by kind.
package gomap
