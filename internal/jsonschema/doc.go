// Package jsonschema derives JSON Schema documents from Go types using
// reflection. Tools use it to publish the shape of their input and output.
//
// Structs, primitives, slices, arrays, maps and pointers are supported.
// Field names follow `json` tags, and a `jsonschema` tag adds a description,
// enum values or an explicit required marker.
package jsonschema
