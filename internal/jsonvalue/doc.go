// Package jsonvalue models arbitrary JSON documents as a tagged variant.
//
// Somtoday responses are heterogeneous and only partially understood, so the
// exporter keeps them as Values instead of Go structs. A Value remembers the
// order of object members and the literal text of numbers, which means a
// decode followed by MarshalIndent reproduces the server's data without
// reordering keys or reformatting grades such as 7.50.
//
// Transforms are written as Visitors over the object/array/scalar variants
// rather than type switches on interface{} values.
package jsonvalue
