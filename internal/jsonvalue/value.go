package jsonvalue

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Member is a single key/value pair of an object. Objects keep their members
// in document order.
type Member struct {
	Key   string
	Value Value
}

// Value is an immutable JSON value. The zero Value is null.
//
// Numbers keep their literal text so integers stay integers and decimals are
// written back exactly as the server sent them.
type Value struct {
	kind    Kind
	boolean bool
	text    string
	items   []Value
	members []Member
}

// Null returns the JSON null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Number wraps a number literal.
func Number(n json.Number) Value { return Value{kind: KindNumber, text: string(n)} }

// Int wraps an integer.
func Int(n int64) Value { return Value{kind: KindNumber, text: strconv.FormatInt(n, 10)} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Array builds an array from the supplied elements.
func Array(items ...Value) Value {
	return Value{kind: KindArray, items: append([]Value(nil), items...)}
}

// Object builds an object from the supplied members. Later duplicates replace
// the value of the first occurrence while keeping its position.
func Object(members ...Member) Value {
	out := make([]Member, 0, len(members))
	index := make(map[string]int, len(members))
	for _, m := range members {
		if i, dup := index[m.Key]; dup {
			out[i].Value = m.Value
			continue
		}
		index[m.Key] = len(out)
		out = append(out, m)
	}
	return Value{kind: KindObject, members: out}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Len returns the element count of an array or the member count of an object.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.members)
	default:
		return 0
	}
}

// Get returns the value stored under key when v is an object.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Index returns the i-th element when v is an array.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.items) {
		return Value{}, false
	}
	return v.items[i], true
}

// Elements returns a copy of the array elements, or nil for non-arrays.
func (v Value) Elements() []Value {
	if v.kind != KindArray {
		return nil
	}
	return append([]Value(nil), v.items...)
}

// Members returns a copy of the object members, or nil for non-objects.
func (v Value) Members() []Member {
	if v.kind != KindObject {
		return nil
	}
	return append([]Member(nil), v.members...)
}

// Text returns the textual form of a string or number scalar, which is what
// identifiers embedded in URLs and paths need.
func (v Value) Text() (string, bool) {
	switch v.kind {
	case KindString, KindNumber:
		return v.text, true
	default:
		return "", false
	}
}

// Equal reports deep structural equality, including object member order.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.boolean == b.boolean
	case KindNumber, KindString:
		return a.text == b.text
	case KindArray:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.members) != len(b.members) {
			return false
		}
		for i := range a.members {
			if a.members[i].Key != b.members[i].Key || !Equal(a.members[i].Value, b.members[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
