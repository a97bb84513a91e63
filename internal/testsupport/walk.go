package testsupport

import "takeout/internal/jsonvalue"

// Walk calls fn for every value in v depth-first, parents before children.
// The path holds the object keys leading to the value; array positions are
// not recorded.
func Walk(v jsonvalue.Value, fn func(path []string, v jsonvalue.Value)) {
	walk(nil, v, fn)
}

func walk(path []string, v jsonvalue.Value, fn func([]string, jsonvalue.Value)) {
	fn(path, v)
	switch v.Kind() {
	case jsonvalue.KindArray:
		for _, item := range v.Elements() {
			walk(path, item, fn)
		}
	case jsonvalue.KindObject:
		for _, m := range v.Members() {
			next := make([]string, len(path)+1)
			copy(next, path)
			next[len(path)] = m.Key
			walk(next, m.Value, fn)
		}
	}
}
