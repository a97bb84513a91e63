// Package sanitize removes server-internal metadata from Somtoday responses.
package sanitize

import "takeout/internal/jsonvalue"

// MetadataKeys are the object keys Somtoday uses for hypermedia links,
// per-record permissions and type discriminators.
var MetadataKeys = []string{"links", "permissions", "$type"}

// Strip returns v without MetadataKeys at any nesting depth.
func Strip(v jsonvalue.Value) jsonvalue.Value {
	return StripKeys(v, MetadataKeys...)
}

// StripKeys returns v with every object member named in keys removed, at
// every depth. Arrays are mapped element-wise and scalars pass through. The
// input is never modified and surviving members keep their order.
func StripKeys(v jsonvalue.Value, keys ...string) jsonvalue.Value {
	drop := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		drop[key] = struct{}{}
	}
	return jsonvalue.Visit[jsonvalue.Value](v, stripper{drop: drop})
}

type stripper struct {
	drop map[string]struct{}
}

func (s stripper) VisitObject(members []jsonvalue.Member) jsonvalue.Value {
	kept := make([]jsonvalue.Member, 0, len(members))
	for _, m := range members {
		if _, ok := s.drop[m.Key]; ok {
			continue
		}
		kept = append(kept, jsonvalue.Member{Key: m.Key, Value: jsonvalue.Visit[jsonvalue.Value](m.Value, s)})
	}
	return jsonvalue.Object(kept...)
}

func (s stripper) VisitArray(items []jsonvalue.Value) jsonvalue.Value {
	out := make([]jsonvalue.Value, len(items))
	for i, item := range items {
		out[i] = jsonvalue.Visit[jsonvalue.Value](item, s)
	}
	return jsonvalue.Array(out...)
}

func (s stripper) VisitScalar(v jsonvalue.Value) jsonvalue.Value {
	return v
}
