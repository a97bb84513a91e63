package jsonvalue

// Visitor receives one callback per variant. Implementations decide whether
// and how to recurse; Visit only dispatches.
type Visitor[T any] interface {
	VisitObject(members []Member) T
	VisitArray(items []Value) T
	VisitScalar(v Value) T
}

// Visit dispatches v to the matching Visitor method. Containers are handed
// over as copies so visitors cannot mutate the original value.
func Visit[T any](v Value, visitor Visitor[T]) T {
	switch v.kind {
	case KindObject:
		return visitor.VisitObject(v.Members())
	case KindArray:
		return visitor.VisitArray(v.Elements())
	default:
		return visitor.VisitScalar(v)
	}
}
