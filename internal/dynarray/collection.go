package dynarray

// Collection is the argument type accepted by bulk operations.
type Collection[T comparable] interface {
	Size() int
	Contains(v T) bool
	ToArray() []T
}

// Slice adapts a plain slice to Collection. A nil Slice is an empty
// collection, not an absent one.
type Slice[T comparable] []T

func (s Slice[T]) Size() int { return len(s) }

// O(n)
func (s Slice[T]) Contains(v T) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}

func (s Slice[T]) ToArray() []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// absent reports whether c is a nil interface or wraps a nil *List.
func absent[T comparable](c Collection[T]) bool {
	if c == nil {
		return true
	}
	if l, ok := c.(*List[T]); ok && l == nil {
		return true
	}
	return false
}
