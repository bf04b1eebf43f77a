package dynarray

import "iter"

// Iterator walks a list front to back. It borrows the list and must not be
// used after the list is structurally modified; doing so fails with
// ErrConcurrentModification on the next call to Next.
type Iterator[T comparable] struct {
	list       *List[T]
	cursor     int
	generation uint64
}

func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		list:       l,
		cursor:     -1,
		generation: l.generation,
	}
}

func (it *Iterator[T]) HasNext() bool {
	return it.cursor+1 < it.list.size
}

// Next returns the following element. The generation check runs before
// the exhaustion check.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if it.generation != it.list.generation {
		return zero, ErrConcurrentModification
	}
	if !it.HasNext() {
		return zero, ErrNoElement
	}
	it.cursor++
	return it.list.items[it.cursor], nil
}

// All yields index/value pairs through an Iterator. Iteration stops
// silently at the first structural modification; use Iterator directly to
// observe ErrConcurrentModification.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := l.Iterator()
		for it.HasNext() {
			v, err := it.Next()
			if err != nil {
				return
			}
			if !yield(it.cursor, v) {
				return
			}
		}
	}
}
