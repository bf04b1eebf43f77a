package dynarray

import (
	"fmt"
	"strings"
)

// DefaultCapacity is the capacity of a list built by New and the minimum
// capacity a full list grows to.
const DefaultCapacity = 10

// List is a growable array. len(items) is the capacity; only items[:size]
// hold live elements.
type List[T comparable] struct {
	items      []T
	size       int
	generation uint64
}

func New[T comparable]() *List[T] {
	return &List[T]{items: make([]T, DefaultCapacity)}
}

// WithCapacity returns an empty list whose capacity is exactly n.
func WithCapacity[T comparable](n int) (*List[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: the specified initial capacity %d is negative", ErrInvalidArgument, n)
	}
	return &List[T]{items: make([]T, n)}, nil
}

// From copies the elements of c in order. Size and capacity both equal c.Size().
func From[T comparable](c Collection[T]) (*List[T], error) {
	if absent(c) {
		return nil, nullArgument("collection")
	}
	src := c.ToArray()
	items := make([]T, len(src))
	copy(items, src)
	return &List[T]{items: items, size: len(items)}, nil
}

// Of builds a list holding a copy of values.
func Of[T comparable](values ...T) *List[T] {
	items := make([]T, len(values))
	copy(items, values)
	return &List[T]{items: items, size: len(items)}
}

// O(1)
func (l *List[T]) Size() int { return l.size }

// O(1)
func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// O(1)
func (l *List[T]) Cap() int { return len(l.items) }

// Generation is bumped by every structural modification.
func (l *List[T]) Generation() uint64 { return l.generation }

// EnsureCapacity reallocates to exactly min when min exceeds the current capacity.
func (l *List[T]) EnsureCapacity(min int) {
	if min > len(l.items) {
		grown := make([]T, min)
		copy(grown, l.items[:l.size])
		l.items = grown
	}
}

// TrimToSize drops slack capacity so that Cap() == Size().
func (l *List[T]) TrimToSize() {
	if l.size < len(l.items) {
		trimmed := make([]T, l.size)
		copy(trimmed, l.items[:l.size])
		l.items = trimmed
	}
}

// Add appends v.
func (l *List[T]) Add(v T) {
	// size is always a valid insertion point
	_ = l.Insert(l.size, v)
}

// Insert places v at index, shifting [index, size) one slot right.
func (l *List[T]) Insert(index int, v T) error {
	if err := l.rangeCheckForAdd(index); err != nil {
		return err
	}

	if l.size >= len(l.items) {
		l.EnsureCapacity(max(l.size*2, DefaultCapacity))
	}

	copy(l.items[index+1:l.size+1], l.items[index:l.size])
	l.items[index] = v

	l.size++
	l.generation++
	return nil
}

// AddAll appends the elements of c in order.
func (l *List[T]) AddAll(c Collection[T]) (bool, error) {
	return l.InsertAll(l.size, c)
}

// InsertAll inserts the elements of c starting at index. It reports false
// only when c is empty, in which case index is not checked.
func (l *List[T]) InsertAll(index int, c Collection[T]) (bool, error) {
	if absent(c) {
		return false, nullArgument("collection")
	}

	values := c.ToArray()
	if len(values) == 0 {
		return false, nil
	}

	if err := l.rangeCheckForAdd(index); err != nil {
		return false, err
	}

	n := len(values)
	l.EnsureCapacity(l.size + n)

	copy(l.items[index+n:l.size+n], l.items[index:l.size])
	copy(l.items[index:index+n], values)

	l.size += n
	l.generation++
	return true, nil
}

// RemoveAt removes and returns the element at index.
func (l *List[T]) RemoveAt(index int) (T, error) {
	if err := l.rangeCheck(index); err != nil {
		var zero T
		return zero, err
	}
	return l.removeAt(index), nil
}

// Remove deletes the first element equal to v and reports whether one was found.
func (l *List[T]) Remove(v T) bool {
	index := l.IndexOf(v)
	if index == -1 {
		return false
	}
	l.removeAt(index)
	return true
}

func (l *List[T]) removeAt(index int) T {
	removed := l.items[index]

	copy(l.items[index:l.size-1], l.items[index+1:l.size])

	var zero T
	l.items[l.size-1] = zero
	l.size--

	l.generation++
	return removed
}

// RemoveAll deletes every element contained in c.
func (l *List[T]) RemoveAll(c Collection[T]) (bool, error) {
	return l.batchRemove(c, false)
}

// RetainAll deletes every element not contained in c.
func (l *List[T]) RetainAll(c Collection[T]) (bool, error) {
	return l.batchRemove(c, true)
}

// batchRemove compacts survivors to the front in one pass. An empty c is
// a no-op for both RemoveAll and RetainAll.
func (l *List[T]) batchRemove(c Collection[T], retain bool) (bool, error) {
	if absent(c) {
		return false, nullArgument("collection")
	}
	if c.Size() == 0 {
		return false, nil
	}

	w := 0
	for r := 0; r < l.size; r++ {
		if c.Contains(l.items[r]) == retain {
			l.items[w] = l.items[r]
			w++
		}
	}

	if w == l.size {
		return false, nil
	}

	clear(l.items[w:l.size])
	l.size = w
	l.generation++
	return true, nil
}

// Clear removes every element. Capacity is kept.
func (l *List[T]) Clear() {
	clear(l.items[:l.size])
	l.size = 0
	l.generation++
}

func (l *List[T]) Get(index int) (T, error) {
	if err := l.rangeCheck(index); err != nil {
		var zero T
		return zero, err
	}
	return l.items[index], nil
}

// Set replaces the element at index and returns the previous one. It is
// not a structural modification.
func (l *List[T]) Set(index int, v T) (T, error) {
	if err := l.rangeCheck(index); err != nil {
		var zero T
		return zero, err
	}
	prev := l.items[index]
	l.items[index] = v
	return prev, nil
}

// O(n)
func (l *List[T]) IndexOf(v T) int {
	for i := 0; i < l.size; i++ {
		if l.items[i] == v {
			return i
		}
	}
	return -1
}

// O(n)
func (l *List[T]) LastIndexOf(v T) int {
	for i := l.size - 1; i >= 0; i-- {
		if l.items[i] == v {
			return i
		}
	}
	return -1
}

// O(n)
func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) != -1
}

// ContainsAll reports whether every element of c is present.
func (l *List[T]) ContainsAll(c Collection[T]) (bool, error) {
	if absent(c) {
		return false, nullArgument("collection")
	}
	for _, v := range c.ToArray() {
		if !l.Contains(v) {
			return false, nil
		}
	}
	return true, nil
}

// Equal compares live elements pairwise. Capacity is ignored.
func (l *List[T]) Equal(other *List[T]) bool {
	if l == other {
		return true
	}
	if l == nil || other == nil || l.size != other.size {
		return false
	}
	for i := 0; i < l.size; i++ {
		if l.items[i] != other.items[i] {
			return false
		}
	}
	return true
}

// ToArray returns a copy of the live elements.
func (l *List[T]) ToArray() []T {
	out := make([]T, l.size)
	copy(out, l.items[:l.size])
	return out
}

// ToArrayInto copies the live elements into dst when it is long enough and
// zeroes dst[Size()] if dst is longer. Otherwise a new slice is returned.
func (l *List[T]) ToArrayInto(dst []T) ([]T, error) {
	if dst == nil {
		return nil, nullArgument("slice")
	}

	if len(dst) < l.size {
		return l.ToArray(), nil
	}

	copy(dst, l.items[:l.size])
	if len(dst) > l.size {
		var zero T
		dst[l.size] = zero
	}
	return dst, nil
}

func (l *List[T]) String() string {
	if l.IsEmpty() {
		return "{ }"
	}

	var sb strings.Builder
	sb.WriteByte('{')
	for i := 0; i < l.size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, l.items[i])
	}
	sb.WriteByte('}')
	return sb.String()
}

func (l *List[T]) rangeCheck(index int) error {
	if index < 0 || index >= l.size {
		return &IndexError{Index: index, Low: 0, High: l.size - 1}
	}
	return nil
}

func (l *List[T]) rangeCheckForAdd(index int) error {
	if index < 0 || index > l.size {
		return &IndexError{Index: index, Low: 0, High: l.size}
	}
	return nil
}
