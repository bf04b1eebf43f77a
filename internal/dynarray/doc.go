// Package dynarray provides a generic growable array with positional
// insert/remove, bulk operations and fail-fast iteration.
//
//   - [List]: the array itself, backed by a slice whose length is the capacity
//   - [Iterator]: forward cursor that detects structural modification
//   - [Collection]: argument type for bulk operations, see [Slice]
//
// # Capacity
//
// A full list grows to max(2*size, [DefaultCapacity]) on single inserts and
// to exactly size+n on bulk inserts. Capacity only shrinks via
// [List.TrimToSize].
//
// # Example
//
//	l := dynarray.New[string]()
//	l.Add("a")
//	_ = l.Insert(0, "b")
//	it := l.Iterator()
//	for it.HasNext() {
//		v, _ := it.Next()
//		fmt.Println(v)
//	}
//
// # Thread Safety
//
// List instances are NOT thread-safe. The generation counter only detects
// sequential misuse (mutate, then keep iterating), not data races.
package dynarray
