package workload

import (
	"fmt"
	"strconv"

	"github.com/san-kum/dynarray/internal/dynarray"
)

// MaxCapacity bounds ensure_capacity requests so a script cannot ask for
// an allocation the runtime would refuse.
const MaxCapacity = 1 << 24

// Apply runs op against l and returns a short textual result.
func Apply(l *dynarray.List[string], op Op) (string, error) {
	switch op.Kind {
	case KindAdd:
		l.Add(op.Value)
		return "true", nil
	case KindInsert:
		if err := l.Insert(op.Index, op.Value); err != nil {
			return "", err
		}
		return "ok", nil
	case KindAddAll:
		return boolResult(l.AddAll(dynarray.Slice[string](op.Values)))
	case KindInsertAll:
		return boolResult(l.InsertAll(op.Index, dynarray.Slice[string](op.Values)))
	case KindRemoveAt:
		return l.RemoveAt(op.Index)
	case KindRemove:
		return strconv.FormatBool(l.Remove(op.Value)), nil
	case KindRemoveAll:
		return boolResult(l.RemoveAll(dynarray.Slice[string](op.Values)))
	case KindRetainAll:
		return boolResult(l.RetainAll(dynarray.Slice[string](op.Values)))
	case KindSet:
		return l.Set(op.Index, op.Value)
	case KindGet:
		return l.Get(op.Index)
	case KindClear:
		l.Clear()
		return "ok", nil
	case KindEnsureCapacity:
		if op.Capacity > MaxCapacity {
			return "", fmt.Errorf("%w: capacity %d exceeds %d", dynarray.ErrInvalidArgument, op.Capacity, MaxCapacity)
		}
		l.EnsureCapacity(op.Capacity)
		return fmt.Sprintf("cap=%d", l.Cap()), nil
	case KindTrim:
		l.TrimToSize()
		return fmt.Sprintf("cap=%d", l.Cap()), nil
	case KindIndexOf:
		return strconv.Itoa(l.IndexOf(op.Value)), nil
	case KindLastIndexOf:
		return strconv.Itoa(l.LastIndexOf(op.Value)), nil
	case KindContains:
		return strconv.FormatBool(l.Contains(op.Value)), nil
	case KindContainsAll:
		return boolResult(l.ContainsAll(dynarray.Slice[string](op.Values)))
	case KindIterate:
		return iterate(l)
	}
	return "", fmt.Errorf("%w: unknown op %q", ErrSyntax, op.Kind)
}

func iterate(l *dynarray.List[string]) (string, error) {
	it := l.Iterator()
	visited := 0
	for it.HasNext() {
		if _, err := it.Next(); err != nil {
			return "", err
		}
		visited++
	}
	return fmt.Sprintf("visited %d", visited), nil
}

func boolResult(ok bool, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(ok), nil
}
