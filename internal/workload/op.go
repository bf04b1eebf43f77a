package workload

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

type Kind string

const (
	KindAdd            Kind = "add"
	KindInsert         Kind = "insert"
	KindAddAll         Kind = "add_all"
	KindInsertAll      Kind = "insert_all"
	KindRemoveAt       Kind = "remove_at"
	KindRemove         Kind = "remove"
	KindRemoveAll      Kind = "remove_all"
	KindRetainAll      Kind = "retain_all"
	KindSet            Kind = "set"
	KindGet            Kind = "get"
	KindClear          Kind = "clear"
	KindEnsureCapacity Kind = "ensure_capacity"
	KindTrim           Kind = "trim"
	KindIndexOf        Kind = "index_of"
	KindLastIndexOf    Kind = "last_index_of"
	KindContains       Kind = "contains"
	KindContainsAll    Kind = "contains_all"
	KindIterate        Kind = "iterate"
)

var ErrSyntax = errors.New("workload: malformed op")

// argument shapes
type shape int

const (
	shapeNone shape = iota
	shapeValue
	shapeIndex
	shapeIndexValue
	shapeValues
	shapeIndexValues
	shapeCapacity
)

var shapes = map[Kind]shape{
	KindAdd:            shapeValue,
	KindInsert:         shapeIndexValue,
	KindAddAll:         shapeValues,
	KindInsertAll:      shapeIndexValues,
	KindRemoveAt:       shapeIndex,
	KindRemove:         shapeValue,
	KindRemoveAll:      shapeValues,
	KindRetainAll:      shapeValues,
	KindSet:            shapeIndexValue,
	KindGet:            shapeIndex,
	KindClear:          shapeNone,
	KindEnsureCapacity: shapeCapacity,
	KindTrim:           shapeNone,
	KindIndexOf:        shapeValue,
	KindLastIndexOf:    shapeValue,
	KindContains:       shapeValue,
	KindContainsAll:    shapeValues,
	KindIterate:        shapeNone,
}

// Op is a single list operation. Its text form is the kind followed by
// whitespace separated arguments, e.g. "insert 2 x" or "add_all a b c".
// Values must be non-empty and free of whitespace to survive that form;
// Validate checks this and MarshalYAML refuses ops that fail it.
type Op struct {
	Kind     Kind
	Index    int
	Value    string
	Values   []string
	Capacity int
}

// Kinds lists every supported op kind.
func Kinds() []Kind {
	return []Kind{
		KindAdd, KindInsert, KindAddAll, KindInsertAll, KindRemoveAt, KindRemove,
		KindRemoveAll, KindRetainAll, KindSet, KindGet, KindClear, KindEnsureCapacity,
		KindTrim, KindIndexOf, KindLastIndexOf, KindContains, KindContainsAll, KindIterate,
	}
}

func ParseOp(line string) (Op, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Op{}, fmt.Errorf("%w: empty line", ErrSyntax)
	}

	op := Op{Kind: Kind(strings.ToLower(fields[0]))}
	sh, ok := shapes[op.Kind]
	if !ok {
		return Op{}, fmt.Errorf("%w: unknown op %q", ErrSyntax, fields[0])
	}
	args := fields[1:]

	expect := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrSyntax, op.Kind, n, len(args))
		}
		return nil
	}
	atoi := func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %q is not an integer", ErrSyntax, op.Kind, s)
		}
		return n, nil
	}

	var err error
	switch sh {
	case shapeNone:
		err = expect(0)
	case shapeValue:
		if err = expect(1); err == nil {
			op.Value = args[0]
		}
	case shapeIndex:
		if err = expect(1); err == nil {
			op.Index, err = atoi(args[0])
		}
	case shapeCapacity:
		if err = expect(1); err == nil {
			op.Capacity, err = atoi(args[0])
		}
	case shapeIndexValue:
		if err = expect(2); err == nil {
			op.Index, err = atoi(args[0])
			op.Value = args[1]
		}
	case shapeValues:
		op.Values = append([]string{}, args...)
	case shapeIndexValues:
		if len(args) == 0 {
			err = fmt.Errorf("%w: %s needs an index", ErrSyntax, op.Kind)
			break
		}
		op.Index, err = atoi(args[0])
		op.Values = append([]string{}, args[1:]...)
	}
	if err != nil {
		return Op{}, err
	}
	return op, nil
}

func (o Op) String() string {
	parts := []string{string(o.Kind)}
	switch shapes[o.Kind] {
	case shapeValue:
		parts = append(parts, o.Value)
	case shapeIndex:
		parts = append(parts, strconv.Itoa(o.Index))
	case shapeCapacity:
		parts = append(parts, strconv.Itoa(o.Capacity))
	case shapeIndexValue:
		parts = append(parts, strconv.Itoa(o.Index), o.Value)
	case shapeValues:
		parts = append(parts, o.Values...)
	case shapeIndexValues:
		parts = append(parts, strconv.Itoa(o.Index))
		parts = append(parts, o.Values...)
	}
	return strings.Join(parts, " ")
}

// Validate reports whether o round-trips through its text form.
func (o Op) Validate() error {
	sh, ok := shapes[o.Kind]
	if !ok {
		return fmt.Errorf("%w: unknown op %q", ErrSyntax, o.Kind)
	}
	switch sh {
	case shapeValue, shapeIndexValue:
		return checkToken(o.Kind, o.Value)
	case shapeValues, shapeIndexValues:
		for _, v := range o.Values {
			if err := checkToken(o.Kind, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkToken(kind Kind, v string) error {
	if v == "" || strings.IndexFunc(v, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %s: value %q must be a single non-empty token", ErrSyntax, kind, v)
	}
	return nil
}

func (o *Op) UnmarshalYAML(value *yaml.Node) error {
	var line string
	if err := value.Decode(&line); err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	op, err := ParseOp(line)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*o = op
	return nil
}

func (o Op) MarshalYAML() (interface{}, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o.String(), nil
}
