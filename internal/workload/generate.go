package workload

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
)

// GeneratorFunc produces count ops. rng is seeded per run so generated
// workloads are reproducible.
type GeneratorFunc func(count int, rng *rand.Rand) []Op

type Registry struct {
	generators map[string]GeneratorFunc
}

func NewRegistry() *Registry {
	r := &Registry{generators: make(map[string]GeneratorFunc)}

	r.generators["append"] = genAppend
	r.generators["front"] = genFront
	r.generators["bulk"] = genBulk
	r.generators["churn"] = genChurn
	r.generators["dedupe"] = genDedupe

	return r
}

func (r *Registry) Register(name string, fn GeneratorFunc) {
	r.generators[name] = fn
}

// Generate builds a workload named after the generator.
func (r *Registry) Generate(name string, count int, seed int64, initialCapacity int) (*Workload, error) {
	fn, ok := r.generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown generator: %s", name)
	}
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	if initialCapacity < 0 {
		return nil, fmt.Errorf("initial capacity must not be negative, got %d", initialCapacity)
	}
	return &Workload{
		Name:            name,
		Description:     fmt.Sprintf("%d generated %s ops (seed %d)", count, name, seed),
		InitialCapacity: initialCapacity,
		Ops:             fn(count, rand.New(rand.NewSource(seed))),
	}, nil
}

func (r *Registry) ListGenerators() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func value(i int) string { return "v" + strconv.Itoa(i) }

func genAppend(count int, _ *rand.Rand) []Op {
	ops := make([]Op, 0, count)
	for i := 0; i < count; i++ {
		ops = append(ops, Op{Kind: KindAdd, Value: value(i)})
	}
	return ops
}

func genFront(count int, _ *rand.Rand) []Op {
	ops := make([]Op, 0, count)
	for i := 0; i < count; i++ {
		ops = append(ops, Op{Kind: KindInsert, Index: 0, Value: value(i)})
	}
	return ops
}

// genBulk alternates appended and mid-list batches, then trims.
func genBulk(count int, _ *rand.Rand) []Op {
	const batch = 16
	ops := make([]Op, 0, count/batch+2)
	size := 0
	for i := 0; i < count; i += batch {
		n := min(batch, count-i)
		values := make([]string, n)
		for j := range values {
			values[j] = value(i + j)
		}
		if len(ops)%2 == 0 {
			ops = append(ops, Op{Kind: KindAddAll, Values: values})
		} else {
			ops = append(ops, Op{Kind: KindInsertAll, Index: size / 2, Values: values})
		}
		size += n
	}
	ops = append(ops, Op{Kind: KindTrim})
	return ops
}

// genChurn mixes inserts, removals and reads at random valid positions.
func genChurn(count int, rng *rand.Rand) []Op {
	ops := make([]Op, 0, count)
	size := 0
	for i := 0; i < count; i++ {
		switch roll := rng.Intn(10); {
		case size == 0 || roll < 4:
			ops = append(ops, Op{Kind: KindAdd, Value: value(i)})
			size++
		case roll < 6:
			ops = append(ops, Op{Kind: KindInsert, Index: rng.Intn(size + 1), Value: value(i)})
			size++
		case roll < 8:
			ops = append(ops, Op{Kind: KindRemoveAt, Index: rng.Intn(size)})
			size--
		case roll < 9:
			ops = append(ops, Op{Kind: KindSet, Index: rng.Intn(size), Value: value(i)})
		default:
			ops = append(ops, Op{Kind: KindGet, Index: rng.Intn(size)})
		}
	}
	return ops
}

// genDedupe fills the list from a small alphabet and then strips duplicates
// with the bulk removal ops.
func genDedupe(count int, rng *rand.Rand) []Op {
	const alphabet = 8
	ops := make([]Op, 0, count+5)
	for i := 0; i < count; i++ {
		ops = append(ops, Op{Kind: KindAdd, Value: value(rng.Intn(alphabet))})
	}
	ops = append(ops,
		Op{Kind: KindIterate},
		Op{Kind: KindRemoveAll, Values: []string{value(0), value(1)}},
		Op{Kind: KindRetainAll, Values: []string{value(2), value(3), value(4)}},
		Op{Kind: KindContainsAll, Values: []string{value(2)}},
		Op{Kind: KindTrim},
	)
	return ops
}
