package workload

import (
	"context"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

func TestGenerators_RunClean(t *testing.T) {
	registry := NewRegistry()

	for _, name := range registry.ListGenerators() {
		t.Run(name, func(t *testing.T) {
			w, err := registry.Generate(name, 500, 11, DefaultInitialCapacity)
			if err != nil {
				t.Fatalf("generate failed: %v", err)
			}
			if len(w.Ops) == 0 {
				t.Fatal("no ops generated")
			}
			result, err := New(zerolog.Nop()).Run(context.Background(), w)
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if len(result.Errors) != 0 {
				t.Errorf("generated workload produced errors: %v", result.Errors[0])
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	registry := NewRegistry()
	a, _ := registry.Generate("churn", 200, 5, 10)
	b, _ := registry.Generate("churn", 200, 5, 10)
	if !reflect.DeepEqual(a.Ops, b.Ops) {
		t.Error("same seed produced different workloads")
	}
}

func TestGenerate_Sizes(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		name      string
		finalSize int
		finalCap  int
	}{
		{"append", 100, 160},
		{"front", 100, 160},
		{"bulk", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := registry.Generate(tt.name, 100, 0, 10)
			result, err := New(zerolog.Nop()).Run(context.Background(), w)
			if err != nil {
				t.Fatal(err)
			}
			last := result.Snapshots[len(result.Snapshots)-1]
			if last.Size != tt.finalSize || last.Cap != tt.finalCap {
				t.Errorf("final size=%d cap=%d, want %d/%d", last.Size, last.Cap, tt.finalSize, tt.finalCap)
			}
		})
	}
}

func TestGenerate_Errors(t *testing.T) {
	registry := NewRegistry()
	if _, err := registry.Generate("nope", 10, 0, 10); err == nil {
		t.Error("expected error for unknown generator")
	}
	if _, err := registry.Generate("append", 0, 0, 10); err == nil {
		t.Error("expected error for zero count")
	}
	if _, err := registry.Generate("append", 5, 0, -1); err == nil {
		t.Error("expected error for negative capacity")
	}
}
