package workload

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/dynarray/internal/dynarray"
)

// Workload is a named, ordered op script run against a fresh list.
type Workload struct {
	Name            string `yaml:"name"`
	Description     string `yaml:"description,omitempty"`
	InitialCapacity int    `yaml:"initial_capacity"`
	Ops             []Op   `yaml:"ops"`
}

// DefaultInitialCapacity is used when a workload does not set one.
const DefaultInitialCapacity = dynarray.DefaultCapacity

// Load reads a workload from a YAML file. A missing initial_capacity
// defaults to DefaultInitialCapacity.
func Load(path string) (*Workload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	w, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

func Parse(data []byte) (*Workload, error) {
	w := &Workload{InitialCapacity: DefaultInitialCapacity}
	if err := yaml.Unmarshal(data, w); err != nil {
		return nil, err
	}
	if w.InitialCapacity < 0 {
		return nil, fmt.Errorf("%w: initial_capacity %d", dynarray.ErrInvalidArgument, w.InitialCapacity)
	}
	if w.Name == "" {
		w.Name = "unnamed"
	}
	return w, nil
}

func Save(path string, w *Workload) error {
	data, err := yaml.Marshal(w)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
