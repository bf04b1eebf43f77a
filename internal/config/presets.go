package config

import "sort"

// Presets groups tuned workload settings by generator name.
var Presets = map[string]map[string]*WorkloadConfig{
	"append": {
		"small": {
			Generator: "append", Count: 100, InitialCapacity: DefaultCapacity,
		},
		"large": {
			Generator: "append", Count: 100000, InitialCapacity: DefaultCapacity,
		},
		"presized": {
			Generator: "append", Count: 100000, InitialCapacity: 100000,
		},
		"empty": {
			Generator: "append", Count: 1000, InitialCapacity: 0,
		},
	},
	"front": {
		"small": {
			Generator: "front", Count: 100, InitialCapacity: DefaultCapacity,
		},
		"large": {
			Generator: "front", Count: 20000, InitialCapacity: DefaultCapacity,
		},
	},
	"bulk": {
		"batches": {
			Generator: "bulk", Count: 1000, InitialCapacity: DefaultCapacity,
		},
		"trimmed": {
			Generator: "bulk", Count: 5000, InitialCapacity: 0,
		},
	},
	"churn": {
		"steady": {
			Generator: "churn", Count: 5000, Seed: 1, InitialCapacity: DefaultCapacity,
		},
		"bursty": {
			Generator: "churn", Count: 20000, Seed: 7, InitialCapacity: 64,
		},
	},
	"dedupe": {
		"few": {
			Generator: "dedupe", Count: 2000, Seed: 3, InitialCapacity: DefaultCapacity,
		},
	},
}

func GetPreset(generator, preset string) *WorkloadConfig {
	generatorPresets, ok := Presets[generator]
	if !ok {
		return nil
	}
	cfg, ok := generatorPresets[preset]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets(generator string) []string {
	generatorPresets, ok := Presets[generator]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(generatorPresets))
	for name := range generatorPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListGenerators returns the generator names that have presets.
func ListGenerators() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
