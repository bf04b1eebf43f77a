package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir   = ".dynarray"
	DefaultLogLevel  = "info"
	DefaultGenerator = "append"
	DefaultCount     = 1000
	DefaultCapacity  = 10
)

type Config struct {
	DataDir  string         `yaml:"data_dir"`
	LogLevel string         `yaml:"log_level"`
	Workload WorkloadConfig `yaml:"workload"`
}

// WorkloadConfig selects a generated workload. File holds an explicit
// workload script and takes precedence over Generator when set.
type WorkloadConfig struct {
	Generator       string `yaml:"generator"`
	File            string `yaml:"file"`
	Count           int    `yaml:"count"`
	Seed            int64  `yaml:"seed"`
	InitialCapacity int    `yaml:"initial_capacity"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:  DefaultDataDir,
		LogLevel: DefaultLogLevel,
		Workload: WorkloadConfig{
			Generator:       DefaultGenerator,
			Count:           DefaultCount,
			InitialCapacity: DefaultCapacity,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", c.LogLevel)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if c.Workload.Count <= 0 {
		return fmt.Errorf("workload count must be positive, got %d", c.Workload.Count)
	}
	if c.Workload.InitialCapacity < 0 {
		return fmt.Errorf("initial capacity must not be negative, got %d", c.Workload.InitialCapacity)
	}
	return nil
}
