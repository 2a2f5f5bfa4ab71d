package bench

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Algorithm names accepted in Config.Algorithms.
const (
	AlgorithmInsertion = "insertion"
	AlgorithmQuick     = "quick"
	AlgorithmMerge     = "merge"
)

var (
	// ErrUnknownAlgorithm is returned when the config names an algorithm
	// this harness doesn't implement.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrBadFixture is returned when the fixture settings can't produce an
	// array (negative size or an empty value range).
	ErrBadFixture = errors.New("invalid fixture settings")

	// ErrBadTrials is returned when trials or workers is less than 1.
	ErrBadTrials = errors.New("trials and workers must be at least 1")
)

const (
	defaultSize    = 1000
	defaultTrials  = 5
	defaultWorkers = 4
	defaultSeed    = 1
)

// Config describes a benchmark run. The zero value is not usable; start
// from DefaultConfig or LoadConfig.
type Config struct {
	// Size is the fixture array length.
	Size int `yaml:"size"`
	// Min and Max bound the fixture values to the half-open range [Min, Max).
	Min int `yaml:"min"`
	Max int `yaml:"max"`
	// Seed makes runs reproducible; trial i uses Seed+i.
	Seed uint64 `yaml:"seed"`
	// Trials is how many independent fixtures each algorithm is timed on.
	Trials int `yaml:"trials"`
	// Workers caps how many trials run concurrently. The algorithms
	// themselves are single-threaded; only whole trials run in parallel.
	Workers int `yaml:"workers"`
	// Algorithms lists which sorters to run, in report order.
	Algorithms []string `yaml:"algorithms"`
}

// DefaultConfig returns the configuration used when no config file is
// given: a thousand values in [0, size), five trials, all three
// algorithms. Raise size to make the O(n²)/O(n log n) gap visible.
func DefaultConfig() *Config {
	return &Config{
		Size:       defaultSize,
		Min:        0,
		Max:        defaultSize,
		Seed:       defaultSeed,
		Trials:     defaultTrials,
		Workers:    defaultWorkers,
		Algorithms: []string{AlgorithmInsertion, AlgorithmQuick, AlgorithmMerge},
	}
}

// LoadConfig reads a YAML benchmark configuration from path. Fields
// missing from the file keep their DefaultConfig values, except Max,
// which defaults to the configured Size when omitted (a max of 0 is
// indistinguishable from an omitted one and gets the same treatment).
func LoadConfig(path string) (*Config, error) {
	bts, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	cfg.Max = 0

	if err := yaml.Unmarshal(bts, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Max == 0 {
		cfg.Max = cfg.Size
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the configuration describes a runnable benchmark.
func (c *Config) Validate() error {
	if c.Size < 0 || (c.Size > 0 && c.Max <= c.Min) {
		return fmt.Errorf("%w: size=%d range=[%d,%d)", ErrBadFixture, c.Size, c.Min, c.Max)
	}

	if c.Trials < 1 || c.Workers < 1 {
		return fmt.Errorf("%w: trials=%d workers=%d", ErrBadTrials, c.Trials, c.Workers)
	}

	if len(c.Algorithms) == 0 {
		return fmt.Errorf("%w: none configured", ErrUnknownAlgorithm)
	}

	for _, name := range c.Algorithms {
		switch name {
		case AlgorithmInsertion, AlgorithmQuick, AlgorithmMerge:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
		}
	}

	return nil
}
