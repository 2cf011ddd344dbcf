// Package config provides configuration loading and access for the
// accuracy and distribution reports.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/quickmath/hasher"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all report configuration parameters.
type Config struct {
	Trig    TrigConfig    `yaml:"trig"`
	InvSqrt InvSqrtConfig `yaml:"invsqrt"`
	RNG     RNGConfig     `yaml:"rng"`
	Hash    HashConfig    `yaml:"hash"`
	Fit     FitConfig     `yaml:"fit"`
	Output  OutputConfig  `yaml:"output"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// TrigConfig holds the cosine/sine sweep parameters.
type TrigConfig struct {
	Samples     int     `yaml:"samples"`      // Samples per approximator domain
	FullPeriods float64 `yaml:"full_periods"` // Cos/Sin are swept over ±full_periods·2π
}

// InvSqrtConfig holds the inverse square root sweep parameters.
type InvSqrtConfig struct {
	Min     float64 `yaml:"min"`     // Smallest x sampled (must be > 0)
	Max     float64 `yaml:"max"`     // Largest x sampled
	Samples int     `yaml:"samples"` // Log-spaced sample count
}

// RNGConfig holds the generator uniformity check parameters.
type RNGConfig struct {
	Seed    uint64 `yaml:"seed"`
	Draws   int    `yaml:"draws"`
	Buckets int    `yaml:"buckets"` // Histogram buckets for the chi-square test
}

// HashConfig holds the hash distribution check parameters.
type HashConfig struct {
	Algorithms []string `yaml:"algorithms"` // Family names, see hasher.ParseAlgorithm
	Seed       uint64   `yaml:"seed"`
	Keys       int      `yaml:"keys"`    // Sequential keys hashed per width
	Buckets    int      `yaml:"buckets"` // Buckets for the chi-square test
}

// FitConfig holds the polynomial refit parameters.
type FitConfig struct {
	Terms    int `yaml:"terms"`     // Coefficients in the even polynomial (3, 4 or 5)
	Samples  int `yaml:"samples"`   // Points on [0, π/2] the max error is taken over
	MaxEvals int `yaml:"max_evals"` // Objective evaluations budget
}

// OutputConfig holds output locations.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Empty disables CSV output
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	Algorithms  []hasher.Algorithm // Parsed Hash.Algorithms
	TrigRange32 float32            // Trig.FullPeriods·2π as float32
	InvSqrtStep float64            // Multiplicative step between invsqrt samples
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges that would make a report meaningless.
func (c *Config) Validate() error {
	switch {
	case c.Trig.Samples < 1:
		return fmt.Errorf("trig.samples must be positive, got %d", c.Trig.Samples)
	case c.Trig.FullPeriods <= 0:
		return fmt.Errorf("trig.full_periods must be positive, got %v", c.Trig.FullPeriods)
	case c.InvSqrt.Min <= 0 || c.InvSqrt.Max <= c.InvSqrt.Min:
		return fmt.Errorf("invsqrt range must satisfy 0 < min < max, got [%v, %v]", c.InvSqrt.Min, c.InvSqrt.Max)
	case c.InvSqrt.Samples < 2:
		return fmt.Errorf("invsqrt.samples must be at least 2, got %d", c.InvSqrt.Samples)
	case c.RNG.Draws < 1 || c.RNG.Buckets < 2:
		return fmt.Errorf("rng needs draws >= 1 and buckets >= 2, got %d/%d", c.RNG.Draws, c.RNG.Buckets)
	case c.Hash.Keys < 1 || c.Hash.Buckets < 2:
		return fmt.Errorf("hash needs keys >= 1 and buckets >= 2, got %d/%d", c.Hash.Keys, c.Hash.Buckets)
	case c.Fit.Terms < 3 || c.Fit.Terms > 5:
		return fmt.Errorf("fit.terms must be 3, 4 or 5, got %d", c.Fit.Terms)
	case c.Fit.Samples < c.Fit.Terms:
		return fmt.Errorf("fit.samples must be at least fit.terms, got %d", c.Fit.Samples)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	c.Derived.Algorithms = c.Derived.Algorithms[:0]
	for _, name := range c.Hash.Algorithms {
		alg, err := hasher.ParseAlgorithm(name)
		if err != nil {
			return fmt.Errorf("hash.algorithms: %w", err)
		}
		c.Derived.Algorithms = append(c.Derived.Algorithms, alg)
	}
	if len(c.Derived.Algorithms) == 0 {
		c.Derived.Algorithms = append(c.Derived.Algorithms, hasher.Algorithms[:]...)
	}

	c.Derived.TrigRange32 = float32(c.Trig.FullPeriods * 2 * math.Pi)
	c.Derived.InvSqrtStep = math.Pow(c.InvSqrt.Max/c.InvSqrt.Min, 1/float64(c.InvSqrt.Samples-1))
	return nil
}

// WriteYAML writes the current configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
