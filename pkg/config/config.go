// Package config carries the tunable parameters the causal core
// consumes from the configuration layer: category-transition legality
// rules, default iteration counts, and benchmark thresholds.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/evalctl/causeway/pkg/causal"
)

// validate is a singleton validator instance
var validate = validator.New()

// Config is the full configuration of the causal core. The zero value
// is not usable; start from Default.
type Config struct {
	// DefaultIterations is used when a caller requests an estimation
	// without an explicit iteration count
	DefaultIterations int `yaml:"default_iterations" validate:"required,min=1"`
	// RetentionProbability is the default chance each edge survives
	// in a Monte Carlo candidate subgraph
	RetentionProbability float64 `yaml:"retention_probability" validate:"required,gt=0,lte=1"`
	// ConfidenceLevel for Wilson score intervals
	ConfidenceLevel float64 `yaml:"confidence_level" validate:"required,gt=0,lt=1"`
	// RunSalt feeds derived Monte Carlo seeds
	RunSalt string `yaml:"run_salt" validate:"required"`
	// MaxPathLength bounds complete-path search depth
	MaxPathLength int `yaml:"max_path_length" validate:"required,min=5"`
	// MaxPaths bounds the number of complete paths enumerated
	MaxPaths int `yaml:"max_paths" validate:"required,min=1"`
	// Transitions optionally overrides the category transition
	// legality table, keyed by source category name
	Transitions map[string][]string `yaml:"transitions,omitempty"`
	// Benchmarks configures the suite's performance checks
	Benchmarks BenchmarkConfig `yaml:"benchmarks"`
}

// BenchmarkConfig holds the suite's performance thresholds. Breaches
// are recorded as warnings unless Fatal is set.
type BenchmarkConfig struct {
	BuildBudget    time.Duration `yaml:"build_budget"`
	ValidateBudget time.Duration `yaml:"validate_budget"`
	EstimateBudget time.Duration `yaml:"estimate_budget"`
	Iterations     int           `yaml:"iterations" validate:"required,min=1"`
	Fatal          bool          `yaml:"fatal"`
}

// UnmarshalYAML decodes benchmark budgets from duration strings
// ("250ms", "2s"), overlaying only the fields the document provides.
func (b *BenchmarkConfig) UnmarshalYAML(value *yaml.Node) error {
	raw := struct {
		BuildBudget    string `yaml:"build_budget"`
		ValidateBudget string `yaml:"validate_budget"`
		EstimateBudget string `yaml:"estimate_budget"`
		Iterations     *int   `yaml:"iterations"`
		Fatal          *bool  `yaml:"fatal"`
	}{}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	budgets := []struct {
		raw  string
		into *time.Duration
	}{
		{raw.BuildBudget, &b.BuildBudget},
		{raw.ValidateBudget, &b.ValidateBudget},
		{raw.EstimateBudget, &b.EstimateBudget},
	}
	for _, budget := range budgets {
		if budget.raw == "" {
			continue
		}
		d, err := time.ParseDuration(budget.raw)
		if err != nil {
			return fmt.Errorf("benchmark budget: %w", err)
		}
		*budget.into = d
	}
	if raw.Iterations != nil {
		b.Iterations = *raw.Iterations
	}
	if raw.Fatal != nil {
		b.Fatal = *raw.Fatal
	}
	return nil
}

// Default returns the standard configuration
func Default() Config {
	return Config{
		DefaultIterations:    1000,
		RetentionProbability: 0.5,
		ConfidenceLevel:      0.95,
		RunSalt:              "robustness-run",
		MaxPathLength:        64,
		MaxPaths:             256,
		Benchmarks: BenchmarkConfig{
			BuildBudget:    100 * time.Millisecond,
			ValidateBudget: 250 * time.Millisecond,
			EstimateBudget: 2 * time.Second,
			Iterations:     500,
		},
	}
}

// Parse unmarshals a YAML document over the defaults and validates the
// result. The core does no file I/O; callers supply the bytes.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration, collecting all problems rather
// than failing on the first one.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	cv := NewConfigValidator("Config")
	cv.PositiveDuration("Benchmarks.BuildBudget", c.Benchmarks.BuildBudget)
	cv.PositiveDuration("Benchmarks.ValidateBudget", c.Benchmarks.ValidateBudget)
	cv.PositiveDuration("Benchmarks.EstimateBudget", c.Benchmarks.EstimateBudget)
	for from, targets := range c.Transitions {
		if _, err := causal.ParseCategory(from); err != nil {
			cv.Invalid("Transitions", err.Error())
		}
		for _, to := range targets {
			if _, err := causal.ParseCategory(to); err != nil {
				cv.Invalid("Transitions", err.Error())
			}
		}
	}
	return cv.Err()
}

// TransitionTable materializes the configured legality rules. With no
// override configured it returns the default table.
func (c *Config) TransitionTable() (*causal.TransitionTable, error) {
	if len(c.Transitions) == 0 {
		return causal.DefaultTransitions(), nil
	}
	rules := make(map[causal.Category][]causal.Category, len(c.Transitions))
	for from, targets := range c.Transitions {
		src, err := causal.ParseCategory(from)
		if err != nil {
			return nil, fmt.Errorf("transition table: %w", err)
		}
		for _, to := range targets {
			dst, err := causal.ParseCategory(to)
			if err != nil {
				return nil, fmt.Errorf("transition table: %w", err)
			}
			rules[src] = append(rules[src], dst)
		}
	}
	return causal.NewTransitionTable(rules), nil
}
