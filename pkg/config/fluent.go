package config

import (
	"errors"
	"fmt"
	"time"
)

// ConfigValidator collects validation errors across fields rather than
// failing on the first one, so a misconfigured deployment surfaces all
// its problems at once.
type ConfigValidator struct {
	name   string // config struct name for error messages
	errors []error
}

// NewConfigValidator creates a validator for the named config struct.
func NewConfigValidator(name string) *ConfigValidator {
	return &ConfigValidator{name: name}
}

// PositiveDuration requires a duration to be greater than zero.
func (cv *ConfigValidator) PositiveDuration(field string, value time.Duration) *ConfigValidator {
	if value <= 0 {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: duration must be positive, got %v", cv.name, field, value))
	}
	return cv
}

// Probability requires a value inside (0, 1].
func (cv *ConfigValidator) Probability(field string, value float64) *ConfigValidator {
	if value <= 0 || value > 1 {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: value %v is not a probability in (0, 1]", cv.name, field, value))
	}
	return cv
}

// Invalid records a free-form field problem.
func (cv *ConfigValidator) Invalid(field, reason string) *ConfigValidator {
	cv.errors = append(cv.errors, fmt.Errorf("%s.%s: %s", cv.name, field, reason))
	return cv
}

// Err returns all collected problems joined, or nil when none.
func (cv *ConfigValidator) Err() error {
	if len(cv.errors) == 0 {
		return nil
	}
	return errors.Join(cv.errors...)
}
