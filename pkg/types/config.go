package types

import (
	"fmt"
	"time"
)

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "street-eras/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// LookupConfig holds settings for per-street article resolution.
type LookupConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxRetries is the number of retry attempts after a transient
	// lookup failure. Each query string in flight gets its own budget.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// MaxDisambiguation caps how many times an ambiguous title may be
	// re-resolved through its first candidate before the street is skipped.
	MaxDisambiguation int `json:"max_disambiguation" yaml:"max_disambiguation"`

	// BackoffLow and BackoffHigh bound the uniform-random delay slept
	// before each retry. Tests set both to zero.
	BackoffLow  time.Duration `json:"backoff_low" yaml:"backoff_low"`
	BackoffHigh time.Duration `json:"backoff_high" yaml:"backoff_high"`

	// RateLimitRPS is a global request-per-second limit shared by all
	// workers talking to the knowledge source. <= 0 disables limiting.
	RateLimitRPS float64 `json:"rate_limit_rps" yaml:"rate_limit_rps"`
}

// PipelineConfig holds settings for the parallel extraction run.
type PipelineConfig struct {
	// Workers is the fixed size of the worker pool (default 10).
	Workers int `json:"workers" yaml:"workers"`

	// Limit truncates the input street list before submission
	// (default 100). Streets beyond the limit are never looked up.
	Limit int `json:"limit" yaml:"limit"`
}

// StreetsConfig holds settings for the street-name supplier.
type StreetsConfig struct {
	HTTPConfig `yaml:",inline"`
}

// StoreConfig holds settings for the results database.
type StoreConfig struct {
	// Path is the SQLite database file (default "street-eras.db").
	Path string `json:"path" yaml:"path"`
}

// Defaults mirroring the sizing of a typical interactive run.
const (
	DefaultWorkers           = 10
	DefaultLimit             = 100
	DefaultMaxRetries        = 3
	DefaultMaxDisambiguation = 3
	DefaultBackoffLow        = 100 * time.Millisecond
	DefaultBackoffHigh       = 500 * time.Millisecond
)

// WithDefaults fills zero-valued fields with the standard lookup defaults.
// Explicit zeroes for the backoff bounds are preserved only when both are
// zero, which is the no-delay policy used by tests.
func (c LookupConfig) WithDefaults() LookupConfig {
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.MaxDisambiguation < 0 {
		c.MaxDisambiguation = 0
	}
	if c.BackoffLow == 0 && c.BackoffHigh == 0 {
		return c
	}
	if c.BackoffLow < 0 {
		c.BackoffLow = 0
	}
	if c.BackoffHigh < c.BackoffLow {
		c.BackoffHigh = c.BackoffLow
	}
	return c
}

// Validate checks the backoff interval ordering.
func (c LookupConfig) Validate() error {
	if c.BackoffLow < 0 || c.BackoffHigh < 0 {
		return fmt.Errorf("backoff bounds must be non-negative (got %v, %v)", c.BackoffLow, c.BackoffHigh)
	}
	if c.BackoffHigh < c.BackoffLow {
		return fmt.Errorf("backoff low %v exceeds high %v", c.BackoffLow, c.BackoffHigh)
	}
	return nil
}

// WithDefaults fills zero or negative fields with the standard pipeline sizing.
func (c PipelineConfig) WithDefaults() PipelineConfig {
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	if c.Limit <= 0 {
		c.Limit = DefaultLimit
	}
	return c
}
