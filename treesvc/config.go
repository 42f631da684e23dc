package treesvc

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig signals an invalid service configuration.
var ErrInvalidConfig = errors.New("treesvc: invalid configuration")

const (
	// DefaultEventBuffer is the channel capacity per event subscriber.
	DefaultEventBuffer = 64
	// DefaultFalsePositive is the target false-positive rate of lookup filters.
	DefaultFalsePositive = 0.01
)

// Config configures a Service.
type Config struct {
	// EventBuffer is the channel capacity for each event subscriber.
	// 0 selects DefaultEventBuffer.
	EventBuffer uint `toml:"event_buffer"`
	// FilterCapacity is the number of records per tree the negative-lookup
	// filter is dimensioned for. 0 disables the filter. Trees may grow beyond
	// this; the filter then answers "maybe" more often, but is never wrong.
	FilterCapacity uint `toml:"filter_capacity"`
	// FilterFalsePositive is the target false-positive rate of the filter at
	// FilterCapacity records. 0 selects DefaultFalsePositive.
	FilterFalsePositive float64 `toml:"filter_false_positive"`
}

// DefaultConfig returns a configuration with a lookup filter for a few
// thousand records per tree.
func DefaultConfig() Config {
	return Config{
		EventBuffer:         DefaultEventBuffer,
		FilterCapacity:      4096,
		FilterFalsePositive: DefaultFalsePositive,
	}
}

func (cfg Config) normalized() Config {
	if cfg.EventBuffer == 0 {
		cfg.EventBuffer = DefaultEventBuffer
	}
	if cfg.FilterFalsePositive == 0 {
		cfg.FilterFalsePositive = DefaultFalsePositive
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.FilterFalsePositive <= 0 || cfg.FilterFalsePositive >= 1 {
		return fmt.Errorf("%w: false-positive rate %g not within (0, 1)", ErrInvalidConfig, cfg.FilterFalsePositive)
	}
	return nil
}
