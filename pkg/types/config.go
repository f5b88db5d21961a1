package types

import (
	"errors"
	"fmt"
)

const (
	// DefaultGroupSize is the number of digits per decimal group.
	DefaultGroupSize = 3

	// DefaultThreshold is the minimum digit-run length before grouping
	// applies. Runs shorter than this are left unstyled.
	DefaultThreshold = 5

	// HexGroupSize is the fixed width for hex and binary digit groups.
	HexGroupSize = 4
)

// ErrInvalidConfig reports a rejected configuration value.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config carries the two caller-supplied grouping knobs. Configuration
// is validated at acceptance time so a scan can never fail mid-pass.
type Config struct {
	GroupSize int // digits per decimal group
	Threshold int // minimum run length before grouping applies
}

// DefaultConfig returns the standard grouping configuration.
func DefaultConfig() Config {
	return Config{GroupSize: DefaultGroupSize, Threshold: DefaultThreshold}
}

// Validate rejects unusable configuration values.
func (c Config) Validate() error {
	if c.GroupSize < 1 {
		return fmt.Errorf("%w: group size %d, must be at least 1", ErrInvalidConfig, c.GroupSize)
	}
	if c.Threshold < 0 {
		return fmt.Errorf("%w: threshold %d, must not be negative", ErrInvalidConfig, c.Threshold)
	}
	return nil
}
