package integrator

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDepth = errors.New("integrator: max depth must not be negative")
	ErrInvalidRange = errors.New("integrator: intersection range must satisfy 0 <= tMin < tMax")
)

// Config controls ray termination and the intersection range
type Config struct {
	MaxDepth int     // Rays deeper than this return black
	TMin     float64 // Lower intersection bound, keeps secondary rays off their own surface
	TMax     float64 // Upper intersection bound
}

// DefaultConfig returns the settings used for production renders
func DefaultConfig() Config {
	return Config{
		MaxDepth: 32,
		TMin:     1e-4,
		TMax:     1000.0,
	}
}

// Validate checks the configuration for values that cannot render
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDepth, c.MaxDepth)
	}
	if !(c.TMin >= 0 && c.TMin < c.TMax) {
		return fmt.Errorf("%w: got [%g, %g]", ErrInvalidRange, c.TMin, c.TMax)
	}
	return nil
}
