// Package config provides YAML-based configuration loading for the seeker
// simulation.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SeekerConfig contains all configuration for a simulation world.
type SeekerConfig struct {
	Arena  ArenaConfig `yaml:"arena"`
	Seeker AgentConfig `yaml:"seeker"`
	Item   ItemConfig  `yaml:"item"`
	Tick   TickConfig  `yaml:"tick"`
	Spawn  SpawnConfig `yaml:"spawn"`
}

// ArenaConfig defines the logical size of the arena in pixels.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AgentConfig defines the seeker's fixed size and speed.
type AgentConfig struct {
	Size  int `yaml:"size"`  // Diameter in pixels
	Speed int `yaml:"speed"` // Pixels per tick
}

// ItemConfig defines the fixed diameter of spawned items.
type ItemConfig struct {
	Size int `yaml:"size"`
}

// TickConfig defines the simulation period.
type TickConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// SpawnConfig defines how many items exist before the first tick.
type SpawnConfig struct {
	InitialItems int `yaml:"initial_items"`
}

// Interval returns the tick period as a duration.
func (c SeekerConfig) Interval() time.Duration {
	return time.Duration(c.Tick.IntervalMS) * time.Millisecond
}

// TickRate returns the number of ticks per second implied by the interval.
func (c SeekerConfig) TickRate() int {
	if c.Tick.IntervalMS <= 0 {
		return 0
	}
	return 1000 / c.Tick.IntervalMS
}

// WithTickRate returns a copy of the config whose interval matches the
// given ticks per second. Non-positive rates leave the config unchanged.
func (c SeekerConfig) WithTickRate(rate int) SeekerConfig {
	if rate > 0 {
		c.Tick.IntervalMS = max(1, 1000/rate)
	}
	return c
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks the invariants the simulation relies on.
func (c SeekerConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must be positive, got %dx%d", ErrInvalidConfig, c.Arena.Width, c.Arena.Height)
	case c.Seeker.Size <= 0:
		return fmt.Errorf("%w: seeker.size must be positive, got %d", ErrInvalidConfig, c.Seeker.Size)
	case c.Seeker.Speed <= 0:
		return fmt.Errorf("%w: seeker.speed must be positive, got %d", ErrInvalidConfig, c.Seeker.Speed)
	case c.Item.Size <= 0:
		return fmt.Errorf("%w: item.size must be positive, got %d", ErrInvalidConfig, c.Item.Size)
	case c.Item.Size > c.Arena.Width || c.Item.Size > c.Arena.Height:
		return fmt.Errorf("%w: item.size %d does not fit a %dx%d arena", ErrInvalidConfig, c.Item.Size, c.Arena.Width, c.Arena.Height)
	case c.Tick.IntervalMS <= 0:
		return fmt.Errorf("%w: tick.interval_ms must be positive, got %d", ErrInvalidConfig, c.Tick.IntervalMS)
	case c.Spawn.InitialItems < 0:
		return fmt.Errorf("%w: spawn.initial_items must not be negative, got %d", ErrInvalidConfig, c.Spawn.InitialItems)
	}
	return nil
}
