package config

import (
	_ "embed"
)

//go:embed defaults/seeker.yaml
var defaultSeekerYAML []byte

// DefaultSeekerConfig returns the hardcoded default configuration.
// It mirrors defaults/seeker.yaml and is the fallback if the embed fails to parse.
func DefaultSeekerConfig() SeekerConfig {
	return SeekerConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Seeker: AgentConfig{
			Size:  40,
			Speed: 3,
		},
		Item: ItemConfig{
			Size: 20,
		},
		Tick: TickConfig{
			IntervalMS: 30,
		},
		Spawn: SpawnConfig{
			InitialItems: 1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSeekerYAML
}
