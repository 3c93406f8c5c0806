package core

// Action represents a semantic input event, abstracted from physical keys.
// The simulation accepts exactly one event (spawn); quitting belongs to the shell.
type Action int

const (
	ActionNone  Action = iota
	ActionSpawn        // Q, Space - drop a new item at a random position
	ActionQuit         // Ctrl+C, Esc - leave the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSpawn:
		return "Spawn"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// RuntimeConfig describes the display a shell renders into.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for spawn positions (0 = time based)
}

// DefaultRuntimeConfig returns a RuntimeConfig for an 80x24 terminal at ~33 ticks/s.
// Shells override the size once the real terminal is known.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 33,
	}
}
