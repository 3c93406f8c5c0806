// seeker is a real-time simulation of an agent that chases and eats the
// nearest item in a 2D arena, rendered in the terminal.
//
// Usage:
//
//	seeker play              - Run the simulation in this terminal
//	seeker serve             - Start SSH server, one simulation per session
//	seeker watch             - Run headless and stream frames over websocket
//	seeker config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Override tick rate (default: from config, ~33)
//	--seed <value>       - Set RNG seed for reproducible spawns
//	--config <path>      - Path to a seeker.yaml
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/seeker/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seeker",
	Short: "Seeker - watch an agent eat the nearest item, in your terminal",
	Long: `Seeker runs a small real-time simulation: a seeker moves toward the
nearest uneaten item and eats it on arrival. Press Q or Space to drop
new items into the arena.

Available commands:
  play     - Run the simulation locally
  serve    - Start SSH server for remote sessions
  watch    - Run headless and stream frames to websocket spectators
  config   - Print the effective configuration

Examples:
  seeker play
  seeker play --fps 60 --seed 42
  seeker serve --ssh :2222
  seeker watch --addr 127.0.0.1:8090`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to seeker config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file and applies the --fps override.
func loadConfig() (config.SeekerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	return cfg.WithTickRate(flagFPS), nil
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
