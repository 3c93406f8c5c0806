package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/seeker/internal/core"
	"github.com/vovakirdan/seeker/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the simulation in this terminal",
	Long: `Run the seeker simulation in the current terminal.

Controls:
  Q/Space   - Drop a new item at a random position
  ?         - Toggle help
  Esc/Ctrl+C - Quit

Logs go to --log-file because the simulation owns the screen.

Examples:
  seeker play
  seeker play --seed 7
  seeker play --config ./my-seeker.yaml --log-file seeker.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, logErr := tea.LogToFile(flagLogFile, "")
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", logErr)
		} else {
			defer f.Close()
			logOut = f
		}
	}
	logger, err := newLogger(logOut, "seeker")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt := core.DefaultRuntimeConfig()
	rt.TickRate = cfg.TickRate()
	rt.Seed = flagSeed

	// Get terminal size
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("config loaded",
		"arena", fmt.Sprintf("%dx%d", cfg.Arena.Width, cfg.Arena.Height),
		"speed", cfg.Seeker.Speed,
		"interval", cfg.Interval(),
	)
	if err := tui.Run(ctx, cfg, rt, logger); err != nil {
		logger.Error("session failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
		os.Exit(1)
	}
}
