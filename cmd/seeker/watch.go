package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seeker/internal/platform/observer"
	"github.com/vovakirdan/seeker/internal/sim"
)

var (
	flagWatchAddr   string
	flagAllowRemote bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run headless and stream frames to websocket spectators",
	Long: `Run the simulation without a terminal UI and publish every tick.

Endpoints:
  GET  /state  - Current snapshot as JSON
  GET  /ws     - Websocket stream, one JSON frame per tick
  POST /spawn  - Drop a new item at a random position

Only loopback clients are accepted unless --allow-remote is set.

Examples:
  seeker watch
  seeker watch --addr 127.0.0.1:9000 --log-level debug
  curl -X POST localhost:8090/spawn`,
	Args: cobra.NoArgs,
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagWatchAddr, "addr", "127.0.0.1:8090", "HTTP listen address")
	watchCmd.Flags().BoolVar(&flagAllowRemote, "allow-remote", false, "Accept non-loopback clients")
}

func runWatch(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, err := newLogger(os.Stderr, "seeker-watch")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	world := sim.NewWorld(cfg, flagSeed)

	var opts []observer.Option
	if flagAllowRemote {
		opts = append(opts, observer.WithRemoteAccess())
	}
	obs := observer.NewServer(world, logger, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := &sim.Runner{
		World:    world,
		Interval: cfg.Interval(),
		OnFrame:  obs.OnFrame,
		Logger:   logger,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		runner.Run(ctx)
	}()

	err = obs.ListenAndServe(ctx, flagWatchAddr)
	stop()
	wg.Wait()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
