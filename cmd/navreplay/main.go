// Command navreplay replays a scenario of game events through a navigator
// and prints the resulting state after every event as a JSON line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/peterbourgon/ff"

	"github.com/theoremus-urban-solutions/ridenav"
	"github.com/theoremus-urban-solutions/ridenav/config"
	"github.com/theoremus-urban-solutions/ridenav/internal"
	"github.com/theoremus-urban-solutions/ridenav/segments"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "navreplay: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("navreplay", flag.ContinueOnError)
	configPath := fs.String("config", "", "config file (default: search config.yml)")
	scenarioPath := fs.String("scenario", "", "scenario YAML file")
	logLevel := fs.String("log-level", "", "debug|info|warn|error (overrides config)")
	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("NAVREPLAY")); err != nil {
		return err
	}
	if *scenarioPath == "" {
		return errors.New("-scenario is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		switch *logLevel {
		case "debug", "info", "warn", "error":
			cfg.Logging.Level = *logLevel
		default:
			return fmt.Errorf("unknown log level %q", *logLevel)
		}
	}
	logger := internal.InitLogging(cfg.Logging)

	sc, err := loadScenario(*scenarioPath)
	if err != nil {
		return err
	}
	graph, err := segments.NewGraph(sc.Segments...)
	if err != nil {
		return fmt.Errorf("scenario road network: %w", err)
	}
	events, err := sc.events()
	if err != nil {
		return err
	}

	out := newPrinter(stdout)
	nav, err := ridenav.NewNavigator(graph, sc.Route,
		ridenav.WithLogger(logger),
		ridenav.WithStopOnInvalidTransition(cfg.Session.StopOnInvalidTransition),
		ridenav.WithObserver(out.observe),
	)
	if err != nil {
		return err
	}
	logger.Info("replaying scenario",
		slog.String("scenario", *scenarioPath),
		slog.Int("segments", graph.Len()),
		slog.String("route", sc.Route.Name),
		slog.Int("events", len(events)))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	ch := make(chan ridenav.Event, cfg.Session.EventBuffer)
	go func() {
		defer close(ch)
		for _, ev := range events {
			select {
			case ch <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	if err := nav.Run(ctx, ch); err != nil {
		return err
	}
	if out.err != nil {
		return fmt.Errorf("writing output: %w", out.err)
	}

	final := nav.Route()
	logger.Info("replay finished",
		slog.String("state", nav.State().Kind().String()),
		slog.Bool("routeCompleted", final.HasCompleted),
		slog.Int("routeIndex", final.SegmentSequenceIndex))
	return nil
}
