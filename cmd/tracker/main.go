package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"example.com/tracker/internal/config"
	"example.com/tracker/internal/observability"
	"example.com/tracker/internal/tracker"
)

// packages mirrors the readings of a reference tracker session.
var packages = []tracker.Package{
	{Workout: "SWM", Data: []float64{720, 1, 80, 25, 40}},
	{Workout: "RUN", Data: []float64{15000, 1, 75}},
	{Workout: "WLK", Data: []float64{9000, 1, 75, 180}},
}

func main() {
	cfg := config.Load()
	logger := log.New(os.Stderr, cfg.LogPrefix, log.LstdFlags|log.Lshortfile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	processor := tracker.NewProcessor(
		tracker.NewSliceSource(packages...),
		os.Stdout,
		tracker.WithLogger(logger),
		tracker.WithFailFast(cfg.FailFast),
	)

	stats, err := processor.Run(ctx)

	if cfg.MetricsSummary {
		if snapErr := observability.LogSnapshot(logger, prometheus.DefaultGatherer, observability.Namespace); snapErr != nil {
			logger.Printf("metrics snapshot failed: %v", snapErr)
		}
	}

	if err != nil {
		logger.Fatalf("tracker stopped: %v", err)
	}
	if stats.Rejected > 0 {
		logger.Printf("%d of %d packages rejected", stats.Rejected, stats.Processed+stats.Rejected)
		os.Exit(1)
	}
}
