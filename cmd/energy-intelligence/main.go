package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/findajay/energy-intelligence/internal/api"
	"github.com/findajay/energy-intelligence/internal/cache"
	"github.com/findajay/energy-intelligence/internal/classify"
	"github.com/findajay/energy-intelligence/internal/discovery"
	"github.com/findajay/energy-intelligence/internal/energy"
	"github.com/findajay/energy-intelligence/internal/report"
	"github.com/findajay/energy-intelligence/internal/storage"
)

const version = "0.1.0"

func main() {
	config, err := parseConfig(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	logger := newLogger(config.LogLevel)

	store, err := buildStore(config, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("report store initialization failed")
	}
	sink := storage.NewAsyncSink(store, logger)

	// No live resource-manager collaborator is wired in this build:
	// tier resolution degrades to pattern matching and discovery
	// serves the canned demo topology, flagged as mock data.
	classifier := classify.NewClassifier(nil, cache.NewMemoryCache(), cache.NewMemoryCache(), logger)
	discoverer := discovery.NewDemoDiscoverer()

	var estimator energy.UtilizationEstimator = energy.HeuristicEstimator{}
	if config.UtilizationPercent > 0 {
		estimator = energy.FixedEstimator{Percent: config.UtilizationPercent}
	}

	aggregator := report.NewAggregator(classifier, estimator, discoverer, config.Region, logger)
	server := api.NewServer(aggregator, sink, store, discoverer, true, version, logger)

	httpServer := &http.Server{
		Addr:              config.ListenAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
		<-signalChan

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("shutdown failed")
		}
		sink.Drain()
		close(shutdownDone)
	}()

	logger.Info().
		Str("addr", config.ListenAddr).
		Str("region", config.Region).
		Msg("starting energy intelligence server")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server failed")
	}
	<-shutdownDone
}

func newLogger(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(parsed).With().Timestamp().Logger()
}

// buildStore returns the blob store when a storage account is
// configured, otherwise an in-memory store. Persistence failing to
// initialize is fatal; failing at runtime is logged and dropped.
func buildStore(config *Config, logger zerolog.Logger) (storage.ReportStore, error) {
	if config.Storage.AccountName == "" && config.Storage.Endpoint == "" {
		logger.Warn().Msg("no storage account configured, report history is in-memory only")
		return storage.NewMemoryStore(), nil
	}
	return storage.NewBlobStore(config.Storage)
}
