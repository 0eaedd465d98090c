package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/quantego/coinsight/internal/api"
	"github.com/quantego/coinsight/internal/config"
	"github.com/quantego/coinsight/internal/logger"
	"github.com/quantego/coinsight/internal/market"
	"github.com/quantego/coinsight/internal/metrics"
	"github.com/quantego/coinsight/internal/news"
	"github.com/quantego/coinsight/internal/provider/coingecko"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the coinsight server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Local .env overrides, if present
	_ = godotenv.Load()

	// Initialize logger
	log := logger.Must(debug)
	defer log.Sync()

	// Load config
	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg = config.Defaults()
		log.Warn("no config file specified, using defaults")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	log.Info("starting coinsight server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.Duration("refresh_interval", cfg.Refresh.Interval),
	)

	var reg *metrics.Registry
	metricsPath := ""
	if cfg.Metrics.Enabled {
		reg = metrics.NewRegistry()
		metricsPath = cfg.Metrics.Path
	}

	gecko := coingecko.NewWithBaseURL(cfg.Provider.APIKey, cfg.Provider.BaseURL, cfg.Provider.Timeout)
	store := market.NewSnapshotStore()
	cache := market.NewCache(reg)
	refresher := market.NewRefresher(gecko, store, cfg.Refresh.Interval, log, reg)
	aggregator := news.NewAggregator(cfg.News.Feeds, log)

	server := api.NewServer(api.Config{
		Host:        cfg.Server.Host,
		Port:        cfg.Server.Port,
		MetricsPath: metricsPath,
	}, api.Deps{
		Store:    store,
		Cache:    cache,
		Provider: gecko,
		News:     aggregator,
		Metrics:  reg,
	}, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Background refresh loop
	refreshDone := make(chan struct{})
	go func() {
		defer close(refreshDone)
		refresher.Run(ctx)
	}()

	// HTTP server
	go func() {
		if err := server.Start(); err != nil {
			log.Error("server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	log.Info("shutting down coinsight server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	// Refresher exits at the next select after cancellation.
	select {
	case <-refreshDone:
	case <-shutdownCtx.Done():
		fmt.Fprintln(os.Stderr, "refresher did not stop in time")
	}
	return nil
}
