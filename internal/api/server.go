package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/quantego/coinsight/internal/api/handler"
	"github.com/quantego/coinsight/internal/api/response"
	"github.com/quantego/coinsight/internal/market"
	"github.com/quantego/coinsight/internal/metrics"
	"github.com/quantego/coinsight/internal/news"
	"github.com/quantego/coinsight/internal/provider"
	"go.uber.org/zap"
)

// Server represents the HTTP server for coinsight
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	handler    http.Handler
	store      *market.SnapshotStore
}

// Config holds server configuration
type Config struct {
	Host        string
	Port        int
	MetricsPath string // empty disables the metrics endpoint
}

// Deps are the collaborators the route layer serves from.
type Deps struct {
	Store    *market.SnapshotStore
	Cache    *market.Cache
	Provider provider.Provider
	News     *news.Aggregator
	Metrics  *metrics.Registry
}

// NewServer creates a new HTTP server
func NewServer(cfg Config, deps Deps, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		logger: logger,
		store:  deps.Store,
	}

	mux := http.NewServeMux()
	s.setupRoutes(mux, cfg, deps)

	s.handler = metrics.HTTPMiddleware(deps.Metrics)(mux)
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(mux *http.ServeMux, cfg Config, deps Deps) {
	mh := handler.NewMarketHandler(deps.Store)
	dh := handler.NewDetailHandler(deps.Cache, deps.Provider)
	ah := handler.NewAnalysisHandler(deps.Store, deps.Cache, deps.Provider)
	ch := handler.NewCalculatorHandler(deps.Store)
	nh := handler.NewNewsHandler(deps.News)

	mux.HandleFunc("GET /cryptos", mh.List)
	mux.HandleFunc("GET /cryptos/{id}", mh.Get)
	mux.HandleFunc("GET /cryptos/{id}/details", dh.Details)
	mux.HandleFunc("GET /crypto-news", nh.List)
	mux.HandleFunc("GET /average-volume/{id}", ah.AverageVolume)
	mux.HandleFunc("GET /crypto-exchanges/{id}", dh.Exchanges)
	mux.HandleFunc("GET /short-term/{id}", ah.ShortTerm)
	mux.HandleFunc("GET /long-term/{id}", ah.LongTerm)
	mux.HandleFunc("GET /historical-prices/{id}", ah.HistoricalPrices)
	mux.HandleFunc("GET /correlation-analysis/{id}", ah.Correlation)
	mux.HandleFunc("GET /volatility-heatmap/{id}", ah.Volatility)
	mux.HandleFunc("GET /social-sentiment-analysis/{id}", dh.Sentiment)
	mux.HandleFunc("GET /profit-loss-calculator", ch.ProfitLoss)

	mux.HandleFunc("GET /api/health", s.handleHealth)

	if cfg.MetricsPath != "" && deps.Metrics != nil {
		mux.Handle("GET "+cfg.MetricsPath, deps.Metrics.Handler())
	}
}

// Handler returns the root handler, middleware included (for tests).
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":             "ok",
		"snapshot_available": false,
	}
	if _, age, err := s.store.Get(); err == nil {
		status["snapshot_available"] = true
		status["snapshot_age_seconds"] = age.Seconds()
	}
	response.JSON(w, http.StatusOK, status)
}
