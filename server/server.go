package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rustyeddy/tradelog/journal"
	"github.com/rustyeddy/tradelog/risk"
)

// Store is the part of the journal the API needs.
type Store interface {
	RecordTrade(ctx context.Context, t journal.TradeRecord) error
	GetTrade(ctx context.Context, tradeID string) (journal.TradeRecord, error)
	ListTrades(ctx context.Context, f journal.Filter) ([]journal.TradeRecord, error)
	DeleteTrade(ctx context.Context, tradeID string) error
}

// Config describes the server dependencies.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Store           Store
	Policy          risk.Policy
	Log             *zap.Logger
}

// Server exposes the instrument catalog, the calculator and the journal
// over HTTP.
type Server struct {
	addr            string
	shutdownTimeout time.Duration
	store           Store
	policy          risk.Policy
	log             *zap.Logger
	router          *gin.Engine
}

func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, errors.New("server: store is required")
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(cfg.Log))

	s := &Server{
		addr:            cfg.Addr,
		shutdownTimeout: cfg.ShutdownTimeout,
		store:           cfg.Store,
		policy:          cfg.Policy,
		log:             cfg.Log,
		router:          router,
	}
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	api.GET("/instruments", s.handleInstruments)
	api.GET("/instruments/lookup", s.handleInstrumentLookup)
	api.POST("/calculate", s.handleCalculate)
	api.POST("/direction", s.handleDirection)

	trades := api.Group("/trades")
	trades.POST("", s.handleTradeCreate)
	trades.GET("", s.handleTradeList)
	trades.GET("/summary", s.handleTradeSummary)
	trades.GET("/:id", s.handleTradeGet)
	trades.DELETE("/:id", s.handleTradeDelete)
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("http server listening", zap.String("addr", s.addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		s.log.Info("http server shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			log.Error("request", fields...)
			return
		}
		log.Debug("request", fields...)
	}
}
