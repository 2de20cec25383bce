package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordsim/internal/config"
	"github.com/heartmarshall/wordsim/internal/transport/middleware"
	"github.com/heartmarshall/wordsim/internal/transport/rest"
)

// rateLimitCleanup is how often idle rate-limit buckets are swept.
const rateLimitCleanup = time.Minute

// Server is the HTTP API over a loaded engine.
type Server struct {
	srv             *http.Server
	limiter         *middleware.RateLimiter
	shutdownTimeout time.Duration
	log             *slog.Logger
}

// NewServer wires the handlers and the middleware chain
// Recovery -> RequestID -> Logger -> CORS -> RateLimit -> BodyLimit.
func NewServer(cfg *config.Config, logger *slog.Logger, engine *Engine) *Server {
	var db interface {
		Ping(ctx context.Context) error
	}
	if engine.Pool != nil {
		db = engine.Pool
	}

	router := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(db, engine.Graph, BuildVersion()),
		Similarity: rest.NewSimilarityHandler(engine.Similarity, cfg.Analysis.Measure(), logger),
		Analysis:   rest.NewAnalysisHandler(cfg.Server.MaxSeriesLength, cfg.Analysis.ReportFormat, logger),
	})

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
	)(router)

	return &Server{
		srv: &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           handler,
			ReadTimeout:       cfg.Server.ReadTimeout,
			ReadHeaderTimeout: cfg.Server.ReadTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
			IdleTimeout:       cfg.Server.IdleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		limiter:         limiter,
		shutdownTimeout: cfg.Server.ShutdownTimeout,
		log:             logger.With("service", "http"),
	}
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler { return s.srv.Handler }

// Run listens on the configured address and serves until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		s.limiter.Stop()
		return fmt.Errorf("listen on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		defer s.limiter.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		s.log.Info("shutting down http server")
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	s.log.Info("http server stopped")
	return nil
}
