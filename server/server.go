// Package server is the HTTP adapter over the mbti core. Every request
// derives on its own mbti.Profile; the server holds only config, the rate
// limiter and metrics.
package server

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/teranos/mbti/am"
	"github.com/teranos/mbti/errors"
)

// Server serves type derivations over HTTP
type Server struct {
	logger  *zap.SugaredLogger
	metrics *serverMetrics
	mux     *http.ServeMux
	handler http.Handler

	mu              sync.RWMutex
	allowedOrigins  []string
	limiter         *rate.Limiter // nil = unlimited
	addr            string
	shutdownTimeout time.Duration
}

// New creates a server from cfg. cfg is expected to be validated.
func New(cfg *am.Config, log *zap.SugaredLogger) *Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &Server{
		logger:  log,
		metrics: newServerMetrics(),
		mux:     http.NewServeMux(),
	}
	s.ApplyConfig(cfg)
	s.setupRoutes()
	s.handler = s.withBodyLimit(s.withRequestID(s.withInstrumentation(s.withCORS(s.withRateLimit(s.mux)))))
	return s
}

// Handler returns the fully wrapped handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ApplyConfig swaps in origins, rate limits and timeouts from cfg. It is
// safe to call while serving (config hot reload). The listen address only
// takes effect on the next ListenAndServe.
func (s *Server) ApplyConfig(cfg *am.Config) {
	var limiter *rate.Limiter
	if cfg.Server.RateLimitPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Server.RateLimitPerSecond), cfg.Server.RateLimitBurst)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.allowedOrigins = append([]string(nil), cfg.Server.AllowedOrigins...)
	s.limiter = limiter
	s.addr = cfg.Server.Addr()
	s.shutdownTimeout = cfg.Server.ShutdownTimeout()
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
// ready, if non-nil, receives the bound address once listening.
func (s *Server) ListenAndServe(ctx context.Context, ready chan<- string) error {
	s.mu.RLock()
	addr, timeout := s.addr, s.shutdownTimeout
	s.mu.RUnlock()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.WithHint(errors.Wrapf(err, "failed to listen on %s", addr),
			"set server.port in am.toml or MBTI_SERVER_PORT")
	}
	return s.Serve(ctx, ln, timeout, ready)
}

// Serve runs on an existing listener. See ListenAndServe.
func (s *Server) Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration, ready chan<- string) error {
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.Serve(ln)
	}()

	s.logger.Infow("HTTP server listening", "addr", ln.Addr().String())
	if ready != nil {
		ready <- ln.Addr().String()
	}

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "http server failed")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "graceful shutdown failed")
	}
	<-serveErr
	s.logger.Infow("HTTP server stopped")
	return nil
}
