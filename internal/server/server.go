package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/agbru/u128calc/internal/logging"
)

const (
	// ReadHeaderTimeout bounds how long a client may take to send
	// request headers.
	ReadHeaderTimeout = 5 * time.Second

	// ShutdownTimeout bounds the graceful drain on shutdown.
	ShutdownTimeout = 10 * time.Second
)

// Server is the HTTP front end of the calculator.
type Server struct {
	addr     string
	logger   logging.Logger
	metrics  *Metrics
	security SecurityConfig
}

// New creates a server listening on addr with the default security
// configuration.
//
// Parameters:
//   - addr: listen address in host:port form (host may be empty)
//   - logger: structured logger for request and lifecycle events
func New(addr string, logger logging.Logger) *Server {
	return &Server{
		addr:     addr,
		logger:   logger,
		metrics:  NewMetrics(),
		security: DefaultSecurityConfig(),
	}
}

// Run serves HTTP until ctx is canceled, then drains in-flight
// requests. It returns nil on a clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: ReadHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", logging.String("addr", s.addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
			return
		}
		errChan <- nil
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return <-errChan
}

// routes builds the request multiplexer with the full middleware
// chain applied to every handler.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/product", s.wrap(s.handleProduct))
	mux.HandleFunc("/v1/verify", s.wrap(s.handleVerify))
	mux.HandleFunc("/healthz", s.wrap(s.handleHealth))
	mux.HandleFunc("/metrics", s.wrap(s.handleMetrics))
	return mux
}

// wrap applies security, metrics, and request logging around h.
func (s *Server) wrap(h http.HandlerFunc) http.HandlerFunc {
	return SecurityMiddleware(s.security, s.metricsMiddleware(s.logMiddleware(h)))
}

// statusRecorder captures the response status for metrics and logs.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware tracks in-flight requests, totals, and latency.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next(rec, r)
		s.metrics.ObserveRequest(r.URL.Path, strconv.Itoa(rec.status), time.Since(start).Seconds())
	}
}

// logMiddleware emits one structured log line per request.
func (s *Server) logMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next(rec, r)
		s.logger.Debug("request served",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.Int("status", rec.status),
			logging.String("duration", time.Since(start).String()),
		)
	}
}
