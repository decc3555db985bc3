package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/ziadkadry99/widgetbot/internal/widgetbot"
)

// Config holds server configuration.
type Config struct {
	Port           int
	AllowAll       bool          // allow all CORS origins; the public routes are meant to be embedded anywhere
	RequestTimeout time.Duration // zero disables the per-request timeout
}

// Server serves the public WidgetBot routes.
type Server struct {
	cfg        Config
	log        zerolog.Logger
	resolver   *widgetbot.Resolver
	router     chi.Router
	httpServer *http.Server
}

// New creates a new server and registers all routes.
func New(cfg Config, logger zerolog.Logger, resolver *widgetbot.Resolver) *Server {
	s := &Server{
		cfg:      cfg,
		log:      logger,
		resolver: resolver,
	}

	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      writeTimeout(cfg.RequestTimeout),
		IdleTimeout:       120 * time.Second,
	}
	return s
}

const (
	defaultWriteTimeout = 30 * time.Second
	// writeTimeoutMargin leaves room for middleware.Timeout to write its
	// 504 before the connection deadline.
	writeTimeoutMargin = 5 * time.Second
)

func writeTimeout(requestTimeout time.Duration) time.Duration {
	if requestTimeout <= 0 {
		return defaultWriteTimeout
	}
	return requestTimeout + writeTimeoutMargin
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(s.log))
	r.Use(accessLog)
	r.Use(middleware.Recoverer)
	if s.cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.cfg.RequestTimeout))
	}

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	widgetbot.RegisterRoutes(r, s.resolver)

	return r
}

// accessLog logs one line per request with the chi request id attached.
func accessLog(next http.Handler) http.Handler {
	return hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", size).
			Dur("duration", duration).
			Msg("request")
	})(next)
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown is called.
func (s *Server) Serve(ln net.Listener) error {
	s.log.Info().Str("addr", ln.Addr().String()).Msg("widgetbot server listening")
	if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
