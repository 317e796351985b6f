package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"relay-hq/courier/pkg/config"
	"relay-hq/courier/pkg/proxy"
	"relay-hq/courier/pkg/proxy/handlers"
	"relay-hq/courier/pkg/proxy/middleware"
	"relay-hq/courier/pkg/proxy/types"
	"relay-hq/courier/pkg/telemetry/health"
	"relay-hq/courier/pkg/telemetry/logging"
	"relay-hq/courier/pkg/telemetry/metrics"
)

// Dependencies bundles the collaborators the server wires into its
// routes. Auditor, Store, Checker and Metrics may be nil; the
// corresponding endpoints and recording are skipped.
type Dependencies struct {
	Config  *config.Config
	BotAPI  handlers.BotAPI
	Auditor handlers.Auditor
	Store   handlers.DiagnosticsStore
	Checker *health.Checker
	Metrics *metrics.Collector
	Logger  *logging.Logger
}

// Server is the HTTP relay server.
type Server struct {
	config       *config.Config
	deps         Dependencies
	httpServer   *http.Server
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// NewServer creates a new relay server.
func NewServer(deps Dependencies) *Server {
	return &Server{
		config:       deps.Config,
		deps:         deps,
		shutdownChan: make(chan struct{}),
		isRunning:    false,
	}
}

// Start starts the HTTP server and blocks until shutdown.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	handler := s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:           s.config.Server.ListenAddress,
		Handler:        handler,
		ReadTimeout:    s.config.Server.ReadTimeout,
		WriteTimeout:   s.config.Server.WriteTimeout,
		IdleTimeout:    s.config.Server.IdleTimeout,
		MaxHeaderBytes: s.config.Server.MaxHeaderBytes,
	}

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		s.deps.Logger.Info("starting relay server",
			"address", s.config.Server.ListenAddress,
		)

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Set up signal handlers
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Wait for shutdown signal or error
	select {
	case <-ctx.Done():
		s.deps.Logger.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		s.deps.Logger.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	case <-s.shutdownChan:
		s.deps.Logger.Info("shutdown requested")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		s.deps.Logger.Info("initiating graceful shutdown",
			"timeout", s.config.Server.ShutdownTimeout.String(),
		)

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				s.deps.Logger.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		s.deps.Logger.Info("relay server stopped")
	})

	return shutdownErr
}

// setupRoutes configures HTTP routes and the middleware chain.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// A nil *Collector must not become a non-nil interface value.
	var upstream handlers.UpstreamRecorder
	if s.deps.Metrics != nil {
		upstream = s.deps.Metrics
	}

	telegramHandler := handlers.NewTelegramHandler(
		s.deps.BotAPI,
		s.deps.Auditor,
		upstream,
		s.deps.Logger,
	)

	rootHandler := handlers.RootHandler()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		// The bare mux pattern "/" matches every unregistered path
		if r.URL.Path != "/" {
			_ = proxy.WriteJSONResponse(w, http.StatusNotFound, types.NewDescriptor("not found"))
			return
		}
		rootHandler(w, r)
	})

	mux.HandleFunc("/api/hello", handlers.HelloHandler())
	mux.HandleFunc("/test", handlers.DiagnosticsHandler(&s.config.Database, s.deps.Store))

	mux.HandleFunc("/api/telegram/validate", telegramHandler.Validate())
	mux.HandleFunc("/api/telegram/commands", telegramHandler.Commands())
	mux.HandleFunc("/api/telegram/send", telegramHandler.Send())
	mux.HandleFunc("/api/telegram/call", telegramHandler.Call())

	if s.deps.Checker != nil && s.config.Telemetry.Health.Enabled {
		mux.HandleFunc(s.config.Telemetry.Health.Path, s.deps.Checker.ReadinessHandler())
	}

	if s.deps.Metrics != nil && s.config.Telemetry.Metrics.Enabled {
		mux.Handle(s.config.Telemetry.Metrics.Path, s.deps.Metrics.Handler())
	}

	// Apply middleware chain
	var handler http.Handler = mux

	handler = middleware.TimeoutMiddleware(s.config.Server.WriteTimeout)(handler)

	handler = middleware.CORSMiddleware(&s.config.Server.CORS)(handler)

	handler = middleware.RequestIDMiddleware(handler)

	if s.deps.Metrics != nil {
		handler = middleware.MetricsMiddleware(s.deps.Metrics)(handler)
	}

	handler = middleware.LoggingMiddleware(s.deps.Logger)(handler)

	// Recovery middleware (outermost)
	handler = middleware.RecoveryMiddleware(s.deps.Logger)(handler)

	return handler
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Handler returns the configured HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}
