package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nerrad567/friendship-lights/internal/action"
	"github.com/nerrad567/friendship-lights/internal/auth"
	"github.com/nerrad567/friendship-lights/internal/infrastructure/config"
	"github.com/nerrad567/friendship-lights/internal/infrastructure/logging"
)

// gracefulShutdownTimeout is the maximum time to wait for in-flight requests
// to complete during shutdown. It exceeds the signal delay so a running
// daughter_signal can finish.
const gracefulShutdownTimeout = config.SignalDelay + 20*time.Second

// Deps holds the dependencies required by the API server.
type Deps struct {
	Config      config.APIConfig
	Logger      *logging.Logger
	Permissions *auth.Table
	Handlers    *action.Handlers
	Observers   []ActionObserver // optional
	Version     string
}

// Server is the HTTP API server for the relay.
//
// It is created with New() and started with Start(). Handler() exposes the
// router for tests and the Lambda adapter.
type Server struct {
	cfg       config.APIConfig
	logger    *logging.Logger
	perms     *auth.Table
	handlers  *action.Handlers
	observers []ActionObserver
	version   string
	router    http.Handler
	server    *http.Server
}

// New creates a new API server with the given dependencies.
//
// Returns:
//   - *Server: Configured server ready to start
//   - error: If required dependencies are missing
func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if deps.Permissions == nil {
		return nil, fmt.Errorf("permission table is required")
	}
	if deps.Handlers == nil {
		return nil, fmt.Errorf("action handlers are required")
	}

	s := &Server{
		cfg:       deps.Config,
		logger:    deps.Logger,
		perms:     deps.Permissions,
		handlers:  deps.Handlers,
		observers: deps.Observers,
		version:   deps.Version,
	}
	s.router = s.buildRouter()

	return s, nil
}

// Handler returns the fully wrapped router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins listening for HTTP connections in a background goroutine.
// The server can be stopped with Close().
func (s *Server) Start(_ context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:           s.router,
		ReadTimeout:       time.Duration(s.cfg.Timeouts.Read) * time.Second,
		ReadHeaderTimeout: time.Duration(s.cfg.Timeouts.Read) * time.Second,
		WriteTimeout:      time.Duration(s.cfg.Timeouts.Write) * time.Second,
		IdleTimeout:       time.Duration(s.cfg.Timeouts.Idle) * time.Second,
	}

	go func() {
		var err error
		if s.cfg.TLS.Enabled {
			s.logger.Info("API server starting with TLS",
				"address", s.server.Addr,
				"cert", s.cfg.TLS.CertFile,
			)
			err = s.server.ListenAndServeTLS(s.cfg.TLS.CertFile, s.cfg.TLS.KeyFile)
		} else {
			s.logger.Info("API server starting", "address", s.server.Addr)
			err = s.server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server error", "error", err)
		}
	}()

	return nil
}

// Close gracefully shuts down the API server, waiting for in-flight
// requests to complete.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
	defer cancel()

	s.logger.Info("API server shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down API server: %w", err)
	}
	return nil
}

// shutdownTimeout is the grace period for in-flight requests: at least
// gracefulShutdownTimeout, and never shorter than the write timeout that
// config validation sized to the longest action.
func (s *Server) shutdownTimeout() time.Duration {
	return max(gracefulShutdownTimeout, time.Duration(s.cfg.Timeouts.Write)*time.Second)
}

// HealthCheck reports whether the server has been started.
func (s *Server) HealthCheck(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("api health check: %w", ctx.Err())
	default:
	}

	if s.server == nil {
		return fmt.Errorf("api server not started")
	}

	return nil
}
