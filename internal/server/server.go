package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/passboard/internal/bootstrap"
	"github.com/yigit/passboard/internal/config"
	"github.com/yigit/passboard/internal/db"
)

// Server holds the state for the HTTP server.
type Server struct {
	config   *config.Config
	router   *gin.Engine
	database *db.PostgresDB
	logger   zerolog.Logger
	http     *http.Server
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer(configPath string) (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	database, err := bootstrap.SetupDatabase(context.Background(), cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, database, lgr)
	if err != nil {
		if database != nil {
			database.Close()
		}
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	return &Server{
		config:   cfg,
		router:   bootstrap.SetupRouter(cfg, deps, lgr),
		database: database,
		logger:   lgr,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Str("source", s.config.Source.Kind).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var shutdownErr error

	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownErr = errors.New("server shutdown completed with errors")
		}
	}

	if s.database != nil {
		s.logger.Info().Msg("Closing database connection pool...")
		s.database.Close()
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	return shutdownErr
}
