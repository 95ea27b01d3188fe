// Package server wires configuration, logging, metrics, and the provider
// into a runnable HTTP service.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/GriffinCanCode/FileOps/backend/internal/api/http"
	"github.com/GriffinCanCode/FileOps/backend/internal/api/middleware"
	"github.com/GriffinCanCode/FileOps/backend/internal/fileops"
	"github.com/GriffinCanCode/FileOps/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/FileOps/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/FileOps/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/FileOps/backend/internal/provider"
)

// Version reported by the root endpoint.
const Version = "0.1.0"

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	fs       *fileops.Manager
	provider *provider.Provider
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
	httpSrv  *http.Server
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing FileOps Server",
		zap.String("port", cfg.Server.Port),
		zap.String("storage_root", cfg.Storage.Root),
	)

	metrics := monitoring.NewMetrics()

	fs, err := fileops.New(cfg.Storage.Root, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Filesystem facade initialized", zap.String("base", fs.Base()))

	prov := provider.New(fs).WithMetrics(metrics)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(cfg.RateLimit))
	}

	handlers := apihttp.NewHandlers(prov, Version)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/tools", handlers.Definition)
	router.POST("/execute", handlers.Execute)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		fs:       fs,
		provider: prov,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Run starts the HTTP server and blocks until it stops
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))

	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")

	if s.httpSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.httpSrv.Shutdown(ctx); err != nil {
			s.logger.Error("Graceful shutdown failed", zap.Error(err))
			return err
		}
	}

	s.logger.Sync()
	return nil
}
