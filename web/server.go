package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"research-graph/config"
	"research-graph/web/handlers"
	"research-graph/web/middleware"
	"research-graph/web/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	router  *gin.Engine
	service services.PaperService
	limiter *middleware.ClientRateLimiter
	logger  *zap.Logger
	config  *config.Config
}

func NewServer(service services.PaperService, logger *zap.Logger, cfg *config.Config) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)
	if logger == nil {
		logger = zap.NewNop()
	}

	limiter, err := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerMinute: cfg.RateLimitRequestsPerMin,
		BurstSize:         cfg.RateLimitBurstSize,
	}, logger)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	// A nil list trusts no proxy, so X-Forwarded-For cannot pick a rate-limit bucket.
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(func(c *gin.Context) {
		// Add logger to context
		c.Set("logger", logger)
		c.Next()
	})
	router.Use(middleware.CORS(cfg.CORSOrigins))

	server := &Server{
		router:  router,
		service: service,
		limiter: limiter,
		logger:  logger,
		config:  cfg,
	}

	server.setupRoutes()
	return server, nil
}

func (s *Server) setupRoutes() {
	paperHandler := handlers.NewPaperHandler(s.service, s.logger)

	s.router.GET("/", paperHandler.Root)
	s.router.GET("/health", paperHandler.Health)

	api := s.router.Group("/api")
	api.Use(middleware.RateLimitMiddleware(s.limiter))
	api.POST("/search", paperHandler.Search)
	api.POST("/search_paper", paperHandler.SearchPaper)
	api.POST("/chat", paperHandler.Chat)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves on addr until ctx is cancelled, then drains in-flight
// requests. A listen failure is returned immediately.
func (s *Server) Start(ctx context.Context, addr string) error {
	s.logger.Info("Starting web server",
		zap.String("address", addr),
		zap.String("mode", s.service.Mode()))

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			s.logger.Error("Web server failed to start", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
