package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	categoryhttp "blogapp/internal/category/http"
	commenthttp "blogapp/internal/comment/http"
	"blogapp/internal/config"
	"blogapp/internal/metrics"
	posthttp "blogapp/internal/post/http"
	userhttp "blogapp/internal/user/http"
)

// Handlers bundles the per-domain HTTP handlers mounted on the router.
type Handlers struct {
	User     *userhttp.UserHandler
	Category *categoryhttp.CategoryHandler
	Post     *posthttp.PostHandler
	Comment  *commenthttp.CommentHandler
}

// Server represents the API HTTP server
type Server struct {
	server       *http.Server
	logger       *slog.Logger
	shuttingDown atomic.Bool
}

// NewServer creates a new HTTP server with all API routes mounted.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	metricsProvider *metrics.Provider,
	handlers Handlers,
) *Server {
	s := &Server{logger: logger}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}
	if cfg.MetricsEnabled && metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}
	if cfg.RateLimitEnabled {
		router.Use(RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, logger))
	}

	router.NoRoute(notFoundHandler)

	router.GET("/health", HealthHandler)
	router.GET("/ready", ReadinessHandler(s.shuttingDown.Load))

	api := router.Group("/api")

	// Category routes
	api.POST("/categories", handlers.Category.CreateHandler)
	api.GET("/categories", handlers.Category.ListHandler)
	api.GET("/categories/:categoryId", handlers.Category.GetHandler)
	api.PUT("/categories/:categoryId", handlers.Category.UpdateHandler)
	api.DELETE("/categories/:categoryId", handlers.Category.DeleteHandler)

	// User routes
	api.POST("/users", handlers.User.CreateHandler)
	api.GET("/users", handlers.User.ListHandler)
	api.GET("/users/:userId", handlers.User.GetHandler)
	api.PUT("/users/:userId", handlers.User.UpdateHandler)
	api.DELETE("/users/:userId", handlers.User.DeleteHandler)

	// Post routes
	api.POST("/user/:userId/category/:categoryId/posts", handlers.Post.CreateHandler)
	api.GET("/user/:userId/posts", handlers.Post.ListByUserHandler)
	api.GET("/category/:categoryId/posts", handlers.Post.ListByCategoryHandler)
	api.GET("/posts", handlers.Post.ListHandler)
	api.GET("/posts/search/:search", handlers.Post.SearchHandler)
	api.GET("/posts/:postId", handlers.Post.GetHandler)
	api.PUT("/posts/:postId", handlers.Post.UpdateHandler)
	api.DELETE("/posts/:postId", handlers.Post.DeleteHandler)
	api.POST("/posts/upload/image/:postId", handlers.Post.UploadImageHandler)
	api.GET("/posts/image/:imageName", handlers.Post.ServeImageHandler)

	// Comment routes
	api.POST("/post/:postId/comments", handlers.Comment.CreateHandler)
	api.GET("/post/:postId/comments", handlers.Comment.ListByPostHandler)
	api.DELETE("/comments/:commentId", handlers.Comment.DeleteHandler)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server. Readiness flips to
// unavailable first so load balancers stop routing new traffic.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	s.shuttingDown.Store(true)
	return s.server.Shutdown(ctx)
}
