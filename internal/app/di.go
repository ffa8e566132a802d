// Package app provides the dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	categoryHTTP "blogapp/internal/category/http"
	categoryUsecase "blogapp/internal/category/usecase"
	commentHTTP "blogapp/internal/comment/http"
	commentUsecase "blogapp/internal/comment/usecase"
	"blogapp/internal/config"
	"blogapp/internal/database"
	"blogapp/internal/http"
	"blogapp/internal/metrics"
	postHTTP "blogapp/internal/post/http"
	postUsecase "blogapp/internal/post/usecase"
	"blogapp/internal/storage"
	userHTTP "blogapp/internal/user/http"
	userUsecase "blogapp/internal/user/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	metricsProvider *metrics.Provider
	imageStorage    storage.ImageStorage

	// Managers
	txManager database.TxManager

	// Repositories
	userRepo     userUsecase.UserRepository
	categoryRepo categoryUsecase.CategoryRepository
	postRepo     postUsecase.PostRepository
	commentRepo  commentUsecase.CommentRepository

	// Use Cases
	userUseCase     userUsecase.UseCase
	categoryUseCase categoryUsecase.UseCase
	postUseCase     postUsecase.UseCase
	commentUseCase  commentUsecase.UseCase

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	dbInit              sync.Once
	metricsProviderInit sync.Once
	imageStorageInit    sync.Once
	txManagerInit       sync.Once
	userRepoInit        sync.Once
	categoryRepoInit    sync.Once
	postRepoInit        sync.Once
	commentRepoInit     sync.Once
	userUseCaseInit     sync.Once
	categoryUseCaseInit sync.Once
	postUseCaseInit     sync.Once
	commentUseCaseInit  sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	var err error
	c.dbInit.Do(func() {
		c.db, err = c.initDB()
		if err != nil {
			c.initErrors["db"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		c.metricsProvider, err = metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// ImageStorage returns the image blob storage.
func (c *Container) ImageStorage() (storage.ImageStorage, error) {
	var err error
	c.imageStorageInit.Do(func() {
		c.imageStorage, err = storage.NewFileStorage(c.config.ImageStoragePath)
		if err != nil {
			c.initErrors["imageStorage"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["imageStorage"]; exists {
		return nil, storedErr
	}
	return c.imageStorage, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	var err error
	c.txManagerInit.Do(func() {
		c.txManager, err = c.initTxManager()
		if err != nil {
			c.initErrors["txManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// HTTPServer returns the HTTP server instance.
func (c *Container) HTTPServer() (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server instance, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	// Shutdown HTTP servers if initialized
	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}
	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	// Flush metrics before closing the rest
	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	// Close image storage if initialized
	if c.imageStorage != nil {
		if err := c.imageStorage.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("image storage close: %w", err))
		}
	}

	// Close database connection if initialized
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	// Return combined errors if any occurred
	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager using the database connection.
func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

// initHTTPServer creates the HTTP server with all its dependencies.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	userHandler, err := c.userHandler()
	if err != nil {
		return nil, err
	}
	categoryHandler, err := c.categoryHandler()
	if err != nil {
		return nil, err
	}
	postHandler, err := c.postHandler()
	if err != nil {
		return nil, err
	}
	commentHandler, err := c.commentHandler()
	if err != nil {
		return nil, err
	}

	server := http.NewServer(c.config, logger, metricsProvider, http.Handlers{
		User:     userHandler,
		Category: categoryHandler,
		Post:     postHandler,
		Comment:  commentHandler,
	})

	return server, nil
}

// initMetricsServer creates the metrics server with its provider.
func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}

	return http.NewMetricsServer(
		c.config.ServerHost,
		c.config.MetricsPort,
		c.Logger(),
		metricsProvider,
	), nil
}

// userHandler creates the user HTTP handler.
func (c *Container) userHandler() (*userHTTP.UserHandler, error) {
	useCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for http server: %w", err)
	}
	return userHTTP.NewUserHandler(useCase, c.Logger()), nil
}

// categoryHandler creates the category HTTP handler.
func (c *Container) categoryHandler() (*categoryHTTP.CategoryHandler, error) {
	useCase, err := c.CategoryUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get category use case for http server: %w", err)
	}
	return categoryHTTP.NewCategoryHandler(useCase, c.Logger()), nil
}

// postHandler creates the post HTTP handler.
func (c *Container) postHandler() (*postHTTP.PostHandler, error) {
	useCase, err := c.PostUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get post use case for http server: %w", err)
	}
	imageStorage, err := c.ImageStorage()
	if err != nil {
		return nil, fmt.Errorf("failed to get image storage for http server: %w", err)
	}
	return postHTTP.NewPostHandler(useCase, imageStorage, c.Logger()), nil
}

// commentHandler creates the comment HTTP handler.
func (c *Container) commentHandler() (*commentHTTP.CommentHandler, error) {
	useCase, err := c.CommentUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get comment use case for http server: %w", err)
	}
	return commentHTTP.NewCommentHandler(useCase, c.Logger()), nil
}
