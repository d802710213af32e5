// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/allisson/mailinglist/internal/config"
	"github.com/allisson/mailinglist/internal/database"
	"github.com/allisson/mailinglist/internal/http"
	"github.com/allisson/mailinglist/internal/metrics"
	subscriberHTTP "github.com/allisson/mailinglist/internal/subscriber/http"
	subscriberRepository "github.com/allisson/mailinglist/internal/subscriber/repository"
	subscriberUsecase "github.com/allisson/mailinglist/internal/subscriber/usecase"
)

// SubscriberStore is a subscriber repository that can also report its health.
type SubscriberStore interface {
	subscriberUsecase.SubscriberRepository
	http.HealthChecker
}

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	mongoClient     *mongo.Client
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Subscriber context
	subscriberRepo       SubscriberStore
	subscriberUseCase    subscriberUsecase.SubscriberUseCase
	subscriberController *subscriberHTTP.Controller
	subscriberHandler    *subscriberHTTP.SubscriberHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                       sync.Mutex
	loggerInit               sync.Once
	dbInit                   sync.Once
	mongoClientInit          sync.Once
	metricsProviderInit      sync.Once
	businessMetricsInit      sync.Once
	subscriberRepoInit       sync.Once
	subscriberUseCaseInit    sync.Once
	subscriberControllerInit sync.Once
	subscriberHandlerInit    sync.Once
	httpServerInit           sync.Once
	metricsServerInit        sync.Once
	initErrors               map[string]error
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

// once runs init a single time under key and replays its error on later calls.
func (c *Container) once(o *sync.Once, key string, init func() error) error {
	o.Do(func() {
		if err := init(); err != nil {
			c.mu.Lock()
			c.initErrors[key] = err
			c.mu.Unlock()
		}
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[key]
}

// DB returns the SQL connection for the postgres and mysql drivers.
func (c *Container) DB() (*sql.DB, error) {
	err := c.once(&c.dbInit, "db", func() error {
		db, err := c.initDB()
		c.db = db
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.db, nil
}

// MongoClient returns the document store client.
func (c *Container) MongoClient() (*mongo.Client, error) {
	err := c.once(&c.mongoClientInit, "mongoClient", func() error {
		client, err := c.initMongoClient()
		c.mongoClient = client
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.mongoClient, nil
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	err := c.once(&c.metricsProviderInit, "metricsProvider", func() error {
		provider, err := c.initMetricsProvider()
		c.metricsProvider = provider
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	err := c.once(&c.businessMetricsInit, "businessMetrics", func() error {
		bm, err := c.initBusinessMetrics()
		c.businessMetrics = bm
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.businessMetrics, nil
}

// SubscriberRepository returns the store selected by DB_DRIVER.
func (c *Container) SubscriberRepository() (SubscriberStore, error) {
	err := c.once(&c.subscriberRepoInit, "subscriberRepo", func() error {
		repo, err := c.initSubscriberRepository()
		c.subscriberRepo = repo
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.subscriberRepo, nil
}

// SubscriberUseCase returns the registration use case.
func (c *Container) SubscriberUseCase() (subscriberUsecase.SubscriberUseCase, error) {
	err := c.once(&c.subscriberUseCaseInit, "subscriberUseCase", func() error {
		uc, err := c.initSubscriberUseCase()
		c.subscriberUseCase = uc
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.subscriberUseCase, nil
}

// SubscriberController returns the framework independent registration controller.
func (c *Container) SubscriberController() (*subscriberHTTP.Controller, error) {
	err := c.once(&c.subscriberControllerInit, "subscriberController", func() error {
		uc, err := c.SubscriberUseCase()
		if err != nil {
			return fmt.Errorf("failed to get subscriber use case for controller: %w", err)
		}
		c.subscriberController = subscriberHTTP.NewController(uc, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.subscriberController, nil
}

// SubscriberHandler returns the gin handler for the registration routes.
func (c *Container) SubscriberHandler() (*subscriberHTTP.SubscriberHandler, error) {
	err := c.once(&c.subscriberHandlerInit, "subscriberHandler", func() error {
		controller, err := c.SubscriberController()
		if err != nil {
			return fmt.Errorf("failed to get subscriber controller for handler: %w", err)
		}
		c.subscriberHandler = subscriberHTTP.NewSubscriberHandler(controller, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.subscriberHandler, nil
}

// HTTPServer returns the API server with its router configured.
func (c *Container) HTTPServer() (*http.Server, error) {
	err := c.once(&c.httpServerInit, "httpServer", func() error {
		server, err := c.initHTTPServer()
		c.httpServer = server
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the Prometheus metrics server.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	err := c.once(&c.metricsServerInit, "metricsServer", func() error {
		provider, err := c.MetricsProvider()
		if err != nil {
			return fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

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

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.mongoClient != nil {
		if err := c.mongoClient.Disconnect(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("mongodb disconnect: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %w", errors.Join(shutdownErrors...))
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
	if !c.config.IsSQL() {
		return nil, fmt.Errorf("database driver %q is not a sql driver", c.config.DBDriver)
	}

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

func (c *Container) initMongoClient() (*mongo.Client, error) {
	client, err := database.ConnectMongo(context.Background(), database.MongoConfig{
		URL:     c.config.MongoURL,
		Timeout: c.config.MongoTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	return client, nil
}

func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	bm, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return bm, nil
}

// initSubscriberRepository selects the store implementation for DB_DRIVER.
func (c *Container) initSubscriberRepository() (SubscriberStore, error) {
	switch c.config.DBDriver {
	case config.DriverMemory:
		return subscriberRepository.NewMemorySubscriberRepository(), nil
	case config.DriverMongoDB:
		client, err := c.MongoClient()
		if err != nil {
			return nil, fmt.Errorf("failed to get mongodb client for subscriber repository: %w", err)
		}
		return subscriberRepository.NewMongoDBSubscriberRepository(
			client,
			c.config.MongoDatabase,
			c.config.MongoCollection,
		), nil
	case config.DriverPostgres, config.DriverMySQL:
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for subscriber repository: %w", err)
		}
		if c.config.DBDriver == config.DriverMySQL {
			return subscriberRepository.NewMySQLSubscriberRepository(db), nil
		}
		return subscriberRepository.NewPostgreSQLSubscriberRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initSubscriberUseCase wraps the use case with business metrics.
func (c *Container) initSubscriberUseCase() (subscriberUsecase.SubscriberUseCase, error) {
	repo, err := c.SubscriberRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get subscriber repository for use case: %w", err)
	}

	bm, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for subscriber use case: %w", err)
	}

	useCase := subscriberUsecase.NewSubscriberUseCase(repo)
	return subscriberUsecase.NewSubscriberUseCaseWithMetrics(useCase, bm), nil
}

func (c *Container) initHTTPServer() (*http.Server, error) {
	repo, err := c.SubscriberRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get subscriber repository for http server: %w", err)
	}

	handler, err := c.SubscriberHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get subscriber handler for http server: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(repo, c.config.ServerHost, c.config.ServerPort, c.Logger())
	server.SetupRouter(c.config, handler, provider)
	return server, nil
}
