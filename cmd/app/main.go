package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hvacops/cmd"
	"hvacops/internal/adapters/out/postgres"
	"hvacops/internal/adapters/out/rabbitmq"
	"hvacops/internal/core/ports"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := initLogger(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err = run(config, logger); err != nil {
		exitOnError(logger, err)
		return
	}
	logger.Info("Server exited")
}

// osExit is replaced in tests.
var osExit = os.Exit

// exitOnError flushes the logger before exiting; os.Exit skips deferred calls.
func exitOnError(logger *zap.Logger, err error) {
	logger.Error("Application stopped with error", zap.Error(err))
	_ = logger.Sync()
	osExit(1)
}

func run(config cmd.Config, logger *zap.Logger) error {
	location, err := config.Location()
	if err != nil {
		return err
	}

	db, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err = postgres.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	publisher, closePublisher, err := initPublisher(config, logger)
	if err != nil {
		return err
	}
	defer closePublisher()

	app := cmd.NewCompositionRoot(config, db, publisher, location, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	app.CreateHTTPServer().Register(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("port", config.HTTPPort))
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); !errors.Is(startErr, http.ErrServerClosed) {
			serverErr <- startErr
		}
	}()

	select {
	case err = <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// initPublisher connects to RabbitMQ when RABBITMQ_URL is set. Without it
// events are dropped.
func initPublisher(config cmd.Config, logger *zap.Logger) (ports.EventPublisher, func(), error) {
	if config.RabbitMQURL == "" {
		logger.Warn("RABBITMQ_URL is not set, order events will not be published")
		return rabbitmq.NopPublisher{}, func() {}, nil
	}

	conn, err := rabbitmq.Dial(config.RabbitMQURL)
	if err != nil {
		return nil, nil, err
	}

	closeConn := func() {
		if closeErr := conn.Close(); closeErr != nil {
			logger.Warn("Failed to close RabbitMQ connection", zap.Error(closeErr))
		}
	}
	return rabbitmq.NewPublisher(conn, config.RabbitMQExchange, logger), closeConn, nil
}

func initLogger(config cmd.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if config.LogFormat == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(config.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", config.LogLevel, err)
	}
	zapCfg.Level = level

	return zapCfg.Build()
}
