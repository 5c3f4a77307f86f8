// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AtRiskMedia/adaptive-profile/internal/application/container"
	"github.com/AtRiskMedia/adaptive-profile/internal/domain/profile"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/external/geo"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/i18n"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/persistence/database"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/security"
	"github.com/AtRiskMedia/adaptive-profile/internal/presentation/http/server"
	"github.com/AtRiskMedia/adaptive-profile/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Initialize performs the complete startup sequence and blocks until shutdown
func Initialize() error {
	start := time.Now().UTC()

	// Step 1: Logging
	gin.SetMode(config.GinMode)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToFile:    config.LogToFile,
		OutputToConsole: true,
		LogDirectory:    config.LogDir,
		JSONFormat:      true,
		DefaultLevel:    logging.ParseLevel(config.LogLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := logger.ApplyChannelLevels(config.LogChannelLevels); err != nil {
		logger.Startup().Warn("Ignoring invalid LOG_CHANNEL_LEVELS entries", "error", err.Error())
	}
	logger.Startup().Info("Starting adaptive profile", "port", config.Port, "storage", config.StorageDriver)

	// Step 2: Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Step 3: Profile document
	phaseStart := time.Now()
	doc, err := profile.Load(config.ProfilePath)
	if err != nil {
		logger.LogStartupPhase("profile", time.Since(phaseStart), false, map[string]any{"path": config.ProfilePath})
		return err
	}
	logger.LogStartupPhase("profile", time.Since(phaseStart), true, map[string]any{"name": doc.Name})

	// Step 4: Translation catalogs
	phaseStart = time.Now()
	catalogs := i18n.Load(os.DirFS(config.I18nDir), config.SupportedLocales, logger)
	logger.LogStartupPhase("i18n", time.Since(phaseStart), true, map[string]any{
		"dir":     config.I18nDir,
		"locales": config.SupportedLocales,
	})

	// Step 5: Optional history database
	db, err := openDatabase(logger)
	if err != nil {
		return err
	}

	// Step 6: Visitor token secret
	secret := config.VisitorSecret
	if secret == "" {
		secret, err = security.GenerateSecureKey(32)
		if err != nil {
			return fmt.Errorf("failed to generate visitor secret: %w", err)
		}
		if db != nil {
			logger.Startup().Warn("VISITOR_SECRET is not set; visitor ids will not survive a restart")
		}
	}

	// Step 7: Dependency injection container
	appContainer := container.NewContainer(container.Settings{
		SupportedLocales: config.SupportedLocales,
		HistoryKey:       config.HistoryStorageKey,
		DebugBotKey:      config.DebugBotKey,
		VisitorSecret:    secret,
		Geo: geo.Config{
			LocationEndpoint: config.GeoEndpoint,
			WeatherEndpoint:  config.WeatherEndpoint,
			Timeout:          config.APITimeout,
			RatePerMinute:    config.GeoRatePerMinute,
			Burst:            config.GeoRateBurst,
		},
	}, container.Dependencies{
		Logger:   logger,
		Registry: registry,
		DB:       db,
		Catalogs: catalogs,
		Profile:  doc,
	})
	logger.Startup().Info("Dependency injection container created with singleton services")

	// Step 8: HTTP server
	httpServer := server.New(config.Port, appContainer)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- httpServer.Start()
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"address", httpServer.Addr())

	// Wait for shutdown signal or a listener failure
	select {
	case <-gracefulShutdown:
		logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")
	case err := <-serverErr:
		if err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
			_ = appContainer.Close()
			return err
		}
	}

	shutdownStart := time.Now()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return appContainer.Close()
}

// openDatabase connects the history database when a SQL driver is selected.
func openDatabase(logger *logging.ChanneledLogger) (*database.DB, error) {
	var driver string
	switch config.StorageDriver {
	case config.StorageCookie, "":
		return nil, nil
	case config.StorageSQLite3:
		driver = database.DriverSQLite3
	case config.StorageLibSQL:
		driver = database.DriverLibSQL
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", config.StorageDriver)
	}

	phaseStart := time.Now()
	db, err := database.NewConnectionWithLogger(driver, config.DBDSN, logger)
	if err != nil {
		logger.LogStartupPhase("database", time.Since(phaseStart), false, map[string]any{"driver": driver})
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.CreateSchema(ctx); err != nil {
		db.Close()
		logger.LogStartupPhase("database", time.Since(phaseStart), false, map[string]any{"driver": driver})
		return nil, err
	}

	logger.LogStartupPhase("database", time.Since(phaseStart), true, map[string]any{"driver": driver})
	return db, nil
}
