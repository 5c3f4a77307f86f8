// Package container provides dependency injection for all singleton services
package container

import (
	"github.com/AtRiskMedia/adaptive-profile/internal/application/services"
	"github.com/AtRiskMedia/adaptive-profile/internal/domain/profile"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/external/geo"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/i18n"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/observability/metrics"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/persistence/database"
	"github.com/prometheus/client_golang/prometheus"
)

// Settings are the values the container needs from configuration.
type Settings struct {
	SupportedLocales []string
	HistoryKey       string
	DebugBotKey      string
	VisitorSecret    string
	Geo              geo.Config
}

// Dependencies are the resources created during startup and handed to the container.
type Dependencies struct {
	Logger   *logging.ChanneledLogger
	Registry *prometheus.Registry
	DB       *database.DB // nil when history lives in cookies
	Catalogs *i18n.Bundle
	Profile  *profile.Document
	Gateway  geo.Lookup // defaults to the live ip-api/open-meteo gateway
}

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Application Services (stateless singletons)
	HistoryService         *services.VisitHistoryService
	ContextBuilder         *services.ContextBuilder
	PersonalizationService *services.PersonalizationService

	// Infrastructure Dependencies
	Logger   *logging.ChanneledLogger
	Metrics  *metrics.Metrics
	Registry *prometheus.Registry
	DB       *database.DB
	Gateway  geo.Lookup
	Catalogs *i18n.Bundle
	Profile  *profile.Document
	Settings Settings
}

// NewContainer creates and wires all singleton services
func NewContainer(settings Settings, deps Dependencies) *Container {
	logger := deps.Logger
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	m := metrics.MustNewMetrics(registry)

	gateway := deps.Gateway
	if gateway == nil {
		gateway = geo.NewGateway(settings.Geo, logger, m)
	}

	history := services.NewVisitHistoryService(settings.HistoryKey, logger, m)
	builder := services.NewContextBuilder(services.ContextBuilderConfig{
		SupportedLocales: settings.SupportedLocales,
		DebugBotKey:      settings.DebugBotKey,
		IPHashSecret:     settings.VisitorSecret,
	}, gateway, history, logger, m)

	return &Container{
		HistoryService:         history,
		ContextBuilder:         builder,
		PersonalizationService: services.NewPersonalizationService(builder, history, deps.Catalogs, deps.Profile, logger),

		Logger:   logger,
		Metrics:  m,
		Registry: registry,
		DB:       deps.DB,
		Gateway:  gateway,
		Catalogs: deps.Catalogs,
		Profile:  deps.Profile,
		Settings: settings,
	}
}

// Close releases the resources owned by the container.
func (c *Container) Close() error {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return err
		}
	}
	return c.Logger.Close()
}
