// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"path/filepath"

	"github.com/AtRiskMedia/adaptive-profile/internal/application/container"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/storage"
	"github.com/AtRiskMedia/adaptive-profile/internal/presentation/http/handlers"
	"github.com/AtRiskMedia/adaptive-profile/internal/presentation/http/middleware"
	"github.com/AtRiskMedia/adaptive-profile/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(container.Logger))
	r.Use(middleware.CORSMiddleware(config.CORSOrigins))

	if err := r.SetTrustedProxies(config.TrustedProxies); err != nil {
		container.Logger.Startup().Warn("Ignoring invalid trusted proxies", "error", err.Error())
	}

	// Page assets and translation catalogs the page fetches itself.
	r.Static("/static", filepath.Join(config.WebDir, "static"))
	r.Static("/i18n", config.I18nDir)

	// Initialize handlers
	profileHandlers := handlers.NewProfileHandlers(container.PersonalizationService, config.WebDir, container.Logger)
	healthHandlers := handlers.NewHealthHandlers(container.DB, container.Logger)

	r.GET("/healthz", healthHandlers.GetHealth)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(container.Registry, promhttp.HandlerOpts{})))

	visitor := r.Group("/")
	visitor.Use(middleware.VisitorStorage(middleware.VisitorStorageConfig{
		DB: container.DB,
		Cookie: storage.CookieOptions{
			Path:   "/",
			MaxAge: config.CookieMaxAge,
			Secure: config.CookieSecure,
		},
		VisitorCookie: config.VisitorCookie,
		Secret:        container.Settings.VisitorSecret,
	}, container.Logger))
	{
		visitor.GET("/", profileHandlers.GetIndex)
		visitor.POST("/api/v1/context", profileHandlers.PostContext)
	}

	return r
}
