package middleware

import (
	"net/http"
	"time"

	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/persistence/database"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/security"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/storage"
	"github.com/gin-gonic/gin"
)

const (
	visitorStoreKey = "visitorStore"

	// defaultVisitorTokenTTL applies when cookies are session-scoped.
	defaultVisitorTokenTTL = 365 * 24 * time.Hour
)

// VisitorStorageConfig selects where a visitor's history lives.
type VisitorStorageConfig struct {
	// DB enables the SQL store; nil keeps everything in cookies.
	DB            *database.DB
	Cookie        storage.CookieOptions
	VisitorCookie string
	Secret        string
}

// VisitorStorage attaches the visitor's key/value store to the request. With a
// database the store is keyed by a signed visitor id cookie, minted on first
// sight; cookie-held keys such as the debug override still read through.
func VisitorStorage(cfg VisitorStorageConfig, logger *logging.ChanneledLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookies := storage.NewCookieStore(c.Request, c.Writer, cfg.Cookie)
		if cfg.DB == nil {
			c.Set(visitorStoreKey, storage.Store(cookies))
			c.Next()
			return
		}

		visitorID := ""
		if token, err := c.Cookie(cfg.VisitorCookie); err == nil {
			if id, err := security.ParseVisitorToken(token, cfg.Secret); err == nil {
				visitorID = id
			} else {
				logger.Storage().Debug("Discarding invalid visitor token", "error", err.Error())
			}
		}
		if visitorID == "" {
			visitorID = security.GenerateULID()
			ttl := cfg.Cookie.MaxAge
			if ttl <= 0 {
				ttl = defaultVisitorTokenTTL
			}
			token, err := security.IssueVisitorToken(visitorID, cfg.Secret, ttl, time.Now())
			if err != nil {
				logger.Storage().Error("Failed to issue visitor token", "error", err.Error())
			} else {
				http.SetCookie(c.Writer, &http.Cookie{
					Name:     cfg.VisitorCookie,
					Value:    token,
					Path:     "/",
					MaxAge:   int(cfg.Cookie.MaxAge.Seconds()),
					Secure:   cfg.Cookie.Secure,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
		}

		store := storage.Layered{
			Primary:   storage.NewSQLStore(cfg.DB, visitorID),
			Fallbacks: []storage.Store{cookies},
		}
		c.Set(visitorStoreKey, storage.Store(store))
		c.Next()
	}
}

// GetVisitorStore returns the store attached by VisitorStorage. Without the
// middleware it falls back to a read-only view of the request cookies.
func GetVisitorStore(c *gin.Context) storage.Store {
	if v, ok := c.Get(visitorStoreKey); ok {
		if store, ok := v.(storage.Store); ok {
			return store
		}
	}
	return storage.NewCookieStore(c.Request, nil, storage.CookieOptions{})
}
