// Package handlers provides HTTP request handlers for the presentation layer.
package handlers

import (
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/AtRiskMedia/adaptive-profile/internal/application/services"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/adaptive-profile/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

const botPayloadContentType = "text/yaml; charset=utf-8"

// ProfileHandlers serves the profile page, the bot document and the
// personalization API.
type ProfileHandlers struct {
	service *services.PersonalizationService
	webDir  string
	logger  *logging.ChanneledLogger
}

// ContextRequest is what the page reports about its visitor.
type ContextRequest struct {
	UserAgent           string  `json:"userAgent"`
	Webdriver           bool    `json:"webdriver"`
	Language            string  `json:"language"`
	Referrer            string  `json:"referrer"`
	Query               string  `json:"query"`
	HardwareConcurrency int     `json:"hardwareConcurrency"`
	DeviceMemory        float64 `json:"deviceMemory"`
	Platform            string  `json:"platform"`
	LocalTime           string  `json:"localTime"`
	Timezone            string  `json:"timezone"`
}

// NewProfileHandlers creates profile handlers with injected dependencies
func NewProfileHandlers(service *services.PersonalizationService, webDir string, logger *logging.ChanneledLogger) *ProfileHandlers {
	return &ProfileHandlers{
		service: service,
		webDir:  webDir,
		logger:  logger,
	}
}

// GetIndex handles GET / - bots get the structured document, humans the page
func (h *ProfileHandlers) GetIndex(c *gin.Context) {
	store := middleware.GetVisitorStore(c)
	bot := h.service.Builder().DetectBot(c.Request.Context(), c.Request.UserAgent(), false, store)
	if !bot.IsBot {
		c.File(filepath.Join(h.webDir, "index.html"))
		return
	}

	payload, err := h.service.BotPayload()
	if err != nil {
		h.logger.LogError(logging.ChannelHTTP, "bot_payload", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render profile"})
		return
	}

	h.logger.Visitor().Info("Serving bot payload", "botName", bot.Name)
	c.Header("Vary", "User-Agent")
	c.Data(http.StatusOK, botPayloadContentType, []byte(payload))
}

// PostContext handles POST /api/v1/context - runs the pipeline for the page
func (h *ProfileHandlers) PostContext(c *gin.Context) {
	var req ContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.HTTP().Debug("Context request JSON binding failed", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	sig, err := h.signalsFromRequest(c, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Resolve(c.Request.Context(), sig, middleware.GetVisitorStore(c))
	if err != nil {
		h.logger.LogError(logging.ChannelHTTP, "resolve_context", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve context"})
		return
	}

	if result.IsBot {
		c.JSON(http.StatusOK, gin.H{
			"isBot":   true,
			"botName": result.BotName,
			"payload": result.Payload,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isBot":    false,
		"context":  result.Context,
		"greeting": result.Greeting,
		"cta":      result.CTA,
		"mood":     result.Mood,
		"strings":  result.Strings,
	})
}

type badRequestError string

func (e badRequestError) Error() string { return string(e) }

func (h *ProfileHandlers) signalsFromRequest(c *gin.Context, req ContextRequest) (services.Signals, error) {
	sig := services.Signals{
		UserAgent:  req.UserAgent,
		Automation: req.Webdriver,
		Language:   req.Language,
		Referrer:   req.Referrer,
		Cores:      req.HardwareConcurrency,
		MemoryGB:   req.DeviceMemory,
		Platform:   req.Platform,
		Timezone:   req.Timezone,
		ClientIP:   c.ClientIP(),
	}
	if sig.UserAgent == "" {
		sig.UserAgent = c.Request.UserAgent()
	}
	if sig.Language == "" {
		sig.Language = c.GetHeader("Accept-Language")
	}

	// A partly malformed query string still yields whatever pairs parsed.
	sig.Query, _ = url.ParseQuery(strings.TrimPrefix(req.Query, "?"))

	if req.LocalTime != "" {
		t, err := time.Parse(time.RFC3339, req.LocalTime)
		if err != nil {
			return sig, badRequestError("localTime must be RFC 3339 with an offset")
		}
		sig.LocalTime = t
	}
	return sig, nil
}
