package services

import (
	"context"
	"net/url"
	"time"

	"github.com/AtRiskMedia/adaptive-profile/internal/domain/detection"
	"github.com/AtRiskMedia/adaptive-profile/internal/domain/visitor"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/external/geo"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/observability/metrics"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/security"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/storage"
)

// DefaultDebugBotKey is the storage key that forces bot classification.
const DefaultDebugBotKey = "debug_bot"

// Signals are the raw inputs of one page load as reported by the browser and
// the HTTP request.
type Signals struct {
	UserAgent  string
	Automation bool
	Language   string
	Referrer   string
	Query      url.Values

	Cores    int
	MemoryGB float64
	Platform string

	// LocalTime is the visitor's clock with its UTC offset. Zero means unknown
	// and the server clock is used instead.
	LocalTime time.Time
	Timezone  string

	ClientIP string
}

// ContextBuilderConfig carries the static settings of a ContextBuilder.
type ContextBuilderConfig struct {
	SupportedLocales []string
	DebugBotKey      string
	IPHashSecret     string
}

// ContextBuilder runs the detectors in their fixed order and assembles the
// visitor context. It never fails: every missing input degrades to a default.
type ContextBuilder struct {
	gateway   geo.Lookup
	history   *VisitHistoryService
	supported []string
	debugKey  string
	ipSecret  string
	now       func() time.Time
	logger    *logging.ChanneledLogger
	metrics   *metrics.Metrics
}

// NewContextBuilder creates a context builder.
func NewContextBuilder(cfg ContextBuilderConfig, gateway geo.Lookup, history *VisitHistoryService, logger *logging.ChanneledLogger, m *metrics.Metrics) *ContextBuilder {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	supported := cfg.SupportedLocales
	if len(supported) == 0 {
		supported = detection.DefaultSupportedLocales
	}
	debugKey := cfg.DebugBotKey
	if debugKey == "" {
		debugKey = DefaultDebugBotKey
	}
	return &ContextBuilder{
		gateway:   gateway,
		history:   history,
		supported: supported,
		debugKey:  debugKey,
		ipSecret:  cfg.IPHashSecret,
		now:       time.Now,
		logger:    logger,
		metrics:   m,
	}
}

// DetectBot classifies the visitor from the user agent, the automation flag and
// the debug override held in store. It is the only storage read a bot session
// performs.
func (b *ContextBuilder) DetectBot(ctx context.Context, userAgent string, automation bool, store storage.Store) detection.BotResult {
	override, _, err := store.Get(ctx, b.debugKey)
	if err != nil {
		b.logger.Storage().Warn("Debug override read failed", "error", err.Error())
		override = ""
	}
	return detection.ClassifyBot(userAgent, automation, override)
}

// Build assembles the visitor context. The returned history is what the write
// path should persist at the end of a human session; it is zero for bots.
func (b *ContextBuilder) Build(ctx context.Context, sig Signals, store storage.Store) (visitor.Context, visitor.History) {
	log := b.logger.WithContext(logging.ChannelVisitor, ctx)

	// 1. Bots short-circuit before anything else is looked at.
	bot := b.DetectBot(ctx, sig.UserAgent, sig.Automation, store)
	if bot.IsBot {
		b.metrics.IncContextBuild(true)
		log.Info("Bot detected", "botName", bot.Name)
		return visitor.Context{IsBot: true, BotName: bot.Name}, visitor.History{}
	}

	// 2. Pure classifiers.
	locale := detection.ResolveLocale(sig.Language, b.supported)
	local := sig.LocalTime
	if local.IsZero() {
		local = b.now()
	}

	vc := visitor.Context{
		Locale:              locale.Locale,
		HasFullLocalization: locale.HasFullLocalization,
		LocalHour:           local.Hour(),
		LocalWeekday:        local.Weekday(),
		TimeOfDay:           detection.ClassifyTimeOfDay(local.Hour()),
		Timezone:            sig.Timezone,
		VisitorType:         detection.InferVisitorType(sig.Query, sig.Referrer),
		ReferrerDomain:      detection.ReferrerDomain(sig.Referrer),
		IsDeveloperLikely: detection.IsDeveloperLikely(detection.DeviceHints{
			Cores:     sig.Cores,
			MemoryGB:  sig.MemoryGB,
			Platform:  sig.Platform,
			UserAgent: sig.UserAgent,
		}),
		IsMobile: detection.IsMobileUserAgent(sig.UserAgent),
	}
	log.Debug("Classified visitor",
		"locale", vc.Locale,
		"fullLocalization", vc.HasFullLocalization,
		"timeOfDay", vc.TimeOfDay,
		"visitorType", vc.VisitorType,
		"developerLikely", vc.IsDeveloperLikely,
	)

	// 3. Visit history.
	history := b.history.Load(ctx, store)
	vc.VisitCount = history.VisitCount
	vc.IsReturningVisitor = history.IsReturning
	vc.LastVisit = history.LastVisit
	log.Debug("Visit history loaded", "visitCount", vc.VisitCount, "returning", vc.IsReturningVisitor)

	// 4. Location, then weather only with usable coordinates.
	if b.gateway != nil {
		vc.Location = b.gateway.FetchLocation(ctx, sig.ClientIP)
		if vc.Location.HasCoordinates() {
			vc.Weather = b.gateway.FetchWeather(ctx, vc.Location.Latitude, vc.Location.Longitude)
		}
	}
	log.Debug("Ambient lookups done",
		"ipHash", security.HashIP(sig.ClientIP, b.ipSecret),
		"city", vc.City(),
		"hasWeather", vc.Weather != nil,
	)

	b.metrics.IncContextBuild(false)
	return vc, history
}
