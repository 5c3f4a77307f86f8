package services

import (
	"context"
	"fmt"
	"time"

	"github.com/AtRiskMedia/adaptive-profile/internal/domain/content"
	"github.com/AtRiskMedia/adaptive-profile/internal/domain/profile"
	"github.com/AtRiskMedia/adaptive-profile/internal/domain/visitor"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/i18n"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/storage"
)

// Personalization is the outcome of one page load: either the bot document or
// the pieces the page renders for a human.
type Personalization struct {
	IsBot   bool   `json:"isBot"`
	BotName string `json:"botName,omitempty"`
	Payload string `json:"payload,omitempty"`

	Context  *visitor.Context `json:"context,omitempty"`
	Greeting string           `json:"greeting,omitempty"`
	CTA      *content.CTA     `json:"cta,omitempty"`
	Mood     *content.Mood    `json:"mood"`
	Strings  content.Catalog  `json:"strings,omitempty"`
}

// PersonalizationService owns the fork between the bot payload and the human
// content, and the history write that closes a human session.
type PersonalizationService struct {
	builder *ContextBuilder
	history *VisitHistoryService
	catalog *i18n.Bundle
	profile *profile.Document
	now     func() time.Time
	logger  *logging.ChanneledLogger
}

// NewPersonalizationService creates a personalization service.
func NewPersonalizationService(builder *ContextBuilder, history *VisitHistoryService, catalog *i18n.Bundle, doc *profile.Document, logger *logging.ChanneledLogger) *PersonalizationService {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &PersonalizationService{
		builder: builder,
		history: history,
		catalog: catalog,
		profile: doc,
		now:     time.Now,
		logger:  logger,
	}
}

// Resolve builds the visitor context and selects what to serve. Bots get the
// structured document and never touch the history; humans get greeting, CTA,
// mood and UI strings, after which the visit is recorded.
func (s *PersonalizationService) Resolve(ctx context.Context, sig Signals, store storage.Store) (*Personalization, error) {
	vc, history := s.builder.Build(ctx, sig, store)

	if vc.IsBot {
		payload, err := s.BotPayload()
		if err != nil {
			return nil, err
		}
		return &Personalization{IsBot: true, BotName: vc.BotName, Payload: payload}, nil
	}

	cats := s.catalog.Catalogs(vc.Locale, vc.HasFullLocalization)
	cta := content.SelectCTA(vc.VisitorType)
	result := &Personalization{
		Context:  &vc,
		Greeting: content.ResolveGreeting(vc, cats),
		CTA:      &cta,
		Mood:     content.SelectMood(vc),
		Strings:  cats.UI,
	}

	log := s.logger.WithContext(logging.ChannelVisitor, ctx)
	if result.Mood != nil {
		log.Debug("Content selected", "greeting", result.Greeting, "cta", cta.Primary.Text, "mood", result.Mood.Category)
	} else {
		log.Debug("Content selected", "greeting", result.Greeting, "cta", cta.Primary.Text)
	}

	if err := s.history.Save(ctx, store, history, vc.Locale, s.now()); err != nil {
		s.logger.LogError(logging.ChannelStorage, "history.save", err, nil)
	}

	return result, nil
}

// BotPayload renders the structured profile document for automated agents.
func (s *PersonalizationService) BotPayload() (string, error) {
	payload, err := profile.GenerateBotPayload(s.profile, s.now())
	if err != nil {
		return "", fmt.Errorf("failed to render bot payload: %w", err)
	}
	return payload, nil
}

// Builder exposes the context builder, used by handlers that only need bot
// detection.
func (s *PersonalizationService) Builder() *ContextBuilder {
	return s.builder
}
