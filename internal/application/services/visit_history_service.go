// Package services provides application-level orchestration services
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/AtRiskMedia/adaptive-profile/internal/domain/visitor"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/observability/metrics"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/storage"
)

// DefaultHistoryKey is the storage key holding the visit record.
const DefaultHistoryKey = "adaptive_profile_history"

const maxStoredVisitCount = math.MaxInt

// VisitHistoryService reads and writes the per-visitor visit counter.
type VisitHistoryService struct {
	key     string
	logger  *logging.ChanneledLogger
	metrics *metrics.Metrics
}

// NewVisitHistoryService creates a history service bound to one storage key.
func NewVisitHistoryService(key string, logger *logging.ChanneledLogger, m *metrics.Metrics) *VisitHistoryService {
	if key == "" {
		key = DefaultHistoryKey
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &VisitHistoryService{key: key, logger: logger, metrics: m}
}

// Load returns the history for this page load. A missing, unreadable or
// corrupt record yields a first visit; the stored count is never trusted below 1.
func (s *VisitHistoryService) Load(ctx context.Context, store storage.Store) visitor.History {
	log := s.logger.WithOperation(logging.ChannelStorage, "history.load")
	raw, ok, err := store.Get(ctx, s.key)
	if err != nil {
		log.Warn("History read failed, treating as first visit", "error", err.Error())
		return visitor.NewVisitorHistory()
	}
	if !ok {
		return visitor.NewVisitorHistory()
	}

	var rec visitor.HistoryRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		log.Warn("History record is corrupt, treating as first visit", "error", err.Error())
		return visitor.NewVisitorHistory()
	}
	// A count that cannot be incremented is as untrustworthy as one below 1.
	if rec.VisitCount < 1 || rec.VisitCount >= maxStoredVisitCount {
		log.Warn("History record has invalid visit count", "visitCount", rec.VisitCount)
		return visitor.NewVisitorHistory()
	}

	return visitor.History{
		VisitCount:  rec.VisitCount + 1,
		IsReturning: true,
		FirstVisit:  rec.FirstVisitTimestamp,
		LastVisit:   rec.LastVisitTimestamp,
		LastLocale:  rec.LastLocale,
	}
}

// Save persists the count computed by Load together with the visit timestamps.
// The first-visit timestamp is carried over when known.
func (s *VisitHistoryService) Save(ctx context.Context, store storage.Store, h visitor.History, locale string, now time.Time) error {
	now = now.UTC()
	first := now
	if h.FirstVisit != nil {
		first = h.FirstVisit.UTC()
	}
	count := h.VisitCount
	if count < 1 {
		count = 1
	}

	rec := visitor.HistoryRecord{
		Version:             visitor.HistoryVersion,
		VisitCount:          count,
		FirstVisitTimestamp: &first,
		LastVisitTimestamp:  &now,
		LastLocale:          locale,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		s.metrics.IncHistoryWrite(err)
		return fmt.Errorf("failed to encode history record: %w", err)
	}

	err = store.Set(ctx, s.key, string(data))
	s.metrics.IncHistoryWrite(err)
	if err != nil {
		return fmt.Errorf("failed to store history record: %w", err)
	}

	s.logger.WithOperation(logging.ChannelStorage, "history.save").Debug("History saved", "visitCount", count)
	return nil
}
