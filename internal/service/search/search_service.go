package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/kgrigsby/event-weather/internal/domain"
	"github.com/kgrigsby/event-weather/internal/domain/dto"
	"github.com/kgrigsby/event-weather/internal/pkg/constants"
	"github.com/kgrigsby/event-weather/internal/pkg/logger"
	"github.com/kgrigsby/event-weather/internal/pkg/metrics"
	"github.com/kgrigsby/event-weather/internal/pkg/store"
)

const historyLimit = 5

// Service persists submitted searches and serves a user's recent
// history. The clock is injected so created-at stamps are testable.
type Service struct {
	store   store.Store
	clock   clockwork.Clock
	metrics *metrics.Metrics
}

func NewSearchService(s store.Store, clock clockwork.Clock, m *metrics.Metrics) *Service {
	return &Service{store: s, clock: clock, metrics: m}
}

// Create validates nothing itself — the binder/validator already did —
// it stamps the record and hands the unit to the transactional store.
func (s *Service) Create(ctx context.Context, req *dto.CreateSearchRequest, clientIP string) (uuid.UUID, error) {
	rec, agg, err := req.ToRecord(clientIP)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", err.Error(), constants.ErrInvalidDate)
	}
	rec.CreatedAt = s.clock.Now().UTC()

	id, err := s.store.CreateSearch(ctx, rec, agg)
	if err != nil {
		if errors.Is(err, constants.ErrPersistence) {
			return uuid.Nil, err
		}
		logger.Errorf(ctx, "store.CreateSearch: %s", err.Error())
		return uuid.Nil, fmt.Errorf("%s: %w", err.Error(), constants.ErrPersistence)
	}

	s.metrics.SearchesPersisted.Inc()
	return id, nil
}

// Get reads one persisted search back by its id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.SearchRecord, error) {
	rec, err := s.store.GetSearch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.GetSearch: %w", err)
	}

	return rec, nil
}

// History returns the user's 5 most recent searches, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]*domain.SearchSummary, error) {
	summaries, err := s.store.ListRecentByUser(ctx, userID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("store.ListRecentByUser: %w", err)
	}

	return summaries, nil
}
