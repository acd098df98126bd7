package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/kgrigsby/event-weather/internal/domain"
	"github.com/kgrigsby/event-weather/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	// CreateSearch inserts the search row and its weather rows as one
	// transactional unit and returns the generated search id.
	CreateSearch(ctx context.Context, rec *domain.SearchRecord, agg domain.WeatherAggregate) (uuid.UUID, error)
	// ListRecentByUser returns up to limit summaries, newest first.
	ListRecentByUser(ctx context.Context, userID string, limit uint64) ([]*domain.SearchSummary, error)
	// GetSearch reads a single search row back by id.
	GetSearch(ctx context.Context, id uuid.UUID) (*domain.SearchRecord, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
