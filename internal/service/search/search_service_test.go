package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/kgrigsby/event-weather/internal/domain"
	"github.com/kgrigsby/event-weather/internal/domain/dto"
	"github.com/kgrigsby/event-weather/internal/pkg/constants"
	"github.com/kgrigsby/event-weather/internal/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	rec     *domain.SearchRecord
	agg     domain.WeatherAggregate
	id      uuid.UUID
	err     error
	history []*domain.SearchSummary
}

func (f *fakeStore) CreateSearch(_ context.Context, rec *domain.SearchRecord, agg domain.WeatherAggregate) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	f.rec = rec
	f.agg = agg
	f.id = uuid.New()
	return f.id, nil
}

func (f *fakeStore) ListRecentByUser(_ context.Context, _ string, limit uint64) ([]*domain.SearchSummary, error) {
	if uint64(len(f.history)) > limit {
		return f.history[:limit], nil
	}
	return f.history, nil
}

func (f *fakeStore) GetSearch(_ context.Context, _ uuid.UUID) (*domain.SearchRecord, error) {
	if f.rec == nil {
		return nil, constants.ErrDBNotFound
	}
	return f.rec, nil
}

func testRequest() *dto.CreateSearchRequest {
	return &dto.CreateSearchRequest{
		UserID:             "user-1",
		EnteredLocation:    "paris",
		ResolvedLocation:   "Paris, France",
		EventDate:          "2024-06-15",
		Description:        "wedding",
		YearsRequested:     2,
		RegionCode:         "06075",
		RainProbabilityPct: 50,
		ExpectedTemp:       62,
		MaxTemp:            70,
		MinTemp:            55,
		Sunrise:            "5:47 AM",
		Sunset:             "8:34 PM",
		WeatherDays: []dto.WeatherDay{
			{Date: "2023-06-15", RecordCount: 3, Precipitation: 0.1, MeanTemp: 60, MaxTemp: 68, MinTemp: 52},
			{Date: "2022-06-15", Missing: true},
		},
	}
}

func TestCreate_StampsClockAndPersistsUnit(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	st := &fakeStore{}

	svc := NewSearchService(st, clock, metrics.NewForTesting())
	id, err := svc.Create(context.Background(), testRequest(), "203.0.113.9")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	require.NotNil(t, st.rec)
	assert.Equal(t, now, st.rec.CreatedAt)
	assert.Equal(t, "203.0.113.9", st.rec.ClientIP)
	assert.Equal(t, "user-1", st.rec.UserID)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), st.rec.EventDate)

	require.Len(t, st.agg, 2)
	assert.False(t, st.agg[0].Missing)
	assert.True(t, st.agg[1].Missing)
	assert.Equal(t, 0.1, st.agg[0].Observation.Precipitation)
}

func TestCreate_StoreFailureSurfacesPersistenceError(t *testing.T) {
	st := &fakeStore{err: errors.New("connection refused")}
	svc := NewSearchService(st, clockwork.NewFakeClock(), metrics.NewForTesting())

	_, err := svc.Create(context.Background(), testRequest(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, constants.ErrPersistence)
}

func TestCreate_BadEventDateIsInvalidRequest(t *testing.T) {
	req := testRequest()
	req.EventDate = "June 15th"

	svc := NewSearchService(&fakeStore{}, clockwork.NewFakeClock(), metrics.NewForTesting())
	_, err := svc.Create(context.Background(), req, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, constants.ErrInvalidDate)
}

func TestGet_ReturnsPersistedRecord(t *testing.T) {
	st := &fakeStore{}
	clock := clockwork.NewFakeClockAt(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	svc := NewSearchService(st, clock, metrics.NewForTesting())
	id, err := svc.Create(context.Background(), testRequest(), "")
	require.NoError(t, err)

	rec, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Paris, France", rec.ResolvedLocation)
	assert.Equal(t, clock.Now().UTC(), rec.CreatedAt)
}

func TestGet_NotFoundPassesThrough(t *testing.T) {
	svc := NewSearchService(&fakeStore{}, clockwork.NewFakeClock(), metrics.NewForTesting())

	_, err := svc.Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, constants.ErrDBNotFound)
}

func TestHistory_CapsAtFiveNewestFirst(t *testing.T) {
	history := make([]*domain.SearchSummary, 0, 7)
	for i := 0; i < 7; i++ {
		history = append(history, &domain.SearchSummary{ResolvedLocation: "loc"})
	}

	svc := NewSearchService(&fakeStore{history: history}, clockwork.NewFakeClock(), metrics.NewForTesting())
	summaries, err := svc.History(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, summaries, 5)
}
