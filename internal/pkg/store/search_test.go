package store

import (
	"context"
	"errors"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kgrigsby/event-weather/internal/domain"
	"github.com/kgrigsby/event-weather/internal/pkg/constants"
	"github.com/kgrigsby/event-weather/internal/pkg/store/xpgx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type executed struct {
	sql  string
	args []interface{}
}

// fakePool implements xpgx.Pool with transaction semantics: statements
// run inside InTx are only kept when fn succeeds.
type fakePool struct {
	committed  []executed
	pending    []executed
	inTx       bool
	rolledBack bool

	failOnExec int // 1-based statement index that fails; 0 = never
	execCount  int

	summaries []*domain.SearchSummary
	selectSQL string

	record *domain.SearchRecord
	getSQL string
}

func (f *fakePool) Execx(_ context.Context, q sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}

	f.execCount++
	if f.failOnExec > 0 && f.execCount == f.failOnExec {
		return pgconn.CommandTag{}, errors.New("constraint violation")
	}

	stmt := executed{sql: sql, args: args}
	if f.inTx {
		f.pending = append(f.pending, stmt)
	} else {
		f.committed = append(f.committed, stmt)
	}
	return pgconn.CommandTag{}, nil
}

func (f *fakePool) Getx(_ context.Context, dest interface{}, q sq.Sqlizer) error {
	sql, _, err := q.ToSql()
	if err != nil {
		return err
	}
	f.getSQL = sql

	if f.record == nil {
		return pgx.ErrNoRows
	}
	out, ok := dest.(*domain.SearchRecord)
	if !ok {
		return errors.New("unexpected destination type")
	}
	*out = *f.record
	return nil
}

func (f *fakePool) Selectx(_ context.Context, dest interface{}, q sq.Sqlizer) error {
	sql, _, err := q.ToSql()
	if err != nil {
		return err
	}
	f.selectSQL = sql

	out, ok := dest.(*[]*domain.SearchSummary)
	if !ok {
		return errors.New("unexpected destination type")
	}
	*out = f.summaries
	return nil
}

func (f *fakePool) InTx(_ context.Context, fn func(xpgx.Pool) error) error {
	f.inTx = true
	defer func() { f.inTx = false }()

	if err := fn(f); err != nil {
		f.pending = nil
		f.rolledBack = true
		return err
	}

	f.committed = append(f.committed, f.pending...)
	f.pending = nil
	return nil
}

func testRecord() *domain.SearchRecord {
	return &domain.SearchRecord{
		UserID:             "user-1",
		ClientIP:           "203.0.113.9",
		EnteredLocation:    "golden gate park",
		ResolvedLocation:   "Golden Gate Park, San Francisco, CA",
		EventDate:          time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Description:        "picnic",
		YearsRequested:     3,
		RegionCode:         "06075",
		RainProbabilityPct: 33.3,
		ExpectedTemp:       61.2,
		MaxTemp:            68,
		MinTemp:            54,
		Sunrise:            "5:47 AM",
		Sunset:             "8:34 PM",
		CreatedAt:          time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func testAggregate() domain.WeatherAggregate {
	return domain.WeatherAggregate{
		{Date: time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC), Observation: domain.DailyObservation{RecordCount: 4, Precipitation: 0.1, MeanTemp: 60, MaxTemp: 68, MinTemp: 53}},
		{Date: time.Date(2022, 6, 15, 0, 0, 0, 0, time.UTC), Observation: domain.DailyObservation{RecordCount: 3, MeanTemp: 63, MaxTemp: 70, MinTemp: 55}},
		{Date: time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC), Missing: true},
	}
}

func TestCreateSearch_WritesSearchRowThenWeatherRows(t *testing.T) {
	pool := &fakePool{}
	s := NewStore(pool)

	id, err := s.CreateSearch(context.Background(), testRecord(), testAggregate())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	require.Len(t, pool.committed, 4)
	assert.Contains(t, pool.committed[0].sql, "INSERT INTO searches")
	for _, stmt := range pool.committed[1:] {
		assert.Contains(t, stmt.sql, "INSERT INTO search_wx")
		// every weather row references the generated search id
		assert.Equal(t, id, stmt.args[0])
	}
}

func TestCreateSearch_FailureOnSecondWeatherRowRollsBackEverything(t *testing.T) {
	// statement 1 = search row, 2 = first weather row, 3 = second.
	pool := &fakePool{failOnExec: 3}
	s := NewStore(pool)

	_, err := s.CreateSearch(context.Background(), testRecord(), testAggregate())
	require.Error(t, err)

	assert.True(t, pool.rolledBack)
	assert.Empty(t, pool.committed, "no rows may survive a partial failure")
}

func TestCreateSearch_MissingDayStillPersisted(t *testing.T) {
	pool := &fakePool{}
	s := NewStore(pool)

	_, err := s.CreateSearch(context.Background(), testRecord(), testAggregate())
	require.NoError(t, err)

	// third weather row is the missing 2021 slot; marker column is last
	missingRow := pool.committed[3]
	assert.Equal(t, true, missingRow.args[len(missingRow.args)-1])
}

func TestGetSearch_ReadsBackWhatWasWritten(t *testing.T) {
	stored := testRecord()
	stored.ID = uuid.New()

	pool := &fakePool{record: stored}
	s := NewStore(pool)

	got, err := s.GetSearch(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
	assert.Contains(t, pool.getSQL, "FROM searches")
}

func TestGetSearch_NotFound(t *testing.T) {
	pool := &fakePool{}
	s := NewStore(pool)

	_, err := s.GetSearch(context.Background(), uuid.New())
	assert.ErrorIs(t, err, constants.ErrDBNotFound)
}

func TestListRecentByUser_QueryShape(t *testing.T) {
	pool := &fakePool{
		summaries: []*domain.SearchSummary{
			{ResolvedLocation: "A"}, {ResolvedLocation: "B"},
		},
	}
	s := NewStore(pool)

	summaries, err := s.ListRecentByUser(context.Background(), "user-1", 5)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Contains(t, pool.selectSQL, "FROM searches")
	assert.Contains(t, pool.selectSQL, "ORDER BY created_at DESC")
	assert.Contains(t, pool.selectSQL, "LIMIT 5")
}
