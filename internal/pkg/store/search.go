package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/kgrigsby/event-weather/internal/domain"
	"github.com/kgrigsby/event-weather/internal/pkg/logger"
)

var (
	searchColumns = []string{
		"search_id", "user_id", "ip_addr", "entered_location", "resolved_location",
		"event_date", "description", "years_requested", "region_code",
		"rain_probability_pct", "expected_temp", "max_temp", "min_temp",
		"sunrise", "sunset", "created_at",
	}
	summaryColumns = []string{
		"resolved_location", "event_date", "years_requested",
		"rain_probability_pct", "expected_temp", "max_temp", "min_temp",
		"sunrise", "sunset",
	}
)

// CreateSearch writes the search row first, then one weather row per
// aggregate entry referencing the generated id. All inserts run in a
// single transaction: a failure on any weather row rolls the search row
// back too, so an orphaned search can never be observed.
func (s *store) CreateSearch(
	ctx context.Context,
	rec *domain.SearchRecord,
	agg domain.WeatherAggregate,
) (uuid.UUID, error) {
	searchID := uuid.New()

	err := s.pool.InTx(ctx, func(tx Pool) error {
		query := builder().Insert(tableSearches).
			Columns(searchColumns...).
			Values(
				searchID, rec.UserID, rec.ClientIP, rec.EnteredLocation, rec.ResolvedLocation,
				rec.EventDate, rec.Description, rec.YearsRequested, rec.RegionCode,
				rec.RainProbabilityPct, rec.ExpectedTemp, rec.MaxTemp, rec.MinTemp,
				rec.Sunrise, rec.Sunset, rec.CreatedAt,
			)

		if _, err := tx.Execx(ctx, query); err != nil {
			return fmt.Errorf("insert search: %w", err)
		}

		for _, day := range agg {
			wxQuery := builder().Insert(tableWxData).
				Columns("search_id", "wx_date", "record_count", "prcp", "tavg", "tmax", "tmin", "missing").
				Values(
					searchID, day.Date, day.Observation.RecordCount,
					day.Observation.Precipitation, day.Observation.MeanTemp,
					day.Observation.MaxTemp, day.Observation.MinTemp, day.Missing,
				)

			if _, err := tx.Execx(ctx, wxQuery); err != nil {
				return fmt.Errorf("insert weather row %s: %w", day.Date.Format("2006-01-02"), err)
			}
		}

		return nil
	})
	if err != nil {
		logger.Errorf(ctx, "CreateSearch: %s", err.Error())
		return uuid.Nil, wrapErr(err)
	}

	return searchID, nil
}

func (s *store) ListRecentByUser(ctx context.Context, userID string, limit uint64) ([]*domain.SearchSummary, error) {
	query := builder().Select(summaryColumns...).
		From(tableSearches).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(limit)

	var selected []*domain.SearchSummary
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) GetSearch(ctx context.Context, id uuid.UUID) (*domain.SearchRecord, error) {
	query := builder().Select(searchColumns...).
		From(tableSearches).
		Where(sq.Eq{"search_id": id})

	var selected domain.SearchRecord
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}
