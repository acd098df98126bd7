package forecast

import (
	"context"
	"fmt"
	"time"

	"github.com/kgrigsby/event-weather/internal/domain"
	"github.com/kgrigsby/event-weather/internal/pkg/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Fetcher is the historical-weather dependency. Implemented by the noaa
// client.
type Fetcher interface {
	DailyObservations(ctx context.Context, regionCode string, date time.Time) ([]domain.StationObservation, error)
}

// Service aggregates historical daily observations across past years.
type Service struct {
	fetcher Fetcher
}

func NewForecastService(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

// HistoricalSummary builds one WeatherDay per requested year for the
// event's calendar date, most recent year first. Every slot is filled:
// a failed or empty fetch keeps its position with Missing set, so the
// aggregate always has exactly `years` entries and downstream
// persistence never sees a shrunken sequence.
func (s *Service) HistoricalSummary(
	ctx context.Context,
	regionCode string,
	eventDate time.Time,
	years int,
) (domain.WeatherAggregate, error) {
	if years <= 0 {
		return nil, fmt.Errorf("years must be positive, got %d", years)
	}

	agg := make(domain.WeatherAggregate, years)

	eg, egCtx := errgroup.WithContext(ctx)
	for k := 1; k <= years; k++ {
		k := k
		date := eventDate.AddDate(-k, 0, 0)
		agg[k-1] = domain.WeatherDay{Date: date, Missing: true}

		eg.Go(func() error {
			observations, err := s.fetcher.DailyObservations(egCtx, regionCode, date)
			if err != nil {
				// Degrade to a missing slot; one bad year must not
				// block the whole aggregate.
				logger.Warnf(egCtx, "no observations for %s: %s", date.Format("2006-01-02"), err.Error())
				return nil
			}
			if len(observations) == 0 {
				return nil
			}

			agg[k-1] = domain.WeatherDay{
				Date:        date,
				Observation: Reduce(observations),
			}
			return nil
		})
	}

	// Goroutines only write their own slot and never return an error,
	// so Wait is a pure join.
	_ = eg.Wait()

	return agg, nil
}

// Observations returns the raw station records for one region and day.
// Fetch failure degrades to an empty list: "no data for this day", never
// an error the HTTP caller has to handle.
func (s *Service) Observations(ctx context.Context, regionCode string, date time.Time) []domain.StationObservation {
	observations, err := s.fetcher.DailyObservations(ctx, regionCode, date)
	if err != nil {
		logger.Warnf(ctx, "observations unavailable for %s: %s", date.Format("2006-01-02"), err.Error())
		return []domain.StationObservation{}
	}
	if observations == nil {
		observations = []domain.StationObservation{}
	}

	return observations
}

// Reduce folds one day's station records into a single observation.
// Precipitation and average temperature are means across stations; the
// day's max/min are extremes over stations. TAVG stands in when a
// station set reports no TMAX/TMIN for the day.
func Reduce(observations []domain.StationObservation) domain.DailyObservation {
	var (
		prcpSum, tavgSum     decimal.Decimal
		prcpCount, tavgCount int
		maxTemp, minTemp     float64
		haveMax, haveMin     bool
	)

	stations := make(map[string]struct{})

	for _, obs := range observations {
		stations[obs.Station] = struct{}{}

		switch obs.DataType {
		case "PRCP":
			prcpSum = prcpSum.Add(decimal.NewFromFloat(obs.Value))
			prcpCount++
		case "TAVG":
			tavgSum = tavgSum.Add(decimal.NewFromFloat(obs.Value))
			tavgCount++
		case "TMAX":
			if !haveMax || obs.Value > maxTemp {
				maxTemp = obs.Value
				haveMax = true
			}
		case "TMIN":
			if !haveMin || obs.Value < minTemp {
				minTemp = obs.Value
				haveMin = true
			}
		}
	}

	out := domain.DailyObservation{RecordCount: len(stations)}

	if prcpCount > 0 {
		out.Precipitation = mean(prcpSum, prcpCount)
	}
	if tavgCount > 0 {
		out.MeanTemp = mean(tavgSum, tavgCount)
	}

	switch {
	case haveMax:
		out.MaxTemp = maxTemp
	case tavgCount > 0:
		out.MaxTemp = out.MeanTemp
	}
	switch {
	case haveMin:
		out.MinTemp = minTemp
	case tavgCount > 0:
		out.MinTemp = out.MeanTemp
	}

	return out
}

func mean(sum decimal.Decimal, n int) float64 {
	return sum.Div(decimal.NewFromInt(int64(n))).Round(2).InexactFloat64()
}
