package dto

import (
	"time"

	"github.com/kgrigsby/event-weather/internal/domain"
)

// CreateSearchRequest is the single schema shared by the searches
// controller and the persistence gateway. The client assembles it from
// the geocode/region/solar/history lookups it performed.
type CreateSearchRequest struct {
	UserID             string       `json:"userId" validate:"required"`
	EnteredLocation    string       `json:"enteredLocation" validate:"required"`
	ResolvedLocation   string       `json:"resolvedLocation" validate:"required"`
	EventDate          string       `json:"eventDate" validate:"required,datetime=2006-01-02"`
	Description        string       `json:"description"`
	YearsRequested     int          `json:"yearsRequested" validate:"required,min=1,max=30"`
	RegionCode         string       `json:"regionCode" validate:"required,len=5,numeric"`
	RainProbabilityPct float64      `json:"rainProbabilityPct" validate:"min=0,max=100"`
	ExpectedTemp       float64      `json:"expectedTemp"`
	MaxTemp            float64      `json:"maxTemp"`
	MinTemp            float64      `json:"minTemp"`
	Sunrise            string       `json:"sunrise"`
	Sunset             string       `json:"sunset"`
	WeatherDays        []WeatherDay `json:"weatherResults" validate:"required,min=1,dive"`
}

// WeatherDay is one aggregated year-slot as submitted by the client.
type WeatherDay struct {
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	RecordCount   int     `json:"recordCount" validate:"min=0"`
	Precipitation float64 `json:"precipitation"`
	MeanTemp      float64 `json:"meanTemp"`
	MaxTemp       float64 `json:"maxTemp"`
	MinTemp       float64 `json:"minTemp"`
	Missing       bool    `json:"missing"`
}

// ToRecord converts the request into the domain entity. Date fields are
// assumed validated; parse errors surface as zero times which the
// validator has already excluded.
func (r *CreateSearchRequest) ToRecord(clientIP string) (*domain.SearchRecord, domain.WeatherAggregate, error) {
	eventDate, err := time.Parse("2006-01-02", r.EventDate)
	if err != nil {
		return nil, nil, err
	}

	rec := &domain.SearchRecord{
		UserID:             r.UserID,
		ClientIP:           clientIP,
		EnteredLocation:    r.EnteredLocation,
		ResolvedLocation:   r.ResolvedLocation,
		EventDate:          eventDate,
		Description:        r.Description,
		YearsRequested:     r.YearsRequested,
		RegionCode:         r.RegionCode,
		RainProbabilityPct: r.RainProbabilityPct,
		ExpectedTemp:       r.ExpectedTemp,
		MaxTemp:            r.MaxTemp,
		MinTemp:            r.MinTemp,
		Sunrise:            r.Sunrise,
		Sunset:             r.Sunset,
	}

	agg := make(domain.WeatherAggregate, 0, len(r.WeatherDays))
	for _, d := range r.WeatherDays {
		date, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			return nil, nil, err
		}
		agg = append(agg, domain.WeatherDay{
			Date: date,
			Observation: domain.DailyObservation{
				RecordCount:   d.RecordCount,
				Precipitation: d.Precipitation,
				MeanTemp:      d.MeanTemp,
				MaxTemp:       d.MaxTemp,
				MinTemp:       d.MinTemp,
			},
			Missing: d.Missing,
		})
	}

	return rec, agg, nil
}
