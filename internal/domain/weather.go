package domain

import "time"

// StationObservation is one raw GHCND record: a single datatype reported
// by a single station on a single day.
type StationObservation struct {
	Date     string  `json:"date"`
	DataType string  `json:"datatype"`
	Station  string  `json:"station"`
	Value    float64 `json:"value"`
}

// DailyObservation is the per-day reduction over all stations in a region.
type DailyObservation struct {
	RecordCount   int     `json:"recordCount" db:"record_count"`
	Precipitation float64 `json:"precipitation" db:"prcp"`
	MeanTemp      float64 `json:"meanTemp" db:"tavg"`
	MaxTemp       float64 `json:"maxTemp" db:"tmax"`
	MinTemp       float64 `json:"minTemp" db:"tmin"`
}

// WeatherDay is one year-slot of a WeatherAggregate. Missing marks a
// slot whose fetch failed or returned no records; the slot is kept so
// the aggregate always has exactly one entry per requested year.
type WeatherDay struct {
	Date        time.Time        `json:"date"`
	Observation DailyObservation `json:"observation"`
	Missing     bool             `json:"missing"`
}

// WeatherAggregate is the ordered per-year summary for an event date,
// most recent year first.
type WeatherAggregate []WeatherDay
