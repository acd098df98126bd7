package domain

import (
	"time"

	"github.com/google/uuid"
)

// SearchRecord is the durable search entity. Immutable after creation;
// owns its weather rows via SearchID.
type SearchRecord struct {
	ID                 uuid.UUID `json:"searchId" db:"search_id"`
	UserID             string    `json:"userId" db:"user_id"`
	ClientIP           string    `json:"-" db:"ip_addr"`
	EnteredLocation    string    `json:"enteredLocation" db:"entered_location"`
	ResolvedLocation   string    `json:"resolvedLocation" db:"resolved_location"`
	EventDate          time.Time `json:"eventDate" db:"event_date"`
	Description        string    `json:"description" db:"description"`
	YearsRequested     int       `json:"yearsRequested" db:"years_requested"`
	RegionCode         string    `json:"regionCode" db:"region_code"`
	RainProbabilityPct float64   `json:"rainProbabilityPct" db:"rain_probability_pct"`
	ExpectedTemp       float64   `json:"expectedTemp" db:"expected_temp"`
	MaxTemp            float64   `json:"maxTemp" db:"max_temp"`
	MinTemp            float64   `json:"minTemp" db:"min_temp"`
	Sunrise            string    `json:"sunrise" db:"sunrise"`
	Sunset             string    `json:"sunset" db:"sunset"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
}

// SearchSummary is the trimmed view returned by the history listing.
type SearchSummary struct {
	ResolvedLocation   string    `json:"resolvedLocation" db:"resolved_location"`
	EventDate          time.Time `json:"eventDate" db:"event_date"`
	YearsRequested     int       `json:"yearsRequested" db:"years_requested"`
	RainProbabilityPct float64   `json:"rainProbabilityPct" db:"rain_probability_pct"`
	ExpectedTemp       float64   `json:"expectedTemp" db:"expected_temp"`
	MaxTemp            float64   `json:"maxTemp" db:"max_temp"`
	MinTemp            float64   `json:"minTemp" db:"min_temp"`
	Sunrise            string    `json:"sunrise" db:"sunrise"`
	Sunset             string    `json:"sunset" db:"sunset"`
}
