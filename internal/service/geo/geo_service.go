package geo

import (
	"context"

	"github.com/kgrigsby/event-weather/internal/domain"
)

// Geocoder resolves free text to a location. Implemented by the places
// client.
type Geocoder interface {
	TextSearch(ctx context.Context, query string) (*domain.LocationResult, error)
}

// RegionResolver maps coordinates to a county code. Implemented by the
// fcc client; never errors.
type RegionResolver interface {
	CountyCode(ctx context.Context, lat, lng float64) domain.RegionLookup
}

// SolarProvider maps coordinates and a date to solar times. Implemented
// by the sunrise client; never errors.
type SolarProvider interface {
	Times(ctx context.Context, lat, lng float64, date string) domain.SolarTimes
}

// Service bundles the three geographic lookups behind one dependency
// for the controllers.
type Service struct {
	geocoder Geocoder
	regions  RegionResolver
	solar    SolarProvider
}

func NewGeoService(geocoder Geocoder, regions RegionResolver, solar SolarProvider) *Service {
	return &Service{geocoder: geocoder, regions: regions, solar: solar}
}

func (s *Service) Geocode(ctx context.Context, input string) (*domain.LocationResult, error) {
	return s.geocoder.TextSearch(ctx, input)
}

func (s *Service) Region(ctx context.Context, lat, lng float64) domain.RegionLookup {
	return s.regions.CountyCode(ctx, lat, lng)
}

func (s *Service) Solar(ctx context.Context, lat, lng float64, date string) domain.SolarTimes {
	return s.solar.Times(ctx, lat, lng, date)
}
