package noaa

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/kgrigsby/event-weather/internal/domain"
	"github.com/kgrigsby/event-weather/internal/pkg/metrics"
	"github.com/sony/gobreaker"
)

const providerName = "noaa"

// Client fetches GHCND daily observations from the NOAA NCDC climate
// data API. Calls go through a circuit breaker so a flapping upstream
// fails fast instead of burning the whole request budget; a returned
// error means "no data for this day", never a fatal condition for the
// aggregation.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	circuit    *gobreaker.CircuitBreaker
	metrics    *metrics.Metrics
}

func NewClient(token string, httpClient *http.Client, m *metrics.Metrics) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        providerName,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		token:      token,
		baseURL:    "https://www.ncdc.noaa.gov/cdo-web/api/v2/data",
		httpClient: httpClient,
		circuit:    cb,
		metrics:    m,
	}
}

// DailyObservations returns the raw per-station records for one region
// and one calendar date. The result may be empty: GHCND has gaps.
func (c *Client) DailyObservations(ctx context.Context, regionCode string, date time.Time) ([]domain.StationObservation, error) {
	day := date.Format("2006-01-02")

	params := url.Values{}
	params.Set("datasetid", "GHCND")
	params.Set("startdate", day)
	params.Set("enddate", day)
	params.Set("datatypeid", "PRCP,TAVG,TMAX,TMIN")
	params.Set("units", "standard")
	params.Set("limit", "1000")
	params.Set("locationid", "FIPS:"+regionCode)

	result, err := c.circuit.Execute(func() (interface{}, error) {
		return c.fetch(ctx, params)
	})
	if err != nil {
		c.metrics.Error(providerName)
		return nil, fmt.Errorf("noaa observations %s: %w", day, err)
	}

	c.metrics.Success(providerName)
	return result.([]domain.StationObservation), nil
}

func (c *Client) fetch(ctx context.Context, params url.Values) ([]domain.StationObservation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("climate data request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("climate data status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var payload struct {
		Results []domain.StationObservation `json:"results"`
	}
	if err := sonic.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return payload.Results, nil
}
