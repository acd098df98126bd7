package places

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/bytedance/sonic"
	"github.com/kgrigsby/event-weather/internal/domain"
	"github.com/kgrigsby/event-weather/internal/pkg/constants"
	"github.com/kgrigsby/event-weather/internal/pkg/metrics"
)

const providerName = "places"

// Client resolves free-text locations via the Google Places text search
// API. Unlike the region and solar providers it has no fallback value:
// failures propagate as coded errors.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

func NewClient(apiKey string, httpClient *http.Client, m *metrics.Metrics) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    "https://maps.googleapis.com/maps/api/place/textsearch/json",
		httpClient: httpClient,
		metrics:    m,
	}
}

// TextSearch returns the first match for the query.
func (c *Client) TextSearch(ctx context.Context, query string) (*domain.LocationResult, error) {
	if c.apiKey == "" {
		return nil, constants.ErrAPIKeyNotConfigured
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.Error(providerName)
		return nil, fmt.Errorf("place search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.Error(providerName)
		return nil, fmt.Errorf("place search status %d: %w", resp.StatusCode, constants.ErrNoGeocodeResults)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.Error(providerName)
		return nil, fmt.Errorf("read response: %w", err)
	}

	var payload struct {
		Results []struct {
			Name             string `json:"name"`
			FormattedAddress string `json:"formatted_address"`
			Geometry         struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := sonic.Unmarshal(body, &payload); err != nil {
		c.metrics.Error(providerName)
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(payload.Results) == 0 {
		c.metrics.Error(providerName)
		return nil, constants.ErrNoGeocodeResults
	}

	c.metrics.Success(providerName)

	first := payload.Results[0]
	return &domain.LocationResult{
		Name:             first.Name,
		FormattedAddress: first.FormattedAddress,
		Lat:              first.Geometry.Location.Lat,
		Lng:              first.Geometry.Location.Lng,
	}, nil
}
