package fcc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/bytedance/sonic"
	"github.com/kgrigsby/event-weather/internal/domain"
	"github.com/kgrigsby/event-weather/internal/pkg/logger"
	"github.com/kgrigsby/event-weather/internal/pkg/metrics"
)

const providerName = "fcc"

// FallbackFIPS is substituted whenever the census-block lookup fails.
// San Francisco County; downstream consumers see a valid-looking code
// either way, so the Fallback flag is the only degradation signal.
const FallbackFIPS = "06075"

// Client maps coordinates to a county FIPS code via the FCC census
// block API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

func NewClient(httpClient *http.Client, m *metrics.Metrics) *Client {
	return &Client{
		baseURL:    "https://geo.fcc.gov/api/census/block/find",
		httpClient: httpClient,
		metrics:    m,
	}
}

// CountyCode never fails: any lookup error degrades to FallbackFIPS so
// the aggregation pipeline keeps moving.
func (c *Client) CountyCode(ctx context.Context, lat, lng float64) domain.RegionLookup {
	code, err := c.lookup(ctx, lat, lng)
	if err != nil {
		logger.Warnf(ctx, "fcc lookup failed, using fallback %s: %s", FallbackFIPS, err.Error())
		c.metrics.Fallback(providerName)
		return domain.RegionLookup{Code: FallbackFIPS, Fallback: true}
	}

	c.metrics.Success(providerName)
	return domain.RegionLookup{Code: code}
}

func (c *Client) lookup(ctx context.Context, lat, lng float64) (string, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("latitude", fmt.Sprintf("%f", lat))
	params.Set("longitude", fmt.Sprintf("%f", lng))
	params.Set("showall", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("block find request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("block find status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var payload struct {
		County struct {
			FIPS string `json:"FIPS"`
		} `json:"County"`
	}
	if err := sonic.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(payload.County.FIPS) != 5 {
		return "", fmt.Errorf("no county FIPS in response")
	}

	return payload.County.FIPS, nil
}
