package sunrise

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/kgrigsby/event-weather/internal/domain"
	"github.com/kgrigsby/event-weather/internal/pkg/logger"
	"github.com/kgrigsby/event-weather/internal/pkg/metrics"
)

const providerName = "sunrise"

// fallbackTime is substituted for both sunrise and sunset when the
// provider is unreachable.
const fallbackTime = "12:00"

// clockPattern matches the seconds-bearing form the provider returns.
// Input without seconds deliberately does not match and normalizes to
// nil.
var clockPattern = regexp.MustCompile(`(?i)^(\d{1,2}:\d{2}):\d{2} (AM|PM)$`)

// Client fetches sunrise/sunset times from sunrisesunset.io.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

func NewClient(httpClient *http.Client, m *metrics.Metrics) *Client {
	return &Client{
		baseURL:    "https://api.sunrisesunset.io/json",
		httpClient: httpClient,
		metrics:    m,
	}
}

// Times returns normalized solar times for one coordinate and date.
// Upstream failure degrades to the fixed fallback instead of erroring.
func (c *Client) Times(ctx context.Context, lat, lng float64, date string) domain.SolarTimes {
	raw, err := c.fetch(ctx, lat, lng, date)
	if err != nil {
		logger.Warnf(ctx, "sunrise lookup failed, using fallback: %s", err.Error())
		c.metrics.Fallback(providerName)
		fb := fallbackTime
		return domain.SolarTimes{Sunrise: &fb, Sunset: &fb, Fallback: true}
	}

	c.metrics.Success(providerName)
	return domain.SolarTimes{
		Sunrise: NormalizeClockTime(raw.sunrise),
		Sunset:  NormalizeClockTime(raw.sunset),
	}
}

// NormalizeClockTime strips the seconds from an "H:MM:SS AM/PM" string.
// Anything not matching that exact shape yields nil.
func NormalizeClockTime(s string) *string {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return nil
	}

	normalized := m[1] + " " + strings.ToUpper(m[2])
	return &normalized
}

type rawTimes struct {
	sunrise string
	sunset  string
}

func (c *Client) fetch(ctx context.Context, lat, lng float64, date string) (*rawTimes, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lng", fmt.Sprintf("%f", lng))
	params.Set("date", date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("solar request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("solar status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var payload struct {
		Results struct {
			Sunrise string `json:"sunrise"`
			Sunset  string `json:"sunset"`
		} `json:"results"`
	}
	if err := sonic.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &rawTimes{sunrise: payload.Results.Sunrise, sunset: payload.Results.Sunset}, nil
}
