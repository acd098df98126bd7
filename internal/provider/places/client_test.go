package places

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kgrigsby/event-weather/internal/pkg/constants"
	"github.com/kgrigsby/event-weather/internal/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 2 * time.Second},
		metrics:    metrics.NewForTesting(),
	}
}

func TestTextSearch_MissingAPIKey(t *testing.T) {
	c := testClient("", "http://example.invalid")

	_, err := c.TextSearch(context.Background(), "Paris")
	require.Error(t, err)
	assert.ErrorIs(t, err, constants.ErrAPIKeyNotConfigured)
	assert.Equal(t, "API key not configured", err.Error())
}

func TestTextSearch_FirstResultWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Paris", r.URL.Query().Get("query"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"name":"Paris","formatted_address":"Paris, France","geometry":{"location":{"lat":48.8566,"lng":2.3522}}},
			{"name":"Paris","formatted_address":"Paris, TX, USA","geometry":{"location":{"lat":33.66,"lng":-95.55}}}
		]}`))
	}))
	defer srv.Close()

	c := testClient("test-key", srv.URL)
	location, err := c.TextSearch(context.Background(), "Paris")
	require.NoError(t, err)

	assert.Equal(t, "Paris", location.Name)
	assert.Equal(t, "Paris, France", location.FormattedAddress)
	assert.Equal(t, 48.8566, location.Lat)
	assert.Equal(t, 2.3522, location.Lng)
}

func TestTextSearch_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	c := testClient("test-key", srv.URL)
	_, err := c.TextSearch(context.Background(), "nowhere at all")
	assert.True(t, errors.Is(err, constants.ErrNoGeocodeResults))
}

func TestTextSearch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := testClient("test-key", srv.URL)
	_, err := c.TextSearch(context.Background(), "Paris")
	assert.Error(t, err)
}
