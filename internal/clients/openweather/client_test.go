package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habeeblht17/mcp-tools-server/internal/config"
	"github.com/habeeblht17/mcp-tools-server/pkg/errors"
)

func testConfig(baseURL string) config.WeatherConfig {
	return config.WeatherConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Timeout: time.Second,
	}
}

func TestCurrentByLocation(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/weather", r.URL.Path)
			assert.Equal(t, "London", r.URL.Query().Get("q"))
			assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
			assert.Equal(t, "metric", r.URL.Query().Get("units"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"name": "London",
				"sys": {"country": "GB"},
				"main": {"temp": 15.5, "feels_like": 14.2, "humidity": 72},
				"weather": [{"description": "light rain"}],
				"wind": {"speed": 4.6}
			}`))
		}))
		defer srv.Close()

		client := New(testConfig(srv.URL))
		current, err := client.CurrentByLocation(context.Background(), "London")
		require.NoError(t, err)

		assert.Equal(t, "London", current.Name)
		assert.Equal(t, "GB", current.Sys.Country)
		assert.Equal(t, 15.5, current.Main.Temp)
		assert.Equal(t, 72, current.Main.Humidity)
		require.Len(t, current.Weather, 1)
		assert.Equal(t, "light rain", current.Weather[0].Description)
	})

	t.Run("missing API key performs no network call", func(t *testing.T) {
		var calls int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&calls, 1)
		}))
		defer srv.Close()

		cfg := testConfig(srv.URL)
		cfg.APIKey = ""

		_, err := New(cfg).CurrentByLocation(context.Background(), "London")
		assert.ErrorIs(t, err, errors.ErrNotConfigured)
		assert.Equal(t, int64(0), atomic.LoadInt64(&calls))
	})

	t.Run("404 maps to not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := New(testConfig(srv.URL)).CurrentByLocation(context.Background(), "Nowhereville")
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("non-404 error carries status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
		}))
		defer srv.Close()

		_, err := New(testConfig(srv.URL)).CurrentByLocation(context.Background(), "London")

		var statusErr *errors.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
		assert.Contains(t, statusErr.Body, "Invalid API key")
	})

	t.Run("transport failure maps to unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // refuse connections

		_, err := New(testConfig(srv.URL)).CurrentByLocation(context.Background(), "London")
		assert.ErrorIs(t, err, errors.ErrUnavailable)
	})
}
