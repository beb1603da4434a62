// Package weather fetches short daily forecasts for stop coordinates from an
// open-meteo-style API. Forecasts are display-only: they never influence any
// derivation, and a failed fetch simply yields no forecast.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/time/rate"

	"github.com/travelflow/tripflow/internal/observability"
)

// DefaultBaseURL is the public forecast endpoint.
const DefaultBaseURL = "https://api.open-meteo.com"

// Day is one day of forecast: date, max temperature, and a WMO weather code.
type Day struct {
	Date    string  `json:"date"`
	MaxTemp float64 `json:"maxTemp"`
	Code    int     `json:"code"`
}

// JSONCache matches cache.Cache; nil disables caching.
type JSONCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
}

// Client queries the forecast service.
type Client struct {
	base  string
	hc    *http.Client
	rl    *rate.Limiter
	cache JSONCache
	ttl   time.Duration
}

// New builds a Client for the given base URL ("" uses DefaultBaseURL).
func New(base string, cache JSONCache, ttl time.Duration) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		base:  base,
		hc:    &http.Client{Timeout: 10 * time.Second},
		rl:    rate.NewLimiter(rate.Limit(5), 5),
		cache: cache,
		ttl:   ttl,
	}
}

type forecastResponse struct {
	Daily struct {
		Time           []string  `json:"time"`
		Temperature2mM []float64 `json:"temperature_2m_max"`
		WeatherCode    []int     `json:"weather_code"`
	} `json:"daily"`
}

// Forecast returns the daily forecast for the given coordinates.
// One transient retry; beyond that the caller degrades to "no forecast".
func (c *Client) Forecast(ctx context.Context, lat, lng float64) ([]Day, error) {
	key := fmt.Sprintf("weather:%.3f:%.3f", lat, lng)
	if c.cache != nil {
		var cached []Day
		if ok, err := c.cache.Get(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	url := fmt.Sprintf(
		"%s/v1/forecast?latitude=%.4f&longitude=%.4f&daily=temperature_2m_max,weather_code&timezone=auto",
		c.base, lat, lng,
	)

	var days []Day
	backoff := retry.WithMaxRetries(1, retry.NewConstant(time.Second))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := c.rl.Wait(ctx); err != nil {
			return err
		}
		start := time.Now()
		got, err := c.fetchOnce(ctx, url)
		if err != nil {
			observability.ObserveExternal("weather", "error", time.Since(start))
			return retry.RetryableError(err)
		}
		observability.ObserveExternal("weather", "ok", time.Since(start))
		days = got
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("weather.Client.Forecast: %w", err)
	}

	if c.cache != nil {
		_ = c.cache.Set(ctx, key, days, c.ttl)
	}
	return days, nil
}

func (c *Client) fetchOnce(ctx context.Context, url string) ([]Day, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	days := make([]Day, 0, len(body.Daily.Time))
	for i, date := range body.Daily.Time {
		d := Day{Date: date}
		if i < len(body.Daily.Temperature2mM) {
			d.MaxTemp = body.Daily.Temperature2mM[i]
		}
		if i < len(body.Daily.WeatherCode) {
			d.Code = body.Daily.WeatherCode[i]
		}
		days = append(days, d)
	}
	return days, nil
}
