package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/time/rate"

	"github.com/travelflow/tripflow/internal/domain"
	"github.com/travelflow/tripflow/internal/observability"
)

// DefaultBaseURL is the public exchange-rate service queried for live rates.
const DefaultBaseURL = "https://api.frankfurter.app"

// Client fetches the latest rate table, expressed against the reference
// currency, from a frankfurter-style API.
type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

// NewClient builds a Client for the given base URL ("" uses DefaultBaseURL).
// Outbound calls are rate-limited client-side; rate data changes daily, so
// one request per second is already generous.
func NewClient(base string) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		base: base,
		hc:   &http.Client{Timeout: 15 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(1), 2),
	}
}

// latestResponse is the wire shape of GET /latest.
type latestResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// Fetch returns the latest rate table. Transient failures are retried with
// capped exponential backoff; a final failure is returned to the caller, who
// keeps the previous table.
func (c *Client) Fetch(ctx context.Context) (map[string]float64, error) {
	url := fmt.Sprintf("%s/latest?from=%s", c.base, domain.ReferenceCurrency)

	var out map[string]float64
	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := c.rl.Wait(ctx); err != nil {
			return err
		}
		start := time.Now()
		rates, err := c.fetchOnce(ctx, url)
		if err != nil {
			observability.ObserveExternal("rates", "error", time.Since(start))
			return retry.RetryableError(err)
		}
		observability.ObserveExternal("rates", "ok", time.Since(start))
		out = rates
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("rates.Client.Fetch: %w", err)
	}
	return out, nil
}

func (c *Client) fetchOnce(ctx context.Context, url string) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if len(body.Rates) == 0 {
		return nil, fmt.Errorf("empty rate table in response")
	}
	return body.Rates, nil
}

// Fetcher is the part of Client the Service depends on.
type Fetcher interface {
	Fetch(ctx context.Context) (map[string]float64, error)
}

// JSONCache is the cache surface the Service depends on; satisfied by
// cache.Cache. A nil cache disables caching.
type JSONCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
}

const cacheKey = "rates:latest"

// Service ties the rate table to its refresh source. Refresh failures never
// surface to users: the table simply stays on its last known values.
type Service struct {
	table  *Table
	client Fetcher
	cache  JSONCache
	ttl    time.Duration
	log    *slog.Logger
}

// NewService wires a Service. cache may be nil.
func NewService(table *Table, client Fetcher, cache JSONCache, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{table: table, client: client, cache: cache, ttl: ttl, log: log}
}

// Snapshot returns the current rate table copy.
func (s *Service) Snapshot() map[string]float64 {
	return s.table.Snapshot()
}

// Refresh replaces the working table with fresh rates, trying the cache
// before the network. On any failure the previous table is kept and the
// error is logged, not propagated — stale rates are better than no app.
// Returns true when the table was updated.
func (s *Service) Refresh(ctx context.Context) bool {
	if s.cache != nil {
		var cached map[string]float64
		if ok, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && ok && len(cached) > 0 {
			s.table.Replace(cached)
			return true
		}
	}

	fresh, err := s.client.Fetch(ctx)
	if err != nil {
		s.log.Warn("rate refresh failed, keeping previous table", "error", err)
		return false
	}

	s.table.Replace(fresh)
	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, fresh, s.ttl); err != nil {
			s.log.Warn("rate cache write failed", "error", err)
		}
	}
	return true
}
