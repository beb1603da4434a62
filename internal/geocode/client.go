// Package geocode resolves free-text place names to coordinates through a
// nominatim-style geocoding API. The core only ever consumes the first or
// user-selected candidate; lookup failures degrade to an empty candidate
// list and never block local state changes.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/travelflow/tripflow/internal/observability"
)

// DefaultBaseURL is the public geocoding endpoint.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

// Candidate is one geocoding result. Name is the short display name;
// Country is the resolved country name when the result is country-typed.
type Candidate struct {
	Name    string  `json:"name"`
	Country string  `json:"country,omitempty"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// JSONCache matches cache.Cache; nil disables caching.
type JSONCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
}

// Client queries the geocoding service.
// Requests are limited to one per second — the public endpoint's usage policy.
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
		rl:    rate.NewLimiter(rate.Limit(1), 1),
		cache: cache,
		ttl:   ttl,
	}
}

// wire shape of a nominatim search result
type result struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	AddressType string `json:"addresstype"`
	Address     struct {
		Country string `json:"country"`
	} `json:"address"`
}

// Search returns up to limit candidates for the query. countriesOnly
// restricts results to country-typed matches (used by the destination
// picker). Place names resolve to their first candidate's coordinates.
func (c *Client) Search(ctx context.Context, query string, limit int, countriesOnly bool) ([]Candidate, error) {
	if limit <= 0 {
		limit = 5
	}
	key := fmt.Sprintf("geocode:%t:%d:%s", countriesOnly, limit, query)
	if c.cache != nil {
		var cached []Candidate
		if ok, err := c.cache.Get(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("format", "json")
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("accept-language", "en")
	q.Set("addressdetails", "1")
	if countriesOnly {
		q.Set("featuretype", "country")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "tripflow/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("geocode", "error", time.Since(start))
		return nil, fmt.Errorf("geocode.Client.Search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		observability.ObserveExternal("geocode", "error", time.Since(start))
		return nil, fmt.Errorf("geocode.Client.Search: unexpected status %d", resp.StatusCode)
	}
	observability.ObserveExternal("geocode", "ok", time.Since(start))

	var results []result
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("geocode.Client.Search: decode: %w", err)
	}

	candidates := make([]Candidate, 0, len(results))
	for _, r := range results {
		if countriesOnly && r.AddressType != "country" {
			continue
		}
		lat, err1 := strconv.ParseFloat(r.Lat, 64)
		lng, err2 := strconv.ParseFloat(r.Lon, 64)
		if err1 != nil || err2 != nil {
			continue
		}
		name := r.DisplayName
		if r.Address.Country != "" && countriesOnly {
			name = r.Address.Country
		}
		candidates = append(candidates, Candidate{
			Name:    name,
			Country: r.Address.Country,
			Lat:     lat,
			Lng:     lng,
		})
	}

	if c.cache != nil {
		_ = c.cache.Set(ctx, key, candidates, c.ttl)
	}
	return candidates, nil
}

// First returns the first candidate for the query, or false when there is
// none. This is the selection rule the itinerary editor uses when a stop is
// saved without coordinates.
func (c *Client) First(ctx context.Context, query string) (Candidate, bool, error) {
	candidates, err := c.Search(ctx, query, 1, false)
	if err != nil || len(candidates) == 0 {
		return Candidate{}, false, err
	}
	return candidates[0], true, nil
}
