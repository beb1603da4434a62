// Package rates owns the process-wide currency rate table and the client that
// refreshes it from the external rate service. The table starts from the
// static fallback rates and is replaced wholesale on a successful fetch; a
// failed fetch keeps whatever table was last known good.
package rates

import (
	"sync"

	"github.com/travelflow/tripflow/internal/domain"
)

// Table is the shared, refreshable source of conversion rates. It is an
// explicitly owned container injected into the services that need it, never a
// bare package-level variable, so tests can swap it freely.
type Table struct {
	mu    sync.RWMutex
	rates map[string]float64
}

// NewTable returns a Table seeded with the static fallback rates.
func NewTable() *Table {
	t := &Table{}
	t.Replace(domain.DefaultRates)
	return t
}

// Snapshot returns a copy of the current rate table. Callers may hold the
// copy across a whole derivation pass without seeing a mid-computation swap.
func (t *Table) Snapshot() map[string]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]float64, len(t.rates))
	for k, v := range t.rates {
		out[k] = v
	}
	return out
}

// Replace swaps in a whole new table. The reference currency's own rate is
// pinned to 1 regardless of what the source reported.
func (t *Table) Replace(rates map[string]float64) {
	next := make(map[string]float64, len(rates)+1)
	for k, v := range rates {
		next[k] = v
	}
	next[domain.ReferenceCurrency] = 1

	t.mu.Lock()
	t.rates = next
	t.mu.Unlock()
}
