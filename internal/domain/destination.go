package domain

import "strings"

// Destination is a country or place picked in the first wizard step.
// Immutable once created, except for removal.
type Destination struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// NormalizePlaceName canonicalizes a country/place name for duplicate checks:
// lowercased, trimmed, known aliases collapsed, leading "the " stripped.
// Every comparison of destination names must go through this function.
func NormalizePlaceName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "united states of america", "usa", "us":
		return "united states"
	case "great britain", "united kingdom", "uk":
		return "uk"
	}
	return strings.TrimPrefix(n, "the ")
}

// HasDestination reports whether the trip already contains a destination with
// the same normalized name.
func (t *Trip) HasDestination(name string) bool {
	target := NormalizePlaceName(name)
	for _, d := range t.Destinations {
		if NormalizePlaceName(d.Name) == target {
			return true
		}
	}
	return false
}

// AddDestination appends a destination unless its normalized name is already
// present. Returns true when the destination was added.
func (t *Trip) AddDestination(d Destination) bool {
	if t.HasDestination(d.Name) {
		return false
	}
	t.Destinations = append(t.Destinations, d)
	return true
}

// RemoveDestination deletes a destination by id. Unknown ids are a no-op.
func (t *Trip) RemoveDestination(id string) {
	for i, d := range t.Destinations {
		if d.ID == id {
			t.Destinations = append(t.Destinations[:i], t.Destinations[i+1:]...)
			return
		}
	}
}
