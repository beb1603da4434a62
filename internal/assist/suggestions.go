package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/travelflow/tripflow/internal/domain"
)

// PackingGroup is one category of suggested packing items.
type PackingGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// StopSuggestion is a proposed next stop for the route.
type StopSuggestion struct {
	Name   string  `json:"name"`
	Reason string  `json:"reason"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
}

// Phrase is a local-language phrase with translation and pronunciation.
type Phrase struct {
	Text          string `json:"text"`
	Translation   string `json:"translation"`
	Pronunciation string `json:"pronunciation"`
}

// ChatMessage is one turn of assistant conversation history.
type ChatMessage struct {
	Role string `json:"role"` // "user" or "assistant"
	Text string `json:"text"`
}

// SuggestPacking asks for a packing list for a location and month, grouped by
// category. Returns nil on any malformed output.
func (c *Client) SuggestPacking(ctx context.Context, location, month string) ([]PackingGroup, error) {
	prompt := fmt.Sprintf(
		"Generate a packing list for a trip to %s in %s. "+
			"Group items by category (Clothing, Toiletries, Electronics, Documents, Other). "+
			`Respond with only a JSON array of {"category": string, "items": [string]}.`,
		location, month,
	)
	text, err := c.generate(ctx, prompt, 400)
	if err != nil {
		return nil, err
	}
	var groups []PackingGroup
	if !parseJSON(text, &groups) {
		return nil, nil
	}
	return groups, nil
}

// SuggestNextStop proposes a stop to follow the current route. Returns nil
// when the model produces nothing usable.
func (c *Client) SuggestNextStop(ctx context.Context, stops []domain.Stop) (*StopSuggestion, error) {
	if len(stops) == 0 {
		return nil, nil
	}
	var route []string
	for _, s := range stops {
		route = append(route, s.Place)
	}
	prompt := fmt.Sprintf(
		"A traveller's route so far: %s. Suggest one logical next stop. "+
			`Respond with only a JSON object {"name": string, "reason": string, "lat": number, "lng": number}.`,
		strings.Join(route, " -> "),
	)
	text, err := c.generate(ctx, prompt, 200)
	if err != nil {
		return nil, err
	}
	var s StopSuggestion
	if !parseJSON(text, &s) || s.Name == "" {
		return nil, nil
	}
	return &s, nil
}

// SuggestTasks proposes CRM follow-up tasks for a trip in its current
// pipeline stage.
func (c *Client) SuggestTasks(ctx context.Context, trip *domain.Trip) ([]string, error) {
	prompt := fmt.Sprintf(
		"A travel agent is managing a trip %q for client %q, currently in the %q sales stage "+
			"with %d stops and %d flights booked. Suggest up to 5 short follow-up tasks. "+
			"Respond with only a JSON array of strings.",
		trip.TripName, trip.ClientName, trip.Status, len(trip.Stops), len(trip.Flights),
	)
	text, err := c.generate(ctx, prompt, 250)
	if err != nil {
		return nil, err
	}
	var tasks []string
	if !parseJSON(text, &tasks) {
		return nil, nil
	}
	return tasks, nil
}

// Phrases returns useful local phrases for a place.
func (c *Client) Phrases(ctx context.Context, location string) ([]Phrase, error) {
	prompt := fmt.Sprintf(
		"List 8 useful travel phrases in the local language of %s. "+
			`Respond with only a JSON array of {"text": string, "translation": string, "pronunciation": string}.`,
		location,
	)
	text, err := c.generate(ctx, prompt, 400)
	if err != nil {
		return nil, err
	}
	var phrases []Phrase
	if !parseJSON(text, &phrases) {
		return nil, nil
	}
	return phrases, nil
}

// Chat answers a free-text question, given prior history. A nil trip asks
// without trip context. Returns "" when the assistant has nothing to say.
func (c *Client) Chat(ctx context.Context, trip *domain.Trip, history []ChatMessage, message string) (string, error) {
	var b strings.Builder
	if trip == nil {
		b.WriteString("You are a travel-planning assistant.\n")
	} else {
		fmt.Fprintf(&b, "You are a travel-planning assistant for the trip %q (client %q).\n", trip.TripName, trip.ClientName)
		if len(trip.Stops) > 0 {
			b.WriteString("Route: ")
			for i, s := range trip.Stops {
				if i > 0 {
					b.WriteString(" -> ")
				}
				b.WriteString(s.Place)
				if s.Start != "" {
					fmt.Fprintf(&b, " (%s to %s)", s.Start, s.End)
				}
			}
			b.WriteString("\n")
		}
	}
	for _, m := range history {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Text)
	}
	fmt.Fprintf(&b, "user: %s\nassistant:", message)

	return c.generate(ctx, b.String(), 500)
}
