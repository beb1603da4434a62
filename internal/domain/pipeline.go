package domain

import (
	"sort"
	"strings"
	"time"
)

// openPipelineStages are the stages whose budgets count toward pipeline
// value. Inquiries are too speculative to count; completed trips are done.
var openPipelineStages = map[TripStatus]bool{
	StatusDrafting: true,
	StatusProposal: true,
	StatusBooked:   true,
}

// PipelineValue sums TotalBudget over every trip in an open pipeline stage
// (drafting, proposal, booked). Budgets, not actual costs: the pipeline view
// measures potential revenue.
func PipelineValue(trips []Trip) float64 {
	total := 0.0
	for i := range trips {
		if openPipelineStages[trips[i].Status] {
			total += trips[i].TotalBudget
		}
	}
	return total
}

// StageSummary is one Kanban column: the trips in a stage and their combined
// budget.
type StageSummary struct {
	Stage TripStatus `json:"stage"`
	Count int        `json:"count"`
	Value float64    `json:"value"`
}

// GroupByStage buckets trips into the fixed pipeline stages in display order.
// Trips with an unknown/empty status fall into inquiry, matching how the
// board renders legacy records. Recomputed on every read, never cached.
func GroupByStage(trips []Trip) []StageSummary {
	summaries := make([]StageSummary, len(PipelineStages))
	index := make(map[TripStatus]int, len(PipelineStages))
	for i, stage := range PipelineStages {
		summaries[i] = StageSummary{Stage: stage}
		index[stage] = i
	}
	for i := range trips {
		pos, ok := index[trips[i].Status]
		if !ok {
			pos = index[StatusInquiry]
		}
		summaries[pos].Count++
		summaries[pos].Value += trips[i].TotalBudget
	}
	return summaries
}

// Departure pairs a trip with its earliest dated departure.
type Departure struct {
	TripID     string `json:"tripId"`
	ClientName string `json:"clientName"`
	TripName   string `json:"tripName"`
	Date       string `json:"date"` // YYYY-MM-DD
}

// UpcomingDepartures returns future departures sorted soonest-first. A trip's
// departure date is the earliest of its stop arrivals and flight departures.
// Completed trips and trips with no dated itinerary are excluded.
func UpcomingDepartures(trips []Trip, now time.Time) []Departure {
	today := now.Format(DateLayout)
	var out []Departure
	for i := range trips {
		t := &trips[i]
		if t.Status == StatusCompleted {
			continue
		}
		earliest := ""
		for _, s := range t.Stops {
			if s.Start != "" && (earliest == "" || s.Start < earliest) {
				earliest = s.Start
			}
		}
		for _, f := range t.Flights {
			if f.Departure == "" {
				continue
			}
			// flight departures are RFC 3339; compare on the date part
			d := f.Departure
			if len(d) >= len(DateLayout) {
				d = d[:len(DateLayout)]
			}
			if earliest == "" || d < earliest {
				earliest = d
			}
		}
		if earliest == "" || earliest < today {
			continue
		}
		out = append(out, Departure{
			TripID:     t.ID,
			ClientName: t.ClientName,
			TripName:   t.TripName,
			Date:       earliest,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// FilterTrips returns the trips whose client or trip name contains the query,
// case-insensitively. An empty query returns the input unchanged.
func FilterTrips(trips []Trip, query string) []Trip {
	if query == "" {
		return trips
	}
	q := strings.ToLower(query)
	var out []Trip
	for i := range trips {
		if strings.Contains(strings.ToLower(trips[i].ClientName), q) ||
			strings.Contains(strings.ToLower(trips[i].TripName), q) {
			out = append(out, trips[i])
		}
	}
	return out
}
