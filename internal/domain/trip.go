// Package domain contains the core data types and derivation rules for the
// TripFlow application. This package has no I/O: every function here is
// synchronous, never blocks, and degrades to zero/empty/identity results on
// partial data instead of returning errors. It is imported by every other
// internal package (repo, service, handler).
package domain

import "encoding/json"

// TripStatus is the sales-pipeline stage of a client trip.
// There is no enforced transition graph — any stage is reachable from any
// other with a single assignment.
type TripStatus string

const (
	StatusInquiry   TripStatus = "inquiry"
	StatusDrafting  TripStatus = "drafting"
	StatusProposal  TripStatus = "proposal"
	StatusBooked    TripStatus = "booked"
	StatusCompleted TripStatus = "completed"
)

// PipelineStages lists all stages in display order for the Kanban board.
var PipelineStages = []TripStatus{
	StatusInquiry, StatusDrafting, StatusProposal, StatusBooked, StatusCompleted,
}

// ValidStatus reports whether s is one of the known pipeline stages.
func ValidStatus(s TripStatus) bool {
	for _, st := range PipelineStages {
		if s == st {
			return true
		}
	}
	return false
}

// Trip is the top-level aggregate: one client trip with its full itinerary,
// budget, and CRM metadata. A trip exclusively owns its stops, flights, day
// plans, and lists — nothing is shared by reference across trips. The
// repository persists trips as whole-value snapshots; every mutation replaces
// the entire record.
//
// JSON field names match the file export format, so an exported trip file
// round-trips through import unchanged.
type Trip struct {
	ID           string     `json:"id"`
	ClientName   string     `json:"clientName"`
	TripName     string     `json:"tripName"`
	LastModified int64      `json:"lastModified"` // unix milliseconds
	Status       TripStatus `json:"status"`

	// CRM data, private to the agent — never shown in client mode.
	AgencyNotes string       `json:"agencyNotes,omitempty"`
	AgencyTasks []AgencyTask `json:"agencyTasks,omitempty"`

	Step         int                `json:"step"` // wizard position
	Destinations []Destination      `json:"destinations"`
	Stops        []Stop             `json:"stops"`
	Flights      []Flight           `json:"flights"`
	DayPlans     map[string]DayPlan `json:"dayPlans"` // keyed by YYYY-MM-DD
	PackingList  []PackingItem      `json:"packingList"`
	Expenses     []Expense          `json:"expenses"`
	Links        []LinkItem         `json:"links"`
	HomeCurrency string             `json:"homeCurrency"`
	TotalBudget  float64            `json:"totalBudget"`
	Travelers    int                `json:"travelers"`

	// PaidItemIds tracks planned items (flights, stops) marked as paid.
	// Planned items double as ledger lines, so payment is a membership set
	// rather than a boolean on the item itself.
	PaidItemIds []string `json:"paidItemIds"`
}

// CloneTrip deep-copies a trip through its JSON form. Trips are plain data
// with no unexported state, so a marshal round-trip is a complete copy.
func CloneTrip(t *Trip) (*Trip, error) {
	raw, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	var cp Trip
	if err := json.Unmarshal(raw, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

// AgencyTask is a CRM checklist entry on a trip, independent of the itinerary.
type AgencyTask struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// LinkItem is a saved reference URL on a trip.
type LinkItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Expense is an ad hoc, unplanned cost entry. Planned costs live on stops,
// flights, and activities and are tracked via Trip.PaidItemIds instead.
type Expense struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	IsPaid      bool    `json:"isPaid"`
	// SourcePlannedID links an expense back to the planned item it settles.
	SourcePlannedID string `json:"sourcePlannedId,omitempty"`
}
