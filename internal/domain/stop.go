package domain

// BoardType is the meal arrangement included with a stop's accommodation.
type BoardType string

const (
	BoardNone      BoardType = "None"
	BoardBreakfast BoardType = "Breakfast"
	BoardHalf      BoardType = "Half"
	BoardFull      BoardType = "Full"
)

// TravelType is the transport mode of a leg between consecutive stops.
type TravelType string

const (
	TravelCar   TravelType = "Car"
	TravelTrain TravelType = "Train"
	TravelPlane TravelType = "Plane"
)

// TravelDetails describes the transport leg arriving at a stop from the
// previous one. At most one leg is attached per stop.
type TravelDetails struct {
	Type    TravelType `json:"type"`
	Company string     `json:"company,omitempty"`
	Details string     `json:"details,omitempty"` // reservation number, times
	Cost    Cost       `json:"cost"`
}

// Stop is a single-location segment of an itinerary with arrival and
// departure dates. Seq is the 1-based position in the trip's stop list and is
// recomputed after every structural change — stops[i].Seq == i+1 always holds.
type Stop struct {
	ID            string         `json:"id"`
	Seq           int            `json:"seq"`
	Place         string         `json:"place"`
	Lat           float64        `json:"lat"`
	Lng           float64        `json:"lng"`
	Start         string         `json:"start"` // YYYY-MM-DD, inclusive
	End           string         `json:"end"`   // YYYY-MM-DD, inclusive
	Notes         string         `json:"notes,omitempty"`
	Accommodation string         `json:"accommodation,omitempty"`
	BoardType     BoardType      `json:"boardType,omitempty"`
	HotelCost     Cost           `json:"hotelCost"`
	DailyBudget   *Cost          `json:"dailyBudget,omitempty"`
	TravelToStop  *TravelDetails `json:"travelToThisStop,omitempty"`
}

// Flight is an independent flight booking on a trip. Flights are not ordered
// by Seq — display order is by departure timestamp.
type Flight struct {
	ID           string   `json:"id"`
	Airline      string   `json:"airline"`
	FlightNumber string   `json:"flightNumber"`
	From         string   `json:"from"`
	To           string   `json:"to"`
	FromIata     string   `json:"fromIata,omitempty"`
	ToIata       string   `json:"toIata,omitempty"`
	FromLat      *float64 `json:"fromLat,omitempty"`
	FromLng      *float64 `json:"fromLng,omitempty"`
	ToLat        *float64 `json:"toLat,omitempty"`
	ToLng        *float64 `json:"toLng,omitempty"`
	Departure    string   `json:"departure"` // RFC 3339
	Arrival      string   `json:"arrival,omitempty"`
	Cost         Cost     `json:"cost"`
	Notes        string   `json:"notes,omitempty"`
	Logo         string   `json:"logo,omitempty"` // airline logo URL
}

// Duration returns the flight's "3h 25m" duration label, or "" when the
// arrival time is unknown.
func (f Flight) Duration() string {
	return DurationLabel(f.Departure, f.Arrival)
}
