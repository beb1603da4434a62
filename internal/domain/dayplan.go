package domain

// TimeBlock is the part of the day an activity is planned for.
type TimeBlock string

const (
	BlockMorning   TimeBlock = "morning"
	BlockAfternoon TimeBlock = "afternoon"
	BlockEvening   TimeBlock = "evening"
	BlockUnplanned TimeBlock = "unplanned"
)

// DayStatus is the user-settable state of a day plan.
// "default" is initial; there are no automatic transitions.
type DayStatus string

const (
	DayDefault  DayStatus = "default"
	DayComplete DayStatus = "complete"
	DayRest     DayStatus = "rest"
)

// ActivityStatus tracks an activity through idea → booked → paid.
// AdvanceActivityStatus cycles with wrap-around; direct edits may skip states.
type ActivityStatus string

const (
	ActivityIdea   ActivityStatus = "idea"
	ActivityBooked ActivityStatus = "booked"
	ActivityPaid   ActivityStatus = "paid"
)

// AdvanceActivityStatus returns the next status in the idea → booked → paid
// cycle, wrapping back to idea after paid.
func AdvanceActivityStatus(s ActivityStatus) ActivityStatus {
	switch s {
	case ActivityIdea:
		return ActivityBooked
	case ActivityBooked:
		return ActivityPaid
	default:
		return ActivityIdea
	}
}

// Activity is a single planned or completed action within a day plan.
// An activity belongs to exactly one day plan at a time; moving it between
// days or time blocks is a transfer of ownership, never a copy.
type Activity struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Time      string         `json:"time,omitempty"`
	TimeBlock TimeBlock      `json:"timeBlock"`
	Cost      Cost           `json:"cost"`
	Category  string         `json:"category,omitempty"` // sightseeing, food, adventure, relax, culture, shopping, transport
	Status    ActivityStatus `json:"status"`
	Lat       *float64       `json:"lat,omitempty"`
	Lng       *float64       `json:"lng,omitempty"`
	Notes     string         `json:"notes,omitempty"`
	Address   string         `json:"address,omitempty"`
	URL       string         `json:"url,omitempty"`
}

// DayPlan is the set of activities and status for one calendar date, linked
// to the stop whose date range covers that date. Day plans are generated
// incrementally from stop ranges — see Trip.SyncDayPlans.
type DayPlan struct {
	Date       string     `json:"date"` // YYYY-MM-DD, also the map key
	StopID     string     `json:"stopId"`
	Status     DayStatus  `json:"status"`
	Activities []Activity `json:"activities"`
}
