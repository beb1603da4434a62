package domain

import (
	"math"
	"strconv"
)

// This file is the itinerary consistency engine: it keeps Seq numbering
// contiguous and the derived day-plan map in sync with the authoritative stop
// list. Every structural stop mutation renumbers and re-syncs before
// returning — callers never observe a trip with stale derived state.

// reseqStops renumbers the stop list to 1..N in list order.
// Invariant: after any insert, delete, or reorder, stops[i].Seq == i+1.
func (t *Trip) reseqStops() {
	for i := range t.Stops {
		t.Stops[i].Seq = i + 1
	}
}

// SyncDayPlans inserts a day-plan entry for every date covered by a stop's
// start..end range that is not already present. Existing entries are never
// replaced or mutated, so activities and statuses survive date-range edits and
// the operation is idempotent. Dates no longer covered by any stop are left in
// place — re-expanding a range restores them with their activities intact.
func (t *Trip) SyncDayPlans() {
	if t.DayPlans == nil {
		t.DayPlans = make(map[string]DayPlan)
	}
	for _, stop := range t.Stops {
		if stop.Start == "" || stop.End == "" {
			continue
		}
		for _, d := range DaysInRange(stop.Start, stop.End) {
			if _, ok := t.DayPlans[d]; ok {
				continue
			}
			t.DayPlans[d] = DayPlan{
				Date:       d,
				StopID:     stop.ID,
				Status:     DayDefault,
				Activities: []Activity{},
			}
		}
	}
}

// PruneOrphanDayPlans removes day-plan entries whose dates are no longer
// covered by any stop. Nothing calls this automatically — orphans are kept by
// default so shrinking and re-expanding a stop's dates is lossless. Exposed
// for explicit cleanup only.
func (t *Trip) PruneOrphanDayPlans() {
	covered := make(map[string]bool)
	for _, stop := range t.Stops {
		for _, d := range DaysInRange(stop.Start, stop.End) {
			covered[d] = true
		}
	}
	for date := range t.DayPlans {
		if !covered[date] {
			delete(t.DayPlans, date)
		}
	}
}

// AddStop appends a stop to the end of the route, renumbers, and syncs day
// plans.
func (t *Trip) AddStop(stop Stop) {
	t.Stops = append(t.Stops, stop)
	t.reseqStops()
	t.SyncDayPlans()
}

// InsertStopAt inserts a stop at position i (0-based), shifting later stops
// down. An out-of-range index appends. When the new stop has no arrival date
// it inherits the departure date of the stop immediately before the insertion
// point; inserted at position 0 it is left blank.
func (t *Trip) InsertStopAt(i int, stop Stop) {
	if i < 0 || i > len(t.Stops) {
		i = len(t.Stops)
	}
	if stop.Start == "" && i > 0 {
		stop.Start = t.Stops[i-1].End
	}
	t.Stops = append(t.Stops, Stop{})
	copy(t.Stops[i+1:], t.Stops[i:])
	t.Stops[i] = stop
	t.reseqStops()
	t.SyncDayPlans()
}

// UpdateStop replaces the stop with the same id. Returns false when no stop
// with that id exists. Seq is preserved from the stored stop — position is
// changed only through MoveStop.
func (t *Trip) UpdateStop(stop Stop) bool {
	for i := range t.Stops {
		if t.Stops[i].ID == stop.ID {
			stop.Seq = t.Stops[i].Seq
			t.Stops[i] = stop
			t.SyncDayPlans()
			return true
		}
	}
	return false
}

// RemoveStop deletes a stop by id and renumbers the remainder. Day plans are
// not pruned. Returns false when no stop with that id exists.
func (t *Trip) RemoveStop(id string) bool {
	for i := range t.Stops {
		if t.Stops[i].ID == id {
			t.Stops = append(t.Stops[:i], t.Stops[i+1:]...)
			t.reseqStops()
			return true
		}
	}
	return false
}

// MoveStop swaps the stop at index with its neighbour one position up or
// down, then renumbers. Moving the first stop up or the last stop down is a
// no-op.
func (t *Trip) MoveStop(index int, up bool) {
	if index < 0 || index >= len(t.Stops) {
		return
	}
	target := index + 1
	if up {
		target = index - 1
	}
	if target < 0 || target >= len(t.Stops) {
		return
	}
	t.Stops[index], t.Stops[target] = t.Stops[target], t.Stops[index]
	t.reseqStops()
}

// StopIndex returns the 0-based position of the stop with the given id,
// or -1 when absent.
func (t *Trip) StopIndex(id string) int {
	for i := range t.Stops {
		if t.Stops[i].ID == id {
			return i
		}
	}
	return -1
}

// TransferActivity moves the activity with the given id to the day plan for
// date, updating its time block. The activity is removed from wherever it
// currently lives and appended to the destination's list — a transfer, never
// a copy. Unknown activity ids and missing destination days are no-ops.
// Returns true when the activity was moved.
func (t *Trip) TransferActivity(activityID, date string, block TimeBlock) bool {
	dest, ok := t.DayPlans[date]
	if !ok {
		return false
	}
	for d, plan := range t.DayPlans {
		for i, act := range plan.Activities {
			if act.ID != activityID {
				continue
			}
			plan.Activities = append(plan.Activities[:i], plan.Activities[i+1:]...)
			t.DayPlans[d] = plan
			act.TimeBlock = block
			// re-read: removing from the destination day itself must not
			// clobber the removal
			dest = t.DayPlans[date]
			dest.Activities = append(dest.Activities, act)
			t.DayPlans[date] = dest
			return true
		}
	}
	return false
}

// AddActivity appends an activity to the day plan for date. Returns false
// when no day plan exists for that date.
func (t *Trip) AddActivity(date string, act Activity) bool {
	plan, ok := t.DayPlans[date]
	if !ok {
		return false
	}
	plan.Activities = append(plan.Activities, act)
	t.DayPlans[date] = plan
	return true
}

// RemoveActivity deletes an activity by id from whichever day plan holds it.
func (t *Trip) RemoveActivity(activityID string) bool {
	for d, plan := range t.DayPlans {
		for i, act := range plan.Activities {
			if act.ID == activityID {
				plan.Activities = append(plan.Activities[:i], plan.Activities[i+1:]...)
				t.DayPlans[d] = plan
				return true
			}
		}
	}
	return false
}

// AdvanceActivity cycles the status of an activity (idea → booked → paid →
// idea). Returns false when the activity is not found.
func (t *Trip) AdvanceActivity(activityID string) bool {
	for d, plan := range t.DayPlans {
		for i := range plan.Activities {
			if plan.Activities[i].ID == activityID {
				plan.Activities[i].Status = AdvanceActivityStatus(plan.Activities[i].Status)
				t.DayPlans[d] = plan
				return true
			}
		}
	}
	return false
}

// ActivityCount returns the total number of activities across all day plans.
func (t *Trip) ActivityCount() int {
	n := 0
	for _, plan := range t.DayPlans {
		n += len(plan.Activities)
	}
	return n
}

// Leg is the display estimate for travelling between two consecutive stops.
// Legs are derived on every read from current stop positions, never stored.
type Leg struct {
	FromStopID string `json:"fromStopId"`
	ToStopID   string `json:"toStopId"`
	DistanceKm int    `json:"distanceKm"`
	Label      string `json:"label"` // e.g. "~4h drive", "~2h flight"
}

// Legs computes the distance and travel-time estimate between each pair of
// consecutive stops with valid coordinates. The ground estimate assumes
// 80 km/h; a stop whose arriving transport is a plane is relabeled at
// 800 km/h plus an hour of overhead.
func (t *Trip) Legs() []Leg {
	var legs []Leg
	for i := 1; i < len(t.Stops); i++ {
		prev, cur := t.Stops[i-1], t.Stops[i]
		if prev.Lat == 0 && prev.Lng == 0 || cur.Lat == 0 && cur.Lng == 0 {
			continue
		}
		km := DistanceKm(prev.Lat, prev.Lng, cur.Lat, cur.Lng)
		leg := Leg{FromStopID: prev.ID, ToStopID: cur.ID, DistanceKm: km}
		if cur.TravelToStop != nil && cur.TravelToStop.Type == TravelPlane {
			leg.Label = legLabel(int(math.Round(float64(km)/800))+1, "flight")
		} else if h := int(math.Round(float64(km) / 80)); h > 0 {
			leg.Label = legLabel(h, "drive")
		} else {
			leg.Label = "<1h drive"
		}
		legs = append(legs, leg)
	}
	return legs
}

func legLabel(hours int, mode string) string {
	if hours < 1 {
		return "<1h " + mode
	}
	return "~" + strconv.Itoa(hours) + "h " + mode
}
