package domain

import (
	"math"
	"time"
)

// TotalCost sums every planned cost on the trip — flight costs, hotel costs,
// transport-leg costs, and all activity costs across all day plans — each
// converted into the trip's home currency first. Absent costs contribute
// zero; the function never fails on partial data.
func (t *Trip) TotalCost(rates map[string]float64) float64 {
	total := 0.0
	for i := range t.Flights {
		total += ConvertCost(&t.Flights[i].Cost, t.HomeCurrency, rates)
	}
	for i := range t.Stops {
		total += ConvertCost(&t.Stops[i].HotelCost, t.HomeCurrency, rates)
		if leg := t.Stops[i].TravelToStop; leg != nil {
			total += ConvertCost(&leg.Cost, t.HomeCurrency, rates)
		}
	}
	for _, plan := range t.DayPlans {
		for i := range plan.Activities {
			total += ConvertCost(&plan.Activities[i].Cost, t.HomeCurrency, rates)
		}
	}
	return total
}

// BudgetProgress returns planned cost as a percentage of the total budget.
// A zero budget reads as 0%, not a division error.
func (t *Trip) BudgetProgress(rates map[string]float64) float64 {
	if t.TotalBudget <= 0 {
		return 0
	}
	return t.TotalCost(rates) / t.TotalBudget * 100
}

// TogglePaid flips membership of itemID in the paid set: present is removed,
// absent is added. Toggling twice is a no-op.
func (t *Trip) TogglePaid(itemID string) {
	for i, id := range t.PaidItemIds {
		if id == itemID {
			t.PaidItemIds = append(t.PaidItemIds[:i], t.PaidItemIds[i+1:]...)
			return
		}
	}
	t.PaidItemIds = append(t.PaidItemIds, itemID)
}

// IsPaid reports whether itemID is in the paid set.
func (t *Trip) IsPaid(itemID string) bool {
	for _, id := range t.PaidItemIds {
		if id == itemID {
			return true
		}
	}
	return false
}

// DurationDays returns the trip length in days, spanning the earliest stop
// arrival to the latest stop departure, endpoints inclusive. Stops missing
// either date are ignored; no dated stops means zero.
func (t *Trip) DurationDays() int {
	var min, max time.Time
	found := false
	for _, s := range t.Stops {
		if s.Start == "" || s.End == "" {
			continue
		}
		start, err := time.Parse(DateLayout, s.Start)
		if err != nil {
			continue
		}
		end, err := time.Parse(DateLayout, s.End)
		if err != nil {
			continue
		}
		if !found {
			min, max = start, end
			found = true
			continue
		}
		if start.Before(min) {
			min = start
		}
		if end.After(max) {
			max = end
		}
	}
	if !found {
		return 0
	}
	return int(math.Ceil(math.Abs(max.Sub(min).Hours())/24)) + 1
}

// PackingProgress returns the packed percentage of the packing list,
// 0 for an empty list.
func (t *Trip) PackingProgress() float64 {
	if len(t.PackingList) == 0 {
		return 0
	}
	packed := 0
	for _, item := range t.PackingList {
		if item.Packed {
			packed++
		}
	}
	return float64(packed) / float64(len(t.PackingList)) * 100
}
