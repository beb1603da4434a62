package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/travelflow/tripflow/internal/domain"
)

// Ledger and checklist operations: expenses, paid markers, packing list,
// saved links, and agency tasks.

// AddExpense records an ad hoc expense on a trip.
func (s *TripService) AddExpense(ctx context.Context, tripID string, exp domain.Expense) (*domain.Trip, error) {
	if strings.TrimSpace(exp.Description) == "" {
		return nil, fmt.Errorf("%w: expense description is required", domain.ErrValidation)
	}
	if exp.ID == "" {
		exp.ID = uuid.NewString()
	}
	if exp.Currency == "" {
		exp.Currency = domain.ReferenceCurrency
	}
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		t.Expenses = append(t.Expenses, exp)
		return nil
	})
}

// UpdateExpense replaces an expense by ID.
func (s *TripService) UpdateExpense(ctx context.Context, tripID string, exp domain.Expense) (*domain.Trip, error) {
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		for i := range t.Expenses {
			if t.Expenses[i].ID == exp.ID {
				t.Expenses[i] = exp
				return nil
			}
		}
		return fmt.Errorf("expense %s: %w", exp.ID, domain.ErrNotFound)
	})
}

// RemoveExpense deletes an expense by ID.
func (s *TripService) RemoveExpense(ctx context.Context, tripID, expenseID string) (*domain.Trip, error) {
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		for i := range t.Expenses {
			if t.Expenses[i].ID == expenseID {
				t.Expenses = append(t.Expenses[:i], t.Expenses[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("expense %s: %w", expenseID, domain.ErrNotFound)
	})
}

// TogglePaid flips a planned item (flight, stop, activity) in or out of the
// trip's paid set.
func (s *TripService) TogglePaid(ctx context.Context, tripID, itemID string) (*domain.Trip, error) {
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		t.TogglePaid(itemID)
		return nil
	})
}

// AddPackingItem appends one entry to the packing list.
func (s *TripService) AddPackingItem(ctx context.Context, tripID string, item domain.PackingItem) (*domain.Trip, error) {
	if strings.TrimSpace(item.Text) == "" {
		return nil, fmt.Errorf("%w: packing item text is required", domain.ErrValidation)
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		t.PackingList = append(t.PackingList, item)
		return nil
	})
}

// ApplyPackingTemplate appends a named starter list with fresh item IDs.
func (s *TripService) ApplyPackingTemplate(ctx context.Context, tripID, template string) (*domain.Trip, error) {
	items, ok := domain.PackingTemplates[template]
	if !ok {
		return nil, fmt.Errorf("%w: unknown packing template %q", domain.ErrValidation, template)
	}
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		for _, item := range items {
			item.ID = uuid.NewString()
			t.PackingList = append(t.PackingList, item)
		}
		return nil
	})
}

// TogglePacked flips the packed flag on a packing item.
func (s *TripService) TogglePacked(ctx context.Context, tripID, itemID string) (*domain.Trip, error) {
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		for i := range t.PackingList {
			if t.PackingList[i].ID == itemID {
				t.PackingList[i].Packed = !t.PackingList[i].Packed
				return nil
			}
		}
		return fmt.Errorf("packing item %s: %w", itemID, domain.ErrNotFound)
	})
}

// RemovePackingItem deletes a packing item by ID.
func (s *TripService) RemovePackingItem(ctx context.Context, tripID, itemID string) (*domain.Trip, error) {
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		for i := range t.PackingList {
			if t.PackingList[i].ID == itemID {
				t.PackingList = append(t.PackingList[:i], t.PackingList[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("packing item %s: %w", itemID, domain.ErrNotFound)
	})
}

// AddLink saves a reference URL on a trip.
func (s *TripService) AddLink(ctx context.Context, tripID string, link domain.LinkItem) (*domain.Trip, error) {
	if strings.TrimSpace(link.URL) == "" {
		return nil, fmt.Errorf("%w: link url is required", domain.ErrValidation)
	}
	if link.ID == "" {
		link.ID = uuid.NewString()
	}
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		t.Links = append(t.Links, link)
		return nil
	})
}

// RemoveLink deletes a saved link by ID.
func (s *TripService) RemoveLink(ctx context.Context, tripID, linkID string) (*domain.Trip, error) {
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		for i := range t.Links {
			if t.Links[i].ID == linkID {
				t.Links = append(t.Links[:i], t.Links[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("link %s: %w", linkID, domain.ErrNotFound)
	})
}

// AddTask adds a CRM checklist entry to a trip.
func (s *TripService) AddTask(ctx context.Context, tripID string, task domain.AgencyTask) (*domain.Trip, error) {
	if strings.TrimSpace(task.Text) == "" {
		return nil, fmt.Errorf("%w: task text is required", domain.ErrValidation)
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		t.AgencyTasks = append(t.AgencyTasks, task)
		return nil
	})
}

// ToggleTask flips a CRM task's completed flag.
func (s *TripService) ToggleTask(ctx context.Context, tripID, taskID string) (*domain.Trip, error) {
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		for i := range t.AgencyTasks {
			if t.AgencyTasks[i].ID == taskID {
				t.AgencyTasks[i].Completed = !t.AgencyTasks[i].Completed
				return nil
			}
		}
		return fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	})
}

// RemoveTask deletes a CRM task by ID.
func (s *TripService) RemoveTask(ctx context.Context, tripID, taskID string) (*domain.Trip, error) {
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		for i := range t.AgencyTasks {
			if t.AgencyTasks[i].ID == taskID {
				t.AgencyTasks = append(t.AgencyTasks[:i], t.AgencyTasks[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	})
}
