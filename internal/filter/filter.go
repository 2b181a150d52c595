// Package filter derives the visible subset of a collection from independent
// criteria ANDed together, and distributes items into status lanes for the
// board views.
package filter

import (
	"strings"

	"github.com/wfahy/lifeops/internal/models"
)

// All is the criteria value that disables a predicate.
const All = "All"

// Unassigned matches reminders whose assignee is empty. It is distinct from
// All, which skips the assignment predicate entirely.
const Unassigned = "Unassigned"

// GroupByStatus distributes items into one lane per status. Every status in
// the domain gets a lane, empty or not — the board renders zero-item lanes.
func GroupByStatus[T any, S ~string](items []T, domain []S, status func(T) S) map[S][]T {
	lanes := make(map[S][]T, len(domain))
	for _, s := range domain {
		lanes[s] = []T{}
	}
	for _, item := range items {
		s := status(item)
		lanes[s] = append(lanes[s], item)
	}
	return lanes
}

type TaskCriteria struct {
	Status string // All or a models.TaskStatus value
	Search string // case-insensitive substring over title and notes
}

func (c TaskCriteria) Match(t models.Task) bool {
	if c.Status != "" && c.Status != All && string(t.Status) != c.Status {
		return false
	}
	return matchSearch(c.Search, t.Title, t.Notes)
}

func Tasks(tasks []models.Task, c TaskCriteria) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if c.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

type OrderCriteria struct {
	Status     string
	Channel    string
	Fulfilment string
	Search     string // over customer name, item, notes
}

func (c OrderCriteria) Match(o models.Order) bool {
	if c.Status != "" && c.Status != All && string(o.Status) != c.Status {
		return false
	}
	if c.Channel != "" && c.Channel != All && string(o.Channel) != c.Channel {
		return false
	}
	if c.Fulfilment != "" && c.Fulfilment != All && string(o.Fulfilment) != c.Fulfilment {
		return false
	}
	return matchSearch(c.Search, o.CustomerName, o.Item, o.Notes)
}

func Orders(orders []models.Order, c OrderCriteria) []models.Order {
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if c.Match(o) {
			out = append(out, o)
		}
	}
	return out
}

// Reminder status filter values.
const (
	ReminderActive    = "Active"
	ReminderCompleted = "Completed"
)

type ReminderCriteria struct {
	Status     string // All, Active or Completed
	AssignedTo string // All, Unassigned or an assignee name
	Search     string // over title
}

func (c ReminderCriteria) Match(r models.Reminder) bool {
	switch c.Status {
	case ReminderActive:
		if r.Completed {
			return false
		}
	case ReminderCompleted:
		if !r.Completed {
			return false
		}
	}
	if c.AssignedTo != "" && c.AssignedTo != All {
		if c.AssignedTo == Unassigned {
			if r.AssignedTo != "" {
				return false
			}
		} else if r.AssignedTo != c.AssignedTo {
			return false
		}
	}
	return matchSearch(c.Search, r.Title)
}

func Reminders(reminders []models.Reminder, c ReminderCriteria) []models.Reminder {
	out := make([]models.Reminder, 0, len(reminders))
	for _, r := range reminders {
		if c.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

func matchSearch(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
