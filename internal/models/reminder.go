package models

import "time"

// Assignees for shared reminders. The empty string is the unassigned bucket.
var Assignees = []string{"Will", "Michelle"}

type Reminder struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	DueDate    string `json:"dueDate"` // YYYY-MM-DD or empty
	Completed  bool   `json:"completed"`
	CreatedAt  string `json:"createdAt"`
	AssignedTo string `json:"assignedTo"` // empty means unassigned
}

func (r Reminder) Normalize() Reminder {
	if r.ID == "" {
		r.ID = NewID()
	}
	if r.AssignedTo != "" && !containsStatus(Assignees, r.AssignedTo) {
		r.AssignedTo = ""
	}
	if r.CreatedAt == "" {
		r.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return r
}

// Overdue reports whether the reminder has a due date in the past and is
// still open. Dates compare lexically (YYYY-MM-DD).
func (r Reminder) Overdue(today string) bool {
	return r.DueDate != "" && r.DueDate < today && !r.Completed
}

// DueToday reports whether the reminder falls due on the given day.
func (r Reminder) DueToday(today string) bool {
	return r.DueDate != "" && r.DueDate == today && !r.Completed
}
