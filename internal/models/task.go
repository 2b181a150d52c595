package models

import "time"

type TaskStatus string

const (
	TaskInbox    TaskStatus = "Inbox"
	TaskToday    TaskStatus = "Today"
	TaskThisWeek TaskStatus = "This Week"
	TaskLater    TaskStatus = "Later"
	TaskWaiting  TaskStatus = "Waiting"
	TaskDone     TaskStatus = "Done"
)

// TaskStatuses is the board lane order. The first entry is the fallback for
// records loaded with a missing or unrecognized status.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{TaskInbox, TaskToday, TaskThisWeek, TaskLater, TaskWaiting, TaskDone}
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityNormal TaskPriority = "Normal"
	TaskPriorityHigh   TaskPriority = "High"
)

func TaskPriorities() []TaskPriority {
	return []TaskPriority{TaskPriorityLow, TaskPriorityNormal, TaskPriorityHigh}
}

type Task struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Notes     string       `json:"notes"`
	Status    TaskStatus   `json:"status"`
	Priority  TaskPriority `json:"priority"`
	CreatedAt string       `json:"createdAt"` // RFC3339, stable sort key
}

// Normalize fills defaults for fields older revisions of the data may lack.
func (t Task) Normalize() Task {
	if t.ID == "" {
		t.ID = NewID()
	}
	if !validTaskStatus(t.Status) {
		t.Status = TaskInbox
	}
	if !validTaskPriority(t.Priority) {
		t.Priority = TaskPriorityNormal
	}
	if t.CreatedAt == "" {
		t.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return t
}

func validTaskStatus(s TaskStatus) bool {
	for _, v := range TaskStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

func validTaskPriority(p TaskPriority) bool {
	for _, v := range TaskPriorities() {
		if p == v {
			return true
		}
	}
	return false
}
