// Package validation checks user input before a mutation is attempted.
// Issues here are recoverable, user-correctable conditions — the caller
// reports them and leaves the stores untouched.
package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wfahy/lifeops/internal/models"
)

type IssueKind string

const (
	IssueMissingField  IssueKind = "missing_field"
	IssueInvalidNumber IssueKind = "invalid_number"
	IssueInvalidDate   IssueKind = "invalid_date"
	IssueInvalidPIN    IssueKind = "invalid_pin"
	IssueUnknownValue  IssueKind = "unknown_value"
)

type Issue struct {
	Kind        IssueKind
	Field       string
	Description string
}

type Result struct {
	Issues []Issue
}

func (r *Result) Ok() bool {
	return len(r.Issues) == 0
}

func (r *Result) add(kind IssueKind, field, format string, args ...interface{}) {
	r.Issues = append(r.Issues, Issue{
		Kind:        kind,
		Field:       field,
		Description: fmt.Sprintf(format, args...),
	})
}

// Err folds the issues into a single error, or nil when clean.
func (r *Result) Err() error {
	if r.Ok() {
		return nil
	}
	descs := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		descs[i] = issue.Description
	}
	return fmt.Errorf("%s", strings.Join(descs, "; "))
}

func Task(title string, status, priority string) Result {
	var r Result
	if strings.TrimSpace(title) == "" {
		r.add(IssueMissingField, "title", "task title is required")
	}
	if status != "" && !inDomain(models.TaskStatuses(), status) {
		r.add(IssueUnknownValue, "status", "unknown status %q", status)
	}
	if priority != "" && !inDomain(models.TaskPriorities(), priority) {
		r.add(IssueUnknownValue, "priority", "unknown priority %q", priority)
	}
	return r
}

func Order(customerName, item, price, dueDate, status, channel, fulfilment string) Result {
	var r Result
	if strings.TrimSpace(customerName) == "" {
		r.add(IssueMissingField, "customer", "customer name is required")
	}
	if strings.TrimSpace(item) == "" {
		r.add(IssueMissingField, "item", "item is required")
	}
	if strings.TrimSpace(price) != "" {
		if _, err := strconv.ParseFloat(strings.TrimSpace(price), 64); err != nil {
			r.add(IssueInvalidNumber, "price", "price must be a valid number or left empty")
		}
	}
	if err := checkDate(dueDate); err != nil {
		r.add(IssueInvalidDate, "due", "invalid due date: %s (expected YYYY-MM-DD)", dueDate)
	}
	if status != "" && !inDomain(models.OrderStatuses(), status) {
		r.add(IssueUnknownValue, "status", "unknown status %q", status)
	}
	if channel != "" && !inDomain(models.OrderChannels(), channel) {
		r.add(IssueUnknownValue, "channel", "unknown channel %q", channel)
	}
	if fulfilment != "" && !inDomain(models.Fulfilments(), fulfilment) {
		r.add(IssueUnknownValue, "fulfilment", "unknown fulfilment %q", fulfilment)
	}
	return r
}

func Reminder(title, dueDate, assignedTo string) Result {
	var r Result
	if strings.TrimSpace(title) == "" {
		r.add(IssueMissingField, "title", "reminder text is required")
	}
	if err := checkDate(dueDate); err != nil {
		r.add(IssueInvalidDate, "due", "invalid due date: %s (expected YYYY-MM-DD)", dueDate)
	}
	if assignedTo != "" && !inDomain(models.Assignees, assignedTo) {
		r.add(IssueUnknownValue, "assigned", "unknown assignee %q", assignedTo)
	}
	return r
}

func Profile(name, pin string) Result {
	var r Result
	if strings.TrimSpace(name) == "" {
		r.add(IssueMissingField, "name", "profile name is required")
	}
	if !models.ValidPIN(pin) {
		r.add(IssueInvalidPIN, "pin", "PIN must be 4 digits (or leave it blank)")
	}
	return r
}

// Date validates an optional YYYY-MM-DD value; empty is fine.
func Date(value string) Result {
	var r Result
	if err := checkDate(value); err != nil {
		r.add(IssueInvalidDate, "date", "invalid date: %s (expected YYYY-MM-DD)", value)
	}
	return r
}

func checkDate(value string) error {
	if value == "" {
		return nil
	}
	_, err := time.Parse("2006-01-02", value)
	return err
}

func inDomain[T ~string](domain []T, v string) bool {
	for _, d := range domain {
		if string(d) == v {
			return true
		}
	}
	return false
}
