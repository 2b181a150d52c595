package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/wfahy/lifeops/internal/filter"
	"github.com/wfahy/lifeops/internal/models"
	"github.com/wfahy/lifeops/internal/validation"
)

type ReminderCmd struct {
	Add    ReminderAddCmd    `cmd:"" help:"Add a reminder."`
	List   ReminderListCmd   `cmd:"" help:"List reminders."`
	Edit   ReminderEditCmd   `cmd:"" help:"Change a reminder's text or due date."`
	Done   ReminderDoneCmd   `cmd:"" help:"Toggle a reminder's completed flag."`
	Assign ReminderAssignCmd `cmd:"" help:"Assign a reminder to someone."`
	Due    ReminderDueCmd    `cmd:"" help:"Show what's overdue or due today."`
	Delete ReminderDeleteCmd `cmd:"" help:"Delete a reminder."`
}

type ReminderAddCmd struct {
	Title string `arg:"" help:"What to remember."`
	Due   string `short:"d" help:"Due date (YYYY-MM-DD)."`
	For   string `short:"f" help:"Assignee (Will|Michelle, blank for unassigned)."`
}

func (c *ReminderAddCmd) Run(ctx *Context) error {
	if r := validation.Reminder(c.Title, c.Due, c.For); !r.Ok() {
		return r.Err()
	}

	reminder := models.Reminder{
		ID:         models.NewID(),
		Title:      strings.TrimSpace(c.Title),
		DueDate:    c.Due,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		AssignedTo: c.For,
	}

	reminders := ctx.Store.Reminders()
	reminders = append(reminders, reminder)
	ctx.Store.SaveReminders(reminders)

	fmt.Printf("Added reminder: %s (ID: %s)\n", reminder.Title, reminder.ID)
	return nil
}

type ReminderListCmd struct {
	Status string `short:"s" help:"Filter (All|Active|Completed)." default:"Active"`
	For    string `short:"f" help:"Filter by assignee (All|Unassigned|Will|Michelle)." default:"All"`
	Search string `short:"q" help:"Search reminder text."`
}

func (c *ReminderListCmd) Run(ctx *Context) error {
	reminders := ctx.Store.Reminders()
	filtered := filter.Reminders(reminders, filter.ReminderCriteria{
		Status:     c.Status,
		AssignedTo: c.For,
		Search:     c.Search,
	})

	fmt.Printf("Showing %d reminder%s\n", len(filtered), plural(len(filtered)))
	today := TodayDate()
	for _, r := range filtered {
		fmt.Printf("  %s %s%s%s (ID: %s)\n",
			checkbox(r.Completed), r.Title, reminderDueTag(r, today), assigneeTag(r), r.ID)
	}
	return nil
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func reminderDueTag(r models.Reminder, today string) string {
	switch {
	case r.Overdue(today):
		return fmt.Sprintf(" · OVERDUE (was due %s)", r.DueDate)
	case r.DueToday(today):
		return " · due today"
	case r.DueDate != "":
		return " · due " + r.DueDate
	}
	return ""
}

func assigneeTag(r models.Reminder) string {
	if r.AssignedTo == "" {
		return ""
	}
	return " · for " + r.AssignedTo
}

type ReminderEditCmd struct {
	ID    string `arg:"" help:"Reminder ID."`
	Title string `short:"t" help:"New text."`
	Due   string `short:"d" help:"New due date (YYYY-MM-DD, 'none' to clear)."`
}

func (c *ReminderEditCmd) Run(ctx *Context) error {
	due := c.Due
	if due == "none" {
		due = ""
	}
	if r := validation.Reminder("x", due, ""); !r.Ok() {
		return r.Err()
	}

	reminders := ctx.Store.Reminders()
	for i, r := range reminders {
		if r.ID == c.ID {
			if strings.TrimSpace(c.Title) != "" {
				reminders[i].Title = strings.TrimSpace(c.Title)
			}
			if c.Due != "" {
				reminders[i].DueDate = due
			}
			ctx.Store.SaveReminders(reminders)
			fmt.Printf("Updated reminder: %s\n", reminders[i].Title)
			return nil
		}
	}
	return fmt.Errorf("reminder not found: %s", c.ID)
}

type ReminderDoneCmd struct {
	ID string `arg:"" help:"Reminder ID."`
}

func (c *ReminderDoneCmd) Run(ctx *Context) error {
	reminders := ctx.Store.Reminders()
	for i, r := range reminders {
		if r.ID == c.ID {
			reminders[i].Completed = !r.Completed
			ctx.Store.SaveReminders(reminders)
			state := "reopened"
			if reminders[i].Completed {
				state = "completed"
			}
			fmt.Printf("Reminder %q %s\n", r.Title, state)
			return nil
		}
	}
	return fmt.Errorf("reminder not found: %s", c.ID)
}

type ReminderAssignCmd struct {
	ID  string `arg:"" help:"Reminder ID."`
	For string `arg:"" optional:"" help:"Assignee (blank to unassign)."`
}

func (c *ReminderAssignCmd) Run(ctx *Context) error {
	if r := validation.Reminder("x", "", c.For); !r.Ok() {
		return r.Err()
	}

	reminders := ctx.Store.Reminders()
	for i, r := range reminders {
		if r.ID == c.ID {
			reminders[i].AssignedTo = c.For
			ctx.Store.SaveReminders(reminders)
			if c.For == "" {
				fmt.Printf("Unassigned %q\n", r.Title)
			} else {
				fmt.Printf("Assigned %q to %s\n", r.Title, c.For)
			}
			return nil
		}
	}
	return fmt.Errorf("reminder not found: %s", c.ID)
}

// ReminderDueCmd is the quick morning glance: what slipped, what's on today.
type ReminderDueCmd struct{}

func (c *ReminderDueCmd) Run(ctx *Context) error {
	today := TodayDate()
	var overdue, dueToday []models.Reminder
	for _, r := range ctx.Store.Reminders() {
		switch {
		case r.Overdue(today):
			overdue = append(overdue, r)
		case r.DueToday(today):
			dueToday = append(dueToday, r)
		}
	}

	if len(overdue) == 0 && len(dueToday) == 0 {
		fmt.Println("Nothing overdue or due today.")
		return nil
	}
	if len(overdue) > 0 {
		fmt.Printf("Overdue (%d)\n", len(overdue))
		for _, r := range overdue {
			fmt.Printf("  %s (was due %s)%s\n", r.Title, r.DueDate, assigneeTag(r))
		}
	}
	if len(dueToday) > 0 {
		fmt.Printf("Due today (%d)\n", len(dueToday))
		for _, r := range dueToday {
			fmt.Printf("  %s%s\n", r.Title, assigneeTag(r))
		}
	}
	return nil
}

type ReminderDeleteCmd struct {
	ID  string `arg:"" help:"Reminder ID to delete."`
	Yes bool   `short:"y" help:"Skip confirmation."`
}

func (c *ReminderDeleteCmd) Run(ctx *Context) error {
	reminders := ctx.Store.Reminders()
	idx := -1
	for i, r := range reminders {
		if r.ID == c.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("reminder not found: %s", c.ID)
	}

	if !c.Yes && !Confirm(fmt.Sprintf("Delete reminder %q?", reminders[idx].Title)) {
		fmt.Println("Cancelled.")
		return nil
	}

	title := reminders[idx].Title
	reminders = append(reminders[:idx], reminders[idx+1:]...)
	ctx.Store.SaveReminders(reminders)
	fmt.Printf("Deleted reminder: %s\n", title)
	return nil
}
