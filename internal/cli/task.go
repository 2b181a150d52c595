package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/wfahy/lifeops/internal/filter"
	"github.com/wfahy/lifeops/internal/models"
	"github.com/wfahy/lifeops/internal/validation"
)

type TaskCmd struct {
	Add    TaskAddCmd    `cmd:"" help:"Add a task."`
	List   TaskListCmd   `cmd:"" help:"Show the task board."`
	Status TaskStatusCmd `cmd:"" help:"Move a task to another lane."`
	Delete TaskDeleteCmd `cmd:"" help:"Delete a task."`
}

type TaskAddCmd struct {
	Title    string `arg:"" optional:"" help:"Task title (prompted when omitted)."`
	Notes    string `short:"n" help:"Optional notes."`
	Status   string `short:"s" help:"Lane (Inbox|Today|This Week|Later|Waiting|Done)." default:"Inbox"`
	Priority string `short:"p" help:"Priority (Low|Normal|High)." default:"Normal"`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if c.Title == "" {
		// Interactive add when invoked bare.
		statusOpts := make([]huh.Option[string], 0, len(models.TaskStatuses()))
		for _, s := range models.TaskStatuses() {
			statusOpts = append(statusOpts, huh.NewOption(string(s), string(s)))
		}
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Title").Value(&c.Title),
			huh.NewInput().Title("Notes (optional)").Value(&c.Notes),
			huh.NewSelect[string]().Title("Status").Options(statusOpts...).Value(&c.Status),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	if r := validation.Task(c.Title, c.Status, c.Priority); !r.Ok() {
		return r.Err()
	}

	task := models.Task{
		ID:        models.NewID(),
		Title:     strings.TrimSpace(c.Title),
		Notes:     strings.TrimSpace(c.Notes),
		Status:    models.TaskStatus(c.Status),
		Priority:  models.TaskPriority(c.Priority),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	tasks := ctx.Store.Tasks(ctx.Session.ProfileID)
	tasks = append(tasks, task)
	ctx.Store.SaveTasks(ctx.Session.ProfileID, tasks)

	fmt.Printf("Added task: %s (ID: %s)\n", task.Title, task.ID)
	return nil
}

type TaskListCmd struct {
	Status string `short:"s" help:"Filter by lane (or All)." default:"All"`
	Search string `short:"q" help:"Search title and notes."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	tasks := ctx.Store.Tasks(ctx.Session.ProfileID)
	filtered := filter.Tasks(tasks, filter.TaskCriteria{Status: c.Status, Search: c.Search})
	lanes := filter.GroupByStatus(filtered, models.TaskStatuses(), func(t models.Task) models.TaskStatus { return t.Status })

	fmt.Printf("Showing %d task%s\n\n", len(filtered), plural(len(filtered)))
	for _, status := range models.TaskStatuses() {
		lane := lanes[status]
		fmt.Printf("%s (%d)\n", status, len(lane))
		if len(lane) == 0 {
			fmt.Println("  No tasks in this lane.")
			continue
		}
		for _, t := range lane {
			extra := ""
			if t.Notes != "" {
				extra = " — " + t.Notes
			}
			fmt.Printf("  [%s] %s%s (ID: %s)\n", t.Priority, t.Title, extra, t.ID)
		}
	}
	return nil
}

type TaskStatusCmd struct {
	ID     string `arg:"" help:"Task ID."`
	Status string `arg:"" help:"New lane."`
}

func (c *TaskStatusCmd) Run(ctx *Context) error {
	if r := validation.Task("x", c.Status, ""); !r.Ok() {
		return r.Err()
	}

	tasks := ctx.Store.Tasks(ctx.Session.ProfileID)
	for i, t := range tasks {
		if t.ID == c.ID {
			tasks[i].Status = models.TaskStatus(c.Status)
			ctx.Store.SaveTasks(ctx.Session.ProfileID, tasks)
			fmt.Printf("Moved %q to %s\n", t.Title, c.Status)
			return nil
		}
	}
	return fmt.Errorf("task not found: %s", c.ID)
}

type TaskDeleteCmd struct {
	ID  string `arg:"" help:"Task ID to delete."`
	Yes bool   `short:"y" help:"Skip confirmation."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	tasks := ctx.Store.Tasks(ctx.Session.ProfileID)
	idx := -1
	for i, t := range tasks {
		if t.ID == c.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("task not found: %s", c.ID)
	}

	if !c.Yes && !Confirm(fmt.Sprintf("Delete task %q?", tasks[idx].Title)) {
		fmt.Println("Cancelled.")
		return nil
	}

	title := tasks[idx].Title
	tasks = append(tasks[:idx], tasks[idx+1:]...)
	ctx.Store.SaveTasks(ctx.Session.ProfileID, tasks)
	fmt.Printf("Deleted task: %s\n", title)
	return nil
}
