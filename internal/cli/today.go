package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/wfahy/lifeops/internal/models"
	"github.com/wfahy/lifeops/internal/stats"
	"github.com/wfahy/lifeops/internal/validation"
)

// TodayCmd shows the home dashboard panel: today's log, streaks, weekly
// summary and the open counts from the other boards.
type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	today := ctx.Store.Today(TodayDate())
	history := ctx.Store.History()

	fmt.Printf("Profile: %s\n", ctx.Session.DisplayName())
	fmt.Printf("Day: %s\n\n", today.Date)

	if !ctx.Session.MichelleMode() {
		printVitals(today)
		printStreaks(history, today)
	}
	printWeeklySummary(history, today)
	printCounts(ctx)
	printOpenOps(today)
	return nil
}

func printVitals(today models.DailyLog) {
	orDash := func(s string) string {
		if s == "" {
			return "—"
		}
		return s
	}
	fmt.Println("Vitals")
	fmt.Printf("  Weight:    %s kg\n", orDash(today.WeightKg))
	fmt.Printf("  Sleep:     %s hrs\n", orDash(today.SleepHours))
	fmt.Printf("  Mood:      %s\n", orDash(today.Mood))
	fmt.Printf("  Hydration: %s L (%d%% of 2.0 L)\n\n", orDash(today.HydrationLitres), today.HydrationPercent())
}

func printStreaks(history []models.DailyLog, today models.DailyLog) {
	check := func(done bool) string {
		if done {
			return "[x]"
		}
		return "[ ]"
	}
	smoothie := stats.CurrentStreak(history, stats.Smoothie, today)
	workout := stats.CurrentStreak(history, stats.Workout, today)
	overall := smoothie
	if workout < overall {
		overall = workout
	}

	fmt.Println("Core habits")
	fmt.Printf("  %s Smoothie  streak %d (best %d)\n", check(today.SmoothieDone), smoothie, stats.BestStreak(history, stats.Smoothie, today))
	fmt.Printf("  %s Workout   streak %d (best %d)\n", check(today.WorkoutDone), workout, stats.BestStreak(history, stats.Workout, today))
	fmt.Printf("  %s (%d day%s)\n\n", stats.StreakBadge(overall), overall, plural(overall))
}

func printWeeklySummary(history []models.DailyLog, today models.DailyLog) {
	summary := stats.WeeklySummary(history, today)
	if summary == nil {
		fmt.Println("Weekly summary: log and save a few days to see your weekly stats.")
		fmt.Println()
		return
	}
	avg := func(v *float64, unit string) string {
		if v == nil {
			return "—"
		}
		return fmt.Sprintf("%.1f %s", *v, unit)
	}
	fmt.Println("Weekly summary")
	fmt.Printf("  Days counted:  %d\n", summary.Days)
	fmt.Printf("  Avg weight:    %s\n", avg(summary.AvgWeight, "kg"))
	fmt.Printf("  Avg sleep:     %s\n", avg(summary.AvgSleep, "hrs"))
	fmt.Printf("  Avg hydration: %s\n", avg(summary.AvgHydration, "L"))
	fmt.Printf("  Smoothie days: %d · Workout days: %d\n\n", summary.SmoothieDays, summary.WorkoutDays)
}

func printCounts(ctx *Context) {
	todayTasks := 0
	for _, t := range ctx.Store.Tasks(ctx.Session.ProfileID) {
		if t.Status == models.TaskToday {
			todayTasks++
		}
	}
	openOrders := 0
	for _, o := range ctx.Store.Orders() {
		if o.Status != models.OrderCompleted {
			openOrders++
		}
	}
	activeReminders := 0
	for _, r := range ctx.Store.Reminders() {
		if !r.Completed {
			activeReminders++
		}
	}
	fmt.Printf("Boards: tasks today %d · open orders %d · active reminders %d\n\n", todayTasks, openOrders, activeReminders)
}

func printOpenOps(today models.DailyLog) {
	var ops []string
	if !today.WorkoutDone {
		ops = append(ops, "Treadmill / walk 20 mins")
	}
	if !today.SmoothieDone {
		ops = append(ops, "Make smoothie")
	}
	ops = append(ops, "Prep food for tomorrow")

	fmt.Printf("Today's ops (%d open)\n", len(ops))
	for _, op := range ops {
		fmt.Printf("  - %s\n", op)
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// LogCmd updates today's in-progress entry and manages saving it to history.
type LogCmd struct {
	Set   LogSetCmd   `cmd:"" help:"Set fields on today's log."`
	Save  LogSaveCmd  `cmd:"" help:"Save today's log to history."`
	Reset LogResetCmd `cmd:"" help:"Reset today's log."`
}

type LogSetCmd struct {
	Date      string `help:"Day to log (YYYY-MM-DD, default: today)."`
	Weight    string `help:"Weight in kg."`
	Sleep     string `help:"Sleep in hours."`
	Mood      string `help:"Mood (Good|Okay|Low|Stressed)."`
	Hydration string `help:"Hydration in litres."`
	Smoothie  *bool  `help:"Smoothie done." negatable:""`
	Workout   *bool  `help:"Workout done." negatable:""`
}

func (c *LogSetCmd) Validate() error {
	if r := validation.Date(c.Date); !r.Ok() {
		return r.Err()
	}
	if c.Mood != "" {
		found := false
		for _, m := range models.Moods {
			if strings.EqualFold(c.Mood, m) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown mood %q (expected one of %s)", c.Mood, strings.Join(models.Moods, ", "))
		}
	}
	return nil
}

func (c *LogSetCmd) Run(ctx *Context) error {
	today := ctx.Store.Today(TodayDate())

	if c.Date != "" {
		today.Date = c.Date
	}
	if c.Weight != "" {
		today.WeightKg = c.Weight
	}
	if c.Sleep != "" {
		today.SleepHours = c.Sleep
	}
	if c.Hydration != "" {
		today.HydrationLitres = c.Hydration
	}
	if c.Mood != "" {
		for _, m := range models.Moods {
			if strings.EqualFold(c.Mood, m) {
				today.Mood = m
			}
		}
	}
	if c.Smoothie != nil {
		today.SmoothieDone = *c.Smoothie
	}
	if c.Workout != nil {
		today.WorkoutDone = *c.Workout
	}

	ctx.Store.SaveToday(today)
	fmt.Printf("Updated today's log for %s\n", today.Date)
	return nil
}

type LogSaveCmd struct{}

func (c *LogSaveCmd) Run(ctx *Context) error {
	today := ctx.Store.Today(TodayDate())
	if today.Date == "" {
		return fmt.Errorf("set a date before saving to history")
	}
	today.SavedAt = time.Now().UTC().Format(time.RFC3339)
	history := ctx.Store.SaveDayToHistory(today)
	ctx.Store.SaveToday(today)
	fmt.Printf("Saved %s to history (%d day%s logged)\n", today.Date, len(history), plural(len(history)))
	return nil
}

type LogResetCmd struct{}

func (c *LogResetCmd) Run(ctx *Context) error {
	ctx.Store.SaveToday(models.DailyLog{Date: TodayDate()})
	fmt.Println("Reset today's log.")
	return nil
}
