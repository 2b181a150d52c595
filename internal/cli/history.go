package cli

import (
	"fmt"

	"github.com/wfahy/lifeops/internal/chart"
	"github.com/wfahy/lifeops/internal/stats"
)

// HistoryCmd lists saved days and optionally draws the weight trend.
type HistoryCmd struct {
	Chart  bool `help:"Draw the weight trend chart." default:"true" negatable:""`
	Width  int  `help:"Chart width in columns." default:"60"`
	Height int  `help:"Chart height in rows." default:"12"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	history := ctx.Store.History()
	if len(history) == 0 {
		fmt.Println("No days logged yet.")
		return nil
	}

	check := func(done bool) string {
		if done {
			return "x"
		}
		return "."
	}
	fmt.Printf("%-12s %8s %7s %6s %-9s %s\n", "Date", "Weight", "Sleep", "Hydr", "Mood", "S W")
	for _, e := range history {
		orDash := func(s string) string {
			if s == "" {
				return "—"
			}
			return s
		}
		fmt.Printf("%-12s %8s %7s %6s %-9s %s %s\n",
			e.Date, orDash(e.WeightKg), orDash(e.SleepHours), orDash(e.HydrationLitres),
			orDash(e.Mood), check(e.SmoothieDone), check(e.WorkoutDone))
	}

	if c.Chart {
		values, _ := stats.WeightSeries(history)
		rolling := stats.RollingAverage(values, 7)
		fmt.Println()
		fmt.Println("Weight trend (* raw, + 7-day rolling average)")
		fmt.Println(chart.Render(values, rolling, c.Width, c.Height))
	}
	return nil
}

// SummaryCmd prints the weekly summary panel on its own.
type SummaryCmd struct{}

func (c *SummaryCmd) Run(ctx *Context) error {
	printWeeklySummary(ctx.Store.History(), ctx.Store.Today(TodayDate()))
	return nil
}
