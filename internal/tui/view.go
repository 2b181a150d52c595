package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wfahy/lifeops/internal/chart"
	"github.com/wfahy/lifeops/internal/models"
	"github.com/wfahy/lifeops/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.page {
	case PageHome:
		content = m.viewHome()
	case PageTasks:
		content = m.viewTasks()
	case PageOrders:
		content = m.viewOrders()
	case PageReminders:
		content = m.viewReminders()
	case PageHistory:
		content = m.viewHistory()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		docStyle.Render(content),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range pageTitles {
		if m.page == Page(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHome() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s · %s\n\n", titleStyle.Render(m.session.DisplayName()), m.today.Date)

	if !m.session.MichelleMode() {
		orDash := func(s string) string {
			if s == "" {
				return "—"
			}
			return s
		}
		fmt.Fprintf(&b, "Weight %s kg · Sleep %s hrs · Mood %s · Hydration %s L (%d%%)\n\n",
			orDash(m.today.WeightKg), orDash(m.today.SleepHours), orDash(m.today.Mood),
			orDash(m.today.HydrationLitres), m.today.HydrationPercent())

		smoothie := stats.CurrentStreak(m.history, stats.Smoothie, m.today)
		workout := stats.CurrentStreak(m.history, stats.Workout, m.today)
		overall := smoothie
		if workout < overall {
			overall = workout
		}
		fmt.Fprintf(&b, "%s Smoothie (streak %d)   %s Workout (streak %d)\n",
			check(m.today.SmoothieDone), smoothie, check(m.today.WorkoutDone), workout)
		fmt.Fprintf(&b, "%s\n\n", badgeStyle.Render(stats.StreakBadge(overall)))
	}

	if summary := stats.WeeklySummary(m.history, m.today); summary != nil {
		fmt.Fprintf(&b, "Week: %d day%s", summary.Days, plural(summary.Days))
		if summary.AvgWeight != nil {
			fmt.Fprintf(&b, " · avg %.1f kg", *summary.AvgWeight)
		}
		if summary.AvgSleep != nil {
			fmt.Fprintf(&b, " · avg %.1f hrs sleep", *summary.AvgSleep)
		}
		fmt.Fprintf(&b, " · smoothie %d · workout %d\n\n", summary.SmoothieDays, summary.WorkoutDays)
	}

	todayTasks := 0
	for _, t := range m.tasks {
		if t.Status == models.TaskToday {
			todayTasks++
		}
	}
	openOrders := 0
	for _, o := range m.orders {
		if o.Status != models.OrderCompleted {
			openOrders++
		}
	}
	activeReminders := 0
	for _, r := range m.reminders {
		if !r.Completed {
			activeReminders++
		}
	}
	fmt.Fprintf(&b, "Tasks today %d · Open orders %d · Active reminders %d\n", todayTasks, openOrders, activeReminders)
	return b.String()
}

func (m Model) viewTasks() string {
	if len(m.tasks) == 0 {
		return dimStyle.Render("No tasks yet.")
	}
	var b strings.Builder
	for i, t := range m.tasks {
		line := fmt.Sprintf("[%s] %s (%s)", t.Priority, t.Title, t.Status)
		if t.Status == models.TaskDone {
			line = doneStyle.Render(line)
		}
		b.WriteString(m.row(i, line))
	}
	return b.String()
}

func (m Model) viewOrders() string {
	if len(m.orders) == 0 {
		return dimStyle.Render("No orders yet.")
	}
	var b strings.Builder
	for i, o := range m.orders {
		price := "no price"
		if o.Price != nil {
			price = fmt.Sprintf("€%.2f", *o.Price)
		}
		deposit := ""
		if o.DepositPaid {
			deposit = " · deposit paid"
		}
		line := fmt.Sprintf("%s — %s · %s · %s · %s%s", o.CustomerName, o.Item, o.Status, o.Channel, price, deposit)
		if !o.Open() {
			line = doneStyle.Render(line)
		}
		b.WriteString(m.row(i, line))
	}
	return b.String()
}

func (m Model) viewReminders() string {
	if len(m.reminders) == 0 {
		return dimStyle.Render("No reminders yet.")
	}
	today := todayDate()
	var b strings.Builder
	for i, r := range m.reminders {
		line := fmt.Sprintf("%s %s", check(r.Completed), r.Title)
		switch {
		case r.Overdue(today):
			line += overdueStyle.Render(fmt.Sprintf(" OVERDUE (was due %s)", r.DueDate))
		case r.DueToday(today):
			line += " · due today"
		case r.DueDate != "":
			line += dimStyle.Render(" · due " + r.DueDate)
		}
		if r.AssignedTo != "" {
			line += dimStyle.Render(" · " + r.AssignedTo)
		}
		if r.Completed {
			line = doneStyle.Render(line)
		}
		b.WriteString(m.row(i, line))
	}
	return b.String()
}

func (m Model) viewHistory() string {
	if len(m.history) == 0 {
		return dimStyle.Render("No days logged yet. Save a day from the Home page.")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d day%s logged\n\n", len(m.history), plural(len(m.history)))

	values, _ := stats.WeightSeries(m.history)
	rolling := stats.RollingAverage(values, 7)
	width := m.width - 8
	if width < 20 || width > 70 {
		width = 60
	}
	b.WriteString("Weight trend (* raw, + 7-day rolling average)\n")
	b.WriteString(chart.Render(values, rolling, width, 10))
	return b.String()
}

func (m Model) row(i int, line string) string {
	if m.cursor[m.page] == i {
		return selectedStyle.Render("> "+line) + "\n"
	}
	return "  " + line + "\n"
}

func check(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
