// Package stats derives streaks, rolling averages and the weekly summary
// from the daily-log history plus today's in-progress entry.
package stats

import (
	"sort"
	"strconv"

	"github.com/wfahy/lifeops/internal/models"
)

// Habit selects a boolean habit field from a daily log.
type Habit func(models.DailyLog) bool

var (
	Smoothie Habit = func(d models.DailyLog) bool { return d.SmoothieDone }
	Workout  Habit = func(d models.DailyLog) bool { return d.WorkoutDone }
)

// HistoryStreak counts consecutive entries (newest first) with the habit
// done, excluding the entry for excludeDate. The walk is over entries, not
// calendar days: a day with no log at all does not break the run, only an
// entry with the habit unticked does.
func HistoryStreak(history []models.DailyLog, habit Habit, excludeDate string) int {
	entries := make([]models.DailyLog, 0, len(history))
	for _, e := range history {
		if e.Date != "" && e.Date != excludeDate {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date > entries[j].Date })

	streak := 0
	for _, e := range entries {
		if !habit(e) {
			break
		}
		streak++
	}
	return streak
}

// CurrentStreak is the history streak extended by one when today's habit is
// done. Today is tracked separately from history and merged here, never in
// the sorted walk.
func CurrentStreak(history []models.DailyLog, habit Habit, today models.DailyLog) int {
	streak := HistoryStreak(history, habit, today.Date)
	if habit(today) {
		streak++
	}
	return streak
}

// BestStreak scans the full history oldest first for the longest run of
// done days. Today's state, if done, can extend the tail run past the
// historical best.
func BestStreak(history []models.DailyLog, habit Habit, today models.DailyLog) int {
	current := CurrentStreak(history, habit, today)
	if len(history) == 0 {
		return current
	}

	entries := make([]models.DailyLog, len(history))
	copy(entries, history)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })

	best, run := 0, 0
	for _, e := range entries {
		if habit(e) {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	if habit(today) && current > best {
		best = current
	}
	return best
}

// StreakBadge labels the overall streak, which is the weaker of the two
// habit streaks.
func StreakBadge(overall int) string {
	switch {
	case overall >= 3:
		return "Streak active"
	case overall >= 1:
		return "Streak warming up"
	default:
		return "Streak offline"
	}
}

// RollingAverage returns, for each index, the mean of the up-to-window most
// recent points ending there. Early indexes average the points available so
// far.
func RollingAverage(values []float64, window int) []float64 {
	if window < 1 || len(values) == 0 {
		return nil
	}
	out := make([]float64, len(values))
	for i := range values {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		sum := 0.0
		for _, v := range values[start : i+1] {
			sum += v
		}
		out[i] = sum / float64(i+1-start)
	}
	return out
}

// WeightSeries extracts the chartable weight values and their dates from
// history. Empty weights chart as zero; unparseable entries are skipped.
func WeightSeries(history []models.DailyLog) (values []float64, dates []string) {
	for _, e := range history {
		v, ok := e.Weight()
		if !ok {
			continue
		}
		values = append(values, v)
		dates = append(dates, e.Date)
	}
	return values, dates
}

// WeekSummary aggregates the most recent week of logged days. Averages are
// nil when no entry in the window held a usable value for that field.
type WeekSummary struct {
	Days         int
	AvgWeight    *float64
	AvgSleep     *float64
	AvgHydration *float64
	SmoothieDays int
	WorkoutDays  int
}

// WeeklySummary merges a synthetic today record into history (when today has
// any data and its date is not already saved), then aggregates the last 7
// entries. Numeric fields average over only the entries that parse to a
// positive number — a blank or zero day is left out of both sum and count.
// Returns nil when there is nothing to summarize.
func WeeklySummary(history []models.DailyLog, today models.DailyLog) *WeekSummary {
	combined := make([]models.DailyLog, len(history))
	copy(combined, history)

	if today.Date != "" && today.HasData() {
		exists := false
		for _, e := range combined {
			if e.Date == today.Date {
				exists = true
				break
			}
		}
		if !exists {
			combined = append(combined, today)
		}
	}

	if len(combined) == 0 {
		return nil
	}

	sort.SliceStable(combined, func(i, j int) bool { return combined[i].Date < combined[j].Date })
	if len(combined) > 7 {
		combined = combined[len(combined)-7:]
	}

	summary := &WeekSummary{Days: len(combined)}
	var weight, sleep, hydration meanAcc
	for _, e := range combined {
		weight.add(e.WeightKg)
		sleep.add(e.SleepHours)
		hydration.add(e.HydrationLitres)
		if e.SmoothieDone {
			summary.SmoothieDays++
		}
		if e.WorkoutDone {
			summary.WorkoutDays++
		}
	}
	summary.AvgWeight = weight.mean()
	summary.AvgSleep = sleep.mean()
	summary.AvgHydration = hydration.mean()
	return summary
}

type meanAcc struct {
	sum   float64
	count int
}

func (a *meanAcc) add(s string) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return
	}
	a.sum += v
	a.count++
}

func (a *meanAcc) mean() *float64 {
	if a.count == 0 {
		return nil
	}
	m := a.sum / float64(a.count)
	return &m
}
