package stats

import (
	"math"
	"testing"

	"github.com/wfahy/lifeops/internal/models"
)

func day(date string, smoothie, workout bool) models.DailyLog {
	return models.DailyLog{Date: date, SmoothieDone: smoothie, WorkoutDone: workout}
}

func TestHistoryStreak_StopsAtFirstMiss(t *testing.T) {
	history := []models.DailyLog{
		day("2026-08-20", true, false),
		day("2026-08-21", true, false),
		day("2026-08-22", true, false),
		day("2026-08-23", false, false),
	}

	// Newest-first walk hits the miss on the 23rd immediately.
	if got := HistoryStreak(history, Smoothie, ""); got != 0 {
		t.Errorf("expected streak 0, got %d", got)
	}
}

func TestHistoryStreak_ExcludesToday(t *testing.T) {
	history := []models.DailyLog{
		day("2026-08-21", true, false),
		day("2026-08-22", true, false),
		day("2026-08-23", false, false),
	}

	// With the 23rd excluded the run is the 22nd and 21st.
	if got := HistoryStreak(history, Smoothie, "2026-08-23"); got != 2 {
		t.Errorf("expected streak 2, got %d", got)
	}
}

func TestHistoryStreak_GapDoesNotBreakRun(t *testing.T) {
	// No entry for the 21st at all. The walk is over entries, so the run
	// continues across the missing day.
	history := []models.DailyLog{
		day("2026-08-20", true, false),
		day("2026-08-22", true, false),
	}

	if got := HistoryStreak(history, Smoothie, ""); got != 2 {
		t.Errorf("expected streak 2 across the gap, got %d", got)
	}
}

func TestCurrentStreak_TodayExtends(t *testing.T) {
	history := []models.DailyLog{
		day("2026-08-20", true, false),
		day("2026-08-21", true, false),
		day("2026-08-22", true, false),
		day("2026-08-23", false, false),
	}
	today := day("2026-08-23", true, false)

	// The stale saved entry for the 23rd is excluded, leaving three done
	// days, and today's tick adds one more.
	if got := CurrentStreak(history, Smoothie, today); got != 4 {
		t.Errorf("expected streak 4, got %d", got)
	}
}

func TestCurrentStreak_RecentMissThenTodayDone(t *testing.T) {
	history := []models.DailyLog{
		day("2026-08-20", true, false),
		day("2026-08-21", true, false),
		day("2026-08-22", false, false),
	}
	today := day("2026-08-23", true, false)

	// The miss on the 22nd zeroes the history run; today contributes 1.
	if got := CurrentStreak(history, Smoothie, today); got != 1 {
		t.Errorf("expected streak 1, got %d", got)
	}
}

func TestBestStreak_LongestRunInHistory(t *testing.T) {
	history := []models.DailyLog{
		day("2026-08-18", true, false),
		day("2026-08-19", true, false),
		day("2026-08-20", false, false),
		day("2026-08-21", true, false),
		day("2026-08-22", true, false),
		day("2026-08-23", true, false),
	}
	today := day("2026-08-24", false, false)

	if got := BestStreak(history, Smoothie, today); got != 3 {
		t.Errorf("expected best streak 3, got %d", got)
	}
}

func TestBestStreak_EmptyHistoryUsesCurrent(t *testing.T) {
	today := day("2026-08-24", true, false)
	if got := BestStreak(nil, Smoothie, today); got != 1 {
		t.Errorf("expected best streak 1 with only today, got %d", got)
	}
}

func TestBestStreak_TodayExtendsTail(t *testing.T) {
	history := []models.DailyLog{
		day("2026-08-21", true, false),
		day("2026-08-22", true, false),
		day("2026-08-23", true, false),
	}
	today := day("2026-08-24", true, false)

	if got := BestStreak(history, Smoothie, today); got != 4 {
		t.Errorf("expected best streak 4 with today's extension, got %d", got)
	}
}

func TestStreakBadge(t *testing.T) {
	cases := []struct {
		overall int
		want    string
	}{
		{0, "Streak offline"},
		{1, "Streak warming up"},
		{2, "Streak warming up"},
		{3, "Streak active"},
		{10, "Streak active"},
	}
	for _, tc := range cases {
		if got := StreakBadge(tc.overall); got != tc.want {
			t.Errorf("StreakBadge(%d) = %q, want %q", tc.overall, got, tc.want)
		}
	}
}

func TestRollingAverage(t *testing.T) {
	got := RollingAverage([]float64{10, 12}, 7)
	want := []float64{10, 11}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRollingAverage_WindowLimitsLookback(t *testing.T) {
	got := RollingAverage([]float64{1, 2, 3, 4}, 2)
	want := []float64{1, 1.5, 2.5, 3.5}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWeightSeries(t *testing.T) {
	history := []models.DailyLog{
		{Date: "2026-08-20", WeightKg: "82.5"},
		{Date: "2026-08-21", WeightKg: ""},        // charts as zero
		{Date: "2026-08-22", WeightKg: "not-num"}, // skipped
		{Date: "2026-08-23", WeightKg: "81.9"},
	}

	values, dates := WeightSeries(history)
	if len(values) != 3 {
		t.Fatalf("expected 3 values, got %d", len(values))
	}
	if values[0] != 82.5 || values[1] != 0 || values[2] != 81.9 {
		t.Errorf("unexpected values: %v", values)
	}
	if dates[1] != "2026-08-21" {
		t.Errorf("expected empty-weight date kept, got %q", dates[1])
	}
}

func TestWeeklySummary_PositiveOnlyAverages(t *testing.T) {
	history := []models.DailyLog{
		{Date: "2026-08-18", WeightKg: "82", SleepHours: "7", SmoothieDone: true},
		{Date: "2026-08-19", WeightKg: "81", SleepHours: "8"},
		{Date: "2026-08-20", WeightKg: "", SleepHours: "0"}, // excluded from both averages
		{Date: "2026-08-21", WeightKg: "83", WorkoutDone: true},
		{Date: "2026-08-22", WeightKg: "junk", SleepHours: "6"},
	}

	summary := WeeklySummary(history, models.DailyLog{})
	if summary == nil {
		t.Fatal("expected a summary")
	}
	if summary.Days != 5 {
		t.Errorf("expected 5 days, got %d", summary.Days)
	}
	if summary.AvgWeight == nil || math.Abs(*summary.AvgWeight-82) > 1e-9 {
		t.Errorf("expected avg weight 82 over the 3 valid entries, got %v", summary.AvgWeight)
	}
	if summary.AvgSleep == nil || math.Abs(*summary.AvgSleep-7) > 1e-9 {
		t.Errorf("expected avg sleep 7, got %v", summary.AvgSleep)
	}
	if summary.AvgHydration != nil {
		t.Errorf("expected nil hydration average, got %v", *summary.AvgHydration)
	}
	if summary.SmoothieDays != 1 || summary.WorkoutDays != 1 {
		t.Errorf("expected 1 smoothie day and 1 workout day, got %d/%d", summary.SmoothieDays, summary.WorkoutDays)
	}
}

func TestWeeklySummary_MergesToday(t *testing.T) {
	history := []models.DailyLog{
		{Date: "2026-08-22", WeightKg: "82"},
	}
	today := models.DailyLog{Date: "2026-08-23", WeightKg: "80"}

	summary := WeeklySummary(history, today)
	if summary == nil {
		t.Fatal("expected a summary")
	}
	if summary.Days != 2 {
		t.Errorf("expected today merged in, got %d days", summary.Days)
	}
	if summary.AvgWeight == nil || math.Abs(*summary.AvgWeight-81) > 1e-9 {
		t.Errorf("expected avg weight 81, got %v", summary.AvgWeight)
	}
}

func TestWeeklySummary_TodayAlreadySavedNotDoubled(t *testing.T) {
	history := []models.DailyLog{
		{Date: "2026-08-23", WeightKg: "82"},
	}
	today := models.DailyLog{Date: "2026-08-23", WeightKg: "80"}

	summary := WeeklySummary(history, today)
	if summary == nil {
		t.Fatal("expected a summary")
	}
	if summary.Days != 1 {
		t.Errorf("expected the saved entry to win, got %d days", summary.Days)
	}
}

func TestWeeklySummary_Empty(t *testing.T) {
	if got := WeeklySummary(nil, models.DailyLog{Date: "2026-08-23"}); got != nil {
		t.Errorf("expected nil summary with no data, got %+v", got)
	}
}

func TestWeeklySummary_LastSevenOnly(t *testing.T) {
	var history []models.DailyLog
	dates := []string{"2026-08-10", "2026-08-11", "2026-08-12", "2026-08-13",
		"2026-08-14", "2026-08-15", "2026-08-16", "2026-08-17", "2026-08-18"}
	for _, d := range dates {
		history = append(history, models.DailyLog{Date: d, SmoothieDone: true})
	}

	summary := WeeklySummary(history, models.DailyLog{})
	if summary.Days != 7 {
		t.Errorf("expected window capped at 7, got %d", summary.Days)
	}
}
