package models

import "strconv"

// DailyLog is one day's health record. Numeric fields are kept as entered
// (free text) and only parsed when a stat needs them, so a half-typed value
// never blocks saving the day.
type DailyLog struct {
	Date            string `json:"date"` // YYYY-MM-DD
	WeightKg        string `json:"weightKg"`
	SleepHours      string `json:"sleepHours"`
	Mood            string `json:"mood"`
	HydrationLitres string `json:"hydrationLitres"`
	SmoothieDone    bool   `json:"smoothieDone"`
	WorkoutDone     bool   `json:"workoutDone"`
	SavedAt         string `json:"savedAt,omitempty"` // RFC3339, set when written to history
}

// Moods selectable on the daily log. Free-form values load fine; these are
// what the UI offers.
var Moods = []string{"Good", "Okay", "Low", "Stressed"}

// HasData reports whether any field besides the date has been filled in.
func (d DailyLog) HasData() bool {
	return d.WeightKg != "" || d.SleepHours != "" || d.HydrationLitres != "" ||
		d.Mood != "" || d.SmoothieDone || d.WorkoutDone
}

// Weight returns the parsed weight and whether the field holds a usable
// number. An empty field parses as 0 so sparse logs still chart.
func (d DailyLog) Weight() (float64, bool) {
	return parseEntry(d.WeightKg)
}

func parseEntry(s string) (float64, bool) {
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// HydrationPercent maps today's litres onto a 0-100 bar against the 2.0 L
// daily target.
func (d DailyLog) HydrationPercent() int {
	v, err := strconv.ParseFloat(d.HydrationLitres, 64)
	if err != nil {
		v = 0
	}
	pct := int(v/2.0*100 + 0.5)
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}
