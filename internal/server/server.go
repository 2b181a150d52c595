// Package server exposes the read-only summary endpoint a polling e-paper
// display consumes.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wfahy/lifeops/internal/logger"
	"github.com/wfahy/lifeops/internal/models"
	"github.com/wfahy/lifeops/internal/session"
	"github.com/wfahy/lifeops/internal/storage"
	"github.com/wfahy/lifeops/internal/weather"
)

// Quote shown on the dashboard and the display.
const Quote = "Discipline is doing what needs to be done, even when you don’t feel like it."

// How many list entries fit on the display.
const maxDisplayItems = 5

type Deps struct {
	Store   *storage.Store
	Weather *weather.Client
	// Now is the clock; nil means time.Now. Tests pin it.
	Now      func() time.Time
	Location *time.Location
}

// SummaryTask is the task shape the display firmware reads.
type SummaryTask struct {
	Title    string `json:"title"`
	Priority string `json:"priority,omitempty"`
}

type SummaryReminder struct {
	Title   string `json:"title"`
	DueDate string `json:"dueDate,omitempty"`
}

type SummaryEvent struct {
	Title string `json:"title"`
	Time  string `json:"time,omitempty"`
}

type SummaryPayload struct {
	Profile        string            `json:"profile"`
	Date           string            `json:"date"`
	Time           string            `json:"time"`
	Quote          string            `json:"quote"`
	OpenOrders     int               `json:"openOrders"`
	TodayTaskCount int               `json:"todayTaskCount"`
	Tasks          []SummaryTask     `json:"tasks"`
	Reminders      []SummaryReminder `json:"reminders"`
	Events         []SummaryEvent    `json:"events"`
	Weather        *weather.Report   `json:"weather,omitempty"`
}

// New builds the HTTP handler. The summary is assembled fresh per request
// from the live stores and served uncacheable so the display always sees a
// current timestamp.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/api/epaper-summary", handleSummary(deps))
	return r
}

func handleSummary(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		now := time.Now()
		if deps.Now != nil {
			now = deps.Now()
		}
		if deps.Location != nil {
			now = now.In(deps.Location)
		}

		sess := session.Load(deps.Store)

		payload := SummaryPayload{
			Profile:   sess.DisplayName(),
			Date:      now.Format("Mon, 02 Jan 2006"),
			Time:      now.Format("15:04"),
			Quote:     Quote,
			Tasks:     []SummaryTask{},
			Reminders: []SummaryReminder{},
			Events:    []SummaryEvent{},
		}

		for _, o := range deps.Store.Orders() {
			if o.Open() {
				payload.OpenOrders++
			}
		}

		for _, t := range deps.Store.Tasks(sess.ProfileID) {
			if t.Status != models.TaskToday {
				continue
			}
			payload.TodayTaskCount++
			if len(payload.Tasks) < maxDisplayItems {
				payload.Tasks = append(payload.Tasks, SummaryTask{
					Title:    t.Title,
					Priority: string(t.Priority),
				})
			}
		}

		for _, rem := range deps.Store.Reminders() {
			if rem.Completed {
				continue
			}
			if len(payload.Reminders) < maxDisplayItems {
				payload.Reminders = append(payload.Reminders, SummaryReminder{
					Title:   rem.Title,
					DueDate: rem.DueDate,
				})
			}
		}

		if deps.Weather != nil {
			ctx, cancel := context.WithTimeout(req.Context(), 10*time.Second)
			defer cancel()
			report, err := deps.Weather.Current(ctx)
			if err != nil {
				// Weather is best effort; the display just omits the panel.
				logger.Warn("Weather lookup failed", "error", err)
			} else {
				payload.Weather = report
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode summary payload", "error", err)
		}
	}
}
