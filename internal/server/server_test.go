package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wfahy/lifeops/internal/models"
	"github.com/wfahy/lifeops/internal/storage"
	"github.com/wfahy/lifeops/internal/weather"
)

func newTestDeps(t *testing.T) (Deps, *storage.Store) {
	t.Helper()
	store := storage.New(storage.NewJSONStore(t.TempDir()))
	if err := store.Init(); err != nil {
		t.Fatalf("init store: %v", err)
	}
	fixed := time.Date(2026, 8, 23, 7, 30, 0, 0, time.UTC)
	return Deps{
		Store: store,
		Now:   func() time.Time { return fixed },
	}, store
}

func getSummary(t *testing.T, deps Deps) (SummaryPayload, *http.Response) {
	t.Helper()
	srv := httptest.NewServer(New(deps))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/epaper-summary")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var payload SummaryPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return payload, resp
}

func TestSummary_EmptyStore(t *testing.T) {
	deps, _ := newTestDeps(t)
	payload, resp := getSummary(t, deps)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Cache-Control"); got != "no-store" {
		t.Errorf("expected Cache-Control: no-store, got %q", got)
	}
	if got := resp.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("expected application/json, got %q", got)
	}

	if payload.Profile != "Guest" {
		t.Errorf("expected Guest with no profile, got %q", payload.Profile)
	}
	if payload.Date != "Sun, 23 Aug 2026" {
		t.Errorf("unexpected date format: %q", payload.Date)
	}
	if payload.Time != "07:30" {
		t.Errorf("unexpected time format: %q", payload.Time)
	}
	if payload.Quote != Quote {
		t.Errorf("expected the fixed quote, got %q", payload.Quote)
	}
	// Lists serialize as [], never null.
	if payload.Tasks == nil || payload.Reminders == nil || payload.Events == nil {
		t.Error("expected empty lists, not null")
	}
	if payload.Weather != nil {
		t.Error("expected no weather block without a client")
	}
}

func TestSummary_CountsAndTruncation(t *testing.T) {
	deps, store := newTestDeps(t)

	var tasks []models.Task
	for i := 0; i < 7; i++ {
		tasks = append(tasks, models.Task{
			ID: models.NewID(), Title: "task", Status: models.TaskToday,
			Priority: models.TaskPriorityNormal, CreatedAt: "2026-08-01T00:00:00Z",
		})
	}
	tasks = append(tasks, models.Task{ID: "x", Title: "later", Status: models.TaskLater, CreatedAt: "2026-08-01T00:00:00Z"})
	store.SaveTasks("", tasks)

	store.SaveOrders([]models.Order{
		{ID: "1", CustomerName: "A", Status: models.OrderPending},
		{ID: "2", CustomerName: "B", Status: models.OrderCompleted},
		{ID: "3", CustomerName: "C", Status: models.OrderCancelled},
		{ID: "4", CustomerName: "D", Status: models.OrderInProgress},
	})

	var reminders []models.Reminder
	for i := 0; i < 6; i++ {
		reminders = append(reminders, models.Reminder{ID: models.NewID(), Title: "r", CreatedAt: "2026-08-01T00:00:00Z"})
	}
	reminders = append(reminders, models.Reminder{ID: "done", Title: "done", Completed: true, CreatedAt: "2026-08-01T00:00:00Z"})
	store.SaveReminders(reminders)

	payload, _ := getSummary(t, deps)

	if payload.TodayTaskCount != 7 {
		t.Errorf("expected the full Today count, got %d", payload.TodayTaskCount)
	}
	if len(payload.Tasks) != 5 {
		t.Errorf("expected the task list capped at 5, got %d", len(payload.Tasks))
	}
	if payload.OpenOrders != 2 {
		t.Errorf("completed and cancelled are closed; expected 2 open, got %d", payload.OpenOrders)
	}
	if len(payload.Reminders) != 5 {
		t.Errorf("expected active reminders capped at 5, got %d", len(payload.Reminders))
	}
}

func TestSummary_UsesActiveProfile(t *testing.T) {
	deps, store := newTestDeps(t)

	profile := models.Profile{ID: "p1", Name: "Will"}
	store.SaveProfiles([]models.Profile{profile})
	store.SetCurrentProfile(profile)

	// One task on Will's board, one on the shared board.
	store.SaveTasks("p1", []models.Task{{ID: "t1", Title: "mine", Status: models.TaskToday, CreatedAt: "2026-08-01T00:00:00Z"}})
	store.SaveTasks("", []models.Task{{ID: "t2", Title: "shared", Status: models.TaskToday, CreatedAt: "2026-08-01T00:00:00Z"}})

	payload, _ := getSummary(t, deps)

	if payload.Profile != "Will" {
		t.Errorf("expected the active profile name, got %q", payload.Profile)
	}
	if payload.TodayTaskCount != 1 || len(payload.Tasks) != 1 || payload.Tasks[0].Title != "mine" {
		t.Errorf("expected only the active profile's board, got %+v", payload.Tasks)
	}
}

func TestSummary_WeatherBestEffort(t *testing.T) {
	weatherSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current_weather": {"temperature": 14, "windspeed": 10, "weathercode": 3}}`))
	}))
	defer weatherSrv.Close()

	deps, _ := newTestDeps(t)
	wc := weather.NewClient()
	wc.BaseURL = weatherSrv.URL
	deps.Weather = wc

	payload, _ := getSummary(t, deps)
	if payload.Weather == nil || payload.Weather.Desc != "Overcast" {
		t.Errorf("expected a weather block, got %+v", payload.Weather)
	}
}

func TestSummary_WeatherFailureOmitsBlock(t *testing.T) {
	deps, _ := newTestDeps(t)
	wc := weather.NewClient()
	wc.BaseURL = "http://127.0.0.1:1"
	deps.Weather = wc

	payload, resp := getSummary(t, deps)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("weather failure must not fail the request, got %d", resp.StatusCode)
	}
	if payload.Weather != nil {
		t.Errorf("expected the weather block omitted, got %+v", payload.Weather)
	}
}

func TestHealth(t *testing.T) {
	deps, _ := newTestDeps(t)
	srv := httptest.NewServer(New(deps))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}
