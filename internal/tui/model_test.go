package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wfahy/lifeops/internal/models"
	"github.com/wfahy/lifeops/internal/session"
	"github.com/wfahy/lifeops/internal/storage"
)

func newTestModel(t *testing.T) (Model, *storage.Store) {
	t.Helper()
	store := storage.New(storage.NewJSONStore(t.TempDir()))
	if err := store.Init(); err != nil {
		t.Fatalf("init store: %v", err)
	}
	return NewModel(store, session.Session{}), store
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestTabCyclesPages(t *testing.T) {
	m, _ := newTestModel(t)

	if m.page != PageHome {
		t.Fatalf("expected to start on Home, got %v", m.page)
	}

	next, _ := m.Update(keyMsg("tab"))
	m = next.(Model)
	if m.page != PageTasks {
		t.Errorf("expected Tasks after tab, got %v", m.page)
	}

	for i := 0; i < len(pageTitles); i++ {
		next, _ = m.Update(keyMsg("tab"))
		m = next.(Model)
	}
	if m.page != PageTasks {
		t.Errorf("expected tab to wrap back around, got %v", m.page)
	}

	next, _ = m.Update(keyMsg("shift+tab"))
	m = next.(Model)
	if m.page != PageHome {
		t.Errorf("expected Home after shift+tab, got %v", m.page)
	}
}

func TestHabitTogglesPersist(t *testing.T) {
	m, store := newTestModel(t)

	next, _ := m.Update(keyMsg("s"))
	m = next.(Model)
	if !m.today.SmoothieDone {
		t.Error("expected smoothie toggled on")
	}
	if !store.Today("x").SmoothieDone {
		t.Error("expected the toggle written through to the store")
	}

	next, _ = m.Update(keyMsg("s"))
	m = next.(Model)
	if m.today.SmoothieDone {
		t.Error("expected smoothie toggled back off")
	}
}

func TestReminderToggle(t *testing.T) {
	m, store := newTestModel(t)
	store.SaveReminders([]models.Reminder{
		{ID: "r1", Title: "bins", CreatedAt: "2026-08-01T00:00:00Z"},
	})
	m.reload()
	m.page = PageReminders

	next, _ := m.Update(keyMsg("enter"))
	m = next.(Model)
	if !m.reminders[0].Completed {
		t.Error("expected the reminder completed after toggle")
	}
	if !store.Reminders()[0].Completed {
		t.Error("expected the toggle persisted")
	}
}

func TestTaskToggleAdvancesLane(t *testing.T) {
	m, store := newTestModel(t)
	store.SaveTasks("", []models.Task{
		{ID: "t1", Title: "x", Status: models.TaskInbox, CreatedAt: "2026-08-01T00:00:00Z"},
	})
	m.reload()
	m.page = PageTasks

	next, _ := m.Update(keyMsg("enter"))
	m = next.(Model)
	if m.tasks[0].Status != models.TaskToday {
		t.Errorf("expected Inbox to advance to Today, got %q", m.tasks[0].Status)
	}

	// Done wraps back to Inbox.
	m.tasks[0].Status = models.TaskDone
	store.SaveTasks("", m.tasks)
	m.reload()
	next, _ = m.Update(keyMsg("enter"))
	m = next.(Model)
	if m.tasks[0].Status != models.TaskInbox {
		t.Errorf("expected Done to wrap to Inbox, got %q", m.tasks[0].Status)
	}
}

func TestCursorBounds(t *testing.T) {
	m, store := newTestModel(t)
	store.SaveTasks("", []models.Task{
		{ID: "a", Title: "one", CreatedAt: "2026-08-01T00:00:00Z"},
		{ID: "b", Title: "two", CreatedAt: "2026-08-02T00:00:00Z"},
	})
	m.reload()
	m.page = PageTasks

	for i := 0; i < 5; i++ {
		next, _ := m.Update(keyMsg("down"))
		m = next.(Model)
	}
	if m.cursor[PageTasks] != 1 {
		t.Errorf("cursor should stop at the last row, got %d", m.cursor[PageTasks])
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	next, cmd := m.Update(keyMsg("q"))
	m = next.(Model)
	if !m.quitting {
		t.Error("expected quitting state")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
	if m.View() != "" {
		t.Error("expected an empty view while quitting")
	}
}
