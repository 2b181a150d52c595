// Package tui is the full-screen dashboard: the same pages the CLI commands
// print, navigable with the keyboard and live against the store.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wfahy/lifeops/internal/models"
	"github.com/wfahy/lifeops/internal/session"
	"github.com/wfahy/lifeops/internal/storage"
)

type Page int

const (
	PageHome Page = iota
	PageTasks
	PageOrders
	PageReminders
	PageHistory
)

var pageTitles = []string{"Home", "Tasks", "Orders", "Reminders", "History"}

type Model struct {
	store   *storage.Store
	session session.Session
	page    Page
	keys    KeyMap
	help    help.Model

	today     models.DailyLog
	history   []models.DailyLog
	tasks     []models.Task
	orders    []models.Order
	reminders []models.Reminder

	cursor   map[Page]int
	width    int
	height   int
	quitting bool
}

func NewModel(store *storage.Store, sess session.Session) Model {
	m := Model{
		store:   store,
		session: sess,
		page:    PageHome,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		cursor:  make(map[Page]int),
	}
	m.reload()
	return m
}

// reload pulls every collection fresh from the store. The data set is small
// enough that rereading after each mutation beats tracking deltas.
func (m *Model) reload() {
	m.today = m.store.Today(todayDate())
	m.history = m.store.History()
	m.tasks = m.store.Tasks(m.session.ProfileID)
	m.orders = m.store.Orders()
	m.reminders = m.store.Reminders()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.page {
	case PageHome:
		keys = append(keys, m.keys.Smoothie, m.keys.Workout, m.keys.SaveDay)
	case PageTasks, PageReminders:
		keys = append(keys, m.keys.Up, m.keys.Down, m.keys.Toggle)
	case PageOrders:
		keys = append(keys, m.keys.Up, m.keys.Down)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{m.keys.Up, m.keys.Down, m.keys.Toggle},
		{m.keys.Smoothie, m.keys.Workout, m.keys.SaveDay},
	}
}

// listLen is the number of cursor rows the current page has.
func (m Model) listLen() int {
	switch m.page {
	case PageTasks:
		return len(m.tasks)
	case PageOrders:
		return len(m.orders)
	case PageReminders:
		return len(m.reminders)
	}
	return 0
}
