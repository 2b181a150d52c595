package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wfahy/lifeops/internal/models"
)

func todayDate() string {
	return time.Now().Format("2006-01-02")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Tab):
			m.page = (m.page + 1) % Page(len(pageTitles))
			return m, nil

		case key.Matches(msg, m.keys.ShiftTab):
			m.page = (m.page + Page(len(pageTitles)) - 1) % Page(len(pageTitles))
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.cursor[m.page] > 0 {
				m.cursor[m.page]--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor[m.page] < m.listLen()-1 {
				m.cursor[m.page]++
			}
			return m, nil

		case key.Matches(msg, m.keys.Smoothie) && m.page == PageHome:
			m.today.SmoothieDone = !m.today.SmoothieDone
			m.store.SaveToday(m.today)
			return m, nil

		case key.Matches(msg, m.keys.Workout) && m.page == PageHome:
			m.today.WorkoutDone = !m.today.WorkoutDone
			m.store.SaveToday(m.today)
			return m, nil

		case key.Matches(msg, m.keys.SaveDay) && m.page == PageHome:
			m.today.SavedAt = time.Now().UTC().Format(time.RFC3339)
			m.store.SaveDayToHistory(m.today)
			m.store.SaveToday(m.today)
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			m.toggleSelected()
			return m, nil
		}
	}
	return m, nil
}

// toggleSelected advances the row under the cursor: tasks cycle through the
// status lanes, reminders flip completed, orders flip the deposit flag.
func (m *Model) toggleSelected() {
	i := m.cursor[m.page]
	switch m.page {
	case PageTasks:
		if i >= len(m.tasks) {
			return
		}
		statuses := models.TaskStatuses()
		cur := 0
		for j, s := range statuses {
			if m.tasks[i].Status == s {
				cur = j
				break
			}
		}
		m.tasks[i].Status = statuses[(cur+1)%len(statuses)]
		m.store.SaveTasks(m.session.ProfileID, m.tasks)
		m.reload()

	case PageReminders:
		if i >= len(m.reminders) {
			return
		}
		m.reminders[i].Completed = !m.reminders[i].Completed
		m.store.SaveReminders(m.reminders)
		m.reload()

	case PageOrders:
		if i >= len(m.orders) {
			return
		}
		m.orders[i].DepositPaid = !m.orders[i].DepositPaid
		m.store.SaveOrders(m.orders)
		m.reload()
	}
}
