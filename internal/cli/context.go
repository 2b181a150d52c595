package cli

import (
	"time"

	"github.com/charmbracelet/huh"

	"github.com/wfahy/lifeops/internal/session"
	"github.com/wfahy/lifeops/internal/storage"
)

// Context is handed to every command: the record store plus the resolved
// session, so commands never reach for the current-profile slot themselves.
type Context struct {
	Store   *storage.Store
	Session session.Session
	DataDir string
}

// TodayDate is the calendar date key for new daily logs.
func TodayDate() string {
	return time.Now().Format("2006-01-02")
}

// Confirm asks before a destructive action. Errors (e.g. no TTY) count as a
// refusal.
func Confirm(title string) bool {
	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false
	}
	return confirmed
}
