package session

import (
	"strings"

	"github.com/wfahy/lifeops/internal/storage"
)

// Session carries the active profile explicitly through command and page
// code instead of each call site re-reading the pointer slot.
type Session struct {
	ProfileID   string
	ProfileName string
}

// Load resolves the session from the stored current-profile pointer. With no
// profile selected everything runs as a guest on the shared collections.
func Load(store *storage.Store) Session {
	cur, ok := store.CurrentProfile()
	if !ok {
		return Session{}
	}
	return Session{ProfileID: cur.ID, ProfileName: cur.Name}
}

func (s Session) DisplayName() string {
	if s.ProfileName == "" {
		return "Guest"
	}
	return s.ProfileName
}

// MichelleMode hides the health panels on the home view for that profile.
func (s Session) MichelleMode() bool {
	return strings.EqualFold(strings.TrimSpace(s.ProfileName), "michelle")
}
