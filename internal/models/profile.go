package models

import (
	"regexp"
	"time"
)

// Profile is a locally stored identity used to partition data on a shared
// device. The PIN is a convenience gate, not security: it is stored in plain
// text and checked by string equality.
type Profile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	PIN       string `json:"pin,omitempty"` // 4 digits or empty
	CreatedAt string `json:"createdAt"`
}

// CurrentProfile is the pointer record naming the active profile. It is
// stored separately from the profile list.
type CurrentProfile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var pinPattern = regexp.MustCompile(`^\d{4}$`)

// ValidPIN reports whether s is an acceptable PIN value: empty (no PIN) or
// exactly four digits.
func ValidPIN(s string) bool {
	return s == "" || pinPattern.MatchString(s)
}

// CheckPIN verifies an entered PIN against the profile. Profiles without a
// PIN accept any input.
func (p Profile) CheckPIN(entered string) bool {
	if p.PIN == "" {
		return true
	}
	return entered == p.PIN
}

func (p Profile) Normalize() Profile {
	if p.ID == "" {
		p.ID = NewID()
	}
	if !pinPattern.MatchString(p.PIN) {
		p.PIN = ""
	}
	if p.CreatedAt == "" {
		p.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return p
}
