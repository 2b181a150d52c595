package models

import "github.com/google/uuid"

// NewID returns an opaque unique token for a new record.
func NewID() string {
	return uuid.New().String()
}
