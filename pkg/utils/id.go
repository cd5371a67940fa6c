package utils

import "github.com/google/uuid"

// NewID generates a time-ordered UUID v7, falling back to v4 when the
// system clock source is unavailable.
func NewID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
