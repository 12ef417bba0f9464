package models

import (
	"time"

	"github.com/google/uuid"
)

// displayDateLayout matches the month/day/year format shown next to uploads.
const displayDateLayout = "1/2/2006"

// NewID returns a unique, time-ordered identifier for documents and appointments.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// DisplayDate formats t as a short calendar date, e.g. 10/15/2026.
func DisplayDate(t time.Time) string {
	return t.Format(displayDateLayout)
}
