package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyDate         = errors.New("date is required")
	ErrEmptyTime         = errors.New("time is required")
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Slot is a publishable time unit identified by its (Date, Time) pair.
// IsAvailable is denormalized metadata only: whether a slot can actually be
// booked is decided by the presence of a Booking referencing it, never by
// this flag.
type Slot struct {
	ID          uuid.UUID
	Date        string
	Time        string
	IsAvailable bool
}

func NewSlot(date, timeOfDay string) (*Slot, error) {
	if date == "" {
		return nil, ErrEmptyDate
	}
	if timeOfDay == "" {
		return nil, ErrEmptyTime
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, ErrInvalidDateFormat
	}
	if _, err := time.Parse(TimeLayout, timeOfDay); err != nil {
		return nil, ErrInvalidTimeFormat
	}

	return &Slot{
		ID:          uuid.New(),
		Date:        date,
		Time:        timeOfDay,
		IsAvailable: true,
	}, nil
}
