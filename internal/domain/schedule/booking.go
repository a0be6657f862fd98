package schedule

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyClientName  = errors.New("client name is required")
	ErrEmptyClientEmail = errors.New("client email is required")
)

// Booking is a client's claim on exactly one Slot. Date and Time are copied
// from the slot at creation time so a booking row stays meaningful on its own.
type Booking struct {
	ID          uuid.UUID
	SlotID      uuid.UUID
	Date        string
	Time        string
	ClientName  string
	ClientEmail string
	ClientPhone string
	CreatedAt   time.Time
}

func NewBooking(slot *Slot, clientName, clientEmail, clientPhone string, now time.Time) (*Booking, error) {
	clientName = strings.TrimSpace(clientName)
	clientEmail = strings.TrimSpace(clientEmail)

	if clientName == "" {
		return nil, ErrEmptyClientName
	}
	if clientEmail == "" {
		return nil, ErrEmptyClientEmail
	}

	return &Booking{
		ID:          uuid.New(),
		SlotID:      slot.ID,
		Date:        slot.Date,
		Time:        slot.Time,
		ClientName:  clientName,
		ClientEmail: clientEmail,
		ClientPhone: strings.TrimSpace(clientPhone),
		CreatedAt:   now,
	}, nil
}
