package response

import (
	"time"

	"github.com/google/uuid"

	"slot-booking-api/internal/domain/schedule"
)

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	SlotID      uuid.UUID `json:"slotId"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	ClientName  string    `json:"clientName"`
	ClientEmail string    `json:"clientEmail"`
	ClientPhone string    `json:"clientPhone"`
	CreatedAt   time.Time `json:"createdAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status         string `json:"status"`
	StoreConnected bool   `json:"storeConnected"`
}

func FromBooking(booking *schedule.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          booking.ID,
		SlotID:      booking.SlotID,
		Date:        booking.Date,
		Time:        booking.Time,
		ClientName:  booking.ClientName,
		ClientEmail: booking.ClientEmail,
		ClientPhone: booking.ClientPhone,
		CreatedAt:   booking.CreatedAt,
	}
}

func FromBookings(bookings []schedule.Booking) []*BookingResponse {
	result := make([]*BookingResponse, len(bookings))
	for i := range bookings {
		result[i] = FromBooking(&bookings[i])
	}
	return result
}
