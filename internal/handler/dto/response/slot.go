package response

import (
	"github.com/google/uuid"

	"slot-booking-api/internal/domain/schedule"
)

type SlotResponse struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	IsAvailable bool      `json:"isAvailable"`
}

type SlotStatusResponse struct {
	ID       uuid.UUID               `json:"id"`
	Date     string                  `json:"date"`
	Time     string                  `json:"time"`
	IsBooked bool                    `json:"isBooked"`
	Booking  *BookingContactResponse `json:"booking"`
}

type BookingContactResponse struct {
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ClientPhone string `json:"clientPhone"`
}

func FromSlot(slot *schedule.Slot) *SlotResponse {
	return &SlotResponse{
		ID:          slot.ID,
		Date:        slot.Date,
		Time:        slot.Time,
		IsAvailable: slot.IsAvailable,
	}
}

func FromSlots(slots []schedule.Slot) []*SlotResponse {
	result := make([]*SlotResponse, len(slots))
	for i := range slots {
		result[i] = FromSlot(&slots[i])
	}
	return result
}

func FromSlotStatus(status *schedule.SlotStatus) *SlotStatusResponse {
	resp := &SlotStatusResponse{
		ID:       status.ID,
		Date:     status.Date,
		Time:     status.Time,
		IsBooked: status.IsBooked,
	}
	if status.Booking != nil {
		resp.Booking = &BookingContactResponse{
			ClientName:  status.Booking.ClientName,
			ClientEmail: status.Booking.ClientEmail,
			ClientPhone: status.Booking.ClientPhone,
		}
	}
	return resp
}

func FromSlotStatuses(statuses []schedule.SlotStatus) []*SlotStatusResponse {
	result := make([]*SlotStatusResponse, len(statuses))
	for i := range statuses {
		result[i] = FromSlotStatus(&statuses[i])
	}
	return result
}
