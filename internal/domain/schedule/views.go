package schedule

import "github.com/google/uuid"

// The read-side views below are pure functions over snapshots of the two
// collections. They never touch a store, which keeps them trivially
// unit-testable and keeps their cost linear in len(slots)+len(bookings)
// (a set/map join, not a nested scan).

// BookingContact is the client info surfaced on a booked slot's status row.
type BookingContact struct {
	ClientName  string
	ClientEmail string
	ClientPhone string
}

// SlotStatus is a Slot annotated with whether a booking claims it.
type SlotStatus struct {
	Slot
	IsBooked bool
	Booking  *BookingContact
}

// BookableSlots filters out every slot already referenced by a booking.
// Input order is preserved.
func BookableSlots(slots []Slot, bookedSlotIDs []uuid.UUID) []Slot {
	booked := make(map[uuid.UUID]struct{}, len(bookedSlotIDs))
	for _, id := range bookedSlotIDs {
		booked[id] = struct{}{}
	}

	bookable := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		if _, ok := booked[slot.ID]; ok {
			continue
		}
		bookable = append(bookable, slot)
	}
	return bookable
}

// AnnotateSlots joins slots with their bookings. Input order is preserved.
func AnnotateSlots(slots []Slot, bookings []Booking) []SlotStatus {
	contactBySlot := make(map[uuid.UUID]*BookingContact, len(bookings))
	for _, b := range bookings {
		contactBySlot[b.SlotID] = &BookingContact{
			ClientName:  b.ClientName,
			ClientEmail: b.ClientEmail,
			ClientPhone: b.ClientPhone,
		}
	}

	statuses := make([]SlotStatus, len(slots))
	for i, slot := range slots {
		contact := contactBySlot[slot.ID]
		statuses[i] = SlotStatus{
			Slot:     slot,
			IsBooked: contact != nil,
			Booking:  contact,
		}
	}
	return statuses
}
