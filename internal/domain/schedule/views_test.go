//go:build unit

package schedule_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"slot-booking-api/internal/domain/schedule"
)

func makeSlot(date, timeOfDay string) schedule.Slot {
	return schedule.Slot{
		ID:          uuid.New(),
		Date:        date,
		Time:        timeOfDay,
		IsAvailable: true,
	}
}

func makeBooking(slot schedule.Slot, name, email, phone string) schedule.Booking {
	return schedule.Booking{
		ID:          uuid.New(),
		SlotID:      slot.ID,
		Date:        slot.Date,
		Time:        slot.Time,
		ClientName:  name,
		ClientEmail: email,
		ClientPhone: phone,
	}
}

func TestBookableSlots(t *testing.T) {
	slotA := makeSlot("2024-06-01", "09:00")
	slotB := makeSlot("2024-06-01", "10:00")
	slotC := makeSlot("2024-06-02", "14:30")

	t.Run("予約済みスロットを除外する", func(t *testing.T) {
		got := schedule.BookableSlots(
			[]schedule.Slot{slotA, slotB, slotC},
			[]uuid.UUID{slotB.ID},
		)

		want := []schedule.Slot{slotA, slotC}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("BookableSlots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("予約が無ければ全件返す", func(t *testing.T) {
		got := schedule.BookableSlots([]schedule.Slot{slotA, slotB, slotC}, nil)

		want := []schedule.Slot{slotA, slotB, slotC}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("BookableSlots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("全て予約済みなら空スライス", func(t *testing.T) {
		got := schedule.BookableSlots(
			[]schedule.Slot{slotA, slotB},
			[]uuid.UUID{slotA.ID, slotB.ID},
		)

		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("スロットが無ければ空スライス", func(t *testing.T) {
		got := schedule.BookableSlots(nil, []uuid.UUID{slotA.ID})

		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("未知のスロットIDの予約は無視する", func(t *testing.T) {
		got := schedule.BookableSlots(
			[]schedule.Slot{slotA},
			[]uuid.UUID{uuid.New()},
		)

		want := []schedule.Slot{slotA}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("BookableSlots mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestAnnotateSlots(t *testing.T) {
	slotA := makeSlot("2024-06-01", "09:00")
	slotB := makeSlot("2024-06-01", "10:00")
	booking := makeBooking(slotB, "Jane Doe", "jane@example.com", "090-0000-0000")

	t.Run("予約の有無と連絡先を付与する", func(t *testing.T) {
		got := schedule.AnnotateSlots(
			[]schedule.Slot{slotA, slotB},
			[]schedule.Booking{booking},
		)

		want := []schedule.SlotStatus{
			{Slot: slotA, IsBooked: false, Booking: nil},
			{Slot: slotB, IsBooked: true, Booking: &schedule.BookingContact{
				ClientName:  "Jane Doe",
				ClientEmail: "jane@example.com",
				ClientPhone: "090-0000-0000",
			}},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("AnnotateSlots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("入力順を保持する", func(t *testing.T) {
		got := schedule.AnnotateSlots(
			[]schedule.Slot{slotB, slotA},
			[]schedule.Booking{booking},
		)

		assert.Equal(t, slotB.ID, got[0].ID)
		assert.Equal(t, slotA.ID, got[1].ID)
	})

	t.Run("予約が無ければ全てisBooked=false", func(t *testing.T) {
		got := schedule.AnnotateSlots([]schedule.Slot{slotA, slotB}, nil)

		for _, status := range got {
			assert.False(t, status.IsBooked)
			assert.Nil(t, status.Booking)
		}
	})
}
