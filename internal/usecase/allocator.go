package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"slot-booking-api/internal/domain/schedule"
	"slot-booking-api/internal/infra"
	"slot-booking-api/internal/pkg/clock"
	"slot-booking-api/internal/pkg/errs"
)

var (
	ErrInvalidInput      = errs.New("invalid input")
	ErrSlotNotFound      = errs.New("slot not found")
	ErrBookingNotFound   = errs.New("booking not found")
	ErrDuplicateSlot     = errs.New("slot already exists for this date and time")
	ErrSlotAlreadyBooked = errs.New("slot is already booked")
	ErrSlotHasBooking    = errs.New("slot has an active booking")
	ErrStoreUnavailable  = errs.New("store unavailable")
)

type SlotRepository interface {
	Create(ctx context.Context, slot *schedule.Slot) error
	FindByID(ctx context.Context, id uuid.UUID) (*schedule.Slot, error)
	FindByDateTime(ctx context.Context, date, timeOfDay string) (*schedule.Slot, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]schedule.Slot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *schedule.Booking) error
	FindBySlotID(ctx context.Context, slotID uuid.UUID) (*schedule.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]schedule.Booking, error)
	ListSlotIDs(ctx context.Context) ([]uuid.UUID, error)
}

type CreateBookingParams struct {
	SlotID      uuid.UUID
	ClientName  string
	ClientEmail string
	ClientPhone string
}

// ReservationUseCase is the sole authority for turning a slot id into a
// confirmed booking and for every read view joining slots with bookings.
type ReservationUseCase interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*schedule.Booking, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) error
	CreateSlot(ctx context.Context, date, timeOfDay string) (*schedule.Slot, error)
	DeleteSlot(ctx context.Context, slotID uuid.UUID) error
	ListAllSlots(ctx context.Context) ([]schedule.Slot, error)
	ListBookableSlots(ctx context.Context) ([]schedule.Slot, error)
	ListAllSlotsWithStatus(ctx context.Context) ([]schedule.SlotStatus, error)
	ListBookings(ctx context.Context) ([]schedule.Booking, error)
}

type reservationUseCaseImpl struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	clock       clock.Clock
}

func NewReservationUseCase(slotRepo SlotRepository, bookingRepo BookingRepository, clk clock.Clock) ReservationUseCase {
	return &reservationUseCaseImpl{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		clock:       clk,
	}
}

// CreateBooking claims a slot. The pre-check against an existing booking
// gives a friendly early rejection but is not race-free on its own; the
// unique constraint on bookings.slot_id decides the race, and a constraint
// violation on insert is folded into the same ErrSlotAlreadyBooked the
// pre-check produces.
func (u *reservationUseCaseImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*schedule.Booking, error) {
	slot, err := u.slotRepo.FindByID(ctx, params.SlotID)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrSlotNotFound)
		case infra.IsKind(err, infra.KindUnavailable):
			return nil, errs.Mark(err, ErrStoreUnavailable)
		default:
			return nil, errs.Wrap(err, "failed to look up slot")
		}
	}

	booking, err := schedule.NewBooking(slot, params.ClientName, params.ClientEmail, params.ClientPhone, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	existing, err := u.bookingRepo.FindBySlotID(ctx, params.SlotID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		if infra.IsKind(err, infra.KindUnavailable) {
			return nil, errs.Mark(err, ErrStoreUnavailable)
		}
		return nil, errs.Wrap(err, "failed to check existing booking")
	}
	if existing != nil {
		return nil, ErrSlotAlreadyBooked
	}

	if err := u.bookingRepo.Create(ctx, booking); err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			// Lost the race: another request claimed the slot between
			// the pre-check and the insert.
			return nil, errs.Mark(err, ErrSlotAlreadyBooked)
		case infra.IsKind(err, infra.KindUnavailable):
			return nil, errs.Mark(err, ErrStoreUnavailable)
		default:
			return nil, errs.Wrap(err, "failed to create booking")
		}
	}

	return booking, nil
}

func (u *reservationUseCaseImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID) error {
	if err := u.bookingRepo.Delete(ctx, bookingID); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrBookingNotFound)
		case infra.IsKind(err, infra.KindUnavailable):
			return errs.Mark(err, ErrStoreUnavailable)
		default:
			return errs.Wrap(err, "failed to cancel booking")
		}
	}
	return nil
}

// CreateSlot publishes a new slot, two-layer checked the same way as
// CreateBooking: pre-check on (date, time), then the slots unique
// constraint as backstop.
func (u *reservationUseCaseImpl) CreateSlot(ctx context.Context, date, timeOfDay string) (*schedule.Slot, error) {
	slot, err := schedule.NewSlot(date, timeOfDay)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	existing, err := u.slotRepo.FindByDateTime(ctx, slot.Date, slot.Time)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		if infra.IsKind(err, infra.KindUnavailable) {
			return nil, errs.Mark(err, ErrStoreUnavailable)
		}
		return nil, errs.Wrap(err, "failed to check existing slot")
	}
	if existing != nil {
		return nil, ErrDuplicateSlot
	}

	if err := u.slotRepo.Create(ctx, slot); err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.Mark(err, ErrDuplicateSlot)
		case infra.IsKind(err, infra.KindUnavailable):
			return nil, errs.Mark(err, ErrStoreUnavailable)
		default:
			return nil, errs.Wrap(err, "failed to create slot")
		}
	}

	return slot, nil
}

func (u *reservationUseCaseImpl) DeleteSlot(ctx context.Context, slotID uuid.UUID) error {
	booking, err := u.bookingRepo.FindBySlotID(ctx, slotID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		if infra.IsKind(err, infra.KindUnavailable) {
			return errs.Mark(err, ErrStoreUnavailable)
		}
		return errs.Wrap(err, "failed to check slot bookings")
	}
	if booking != nil {
		return ErrSlotHasBooking
	}

	if err := u.slotRepo.Delete(ctx, slotID); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrSlotNotFound)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			// A booking landed on the slot after the pre-check; the FK
			// keeps the delete from orphaning it.
			return errs.Mark(err, ErrSlotHasBooking)
		case infra.IsKind(err, infra.KindUnavailable):
			return errs.Mark(err, ErrStoreUnavailable)
		default:
			return errs.Wrap(err, "failed to delete slot")
		}
	}
	return nil
}

// The public read views degrade to empty results when the store is down so
// a transient outage never breaks the booking page.

func (u *reservationUseCaseImpl) ListAllSlots(ctx context.Context) ([]schedule.Slot, error) {
	slots, err := u.slotRepo.List(ctx)
	if err != nil {
		slog.Warn("degrading slot list to empty result", "error", err.Error())
		return []schedule.Slot{}, nil
	}
	return slots, nil
}

func (u *reservationUseCaseImpl) ListBookableSlots(ctx context.Context) ([]schedule.Slot, error) {
	slots, err := u.slotRepo.List(ctx)
	if err != nil {
		slog.Warn("degrading bookable slot list to empty result", "error", err.Error())
		return []schedule.Slot{}, nil
	}

	bookedIDs, err := u.bookingRepo.ListSlotIDs(ctx)
	if err != nil {
		slog.Warn("degrading bookable slot list to empty result", "error", err.Error())
		return []schedule.Slot{}, nil
	}

	return schedule.BookableSlots(slots, bookedIDs), nil
}

func (u *reservationUseCaseImpl) ListAllSlotsWithStatus(ctx context.Context) ([]schedule.SlotStatus, error) {
	slots, err := u.slotRepo.List(ctx)
	if err != nil {
		slog.Warn("degrading slot status list to empty result", "error", err.Error())
		return []schedule.SlotStatus{}, nil
	}

	bookings, err := u.bookingRepo.List(ctx)
	if err != nil {
		slog.Warn("degrading slot status list to empty result", "error", err.Error())
		return []schedule.SlotStatus{}, nil
	}

	return schedule.AnnotateSlots(slots, bookings), nil
}

// ListBookings is operator-only and does not degrade: the admin screen
// must see a failure rather than an empty list it could mistake for
// "no bookings".
func (u *reservationUseCaseImpl) ListBookings(ctx context.Context) ([]schedule.Booking, error) {
	bookings, err := u.bookingRepo.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	return bookings, nil
}
