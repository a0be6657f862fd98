package repository

import (
	"context"

	"github.com/google/uuid"

	"slot-booking-api/internal/domain/schedule"
	"slot-booking-api/internal/infra"
	"slot-booking-api/internal/infra/db"
)

type BookingRepository struct {
	db db.Querier
}

func NewBookingRepository(querier db.Querier) *BookingRepository {
	return &BookingRepository{db: querier}
}

// Create inserts a booking row. The unique constraint on slot_id decides
// concurrent claims for the same slot: the loser comes back as
// KindDuplicateKey, which the allocator folds into its conflict result.
func (r *BookingRepository) Create(ctx context.Context, booking *schedule.Booking) error {
	const query = `
		INSERT INTO bookings (id, slot_id, slot_date, slot_time, client_name, client_email, client_phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		booking.ID, booking.SlotID, booking.Date, booking.Time,
		booking.ClientName, booking.ClientEmail, booking.ClientPhone, booking.CreatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindBySlotID(ctx context.Context, slotID uuid.UUID) (*schedule.Booking, error) {
	const query = `
		SELECT id, slot_id, slot_date, slot_time, client_name, client_email, client_phone, created_at
		FROM bookings
		WHERE slot_id = $1`

	var booking schedule.Booking
	err := r.db.QueryRow(ctx, query, slotID).Scan(
		&booking.ID, &booking.SlotID, &booking.Date, &booking.Time,
		&booking.ClientName, &booking.ClientEmail, &booking.ClientPhone, &booking.CreatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by slot ID", err)
	}
	return &booking, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM bookings WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) List(ctx context.Context) ([]schedule.Booking, error) {
	const query = `
		SELECT id, slot_id, slot_date, slot_time, client_name, client_email, client_phone, created_at
		FROM bookings
		ORDER BY slot_date, slot_time`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	bookings := []schedule.Booking{}
	for rows.Next() {
		var booking schedule.Booking
		if err := rows.Scan(
			&booking.ID, &booking.SlotID, &booking.Date, &booking.Time,
			&booking.ClientName, &booking.ClientEmail, &booking.ClientPhone, &booking.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err, infra.KindDBFailure)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return bookings, nil
}

// ListSlotIDs returns only the claimed slot ids, for the bookable-slots view.
func (r *BookingRepository) ListSlotIDs(ctx context.Context) ([]uuid.UUID, error) {
	const query = `SELECT slot_id FROM bookings`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked slot IDs", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked slot ID", err, infra.KindDBFailure)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked slot IDs", err)
	}
	return ids, nil
}
