package repository

import (
	"context"

	"github.com/google/uuid"

	"slot-booking-api/internal/domain/schedule"
	"slot-booking-api/internal/infra"
	"slot-booking-api/internal/infra/db"
)

type SlotRepository struct {
	db db.Querier
}

func NewSlotRepository(querier db.Querier) *SlotRepository {
	return &SlotRepository{db: querier}
}

func (r *SlotRepository) Create(ctx context.Context, slot *schedule.Slot) error {
	const query = `
		INSERT INTO slots (id, slot_date, slot_time, is_available)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.db.Exec(ctx, query, slot.ID, slot.Date, slot.Time, slot.IsAvailable); err != nil {
		return infra.WrapRepoErr("failed to create slot", err)
	}
	return nil
}

func (r *SlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*schedule.Slot, error) {
	const query = `
		SELECT id, slot_date, slot_time, is_available
		FROM slots
		WHERE id = $1`

	var slot schedule.Slot
	err := r.db.QueryRow(ctx, query, id).Scan(&slot.ID, &slot.Date, &slot.Time, &slot.IsAvailable)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}
	return &slot, nil
}

func (r *SlotRepository) FindByDateTime(ctx context.Context, date, timeOfDay string) (*schedule.Slot, error) {
	const query = `
		SELECT id, slot_date, slot_time, is_available
		FROM slots
		WHERE slot_date = $1 AND slot_time = $2`

	var slot schedule.Slot
	err := r.db.QueryRow(ctx, query, date, timeOfDay).Scan(&slot.ID, &slot.Date, &slot.Time, &slot.IsAvailable)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by date and time", err)
	}
	return &slot, nil
}

func (r *SlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM slots WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SlotRepository) List(ctx context.Context) ([]schedule.Slot, error) {
	const query = `
		SELECT id, slot_date, slot_time, is_available
		FROM slots
		ORDER BY slot_date, slot_time`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	slots := []schedule.Slot{}
	for rows.Next() {
		var slot schedule.Slot
		if err := rows.Scan(&slot.ID, &slot.Date, &slot.Time, &slot.IsAvailable); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err, infra.KindDBFailure)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot rows", err)
	}
	return slots, nil
}
