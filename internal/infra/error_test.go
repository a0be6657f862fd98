//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"slot-booking-api/internal/infra"
)

func TestWrapRepoErrClassification(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantKind infra.RepositoryErrorKind
	}{
		{
			name:     "no rows maps to NOT_FOUND",
			err:      pgx.ErrNoRows,
			wantKind: infra.KindNotFound,
		},
		{
			name:     "wrapped no rows maps to NOT_FOUND",
			err:      fmt.Errorf("scan: %w", pgx.ErrNoRows),
			wantKind: infra.KindNotFound,
		},
		{
			name:     "unique violation maps to DUPLICATE_KEY",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "bookings_slot_id_key"},
			wantKind: infra.KindDuplicateKey,
		},
		{
			name:     "foreign key violation maps to FOREIGN_KEY_VIOLATED",
			err:      &pgconn.PgError{Code: "23503", ConstraintName: "bookings_slot_id_fkey"},
			wantKind: infra.KindForeignKeyViolated,
		},
		{
			name:     "other postgres error maps to DB_FAILURE",
			err:      &pgconn.PgError{Code: "42P01"},
			wantKind: infra.KindDBFailure,
		},
		{
			name:     "driver-level failure maps to UNAVAILABLE",
			err:      errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
			wantKind: infra.KindUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr("repo op failed", tc.err)

			assert.True(t, infra.IsKind(wrapped, tc.wantKind))
		})
	}
}

func TestWrapRepoErrExplicitKind(t *testing.T) {
	// An explicit kind overrides classification.
	wrapped := infra.WrapRepoErr("no rows affected", nil, infra.KindNotFound)

	assert.True(t, infra.IsKind(wrapped, infra.KindNotFound))
	assert.False(t, infra.IsKind(wrapped, infra.KindDBFailure))
}

func TestWrapRepoErrPreservesCause(t *testing.T) {
	cause := &pgconn.PgError{Code: "23505"}
	wrapped := infra.WrapRepoErr("insert failed", cause)

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(wrapped, &pgErr))
	assert.Contains(t, wrapped.Error(), "insert failed")
}

func TestIsKindOnForeignErrors(t *testing.T) {
	assert.False(t, infra.IsKind(errors.New("plain"), infra.KindNotFound))
	assert.False(t, infra.IsKind(nil, infra.KindNotFound))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, infra.IsNoRows(pgx.ErrNoRows))
	assert.True(t, infra.IsNoRows(fmt.Errorf("scan: %w", pgx.ErrNoRows)))
	assert.False(t, infra.IsNoRows(errors.New("other")))
}
