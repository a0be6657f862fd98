//go:build unit

package handler_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"slot-booking-api/internal/domain/schedule"
	"slot-booking-api/internal/handler"
	"slot-booking-api/internal/handler/api"
	reqdto "slot-booking-api/internal/handler/dto/request"
	resdto "slot-booking-api/internal/handler/dto/response"
	"slot-booking-api/internal/handler/middleware"
	"slot-booking-api/internal/infra"
	"slot-booking-api/internal/pkg/clock"
	"slot-booking-api/internal/pkg/config"
	"slot-booking-api/internal/usecase"
	"slot-booking-api/tests/common/httptest"
)

// In-memory repositories enforcing the same constraints the Postgres schema
// does, so the whole route surface can be exercised without a database.

type memSlotRepo struct {
	mu         sync.Mutex
	byID       map[uuid.UUID]*schedule.Slot
	byDateTime map[string]uuid.UUID
}

func newMemSlotRepo() *memSlotRepo {
	return &memSlotRepo{
		byID:       make(map[uuid.UUID]*schedule.Slot),
		byDateTime: make(map[string]uuid.UUID),
	}
}

func slotKey(date, timeOfDay string) string { return date + "|" + timeOfDay }

func (r *memSlotRepo) Create(_ context.Context, slot *schedule.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := slotKey(slot.Date, slot.Time)
	if _, ok := r.byDateTime[key]; ok {
		return infra.WrapRepoErr("failed to create slot", &pgconn.PgError{Code: "23505"})
	}
	r.byID[slot.ID] = slot
	r.byDateTime[key] = slot.ID
	return nil
}

func (r *memSlotRepo) FindByID(_ context.Context, id uuid.UUID) (*schedule.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slot, ok := r.byID[id]; ok {
		return slot, nil
	}
	return nil, infra.WrapRepoErr("slot not found", pgx.ErrNoRows)
}

func (r *memSlotRepo) FindByDateTime(_ context.Context, date, timeOfDay string) (*schedule.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.byDateTime[slotKey(date, timeOfDay)]; ok {
		return r.byID[id], nil
	}
	return nil, infra.WrapRepoErr("slot not found", pgx.ErrNoRows)
}

func (r *memSlotRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.byID[id]
	if !ok {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	delete(r.byID, id)
	delete(r.byDateTime, slotKey(slot.Date, slot.Time))
	return nil
}

func (r *memSlotRepo) List(_ context.Context) ([]schedule.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slots := make([]schedule.Slot, 0, len(r.byID))
	for _, slot := range r.byID {
		slots = append(slots, *slot)
	}
	return slots, nil
}

type memBookingRepo struct {
	mu     sync.Mutex
	bySlot map[uuid.UUID]*schedule.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bySlot: make(map[uuid.UUID]*schedule.Booking)}
}

func (r *memBookingRepo) Create(_ context.Context, booking *schedule.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bySlot[booking.SlotID]; ok {
		return infra.WrapRepoErr("failed to create booking", &pgconn.PgError{Code: "23505"})
	}
	r.bySlot[booking.SlotID] = booking
	return nil
}

func (r *memBookingRepo) FindBySlotID(_ context.Context, slotID uuid.UUID) (*schedule.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if booking, ok := r.bySlot[slotID]; ok {
		return booking, nil
	}
	return nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows)
}

func (r *memBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for slotID, booking := range r.bySlot {
		if booking.ID == id {
			delete(r.bySlot, slotID)
			return nil
		}
	}
	return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

func (r *memBookingRepo) List(_ context.Context) ([]schedule.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bookings := make([]schedule.Booking, 0, len(r.bySlot))
	for _, booking := range r.bySlot {
		bookings = append(bookings, *booking)
	}
	return bookings, nil
}

func (r *memBookingRepo) ListSlotIDs(_ context.Context) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(r.bySlot))
	for slotID := range r.bySlot {
		ids = append(ids, slotID)
	}
	return ids, nil
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	reservations := usecase.NewReservationUseCase(newMemSlotRepo(), newMemBookingRepo(), clock.NewRealClock())
	sessions, err := usecase.NewSessionRegistry(cfg)
	require.NoError(t, err)

	engine := gin.New()
	handler.NewRouter(
		engine,
		cfg,
		api.NewAuthHandler(sessions),
		api.NewSlotHandler(reservations),
		api.NewBookingHandler(reservations),
		api.NewHealthHandler(stubPinger{}),
		middleware.NewAuthMiddleware(sessions),
	)
	return engine
}

func login(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		reqdto.LoginRequest{Password: config.NewTestConfig().Admin.Password}, "")

	var resp resdto.LoginResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// TestBookingLifecycle walks the whole surface: publish a slot, book it,
// reject the double booking, cancel, rebook.
func TestBookingLifecycle(t *testing.T) {
	router := newTestRouter(t)

	// Health works before anything else.
	w := httptest.PerformRequest(t, router, http.MethodGet, "/api/health", nil, "")
	var health resdto.HealthResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &health)
	require.Equal(t, "ok", health.Status)
	require.True(t, health.StoreConnected)

	// Admin routes are gated.
	w = httptest.PerformRequest(t, router, http.MethodPost, "/api/available-slots",
		reqdto.CreateSlotRequest{Date: "2024-06-01", Time: "09:00"}, "")
	httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Unauthorized")

	// Wrong password is rejected.
	w = httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		reqdto.LoginRequest{Password: "wrong"}, "")
	httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid password")

	token := login(t, router)

	// Publish a slot.
	w = httptest.PerformRequest(t, router, http.MethodPost, "/api/available-slots",
		reqdto.CreateSlotRequest{Date: "2024-06-01", Time: "09:00"}, token)
	var slot resdto.SlotResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &slot)

	// Publishing the same (date, time) again is rejected.
	w = httptest.PerformRequest(t, router, http.MethodPost, "/api/available-slots",
		reqdto.CreateSlotRequest{Date: "2024-06-01", Time: "09:00"}, token)
	httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "already exists")

	// The slot is publicly visible and bookable.
	w = httptest.PerformRequest(t, router, http.MethodGet, "/api/bookable-slots", nil, "")
	var bookable []*resdto.SlotResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &bookable)
	require.Len(t, bookable, 1)

	// Book it, no auth needed.
	w = httptest.PerformRequest(t, router, http.MethodPost, "/api/bookings",
		reqdto.CreateBookingRequest{
			SlotID:      slot.ID.String(),
			ClientName:  "Jane Doe",
			ClientEmail: "jane@example.com",
		}, "")
	var booking resdto.BookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &booking)
	require.Equal(t, slot.ID, booking.SlotID)

	// A second booking for the same slot loses.
	w = httptest.PerformRequest(t, router, http.MethodPost, "/api/bookings",
		reqdto.CreateBookingRequest{
			SlotID:      slot.ID.String(),
			ClientName:  "John Doe",
			ClientEmail: "john@example.com",
		}, "")
	httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "already booked")

	// The booked slot disappears from the bookable view…
	w = httptest.PerformRequest(t, router, http.MethodGet, "/api/bookable-slots", nil, "")
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &bookable)
	require.Empty(t, bookable)

	// …and shows up as booked with contact info on the status view.
	w = httptest.PerformRequest(t, router, http.MethodGet, "/api/all-slots-status", nil, "")
	var statuses []*resdto.SlotStatusResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &statuses)
	require.Len(t, statuses, 1)
	require.True(t, statuses[0].IsBooked)
	require.NotNil(t, statuses[0].Booking)
	require.Equal(t, "Jane Doe", statuses[0].Booking.ClientName)

	// A booked slot cannot be deleted.
	w = httptest.PerformRequest(t, router, http.MethodDelete, "/api/available-slots/"+slot.ID.String(), nil, token)
	httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "cancel the booking first")

	// The operator sees the booking.
	w = httptest.PerformRequest(t, router, http.MethodGet, "/api/bookings", nil, token)
	var bookings []*resdto.BookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &bookings)
	require.Len(t, bookings, 1)

	// Cancelling frees the slot for rebooking.
	w = httptest.PerformRequest(t, router, http.MethodDelete, "/api/bookings/"+booking.ID.String(), nil, token)
	var msg resdto.MessageResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &msg)

	w = httptest.PerformRequest(t, router, http.MethodGet, "/api/bookable-slots", nil, "")
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &bookable)
	require.Len(t, bookable, 1)

	w = httptest.PerformRequest(t, router, http.MethodPost, "/api/bookings",
		reqdto.CreateBookingRequest{
			SlotID:      slot.ID.String(),
			ClientName:  "John Doe",
			ClientEmail: "john@example.com",
		}, "")
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &booking)
	require.Equal(t, "John Doe", booking.ClientName)
}

func TestSessionLifecycle(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	// Active session passes the check route.
	w := httptest.PerformRequest(t, router, http.MethodGet, "/api/admin/check", nil, token)
	var check resdto.CheckResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &check)
	require.True(t, check.Authenticated)

	// Logout revokes it.
	w = httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/logout", nil, token)
	var logout resdto.LogoutResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &logout)
	require.True(t, logout.Success)

	w = httptest.PerformRequest(t, router, http.MethodGet, "/api/admin/check", nil, token)
	httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Unauthorized")

	// Logging out again stays a success.
	w = httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/logout", nil, token)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &logout)
	require.True(t, logout.Success)
}
