package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "slot-booking-api/internal/handler/dto/request"
	resdto "slot-booking-api/internal/handler/dto/response"
	"slot-booking-api/internal/usecase"
)

type SlotHandler struct {
	reservations usecase.ReservationUseCase
}

func NewSlotHandler(reservations usecase.ReservationUseCase) *SlotHandler {
	return &SlotHandler{
		reservations: reservations,
	}
}

// @Summary List all slots
// @Description Every published slot ordered by date and time
// @Tags slots
// @Produce json
// @Success 200 {array} resdto.SlotResponse
// @Router /api/available-slots [get]
func (h *SlotHandler) ListAll(c *gin.Context) {
	slots, err := h.reservations.ListAllSlots(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, []*resdto.SlotResponse{})
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlots(slots))
}

// @Summary Publish a slot
// @Description Create a new bookable slot for a date and time
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSlotRequest true "Slot request"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/available-slots [post]
func (h *SlotHandler) Create(c *gin.Context) {
	var req reqdto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Date and time are required",
		})
		return
	}

	slot, err := h.reservations.CreateSlot(c.Request.Context(), req.Date, req.Time)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Date and time are required",
			})
		case errors.Is(err, usecase.ErrDuplicateSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "A slot already exists for this date and time",
			})
		case errors.Is(err, usecase.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Store unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlot(slot))
}

// @Summary Delete a slot
// @Description Remove an unbooked slot; slots with a booking must be cancelled first
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/available-slots/{id} [delete]
func (h *SlotHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// Opaque ids: anything unparseable certainly names no slot.
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Slot not found",
		})
		return
	}

	if err := h.reservations.DeleteSlot(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrSlotHasBooking):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Slot has an active booking; cancel the booking first",
			})
		case errors.Is(err, usecase.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		case errors.Is(err, usecase.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Store unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Slot deleted"})
}

// @Summary List bookable slots
// @Description Slots not yet claimed by any booking
// @Tags slots
// @Produce json
// @Success 200 {array} resdto.SlotResponse
// @Router /api/bookable-slots [get]
func (h *SlotHandler) ListBookable(c *gin.Context) {
	slots, err := h.reservations.ListBookableSlots(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, []*resdto.SlotResponse{})
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlots(slots))
}

// @Summary List slots with booking status
// @Description Every slot annotated with booking presence and client contact info
// @Tags slots
// @Produce json
// @Success 200 {array} resdto.SlotStatusResponse
// @Router /api/all-slots-status [get]
func (h *SlotHandler) ListStatus(c *gin.Context) {
	statuses, err := h.reservations.ListAllSlotsWithStatus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, []*resdto.SlotStatusResponse{})
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotStatuses(statuses))
}
