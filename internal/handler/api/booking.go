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

type BookingHandler struct {
	reservations usecase.ReservationUseCase
}

func NewBookingHandler(reservations usecase.ReservationUseCase) *BookingHandler {
	return &BookingHandler{
		reservations: reservations,
	}
}

// @Summary Create booking
// @Description Claim a bookable slot for a client; at most one booking per slot
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Slot ID, client name and client email are required",
		})
		return
	}

	slotID, err := uuid.Parse(req.SlotID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Slot not found",
		})
		return
	}

	booking, err := h.reservations.CreateBooking(c.Request.Context(), usecase.CreateBookingParams{
		SlotID:      slotID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		case errors.Is(err, usecase.ErrSlotAlreadyBooked):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Slot is already booked",
			})
		case errors.Is(err, usecase.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Client name and client email are required",
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

	c.JSON(http.StatusOK, resdto.FromBooking(booking))
}

// @Summary List bookings
// @Description All bookings ordered by slot date and time
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.reservations.ListBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list bookings",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookings(bookings))
}

// @Summary Cancel booking
// @Description Delete a booking and free its slot for rebooking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
		return
	}

	if err := h.reservations.CancelBooking(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
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

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Booking cancelled"})
}
