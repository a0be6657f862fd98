package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	resdto "slot-booking-api/internal/handler/dto/response"
)

// StorePinger is satisfied by pgxpool.Pool.
type StorePinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store StorePinger
}

func NewHealthHandler(store StorePinger) *HealthHandler {
	return &HealthHandler{
		store: store,
	}
}

// @Summary Health check
// @Description Service liveness plus store connectivity
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router /api/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	connected := h.store.Ping(ctx) == nil

	c.JSON(http.StatusOK, resdto.HealthResponse{
		Status:         "ok",
		StoreConnected: connected,
	})
}
