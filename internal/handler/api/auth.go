package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "slot-booking-api/internal/handler/dto/request"
	resdto "slot-booking-api/internal/handler/dto/response"
	"slot-booking-api/internal/handler/middleware"
	"slot-booking-api/internal/usecase"
)

type AuthHandler struct {
	sessions usecase.SessionRegistry
}

func NewAuthHandler(sessions usecase.SessionRegistry) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
	}
}

// @Summary Admin login
// @Description Authenticate the operator with the shared admin password
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Password is required",
		})
		return
	}

	token, err := h.sessions.Login(req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		Success: true,
		Token:   token,
	})
}

// @Summary Admin logout
// @Description Invalidate the presented session token; unknown tokens succeed too
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.LogoutResponse
// @Router /api/admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.BearerToken(c); token != "" {
		h.sessions.Logout(token)
	}
	c.JSON(http.StatusOK, resdto.LogoutResponse{Success: true})
}

// @Summary Check admin session
// @Description Report whether the presented token is an active admin session
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CheckResponse
// @Failure 401 {object} map[string]string
// @Router /api/admin/check [get]
func (h *AuthHandler) Check(c *gin.Context) {
	// RequireAuth already gated this route; reaching here means authenticated.
	c.JSON(http.StatusOK, resdto.CheckResponse{Authenticated: true})
}
