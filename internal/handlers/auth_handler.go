package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barberia-elite/booking-api/internal/auth"
	"github.com/barberia-elite/booking-api/internal/httperr"
	"github.com/barberia-elite/booking-api/internal/httpresp"
)

type AuthHandler struct {
	auth *auth.Service
}

func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "username and password are required")
		return
	}

	// Flat response time for failed attempts.
	time.Sleep(1 * time.Second)

	token, err := h.auth.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			httperr.Unauthorized(c, "invalid credentials")
			return
		}
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message": "login successful",
		"token":   token,
		"user": gin.H{
			"username": req.Username,
		},
	})
}
