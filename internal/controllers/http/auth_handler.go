package http

import (
	"net/http"
	"net/mail"

	"glory-event-api/internal/apperr"
	"glory-event-api/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	fields := apperr.FieldErrors{}
	if req.Email == "" {
		fields.Add("email", "email is required")
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		fields.Add("email", "email must be a valid email address")
	}
	if req.Password == "" {
		fields.Add("password", "password is required")
	}
	if len(fields) > 0 {
		respondError(c, h.log, apperr.Validation("validation failed", fields))
		return
	}

	admin, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password, req.DeviceName, c.ClientIP())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
			"role":  admin.Role,
		},
		"token": token,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), bearerToken(c)); err != nil {
		respondError(c, h.log, err)
		return
	}
	respondMessage(c, "logged out successfully")
}

func (h *Handler) CurrentUser(c *gin.Context) {
	admin := c.MustGet(adminContextKey).(*domain.Admin)
	respondOK(c, admin)
}
