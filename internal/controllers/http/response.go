package http

import (
	"net/http"

	"glory-event-api/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// envelope is the response shape every endpoint answers with.
type envelope struct {
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
	Data    any                `json:"data,omitempty"`
	Errors  apperr.FieldErrors `json:"errors,omitempty"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func respondCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, envelope{Success: true, Message: message, Data: data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, envelope{Success: true, Message: message})
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusUnprocessableEntity
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError maps the error taxonomy onto HTTP statuses. Internal detail
// stays in the log; clients get a generic message.
func respondError(c *gin.Context, log *logrus.Logger, err error) {
	if e, ok := err.(*apperr.Error); ok && e.Kind != apperr.KindInternal {
		c.JSON(statusFor(e.Kind), envelope{Success: false, Message: e.Message, Errors: e.Fields})
		return
	}
	log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	c.JSON(http.StatusInternalServerError, envelope{Success: false, Message: "internal server error"})
}

func respondBadBody(c *gin.Context) {
	c.JSON(http.StatusUnprocessableEntity, envelope{Success: false, Message: "malformed request body"})
}
