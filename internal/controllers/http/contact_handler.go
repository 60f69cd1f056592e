package http

import (
	"glory-event-api/internal/apperr"
	"glory-event-api/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateContact(c *gin.Context) {
	var req createContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}
	contact, err := h.contacts.CreateContact(c.Request.Context(), services.CreateContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Service: req.Service,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondCreated(c, "message sent successfully", contact)
}

func (h *Handler) RecentContacts(c *gin.Context) {
	contacts, err := h.contacts.RecentContacts(c.Request.Context(), 10)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, contacts)
}

func (h *Handler) MarkContactRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req markReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}
	if req.IsRead == nil {
		fields := apperr.FieldErrors{}
		fields.Add("is_read", "is_read is required")
		respondError(c, h.log, apperr.Validation("validation failed", fields))
		return
	}
	contact, err := h.contacts.MarkRead(c.Request.Context(), id, *req.IsRead)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, contact)
}

func (h *Handler) DeleteContact(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.contacts.DeleteContact(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	respondMessage(c, "contact deleted successfully")
}
