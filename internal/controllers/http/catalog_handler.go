package http

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListServices(c *gin.Context) {
	out, err := h.catalog.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, out)
}

func (h *Handler) FeaturedServices(c *gin.Context) {
	out, err := h.catalog.FeaturedServices(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, out)
}

func (h *Handler) ServicesByCategory(c *gin.Context) {
	out, err := h.catalog.ServicesByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, out)
}

func (h *Handler) ServiceBySlug(c *gin.Context) {
	svc, err := h.catalog.ServiceBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, svc)
}
