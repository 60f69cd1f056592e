package http

import (
	"time"

	"glory-event-api/internal/apperr"
	"glory-event-api/internal/services"

	"github.com/gin-gonic/gin"
)

const portfolioDateLayout = "2006-01-02"

func (h *Handler) ListPortfolio(c *gin.Context) {
	out, err := h.portfolio.ListEntries(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, out)
}

func (h *Handler) FeaturedPortfolio(c *gin.Context) {
	out, err := h.portfolio.FeaturedEntries(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, out)
}

func (h *Handler) PortfolioByCategory(c *gin.Context) {
	out, err := h.portfolio.EntriesByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, out)
}

func (h *Handler) PortfolioByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.portfolio.EntryByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, p)
}

func (h *Handler) CreatePortfolio(c *gin.Context) {
	var req createPortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(portfolioDateLayout, req.Date)
		if err != nil {
			fields := apperr.FieldErrors{}
			fields.Add("date", "date must use the YYYY-MM-DD format")
			respondError(c, h.log, apperr.Validation("validation failed", fields))
			return
		}
		date = parsed
	}

	p, err := h.portfolio.CreateEntry(c.Request.Context(), services.CreatePortfolioInput{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
		Featured:    req.Featured,
		Date:        date,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondCreated(c, "portfolio entry created successfully", p)
}

func (h *Handler) UpdatePortfolio(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	in := services.UpdatePortfolioInput{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
		Featured:    req.Featured,
	}
	if req.Date != nil {
		parsed, err := time.Parse(portfolioDateLayout, *req.Date)
		if err != nil {
			fields := apperr.FieldErrors{}
			fields.Add("date", "date must use the YYYY-MM-DD format")
			respondError(c, h.log, apperr.Validation("validation failed", fields))
			return
		}
		in.Date = &parsed
	}

	p, err := h.portfolio.UpdateEntry(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, p)
}

func (h *Handler) DeletePortfolio(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.portfolio.DeleteEntry(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	respondMessage(c, "portfolio entry deleted successfully")
}
