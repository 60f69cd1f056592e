package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) TrackView(c *gin.Context) {
	var req trackViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	recorded, err := h.views.TrackView(c.Request.Context(), req.PageName, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if !recorded {
		// Throttled views answer 200 so clients do not retry.
		c.JSON(http.StatusOK, envelope{Success: false, Message: "view already recorded recently"})
		return
	}
	respondMessage(c, "view recorded successfully")
}

func (h *Handler) Statistics(c *gin.Context) {
	stats, err := h.views.Statistics(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// DashboardViewStats exposes the page-view subset the admin dashboard
// renders.
func (h *Handler) DashboardViewStats(c *gin.Context) {
	stats, err := h.views.Statistics(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total_views": stats.TotalViews,
		"today_views": stats.TodayViews,
		"month_views": stats.MonthViews,
		"year_views":  stats.YearViews,
		"daily_views": stats.DailyViews,
		"page_views":  stats.PageViews,
	})
}

func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, stats)
}
