package http

import (
	"net/http"
	"strconv"
	"strings"

	"glory-event-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	orders    *services.OrderService
	products  *services.ProductService
	catalog   *services.CatalogService
	portfolio *services.PortfolioService
	contacts  *services.ContactService
	auth      *services.AuthService
	views     *services.PageViewService
	dashboard *services.DashboardService
	log       *logrus.Logger
}

func NewHandler(
	orders *services.OrderService,
	products *services.ProductService,
	catalog *services.CatalogService,
	portfolio *services.PortfolioService,
	contacts *services.ContactService,
	auth *services.AuthService,
	views *services.PageViewService,
	dashboard *services.DashboardService,
	log *logrus.Logger,
) *Handler {
	return &Handler{
		orders:    orders,
		products:  products,
		catalog:   catalog,
		portfolio: portfolio,
		contacts:  contacts,
		auth:      auth,
		views:     views,
		dashboard: dashboard,
		log:       log,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/login", h.Login)
	r.POST("/logout", h.RequireAuth(), h.Logout)
	r.GET("/user", h.RequireAuth(), h.CurrentUser)

	r.GET("/services", h.ListServices)
	r.GET("/services/featured", h.FeaturedServices)
	r.GET("/services/category/:category", h.ServicesByCategory)
	r.GET("/services/:slug", h.ServiceBySlug)

	r.POST("/track-view", h.TrackView)
	r.GET("/statistics", h.RequireAuth(), h.Statistics)
	r.GET("/dashboard-stats", h.RequireAuth(), h.DashboardViewStats)

	r.GET("/produits", h.ListProducts)
	r.GET("/produits/featured", h.FeaturedProducts)
	r.GET("/produits/category/:category", h.ProductsByCategory)
	r.GET("/produits/:slug", h.ProductBySlug)

	r.GET("/portfolio", h.ListPortfolio)
	r.GET("/portfolio/featured", h.FeaturedPortfolio)
	r.GET("/portfolio/category/:category", h.PortfolioByCategory)
	r.GET("/portfolio/:id", h.PortfolioByID)

	r.POST("/contacts", h.CreateContact)

	r.POST("/commandes", h.PlaceOrder)
	r.GET("/commandes/:id", h.GetOrder)

	admin := r.Group("/admin", h.RequireAuth())
	{
		admin.GET("/dashboard", h.Dashboard)
		admin.GET("/recent-orders", h.RecentOrders)
		admin.GET("/recent-contacts", h.RecentContacts)

		admin.GET("/contacts", h.RecentContacts)
		admin.DELETE("/contacts/:id", h.DeleteContact)
		admin.PUT("/contacts/:id/read", h.MarkContactRead)

		admin.GET("/commandes", h.ListOrders)
		admin.GET("/commandes/:id", h.GetOrder)
		admin.PUT("/commandes/:id", h.UpdateOrder)
		admin.DELETE("/commandes/:id", h.DeleteOrder)

		admin.GET("/produits", h.ListProducts)
		admin.POST("/produits", h.CreateProduct)
		admin.PUT("/produits/:id", h.UpdateProduct)
		admin.DELETE("/produits/:id", h.DeleteProduct)

		admin.POST("/portfolio", h.CreatePortfolio)
		admin.PUT("/portfolio/:id", h.UpdatePortfolio)
		admin.DELETE("/portfolio/:id", h.DeletePortfolio)
	}
}

const adminContextKey = "admin"

// RequireAuth resolves the bearer token to an admin account and aborts
// with 401 otherwise.
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		admin, err := h.auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			respondError(c, h.log, err)
			c.Abort()
			return
		}
		c.Set(adminContextKey, admin)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, envelope{Success: false, Message: "not found"})
		return 0, false
	}
	return id, true
}
