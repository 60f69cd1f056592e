package http

import (
	"glory-event-api/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListProducts(c *gin.Context) {
	out, err := h.products.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, out)
}

func (h *Handler) FeaturedProducts(c *gin.Context) {
	out, err := h.products.FeaturedProducts(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, out)
}

func (h *Handler) ProductsByCategory(c *gin.Context) {
	out, err := h.products.ProductsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, out)
}

func (h *Handler) ProductBySlug(c *gin.Context) {
	p, err := h.products.ProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, p)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}
	p, err := h.products.CreateProduct(c.Request.Context(), services.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		InStock:     req.InStock,
		Featured:    req.Featured,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondCreated(c, "product created successfully", p)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}
	p, err := h.products.UpdateProduct(c.Request.Context(), id, services.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		InStock:     req.InStock,
		Featured:    req.Featured,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, p)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.products.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	respondMessage(c, "product deleted successfully")
}
