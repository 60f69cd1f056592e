package http

import (
	"glory-event-api/internal/domain"
	"glory-event-api/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) PlaceOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	items := make([]services.OrderItemRequest, 0, len(req.Produits))
	for _, item := range req.Produits {
		items = append(items, services.OrderItemRequest{ProductID: item.ID, Quantity: item.Quantity})
	}

	order, err := h.orders.PlaceOrder(c.Request.Context(), services.PlaceOrderRequest{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Items:       items,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respondCreated(c, "order placed successfully", order)
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, order)
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.orders.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, orders)
}

func (h *Handler) RecentOrders(c *gin.Context) {
	orders, err := h.orders.RecentOrders(c.Request.Context(), 10)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, orders)
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}
	order, err := h.orders.UpdateOrderStatus(c.Request.Context(), id, domain.OrderStatus(req.Status))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, order)
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.orders.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	respondMessage(c, "order deleted successfully")
}
