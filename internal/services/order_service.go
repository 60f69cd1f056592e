package services

import (
	"context"
	"fmt"
	"net/mail"

	"glory-event-api/internal/apperr"
	"glory-event-api/internal/domain"
	"glory-event-api/internal/infra/notify"
	"glory-event-api/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type OrderItemRequest struct {
	ProductID uint64
	Quantity  int
}

type PlaceOrderRequest struct {
	ClientName  string
	ClientEmail string
	ClientPhone string
	Items       []OrderItemRequest
}

type OrderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	tx       repository.TxManager
	notifier notify.Notifier
	log      *logrus.Logger
}

func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, tx repository.TxManager, notifier notify.Notifier, log *logrus.Logger) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		tx:       tx,
		notifier: notifier,
		log:      log,
	}
}

func validatePlaceOrder(req PlaceOrderRequest) apperr.FieldErrors {
	fields := apperr.FieldErrors{}
	if req.ClientName == "" {
		fields.Add("client_name", "client_name is required")
	} else if len(req.ClientName) > 255 {
		fields.Add("client_name", "client_name must not exceed 255 characters")
	}
	if req.ClientEmail == "" {
		fields.Add("client_email", "client_email is required")
	} else if _, err := mail.ParseAddress(req.ClientEmail); err != nil {
		fields.Add("client_email", "client_email must be a valid email address")
	}
	if req.ClientPhone == "" {
		fields.Add("client_phone", "client_phone is required")
	} else if len(req.ClientPhone) > 50 {
		fields.Add("client_phone", "client_phone must not exceed 50 characters")
	}
	if len(req.Items) == 0 {
		fields.Add("produits", "at least one product is required")
	}
	for i, item := range req.Items {
		if item.Quantity < 1 {
			fields.Add(fmt.Sprintf("produits.%d.quantity", i), "quantity must be at least 1")
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// PlaceOrder validates the request, snapshots product prices, and persists
// the order header plus its lines as one transaction. The confirmation
// notification fires after commit and never affects the outcome.
func (s *OrderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*domain.Order, error) {
	if fields := validatePlaceOrder(req); fields != nil {
		return nil, apperr.Validation("validation failed", fields)
	}

	order := &domain.Order{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Status:      domain.StatusPending,
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		total := decimal.Zero
		lines := make([]domain.OrderLine, 0, len(req.Items))

		for i, item := range req.Items {
			product, err := s.products.FindByID(ctx, item.ProductID)
			if err != nil {
				return apperr.Internal("failed to load product", err)
			}
			if product == nil {
				fields := apperr.FieldErrors{}
				fields.Add(fmt.Sprintf("produits.%d.id", i), fmt.Sprintf("product %d does not exist", item.ProductID))
				return apperr.Validation("validation failed", fields)
			}
			if !product.InStock {
				return apperr.Conflict(fmt.Sprintf("product %q is out of stock", product.Name))
			}

			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			lines = append(lines, domain.OrderLine{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				Price:     product.Price,
				Name:      product.Name,
				Slug:      product.Slug,
				Image:     product.Image,
			})
		}

		order.Total = total
		if err := s.orders.Save(ctx, order); err != nil {
			return apperr.Internal("failed to save order", err)
		}
		for i := range lines {
			lines[i].OrderID = order.ID
		}
		if err := s.orders.SaveLines(ctx, lines); err != nil {
			return apperr.Internal("failed to save order lines", err)
		}
		order.Lines = lines
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"order_id": order.ID, "total": order.Total}).Info("order placed")
	go s.sendConfirmation(context.Background(), order)

	return order, nil
}

func (s *OrderService) sendConfirmation(ctx context.Context, order *domain.Order) {
	err := s.notifier.NotifyOrderConfirmed(ctx, notify.OrderConfirmation{
		RecipientEmail: order.ClientEmail,
		OrderID:        order.ID,
	})
	if err != nil {
		s.log.WithError(err).WithField("order_id", order.ID).Warn("failed to send order confirmation")
	}
}

func (s *OrderService) GetOrder(ctx context.Context, id uint64) (*domain.Order, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to load order", err)
	}
	if o == nil {
		return nil, apperr.NotFound("order not found")
	}
	return o, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	out, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list orders", err)
	}
	return out, nil
}

func (s *OrderService) RecentOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	out, err := s.orders.FindRecent(ctx, limit)
	if err != nil {
		return nil, apperr.Internal("failed to list recent orders", err)
	}
	return out, nil
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uint64, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		fields := apperr.FieldErrors{}
		fields.Add("status", fmt.Sprintf("status must be one of: %s, %s, %s, %s",
			domain.StatusPending, domain.StatusInProgress, domain.StatusDelivered, domain.StatusCancelled))
		return nil, apperr.Validation("validation failed", fields)
	}
	o, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, apperr.Internal("failed to update order status", err)
	}
	if o == nil {
		return nil, apperr.NotFound("order not found")
	}
	return o, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uint64) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.orders.Delete(ctx, id)
	})
	if err != nil {
		if isNotFound(err) {
			return apperr.NotFound("order not found")
		}
		return apperr.Internal("failed to delete order", err)
	}
	return nil
}
