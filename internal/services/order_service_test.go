package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"glory-event-api/internal/apperr"
	"glory-event-api/internal/domain"
	"glory-event-api/internal/mocks"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func inStockProduct(id uint64, name, price string) *domain.Product {
	return &domain.Product{
		ID:      id,
		Name:    name,
		Slug:    name,
		Price:   decimal.RequireFromString(price),
		InStock: true,
	}
}

func validRequest() PlaceOrderRequest {
	return PlaceOrderRequest{
		ClientName:  "Jane Doe",
		ClientEmail: "jane@x.com",
		ClientPhone: "555-1234",
		Items: []OrderItemRequest{
			{ProductID: 7, Quantity: 2},
			{ProductID: 9, Quantity: 1},
		},
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	tests := []struct {
		name          string
		request       PlaceOrderRequest
		setupMocks    func(*mocks.MockOrderRepository, *mocks.MockProductRepository, *mocks.MockTxManager, *mocks.MockNotifier)
		expectedKind  apperr.Kind
		expectedTotal string
		errorContains string
		fieldWithErr  string
	}{
		{
			name:    "successful placement snapshots prices and sums total",
			request: validRequest(),
			setupMocks: func(orders *mocks.MockOrderRepository, products *mocks.MockProductRepository, tx *mocks.MockTxManager, notifier *mocks.MockNotifier) {
				tx.On("WithinTransaction", mock.Anything, mock.Anything).Return(nil)
				products.On("FindByID", mock.Anything, uint64(7)).Return(inStockProduct(7, "chairs", "10.00"), nil)
				products.On("FindByID", mock.Anything, uint64(9)).Return(inStockProduct(9, "tables", "25.00"), nil)
				orders.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.Order).ID = 42
				})
				orders.On("SaveLines", mock.Anything, mock.AnythingOfType("[]domain.OrderLine")).Return(nil)
				notifier.On("NotifyOrderConfirmed", mock.Anything, mock.Anything).Return(nil).Maybe()
			},
			expectedTotal: "45",
		},
		{
			name: "out of stock product fails the whole order",
			request: PlaceOrderRequest{
				ClientName:  "Jane Doe",
				ClientEmail: "jane@x.com",
				ClientPhone: "555-1234",
				Items: []OrderItemRequest{
					{ProductID: 7, Quantity: 2},
					{ProductID: 9, Quantity: 1},
				},
			},
			setupMocks: func(orders *mocks.MockOrderRepository, products *mocks.MockProductRepository, tx *mocks.MockTxManager, notifier *mocks.MockNotifier) {
				tx.On("WithinTransaction", mock.Anything, mock.Anything).Return(nil)
				products.On("FindByID", mock.Anything, uint64(7)).Return(inStockProduct(7, "chairs", "10.00"), nil)
				out := inStockProduct(9, "tables", "25.00")
				out.InStock = false
				products.On("FindByID", mock.Anything, uint64(9)).Return(out, nil)
			},
			expectedKind:  apperr.KindConflict,
			errorContains: "tables",
		},
		{
			name: "unknown product id is a validation failure",
			request: PlaceOrderRequest{
				ClientName:  "Jane Doe",
				ClientEmail: "jane@x.com",
				ClientPhone: "555-1234",
				Items:       []OrderItemRequest{{ProductID: 999, Quantity: 1}},
			},
			setupMocks: func(orders *mocks.MockOrderRepository, products *mocks.MockProductRepository, tx *mocks.MockTxManager, notifier *mocks.MockNotifier) {
				tx.On("WithinTransaction", mock.Anything, mock.Anything).Return(nil)
				products.On("FindByID", mock.Anything, uint64(999)).Return(nil, nil)
			},
			expectedKind: apperr.KindValidation,
			fieldWithErr: "produits.0.id",
		},
		{
			name: "malformed request is rejected before storage",
			request: PlaceOrderRequest{
				ClientName:  "",
				ClientEmail: "not-an-email",
				ClientPhone: "555-1234",
				Items:       []OrderItemRequest{{ProductID: 7, Quantity: 0}},
			},
			setupMocks:   func(*mocks.MockOrderRepository, *mocks.MockProductRepository, *mocks.MockTxManager, *mocks.MockNotifier) {},
			expectedKind: apperr.KindValidation,
			fieldWithErr: "client_name",
		},
		{
			name: "empty item list is rejected before storage",
			request: PlaceOrderRequest{
				ClientName:  "Jane Doe",
				ClientEmail: "jane@x.com",
				ClientPhone: "555-1234",
			},
			setupMocks:   func(*mocks.MockOrderRepository, *mocks.MockProductRepository, *mocks.MockTxManager, *mocks.MockNotifier) {},
			expectedKind: apperr.KindValidation,
			fieldWithErr: "produits",
		},
		{
			name:    "storage failure surfaces as internal error",
			request: validRequest(),
			setupMocks: func(orders *mocks.MockOrderRepository, products *mocks.MockProductRepository, tx *mocks.MockTxManager, notifier *mocks.MockNotifier) {
				tx.On("WithinTransaction", mock.Anything, mock.Anything).Return(nil)
				products.On("FindByID", mock.Anything, uint64(7)).Return(inStockProduct(7, "chairs", "10.00"), nil)
				products.On("FindByID", mock.Anything, uint64(9)).Return(inStockProduct(9, "tables", "25.00"), nil)
				orders.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(errors.New("connection lost"))
			},
			expectedKind: apperr.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := new(mocks.MockOrderRepository)
			products := new(mocks.MockProductRepository)
			tx := new(mocks.MockTxManager)
			notifier := new(mocks.MockNotifier)
			tt.setupMocks(orders, products, tx, notifier)

			service := NewOrderService(orders, products, tx, notifier, testLogger())
			order, err := service.PlaceOrder(context.Background(), tt.request)

			if tt.expectedTotal != "" {
				assert.NoError(t, err)
				assert.NotNil(t, order)
				assert.Equal(t, domain.StatusPending, order.Status)
				assert.True(t, order.Total.Equal(decimal.RequireFromString(tt.expectedTotal)),
					"total %s != %s", order.Total, tt.expectedTotal)
				assert.Len(t, order.Lines, len(tt.request.Items))
				for i, line := range order.Lines {
					assert.Equal(t, tt.request.Items[i].ProductID, line.ProductID)
					assert.Equal(t, tt.request.Items[i].Quantity, line.Quantity)
					assert.Equal(t, order.ID, line.OrderID)
				}
				time.Sleep(50 * time.Millisecond)
			} else {
				assert.Error(t, err)
				assert.Nil(t, order)
				assert.Equal(t, tt.expectedKind, apperr.KindOf(err))
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				if tt.fieldWithErr != "" {
					appErr := err.(*apperr.Error)
					assert.Contains(t, appErr.Fields, tt.fieldWithErr)
				}
				orders.AssertNotCalled(t, "SaveLines", mock.Anything, mock.Anything)
			}

			orders.AssertExpectations(t)
			products.AssertExpectations(t)
			tx.AssertExpectations(t)
			notifier.AssertExpectations(t)
		})
	}
}

func TestOrderService_PlaceOrder_NotificationFailureIsIgnored(t *testing.T) {
	orders := new(mocks.MockOrderRepository)
	products := new(mocks.MockProductRepository)
	tx := new(mocks.MockTxManager)
	notifier := new(mocks.MockNotifier)

	tx.On("WithinTransaction", mock.Anything, mock.Anything).Return(nil)
	products.On("FindByID", mock.Anything, uint64(7)).Return(inStockProduct(7, "chairs", "10.00"), nil)
	orders.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Order).ID = 7
	})
	orders.On("SaveLines", mock.Anything, mock.Anything).Return(nil)
	notifier.On("NotifyOrderConfirmed", mock.Anything, mock.Anything).Return(errors.New("smtp down")).Maybe()

	service := NewOrderService(orders, products, tx, notifier, testLogger())
	order, err := service.PlaceOrder(context.Background(), PlaceOrderRequest{
		ClientName:  "Jane Doe",
		ClientEmail: "jane@x.com",
		ClientPhone: "555-1234",
		Items:       []OrderItemRequest{{ProductID: 7, Quantity: 1}},
	})

	assert.NoError(t, err)
	assert.NotNil(t, order)
	time.Sleep(50 * time.Millisecond)
}

func TestOrderService_PlaceOrder_SnapshotPriceSurvivesPriceChange(t *testing.T) {
	orders := new(mocks.MockOrderRepository)
	products := new(mocks.MockProductRepository)
	tx := new(mocks.MockTxManager)
	notifier := new(mocks.MockNotifier)

	product := inStockProduct(7, "chairs", "10.00")
	tx.On("WithinTransaction", mock.Anything, mock.Anything).Return(nil)
	products.On("FindByID", mock.Anything, uint64(7)).Return(product, nil)
	orders.On("Save", mock.Anything, mock.Anything).Return(nil)
	orders.On("SaveLines", mock.Anything, mock.Anything).Return(nil)
	notifier.On("NotifyOrderConfirmed", mock.Anything, mock.Anything).Return(nil).Maybe()

	service := NewOrderService(orders, products, tx, notifier, testLogger())
	order, err := service.PlaceOrder(context.Background(), PlaceOrderRequest{
		ClientName:  "Jane Doe",
		ClientEmail: "jane@x.com",
		ClientPhone: "555-1234",
		Items:       []OrderItemRequest{{ProductID: 7, Quantity: 3}},
	})

	assert.NoError(t, err)

	// A later catalog price change must not affect the stored line.
	product.Price = decimal.RequireFromString("99.99")
	assert.True(t, order.Lines[0].Price.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, order.Total.Equal(decimal.RequireFromString("30.00")))
	time.Sleep(50 * time.Millisecond)
}

func TestOrderService_GetOrder(t *testing.T) {
	tests := []struct {
		name         string
		orderID      uint64
		setupMocks   func(*mocks.MockOrderRepository)
		expectedKind apperr.Kind
		found        bool
	}{
		{
			name:    "existing order is returned with its lines",
			orderID: 1,
			setupMocks: func(orders *mocks.MockOrderRepository) {
				orders.On("FindByID", mock.Anything, uint64(1)).Return(&domain.Order{
					ID:     1,
					Status: domain.StatusPending,
					Total:  decimal.RequireFromString("45.00"),
					Lines: []domain.OrderLine{
						{OrderID: 1, ProductID: 7, Quantity: 2, Price: decimal.RequireFromString("10.00")},
						{OrderID: 1, ProductID: 9, Quantity: 1, Price: decimal.RequireFromString("25.00")},
					},
				}, nil)
			},
			found: true,
		},
		{
			name:    "missing order is a not found error",
			orderID: 999,
			setupMocks: func(orders *mocks.MockOrderRepository) {
				orders.On("FindByID", mock.Anything, uint64(999)).Return(nil, nil)
			},
			expectedKind: apperr.KindNotFound,
		},
		{
			name:    "repository error is internal",
			orderID: 1,
			setupMocks: func(orders *mocks.MockOrderRepository) {
				orders.On("FindByID", mock.Anything, uint64(1)).Return(nil, errors.New("connection lost"))
			},
			expectedKind: apperr.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := new(mocks.MockOrderRepository)
			tt.setupMocks(orders)

			service := NewOrderService(orders, new(mocks.MockProductRepository), new(mocks.MockTxManager), new(mocks.MockNotifier), testLogger())
			order, err := service.GetOrder(context.Background(), tt.orderID)

			if tt.found {
				assert.NoError(t, err)
				assert.NotNil(t, order)

				// The total reconciles with the stored line snapshots.
				sum := decimal.Zero
				for _, line := range order.Lines {
					sum = sum.Add(line.Subtotal())
				}
				assert.True(t, order.Total.Equal(sum))
			} else {
				assert.Error(t, err)
				assert.Nil(t, order)
				assert.Equal(t, tt.expectedKind, apperr.KindOf(err))
			}
			orders.AssertExpectations(t)
		})
	}
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	t.Run("invalid status is rejected", func(t *testing.T) {
		service := NewOrderService(new(mocks.MockOrderRepository), new(mocks.MockProductRepository), new(mocks.MockTxManager), new(mocks.MockNotifier), testLogger())
		_, err := service.UpdateOrderStatus(context.Background(), 1, "shipped")
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("missing order is not found", func(t *testing.T) {
		orders := new(mocks.MockOrderRepository)
		orders.On("UpdateStatus", mock.Anything, uint64(2), domain.StatusDelivered).Return(nil, nil)
		service := NewOrderService(orders, new(mocks.MockProductRepository), new(mocks.MockTxManager), new(mocks.MockNotifier), testLogger())
		_, err := service.UpdateOrderStatus(context.Background(), 2, domain.StatusDelivered)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("valid transition returns the updated order", func(t *testing.T) {
		orders := new(mocks.MockOrderRepository)
		orders.On("UpdateStatus", mock.Anything, uint64(3), domain.StatusCancelled).
			Return(&domain.Order{ID: 3, Status: domain.StatusCancelled}, nil)
		service := NewOrderService(orders, new(mocks.MockProductRepository), new(mocks.MockTxManager), new(mocks.MockNotifier), testLogger())
		order, err := service.UpdateOrderStatus(context.Background(), 3, domain.StatusCancelled)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, order.Status)
	})
}
