package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"glory-event-api/internal/domain"
	"glory-event-api/internal/mocks"
	"glory-event-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderRouter(orders *mocks.MockOrderRepository, products *mocks.MockProductRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	tx := new(mocks.MockTxManager)
	tx.On("WithinTransaction", mock.Anything, mock.Anything).Return(nil).Maybe()
	notifier := new(mocks.MockNotifier)
	notifier.On("NotifyOrderConfirmed", mock.Anything, mock.Anything).Return(nil).Maybe()

	orderService := services.NewOrderService(orders, products, tx, notifier, log)
	h := NewHandler(orderService, nil, nil, nil, nil, nil, nil, nil, log)

	r := gin.New()
	r.POST("/commandes", h.PlaceOrder)
	r.GET("/commandes/:id", h.GetOrder)
	return r
}

func TestPlaceOrderEndpoint(t *testing.T) {
	validBody := map[string]any{
		"client_name":  "Jane Doe",
		"client_email": "jane@x.com",
		"client_phone": "555-1234",
		"produits": []map[string]any{
			{"id": 7, "quantity": 2},
		},
	}

	tests := []struct {
		name           string
		body           any
		rawBody        string
		setupMocks     func(*mocks.MockOrderRepository, *mocks.MockProductRepository)
		expectedStatus int
		checkBody      func(*testing.T, map[string]any)
	}{
		{
			name: "valid order returns 201 with the stored order",
			body: validBody,
			setupMocks: func(orders *mocks.MockOrderRepository, products *mocks.MockProductRepository) {
				products.On("FindByID", mock.Anything, uint64(7)).Return(&domain.Product{
					ID: 7, Name: "chairs", InStock: true,
				}, nil)
				orders.On("Save", mock.Anything, mock.Anything).Return(nil)
				orders.On("SaveLines", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["success"])
				assert.NotNil(t, body["data"])
			},
		},
		{
			name: "out of stock returns 409",
			body: validBody,
			setupMocks: func(orders *mocks.MockOrderRepository, products *mocks.MockProductRepository) {
				products.On("FindByID", mock.Anything, uint64(7)).Return(&domain.Product{
					ID: 7, Name: "chairs", InStock: false,
				}, nil)
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, false, body["success"])
				assert.Contains(t, body["message"], "chairs")
			},
		},
		{
			name: "validation failure returns 422 with field errors",
			body: map[string]any{
				"client_email": "not-an-email",
				"produits":     []map[string]any{},
			},
			setupMocks:     func(*mocks.MockOrderRepository, *mocks.MockProductRepository) {},
			expectedStatus: http.StatusUnprocessableEntity,
			checkBody: func(t *testing.T, body map[string]any) {
				errs := body["errors"].(map[string]any)
				assert.Contains(t, errs, "client_name")
				assert.Contains(t, errs, "client_email")
				assert.Contains(t, errs, "produits")
			},
		},
		{
			name:           "malformed JSON returns 422",
			rawBody:        "{not json",
			setupMocks:     func(*mocks.MockOrderRepository, *mocks.MockProductRepository) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := new(mocks.MockOrderRepository)
			products := new(mocks.MockProductRepository)
			tt.setupMocks(orders, products)
			router := newOrderRouter(orders, products)

			var payload []byte
			if tt.rawBody != "" {
				payload = []byte(tt.rawBody)
			} else {
				payload, _ = json.Marshal(tt.body)
			}
			req := httptest.NewRequest(http.MethodPost, "/commandes", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkBody != nil {
				var body map[string]any
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				tt.checkBody(t, body)
			}
			orders.AssertExpectations(t)
			products.AssertExpectations(t)
		})
	}
}

func TestGetOrderEndpoint(t *testing.T) {
	t.Run("missing order returns 404", func(t *testing.T) {
		orders := new(mocks.MockOrderRepository)
		orders.On("FindByID", mock.Anything, uint64(999)).Return(nil, nil)
		router := newOrderRouter(orders, new(mocks.MockProductRepository))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/commandes/999", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id returns 404", func(t *testing.T) {
		router := newOrderRouter(new(mocks.MockOrderRepository), new(mocks.MockProductRepository))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/commandes/abc", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("existing order returns 200 with its lines", func(t *testing.T) {
		orders := new(mocks.MockOrderRepository)
		orders.On("FindByID", mock.Anything, uint64(1)).Return(&domain.Order{
			ID:     1,
			Status: domain.StatusPending,
			Lines:  []domain.OrderLine{{OrderID: 1, ProductID: 7, Quantity: 2}},
		}, nil)
		router := newOrderRouter(orders, new(mocks.MockProductRepository))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/commandes/1", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		data := body["data"].(map[string]any)
		assert.Equal(t, "pending", data["status"])
		assert.Len(t, data["produits"], 1)
	})
}
