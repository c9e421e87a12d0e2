package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock OrderService
// ─────────────────────────────────────────────

// mockOrderService implements service.OrderService for unit tests.
type mockOrderService struct {
	createCompleteOrderFn func(ctx context.Context, order models.CompleteOrder) (models.CompleteOrder, error)
	showCompleteOrderFn   func(ctx context.Context, orderID int64) (models.CompleteOrder, error)
	showUserOrdersFn      func(ctx context.Context, userID string, status *models.OrderStatus) ([]models.CompleteOrder, error)
	deleteOrderFn         func(ctx context.Context, orderID int64) (models.Order, error)
}

func (m *mockOrderService) CreateCompleteOrder(ctx context.Context, order models.CompleteOrder) (models.CompleteOrder, error) {
	return m.createCompleteOrderFn(ctx, order)
}

func (m *mockOrderService) ShowCompleteOrder(ctx context.Context, orderID int64) (models.CompleteOrder, error) {
	return m.showCompleteOrderFn(ctx, orderID)
}

func (m *mockOrderService) ShowUserOrders(ctx context.Context, userID string, status *models.OrderStatus) ([]models.CompleteOrder, error) {
	return m.showUserOrdersFn(ctx, userID, status)
}

func (m *mockOrderService) DeleteOrder(ctx context.Context, orderID int64) (models.Order, error) {
	return m.deleteOrderFn(ctx, orderID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// authedUserService returns a UserService mock whose ParseToken accepts any
// token string and yields the given subject.
func authedUserService(subject string) *mockUserService {
	return &mockUserService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{
				RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
			}, nil
		},
	}
}

func authedRequest(method, target string, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.Header.Set("Authorization", "Bearer some.valid.token")
	return req
}

var aprilsOrder = models.CompleteOrder{
	ID:                11,
	ProductIDs:        []int64{1, 2},
	ProductQuantities: []int{3, 1},
	UserID:            "april_serra",
	Status:            models.OrderStatusActive,
}

// ─────────────────────────────────────────────
// createOrder
// ─────────────────────────────────────────────

func TestCreateOrder_Success(t *testing.T) {
	orders := &mockOrderService{
		createCompleteOrderFn: func(_ context.Context, order models.CompleteOrder) (models.CompleteOrder, error) {
			assert.Equal(t, "april_serra", order.UserID)
			order.ID = 11
			return order, nil
		},
	}
	h := newTestHandler(t, authedUserService("april_serra"), nil, orders)
	router := h.Init()

	body := jsonBody(t, models.CompleteOrder{
		ProductIDs:        []int64{1, 2},
		ProductQuantities: []int{3, 1},
		UserID:            "april_serra",
		Status:            models.OrderStatusActive,
	})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/orders", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.CompleteOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(11), got.ID)
	assert.Equal(t, []int64{1, 2}, got.ProductIDs)
}

func TestCreateOrder_FillsUserIDFromToken(t *testing.T) {
	orders := &mockOrderService{
		createCompleteOrderFn: func(_ context.Context, order models.CompleteOrder) (models.CompleteOrder, error) {
			assert.Equal(t, "april_serra", order.UserID)
			return order, nil
		},
	}
	h := newTestHandler(t, authedUserService("april_serra"), nil, orders)
	router := h.Init()

	body := jsonBody(t, models.CompleteOrder{
		ProductIDs:        []int64{1},
		ProductQuantities: []int{1},
	})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/orders", body))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateOrder_Unauthorized(t *testing.T) {
	h := newTestHandler(t, &mockUserService{}, nil, &mockOrderService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(jsonBody(t, aprilsOrder)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateOrder_UserNotFound(t *testing.T) {
	orders := &mockOrderService{
		createCompleteOrderFn: func(_ context.Context, _ models.CompleteOrder) (models.CompleteOrder, error) {
			return models.CompleteOrder{}, store.ErrUserNotFound
		},
	}
	h := newTestHandler(t, authedUserService("april_serra"), nil, orders)
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/orders", jsonBody(t, aprilsOrder)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrder_InvalidShape(t *testing.T) {
	orders := &mockOrderService{
		createCompleteOrderFn: func(_ context.Context, _ models.CompleteOrder) (models.CompleteOrder, error) {
			return models.CompleteOrder{}, service.ErrCompleteOrderFieldsIncorrect
		},
	}
	h := newTestHandler(t, authedUserService("april_serra"), nil, orders)
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/orders", jsonBody(t, models.CompleteOrder{UserID: "april_serra"})))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// showOrder
// ─────────────────────────────────────────────

func TestShowOrder_Success(t *testing.T) {
	orders := &mockOrderService{
		showCompleteOrderFn: func(_ context.Context, orderID int64) (models.CompleteOrder, error) {
			assert.Equal(t, int64(11), orderID)
			return aprilsOrder, nil
		},
	}
	h := newTestHandler(t, authedUserService("april_serra"), nil, orders)
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/orders/11", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.CompleteOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "april_serra", got.UserID)
	assert.Equal(t, models.OrderStatusActive, got.Status)
}

func TestShowOrder_NonNumericID(t *testing.T) {
	h := newTestHandler(t, authedUserService("april_serra"), nil, &mockOrderService{})
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/orders/eleven", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShowOrder_NotFound(t *testing.T) {
	orders := &mockOrderService{
		showCompleteOrderFn: func(_ context.Context, _ int64) (models.CompleteOrder, error) {
			return models.CompleteOrder{}, store.ErrOrderNotFound
		},
	}
	h := newTestHandler(t, authedUserService("april_serra"), nil, orders)
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/orders/404", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// deleteOrder
// ─────────────────────────────────────────────

func TestDeleteOrder_Success(t *testing.T) {
	orders := &mockOrderService{
		deleteOrderFn: func(_ context.Context, orderID int64) (models.Order, error) {
			assert.Equal(t, int64(11), orderID)
			return models.Order{ID: 11, UserID: "april_serra"}, nil
		},
	}
	h := newTestHandler(t, authedUserService("april_serra"), nil, orders)
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/orders/11", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "april_serra")
}

func TestDeleteOrder_NotFound(t *testing.T) {
	orders := &mockOrderService{
		deleteOrderFn: func(_ context.Context, _ int64) (models.Order, error) {
			return models.Order{}, store.ErrOrderNotFound
		},
	}
	h := newTestHandler(t, authedUserService("april_serra"), nil, orders)
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/orders/404", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// showUserOrders
// ─────────────────────────────────────────────

func TestShowUserOrders_NoStatusFilter(t *testing.T) {
	orders := &mockOrderService{
		showUserOrdersFn: func(_ context.Context, userID string, status *models.OrderStatus) ([]models.CompleteOrder, error) {
			assert.Equal(t, "april_serra", userID)
			assert.Nil(t, status)
			return []models.CompleteOrder{aprilsOrder}, nil
		},
	}
	h := newTestHandler(t, authedUserService("april_serra"), nil, orders)
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/users/april_serra/orders", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.CompleteOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
}

func TestShowUserOrders_StatusFilter(t *testing.T) {
	orders := &mockOrderService{
		showUserOrdersFn: func(_ context.Context, _ string, status *models.OrderStatus) ([]models.CompleteOrder, error) {
			require.NotNil(t, status)
			assert.Equal(t, models.OrderStatusCompleted, *status)
			return []models.CompleteOrder{}, nil
		},
	}
	h := newTestHandler(t, authedUserService("april_serra"), nil, orders)
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/users/april_serra/orders?status=completed", ""))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestShowUserOrders_NoOrders(t *testing.T) {
	orders := &mockOrderService{
		showUserOrdersFn: func(_ context.Context, _ string, _ *models.OrderStatus) ([]models.CompleteOrder, error) {
			return nil, store.ErrUserActiveOrdersNotFound
		},
	}
	h := newTestHandler(t, authedUserService("april_serra"), nil, orders)
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/users/april_serra/orders?status=active", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
