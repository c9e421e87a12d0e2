package service

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
)

// UserService covers account registration, credential verification and
// token lifecycle.
type UserService interface {
	Index(ctx context.Context) ([]models.User, error)
	Show(ctx context.Context, userID string) (models.User, error)
	Create(ctx context.Context, user models.User) (models.User, error)

	Authenticate(ctx context.Context, userID string, password string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProductService covers the product catalog.
type ProductService interface {
	Index(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	Show(ctx context.Context, productID int64) (models.Product, error)
	Create(ctx context.Context, product models.Product) (models.Product, error)
}

// OrderService covers the order workflow: placing composite orders,
// reading them back and deleting them.
type OrderService interface {
	CreateCompleteOrder(ctx context.Context, order models.CompleteOrder) (models.CompleteOrder, error)
	ShowCompleteOrder(ctx context.Context, orderID int64) (models.CompleteOrder, error)
	ShowUserOrders(ctx context.Context, userID string, status *models.OrderStatus) ([]models.CompleteOrder, error)
	DeleteOrder(ctx context.Context, orderID int64) (models.Order, error)
}
