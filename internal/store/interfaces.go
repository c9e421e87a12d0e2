package store

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	FindAllUsers(ctx context.Context) ([]models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
}

// ProductRepository is the data-access contract for catalog products.
type ProductRepository interface {
	FindAllProducts(ctx context.Context, category string) ([]models.Product, error)
	FindPopularProducts(ctx context.Context, limit int) ([]models.Product, error)
	FindProductByID(ctx context.Context, productID int64) (models.Product, error)
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
}

// OrderRepository is the data-access contract for order headers and their
// line items.
type OrderRepository interface {
	// CreateCompleteOrder persists an order header and all its line items
	// inside a single database transaction. Either everything is committed
	// or nothing is.
	CreateCompleteOrder(ctx context.Context, order models.Order, lines []models.OrderProduct) (models.Order, []models.OrderProduct, error)
	FindOrderByID(ctx context.Context, orderID int64) (models.Order, error)
	FindOrderProducts(ctx context.Context, orderID int64) ([]models.OrderProduct, error)
	FindUserOrders(ctx context.Context, userID string, completed *bool) ([]models.Order, error)
	DeleteOrder(ctx context.Context, orderID int64) (models.Order, error)
}

// ErrorClassificator distinguishes transient database faults from permanent
// ones so callers can log them apart.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
