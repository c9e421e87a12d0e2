package store

import (
	"github.com/MKhiriev/go-storefront/internal/logger"
)

// Repositories bundles every data-access implementation behind its
// interface so the service layer can be wired with a single value.
type Repositories struct {
	UserRepository    UserRepository
	ProductRepository ProductRepository
	OrderRepository   OrderRepository
}

// NewRepositories constructs all PostgreSQL-backed repositories over the
// shared connection pool.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, logger),
		ProductRepository: NewProductRepository(db, logger),
		OrderRepository:   NewOrderRepository(db, logger),
	}
}
