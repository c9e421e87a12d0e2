package service

import (
	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
)

type Services struct {
	UserService    UserService
	ProductService ProductService
	OrderService   OrderService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		UserService:    NewUserService(repositories.UserRepository, cfg.App, logger),
		ProductService: NewProductService(repositories.ProductRepository, cfg.App, logger),
		OrderService:   NewOrderService(repositories.OrderRepository, repositories.UserRepository, repositories.ProductRepository, logger),
	}
}
