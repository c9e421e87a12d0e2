package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
)

// productService is the concrete implementation of ProductService.
type productService struct {
	// productRepository is the data-access layer for the product catalog.
	productRepository store.ProductRepository

	// popularLimit caps how many products the popular-products listing returns.
	popularLimit int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewProductService constructs a ProductService wired to the given
// ProductRepository. The popular-products cap comes from cfg.
func NewProductService(productRepository store.ProductRepository, cfg config.App, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		popularLimit:      cfg.PopularProductsLimit,
		logger:            logger,
	}
}

// Index lists catalog products.
//
// When filter.Popular is set it returns the capped most-ordered subset of
// the catalog; otherwise it returns every product, optionally narrowed to
// filter.Category. An empty result set is not an error.
func (p *productService) Index(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	if filter.Popular {
		products, err := p.productRepository.FindPopularProducts(ctx, p.popularLimit)
		if err != nil {
			log.Err(err).Str("func", "*productService.Index").Msg("popular products listing ended with error")
			return nil, fmt.Errorf("popular products listing ended with error: %w", err)
		}
		return products, nil
	}

	products, err := p.productRepository.FindAllProducts(ctx, filter.Category)
	if err != nil {
		log.Err(err).Str("func", "*productService.Index").Str("category", filter.Category).Msg("products listing ended with error")
		return nil, fmt.Errorf("products listing ended with error: %w", err)
	}

	return products, nil
}

// Show looks up a single product by its store-assigned identifier.
//
// Returns the product record or:
//   - store.ErrProductNotFound if no product holds that identifier.
//   - A wrapped storage error if the repository call fails.
func (p *productService) Show(ctx context.Context, productID int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	foundProduct, err := p.productRepository.FindProductByID(ctx, productID)
	if err != nil {
		log.Err(err).Str("func", "*productService.Show").Int64("product_id", productID).Msg("product search by id failed")
		return models.Product{}, err
	}

	return foundProduct, nil
}

// Create adds a new product to the catalog.
//
// It validates that Name and Category are non-empty and Price is positive,
// then delegates persistence to the ProductRepository. The store assigns the
// identifier; any identifier on the input is ignored.
//
// Returns the persisted product or:
//   - ErrProductFieldsIncorrect if validation fails.
//   - A wrapped storage error if the repository call fails.
func (p *productService) Create(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	if product.Name == "" || product.Category == "" || product.Price <= 0 {
		log.Error().Str("func", "*productService.Create").Str("name", product.Name).Msg("invalid product data provided")
		return models.Product{}, ErrProductFieldsIncorrect
	}

	createdProduct, err := p.productRepository.CreateProduct(ctx, product)
	if err != nil {
		log.Err(err).Str("func", "*productService.Create").Str("name", product.Name).Msg("product creation ended with error")
		return models.Product{}, fmt.Errorf("product creation ended with error: %w", err)
	}

	return createdProduct, nil
}
