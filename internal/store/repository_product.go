package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
)

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository]. Catalog reads dominate; the only write is the
// product insert.
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// FindAllProducts retrieves catalog products, optionally narrowed to a
// single category. An empty category selects every product; an empty result
// set is not an error.
func (r *productRepository) FindAllProducts(ctx context.Context, category string) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProductsQuery(category)
	if err != nil {
		log.Err(err).
			Str("func", "*productRepository.FindAllProducts").
			Str("category", category).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryProducts(ctx, query, args...)
}

// FindPopularProducts retrieves the capped most-ordered subset of the
// catalog. The ranking policy lives in [buildPopularProductsQuery].
func (r *productRepository) FindPopularProducts(ctx context.Context, limit int) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPopularProductsQuery(limit)
	if err != nil {
		log.Err(err).
			Str("func", "*productRepository.FindPopularProducts").
			Int("limit", limit).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryProducts(ctx, query, args...)
}

// queryProducts executes a product SELECT and scans the full result set.
func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.db.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "*productRepository.queryProducts").
			Str("db_error_class", r.db.errorClass(queryErr)).
			Msg("failed to execute product query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	products := make([]models.Product, 0, 50)

	for rows.Next() {
		var product models.Product

		scanErr := rows.Scan(&product.ID, &product.Name, &product.Price, &product.Category)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*productRepository.queryProducts").
				Msg("failed to scan product row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		products = append(products, product)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*productRepository.queryProducts").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return products, nil
}

// FindProductByID retrieves the product with the given store-assigned
// identifier.
//
// Error handling:
//   - No matching row → [ErrProductNotFound].
//   - Any other driver-level error → wrapped as [ErrDatabase].
func (r *productRepository) FindProductByID(ctx context.Context, productID int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	var foundProduct models.Product
	row := r.db.QueryRowContext(ctx, findProductByID, productID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*productRepository.FindProductByID").Int64("product_id", productID).Str("db_error_class", r.db.errorClass(err)).Msg("error: row is nil")
		return models.Product{}, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	if err := row.Scan(&foundProduct.ID, &foundProduct.Name, &foundProduct.Price, &foundProduct.Category); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}

		log.Err(err).Str("func", "*productRepository.FindProductByID").Int64("product_id", productID).Msg("error: scanning error")
		return models.Product{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundProduct, nil
}

// CreateProduct persists a new product and returns the row with its
// store-assigned id.
func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProduct, product.Name, product.Price, product.Category)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Str("name", product.Name).Str("db_error_class", r.db.errorClass(err)).Msg("error: row is nil")
		return models.Product{}, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	if err := row.Scan(&product.ID, &product.Name, &product.Price, &product.Category); err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Str("name", product.Name).Msg("error: scanning error")
		return models.Product{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return product, nil
}
