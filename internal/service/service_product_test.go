package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.ProductRepository
// ─────────────────────────────────────────────

type mockProductRepository struct {
	findAllProductsFn     func(ctx context.Context, category string) ([]models.Product, error)
	findPopularProductsFn func(ctx context.Context, limit int) ([]models.Product, error)
	findProductByIDFn     func(ctx context.Context, productID int64) (models.Product, error)
	createProductFn       func(ctx context.Context, product models.Product) (models.Product, error)
}

func (m *mockProductRepository) FindAllProducts(ctx context.Context, category string) ([]models.Product, error) {
	if m.findAllProductsFn != nil {
		return m.findAllProductsFn(ctx, category)
	}
	return nil, nil
}

func (m *mockProductRepository) FindPopularProducts(ctx context.Context, limit int) ([]models.Product, error) {
	if m.findPopularProductsFn != nil {
		return m.findPopularProductsFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockProductRepository) FindProductByID(ctx context.Context, productID int64) (models.Product, error) {
	if m.findProductByIDFn != nil {
		return m.findProductByIDFn(ctx, productID)
	}
	return models.Product{}, nil
}

func (m *mockProductRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	if m.createProductFn != nil {
		return m.createProductFn(ctx, product)
	}
	return product, nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newRawProductService(repository *mockProductRepository) *productService {
	return &productService{
		productRepository: repository,
		popularLimit:      5,
		logger:            logger.Nop(),
	}
}

// ─────────────────────────────────────────────
// Index
// ─────────────────────────────────────────────

func TestProductService_Index_AllProducts(t *testing.T) {
	want := []models.Product{
		{ID: 1, Name: "kettle", Price: 39.99, Category: "kitchen"},
		{ID: 2, Name: "toaster", Price: 24.50, Category: "kitchen"},
	}
	repository := &mockProductRepository{
		findAllProductsFn: func(_ context.Context, category string) ([]models.Product, error) {
			assert.Empty(t, category)
			return want, nil
		},
	}
	svc := newRawProductService(repository)

	products, err := svc.Index(context.Background(), models.ProductFilter{})

	require.NoError(t, err)
	assert.Equal(t, want, products)
}

func TestProductService_Index_ByCategory(t *testing.T) {
	repository := &mockProductRepository{
		findAllProductsFn: func(_ context.Context, category string) ([]models.Product, error) {
			assert.Equal(t, "kitchen", category)
			return []models.Product{{ID: 1, Name: "kettle", Price: 39.99, Category: "kitchen"}}, nil
		},
	}
	svc := newRawProductService(repository)

	products, err := svc.Index(context.Background(), models.ProductFilter{Category: "kitchen"})

	require.NoError(t, err)
	require.Len(t, products, 1)
}

func TestProductService_Index_Popular_UsesConfiguredLimit(t *testing.T) {
	repository := &mockProductRepository{
		findPopularProductsFn: func(_ context.Context, limit int) ([]models.Product, error) {
			assert.Equal(t, 5, limit)
			return []models.Product{{ID: 7, Name: "kettle", Price: 39.99, Category: "kitchen"}}, nil
		},
	}
	svc := newRawProductService(repository)

	products, err := svc.Index(context.Background(), models.ProductFilter{Popular: true})

	require.NoError(t, err)
	require.Len(t, products, 1)
}

func TestProductService_Index_StorageError(t *testing.T) {
	repository := &mockProductRepository{
		findAllProductsFn: func(_ context.Context, _ string) ([]models.Product, error) {
			return nil, errStorage
		},
	}
	svc := newRawProductService(repository)

	_, err := svc.Index(context.Background(), models.ProductFilter{})

	require.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// Show / Create
// ─────────────────────────────────────────────

func TestProductService_Show_NotFound(t *testing.T) {
	repository := &mockProductRepository{
		findProductByIDFn: func(_ context.Context, _ int64) (models.Product, error) {
			return models.Product{}, store.ErrProductNotFound
		},
	}
	svc := newRawProductService(repository)

	_, err := svc.Show(context.Background(), 404)

	require.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestProductService_Create_Success(t *testing.T) {
	repository := &mockProductRepository{
		createProductFn: func(_ context.Context, product models.Product) (models.Product, error) {
			product.ID = 42
			return product, nil
		},
	}
	svc := newRawProductService(repository)

	created, err := svc.Create(context.Background(), models.Product{Name: "kettle", Price: 39.99, Category: "kitchen"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
}

func TestProductService_Create_InvalidFields(t *testing.T) {
	svc := newRawProductService(&mockProductRepository{})

	for _, product := range []models.Product{
		{},
		{Name: "kettle", Price: 39.99},
		{Name: "kettle", Category: "kitchen"},
		{Price: 39.99, Category: "kitchen"},
		{Name: "kettle", Price: -1, Category: "kitchen"},
	} {
		_, err := svc.Create(context.Background(), product)
		require.ErrorIs(t, err, ErrProductFieldsIncorrect)
	}
}
