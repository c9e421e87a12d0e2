package models

// Product represents a catalog item. Products are immutable once created;
// only reads and inserts are supported.
type Product struct {
	// ID is the store-assigned numeric identifier (bigserial).
	ID int64 `json:"id"`

	// Name is the display name of the product. Must be non-empty.
	Name string `json:"name"`

	// Price is the unit price. Must be strictly greater than zero.
	Price float64 `json:"price"`

	// Category is the free-form category label. Must be non-empty.
	Category string `json:"category"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// ProductFilter narrows a product index query. The zero value selects
// every product.
type ProductFilter struct {
	// Category, when non-empty, restricts the result to products in
	// that category.
	Category string

	// Popular, when true, caps the result to the most-ordered products.
	// The cap size is configured at service construction time.
	Popular bool
}
