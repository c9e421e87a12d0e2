package models

// OrderStatus is the two-state lifecycle of an order. An order is created
// active (or, rarely, already completed) and the active → completed
// transition is owned by an external collaborator, not this service.
type OrderStatus string

const (
	// OrderStatusActive marks an order that has been placed but not
	// fulfilled.
	OrderStatusActive OrderStatus = "active"

	// OrderStatusCompleted marks a fulfilled order.
	OrderStatusCompleted OrderStatus = "completed"
)

// Valid reports whether s is one of the two defined order statuses.
func (s OrderStatus) Valid() bool {
	return s == OrderStatusActive || s == OrderStatusCompleted
}

// Completed converts the status to its boolean storage representation
// (the "completed" column of the orders table).
func (s OrderStatus) Completed() bool {
	return s == OrderStatusCompleted
}

// StatusFromCompleted converts the boolean storage representation back to
// an OrderStatus.
func StatusFromCompleted(completed bool) OrderStatus {
	if completed {
		return OrderStatusCompleted
	}
	return OrderStatusActive
}

// Order is the order header row. Line items live in OrderProduct records
// owned by the header (they cannot outlive it).
type Order struct {
	// ID is the store-assigned numeric identifier (bigserial).
	ID int64 `json:"id"`

	// UserID references the owning user. Must resolve to an existing user.
	UserID string `json:"userId"`

	// Completed is the storage form of the order status.
	Completed bool `json:"completed"`
}

// TableName returns the name of the database table
// associated with the Order model.
func (o Order) TableName() string {
	return "orders"
}

// OrderProduct is a single line item: one (product, quantity) pair
// belonging to exactly one order.
type OrderProduct struct {
	// OrderID references the owning order header.
	OrderID int64 `json:"orderId"`

	// ProductID references the ordered product. Must resolve to an
	// existing product.
	ProductID int64 `json:"productId"`

	// Quantity is the number of units ordered. Must be at least 1.
	Quantity int `json:"quantity"`
}

// TableName returns the name of the database table
// associated with the OrderProduct model.
func (op OrderProduct) TableName() string {
	return "order_products"
}

// CompleteOrder is the denormalized aggregate view of an order: the header
// plus its line items flattened into parallel ProductIDs/ProductQuantities
// slices. The two slices are always the same length (≥ 1) and index i of
// both describes the same line item.
type CompleteOrder struct {
	// ID is the header's store-assigned identifier.
	ID int64 `json:"id"`

	// ProductIDs lists the product of each line item.
	ProductIDs []int64 `json:"productIds"`

	// ProductQuantities lists the quantity of each line item, parallel
	// to ProductIDs.
	ProductQuantities []int `json:"productQuantities"`

	// UserID references the owning user.
	UserID string `json:"userId"`

	// Status is the enumerated order status ("active" or "completed").
	Status OrderStatus `json:"status"`
}

// CompleteOrderFromParts flattens an order header and its line items into
// the aggregate view.
func CompleteOrderFromParts(order Order, lines []OrderProduct) CompleteOrder {
	productIDs := make([]int64, 0, len(lines))
	productQuantities := make([]int, 0, len(lines))
	for _, line := range lines {
		productIDs = append(productIDs, line.ProductID)
		productQuantities = append(productQuantities, line.Quantity)
	}

	return CompleteOrder{
		ID:                order.ID,
		ProductIDs:        productIDs,
		ProductQuantities: productQuantities,
		UserID:            order.UserID,
		Status:            StatusFromCompleted(order.Completed),
	}
}

// Lines expands the aggregate's parallel slices into OrderProduct records
// bound to the given header id. It assumes the aggregate has already been
// validated (equal-length slices).
func (c CompleteOrder) Lines(orderID int64) []OrderProduct {
	lines := make([]OrderProduct, 0, len(c.ProductIDs))
	for i := range c.ProductIDs {
		lines = append(lines, OrderProduct{
			OrderID:   orderID,
			ProductID: c.ProductIDs[i],
			Quantity:  c.ProductQuantities[i],
		})
	}
	return lines
}
