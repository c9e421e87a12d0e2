package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
)

// orderService is the concrete implementation of OrderService.
// It coordinates the order workflow across three repositories: the order
// aggregate itself plus referential checks against users and products.
type orderService struct {
	// orderRepository is the data-access layer for order headers and lines.
	orderRepository store.OrderRepository

	// userRepository is used to verify the ordering user exists.
	userRepository store.UserRepository

	// productRepository is used to verify every ordered product exists.
	productRepository store.ProductRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewOrderService constructs an OrderService wired to the given repositories.
func NewOrderService(orderRepository store.OrderRepository, userRepository store.UserRepository, productRepository store.ProductRepository, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository:   orderRepository,
		userRepository:    userRepository,
		productRepository: productRepository,
		logger:            logger,
	}
}

// CreateCompleteOrder places a new composite order: one header plus one line
// item per referenced product.
//
// It validates the aggregate shape, verifies the ordering user and every
// referenced product exist, then delegates to the repository which persists
// header and lines inside a single database transaction. The existence
// checks fail fast with precise errors; the database foreign keys backstop
// them under concurrent deletes.
//
// An order with an empty status is placed as active. The store assigns the
// order identifier; any identifier on the input is ignored.
//
// Returns the persisted aggregate or:
//   - ErrCompleteOrderFieldsIncorrect if the aggregate shape is invalid.
//   - store.ErrUserNotFound if the ordering user does not exist.
//   - store.ErrProductNotFound if any referenced product does not exist.
//   - A wrapped storage error if persistence fails.
func (o *orderService) CreateCompleteOrder(ctx context.Context, order models.CompleteOrder) (models.CompleteOrder, error) {
	log := logger.FromContext(ctx)

	if order.Status == "" {
		order.Status = models.OrderStatusActive
	}

	if validationErr := validateCompleteOrder(order); validationErr != nil {
		log.Error().
			Str("func", "*orderService.CreateCompleteOrder").
			Str("user_id", order.UserID).
			Int("product_ids_count", len(order.ProductIDs)).
			Int("quantities_count", len(order.ProductQuantities)).
			Msg("invalid complete order data provided")
		return models.CompleteOrder{}, validationErr
	}

	if _, userErr := o.userRepository.FindUserByID(ctx, order.UserID); userErr != nil {
		log.Err(userErr).Str("func", "*orderService.CreateCompleteOrder").Str("user_id", order.UserID).Msg("user search by id failed")
		return models.CompleteOrder{}, userErr
	}

	for _, productID := range order.ProductIDs {
		if _, productErr := o.productRepository.FindProductByID(ctx, productID); productErr != nil {
			log.Err(productErr).
				Str("func", "*orderService.CreateCompleteOrder").
				Int64("product_id", productID).
				Msg("product search by id failed")
			return models.CompleteOrder{}, productErr
		}
	}

	header := models.Order{
		UserID:    order.UserID,
		Completed: order.Status.Completed(),
	}

	createdHeader, createdLines, createErr := o.orderRepository.CreateCompleteOrder(ctx, header, order.Lines(0))
	if createErr != nil {
		log.Err(createErr).Str("func", "*orderService.CreateCompleteOrder").Str("user_id", order.UserID).Msg("order creation ended with error")
		return models.CompleteOrder{}, fmt.Errorf("order creation ended with error: %w", createErr)
	}

	return models.CompleteOrderFromParts(createdHeader, createdLines), nil
}

// ShowCompleteOrder reassembles the full aggregate view of a single order:
// its header plus every line item.
//
// Returns the aggregate or:
//   - store.ErrOrderNotFound if no order holds that identifier.
//   - A wrapped storage error if a repository call fails.
func (o *orderService) ShowCompleteOrder(ctx context.Context, orderID int64) (models.CompleteOrder, error) {
	log := logger.FromContext(ctx)

	header, headerErr := o.orderRepository.FindOrderByID(ctx, orderID)
	if headerErr != nil {
		log.Err(headerErr).Str("func", "*orderService.ShowCompleteOrder").Int64("order_id", orderID).Msg("order search by id failed")
		return models.CompleteOrder{}, headerErr
	}

	lines, linesErr := o.orderRepository.FindOrderProducts(ctx, orderID)
	if linesErr != nil {
		log.Err(linesErr).Str("func", "*orderService.ShowCompleteOrder").Int64("order_id", orderID).Msg("order lines search ended with error")
		return models.CompleteOrder{}, fmt.Errorf("order lines search ended with error: %w", linesErr)
	}

	return models.CompleteOrderFromParts(header, lines), nil
}

// ShowUserOrders lists a user's orders as full aggregates, optionally
// filtered by status (nil selects both statuses).
//
// Returns the aggregates or:
//   - ErrOrderFieldsIncorrect if the user id is empty or the status is not
//     a recognised value.
//   - store.ErrUserNotFound if the user does not exist.
//   - store.ErrUserOrdersNotFound (or its status-specific variant) if the
//     user exists but has no matching orders.
//   - A wrapped storage error if a repository call fails.
func (o *orderService) ShowUserOrders(ctx context.Context, userID string, status *models.OrderStatus) ([]models.CompleteOrder, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		log.Error().Str("func", "*orderService.ShowUserOrders").Msg("no user id provided")
		return nil, ErrOrderFieldsIncorrect
	}
	if status != nil && !status.Valid() {
		log.Error().Str("func", "*orderService.ShowUserOrders").Str("status", string(*status)).Msg("invalid order status provided")
		return nil, ErrOrderFieldsIncorrect
	}

	if _, userErr := o.userRepository.FindUserByID(ctx, userID); userErr != nil {
		log.Err(userErr).Str("func", "*orderService.ShowUserOrders").Str("user_id", userID).Msg("user search by id failed")
		return nil, userErr
	}

	var completed *bool
	if status != nil {
		isCompleted := status.Completed()
		completed = &isCompleted
	}

	headers, ordersErr := o.orderRepository.FindUserOrders(ctx, userID, completed)
	if ordersErr != nil {
		log.Err(ordersErr).Str("func", "*orderService.ShowUserOrders").Str("user_id", userID).Msg("user orders search ended with error")
		return nil, fmt.Errorf("user orders search ended with error: %w", ordersErr)
	}

	if len(headers) == 0 {
		return nil, emptyUserOrdersError(status)
	}

	orders := make([]models.CompleteOrder, 0, len(headers))
	for _, header := range headers {
		lines, linesErr := o.orderRepository.FindOrderProducts(ctx, header.ID)
		if linesErr != nil {
			log.Err(linesErr).
				Str("func", "*orderService.ShowUserOrders").
				Int64("order_id", header.ID).
				Msg("order lines search ended with error")
			return nil, fmt.Errorf("order lines search ended with error: %w", linesErr)
		}

		orders = append(orders, models.CompleteOrderFromParts(header, lines))
	}

	return orders, nil
}

// DeleteOrder removes an order and, through the cascade on order_products,
// all of its line items. It returns the deleted header.
//
// Returns the pre-deletion header or:
//   - store.ErrOrderNotFound if no order holds that identifier.
//   - A wrapped storage error if the repository call fails.
func (o *orderService) DeleteOrder(ctx context.Context, orderID int64) (models.Order, error) {
	log := logger.FromContext(ctx)

	deletedOrder, err := o.orderRepository.DeleteOrder(ctx, orderID)
	if err != nil {
		log.Err(err).Str("func", "*orderService.DeleteOrder").Int64("order_id", orderID).Msg("order deletion ended with error")
		return models.Order{}, err
	}

	return deletedOrder, nil
}

// validateCompleteOrder checks the aggregate shape of an incoming order:
// a known user reference, at least one line, ids and quantities of equal
// length, positive quantities, and a recognised status.
func validateCompleteOrder(order models.CompleteOrder) error {
	if order.UserID == "" {
		return ErrCompleteOrderFieldsIncorrect
	}
	if len(order.ProductIDs) == 0 {
		return ErrCompleteOrderFieldsIncorrect
	}
	if len(order.ProductIDs) != len(order.ProductQuantities) {
		return ErrCompleteOrderFieldsIncorrect
	}
	for _, quantity := range order.ProductQuantities {
		if quantity < 1 {
			return ErrCompleteOrderFieldsIncorrect
		}
	}
	if !order.Status.Valid() {
		return ErrCompleteOrderFieldsIncorrect
	}

	return nil
}

// emptyUserOrdersError maps an empty user-orders result to the sentinel
// matching the requested status filter.
func emptyUserOrdersError(status *models.OrderStatus) error {
	if status == nil {
		return store.ErrUserOrdersNotFound
	}
	if status.Completed() {
		return store.ErrUserCompletedOrdersNotFound
	}
	return store.ErrUserActiveOrdersNotFound
}
