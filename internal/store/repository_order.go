package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/jackc/pgerrcode"
)

// orderRepository is the PostgreSQL-backed implementation of
// [OrderRepository]. It owns both the "orders" header table and the
// "order_products" line-item table; line items never outlive their header
// (enforced by ON DELETE CASCADE).
type orderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOrderRepository constructs an [OrderRepository] backed by the provided
// database connection and logger.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCompleteOrder persists an order header and all its line items inside
// a single database transaction using a prepared statement for the lines.
//
// The transaction is rolled back automatically (via defer) if the header
// insert or any individual line insert fails; the commit is attempted only
// after all inserts succeed. A reader can therefore never observe a header
// with partial line items.
//
// Error handling:
//   - Foreign-key violation on the header insert → [ErrUserNotFound].
//   - Foreign-key violation on a line insert → [ErrProductNotFound].
//     Both backstop the service layer's existence checks, which are
//     check-then-act and race-prone under concurrent deletes.
//   - Everything else → wrapped low-level sentinel.
func (r *orderRepository) CreateCompleteOrder(ctx context.Context, order models.Order, lines []models.OrderProduct) (models.Order, []models.OrderProduct, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*orderRepository.CreateCompleteOrder").
			Str("db_error_class", r.db.errorClass(err)).
			Int("lines_count", len(lines)).
			Msg("failed to begin transaction")
		return models.Order{}, nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// insert order header
	headerErr := tx.QueryRowContext(ctx, createOrder, order.UserID, order.Completed).
		Scan(&order.ID, &order.UserID, &order.Completed)
	if headerErr != nil {
		log.Err(headerErr).
			Str("func", "*orderRepository.CreateCompleteOrder").
			Str("user_id", order.UserID).
			Str("db_error_class", r.db.errorClass(headerErr)).
			Msg("failed to insert order header")

		if postgresError(headerErr) == pgerrcode.ForeignKeyViolation {
			return models.Order{}, nil, ErrUserNotFound
		}
		return models.Order{}, nil, fmt.Errorf("%w: %w", ErrExecutingQuery, headerErr)
	}

	stmt, err := tx.PrepareContext(ctx, createOrderProduct)
	if err != nil {
		log.Err(err).
			Str("func", "*orderRepository.CreateCompleteOrder").
			Int64("order_id", order.ID).
			Msg("failed to prepare statement")
		return models.Order{}, nil, fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	createdLines := make([]models.OrderProduct, 0, len(lines))
	for idx, line := range lines {
		log.Debug().
			Str("func", "*orderRepository.CreateCompleteOrder").
			Int("iteration", idx+1).
			Int("total", len(lines)).
			Int64("product_id", line.ProductID).
			Msg("saving order line in transaction")

		var createdLine models.OrderProduct
		lineErr := stmt.QueryRowContext(ctx, order.ID, line.ProductID, line.Quantity).
			Scan(&createdLine.OrderID, &createdLine.ProductID, &createdLine.Quantity)
		if lineErr != nil {
			log.Err(lineErr).
				Str("func", "*orderRepository.CreateCompleteOrder").
				Int("iteration", idx+1).
				Int64("product_id", line.ProductID).
				Str("db_error_class", r.db.errorClass(lineErr)).
				Msg("failed to execute prepared statement")

			if postgresError(lineErr) == pgerrcode.ForeignKeyViolation {
				return models.Order{}, nil, ErrProductNotFound
			}
			return models.Order{}, nil, fmt.Errorf("%w: %w", ErrExecutingStatement, lineErr)
		}

		createdLines = append(createdLines, createdLine)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "*orderRepository.CreateCompleteOrder").
			Int64("order_id", order.ID).
			Int("lines_count", len(lines)).
			Str("db_error_class", r.db.errorClass(commitErr)).
			Msg("failed to commit transaction")
		return models.Order{}, nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "*orderRepository.CreateCompleteOrder").
		Int64("order_id", order.ID).
		Str("user_id", order.UserID).
		Int("lines_count", len(createdLines)).
		Msg("successfully created order with line items")

	return order, createdLines, nil
}

// FindOrderByID retrieves the order header with the given store-assigned
// identifier.
//
// Error handling:
//   - No matching row → [ErrOrderNotFound].
//   - Any other driver-level error → wrapped as [ErrDatabase].
func (r *orderRepository) FindOrderByID(ctx context.Context, orderID int64) (models.Order, error) {
	log := logger.FromContext(ctx)

	var foundOrder models.Order
	row := r.db.QueryRowContext(ctx, findOrderByID, orderID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*orderRepository.FindOrderByID").Int64("order_id", orderID).Msg("error: row is nil")
		return models.Order{}, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	if err := row.Scan(&foundOrder.ID, &foundOrder.UserID, &foundOrder.Completed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, ErrOrderNotFound
		}

		log.Err(err).Str("func", "*orderRepository.FindOrderByID").Int64("order_id", orderID).Msg("error: scanning error")
		return models.Order{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundOrder, nil
}

// FindOrderProducts retrieves every line item belonging to the given order
// header, ordered by product id. An empty result set is not an error; the
// caller decides whether that violates an invariant.
func (r *orderRepository) FindOrderProducts(ctx context.Context, orderID int64) ([]models.OrderProduct, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.db.QueryContext(ctx, findOrderProducts, orderID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "*orderRepository.FindOrderProducts").
			Int64("order_id", orderID).
			Str("db_error_class", r.db.errorClass(queryErr)).
			Msg("failed to execute query for getting order lines")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	lines := make([]models.OrderProduct, 0, 8)

	for rows.Next() {
		var line models.OrderProduct

		scanErr := rows.Scan(&line.OrderID, &line.ProductID, &line.Quantity)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*orderRepository.FindOrderProducts").
				Int64("order_id", orderID).
				Msg("failed to scan order line row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		lines = append(lines, line)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*orderRepository.FindOrderProducts").
			Int64("order_id", orderID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return lines, nil
}

// FindUserOrders retrieves the order headers belonging to the given user,
// optionally filtered by the completed flag (nil selects both statuses),
// ordered by id. An empty result set is not an error at this layer; the
// service maps it to the status-specific not-found sentinel.
func (r *orderRepository) FindUserOrders(ctx context.Context, userID string, completed *bool) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserOrdersQuery(userID, completed)
	if err != nil {
		log.Err(err).
			Str("func", "*orderRepository.FindUserOrders").
			Str("user_id", userID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := r.db.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "*orderRepository.FindUserOrders").
			Str("user_id", userID).
			Str("db_error_class", r.db.errorClass(queryErr)).
			Msg("failed to execute query for getting user orders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	orders := make([]models.Order, 0, 10)

	for rows.Next() {
		var order models.Order

		scanErr := rows.Scan(&order.ID, &order.UserID, &order.Completed)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*orderRepository.FindUserOrders").
				Str("user_id", userID).
				Msg("failed to scan order row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		orders = append(orders, order)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*orderRepository.FindUserOrders").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return orders, nil
}

// DeleteOrder removes the order header with the given id and returns the
// pre-deletion row. Line items are removed by the ON DELETE CASCADE
// constraint on order_products.
//
// Error handling:
//   - No matching row → [ErrOrderNotFound].
//   - Any other driver-level error → wrapped as [ErrDatabase].
func (r *orderRepository) DeleteOrder(ctx context.Context, orderID int64) (models.Order, error) {
	log := logger.FromContext(ctx)

	var deletedOrder models.Order
	row := r.db.QueryRowContext(ctx, deleteOrder, orderID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*orderRepository.DeleteOrder").Int64("order_id", orderID).Msg("error: row is nil")
		return models.Order{}, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	if err := row.Scan(&deletedOrder.ID, &deletedOrder.UserID, &deletedOrder.Completed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, ErrOrderNotFound
		}

		log.Err(err).Str("func", "*orderRepository.DeleteOrder").Int64("order_id", orderID).Msg("error: scanning error")
		return models.Order{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	log.Info().
		Str("func", "*orderRepository.DeleteOrder").
		Int64("order_id", deletedOrder.ID).
		Msg("deleted order header")

	return deletedOrder, nil
}
