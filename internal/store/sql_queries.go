// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (id, first_name, last_name, password_digest)
    VALUES ($1, $2, $3, $4)
    RETURNING id, first_name, last_name, password_digest;`

	findUserByID = `SELECT id, first_name, last_name, password_digest
    FROM users
    WHERE id = $1;`

	selectAllUsers = `SELECT id, first_name, last_name, password_digest
    FROM users
    ORDER BY id;`

	createProduct = `INSERT INTO products (name, price, category)
    VALUES ($1, $2, $3)
    RETURNING id, name, price::double precision, category;`

	findProductByID = `SELECT id, name, price::double precision, category
    FROM products
    WHERE id = $1;`

	createOrder = `INSERT INTO orders (user_id, completed)
    VALUES ($1, $2)
    RETURNING id, user_id, completed;`

	createOrderProduct = `INSERT INTO order_products (order_id, product_id, quantity)
    VALUES ($1, $2, $3)
    RETURNING order_id, product_id, quantity;`

	findOrderByID = `SELECT id, user_id, completed
    FROM orders
    WHERE id = $1;`

	findOrderProducts = `SELECT order_id, product_id, quantity
    FROM order_products
    WHERE order_id = $1
    ORDER BY product_id;`

	deleteOrder = `DELETE FROM orders
    WHERE id = $1
    RETURNING id, user_id, completed;`
)

// buildSelectProductsQuery builds a product index query, optionally narrowed
// to a single category. An empty category selects the whole catalog.
func buildSelectProductsQuery(category string) (string, []any, error) {
	builder := sq.Select("id", "name", "price::double precision", "category").
		From("products").
		OrderBy("id").
		PlaceholderFormat(sq.Dollar)

	if category != "" {
		builder = builder.Where(sq.Eq{"category": category})
	}

	return builder.ToSql()
}

// buildPopularProductsQuery builds the capped "popular products" query.
//
// Popularity is defined as the total quantity ordered across all orders;
// products never ordered rank last. Ties are broken by product id so the
// result is deterministic. The cap comes from configuration.
func buildPopularProductsQuery(limit int) (string, []any, error) {
	return sq.Select("p.id", "p.name", "p.price::double precision", "p.category").
		From("products p").
		LeftJoin("order_products op ON op.product_id = p.id").
		GroupBy("p.id", "p.name", "p.price", "p.category").
		OrderBy("COALESCE(SUM(op.quantity), 0) DESC", "p.id").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildSelectUserOrdersQuery builds the user-orders query, optionally
// filtered by the completed flag. A nil completed selects orders of both
// statuses.
func buildSelectUserOrdersQuery(userID string, completed *bool) (string, []any, error) {
	builder := sq.Select("id", "user_id", "completed").
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		PlaceholderFormat(sq.Dollar)

	if completed != nil {
		builder = builder.Where(sq.Eq{"completed": *completed})
	}

	return builder.ToSql()
}
