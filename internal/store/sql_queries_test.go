// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectProductsQuery_NoCategory(t *testing.T) {
	query, args, err := buildSelectProductsQuery("")
	require.NoError(t, err)

	require.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from products")
	require.Contains(t, q, "order by id")
	assert.NotContains(t, q, "where")
}

func Test_buildSelectProductsQuery_WithCategory(t *testing.T) {
	query, args, err := buildSelectProductsQuery("kitchen")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "kitchen", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "where")
	require.Contains(t, q, "category")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
}

func Test_buildPopularProductsQuery(t *testing.T) {
	query, args, err := buildPopularProductsQuery(5)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "left join order_products")
	require.Contains(t, q, "group by")
	require.Contains(t, q, "coalesce(sum(op.quantity), 0) desc")
	require.Contains(t, q, "p.id")
	require.Contains(t, q, "limit 5")

	// limit is rendered inline by squirrel, not bound
	assert.Empty(t, args)
}

func Test_buildSelectUserOrdersQuery_NoStatusFilter(t *testing.T) {
	query, args, err := buildSelectUserOrdersQuery("april_serra", nil)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "april_serra", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "from orders")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "order by id")
	assert.NotContains(t, q, "completed =")
}

func Test_buildSelectUserOrdersQuery_WithCompletedFilter(t *testing.T) {
	completed := true

	query, args, err := buildSelectUserOrdersQuery("april_serra", &completed)
	require.NoError(t, err)

	require.Len(t, args, 2)
	require.Equal(t, "april_serra", args[0])
	require.Equal(t, true, args[1])

	require.Contains(t, query, "$1")
	require.Contains(t, query, "$2")
	require.Contains(t, strings.ToLower(query), "completed")
}
