package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values;
// error messages are never compared.
var (
	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user with the given ID doesn't exist")

	// ErrUserAlreadyExists is returned when an attempt to create a new user
	// fails because a user with the same ID already exists in the database.
	ErrUserAlreadyExists = errors.New("user with the given ID already exists")

	// ErrProductNotFound is returned when a query expected to match a
	// product record produces an empty result set.
	ErrProductNotFound = errors.New("product with the given ID doesn't exist")

	// ErrOrderNotFound is returned when a query expected to match an order
	// header produces an empty result set.
	ErrOrderNotFound = errors.New("order with the given ID doesn't exist")

	// ErrUserOrdersNotFound is returned when an unfiltered user-orders query
	// matches no order headers for the given user.
	ErrUserOrdersNotFound = errors.New("no orders exist for the given user ID")

	// ErrUserActiveOrdersNotFound is returned when a user-orders query
	// filtered to active orders matches nothing.
	ErrUserActiveOrdersNotFound = errors.New("no active orders exist for the given user ID")

	// ErrUserCompletedOrdersNotFound is returned when a user-orders query
	// filtered to completed orders matches nothing.
	ErrUserCompletedOrdersNotFound = errors.New("no completed orders exist for the given user ID")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied. All of them surface to clients as a generic internal error.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared (e.g. syntax error or connection issue).
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing a prepared DML
	// statement (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDatabase is the catch-all wrapper for unexpected driver-level
	// faults (e.g. connectivity loss) that carry no domain meaning.
	ErrDatabase = errors.New("couldn't successfully query database")
)
