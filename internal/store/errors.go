package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a record does not exist or belongs to
	// another owner. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("record not found")

	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidReference is returned when a write references a row that does
	// not exist (e.g. a related pleasant habit deleted in the meantime).
	ErrInvalidReference = errors.New("referenced record does not exist")

	// ErrConstraintViolation is returned when a CHECK constraint rejects a row.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrUnknownDriver is returned by [NewDB] for an unsupported driver name.
	ErrUnknownDriver = errors.New("unknown database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
