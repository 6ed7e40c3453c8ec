// internal/repository/postgres/errors.go
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// PostgreSQL error codes
const (
	uniqueViolationCode      = "23505"
	foreignKeyViolationCode  = "23503"
	checkViolationCode       = "23514"
	notNullViolationCode     = "23502"
	serializationFailureCode = "40001"
	deadlockDetectedCode     = "40P01"
)

// sqlState extracts the SQLSTATE code from a lib/pq or pgx error.
// It returns "" for errors that did not come from the server.
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// isUniqueViolation checks if the given error is a unique constraint violation.
func isUniqueViolation(err error) bool {
	return sqlState(err) == uniqueViolationCode
}

// isForeignKeyViolation checks if the given error is a foreign key constraint violation.
func isForeignKeyViolation(err error) bool {
	return sqlState(err) == foreignKeyViolationCode
}

// isCheckViolation checks if the given error is a CHECK constraint violation.
func isCheckViolation(err error) bool {
	return sqlState(err) == checkViolationCode
}

// isSerializationFailure reports errors the server raises when concurrent
// transactions conflict; the caller may retry the whole transaction.
func isSerializationFailure(err error) bool {
	code := sqlState(err)
	return code == serializationFailureCode || code == deadlockDetectedCode
}

// describe gives a short label for a driver error, used in wrapped messages.
func describe(err error) string {
	switch {
	case isUniqueViolation(err):
		return "unique violation"
	case isForeignKeyViolation(err):
		return "foreign key violation"
	case isCheckViolation(err):
		return "check violation"
	case isSerializationFailure(err):
		return "concurrent update conflict"
	}
	switch sqlState(err) {
	case notNullViolationCode:
		return "not null violation"
	case "":
		return "driver error"
	default:
		return "database error"
	}
}
