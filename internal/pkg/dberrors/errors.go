package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the repositories react to
const (
	CodeUndefinedTable  = "42P01"
	CodeUniqueViolation = "23505"
)

// HasCode checks if err is a PostgreSQL error carrying the given SQLSTATE code
func HasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// IsUndefinedTable checks if err reports a missing table, as happens when
// migrations have not been applied yet.
func IsUndefinedTable(err error) bool {
	return HasCode(err, CodeUndefinedTable)
}
