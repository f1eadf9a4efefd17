package errors

import (
	stderrs "errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes that read and seed paths map to a finer ErrorCode
const (
	pgUndefinedTable        = "42P01"
	pgUndefinedColumn       = "42703"
	pgInvalidText           = "22P02"
	pgNumericOutOfRange     = "22003"
	pgInsufficientPrivilege = "42501"
	pgQueryCanceled         = "57014"
	pgAdminShutdown         = "57P01"
	pgCannotConnectNow      = "57P03"
	pgReadOnlyTransaction   = "25006"
)

// ExtractPgError returns the *pgconn.PgError at the root of err
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// DBErrorCode maps a Postgres error to an ErrorCode, !ok when err carries no PgError
func DBErrorCode(err error) (ErrorCode, bool) {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch pgErr.Code {
	case pgUndefinedTable:
		return ErrorCodeNotFound, true
	case pgUndefinedColumn, pgInvalidText, pgNumericOutOfRange:
		// the table exists but does not hold inspection rows
		return ErrorCodeMalformedData, true
	case pgInsufficientPrivilege, pgQueryCanceled, pgAdminShutdown, pgCannotConnectNow, pgReadOnlyTransaction:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// FromPostgresf wraps a pg error under its mapped code, nil stays nil
// the column named by the server, if any, becomes the field
func FromPostgresf(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	out := Wrap(err, code, fmt.Sprintf(format, a...))
	if pgErr, ok := ExtractPgError(err); ok && pgErr.ColumnName != "" {
		out = WithField(out, pgErr.ColumnName)
	}
	return out
}
