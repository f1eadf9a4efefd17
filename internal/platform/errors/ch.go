package errors

// ClickHouse-specific helpers mapping server exceptions to project ErrorCode

import (
	stderrs "errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// Server exception codes we care about
const (
	chErrUnknownIdentifier   int32 = 47
	chErrUnknownTable        int32 = 60
	chErrSyntaxError         int32 = 62
	chErrCannotParseNumber   int32 = 72
	chErrUnknownDatabase     int32 = 81
	chErrTimeoutExceeded     int32 = 159
	chErrTooManyQueries      int32 = 202
	chErrSocketTimeout       int32 = 209
	chErrNetworkError        int32 = 210
	chErrAuthenticationError int32 = 516
)

// ExtractCHException returns (*clickhouse.Exception, true) if the root cause is a server exception
func ExtractCHException(err error) (*clickhouse.Exception, bool) {
	var ex *clickhouse.Exception
	if stderrs.As(err, &ex) {
		return ex, true
	}
	return nil, false
}

// CHErrorCode maps a ClickHouse exception to an ErrorCode with an ok flag
// !ok means err wasn't a server exception
func CHErrorCode(err error) (ErrorCode, bool) {
	ex, ok := ExtractCHException(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch ex.Code {
	case chErrUnknownTable, chErrUnknownDatabase:
		return ErrorCodeNotFound, true
	case chErrUnknownIdentifier, chErrCannotParseNumber:
		// the table exists but does not hold inspection rows
		return ErrorCodeMalformedData, true
	case chErrSyntaxError:
		return ErrorCodeInvalidArgument, true
	case chErrTimeoutExceeded, chErrTooManyQueries, chErrSocketTimeout, chErrNetworkError, chErrAuthenticationError:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// FromClickhousef wraps a clickhouse error under its mapped code, nil stays nil
func FromClickhousef(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	code, ok := CHErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return Wrap(err, code, fmt.Sprintf(format, a...))
}
