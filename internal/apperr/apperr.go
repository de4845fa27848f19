// Package apperr is the error taxonomy shared by services and handlers.
// Each Kind maps to exactly one HTTP status.
package apperr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindDuplicate
	KindDatabaseUnavailable
)

// PostgreSQL SQLSTATE codes the API reacts to.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeUndefinedTable      = "42P01"
)

func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindDuplicate:
		return http.StatusConflict
	case KindDatabaseUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindDuplicate:
		return "duplicate"
	case KindDatabaseUnavailable:
		return "database_unavailable"
	default:
		return "internal"
	}
}

type Error struct {
	Kind    Kind
	Message string   // short, user facing ("Blog not found")
	Details string   // longer explanation or driver message
	Code    string   // SQLSTATE when the error came from the database
	Fields  []string // offending input fields for validation errors
	Cause   error
}

func (e *Error) Error() string {
	switch {
	case e.Details != "":
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) Status() int { return e.Kind.Status() }

func Validation(message, details string, fields ...string) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details, Fields: fields}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Duplicate(message, details string) *Error {
	return &Error{Kind: KindDuplicate, Message: message, Details: details}
}

func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Internal(message string, cause error) *Error {
	e := &Error{Kind: KindInternal, Message: message, Cause: cause}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func IsKind(err error, k Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == k
}

// FromDB classifies a driver error. Errors that already carry a Kind pass
// through untouched; anything unrecognised becomes Internal(message).
func FromDB(err error, message string) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}

	if isConnRefused(err) {
		return &Error{
			Kind:    KindDatabaseUnavailable,
			Message: "Database connection failed",
			Details: "Unable to connect to the database",
			Cause:   err,
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case CodeUniqueViolation:
			return &Error{Kind: KindDuplicate, Message: "Duplicate entry", Details: pgErr.Message, Code: pgErr.Code, Cause: err}
		case CodeUndefinedTable:
			return &Error{Kind: KindInternal, Message: "Database table not found", Details: "Required database tables are missing", Code: pgErr.Code, Cause: err}
		}
		return &Error{Kind: KindInternal, Message: message, Details: pgErr.Message, Code: pgErr.Code, Cause: err}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindDatabaseUnavailable, Message: "Database request timed out", Details: err.Error(), Cause: err}
	}

	return Internal(message, err)
}

func isConnRefused(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
