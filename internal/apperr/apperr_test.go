package apperr

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:          http.StatusBadRequest,
		KindUnauthenticated:     http.StatusUnauthorized,
		KindForbidden:           http.StatusForbidden,
		KindNotFound:            http.StatusNotFound,
		KindDuplicate:           http.StatusConflict,
		KindDatabaseUnavailable: http.StatusServiceUnavailable,
		KindInternal:            http.StatusInternalServerError,
	}
	for k, want := range cases {
		assert.Equal(t, want, k.Status(), k.String())
	}
}

func TestFromDB_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: CodeUniqueViolation, Message: "duplicate key value violates unique constraint"}
	err := FromDB(fmt.Errorf("insert ad: %w", pgErr), "Failed to save ads")

	e, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, KindDuplicate, e.Kind)
	assert.Equal(t, CodeUniqueViolation, e.Code)
}

func TestFromDB_OtherPgErrorKeepsMessageAndCode(t *testing.T) {
	pgErr := &pgconn.PgError{Code: CodeForeignKeyViolation, Message: "violates foreign key constraint"}
	err := FromDB(pgErr, "Failed to create blog")

	e, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, KindInternal, e.Kind)
	assert.Equal(t, "Failed to create blog", e.Message)
	assert.Equal(t, "violates foreign key constraint", e.Details)
	assert.Equal(t, CodeForeignKeyViolation, e.Code)
}

func TestFromDB_UndefinedTable(t *testing.T) {
	err := FromDB(&pgconn.PgError{Code: CodeUndefinedTable}, "x")
	e, _ := As(err)
	require.NotNil(t, e)
	assert.Equal(t, "Database table not found", e.Message)
}

func TestFromDB_ConnectionRefused(t *testing.T) {
	dialErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	err := FromDB(dialErr, "x")
	assert.True(t, IsKind(err, KindDatabaseUnavailable))
}

func TestFromDB_PassesThroughTypedErrors(t *testing.T) {
	nf := NotFound("Blog not found")
	assert.Same(t, nf, FromDB(nf, "ignored"))
	assert.NoError(t, FromDB(nil, "ignored"))
}

func TestErrorString(t *testing.T) {
	e := Internal("Failed to save ads", errors.New("boom"))
	assert.Equal(t, "Failed to save ads: boom", e.Error())
	assert.Equal(t, "Blog not found", NotFound("Blog not found").Error())
	assert.ErrorIs(t, e, e.Cause)
}
