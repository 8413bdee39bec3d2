//go:build unit

package pgconv

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestUUIDPtrFromPgtype(t *testing.T) {
	assert.Nil(t, UUIDPtrFromPgtype(pgtype.UUID{}))

	id := uuid.New()
	got := UUIDPtrFromPgtype(UUIDToPgtype(id))
	if assert.NotNil(t, got) {
		assert.Equal(t, id, *got)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	pt := TimeToPgtype(now)
	assert.True(t, pt.Valid)
	assert.Equal(t, now, TimeFromPgtype(pt))
}

func TestErrorClassifiers(t *testing.T) {
	wrap := func(code string) error {
		return fmt.Errorf("exec: %w", &pgconn.PgError{Code: code})
	}

	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(fmt.Errorf("scan: %w", sql.ErrNoRows)))
	assert.False(t, IsNoRows(wrap(CodeUniqueViolation)))

	assert.True(t, IsUniqueViolation(wrap(CodeUniqueViolation)))
	assert.False(t, IsUniqueViolation(wrap(CodeCheckViolation)))
	assert.True(t, IsForeignKeyViolation(wrap(CodeForeignKeyViolation)))
	assert.True(t, IsCheckViolation(wrap(CodeCheckViolation)))
	assert.False(t, IsCheckViolation(assert.AnError))
}
