package repository

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	fk := fmt.Errorf("%w: %w", ErrCreateLink, &pgconn.PgError{Code: "23503", ConstraintName: "carduser_user_id_fkey"})
	dup := fmt.Errorf("%w: %w", ErrCreateLink, &pgconn.PgError{Code: "23505", ConstraintName: "boarduser_pkey"})
	other := &pgconn.PgError{Code: "57014"}

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsUniqueViolation(fk))
	assert.True(t, IsUniqueViolation(dup))
	assert.False(t, IsForeignKeyViolation(assert.AnError))

	assert.Contains(t, Describe(fk), "(foreign key violation on carduser_user_id_fkey)")
	assert.Contains(t, Describe(dup), "(unique violation on boarduser_pkey)")
	assert.Contains(t, Describe(other), "(postgres error 57014)")
	assert.Equal(t, assert.AnError.Error(), Describe(assert.AnError))
}
