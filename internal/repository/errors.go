package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Common repository errors
var (
	// ErrCreateParent is returned when the first insert of a linked write fails
	ErrCreateParent = errors.New("repository: create parent row failed")

	// ErrCreateLink is returned when a membership insert fails; the transaction is rolled back
	ErrCreateLink = errors.New("repository: create membership row failed")

	// ErrOwnerNotFound is returned when a card has no owner membership
	ErrOwnerNotFound = errors.New("card owner not found")

	// ErrCreatorNotFound is returned when a card does not exist or has no creator
	ErrCreatorNotFound = errors.New("card creator not found")
)

// Postgres SQLSTATE codes
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

// IsForeignKeyViolation reports whether err was caused by a row referencing a missing parent.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolation)
}

// IsUniqueViolation reports whether err was caused by a duplicate key, e.g. a repeated membership.
func IsUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// Describe renders err for server-side logs, naming the violated constraint for Postgres errors.
func Describe(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err.Error()
	}

	kind := "postgres error " + pgErr.Code
	switch {
	case IsForeignKeyViolation(err):
		kind = "foreign key violation"
	case IsUniqueViolation(err):
		kind = "unique violation"
	}
	if pgErr.ConstraintName != "" {
		kind += " on " + pgErr.ConstraintName
	}
	return err.Error() + " (" + kind + ")"
}
