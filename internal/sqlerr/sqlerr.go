// Package sqlerr translates driver-level errors into outcomes the services
// can act on. The uniqueness validators are advisory check-then-act; the
// unique indexes in the database are the authoritative defense, and a lost
// race surfaces here as a constraint violation that must map to the same
// conflict result.
package sqlerr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE for unique_violation on postgres.
const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique-constraint violation
// from either supported driver. Each create call site knows which unique
// key could have fired, so no constraint name is needed here.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// modernc sqlite reports "UNIQUE constraint failed: table.column" and
	// does not export a stable typed error through the gorm driver.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsNotFound reports whether err means the looked-up record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
