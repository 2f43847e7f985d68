package repo

import (
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicate is returned when an insert or update violates a unique
// constraint (username or email).
var ErrDuplicate = errors.New("duplicate value")

// uniqueViolation is the Postgres error code for unique constraint violations.
// Detected via the driver's typed error, never by matching message text.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
