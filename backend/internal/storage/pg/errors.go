package pg

import (
	stderrors "errors"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	internal_errors "github.com/threads-be/threads/shared/errors"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// isUniqueViolation recognises lib/pq's 23505 and sqlite's constraint message.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// notFoundOr maps gorm's missing-row error to a 404 with message and wraps anything else.
func notFoundOr(err error, message, op string) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return internal_errors.NotFound(message)
	}
	return errors.Wrap(err, op)
}

// conflictOr maps unique violations to a 409 with message and wraps anything else.
func conflictOr(err error, message, op string) error {
	if isUniqueViolation(err) {
		return internal_errors.Conflict(message)
	}
	return errors.Wrap(err, op)
}
