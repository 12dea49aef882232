package shared

import (
	"errors"
	"strings"
)

var (
	// ErrRecordNotFound is returned by repositories when a scoped lookup matches no row.
	ErrRecordNotFound = errors.New("record not found")
	// ErrUniqueViolation is returned by repositories when an insert hits a unique index.
	ErrUniqueViolation = errors.New("unique constraint violation")
)

func IsUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrUniqueViolation) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "23505") ||
		strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "unique constraint")
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrRecordNotFound)
}
