package db

import (
	"errors"

	"github.com/lib/pq"
)

const (
	DuplicateEntry     pq.ErrorCode = "23505"
	CheckViolation     pq.ErrorCode = "23514"
	SerializationFault pq.ErrorCode = "40001"
)

func hasCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == code
	}
	return false
}

// IsDuplicate reports whether err is a Postgres unique-constraint violation.
func IsDuplicate(err error) bool {
	return hasCode(err, DuplicateEntry)
}

// IsCheckViolation reports whether err is a CHECK constraint violation.
func IsCheckViolation(err error) bool {
	return hasCode(err, CheckViolation)
}

// IsSerializationFailure reports whether err is a serializable-isolation
// conflict. Transactions hitting it are safe to retry from the top.
func IsSerializationFailure(err error) bool {
	return hasCode(err, SerializationFault)
}
