package v1

import (
	"database/sql"
	"errors"
	"fmt"
)

type DatabaseOperationType int8

const (
	DatabaseOperationWrite DatabaseOperationType = iota + 1
	DatabaseOperationRead
	DatabaseOperationDelete
	DatabaseOperationUpdate
)

func (t DatabaseOperationType) String() string {
	switch t {
	case DatabaseOperationWrite:
		return "write"
	case DatabaseOperationRead:
		return "read"
	case DatabaseOperationDelete:
		return "delete"
	case DatabaseOperationUpdate:
		return "update"
	default:
		return "unknown"
	}
}

type DatabaseError struct {
	cause error
	Op    DatabaseOperationType
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("Op=%s Message=%s", e.Op, e.cause)
}

func (e *DatabaseError) Unwrap() error {
	return e.cause
}

func WrapDatabaseError(baseErr error, opType DatabaseOperationType) error {
	if baseErr == nil {
		return nil
	}

	return &DatabaseError{cause: baseErr, Op: opType}
}

// IsNotFound reports whether err wraps an empty result set.
func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
