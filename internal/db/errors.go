package db

import (
	"errors"
	"fmt"
)

// StorageOp classifies where a storage failure happened.
type StorageOp string

const (
	OpInit  StorageOp = "init"
	OpRead  StorageOp = "read"
	OpWrite StorageOp = "write"
)

// StorageError wraps any failure of the session store. Callers log it and
// recover; only init failures stop the happy path, and even those are
// reported to the user rather than crashing the process.
type StorageError struct {
	Op     StorageOp
	Action string
	Err    error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s error: %s: %v", e.Op, e.Action, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// InitError wraps err as a StorageError raised while opening the store.
func InitError(action string, err error) error {
	return &StorageError{Op: OpInit, Action: action, Err: err}
}

// ReadError wraps err as a StorageError raised by a query.
func ReadError(action string, err error) error {
	return &StorageError{Op: OpRead, Action: action, Err: err}
}

// WriteError wraps err as a StorageError raised by a mutation.
func WriteError(action string, err error) error {
	return &StorageError{Op: OpWrite, Action: action, Err: err}
}

// IsStorageOp reports whether err carries a StorageError of the given op.
func IsStorageOp(err error, op StorageOp) bool {
	var se *StorageError
	if errors.As(err, &se) {
		return se.Op == op
	}
	return false
}
