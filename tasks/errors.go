package tasks

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested task does not exist.
	ErrNotFound = errors.New("tasks: not found")
	// ErrInvalidTransition indicates a status change that violates the
	// UNASSIGNED -> ASSIGNED -> CLOSED ordering.
	ErrInvalidTransition = errors.New("tasks: invalid status transition")
	// ErrKindDisabled indicates an attempt to create a task of a reserved kind.
	ErrKindDisabled = errors.New("tasks: kind disabled")
	// ErrEmptyText indicates an attempt to create a task with no description.
	ErrEmptyText = errors.New("tasks: empty text")
)

// StoreError wraps a database failure with the operation that caused it.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("tasks: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Code identifies the failure class for log correlation.
func (e *StoreError) Code() string { return "STORE_ERROR" }

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
