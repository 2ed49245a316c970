package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ValidationError rejects malformed caller input before any write is issued.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func newValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// PersistenceError wraps a failed row-store call with the workflow stage that
// issued it, so callers can tell a failed parent insert from a failed child
// insert.
type PersistenceError struct {
	Stage string
	Err   error
}

func (e *PersistenceError) Error() string { return e.Stage + ": " + e.Err.Error() }
func (e *PersistenceError) Unwrap() error { return e.Err }

// StockUpdateFailure identifies one product whose stock adjustment failed
// after the transaction itself had already committed.
type StockUpdateFailure struct {
	ProductID uuid.UUID
	Name      string
	Err       error
}

// PartialStockUpdateError is non-fatal: the parent transaction and its line
// items are committed, but one or more stock counters were not adjusted.
// Callers detect it with errors.As and still treat the operation as recorded.
type PartialStockUpdateError struct {
	Failures []StockUpdateFailure
}

func (e *PartialStockUpdateError) Error() string {
	return fmt.Sprintf("stock update failed for %d product(s)", len(e.Failures))
}

// Warnings renders one human-readable line per failed product.
func (e *PartialStockUpdateError) Warnings() []string {
	warnings := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		warnings = append(warnings, fmt.Sprintf("stock not adjusted for %q: %s", f.Name, f.Err))
	}
	return warnings
}

// joinWarnings is used when logging the whole batch in one line.
func joinWarnings(ws []string) string { return strings.Join(ws, "; ") }
