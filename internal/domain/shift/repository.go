package shift

import (
	"context"
	"time"
)

// ShiftRepository defines data access for shift records. List methods never
// return CANCELED shifts; canceled rows are dead for every labor-rule check.
type ShiftRepository interface {
	// Create inserts a new shift and returns it with id and timestamps set
	Create(ctx context.Context, shift Shift) (Shift, error)

	// GetByID retrieves a shift by id
	GetByID(ctx context.Context, id string) (Shift, error)

	// GetByIDForUpdate retrieves a shift by id with a row lock; call inside
	// a transaction
	GetByIDForUpdate(ctx context.Context, id string) (Shift, error)

	// Update persists status, check times and updated_at
	Update(ctx context.Context, shift Shift) error

	// ListByEmployeeEndingAfter returns the employee's shifts whose end time
	// is after the given instant
	ListByEmployeeEndingAfter(ctx context.Context, employeeID string, after time.Time) ([]Shift, error)

	// ListByEmployeeBetween returns the employee's shifts starting inside
	// [from, to], ordered by start time
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Shift, error)

	// ListOverlapping returns the employee's shifts intersecting (start, end).
	// This is the narrow predicate used for the in-transaction race re-check.
	ListOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]Shift, error)
}
