package shift

import (
	"context"
	"time"
)

// AssignmentService creates shifts after running every labor-rule check.
type AssignmentService interface {
	// Assign validates and atomically creates a shift on behalf of actorID
	Assign(ctx context.Context, req AssignShiftRequest, actorID string) (ShiftResponse, error)

	// Validate runs the assignment checks without writing anything
	Validate(ctx context.Context, req ValidateAssignmentRequest) (ValidationResult, error)

	// Get returns a single shift
	Get(ctx context.Context, id string) (ShiftResponse, error)

	// ListByEmployee returns an employee's shifts within [from, to]
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]ShiftResponse, error)
}

// AttendanceService drives the check-in/check-out state machine.
type AttendanceService interface {
	// AuditAction applies a CHECK_IN or CHECK_OUT reported from the field
	AuditAction(ctx context.Context, shiftID string, req AuditActionRequest, actorEmployeeID string) (ShiftResponse, error)
}

// WorkloadService accounts hours against labor-agreement ceilings.
type WorkloadService interface {
	// ValidateAssignment runs the ordered rule checks for a candidate
	// interval and returns its hour classification when all of them pass.
	// excludeShiftID, when non-empty, is ignored in every aggregation
	ValidateAssignment(ctx context.Context, employeeID string, start, end time.Time, excludeShiftID string) (*HourClassification, error)

	// Report summarizes the payroll cycle that the given month falls into
	Report(ctx context.Context, employeeID string, month time.Month, year int) (WorkloadReport, error)
}
