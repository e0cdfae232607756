package absence

import "context"

// AbsenceRepository reads leave periods from the absence directory.
type AbsenceRepository interface {
	// ListActive returns the employee's PENDING and APPROVED absences.
	// Rejected absences never block an assignment
	ListActive(ctx context.Context, employeeID string) ([]Absence, error)
}
