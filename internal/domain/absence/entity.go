package absence

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Absence is a leave period read from the absence directory. Bounds are whole
// days, both inclusive.
type Absence struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Status     Status
	Type       string
}
