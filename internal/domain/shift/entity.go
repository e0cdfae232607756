package shift

import (
	"time"
)

type Status string

const (
	StatusAssigned   Status = "ASSIGNED"
	StatusConfirmed  Status = "CONFIRMED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCanceled   Status = "CANCELED"
)

// Action is a field attendance event audited against a shift.
type Action string

const (
	ActionCheckIn  Action = "CHECK_IN"
	ActionCheckOut Action = "CHECK_OUT"
)

type Shift struct {
	ID           string
	EmployeeID   string
	ObjectiveID  string
	StartTime    time.Time
	EndTime      time.Time
	Status       Status
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	SchedulerID  string
	IsOvertime   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Duration returns the scheduled length of the shift.
func (s Shift) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// Hours returns the scheduled length of the shift in hours.
func (s Shift) Hours() float64 {
	return s.Duration().Hours()
}
