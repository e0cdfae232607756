package shift

import (
	"time"

	"github.com/vigilo-ops/vigilo-backend-go/internal/pkg/timeutil"
	"github.com/vigilo-ops/vigilo-backend-go/internal/pkg/validator"
)

// ========================================
// SHIFT DTOs
// ========================================

type AssignShiftRequest struct {
	EmployeeID  string             `json:"employee_id"`
	ObjectiveID string             `json:"objective_id"`
	StartTime   timeutil.Timestamp `json:"start_time"`
	EndTime     timeutil.Timestamp `json:"end_time"`
}

func (r *AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.ObjectiveID) {
		errs = append(errs, validator.ValidationError{
			Field:   "objective_id",
			Message: "objective_id is required",
		})
	}

	if r.StartTime.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time is required",
		})
	}

	if r.EndTime.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time is required",
		})
	}

	if !r.StartTime.IsZero() && !r.EndTime.IsZero() && !r.StartTime.Time.Before(r.EndTime.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ValidateAssignmentRequest struct {
	EmployeeID     string             `json:"employee_id"`
	StartTime      timeutil.Timestamp `json:"start_time"`
	EndTime        timeutil.Timestamp `json:"end_time"`
	ExcludeShiftID string             `json:"exclude_shift_id,omitempty"`
}

func (r *ValidateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.StartTime.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time is required",
		})
	}

	if r.EndTime.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time is required",
		})
	}

	if !r.StartTime.IsZero() && !r.EndTime.IsZero() && !r.StartTime.Time.Before(r.EndTime.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AuditActionRequest struct {
	Action    Action  `json:"action"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r *AuditActionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(string(r.Action), []string{string(ActionCheckIn), string(ActionCheckOut)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be CHECK_IN or CHECK_OUT",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	ObjectiveID  string  `json:"objective_id"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Status       Status  `json:"status"`
	CheckInTime  *string `json:"check_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
	SchedulerID  string  `json:"scheduler_id"`
	IsOvertime   bool    `json:"is_overtime"`
	UpdatedAt    string  `json:"updated_at"`
}

func NewShiftResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		ObjectiveID:  s.ObjectiveID,
		StartTime:    s.StartTime.UTC().Format(time.RFC3339),
		EndTime:      s.EndTime.UTC().Format(time.RFC3339),
		Status:       s.Status,
		CheckInTime:  timePtrToString(s.CheckInTime),
		CheckOutTime: timePtrToString(s.CheckOutTime),
		SchedulerID:  s.SchedulerID,
		IsOvertime:   s.IsOvertime,
		UpdatedAt:    s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}

// ValidationResult is the outcome of a dry-run assignment check.
type ValidationResult struct {
	Valid          bool                `json:"valid"`
	Reason         string              `json:"reason,omitempty"`
	Classification *HourClassification `json:"classification,omitempty"`
}

type OvertimeRate string

const (
	RateNone OvertimeRate = ""
	Rate50   OvertimeRate = "50%"
	Rate100  OvertimeRate = "100%"
)

// HourClassification splits a candidate shift's hours into pay buckets.
type HourClassification struct {
	NormalHours   float64      `json:"normal_hours"`
	OvertimeHours float64      `json:"overtime_hours"`
	OvertimeRate  OvertimeRate `json:"overtime_rate,omitempty"`
	NightHours    float64      `json:"night_hours"`
}

// WorkloadReport summarizes an employee's hours over one payroll cycle.
type WorkloadReport struct {
	EmployeeID       string  `json:"employee_id"`
	AgreementCode    string  `json:"agreement_code"`
	CycleStart       string  `json:"cycle_start"`
	CycleEnd         string  `json:"cycle_end"`
	ShiftCount       int     `json:"shift_count"`
	TotalHours       float64 `json:"total_hours"`
	NormalHours      float64 `json:"normal_hours"`
	Overtime50Hours  float64 `json:"overtime_50_hours"`
	Overtime100Hours float64 `json:"overtime_100_hours"`
	NightHours       float64 `json:"night_hours"`
	MaxHoursPerMonth float64 `json:"max_hours_per_month"`
	RemainingHours   float64 `json:"remaining_hours"`
}
