package workload

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vigilo-ops/vigilo-backend-go/internal/domain/absence"
	"github.com/vigilo-ops/vigilo-backend-go/internal/domain/agreement"
	"github.com/vigilo-ops/vigilo-backend-go/internal/domain/employee"
	"github.com/vigilo-ops/vigilo-backend-go/internal/domain/shift"
)

// ===== fakes =====

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

type fakeShiftRepo struct {
	shifts   []shift.Shift
	sequence int
}

func (r *fakeShiftRepo) add(employeeID string, start, end time.Time, status shift.Status) {
	r.sequence++
	r.shifts = append(r.shifts, shift.Shift{
		ID:         fmt.Sprintf("shift-%d", r.sequence),
		EmployeeID: employeeID,
		StartTime:  start,
		EndTime:    end,
		Status:     status,
	})
}

func (r *fakeShiftRepo) Create(_ context.Context, s shift.Shift) (shift.Shift, error) {
	r.sequence++
	s.ID = fmt.Sprintf("shift-%d", r.sequence)
	r.shifts = append(r.shifts, s)
	return s, nil
}

func (r *fakeShiftRepo) GetByID(_ context.Context, id string) (shift.Shift, error) {
	for _, s := range r.shifts {
		if s.ID == id {
			return s, nil
		}
	}
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (r *fakeShiftRepo) GetByIDForUpdate(ctx context.Context, id string) (shift.Shift, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeShiftRepo) Update(_ context.Context, updated shift.Shift) error {
	for i, s := range r.shifts {
		if s.ID == updated.ID {
			r.shifts[i] = updated
			return nil
		}
	}
	return shift.ErrShiftNotFound
}

func (r *fakeShiftRepo) ListByEmployeeEndingAfter(_ context.Context, employeeID string, after time.Time) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range r.shifts {
		if s.EmployeeID == employeeID && s.Status != shift.StatusCanceled && s.EndTime.After(after) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeShiftRepo) ListByEmployeeBetween(_ context.Context, employeeID string, from, to time.Time) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range r.shifts {
		if s.EmployeeID == employeeID && s.Status != shift.StatusCanceled &&
			!s.StartTime.Before(from) && !s.StartTime.After(to) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *fakeShiftRepo) ListOverlapping(_ context.Context, employeeID string, start, end time.Time) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range r.shifts {
		if s.EmployeeID == employeeID && s.Status != shift.StatusCanceled &&
			shift.Overlaps(s.StartTime, s.EndTime, start, end) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeAbsenceRepo struct {
	absences []absence.Absence
}

func (r *fakeAbsenceRepo) ListActive(_ context.Context, employeeID string) ([]absence.Absence, error) {
	var out []absence.Absence
	for _, a := range r.absences {
		if a.EmployeeID == employeeID && a.Status != absence.StatusRejected {
			out = append(out, a)
		}
	}
	return out, nil
}

// ===== helpers =====

func newTestService(emps *fakeEmployeeRepo, shifts *fakeShiftRepo, absences *fakeAbsenceRepo) shift.WorkloadService {
	return NewWorkloadService(emps, shifts, absences, nil, time.UTC)
}

func suvicoEmployee(id string) employee.Employee {
	return employee.Employee{
		ID:                   id,
		FullName:             "Guard Under Test",
		LaborAgreementCode:   agreement.CodeSUVICO,
		MaxHoursPerMonth:     176,
		PayrollCycleStartDay: 1,
		PayrollCycleEndDay:   0,
	}
}

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

// ===== ValidateAssignment =====

func TestValidateAssignment_EmployeeNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeEmployeeRepo{employees: map[string]employee.Employee{}}, &fakeShiftRepo{}, &fakeAbsenceRepo{})

	_, err := svc.ValidateAssignment(context.Background(), "ghost", at(2025, 3, 11, 8), at(2025, 3, 11, 16), "")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestValidateAssignment_OverlapConflict(t *testing.T) {
	t.Parallel()

	emps := &fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": suvicoEmployee("emp-1")}}
	shifts := &fakeShiftRepo{}
	shifts.add("emp-1", at(2025, 3, 11, 10), at(2025, 3, 11, 14), shift.StatusAssigned)
	svc := newTestService(emps, shifts, &fakeAbsenceRepo{})

	_, err := svc.ValidateAssignment(context.Background(), "emp-1", at(2025, 3, 11, 12), at(2025, 3, 11, 16), "")

	var conflict *shift.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, conflict.Msg, "already has a shift")
}

func TestValidateAssignment_AdjacentShiftAllowed(t *testing.T) {
	t.Parallel()

	emps := &fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": suvicoEmployee("emp-1")}}
	shifts := &fakeShiftRepo{}
	shifts.add("emp-1", at(2025, 3, 11, 10), at(2025, 3, 11, 14), shift.StatusAssigned)
	svc := newTestService(emps, shifts, &fakeAbsenceRepo{})

	cls, err := svc.ValidateAssignment(context.Background(), "emp-1", at(2025, 3, 11, 14), at(2025, 3, 11, 18), "")
	require.NoError(t, err)
	assert.NotNil(t, cls)
}

func TestValidateAssignment_CanceledShiftDoesNotBlock(t *testing.T) {
	t.Parallel()

	emps := &fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": suvicoEmployee("emp-1")}}
	shifts := &fakeShiftRepo{}
	shifts.add("emp-1", at(2025, 3, 11, 10), at(2025, 3, 11, 14), shift.StatusCanceled)
	svc := newTestService(emps, shifts, &fakeAbsenceRepo{})

	_, err := svc.ValidateAssignment(context.Background(), "emp-1", at(2025, 3, 11, 12), at(2025, 3, 11, 16), "")
	assert.NoError(t, err)
}

func TestValidateAssignment_ExcludedShiftIsIgnored(t *testing.T) {
	t.Parallel()

	emps := &fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": suvicoEmployee("emp-1")}}
	shifts := &fakeShiftRepo{}
	shifts.add("emp-1", at(2025, 3, 11, 10), at(2025, 3, 11, 14), shift.StatusAssigned)
	svc := newTestService(emps, shifts, &fakeAbsenceRepo{})

	// Rescheduling the same shift onto an overlapping slot must not trip on
	// its own previous occurrence.
	_, err := svc.ValidateAssignment(context.Background(), "emp-1", at(2025, 3, 11, 12), at(2025, 3, 11, 16), "shift-1")
	assert.NoError(t, err)
}

func TestValidateAssignment_AbsenceConflict(t *testing.T) {
	t.Parallel()

	emps := &fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": suvicoEmployee("emp-1")}}
	absences := &fakeAbsenceRepo{absences: []absence.Absence{{
		ID:         "abs-1",
		EmployeeID: "emp-1",
		StartDate:  at(2025, 3, 11, 0),
		EndDate:    at(2025, 3, 12, 0),
		Status:     absence.StatusApproved,
		Type:       "VACATION",
	}}}
	svc := newTestService(emps, &fakeShiftRepo{}, absences)

	_, err := svc.ValidateAssignment(context.Background(), "emp-1", at(2025, 3, 11, 8), at(2025, 3, 11, 16), "")

	var conflict *shift.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, conflict.Msg, "absence")
}

func TestValidateAssignment_PendingAbsenceAlsoBlocks(t *testing.T) {
	t.Parallel()

	emps := &fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": suvicoEmployee("emp-1")}}
	absences := &fakeAbsenceRepo{absences: []absence.Absence{{
		ID:         "abs-1",
		EmployeeID: "emp-1",
		StartDate:  at(2025, 3, 11, 0),
		EndDate:    at(2025, 3, 11, 0),
		Status:     absence.StatusPending,
		Type:       "MEDICAL",
	}}}
	svc := newTestService(emps, &fakeShiftRepo{}, absences)

	_, err := svc.ValidateAssignment(context.Background(), "emp-1", at(2025, 3, 11, 8), at(2025, 3, 11, 16), "")

	var conflict *shift.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestValidateAssignment_AbsenceDayBlocksInWesternZone(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC-4", -4*3600)
	emps := &fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": suvicoEmployee("emp-1")}}
	// DATE columns scan as midnight UTC regardless of the configured zone.
	absences := &fakeAbsenceRepo{absences: []absence.Absence{{
		ID:         "abs-1",
		EmployeeID: "emp-1",
		StartDate:  time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		Status:     absence.StatusApproved,
		Type:       "VACATION",
	}}}
	svc := NewWorkloadService(emps, &fakeShiftRepo{}, absences, nil, loc)

	// A shift squarely on the absence day, in local time, must be blocked.
	_, err := svc.ValidateAssignment(context.Background(),
		"emp-1",
		time.Date(2025, 3, 11, 9, 0, 0, 0, loc),
		time.Date(2025, 3, 11, 17, 0, 0, 0, loc),
		"")

	var conflict *shift.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, conflict.Msg, "absence")

	// The adjacent local days stay free.
	for _, day := range []int{10, 12} {
		_, err := svc.ValidateAssignment(context.Background(),
			"emp-1",
			time.Date(2025, 3, day, 9, 0, 0, 0, loc),
			time.Date(2025, 3, day, 17, 0, 0, 0, loc),
			"")
		assert.NoError(t, err, "day %d must not be blocked", day)
	}
}

func TestValidateAssignment_AbsenceOnAnotherDayDoesNotBlock(t *testing.T) {
	t.Parallel()

	emps := &fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": suvicoEmployee("emp-1")}}
	absences := &fakeAbsenceRepo{absences: []absence.Absence{{
		ID:         "abs-1",
		EmployeeID: "emp-1",
		StartDate:  at(2025, 3, 13, 0),
		EndDate:    at(2025, 3, 14, 0),
		Status:     absence.StatusApproved,
		Type:       "VACATION",
	}}}
	svc := newTestService(emps, &fakeShiftRepo{}, absences)

	_, err := svc.ValidateAssignment(context.Background(), "emp-1", at(2025, 3, 11, 8), at(2025, 3, 11, 16), "")
	assert.NoError(t, err)
}

func TestValidateAssignment_MonthlyCeilingExceeded(t *testing.T) {
	t.Parallel()

	emp := suvicoEmployee("emp-1")
	emp.MaxHoursPerMonth = 40
	emps := &fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": emp}}

	shifts := &fakeShiftRepo{}
	// 36 accumulated hours inside the March calendar-month cycle.
	shifts.add("emp-1", at(2025, 3, 3, 8), at(2025, 3, 3, 20), shift.StatusAssigned)
	shifts.add("emp-1", at(2025, 3, 4, 8), at(2025, 3, 4, 20), shift.StatusAssigned)
	shifts.add("emp-1", at(2025, 3, 5, 8), at(2025, 3, 5, 20), shift.StatusConfirmed)
	svc := newTestService(emps, shifts, &fakeAbsenceRepo{})

	_, err := svc.ValidateAssignment(context.Background(), "emp-1", at(2025, 3, 11, 8), at(2025, 3, 11, 16), "")

	var conflict *shift.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, conflict.Msg, "ceiling")
}

func TestValidateAssignment_CompletedShiftsDoNotReserveCapacity(t *testing.T) {
	t.Parallel()

	emp := suvicoEmployee("emp-1")
	emp.MaxHoursPerMonth = 40
	emps := &fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": emp}}

	shifts := &fakeShiftRepo{}
	shifts.add("emp-1", at(2025, 3, 3, 8), at(2025, 3, 3, 20), shift.StatusCompleted)
	shifts.add("emp-1", at(2025, 3, 4, 8), at(2025, 3, 4, 20), shift.StatusCompleted)
	shifts.add("emp-1", at(2025, 3, 5, 8), at(2025, 3, 5, 20), shift.StatusCompleted)
	svc := newTestService(emps, shifts, &fakeAbsenceRepo{})

	_, err := svc.ValidateAssignment(context.Background(), "emp-1", at(2025, 3, 11, 8), at(2025, 3, 11, 16), "")
	assert.NoError(t, err)
}

func TestValidateAssignment_SuvicoWeeklyOvertimeSplit(t *testing.T) {
	t.Parallel()

	emps := &fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": suvicoEmployee("emp-1")}}

	// 44 prior hours in the ISO week of Mon 2025-03-10.
	shifts := &fakeShiftRepo{}
	shifts.add("emp-1", at(2025, 3, 10, 0), at(2025, 3, 11, 0), shift.StatusAssigned)  // 24h Monday
	shifts.add("emp-1", at(2025, 3, 11, 0), at(2025, 3, 11, 8), shift.StatusAssigned)  // 8h Tuesday night
	shifts.add("emp-1", at(2025, 3, 12, 8), at(2025, 3, 12, 20), shift.StatusAssigned) // 12h Wednesday
	svc := newTestService(emps, shifts, &fakeAbsenceRepo{})

	// Tuesday 08:00-16:00, 8h: weekly total goes 44 -> 52.
	cls, err := svc.ValidateAssignment(context.Background(), "emp-1", at(2025, 3, 11, 8), at(2025, 3, 11, 16), "")
	require.NoError(t, err)

	assert.InDelta(t, 4.0, cls.OvertimeHours, 1e-9)
	assert.InDelta(t, 4.0, cls.NormalHours, 1e-9)
	assert.Equal(t, shift.Rate50, cls.OvertimeRate)
	assert.Equal(t, 0.0, cls.NightHours)
}

func TestValidateAssignment_SundayOvertimeIs100(t *testing.T) {
	t.Parallel()

	emps := &fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": suvicoEmployee("emp-1")}}

	// 48 prior hours Mon-Wed of the ISO week containing Sunday 2025-03-16.
	shifts := &fakeShiftRepo{}
	shifts.add("emp-1", at(2025, 3, 10, 0), at(2025, 3, 11, 0), shift.StatusAssigned)
	shifts.add("emp-1", at(2025, 3, 11, 0), at(2025, 3, 12, 0), shift.StatusAssigned)
	svc := newTestService(emps, shifts, &fakeAbsenceRepo{})

	cls, err := svc.ValidateAssignment(context.Background(), "emp-1", at(2025, 3, 16, 8), at(2025, 3, 16, 16), "")
	require.NoError(t, err)

	assert.InDelta(t, 8.0, cls.OvertimeHours, 1e-9)
	assert.InDelta(t, 0.0, cls.NormalHours, 1e-9)
	assert.Equal(t, shift.Rate100, cls.OvertimeRate)
}

func TestValidateAssignment_SaturdayCutoffTiersOvertime(t *testing.T) {
	t.Parallel()

	emps := &fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": suvicoEmployee("emp-1")}}

	newShifts := func() *fakeShiftRepo {
		r := &fakeShiftRepo{}
		r.add("emp-1", at(2025, 3, 10, 0), at(2025, 3, 11, 0), shift.StatusAssigned)
		r.add("emp-1", at(2025, 3, 11, 0), at(2025, 3, 12, 0), shift.StatusAssigned)
		return r
	}

	// Saturday 2025-03-15 before the 13:00 cutoff: 50%.
	svc := newTestService(emps, newShifts(), &fakeAbsenceRepo{})
	cls, err := svc.ValidateAssignment(context.Background(), "emp-1", at(2025, 3, 15, 8), at(2025, 3, 15, 12), "")
	require.NoError(t, err)
	assert.Equal(t, shift.Rate50, cls.OvertimeRate)

	// Saturday at the cutoff: 100%.
	svc = newTestService(emps, newShifts(), &fakeAbsenceRepo{})
	cls, err = svc.ValidateAssignment(context.Background(), "emp-1", at(2025, 3, 15, 13), at(2025, 3, 15, 17), "")
	require.NoError(t, err)
	assert.Equal(t, shift.Rate100, cls.OvertimeRate)
}

func TestValidateAssignment_FlatAgreementHasNoOvertime(t *testing.T) {
	t.Parallel()

	emp := suvicoEmployee("emp-1")
	emp.LaborAgreementCode = "UNKNOWN-CODE"
	emps := &fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": emp}}

	shifts := &fakeShiftRepo{}
	shifts.add("emp-1", at(2025, 3, 10, 0), at(2025, 3, 11, 0), shift.StatusAssigned)
	shifts.add("emp-1", at(2025, 3, 11, 0), at(2025, 3, 12, 0), shift.StatusAssigned)
	svc := newTestService(emps, shifts, &fakeAbsenceRepo{})

	cls, err := svc.ValidateAssignment(context.Background(), "emp-1", at(2025, 3, 12, 8), at(2025, 3, 12, 16), "")
	require.NoError(t, err)

	assert.InDelta(t, 8.0, cls.NormalHours, 1e-9)
	assert.Equal(t, 0.0, cls.OvertimeHours)
	assert.Equal(t, shift.RateNone, cls.OvertimeRate)
}

// ===== Report =====

func TestReport_CrossMonthCycleTotals(t *testing.T) {
	t.Parallel()

	emp := suvicoEmployee("emp-1")
	emp.PayrollCycleStartDay = 26
	emp.PayrollCycleEndDay = 25
	emps := &fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": emp}}

	shifts := &fakeShiftRepo{}
	shifts.add("emp-1", at(2025, 2, 27, 8), at(2025, 2, 27, 16), shift.StatusCompleted) // inside: Feb 27
	shifts.add("emp-1", at(2025, 3, 10, 8), at(2025, 3, 10, 16), shift.StatusAssigned)  // inside: Mar 10
	shifts.add("emp-1", at(2025, 3, 26, 8), at(2025, 3, 26, 16), shift.StatusAssigned)  // outside: next cycle
	svc := newTestService(emps, shifts, &fakeAbsenceRepo{})

	report, err := svc.Report(context.Background(), "emp-1", time.March, 2025)
	require.NoError(t, err)

	assert.Equal(t, 2, report.ShiftCount)
	assert.InDelta(t, 16.0, report.TotalHours, 1e-9)
	assert.InDelta(t, 16.0, report.NormalHours, 1e-9)
	assert.Equal(t, 0.0, report.Overtime50Hours)
	// Only the still-pending March shift reserves capacity.
	assert.InDelta(t, 176.0-8.0, report.RemainingHours, 1e-9)
	assert.Contains(t, report.CycleStart, "2025-02-26")
	assert.Contains(t, report.CycleEnd, "2025-03-25")
}

func TestReport_SplitsWeeklyOvertimePerWeek(t *testing.T) {
	t.Parallel()

	emps := &fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": suvicoEmployee("emp-1")}}

	shifts := &fakeShiftRepo{}
	// One ISO week with 56 scheduled hours: 48 normal + 8 overtime.
	shifts.add("emp-1", at(2025, 3, 10, 0), at(2025, 3, 11, 0), shift.StatusAssigned)
	shifts.add("emp-1", at(2025, 3, 11, 0), at(2025, 3, 12, 0), shift.StatusAssigned)
	shifts.add("emp-1", at(2025, 3, 12, 8), at(2025, 3, 12, 16), shift.StatusAssigned)
	svc := newTestService(emps, shifts, &fakeAbsenceRepo{})

	report, err := svc.Report(context.Background(), "emp-1", time.March, 2025)
	require.NoError(t, err)

	assert.InDelta(t, 56.0, report.TotalHours, 1e-9)
	assert.InDelta(t, 48.0, report.NormalHours, 1e-9)
	assert.InDelta(t, 8.0, report.Overtime50Hours, 1e-9)
	assert.Equal(t, 0.0, report.Overtime100Hours)
}

func TestReport_SeedsWeekStraddlingCycleStart(t *testing.T) {
	t.Parallel()

	emp := suvicoEmployee("emp-1")
	emp.PayrollCycleStartDay = 26
	emp.PayrollCycleEndDay = 25
	emps := &fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": emp}}

	// The ISO week Mon 2025-02-24 .. Sun 2025-03-02 straddles the cycle
	// start (Wed Feb 26). 48h land before the cycle, so the Wednesday shift
	// was pure overtime at assignment time.
	shifts := &fakeShiftRepo{}
	shifts.add("emp-1", at(2025, 2, 24, 0), at(2025, 2, 25, 0), shift.StatusCompleted)
	shifts.add("emp-1", at(2025, 2, 25, 0), at(2025, 2, 26, 0), shift.StatusCompleted)
	shifts.add("emp-1", at(2025, 2, 26, 8), at(2025, 2, 26, 16), shift.StatusAssigned)
	svc := newTestService(emps, shifts, &fakeAbsenceRepo{})

	report, err := svc.Report(context.Background(), "emp-1", time.March, 2025)
	require.NoError(t, err)

	assert.Equal(t, 1, report.ShiftCount)
	assert.InDelta(t, 8.0, report.TotalHours, 1e-9)
	assert.InDelta(t, 0.0, report.NormalHours, 1e-9)
	assert.InDelta(t, 8.0, report.Overtime50Hours, 1e-9)
}

func TestReport_Idempotent(t *testing.T) {
	t.Parallel()

	emps := &fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-1": suvicoEmployee("emp-1")}}
	shifts := &fakeShiftRepo{}
	shifts.add("emp-1", at(2025, 3, 10, 8), at(2025, 3, 10, 20), shift.StatusAssigned)
	shifts.add("emp-1", at(2025, 3, 11, 8), at(2025, 3, 11, 20), shift.StatusCompleted)
	svc := newTestService(emps, shifts, &fakeAbsenceRepo{})

	first, err := svc.Report(context.Background(), "emp-1", time.March, 2025)
	require.NoError(t, err)
	second, err := svc.Report(context.Background(), "emp-1", time.March, 2025)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReport_EmployeeNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeEmployeeRepo{employees: map[string]employee.Employee{}}, &fakeShiftRepo{}, &fakeAbsenceRepo{})

	_, err := svc.Report(context.Background(), "ghost", time.March, 2025)
	assert.True(t, errors.Is(err, employee.ErrEmployeeNotFound))
}
