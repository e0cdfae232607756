package workload

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/vigilo-ops/vigilo-backend-go/internal/domain/absence"
	"github.com/vigilo-ops/vigilo-backend-go/internal/domain/agreement"
	"github.com/vigilo-ops/vigilo-backend-go/internal/domain/employee"
	"github.com/vigilo-ops/vigilo-backend-go/internal/domain/shift"
	"github.com/vigilo-ops/vigilo-backend-go/internal/pkg/timeutil"
)

// DefaultMaxHoursPerMonth applies when the labor profile carries no monthly
// ceiling of its own.
const DefaultMaxHoursPerMonth = 176

// NightHoursCalculator attributes night-differential hours to a shift. The
// minute-level attribution rule has not been settled with the union, so the
// production wiring uses the zero calculator until it is.
type NightHoursCalculator interface {
	NightHours(start, end time.Time, rule agreement.Rule) float64
}

type zeroNightHours struct{}

func (zeroNightHours) NightHours(_, _ time.Time, _ agreement.Rule) float64 {
	return 0
}

// NewZeroNightHoursCalculator returns the placeholder calculator that
// attributes no night hours.
func NewZeroNightHoursCalculator() NightHoursCalculator {
	return zeroNightHours{}
}

type WorkloadServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	shiftRepo    shift.ShiftRepository
	absenceRepo  absence.AbsenceRepository
	nightCalc    NightHoursCalculator
	loc          *time.Location
}

func NewWorkloadService(
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	absenceRepo absence.AbsenceRepository,
	nightCalc NightHoursCalculator,
	loc *time.Location,
) shift.WorkloadService {
	if nightCalc == nil {
		nightCalc = zeroNightHours{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &WorkloadServiceImpl{
		employeeRepo: employeeRepo,
		shiftRepo:    shiftRepo,
		absenceRepo:  absenceRepo,
		nightCalc:    nightCalc,
		loc:          loc,
	}
}

// ValidateAssignment implements shift.WorkloadService. Checks run in order
// and fail fast: employee resolution, overlap, availability, payroll-cycle
// ceiling. The returned classification is computed only when every check
// passes.
func (s *WorkloadServiceImpl) ValidateAssignment(ctx context.Context, employeeID string, start, end time.Time, excludeShiftID string) (*shift.HourClassification, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if err := s.checkOverlap(ctx, employeeID, start, end, excludeShiftID); err != nil {
		return nil, err
	}

	if err := s.checkAvailability(ctx, employeeID, start, end); err != nil {
		return nil, err
	}

	if err := s.checkCycleCeiling(ctx, emp, start, end, excludeShiftID); err != nil {
		return nil, err
	}

	cls, err := s.classify(ctx, emp, start, end, excludeShiftID)
	if err != nil {
		return nil, err
	}
	return cls, nil
}

func (s *WorkloadServiceImpl) checkOverlap(ctx context.Context, employeeID string, start, end time.Time, excludeShiftID string) error {
	existing, err := s.shiftRepo.ListByEmployeeEndingAfter(ctx, employeeID, start)
	if err != nil {
		return fmt.Errorf("list shifts ending after candidate start: %w", err)
	}

	for _, sh := range existing {
		if excludeShiftID != "" && sh.ID == excludeShiftID {
			continue
		}
		if shift.Overlaps(sh.StartTime, sh.EndTime, start, end) {
			return shift.NewConflictError(fmt.Sprintf(
				"employee already has a shift from %s to %s",
				sh.StartTime.In(s.loc).Format("2006-01-02 15:04"),
				sh.EndTime.In(s.loc).Format("2006-01-02 15:04"),
			))
		}
	}
	return nil
}

func (s *WorkloadServiceImpl) checkAvailability(ctx context.Context, employeeID string, start, end time.Time) error {
	absences, err := s.absenceRepo.ListActive(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("list active absences: %w", err)
	}

	for _, a := range absences {
		// Absence bounds are whole days, both inclusive. They arrive as DATE
		// values (midnight UTC), so the local day is rebuilt from the date
		// components; converting the instant would shift it into the
		// previous local day west of UTC.
		absStart := time.Date(a.StartDate.Year(), a.StartDate.Month(), a.StartDate.Day(), 0, 0, 0, 0, s.loc)
		absEnd := timeutil.EndOfDay(time.Date(a.EndDate.Year(), a.EndDate.Month(), a.EndDate.Day(), 0, 0, 0, 0, s.loc))
		if start.Before(absEnd) && end.After(absStart) {
			return shift.NewConflictError(fmt.Sprintf(
				"employee has a %s absence (%s) from %s to %s",
				a.Status, a.Type,
				absStart.Format("2006-01-02"),
				absEnd.Format("2006-01-02"),
			))
		}
	}
	return nil
}

func (s *WorkloadServiceImpl) checkCycleCeiling(ctx context.Context, emp employee.Employee, start, end time.Time, excludeShiftID string) error {
	cycleStart, cycleEnd := CycleWindow(emp.PayrollCycleStartDay, emp.PayrollCycleEndDay, start.In(s.loc))

	shifts, err := s.shiftRepo.ListByEmployeeBetween(ctx, emp.ID, cycleStart, cycleEnd)
	if err != nil {
		return fmt.Errorf("list shifts in payroll cycle: %w", err)
	}

	var accumulated float64
	for _, sh := range shifts {
		if excludeShiftID != "" && sh.ID == excludeShiftID {
			continue
		}
		// Completed shifts no longer reserve monthly capacity.
		if sh.Status == shift.StatusCompleted {
			continue
		}
		accumulated += sh.Hours()
	}

	maxMonthly := emp.MaxHoursPerMonth
	if maxMonthly <= 0 {
		maxMonthly = DefaultMaxHoursPerMonth
	}

	candidate := end.Sub(start).Hours()
	if accumulated+candidate > maxMonthly {
		return shift.NewConflictError(fmt.Sprintf(
			"monthly hour ceiling exceeded: %.1fh accumulated + %.1fh requested exceeds the %.0fh limit for cycle %s to %s",
			accumulated, candidate, maxMonthly,
			cycleStart.Format("2006-01-02"),
			cycleEnd.Format("2006-01-02"),
		))
	}
	return nil
}

func (s *WorkloadServiceImpl) classify(ctx context.Context, emp employee.Employee, start, end time.Time, excludeShiftID string) (*shift.HourClassification, error) {
	rule := agreement.Resolve(emp.LaborAgreementCode)
	duration := end.Sub(start).Hours()

	if rule.Flat() {
		return &shift.HourClassification{
			NormalHours: duration,
			NightHours:  s.nightCalc.NightHours(start, end, rule),
		}, nil
	}

	weekStart := timeutil.StartOfISOWeek(start.In(s.loc))
	weekEnd := timeutil.EndOfISOWeek(start.In(s.loc))

	weekShifts, err := s.shiftRepo.ListByEmployeeBetween(ctx, emp.ID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("list shifts in week: %w", err)
	}

	var priorWeekly float64
	for _, sh := range weekShifts {
		if excludeShiftID != "" && sh.ID == excludeShiftID {
			continue
		}
		priorWeekly += sh.Hours()
	}

	cls := splitWeeklyOvertime(rule, priorWeekly, duration, start.In(s.loc))
	cls.NightHours = s.nightCalc.NightHours(start, end, rule)
	return &cls, nil
}

// splitWeeklyOvertime allocates the candidate's hours across the weekly
// ceiling. Only the portion that pushes the weekly total past the ceiling is
// overtime; hours that were already past it before this shift stay where they
// were counted.
func splitWeeklyOvertime(rule agreement.Rule, priorWeekly, duration float64, localStart time.Time) shift.HourClassification {
	newWeekly := priorWeekly + duration
	overtime := math.Max(0, newWeekly-rule.MaxHoursWeekly) - math.Max(0, priorWeekly-rule.MaxHoursWeekly)
	normal := duration - overtime

	cls := shift.HourClassification{
		NormalHours:   normal,
		OvertimeHours: overtime,
	}
	if overtime > 0 {
		cls.OvertimeRate = overtimeRate(rule, localStart)
	}
	return cls
}

// overtimeRate tiers overtime at 100% on Sundays and late Saturdays, 50%
// otherwise.
func overtimeRate(rule agreement.Rule, localStart time.Time) shift.OvertimeRate {
	switch localStart.Weekday() {
	case time.Sunday:
		return shift.Rate100
	case time.Saturday:
		if localStart.Hour() >= rule.SaturdayCutoffHour {
			return shift.Rate100
		}
	}
	return shift.Rate50
}

// Report implements shift.WorkloadService. The cycle window is anchored on
// the first day of the requested month, so a 26th-to-25th cycle reported for
// March covers Feb 26 through Mar 25. Identical inputs over unchanged data
// yield identical output.
func (s *WorkloadServiceImpl) Report(ctx context.Context, employeeID string, month time.Month, year int) (shift.WorkloadReport, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return shift.WorkloadReport{}, err
	}

	rule := agreement.Resolve(emp.LaborAgreementCode)
	ref := time.Date(year, month, 1, 0, 0, 0, 0, s.loc)
	cycleStart, cycleEnd := CycleWindow(emp.PayrollCycleStartDay, emp.PayrollCycleEndDay, ref)

	shifts, err := s.shiftRepo.ListByEmployeeBetween(ctx, employeeID, cycleStart, cycleEnd)
	if err != nil {
		return shift.WorkloadReport{}, fmt.Errorf("list shifts in payroll cycle: %w", err)
	}

	maxMonthly := emp.MaxHoursPerMonth
	if maxMonthly <= 0 {
		maxMonthly = DefaultMaxHoursPerMonth
	}

	report := shift.WorkloadReport{
		EmployeeID:       employeeID,
		AgreementCode:    rule.Code,
		CycleStart:       cycleStart.Format(time.RFC3339),
		CycleEnd:         cycleEnd.Format(time.RFC3339),
		MaxHoursPerMonth: maxMonthly,
	}

	// Replay the cycle in start order, carrying weekly totals, so each
	// shift is classified exactly as it was at assignment time. The ISO week
	// containing the cycle start can begin before the cycle; its pre-cycle
	// hours are seeded so the first in-cycle shifts split the same way.
	weeklyTotals := make(map[string]float64)
	if !rule.Flat() {
		boundaryWeekStart := timeutil.StartOfISOWeek(cycleStart)
		if boundaryWeekStart.Before(cycleStart) {
			preCycle, err := s.shiftRepo.ListByEmployeeBetween(ctx, employeeID, boundaryWeekStart, cycleStart.Add(-time.Millisecond))
			if err != nil {
				return shift.WorkloadReport{}, fmt.Errorf("list shifts in boundary week: %w", err)
			}
			for _, sh := range preCycle {
				weekKey := timeutil.StartOfISOWeek(sh.StartTime.In(s.loc)).Format("2006-01-02")
				weeklyTotals[weekKey] += sh.Hours()
			}
		}
	}
	var reserved float64

	for _, sh := range shifts {
		localStart := sh.StartTime.In(s.loc)
		hours := sh.Hours()

		report.ShiftCount++
		report.TotalHours += hours
		report.NightHours += s.nightCalc.NightHours(sh.StartTime, sh.EndTime, rule)

		if sh.Status != shift.StatusCompleted {
			reserved += hours
		}

		if rule.Flat() {
			report.NormalHours += hours
			continue
		}

		weekKey := timeutil.StartOfISOWeek(localStart).Format("2006-01-02")
		prior := weeklyTotals[weekKey]
		cls := splitWeeklyOvertime(rule, prior, hours, localStart)
		weeklyTotals[weekKey] = prior + hours

		report.NormalHours += cls.NormalHours
		switch cls.OvertimeRate {
		case shift.Rate100:
			report.Overtime100Hours += cls.OvertimeHours
		case shift.Rate50:
			report.Overtime50Hours += cls.OvertimeHours
		}
	}

	report.RemainingHours = math.Max(0, maxMonthly-reserved)
	return report, nil
}
