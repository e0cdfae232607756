package workload

import (
	"time"

	"github.com/vigilo-ops/vigilo-backend-go/internal/pkg/timeutil"
)

// CycleWindow computes the payroll cycle containing ref for an employee whose
// cycle runs from startDay to endDay of the month. Both bounds are inclusive;
// the end bound is 23:59:59.999.
//
//   - invalid day configuration falls back to the calendar month of ref
//   - endDay 0 means "last day of the month"
//   - startDay > endDay is a cross-month cycle (e.g. the 26th through the
//     25th of the next month); which instance contains ref depends on
//     whether ref's day has reached startDay
func CycleWindow(startDay, endDay int, ref time.Time) (time.Time, time.Time) {
	if startDay < 1 || startDay > 31 || endDay < 0 || endDay > 31 {
		return calendarMonth(ref)
	}

	loc := ref.Location()

	if startDay <= endDay || endDay == 0 {
		start := time.Date(ref.Year(), ref.Month(), startDay, 0, 0, 0, 0, loc)
		endDayOfMonth := endDay
		if endDay == 0 {
			endDayOfMonth = timeutil.LastDayOfMonth(ref)
		}
		end := time.Date(ref.Year(), ref.Month(), endDayOfMonth, 0, 0, 0, 0, loc)
		return start, timeutil.EndOfDay(end)
	}

	// Cross-month cycle.
	if ref.Day() >= startDay {
		start := time.Date(ref.Year(), ref.Month(), startDay, 0, 0, 0, 0, loc)
		end := time.Date(ref.Year(), ref.Month(), endDay, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
		return start, timeutil.EndOfDay(end)
	}

	start := time.Date(ref.Year(), ref.Month(), startDay, 0, 0, 0, 0, loc).AddDate(0, -1, 0)
	end := time.Date(ref.Year(), ref.Month(), endDay, 0, 0, 0, 0, loc)
	return start, timeutil.EndOfDay(end)
}

func calendarMonth(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	end := time.Date(ref.Year(), ref.Month(), timeutil.LastDayOfMonth(ref), 0, 0, 0, 0, ref.Location())
	return start, timeutil.EndOfDay(end)
}
