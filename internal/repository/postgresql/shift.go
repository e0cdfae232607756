package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vigilo-ops/vigilo-backend-go/internal/domain/shift"
	"github.com/vigilo-ops/vigilo-backend-go/internal/pkg/database"
)

const shiftColumns = `id, employee_id, objective_id, start_time, end_time, status,
		   check_in_time, check_out_time, scheduler_id, is_overtime,
		   created_at, updated_at`

type shiftRepository struct {
	db database.Querier
}

func NewShiftRepository(db database.Querier) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := `
		INSERT INTO shifts (
			id, employee_id, objective_id, start_time, end_time, status,
			scheduler_id, is_overtime
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	newShift.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		newShift.ID,
		newShift.EmployeeID,
		newShift.ObjectiveID,
		newShift.StartTime,
		newShift.EndTime,
		newShift.Status,
		newShift.SchedulerID,
		newShift.IsOvertime,
	).Scan(&newShift.CreatedAt, &newShift.UpdatedAt)

	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return newShift, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE id = $1
	`
	return r.queryOne(ctx, query, id)
}

// GetByIDForUpdate implements shift.ShiftRepository.
func (r *shiftRepository) GetByIDForUpdate(ctx context.Context, id string) (shift.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE id = $1
		FOR UPDATE
	`
	return r.queryOne(ctx, query, id)
}

func (r *shiftRepository) queryOne(ctx context.Context, query string, args ...any) (shift.Shift, error) {
	q := database.QuerierFromContext(ctx, r.db)

	var s shift.Shift
	err := q.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.EmployeeID, &s.ObjectiveID, &s.StartTime, &s.EndTime, &s.Status,
		&s.CheckInTime, &s.CheckOutTime, &s.SchedulerID, &s.IsOvertime,
		&s.CreatedAt, &s.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return s, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepository) Update(ctx context.Context, s shift.Shift) error {
	q := database.QuerierFromContext(ctx, r.db)

	query := `
		UPDATE shifts
		SET status = $2,
			check_in_time = $3,
			check_out_time = $4,
			updated_at = $5
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, s.ID, s.Status, s.CheckInTime, s.CheckOutTime, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// ListByEmployeeEndingAfter implements shift.ShiftRepository.
func (r *shiftRepository) ListByEmployeeEndingAfter(ctx context.Context, employeeID string, after time.Time) ([]shift.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE employee_id = $1
		  AND end_time > $2
		  AND status <> 'CANCELED'
		ORDER BY start_time
	`
	return r.queryMany(ctx, query, employeeID, after)
}

// ListByEmployeeBetween implements shift.ShiftRepository.
func (r *shiftRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]shift.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE employee_id = $1
		  AND start_time >= $2
		  AND start_time <= $3
		  AND status <> 'CANCELED'
		ORDER BY start_time
	`
	return r.queryMany(ctx, query, employeeID, from, to)
}

// ListOverlapping implements shift.ShiftRepository.
func (r *shiftRepository) ListOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]shift.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE employee_id = $1
		  AND start_time < $3
		  AND end_time > $2
		  AND status <> 'CANCELED'
		ORDER BY start_time
	`
	return r.queryMany(ctx, query, employeeID, start, end)
}

func (r *shiftRepository) queryMany(ctx context.Context, query string, args ...any) ([]shift.Shift, error) {
	q := database.QuerierFromContext(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.ObjectiveID, &s.StartTime, &s.EndTime, &s.Status,
			&s.CheckInTime, &s.CheckOutTime, &s.SchedulerID, &s.IsOvertime,
			&s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}

	return shifts, nil
}
