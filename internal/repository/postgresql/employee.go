package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vigilo-ops/vigilo-backend-go/internal/domain/employee"
	"github.com/vigilo-ops/vigilo-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db database.Querier
}

func NewEmployeeRepository(db database.Querier) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := `
		SELECT id, full_name, labor_agreement_code, max_hours_per_month,
			   payroll_cycle_start_day, payroll_cycle_end_day
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FullName, &emp.LaborAgreementCode, &emp.MaxHoursPerMonth,
		&emp.PayrollCycleStartDay, &emp.PayrollCycleEndDay,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}
