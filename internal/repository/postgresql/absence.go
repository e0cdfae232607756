package postgresql

import (
	"context"
	"fmt"

	"github.com/vigilo-ops/vigilo-backend-go/internal/domain/absence"
	"github.com/vigilo-ops/vigilo-backend-go/internal/pkg/database"
)

type absenceRepository struct {
	db database.Querier
}

func NewAbsenceRepository(db database.Querier) absence.AbsenceRepository {
	return &absenceRepository{db: db}
}

// ListActive implements absence.AbsenceRepository. Rejected absences do not
// block scheduling and are filtered out here.
func (r *absenceRepository) ListActive(ctx context.Context, employeeID string) ([]absence.Absence, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := `
		SELECT id, employee_id, start_date, end_date, status, type
		FROM absences
		WHERE employee_id = $1
		  AND status IN ('PENDING', 'APPROVED')
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}
	defer rows.Close()

	var absences []absence.Absence
	for rows.Next() {
		var a absence.Absence
		err := rows.Scan(&a.ID, &a.EmployeeID, &a.StartDate, &a.EndDate, &a.Status, &a.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to scan absence: %w", err)
		}
		absences = append(absences, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate absences: %w", err)
	}

	return absences, nil
}
