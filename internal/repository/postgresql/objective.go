package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vigilo-ops/vigilo-backend-go/internal/domain/objective"
	"github.com/vigilo-ops/vigilo-backend-go/internal/pkg/database"
)

type objectiveRepository struct {
	db database.Querier
}

func NewObjectiveRepository(db database.Querier) objective.ObjectiveRepository {
	return &objectiveRepository{db: db}
}

// GetByID implements objective.ObjectiveRepository.
func (r *objectiveRepository) GetByID(ctx context.Context, id string) (objective.Objective, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := `
		SELECT id, name, latitude, longitude
		FROM objectives
		WHERE id = $1
	`

	var obj objective.Objective
	err := q.QueryRow(ctx, query, id).Scan(
		&obj.ID, &obj.Name, &obj.Latitude, &obj.Longitude,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return objective.Objective{}, objective.ErrObjectiveNotFound
		}
		return objective.Objective{}, fmt.Errorf("failed to get objective: %w", err)
	}

	return obj, nil
}
