package objective

import "context"

// ObjectiveRepository reads sites from the site directory.
type ObjectiveRepository interface {
	GetByID(ctx context.Context, id string) (Objective, error)
}
