package employee

import "context"

// EmployeeRepository reads labor profiles from the employee directory.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
}
