package employee

import "context"

// EmployeeRepository defines data access methods for employees.
// All methods take orgID to prevent cross-organization data access.
type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)
	GetByID(ctx context.Context, id string, orgID string) (Employee, error)
	ListByOrgID(ctx context.Context, orgID string) ([]Employee, error)
}
