package salary

import "context"

// ConfigRepository defines data access methods for salary configurations.
type ConfigRepository interface {
	// Upsert creates or overwrites the employee's configuration.
	Upsert(ctx context.Context, config Config) (Config, error)

	// GetByEmployee retrieves the employee's configuration, failing with
	// ErrNoSalaryConfigured when absent.
	GetByEmployee(ctx context.Context, orgID string, employeeID string) (Config, error)

	// ListByOrgID retrieves every configuration in the organization.
	ListByOrgID(ctx context.Context, orgID string) ([]Config, error)
}
