package salary

import "context"

// SalaryService defines business logic for salary configuration.
// All operations are admin-only except GetMyConfig.
type SalaryService interface {
	// SetConfig creates or overwrites an employee's configuration.
	SetConfig(ctx context.Context, req SetConfigRequest) (ConfigResponse, error)

	// GetConfig retrieves one employee's configuration.
	GetConfig(ctx context.Context, employeeID string) (ConfigResponse, error)

	// ListConfigs retrieves every configuration in the organization.
	ListConfigs(ctx context.Context) ([]ConfigResponse, error)

	// GetMyConfig retrieves the caller's own configuration.
	GetMyConfig(ctx context.Context) (ConfigResponse, error)
}
