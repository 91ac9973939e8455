package salary

import (
	"context"

	"github.com/staffsync/timeclock-backend-go/internal/domain/employee"
	"github.com/staffsync/timeclock-backend-go/internal/domain/salary"
	"github.com/staffsync/timeclock-backend-go/internal/pkg/tenant"
)

type service struct {
	configRepo   salary.ConfigRepository
	employeeRepo employee.EmployeeRepository
}

func NewService(configRepo salary.ConfigRepository, employeeRepo employee.EmployeeRepository) salary.SalaryService {
	return &service{configRepo: configRepo, employeeRepo: employeeRepo}
}

// SetConfig implements salary.SalaryService.
func (s *service) SetConfig(ctx context.Context, req salary.SetConfigRequest) (salary.ConfigResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return salary.ConfigResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return salary.ConfigResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, identity.OrgID); err != nil {
		return salary.ConfigResponse{}, err
	}

	config, err := s.configRepo.Upsert(ctx, salary.Config{
		OrgID:      identity.OrgID,
		EmployeeID: req.EmployeeID,
		BaseSalary: req.BaseSalary,
		HourlyRate: req.HourlyRate,
		Currency:   req.Currency,
	})
	if err != nil {
		return salary.ConfigResponse{}, err
	}

	return salary.ToResponse(config), nil
}

// GetConfig implements salary.SalaryService.
func (s *service) GetConfig(ctx context.Context, employeeID string) (salary.ConfigResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return salary.ConfigResponse{}, err
	}

	config, err := s.configRepo.GetByEmployee(ctx, identity.OrgID, employeeID)
	if err != nil {
		return salary.ConfigResponse{}, err
	}

	return salary.ToResponse(config), nil
}

// ListConfigs implements salary.SalaryService.
func (s *service) ListConfigs(ctx context.Context) ([]salary.ConfigResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	configs, err := s.configRepo.ListByOrgID(ctx, identity.OrgID)
	if err != nil {
		return nil, err
	}

	result := make([]salary.ConfigResponse, 0, len(configs))
	for _, config := range configs {
		result = append(result, salary.ToResponse(config))
	}

	return result, nil
}

// GetMyConfig implements salary.SalaryService.
func (s *service) GetMyConfig(ctx context.Context) (salary.ConfigResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return salary.ConfigResponse{}, err
	}

	config, err := s.configRepo.GetByEmployee(ctx, identity.OrgID, identity.EmployeeID)
	if err != nil {
		return salary.ConfigResponse{}, err
	}

	return salary.ToResponse(config), nil
}
