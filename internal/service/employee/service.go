package employee

import (
	"context"

	"github.com/staffsync/timeclock-backend-go/internal/domain/employee"
	"github.com/staffsync/timeclock-backend-go/internal/pkg/tenant"
)

type service struct {
	employeeRepo employee.EmployeeRepository
}

func NewService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &service{employeeRepo: employeeRepo}
}

// Create implements employee.EmployeeService.
func (s *service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		OrgID:      identity.OrgID,
		FullName:   req.FullName,
		Department: req.Department,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *service) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	found, err := s.employeeRepo.GetByID(ctx, id, identity.OrgID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(found), nil
}

// List implements employee.EmployeeService.
func (s *service) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListByOrgID(ctx, identity.OrgID)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, employee.ToResponse(e))
	}

	return result, nil
}
