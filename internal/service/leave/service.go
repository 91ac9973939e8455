package leave

import (
	"context"
	"time"

	"github.com/staffsync/timeclock-backend-go/internal/domain/employee"
	"github.com/staffsync/timeclock-backend-go/internal/domain/leave"
	"github.com/staffsync/timeclock-backend-go/internal/pkg/tenant"
)

type service struct {
	leaveTypeRepo leave.LeaveTypeRepository
	requestRepo   leave.RequestRepository
	employeeRepo  employee.EmployeeRepository
}

func NewService(
	leaveTypeRepo leave.LeaveTypeRepository,
	requestRepo leave.RequestRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &service{
		leaveTypeRepo: leaveTypeRepo,
		requestRepo:   requestRepo,
		employeeRepo:  employeeRepo,
	}
}

// CreateLeaveType implements leave.LeaveService.
func (s *service) CreateLeaveType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	created, err := s.leaveTypeRepo.Create(ctx, leave.LeaveType{
		OrgID: identity.OrgID,
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	return leave.LeaveTypeResponse{ID: created.ID, Name: created.Name, Color: created.Color}, nil
}

// ListLeaveTypes implements leave.LeaveService.
func (s *service) ListLeaveTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	types, err := s.leaveTypeRepo.ListByOrgID(ctx, identity.OrgID)
	if err != nil {
		return nil, err
	}

	result := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, lt := range types {
		result = append(result, leave.LeaveTypeResponse{ID: lt.ID, Name: lt.Name, Color: lt.Color})
	}

	return result, nil
}

// DeleteLeaveType implements leave.LeaveService.
func (s *service) DeleteLeaveType(ctx context.Context, id string) error {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	return s.leaveTypeRepo.Delete(ctx, id, identity.OrgID)
}

// Submit implements leave.LeaveService.
func (s *service) Submit(ctx context.Context, req leave.SubmitRequest) (leave.RequestResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	employeeID := identity.EmployeeID
	if req.EmployeeID != "" && identity.Role == tenant.RoleAdmin {
		if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, identity.OrgID); err != nil {
			return leave.RequestResponse{}, err
		}
		employeeID = req.EmployeeID
	}

	leaveType, err := s.leaveTypeRepo.GetByID(ctx, req.LeaveTypeID, identity.OrgID)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.requestRepo.Create(ctx, leave.Request{
		OrgID:         identity.OrgID,
		EmployeeID:    employeeID,
		LeaveTypeID:   &leaveType.ID,
		LeaveTypeName: leaveType.Name,
		StartDate:     startDate,
		EndDate:       endDate,
		Reason:        req.Reason,
		Status:        leave.RequestStatusPending,
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	return leave.ToRequestResponse(created), nil
}

// Review implements leave.LeaveService.
func (s *service) Review(ctx context.Context, req leave.ReviewRequest) (leave.RequestResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	reviewed, err := s.requestRepo.Review(ctx, identity.OrgID, req, identity.EmployeeID, time.Now().UTC())
	if err != nil {
		return leave.RequestResponse{}, err
	}

	return leave.ToRequestResponse(reviewed), nil
}

// PendingFor implements leave.LeaveService.
func (s *service) PendingFor(ctx context.Context) ([]leave.RequestResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	pending, err := s.requestRepo.ListPending(ctx, identity.OrgID)
	if err != nil {
		return nil, err
	}

	result := make([]leave.RequestResponse, 0, len(pending))
	for _, req := range pending {
		result = append(result, leave.ToRequestResponse(req))
	}

	return result, nil
}

// GetMyRequests implements leave.LeaveService.
func (s *service) GetMyRequests(ctx context.Context, filter leave.RequestFilter) (leave.ListRequestsResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return leave.ListRequestsResponse{}, err
	}

	filter.EmployeeID = &identity.EmployeeID

	return s.list(ctx, identity.OrgID, filter)
}

// ListRequests implements leave.LeaveService.
func (s *service) ListRequests(ctx context.Context, filter leave.RequestFilter) (leave.ListRequestsResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return leave.ListRequestsResponse{}, err
	}

	return s.list(ctx, identity.OrgID, filter)
}

func (s *service) list(ctx context.Context, orgID string, filter leave.RequestFilter) (leave.ListRequestsResponse, error) {
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	if filter.Page == 0 {
		filter.Page = 1
	}

	requests, total, err := s.requestRepo.List(ctx, orgID, filter)
	if err != nil {
		return leave.ListRequestsResponse{}, err
	}

	data := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		data = append(data, leave.ToRequestResponse(req))
	}

	return leave.ListRequestsResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}
