package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/staffsync/timeclock-backend-go/internal/domain/attendance"
	"github.com/staffsync/timeclock-backend-go/internal/pkg/tenant"
)

type service struct {
	sessionRepo attendance.SessionRepository
}

func NewService(sessionRepo attendance.SessionRepository) attendance.SessionService {
	return &service{sessionRepo: sessionRepo}
}

// ClockIn implements attendance.SessionService.
func (s *service) ClockIn(ctx context.Context) (attendance.SessionResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return attendance.SessionResponse{}, err
	}

	session, err := s.sessionRepo.CreateOpen(ctx, attendance.Session{
		OrgID:      identity.OrgID,
		EmployeeID: identity.EmployeeID,
		ClockIn:    time.Now().UTC(),
	})
	if err != nil {
		return attendance.SessionResponse{}, err
	}

	return attendance.ToSessionResponse(session), nil
}

// ClockOut implements attendance.SessionService.
func (s *service) ClockOut(ctx context.Context) (attendance.SessionResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return attendance.SessionResponse{}, err
	}

	session, err := s.sessionRepo.CloseOpen(ctx, identity.OrgID, identity.EmployeeID, time.Now().UTC())
	if err != nil {
		return attendance.SessionResponse{}, err
	}

	return attendance.ToSessionResponse(session), nil
}

// Status implements attendance.SessionService.
func (s *service) Status(ctx context.Context) (attendance.StatusResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	open, err := s.sessionRepo.GetOpen(ctx, identity.OrgID, identity.EmployeeID)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to get clock-in status: %w", err)
	}

	if open == nil {
		return attendance.StatusResponse{ClockedIn: false}, nil
	}

	clockIn := open.ClockIn.Format(time.RFC3339)
	return attendance.StatusResponse{ClockedIn: true, ClockIn: &clockIn}, nil
}

// GetMySessions implements attendance.SessionService.
func (s *service) GetMySessions(ctx context.Context, filter attendance.SessionFilter) (attendance.ListSessionsResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return attendance.ListSessionsResponse{}, err
	}

	// Callers can only see their own sessions regardless of the filter.
	filter.EmployeeID = &identity.EmployeeID

	return s.list(ctx, identity.OrgID, filter)
}

// ListSessions implements attendance.SessionService.
func (s *service) ListSessions(ctx context.Context, filter attendance.SessionFilter) (attendance.ListSessionsResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return attendance.ListSessionsResponse{}, err
	}

	return s.list(ctx, identity.OrgID, filter)
}

func (s *service) list(ctx context.Context, orgID string, filter attendance.SessionFilter) (attendance.ListSessionsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListSessionsResponse{}, err
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	if filter.Page == 0 {
		filter.Page = 1
	}

	sessions, total, err := s.sessionRepo.List(ctx, orgID, filter)
	if err != nil {
		return attendance.ListSessionsResponse{}, err
	}

	data := make([]attendance.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		data = append(data, attendance.ToSessionResponse(session))
	}

	return attendance.ListSessionsResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}
