package org

import (
	"context"

	"github.com/staffsync/timeclock-backend-go/internal/domain/org"
	"github.com/staffsync/timeclock-backend-go/internal/pkg/tenant"
)

type service struct {
	orgRepo org.OrganizationRepository
}

func NewService(orgRepo org.OrganizationRepository) org.OrganizationService {
	return &service{orgRepo: orgRepo}
}

// Get implements org.OrganizationService.
func (s *service) Get(ctx context.Context) (org.OrganizationResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return org.OrganizationResponse{}, err
	}

	organization, err := s.orgRepo.GetByID(ctx, identity.OrgID)
	if err != nil {
		return org.OrganizationResponse{}, err
	}

	return org.ToResponse(organization), nil
}

// UpdateWorkPolicy implements org.OrganizationService.
func (s *service) UpdateWorkPolicy(ctx context.Context, req org.UpdateWorkPolicyRequest) (org.OrganizationResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return org.OrganizationResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return org.OrganizationResponse{}, err
	}

	organization, err := s.orgRepo.GetByID(ctx, identity.OrgID)
	if err != nil {
		return org.OrganizationResponse{}, err
	}

	if req.StandardDailyHours != nil {
		organization.StandardDailyHours = *req.StandardDailyHours
	}
	if req.Workdays != nil {
		workdays, _ := org.ParseWorkdays(req.Workdays)
		organization.Workdays = workdays
	}

	if err := s.orgRepo.UpdateWorkPolicy(ctx, organization); err != nil {
		return org.OrganizationResponse{}, err
	}

	return org.ToResponse(organization), nil
}
