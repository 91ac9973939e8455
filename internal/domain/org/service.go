package org

import "context"

// OrganizationService defines business logic for organization settings.
type OrganizationService interface {
	// Get retrieves the caller's organization.
	Get(ctx context.Context) (OrganizationResponse, error)

	// UpdateWorkPolicy changes the expected-hours baseline settings.
	UpdateWorkPolicy(ctx context.Context, req UpdateWorkPolicyRequest) (OrganizationResponse, error)
}
