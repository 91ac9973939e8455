package org

import "context"

// OrganizationRepository defines data access methods for organizations.
type OrganizationRepository interface {
	Create(ctx context.Context, organization Organization) (Organization, error)
	GetByID(ctx context.Context, id string) (Organization, error)
	UpdateWorkPolicy(ctx context.Context, organization Organization) error
}
