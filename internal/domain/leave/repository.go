package leave

import (
	"context"
	"time"
)

// LeaveTypeRepository defines data access methods for leave types.
type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string, orgID string) (LeaveType, error)
	ListByOrgID(ctx context.Context, orgID string) ([]LeaveType, error)
	// Delete removes the leave type. Historical requests keep their
	// snapshotted name; their type reference is nulled by the schema.
	Delete(ctx context.Context, id string, orgID string) error
}

// RequestRepository defines data access methods for leave requests.
type RequestRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string, orgID string) (Request, error)

	// Review is a single compare-and-set on status: the update only
	// applies while status is still pending, so of two concurrent
	// reviewers exactly one succeeds and the other gets
	// ErrAlreadyReviewed.
	Review(ctx context.Context, orgID string, req ReviewRequest, reviewedBy string, reviewedAt time.Time) (Request, error)

	// ListPending retrieves all pending requests for reviewer queues,
	// oldest first.
	ListPending(ctx context.Context, orgID string) ([]Request, error)

	// List retrieves requests with filters and pagination.
	List(ctx context.Context, orgID string, filter RequestFilter) ([]Request, int64, error)

	// ListApprovedInRange retrieves approved requests whose date range
	// overlaps [start, end]. Used by payroll generation.
	ListApprovedInRange(ctx context.Context, orgID string, start, end time.Time) ([]Request, error)
}
