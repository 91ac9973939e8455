package leave

import "context"

// LeaveService defines business logic for leave types and requests.
type LeaveService interface {
	// Leave types
	CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	ListLeaveTypes(ctx context.Context) ([]LeaveTypeResponse, error)
	DeleteLeaveType(ctx context.Context, id string) error

	// Submit creates a pending request for the caller (or, for admins,
	// on behalf of the named employee). Overlapping requests are
	// accepted; the reviewer decides.
	Submit(ctx context.Context, req SubmitRequest) (RequestResponse, error)

	// Review approves or rejects a pending request exactly once.
	Review(ctx context.Context, req ReviewRequest) (RequestResponse, error)

	// PendingFor retrieves the reviewer queue.
	PendingFor(ctx context.Context) ([]RequestResponse, error)

	// GetMyRequests retrieves the caller's requests.
	GetMyRequests(ctx context.Context, filter RequestFilter) (ListRequestsResponse, error)

	// ListRequests retrieves requests org-wide (admin).
	ListRequests(ctx context.Context, filter RequestFilter) (ListRequestsResponse, error)
}
