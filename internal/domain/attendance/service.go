package attendance

import "context"

// SessionService defines business logic for attendance operations.
// The acting employee and organization come from the request identity.
type SessionService interface {
	// ClockIn opens a session for the caller.
	ClockIn(ctx context.Context) (SessionResponse, error)

	// ClockOut closes the caller's open session.
	ClockOut(ctx context.Context) (SessionResponse, error)

	// Status reports whether the caller has an open session.
	Status(ctx context.Context) (StatusResponse, error)

	// GetMySessions retrieves the caller's sessions.
	GetMySessions(ctx context.Context, filter SessionFilter) (ListSessionsResponse, error)

	// ListSessions retrieves sessions org-wide (admin).
	ListSessions(ctx context.Context, filter SessionFilter) (ListSessionsResponse, error)
}
