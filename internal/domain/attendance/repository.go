package attendance

import (
	"context"
	"time"
)

// SessionRepository defines data access methods for attendance sessions.
// All methods take orgID to prevent cross-organization data access.
type SessionRepository interface {
	// CreateOpen inserts a new open session. The partial unique index on
	// open sessions makes this fail with ErrAlreadyClockedIn when a
	// concurrent or earlier clock-in already holds an open session.
	CreateOpen(ctx context.Context, session Session) (Session, error)

	// CloseOpen stamps clock_out on the employee's open session in one
	// statement. Returns ErrNoOpenSession when there is none.
	CloseOpen(ctx context.Context, orgID string, employeeID string, clockOut time.Time) (Session, error)

	// GetOpen retrieves the employee's open session, if any.
	GetOpen(ctx context.Context, orgID string, employeeID string) (*Session, error)

	// ListInRange retrieves sessions whose clock_in falls in [start, end],
	// ordered by clock_in. Open sessions are included.
	ListInRange(ctx context.Context, orgID string, employeeID string, start, end time.Time) ([]Session, error)

	// ListAllInRange retrieves every session in the organization whose
	// clock_in falls in [start, end). Used by payroll generation.
	ListAllInRange(ctx context.Context, orgID string, start, end time.Time) ([]Session, error)

	// List retrieves sessions with filters and pagination.
	List(ctx context.Context, orgID string, filter SessionFilter) ([]Session, int64, error)

	// CloseStale clocks out sessions that have been open longer than
	// maxAge, returning the closed sessions.
	CloseStale(ctx context.Context, maxAge time.Duration, closeAt time.Time) ([]Session, error)
}
