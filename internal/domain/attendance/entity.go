package attendance

import "time"

// Session is one clock-in/clock-out pair. A session with ClockOut still
// nil is "open"; the storage layer guarantees at most one open session
// per (org, employee) at any instant.
type Session struct {
	ID         string
	OrgID      string
	EmployeeID string
	ClockIn    time.Time
	ClockOut   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Open reports whether the session has not been clocked out yet.
func (s Session) Open() bool {
	return s.ClockOut == nil
}

// Duration returns the session length, or zero while it is still open.
func (s Session) Duration() time.Duration {
	if s.ClockOut == nil {
		return 0
	}
	return s.ClockOut.Sub(s.ClockIn)
}
