package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn = errors.New("an open session already exists for this employee")
	ErrNoOpenSession    = errors.New("no open session exists for this employee")
	ErrSessionNotFound  = errors.New("attendance session not found")
)
