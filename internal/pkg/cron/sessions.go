package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/staffsync/timeclock-backend-go/internal/domain/attendance"
)

// SessionJobs closes attendance sessions that were left open, e.g. an
// employee who clocked in and never clocked out.
type SessionJobs struct {
	sessionRepo attendance.SessionRepository
	maxAge      time.Duration
}

func NewSessionJobs(sessionRepo attendance.SessionRepository, maxAge time.Duration) *SessionJobs {
	return &SessionJobs{
		sessionRepo: sessionRepo,
		maxAge:      maxAge,
	}
}

func (j *SessionJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("auto_close_stale_sessions", interval, j.AutoCloseStaleSessions)
}

func (j *SessionJobs) AutoCloseStaleSessions(ctx context.Context) error {
	closed, err := j.sessionRepo.CloseStale(ctx, j.maxAge, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to close stale sessions: %w", err)
	}

	if len(closed) > 0 {
		slog.Info("Cron: closed stale attendance sessions", "count", len(closed))
	}

	return nil
}
