package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffsync/timeclock-backend-go/internal/domain/attendance"
	"github.com/staffsync/timeclock-backend-go/internal/pkg/database"
)

type sessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) attendance.SessionRepository {
	return &sessionRepository{db: db}
}

// CreateOpen implements attendance.SessionRepository.
//
// The check-and-create is a single INSERT: the partial unique index
// attendance_sessions_one_open rejects a second open session for the
// same employee, which closes the race window between concurrent
// clock-ins.
func (r *sessionRepository) CreateOpen(ctx context.Context, session attendance.Session) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	if session.ID == "" {
		session.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_sessions (id, org_id, employee_id, clock_in)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		session.ID,
		session.OrgID,
		session.EmployeeID,
		session.ClockIn,
	).Scan(&session.CreatedAt, &session.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "attendance_sessions_one_open" {
			return attendance.Session{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Session{}, fmt.Errorf("failed to create attendance session: %w", err)
	}

	return session, nil
}

// CloseOpen implements attendance.SessionRepository.
func (r *sessionRepository) CloseOpen(ctx context.Context, orgID string, employeeID string, clockOut time.Time) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_sessions
		SET clock_out = $1, updated_at = NOW()
		WHERE org_id = $2
		  AND employee_id = $3
		  AND clock_out IS NULL
		RETURNING id, org_id, employee_id, clock_in, clock_out, created_at, updated_at
	`

	var s attendance.Session
	err := q.QueryRow(ctx, query, clockOut, orgID, employeeID).Scan(
		&s.ID, &s.OrgID, &s.EmployeeID, &s.ClockIn, &s.ClockOut, &s.CreatedAt, &s.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Session{}, attendance.ErrNoOpenSession
		}
		return attendance.Session{}, fmt.Errorf("failed to close attendance session: %w", err)
	}

	return s, nil
}

// GetOpen implements attendance.SessionRepository.
func (r *sessionRepository) GetOpen(ctx context.Context, orgID string, employeeID string) (*attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, org_id, employee_id, clock_in, clock_out, created_at, updated_at
		FROM attendance_sessions
		WHERE org_id = $1
		  AND employee_id = $2
		  AND clock_out IS NULL
	`

	var s attendance.Session
	err := q.QueryRow(ctx, query, orgID, employeeID).Scan(
		&s.ID, &s.OrgID, &s.EmployeeID, &s.ClockIn, &s.ClockOut, &s.CreatedAt, &s.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}

	return &s, nil
}

// ListInRange implements attendance.SessionRepository.
func (r *sessionRepository) ListInRange(ctx context.Context, orgID string, employeeID string, start, end time.Time) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, org_id, employee_id, clock_in, clock_out, created_at, updated_at
		FROM attendance_sessions
		WHERE org_id = $1
		  AND employee_id = $2
		  AND clock_in >= $3
		  AND clock_in <= $4
		ORDER BY clock_in
	`

	rows, err := q.Query(ctx, query, orgID, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions in range: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// ListAllInRange implements attendance.SessionRepository.
func (r *sessionRepository) ListAllInRange(ctx context.Context, orgID string, start, end time.Time) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, org_id, employee_id, clock_in, clock_out, created_at, updated_at
		FROM attendance_sessions
		WHERE org_id = $1
		  AND clock_in >= $2
		  AND clock_in < $3
		ORDER BY employee_id, clock_in
	`

	rows, err := q.Query(ctx, query, orgID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query org sessions in range: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// List implements attendance.SessionRepository.
func (r *sessionRepository) List(ctx context.Context, orgID string, filter attendance.SessionFilter) ([]attendance.Session, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "org_id = $1"
	args := []interface{}{orgID}
	argIdx := 2

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Start != nil && *filter.Start != "" {
		baseWhere += fmt.Sprintf(" AND clock_in >= $%d", argIdx)
		args = append(args, *filter.Start)
		argIdx++
	}
	if filter.End != nil && *filter.End != "" {
		baseWhere += fmt.Sprintf(" AND clock_in <= $%d", argIdx)
		args = append(args, *filter.End)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendance_sessions WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT id, org_id, employee_id, clock_in, clock_out, created_at, updated_at
		FROM attendance_sessions
		WHERE %s
		ORDER BY clock_in DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	sessions, err := scanSessions(rows)
	if err != nil {
		return nil, 0, err
	}

	return sessions, total, nil
}

// CloseStale implements attendance.SessionRepository.
func (r *sessionRepository) CloseStale(ctx context.Context, maxAge time.Duration, closeAt time.Time) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_sessions
		SET clock_out = $1, updated_at = NOW()
		WHERE clock_out IS NULL
		  AND clock_in < $2
		RETURNING id, org_id, employee_id, clock_in, clock_out, created_at, updated_at
	`

	rows, err := q.Query(ctx, query, closeAt, closeAt.Add(-maxAge))
	if err != nil {
		return nil, fmt.Errorf("failed to close stale sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func scanSessions(rows pgx.Rows) ([]attendance.Session, error) {
	var sessions []attendance.Session
	for rows.Next() {
		var s attendance.Session
		if err := rows.Scan(&s.ID, &s.OrgID, &s.EmployeeID, &s.ClockIn, &s.ClockOut, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}
