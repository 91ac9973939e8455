package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffsync/timeclock-backend-go/internal/domain/leave"
	"github.com/staffsync/timeclock-backend-go/internal/pkg/database"
)

const leaveRequestColumns = `id, org_id, employee_id, leave_type_id, leave_type_name,
	start_date, end_date, reason, status, reviewed_by, reviewed_at, review_note,
	created_at, updated_at`

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepository{db: db}
}

// Create implements leave.RequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	if request.Status == "" {
		request.Status = leave.RequestStatusPending
	}

	query := `
		INSERT INTO leave_requests (id, org_id, employee_id, leave_type_id, leave_type_name,
			start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID,
		request.OrgID,
		request.EmployeeID,
		request.LeaveTypeID,
		request.LeaveTypeName,
		request.StartDate,
		request.EndDate,
		request.Reason,
		request.Status,
	).Scan(&request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.RequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string, orgID string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests
		WHERE id = $1 AND org_id = $2
	`, leaveRequestColumns)

	row := q.QueryRow(ctx, query, id, orgID)
	req, err := scanLeaveRequest(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// Review implements leave.RequestRepository.
//
// The status filter in the WHERE clause is the concurrency guard: a
// request that was already approved or rejected matches zero rows, so
// the losing one of two concurrent reviews comes back empty and is
// distinguished from a missing request by a follow-up lookup.
func (r *leaveRequestRepository) Review(ctx context.Context, orgID string, review leave.ReviewRequest, reviewedBy string, reviewedAt time.Time) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE leave_requests
		SET status = $1, reviewed_by = $2, reviewed_at = $3, review_note = $4, updated_at = NOW()
		WHERE id = $5 AND org_id = $6 AND status = 'pending'
		RETURNING %s
	`, leaveRequestColumns)

	row := q.QueryRow(ctx, query,
		review.Status,
		reviewedBy,
		reviewedAt,
		review.Note,
		review.ID,
		orgID,
	)

	req, err := scanLeaveRequest(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			if _, getErr := r.GetByID(ctx, review.ID, orgID); getErr != nil {
				return leave.Request{}, getErr
			}
			return leave.Request{}, leave.ErrAlreadyReviewed
		}
		return leave.Request{}, fmt.Errorf("failed to review leave request: %w", err)
	}

	return req, nil
}

// ListPending implements leave.RequestRepository.
func (r *leaveRequestRepository) ListPending(ctx context.Context, orgID string) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests
		WHERE org_id = $1 AND status = 'pending'
		ORDER BY created_at
	`, leaveRequestColumns)

	rows, err := q.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

// List implements leave.RequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, orgID string, filter leave.RequestFilter) ([]leave.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "org_id = $1"
	args := []interface{}{orgID}
	argIdx := 2

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM leave_requests WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
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
		SELECT %s
		FROM leave_requests
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, leaveRequestColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	requests, err := scanLeaveRequests(rows)
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// ListApprovedInRange implements leave.RequestRepository.
func (r *leaveRequestRepository) ListApprovedInRange(ctx context.Context, orgID string, start, end time.Time) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests
		WHERE org_id = $1
		  AND status = 'approved'
		  AND start_date <= $3
		  AND end_date >= $2
		ORDER BY employee_id, start_date
	`, leaveRequestColumns)

	rows, err := q.Query(ctx, query, orgID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

func scanLeaveRequest(row pgx.Row) (leave.Request, error) {
	var req leave.Request
	err := row.Scan(
		&req.ID, &req.OrgID, &req.EmployeeID, &req.LeaveTypeID, &req.LeaveTypeName,
		&req.StartDate, &req.EndDate, &req.Reason, &req.Status,
		&req.ReviewedBy, &req.ReviewedAt, &req.ReviewNote,
		&req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

func scanLeaveRequests(rows pgx.Rows) ([]leave.Request, error) {
	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}
