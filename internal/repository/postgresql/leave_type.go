package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffsync/timeclock-backend-go/internal/domain/leave"
	"github.com/staffsync/timeclock-backend-go/internal/pkg/database"
)

type leaveTypeRepository struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepository{db: db}
}

// Create implements leave.LeaveTypeRepository.
func (r *leaveTypeRepository) Create(ctx context.Context, leaveType leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	if leaveType.ID == "" {
		leaveType.ID = uuid.NewString()
	}

	query := `
		INSERT INTO leave_types (id, org_id, name, color)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		leaveType.ID,
		leaveType.OrgID,
		leaveType.Name,
		leaveType.Color,
	).Scan(&leaveType.CreatedAt, &leaveType.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return leave.LeaveType{}, leave.ErrLeaveTypeExists
		}
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}

	return leaveType, nil
}

// GetByID implements leave.LeaveTypeRepository.
func (r *leaveTypeRepository) GetByID(ctx context.Context, id string, orgID string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, org_id, name, color, created_at, updated_at
		FROM leave_types
		WHERE id = $1 AND org_id = $2
	`

	var lt leave.LeaveType
	err := q.QueryRow(ctx, query, id, orgID).Scan(
		&lt.ID, &lt.OrgID, &lt.Name, &lt.Color, &lt.CreatedAt, &lt.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, fmt.Errorf("failed to get leave type: %w", err)
	}

	return lt, nil
}

// ListByOrgID implements leave.LeaveTypeRepository.
func (r *leaveTypeRepository) ListByOrgID(ctx context.Context, orgID string) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, org_id, name, color, created_at, updated_at
		FROM leave_types
		WHERE org_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave types: %w", err)
	}
	defer rows.Close()

	var types []leave.LeaveType
	for rows.Next() {
		var lt leave.LeaveType
		if err := rows.Scan(&lt.ID, &lt.OrgID, &lt.Name, &lt.Color, &lt.CreatedAt, &lt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leave type: %w", err)
		}
		types = append(types, lt)
	}

	return types, nil
}

// Delete implements leave.LeaveTypeRepository.
func (r *leaveTypeRepository) Delete(ctx context.Context, id string, orgID string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, "DELETE FROM leave_types WHERE id = $1 AND org_id = $2", id, orgID)
	if err != nil {
		return fmt.Errorf("failed to delete leave type: %w", err)
	}
	if result.RowsAffected() == 0 {
		return leave.ErrLeaveTypeNotFound
	}

	return nil
}
