package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffsync/timeclock-backend-go/internal/domain/org"
	"github.com/staffsync/timeclock-backend-go/internal/pkg/database"
)

type organizationRepository struct {
	db *database.DB
}

func NewOrganizationRepository(db *database.DB) org.OrganizationRepository {
	return &organizationRepository{db: db}
}

// Create implements org.OrganizationRepository.
func (r *organizationRepository) Create(ctx context.Context, newOrg org.Organization) (org.Organization, error) {
	q := GetQuerier(ctx, r.db)

	if newOrg.ID == "" {
		newOrg.ID = uuid.NewString()
	}

	query := `
		INSERT INTO organizations (id, name, standard_daily_hours, workdays)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newOrg.ID,
		newOrg.Name,
		newOrg.StandardDailyHours,
		int16(newOrg.Workdays),
	).Scan(&newOrg.CreatedAt, &newOrg.UpdatedAt)

	if err != nil {
		return org.Organization{}, fmt.Errorf("failed to create organization: %w", err)
	}

	return newOrg, nil
}

// GetByID implements org.OrganizationRepository.
func (r *organizationRepository) GetByID(ctx context.Context, id string) (org.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, standard_daily_hours, workdays, created_at, updated_at
		FROM organizations
		WHERE id = $1
	`

	var o org.Organization
	var workdays int16
	err := q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Name, &o.StandardDailyHours, &workdays, &o.CreatedAt, &o.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return org.Organization{}, org.ErrOrganizationNotFound
		}
		return org.Organization{}, fmt.Errorf("failed to get organization: %w", err)
	}

	o.Workdays = org.Workdays(workdays)
	return o, nil
}

// UpdateWorkPolicy implements org.OrganizationRepository.
func (r *organizationRepository) UpdateWorkPolicy(ctx context.Context, o org.Organization) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE organizations
		SET standard_daily_hours = $1, workdays = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, o.StandardDailyHours, int16(o.Workdays), o.ID).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return org.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to update organization work policy: %w", err)
	}

	return nil
}
