package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffsync/timeclock-backend-go/internal/domain/salary"
	"github.com/staffsync/timeclock-backend-go/internal/pkg/database"
)

type salaryConfigRepository struct {
	db *database.DB
}

func NewSalaryConfigRepository(db *database.DB) salary.ConfigRepository {
	return &salaryConfigRepository{db: db}
}

// Upsert implements salary.ConfigRepository.
func (r *salaryConfigRepository) Upsert(ctx context.Context, config salary.Config) (salary.Config, error) {
	q := GetQuerier(ctx, r.db)

	if config.ID == "" {
		config.ID = uuid.NewString()
	}

	query := `
		INSERT INTO salary_configs (id, org_id, employee_id, base_salary, hourly_rate, currency)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT ON CONSTRAINT salary_configs_employee_uniq DO UPDATE
		SET base_salary = EXCLUDED.base_salary,
			hourly_rate = EXCLUDED.hourly_rate,
			currency = EXCLUDED.currency,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		config.ID,
		config.OrgID,
		config.EmployeeID,
		config.BaseSalary,
		config.HourlyRate,
		config.Currency,
	).Scan(&config.ID, &config.CreatedAt, &config.UpdatedAt)

	if err != nil {
		return salary.Config{}, fmt.Errorf("failed to upsert salary config: %w", err)
	}

	return config, nil
}

// GetByEmployee implements salary.ConfigRepository.
func (r *salaryConfigRepository) GetByEmployee(ctx context.Context, orgID string, employeeID string) (salary.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, org_id, employee_id, base_salary, hourly_rate, currency, created_at, updated_at
		FROM salary_configs
		WHERE org_id = $1 AND employee_id = $2
	`

	var c salary.Config
	err := q.QueryRow(ctx, query, orgID, employeeID).Scan(
		&c.ID, &c.OrgID, &c.EmployeeID, &c.BaseSalary, &c.HourlyRate, &c.Currency, &c.CreatedAt, &c.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.Config{}, salary.ErrNoSalaryConfigured
		}
		return salary.Config{}, fmt.Errorf("failed to get salary config: %w", err)
	}

	return c, nil
}

// ListByOrgID implements salary.ConfigRepository.
func (r *salaryConfigRepository) ListByOrgID(ctx context.Context, orgID string) ([]salary.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, org_id, employee_id, base_salary, hourly_rate, currency, created_at, updated_at
		FROM salary_configs
		WHERE org_id = $1
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary configs: %w", err)
	}
	defer rows.Close()

	var configs []salary.Config
	for rows.Next() {
		var c salary.Config
		if err := rows.Scan(&c.ID, &c.OrgID, &c.EmployeeID, &c.BaseSalary, &c.HourlyRate, &c.Currency, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan salary config: %w", err)
		}
		configs = append(configs, c)
	}

	return configs, nil
}
