package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffsync/timeclock-backend-go/internal/domain/payroll"
	"github.com/staffsync/timeclock-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PeriodRepository {
	return &payrollRepository{db: db}
}

// CreatePeriod implements payroll.PeriodRepository.
func (r *payrollRepository) CreatePeriod(ctx context.Context, period payroll.Period) (payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	if period.ID == "" {
		period.ID = uuid.NewString()
	}
	if period.Status == "" {
		period.Status = payroll.PeriodStatusOpen
	}

	query := `
		INSERT INTO payroll_periods (id, org_id, name, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		period.ID,
		period.OrgID,
		period.Name,
		period.StartDate,
		period.EndDate,
		period.Status,
	).Scan(&period.CreatedAt, &period.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" && pgErr.ConstraintName == "payroll_periods_no_overlap" {
			return payroll.Period{}, payroll.ErrPeriodOverlaps
		}
		return payroll.Period{}, fmt.Errorf("failed to create payroll period: %w", err)
	}

	return period, nil
}

// GetPeriod implements payroll.PeriodRepository.
func (r *payrollRepository) GetPeriod(ctx context.Context, id string, orgID string) (payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, org_id, name, start_date, end_date, status, created_at, updated_at
		FROM payroll_periods
		WHERE id = $1 AND org_id = $2
	`

	var p payroll.Period
	err := q.QueryRow(ctx, query, id, orgID).Scan(
		&p.ID, &p.OrgID, &p.Name, &p.StartDate, &p.EndDate, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Period{}, payroll.ErrPeriodNotFound
		}
		return payroll.Period{}, fmt.Errorf("failed to get payroll period: %w", err)
	}

	return p, nil
}

// ListPeriods implements payroll.PeriodRepository.
func (r *payrollRepository) ListPeriods(ctx context.Context, orgID string) ([]payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, org_id, name, start_date, end_date, status, created_at, updated_at
		FROM payroll_periods
		WHERE org_id = $1
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.Period
	for rows.Next() {
		var p payroll.Period
		if err := rows.Scan(&p.ID, &p.OrgID, &p.Name, &p.StartDate, &p.EndDate, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		periods = append(periods, p)
	}

	return periods, nil
}

// LockPeriod implements payroll.PeriodRepository.
func (r *payrollRepository) LockPeriod(ctx context.Context, id string, orgID string) (payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, org_id, name, start_date, end_date, status, created_at, updated_at
		FROM payroll_periods
		WHERE id = $1 AND org_id = $2
		FOR UPDATE NOWAIT
	`

	var p payroll.Period
	err := q.QueryRow(ctx, query, id, orgID).Scan(
		&p.ID, &p.OrgID, &p.Name, &p.StartDate, &p.EndDate, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Period{}, payroll.ErrPeriodNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "55P03" {
			return payroll.Period{}, payroll.ErrGenerationInProgress
		}
		return payroll.Period{}, fmt.Errorf("failed to lock payroll period: %w", err)
	}

	return p, nil
}

// ReplacePayslips implements payroll.PeriodRepository.
func (r *payrollRepository) ReplacePayslips(ctx context.Context, periodID string, payslips []payroll.Payslip) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, "DELETE FROM payslips WHERE period_id = $1", periodID); err != nil {
		return nil, fmt.Errorf("failed to delete existing payslips: %w", err)
	}

	query := `
		INSERT INTO payslips (id, period_id, employee_id, currency, base_salary,
			hours_worked, overtime_hours, overtime_pay, bonuses, deductions, net_pay)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`

	out := make([]payroll.Payslip, 0, len(payslips))
	for _, slip := range payslips {
		if slip.ID == "" {
			slip.ID = uuid.NewString()
		}
		slip.PeriodID = periodID

		err := q.QueryRow(ctx, query,
			slip.ID,
			slip.PeriodID,
			slip.EmployeeID,
			slip.Currency,
			slip.BaseSalary,
			slip.HoursWorked,
			slip.OvertimeHours,
			slip.OvertimePay,
			slip.Bonuses,
			slip.Deductions,
			slip.NetPay,
		).Scan(&slip.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to insert payslip: %w", err)
		}

		out = append(out, slip)
	}

	return out, nil
}

// SetPeriodStatus implements payroll.PeriodRepository.
func (r *payrollRepository) SetPeriodStatus(ctx context.Context, id string, orgID string, status payroll.PeriodStatus) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx,
		"UPDATE payroll_periods SET status = $1, updated_at = NOW() WHERE id = $2 AND org_id = $3",
		status, id, orgID,
	)
	if err != nil {
		return fmt.Errorf("failed to set period status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return payroll.ErrPeriodNotFound
	}

	return nil
}

// CountPayslips implements payroll.PeriodRepository.
func (r *payrollRepository) CountPayslips(ctx context.Context, periodID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, "SELECT COUNT(*) FROM payslips WHERE period_id = $1", periodID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count payslips: %w", err)
	}

	return count, nil
}

// ListPayslips implements payroll.PeriodRepository.
func (r *payrollRepository) ListPayslips(ctx context.Context, periodID string, orgID string) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.period_id, p.employee_id, p.currency, p.base_salary,
			p.hours_worked, p.overtime_hours, p.overtime_pay, p.bonuses, p.deductions, p.net_pay,
			p.created_at
		FROM payslips p
		JOIN payroll_periods pp ON pp.id = p.period_id
		WHERE p.period_id = $1 AND pp.org_id = $2
		ORDER BY p.employee_id
	`

	rows, err := q.Query(ctx, query, periodID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payslips: %w", err)
	}
	defer rows.Close()

	return scanPayslips(rows)
}

// ListPayslipsByEmployee implements payroll.PeriodRepository.
func (r *payrollRepository) ListPayslipsByEmployee(ctx context.Context, orgID string, employeeID string) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.period_id, p.employee_id, p.currency, p.base_salary,
			p.hours_worked, p.overtime_hours, p.overtime_pay, p.bonuses, p.deductions, p.net_pay,
			p.created_at
		FROM payslips p
		JOIN payroll_periods pp ON pp.id = p.period_id
		WHERE pp.org_id = $1 AND p.employee_id = $2
		ORDER BY pp.start_date DESC
	`

	rows, err := q.Query(ctx, query, orgID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee payslips: %w", err)
	}
	defer rows.Close()

	return scanPayslips(rows)
}

// DeletePeriod implements payroll.PeriodRepository.
func (r *payrollRepository) DeletePeriod(ctx context.Context, id string, orgID string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, "DELETE FROM payroll_periods WHERE id = $1 AND org_id = $2", id, orgID)
	if err != nil {
		return fmt.Errorf("failed to delete payroll period: %w", err)
	}
	if result.RowsAffected() == 0 {
		return payroll.ErrPeriodNotFound
	}

	return nil
}

func scanPayslips(rows pgx.Rows) ([]payroll.Payslip, error) {
	var payslips []payroll.Payslip
	for rows.Next() {
		var p payroll.Payslip
		err := rows.Scan(
			&p.ID, &p.PeriodID, &p.EmployeeID, &p.Currency, &p.BaseSalary,
			&p.HoursWorked, &p.OvertimeHours, &p.OvertimePay, &p.Bonuses, &p.Deductions, &p.NetPay,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}
	return payslips, nil
}
