package payroll

import "context"

// PayrollService defines business logic for the payroll period lifecycle.
type PayrollService interface {
	// CreatePeriod creates an open period. Rejects inverted or
	// overlapping date ranges.
	CreatePeriod(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)

	ListPeriods(ctx context.Context) ([]PeriodResponse, error)
	GetPeriod(ctx context.Context, id string) (PeriodResponse, error)

	// Generate (re)computes the period's payslips from current
	// attendance, approved leave, and salary configuration, replacing
	// the previous set atomically. Idempotent until Finalize.
	Generate(ctx context.Context, periodID string) (GenerateResponse, error)

	// Finalize locks the period permanently.
	Finalize(ctx context.Context, periodID string) (PeriodResponse, error)

	// DeletePeriod removes a non-finalized period and its payslips.
	DeletePeriod(ctx context.Context, periodID string) error

	ListPayslips(ctx context.Context, periodID string) ([]PayslipResponse, error)

	// GetMyPayslips retrieves the caller's payslips across periods.
	GetMyPayslips(ctx context.Context) ([]PayslipResponse, error)
}
