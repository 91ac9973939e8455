package payroll

import "context"

// PeriodRepository defines data access methods for payroll periods and
// their payslips. All methods take orgID to prevent cross-organization
// data access.
type PeriodRepository interface {
	// CreatePeriod inserts an open period. Overlap with an existing
	// period of the same org fails with ErrPeriodOverlaps (exclusion
	// constraint at the storage layer).
	CreatePeriod(ctx context.Context, period Period) (Period, error)

	GetPeriod(ctx context.Context, id string, orgID string) (Period, error)
	ListPeriods(ctx context.Context, orgID string) ([]Period, error)

	// LockPeriod loads the period row under FOR UPDATE NOWAIT inside the
	// ambient transaction. A held lock fails with
	// ErrGenerationInProgress; this is what serializes Generate calls
	// against each other and against Finalize/Delete.
	LockPeriod(ctx context.Context, id string, orgID string) (Period, error)

	// ReplacePayslips deletes and reinserts the period's payslips.
	// Callers run it inside the same transaction as LockPeriod so a
	// partially replaced set is never observable.
	ReplacePayslips(ctx context.Context, periodID string, payslips []Payslip) ([]Payslip, error)

	SetPeriodStatus(ctx context.Context, id string, orgID string, status PeriodStatus) error

	CountPayslips(ctx context.Context, periodID string) (int64, error)
	ListPayslips(ctx context.Context, periodID string, orgID string) ([]Payslip, error)
	ListPayslipsByEmployee(ctx context.Context, orgID string, employeeID string) ([]Payslip, error)

	// DeletePeriod removes the period; payslips go with it via cascade.
	DeletePeriod(ctx context.Context, id string, orgID string) error
}
