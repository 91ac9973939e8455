package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodStatus enum. Transitions are monotonic:
// open -> generated (repeatable) -> finalized (terminal).
type PeriodStatus string

const (
	PeriodStatusOpen      PeriodStatus = "open"
	PeriodStatusGenerated PeriodStatus = "generated"
	PeriodStatusFinalized PeriodStatus = "finalized"
)

// Period is a bounded date range over which attendance is aggregated
// into payslips. Once finalized, the period and its payslips are frozen.
type Period struct {
	ID        string
	OrgID     string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Status    PeriodStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Bounds returns the period as half-open instants [start, end): midnight
// at the start date up to midnight after the end date, UTC. Durations
// are tracked as monotonic wall-clock time per the organization's local
// convention, so no time-zone conversion happens here.
func (p Period) Bounds() (time.Time, time.Time) {
	start := time.Date(p.StartDate.Year(), p.StartDate.Month(), p.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(p.EndDate.Year(), p.EndDate.Month(), p.EndDate.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return start, end
}

// Payslip is one employee's pay computation for one period. Rows are
// overwritten wholesale on every generation and immutable once the
// period is finalized.
type Payslip struct {
	ID            string
	PeriodID      string
	EmployeeID    string
	Currency      string
	BaseSalary    decimal.Decimal
	HoursWorked   decimal.Decimal
	OvertimeHours decimal.Decimal
	OvertimePay   decimal.Decimal
	Bonuses       decimal.Decimal
	Deductions    decimal.Decimal
	NetPay        decimal.Decimal
	CreatedAt     time.Time
}
