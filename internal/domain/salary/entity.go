package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config holds one employee's compensation parameters. There is exactly
// one active configuration per (org, employee); Set overwrites it in
// place, so regenerating a payroll period after a change yields
// different numbers. That is documented behavior, not a bug.
type Config struct {
	ID         string
	OrgID      string
	EmployeeID string
	BaseSalary decimal.Decimal
	HourlyRate decimal.Decimal
	Currency   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
