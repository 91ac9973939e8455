package payroll

import "errors"

// Payroll domain errors
var (
	ErrPeriodNotFound       = errors.New("payroll period not found")
	ErrInvalidRange         = errors.New("end date must not be before start date")
	ErrPeriodOverlaps       = errors.New("period overlaps an existing payroll period")
	ErrPeriodFinalized      = errors.New("payroll period is finalized")
	ErrNoPayslipsGenerated  = errors.New("payroll period has no generated payslips")
	ErrGenerationInProgress = errors.New("payroll generation already in progress for this period")
)
