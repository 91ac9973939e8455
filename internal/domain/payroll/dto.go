package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/staffsync/timeclock-backend-go/internal/pkg/validator"
)

type CreatePeriodRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a YYYY-MM-DD date"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a YYYY-MM-DD date"})
	}
	if startOK && endOK && end.Before(start) {
		return ErrInvalidRange
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

func ToPeriodResponse(p Period) PeriodResponse {
	return PeriodResponse{
		ID:        p.ID,
		Name:      p.Name,
		StartDate: p.StartDate.Format("2006-01-02"),
		EndDate:   p.EndDate.Format("2006-01-02"),
		Status:    string(p.Status),
	}
}

// GenerateResponse summarizes one generation run. Per-employee skips
// are reported, never turned into a batch failure.
type GenerateResponse struct {
	Period             PeriodResponse `json:"period"`
	GeneratedCount     int            `json:"generated_count"`
	SkippedCount       int            `json:"skipped_count"`
	SkippedEmployeeIDs []string       `json:"skipped_employee_ids,omitempty"`
}

type PayslipResponse struct {
	ID            string          `json:"id"`
	PeriodID      string          `json:"period_id"`
	EmployeeID    string          `json:"employee_id"`
	Currency      string          `json:"currency"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	HoursWorked   decimal.Decimal `json:"hours_worked"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	OvertimePay   decimal.Decimal `json:"overtime_pay"`
	Bonuses       decimal.Decimal `json:"bonuses"`
	Deductions    decimal.Decimal `json:"deductions"`
	NetPay        decimal.Decimal `json:"net_pay"`
}

func ToPayslipResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		ID:            p.ID,
		PeriodID:      p.PeriodID,
		EmployeeID:    p.EmployeeID,
		Currency:      p.Currency,
		BaseSalary:    p.BaseSalary,
		HoursWorked:   p.HoursWorked,
		OvertimeHours: p.OvertimeHours,
		OvertimePay:   p.OvertimePay,
		Bonuses:       p.Bonuses,
		Deductions:    p.Deductions,
		NetPay:        p.NetPay,
	}
}

func ToPayslipResponses(payslips []Payslip) []PayslipResponse {
	result := make([]PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		result = append(result, ToPayslipResponse(p))
	}
	return result
}
