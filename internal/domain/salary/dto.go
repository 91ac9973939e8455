package salary

import (
	"github.com/shopspring/decimal"

	"github.com/staffsync/timeclock-backend-go/internal/pkg/validator"
)

type SetConfigRequest struct {
	EmployeeID string          `json:"employee_id"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Currency   string          `json:"currency"`
}

func (r *SetConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if !validator.IsValidCurrency(r.Currency) {
		errs = append(errs, validator.ValidationError{Field: "currency", Message: "must be a three-letter currency code"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ConfigResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Currency   string          `json:"currency"`
}

func ToResponse(c Config) ConfigResponse {
	return ConfigResponse{
		ID:         c.ID,
		EmployeeID: c.EmployeeID,
		BaseSalary: c.BaseSalary,
		HourlyRate: c.HourlyRate,
		Currency:   c.Currency,
	}
}
