package org

import (
	"github.com/shopspring/decimal"

	"github.com/staffsync/timeclock-backend-go/internal/pkg/validator"
)

type OrganizationResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	StandardDailyHours decimal.Decimal `json:"standard_daily_hours"`
	Workdays           []string        `json:"workdays"`
}

type UpdateWorkPolicyRequest struct {
	StandardDailyHours *decimal.Decimal `json:"standard_daily_hours,omitempty"`
	Workdays           []string         `json:"workdays,omitempty"`
}

func (r *UpdateWorkPolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StandardDailyHours != nil {
		if r.StandardDailyHours.IsNegative() || r.StandardDailyHours.GreaterThan(decimal.NewFromInt(24)) {
			errs = append(errs, validator.ValidationError{Field: "standard_daily_hours", Message: "must be between 0 and 24"})
		}
	}
	if r.Workdays != nil {
		if w, ok := ParseWorkdays(r.Workdays); !ok || w == 0 {
			errs = append(errs, validator.ValidationError{Field: "workdays", Message: "must be a non-empty list of weekday names"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func ToResponse(o Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:                 o.ID,
		Name:               o.Name,
		StandardDailyHours: o.StandardDailyHours,
		Workdays:           o.Workdays.Names(),
	}
}
