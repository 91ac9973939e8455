package response

import (
	"errors"
	"net/http"

	"github.com/staffsync/timeclock-backend-go/internal/domain/attendance"
	"github.com/staffsync/timeclock-backend-go/internal/domain/employee"
	"github.com/staffsync/timeclock-backend-go/internal/domain/leave"
	"github.com/staffsync/timeclock-backend-go/internal/domain/org"
	"github.com/staffsync/timeclock-backend-go/internal/domain/payroll"
	"github.com/staffsync/timeclock-backend-go/internal/domain/salary"
	"github.com/staffsync/timeclock-backend-go/internal/pkg/tenant"
	"github.com/staffsync/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Identity
	case errors.Is(err, tenant.ErrMissingOrgClaim):
		Unauthorized(w, "Invalid access token")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in")
	case errors.Is(err, attendance.ErrNoOpenSession):
		Conflict(w, "No open attendance session")
	case errors.Is(err, attendance.ErrSessionNotFound):
		NotFound(w, "Attendance session not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrInvalidRange):
		writeJSON(w, http.StatusUnprocessableEntity, Response{
			Success: false,
			Error: &ErrorDetail{
				Code:    "VALIDATION_ERROR",
				Message: "End date must not be before start date",
			},
		})
	case errors.Is(err, leave.ErrAlreadyReviewed):
		Conflict(w, "Leave request already reviewed")
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveTypeExists):
		Conflict(w, "Leave type already exists")

	// Salary domain errors
	case errors.Is(err, salary.ErrNoSalaryConfigured):
		NotFound(w, "No salary configured for employee")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidRange):
		writeJSON(w, http.StatusUnprocessableEntity, Response{
			Success: false,
			Error: &ErrorDetail{
				Code:    "VALIDATION_ERROR",
				Message: "End date must not be before start date",
			},
		})
	case errors.Is(err, payroll.ErrPeriodOverlaps):
		Conflict(w, "Period overlaps an existing payroll period")
	case errors.Is(err, payroll.ErrPeriodFinalized):
		Conflict(w, "Payroll period is finalized")
	case errors.Is(err, payroll.ErrNoPayslipsGenerated):
		Conflict(w, "Payroll period has no generated payslips")
	case errors.Is(err, payroll.ErrGenerationInProgress):
		Conflict(w, "Payroll generation already in progress")
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")

	// Roster domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, org.ErrOrganizationNotFound):
		NotFound(w, "Organization not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
