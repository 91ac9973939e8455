package attendance

import (
	"time"

	"github.com/staffsync/timeclock-backend-go/internal/pkg/validator"
)

type SessionResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	ClockIn    string  `json:"clock_in"`
	ClockOut   *string `json:"clock_out,omitempty"`
}

type StatusResponse struct {
	ClockedIn bool    `json:"clocked_in"`
	ClockIn   *string `json:"clock_in,omitempty"`
}

// SessionFilter selects sessions by clock-in range, org-wide or for one
// employee, with page/limit pagination.
type SessionFilter struct {
	EmployeeID *string
	Start      *string // RFC3339
	End        *string // RFC3339
	Page       int
	Limit      int
}

func (f *SessionFilter) Validate() error {
	var errs validator.ValidationErrors

	var start, end time.Time
	if f.Start != nil && *f.Start != "" {
		t, ok := validator.IsValidDateTime(*f.Start)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "start", Message: "must be an RFC3339 timestamp"})
		}
		start = t
	}
	if f.End != nil && *f.End != "" {
		t, ok := validator.IsValidDateTime(*f.End)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "end", Message: "must be an RFC3339 timestamp"})
		}
		end = t
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end", Message: "must not be before start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListSessionsResponse struct {
	Data       []SessionResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

func ToSessionResponse(s Session) SessionResponse {
	resp := SessionResponse{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		ClockIn:    s.ClockIn.Format(time.RFC3339),
	}
	if s.ClockOut != nil {
		out := s.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &out
	}
	return resp
}
