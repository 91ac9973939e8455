package leave

import "time"

// LeaveType entity: organization-defined leave taxonomy.
type LeaveType struct {
	ID        string
	OrgID     string
	Name      string
	Color     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Request is a leave request. It is created pending and reviewed exactly
// once; approved/rejected requests are immutable. LeaveTypeName is a
// snapshot taken at submission time so the label survives deletion of
// the leave type.
type Request struct {
	ID            string
	OrgID         string
	EmployeeID    string
	LeaveTypeID   *string
	LeaveTypeName string
	StartDate     time.Time
	EndDate       time.Time
	Reason        string
	Status        RequestStatus
	ReviewedBy    *string
	ReviewedAt    *time.Time
	ReviewNote    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Overlaps reports whether the request's date range intersects
// [start, end], inclusive on both ends.
func (r Request) Overlaps(start, end time.Time) bool {
	return !r.StartDate.After(end) && !r.EndDate.Before(start)
}
