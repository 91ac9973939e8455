package employee

import "time"

// Employee is an organization-scoped identity, distinct from whatever
// authentication principal the external identity provider manages.
type Employee struct {
	ID         string
	OrgID      string
	FullName   string
	Department *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
