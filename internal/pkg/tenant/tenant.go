package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
)

// Role is the coarse permission level carried in the access token.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

var ErrMissingOrgClaim = errors.New("org_id claim is missing or invalid")

// Identity is the authenticated caller as seen by services. Tokens are
// issued by an external identity provider; this package only reads them.
type Identity struct {
	OrgID      string
	EmployeeID string
	Role       Role
}

// FromContext extracts the caller identity from the verified JWT claims.
func FromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	orgID, ok := claims["org_id"].(string)
	if !ok || orgID == "" {
		return Identity{}, ErrMissingOrgClaim
	}

	employeeID, _ := claims["employee_id"].(string)
	role, _ := claims["role"].(string)

	return Identity{
		OrgID:      orgID,
		EmployeeID: employeeID,
		Role:       Role(role),
	}, nil
}
