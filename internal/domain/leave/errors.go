package leave

import "errors"

// Leave domain errors
var (
	ErrInvalidRange      = errors.New("end date must not be before start date")
	ErrAlreadyReviewed   = errors.New("leave request has already been reviewed")
	ErrRequestNotFound   = errors.New("leave request not found")
	ErrLeaveTypeNotFound = errors.New("leave type not found")
	ErrLeaveTypeExists   = errors.New("leave type with this name already exists")
)
