package salary

import "errors"

var ErrNoSalaryConfigured = errors.New("no salary configuration for this employee")
