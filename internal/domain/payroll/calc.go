package payroll

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffsync/timeclock-backend-go/internal/domain/attendance"
	"github.com/staffsync/timeclock-backend-go/internal/domain/leave"
	"github.com/staffsync/timeclock-backend-go/internal/domain/org"
	"github.com/staffsync/timeclock-backend-go/internal/domain/salary"
)

var sixty = decimal.NewFromInt(60)

// WorkPolicy is the organization's expected-hours baseline: a fixed hour
// count per workday and the set of weekdays that count as workdays.
type WorkPolicy struct {
	StandardDailyHours decimal.Decimal
	Workdays           org.Workdays
}

// GenerationInput carries everything a single generation run reads. All
// data is captured before computation starts; the computation itself
// touches no clock and no randomness, so identical inputs always
// produce identical payslips.
type GenerationInput struct {
	Period        Period
	Policy        WorkPolicy
	Configs       []salary.Config
	Sessions      []attendance.Session
	ApprovedLeave []leave.Request
}

// GenerationResult is one generation run's outcome: the payslips to
// persist, sorted by employee id, and the employees skipped for missing
// salary configuration.
type GenerationResult struct {
	Payslips []Payslip
	Skipped  []string
}

// HoursWorked sums the duration of sessions that lie fully within
// [start, end) and are closed. Open sessions earn no partial credit but
// never block generation. Hours are derived from whole minutes and
// rounded to two decimals.
func HoursWorked(sessions []attendance.Session, start, end time.Time) decimal.Decimal {
	var minutes int64
	for _, s := range sessions {
		if s.ClockOut == nil {
			continue
		}
		if s.ClockIn.Before(start) || s.ClockOut.After(end) {
			continue
		}
		minutes += int64(s.ClockOut.Sub(s.ClockIn).Minutes())
	}
	return decimal.NewFromInt(minutes).Div(sixty).Round(2)
}

// CountWorkdays counts days in [start, end] (inclusive dates) that fall
// on a workday.
func CountWorkdays(start, end time.Time, workdays org.Workdays) int {
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if workdays.Contains(d.Weekday()) {
			count++
		}
	}
	return count
}

// LeaveWorkdays counts the distinct workdays inside [start, end] covered
// by the given approved requests. Overlapping requests do not double
// count a day.
func LeaveWorkdays(approved []leave.Request, start, end time.Time, workdays org.Workdays) int {
	covered := make(map[string]struct{})
	for _, req := range approved {
		from, to := req.StartDate, req.EndDate
		if from.Before(start) {
			from = start
		}
		if to.After(end) {
			to = end
		}
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			if workdays.Contains(d.Weekday()) {
				covered[d.Format("2006-01-02")] = struct{}{}
			}
		}
	}
	return len(covered)
}

// ExpectedHours is the per-workday baseline times the period's workday
// count, reduced by workdays excused through approved leave. Leave days
// are excused, not separately paid.
func ExpectedHours(policy WorkPolicy, period Period, approved []leave.Request) decimal.Decimal {
	workdayCount := CountWorkdays(period.StartDate, period.EndDate, policy.Workdays)
	leaveDays := LeaveWorkdays(approved, period.StartDate, period.EndDate, policy.Workdays)
	days := workdayCount - leaveDays
	if days < 0 {
		days = 0
	}
	return policy.StandardDailyHours.Mul(decimal.NewFromInt(int64(days)))
}

// BuildPayslip computes one employee's payslip from hours worked and
// expected hours. Bonuses and deductions are pass-through adjustment
// inputs (zero unless supplied externally). Net pay is not clamped: a
// negative result is surfaced, not hidden.
func BuildPayslip(period Period, config salary.Config, hoursWorked, expectedHours decimal.Decimal) Payslip {
	overtimeHours := hoursWorked.Sub(expectedHours)
	if overtimeHours.IsNegative() {
		overtimeHours = decimal.Zero
	}
	overtimePay := overtimeHours.Mul(config.HourlyRate).Round(2)

	bonuses := decimal.Zero
	deductions := decimal.Zero
	netPay := config.BaseSalary.Add(overtimePay).Add(bonuses).Sub(deductions).Round(2)

	return Payslip{
		PeriodID:      period.ID,
		EmployeeID:    config.EmployeeID,
		Currency:      config.Currency,
		BaseSalary:    config.BaseSalary,
		HoursWorked:   hoursWorked,
		OvertimeHours: overtimeHours,
		OvertimePay:   overtimePay,
		Bonuses:       bonuses,
		Deductions:    deductions,
		NetPay:        netPay,
	}
}

// Generate computes payslips for every employee that has attendance or
// a salary configuration in the period. Employees without a salary
// configuration are skipped, not failed. Pure: repeated invocation on
// identical input yields identical output, byte for byte.
func Generate(input GenerationInput) GenerationResult {
	start, end := input.Period.Bounds()

	configByEmployee := make(map[string]salary.Config, len(input.Configs))
	for _, cfg := range input.Configs {
		configByEmployee[cfg.EmployeeID] = cfg
	}

	sessionsByEmployee := make(map[string][]attendance.Session)
	for _, s := range input.Sessions {
		sessionsByEmployee[s.EmployeeID] = append(sessionsByEmployee[s.EmployeeID], s)
	}

	leaveByEmployee := make(map[string][]leave.Request)
	for _, req := range input.ApprovedLeave {
		leaveByEmployee[req.EmployeeID] = append(leaveByEmployee[req.EmployeeID], req)
	}

	candidates := make(map[string]struct{}, len(configByEmployee)+len(sessionsByEmployee))
	for id := range configByEmployee {
		candidates[id] = struct{}{}
	}
	for id := range sessionsByEmployee {
		candidates[id] = struct{}{}
	}

	var result GenerationResult
	for employeeID := range candidates {
		cfg, ok := configByEmployee[employeeID]
		if !ok {
			result.Skipped = append(result.Skipped, employeeID)
			continue
		}

		hoursWorked := HoursWorked(sessionsByEmployee[employeeID], start, end)
		expectedHours := ExpectedHours(input.Policy, input.Period, leaveByEmployee[employeeID])
		result.Payslips = append(result.Payslips, BuildPayslip(input.Period, cfg, hoursWorked, expectedHours))
	}

	sort.Slice(result.Payslips, func(i, j int) bool {
		return result.Payslips[i].EmployeeID < result.Payslips[j].EmployeeID
	})
	sort.Strings(result.Skipped)

	return result
}
