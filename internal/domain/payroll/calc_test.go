package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffsync/timeclock-backend-go/internal/domain/attendance"
	"github.com/staffsync/timeclock-backend-go/internal/domain/leave"
	"github.com/staffsync/timeclock-backend-go/internal/domain/org"
	"github.com/staffsync/timeclock-backend-go/internal/domain/salary"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func closedSession(employeeID string, clockIn time.Time, hours int) attendance.Session {
	out := clockIn.Add(time.Duration(hours) * time.Hour)
	return attendance.Session{
		EmployeeID: employeeID,
		ClockIn:    clockIn,
		ClockOut:   &out,
	}
}

func defaultPolicy() WorkPolicy {
	return WorkPolicy{
		StandardDailyHours: decimal.NewFromInt(8),
		Workdays:           org.WorkdaysMonToFri,
	}
}

// Thursday and Friday: two workdays, 16 expected hours under the
// default policy.
func twoDayPeriod() Period {
	return Period{
		ID:        "period-1",
		OrgID:     "org-1",
		StartDate: date(2025, time.January, 2),
		EndDate:   date(2025, time.January, 3),
		Status:    PeriodStatusOpen,
	}
}

func TestGenerateWorkedExample(t *testing.T) {
	period := twoDayPeriod()
	cfg := salary.Config{
		EmployeeID: "emp-1",
		BaseSalary: decimal.RequireFromString("3000.00"),
		HourlyRate: decimal.RequireFromString("20.00"),
		Currency:   "MYR",
	}

	result := Generate(GenerationInput{
		Period:  period,
		Policy:  defaultPolicy(),
		Configs: []salary.Config{cfg},
		Sessions: []attendance.Session{
			closedSession("emp-1", time.Date(2025, time.January, 2, 9, 0, 0, 0, time.UTC), 9),
			closedSession("emp-1", time.Date(2025, time.January, 3, 9, 0, 0, 0, time.UTC), 9),
		},
	})

	require.Len(t, result.Payslips, 1)
	require.Empty(t, result.Skipped)

	slip := result.Payslips[0]
	assert.Equal(t, "18", slip.HoursWorked.String())
	assert.Equal(t, "2", slip.OvertimeHours.String())
	assert.Equal(t, "40", slip.OvertimePay.String())
	assert.Equal(t, "3040", slip.NetPay.String())
	assert.Equal(t, "MYR", slip.Currency)
}

func TestGenerateSkipsEmployeeWithoutSalaryConfig(t *testing.T) {
	period := twoDayPeriod()
	cfg := salary.Config{
		EmployeeID: "emp-paid",
		BaseSalary: decimal.NewFromInt(1000),
		HourlyRate: decimal.NewFromInt(10),
		Currency:   "USD",
	}

	result := Generate(GenerationInput{
		Period:  period,
		Policy:  defaultPolicy(),
		Configs: []salary.Config{cfg},
		Sessions: []attendance.Session{
			closedSession("emp-unpaid", time.Date(2025, time.January, 2, 9, 0, 0, 0, time.UTC), 8),
			closedSession("emp-unpaid", time.Date(2025, time.January, 3, 9, 0, 0, 0, time.UTC), 8),
		},
	})

	require.Len(t, result.Payslips, 1)
	assert.Equal(t, "emp-paid", result.Payslips[0].EmployeeID)
	assert.Equal(t, []string{"emp-unpaid"}, result.Skipped)
}

func TestGenerateIsDeterministic(t *testing.T) {
	period := twoDayPeriod()
	configs := []salary.Config{
		{EmployeeID: "emp-b", BaseSalary: decimal.NewFromInt(2000), HourlyRate: decimal.NewFromInt(15), Currency: "MYR"},
		{EmployeeID: "emp-a", BaseSalary: decimal.NewFromInt(1500), HourlyRate: decimal.NewFromInt(12), Currency: "MYR"},
	}
	sessions := []attendance.Session{
		closedSession("emp-b", time.Date(2025, time.January, 2, 8, 0, 0, 0, time.UTC), 10),
		closedSession("emp-a", time.Date(2025, time.January, 2, 8, 0, 0, 0, time.UTC), 9),
		closedSession("emp-a", time.Date(2025, time.January, 3, 8, 0, 0, 0, time.UTC), 9),
	}

	input := GenerationInput{Period: period, Policy: defaultPolicy(), Configs: configs, Sessions: sessions}
	first := Generate(input)
	second := Generate(input)

	require.Equal(t, first, second)
	require.Len(t, first.Payslips, 2)
	// Output order is fixed regardless of input order.
	assert.Equal(t, "emp-a", first.Payslips[0].EmployeeID)
	assert.Equal(t, "emp-b", first.Payslips[1].EmployeeID)
}

func TestHoursWorkedExcludesOpenAndOutOfRangeSessions(t *testing.T) {
	period := twoDayPeriod()
	start, end := period.Bounds()

	open := attendance.Session{
		EmployeeID: "emp-1",
		ClockIn:    time.Date(2025, time.January, 2, 9, 0, 0, 0, time.UTC),
	}
	before := closedSession("emp-1", time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC), 8)
	inside := closedSession("emp-1", time.Date(2025, time.January, 3, 9, 0, 0, 0, time.UTC), 8)
	// Clocks in during the period but runs past its end.
	straddling := closedSession("emp-1", time.Date(2025, time.January, 3, 20, 0, 0, 0, time.UTC), 8)

	hours := HoursWorked([]attendance.Session{open, before, inside, straddling}, start, end)
	assert.Equal(t, "8", hours.String())
}

func TestHoursWorkedRoundsPartialHours(t *testing.T) {
	period := twoDayPeriod()
	start, end := period.Bounds()

	in := time.Date(2025, time.January, 2, 9, 0, 0, 0, time.UTC)
	out := in.Add(7*time.Hour + 50*time.Minute)
	session := attendance.Session{EmployeeID: "emp-1", ClockIn: in, ClockOut: &out}

	hours := HoursWorked([]attendance.Session{session}, start, end)
	assert.Equal(t, "7.83", hours.String())
}

func TestExpectedHoursExcusesApprovedLeave(t *testing.T) {
	// Mon 2025-01-06 .. Fri 2025-01-10: five workdays.
	period := Period{
		StartDate: date(2025, time.January, 6),
		EndDate:   date(2025, time.January, 10),
	}
	policy := defaultPolicy()

	assert.Equal(t, "40", ExpectedHours(policy, period, nil).String())

	// Tue + Wed leave -> 3 workdays left.
	approved := []leave.Request{{
		StartDate: date(2025, time.January, 7),
		EndDate:   date(2025, time.January, 8),
	}}
	assert.Equal(t, "24", ExpectedHours(policy, period, approved).String())

	// Overlapping requests cover Tue..Thu once, not twice.
	overlapping := append(approved, leave.Request{
		StartDate: date(2025, time.January, 8),
		EndDate:   date(2025, time.January, 9),
	})
	assert.Equal(t, "16", ExpectedHours(policy, period, overlapping).String())

	// Leave spilling outside the period is clipped to it.
	spilling := []leave.Request{{
		StartDate: date(2025, time.January, 1),
		EndDate:   date(2025, time.January, 31),
	}}
	assert.Equal(t, "0", ExpectedHours(policy, period, spilling).String())
}

func TestLeaveOnNonWorkdaysDoesNotReduceBaseline(t *testing.T) {
	period := Period{
		StartDate: date(2025, time.January, 6),
		EndDate:   date(2025, time.January, 12),
	}
	// Sat + Sun leave on a Mon-Fri calendar changes nothing.
	approved := []leave.Request{{
		StartDate: date(2025, time.January, 11),
		EndDate:   date(2025, time.January, 12),
	}}
	assert.Equal(t, "40", ExpectedHours(defaultPolicy(), period, approved).String())
}

func TestBuildPayslipClampsOvertimeNotNetPay(t *testing.T) {
	period := twoDayPeriod()
	cfg := salary.Config{
		EmployeeID: "emp-1",
		BaseSalary: decimal.NewFromInt(500),
		HourlyRate: decimal.NewFromInt(30),
		Currency:   "IDR",
	}

	// Under the baseline: no overtime, base salary only.
	slip := BuildPayslip(period, cfg, decimal.NewFromInt(10), decimal.NewFromInt(16))
	assert.True(t, slip.OvertimeHours.IsZero())
	assert.True(t, slip.OvertimePay.IsZero())
	assert.Equal(t, "500", slip.NetPay.String())
}

func TestCountWorkdays(t *testing.T) {
	// 2025-01-06 is a Monday.
	cases := []struct {
		start, end time.Time
		workdays   org.Workdays
		want       int
	}{
		{date(2025, time.January, 6), date(2025, time.January, 12), org.WorkdaysMonToFri, 5},
		{date(2025, time.January, 6), date(2025, time.January, 12), org.WorkdaysMonToFri | org.Saturday, 6},
		{date(2025, time.January, 11), date(2025, time.January, 12), org.WorkdaysMonToFri, 0},
		{date(2025, time.January, 6), date(2025, time.January, 6), org.WorkdaysMonToFri, 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CountWorkdays(c.start, c.end, c.workdays))
	}
}

func TestPeriodBoundsCoverEndDateFully(t *testing.T) {
	period := twoDayPeriod()
	start, end := period.Bounds()

	assert.Equal(t, time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC), end)

	// A session ending at 23:00 on the last day still counts.
	in := time.Date(2025, time.January, 3, 14, 0, 0, 0, time.UTC)
	session := closedSession("emp-1", in, 9)
	assert.Equal(t, "9", HoursWorked([]attendance.Session{session}, start, end).String())
}
