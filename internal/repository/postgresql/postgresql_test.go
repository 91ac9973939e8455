package postgresql

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffsync/timeclock-backend-go/internal/domain/attendance"
	"github.com/staffsync/timeclock-backend-go/internal/domain/leave"
	"github.com/staffsync/timeclock-backend-go/internal/domain/org"
	"github.com/staffsync/timeclock-backend-go/internal/domain/payroll"
	"github.com/staffsync/timeclock-backend-go/internal/domain/salary"
	"github.com/staffsync/timeclock-backend-go/internal/pkg/database"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
)

// testInit connects to the test database, running migrations first. Tests
// that need a database are skipped when TEST_DATABASE_URL is not set.
func testInit(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	testDBOnce.Do(func() {
		if err := database.Migrate(dsn); err != nil {
			panic("Failed to migrate test database: " + err.Error())
		}
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
	})

	return testDB
}

func createTestOrg(t *testing.T, ctx context.Context, db *database.DB) org.Organization {
	t.Helper()

	repo := NewOrganizationRepository(db)
	created, err := repo.Create(ctx, org.Organization{
		Name:               fmt.Sprintf("Test Org %d", time.Now().UnixNano()),
		StandardDailyHours: decimal.NewFromInt(8),
		Workdays:           org.WorkdaysMonToFri,
	})
	require.NoError(t, err)
	return created
}

func createTestEmployee(t *testing.T, ctx context.Context, db *database.DB, orgID string) string {
	t.Helper()

	var id string
	err := db.QueryRow(ctx, `
		INSERT INTO employees (id, org_id, full_name)
		VALUES ($1, $2, 'Test Employee')
		RETURNING id
	`, uuid.NewString(), orgID).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestClockInTwiceFails(t *testing.T) {
	db := testInit(t)
	ctx := context.Background()

	organization := createTestOrg(t, ctx, db)
	employeeID := createTestEmployee(t, ctx, db, organization.ID)
	repo := NewSessionRepository(db)

	_, err := repo.CreateOpen(ctx, attendance.Session{
		OrgID:      organization.ID,
		EmployeeID: employeeID,
		ClockIn:    time.Now().UTC(),
	})
	require.NoError(t, err)

	_, err = repo.CreateOpen(ctx, attendance.Session{
		OrgID:      organization.ID,
		EmployeeID: employeeID,
		ClockIn:    time.Now().UTC(),
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestConcurrentClockInOneWinner(t *testing.T) {
	db := testInit(t)
	ctx := context.Background()

	organization := createTestOrg(t, ctx, db)
	employeeID := createTestEmployee(t, ctx, db, organization.ID)
	repo := NewSessionRepository(db)

	const workers = 10
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreateOpen(ctx, attendance.Session{
				OrgID:      organization.ID,
				EmployeeID: employeeID,
				ClockIn:    time.Now().UTC(),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	successes := 0
	conflicts := 0
	for err := range errs {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn):
			conflicts++
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)
}

func TestClockOutWithoutOpenSession(t *testing.T) {
	db := testInit(t)
	ctx := context.Background()

	organization := createTestOrg(t, ctx, db)
	employeeID := createTestEmployee(t, ctx, db, organization.ID)
	repo := NewSessionRepository(db)

	_, err := repo.CloseOpen(ctx, organization.ID, employeeID, time.Now().UTC())
	assert.ErrorIs(t, err, attendance.ErrNoOpenSession)
}

func TestClockOutClosesAndAllowsNewSession(t *testing.T) {
	db := testInit(t)
	ctx := context.Background()

	organization := createTestOrg(t, ctx, db)
	employeeID := createTestEmployee(t, ctx, db, organization.ID)
	repo := NewSessionRepository(db)

	_, err := repo.CreateOpen(ctx, attendance.Session{
		OrgID:      organization.ID,
		EmployeeID: employeeID,
		ClockIn:    time.Now().UTC().Add(-time.Hour),
	})
	require.NoError(t, err)

	closed, err := repo.CloseOpen(ctx, organization.ID, employeeID, time.Now().UTC())
	require.NoError(t, err)
	assert.NotNil(t, closed.ClockOut)

	open, err := repo.GetOpen(ctx, organization.ID, employeeID)
	require.NoError(t, err)
	assert.Nil(t, open)

	_, err = repo.CreateOpen(ctx, attendance.Session{
		OrgID:      organization.ID,
		EmployeeID: employeeID,
		ClockIn:    time.Now().UTC(),
	})
	assert.NoError(t, err)
}

func TestCloseStaleLeavesFreshSessionsAlone(t *testing.T) {
	db := testInit(t)
	ctx := context.Background()

	organization := createTestOrg(t, ctx, db)
	staleEmployee := createTestEmployee(t, ctx, db, organization.ID)
	freshEmployee := createTestEmployee(t, ctx, db, organization.ID)
	repo := NewSessionRepository(db)

	now := time.Now().UTC()
	_, err := repo.CreateOpen(ctx, attendance.Session{
		OrgID:      organization.ID,
		EmployeeID: staleEmployee,
		ClockIn:    now.Add(-48 * time.Hour),
	})
	require.NoError(t, err)
	_, err = repo.CreateOpen(ctx, attendance.Session{
		OrgID:      organization.ID,
		EmployeeID: freshEmployee,
		ClockIn:    now.Add(-time.Hour),
	})
	require.NoError(t, err)

	closed, err := repo.CloseStale(ctx, 24*time.Hour, now)
	require.NoError(t, err)

	closedEmployees := make(map[string]bool)
	for _, s := range closed {
		closedEmployees[s.EmployeeID] = true
	}
	assert.True(t, closedEmployees[staleEmployee])
	assert.False(t, closedEmployees[freshEmployee])

	open, err := repo.GetOpen(ctx, organization.ID, freshEmployee)
	require.NoError(t, err)
	assert.NotNil(t, open)
}

func TestReviewAppliesExactlyOnce(t *testing.T) {
	db := testInit(t)
	ctx := context.Background()

	organization := createTestOrg(t, ctx, db)
	employeeID := createTestEmployee(t, ctx, db, organization.ID)
	adminID := createTestEmployee(t, ctx, db, organization.ID)

	typeRepo := NewLeaveTypeRepository(db)
	requestRepo := NewLeaveRequestRepository(db)

	leaveType, err := typeRepo.Create(ctx, leave.LeaveType{
		OrgID: organization.ID,
		Name:  fmt.Sprintf("annual-%d", time.Now().UnixNano()),
	})
	require.NoError(t, err)

	request, err := requestRepo.Create(ctx, leave.Request{
		OrgID:         organization.ID,
		EmployeeID:    employeeID,
		LeaveTypeID:   &leaveType.ID,
		LeaveTypeName: leaveType.Name,
		StartDate:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		Reason:        "vacation",
		Status:        leave.RequestStatusPending,
	})
	require.NoError(t, err)

	reviewed, err := requestRepo.Review(ctx, organization.ID, leave.ReviewRequest{
		ID:     request.ID,
		Status: string(leave.RequestStatusApproved),
	}, adminID, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, leave.RequestStatusApproved, reviewed.Status)
	assert.NotNil(t, reviewed.ReviewedAt)

	_, err = requestRepo.Review(ctx, organization.ID, leave.ReviewRequest{
		ID:     request.ID,
		Status: string(leave.RequestStatusRejected),
	}, adminID, time.Now().UTC())
	assert.ErrorIs(t, err, leave.ErrAlreadyReviewed)

	// Losing review must not have overwritten the outcome.
	after, err := requestRepo.GetByID(ctx, request.ID, organization.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.RequestStatusApproved, after.Status)
}

func TestDeleteLeaveTypeKeepsRequestSnapshot(t *testing.T) {
	db := testInit(t)
	ctx := context.Background()

	organization := createTestOrg(t, ctx, db)
	employeeID := createTestEmployee(t, ctx, db, organization.ID)

	typeRepo := NewLeaveTypeRepository(db)
	requestRepo := NewLeaveRequestRepository(db)

	leaveType, err := typeRepo.Create(ctx, leave.LeaveType{
		OrgID: organization.ID,
		Name:  fmt.Sprintf("sick-%d", time.Now().UnixNano()),
	})
	require.NoError(t, err)

	request, err := requestRepo.Create(ctx, leave.Request{
		OrgID:         organization.ID,
		EmployeeID:    employeeID,
		LeaveTypeID:   &leaveType.ID,
		LeaveTypeName: leaveType.Name,
		StartDate:     time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC),
		Status:        leave.RequestStatusPending,
	})
	require.NoError(t, err)

	require.NoError(t, typeRepo.Delete(ctx, leaveType.ID, organization.ID))

	after, err := requestRepo.GetByID(ctx, request.ID, organization.ID)
	require.NoError(t, err)
	assert.Nil(t, after.LeaveTypeID)
	assert.Equal(t, leaveType.Name, after.LeaveTypeName)
}

func TestSalaryUpsertOverwrites(t *testing.T) {
	db := testInit(t)
	ctx := context.Background()

	organization := createTestOrg(t, ctx, db)
	employeeID := createTestEmployee(t, ctx, db, organization.ID)
	repo := NewSalaryConfigRepository(db)

	first, err := repo.Upsert(ctx, salary.Config{
		OrgID:      organization.ID,
		EmployeeID: employeeID,
		BaseSalary: decimal.NewFromInt(3000),
		HourlyRate: decimal.NewFromInt(20),
		Currency:   "MYR",
	})
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, salary.Config{
		OrgID:      organization.ID,
		EmployeeID: employeeID,
		BaseSalary: decimal.NewFromInt(3500),
		HourlyRate: decimal.NewFromInt(25),
		Currency:   "MYR",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	got, err := repo.GetByEmployee(ctx, organization.ID, employeeID)
	require.NoError(t, err)
	assert.True(t, got.BaseSalary.Equal(decimal.NewFromInt(3500)))
	assert.True(t, got.HourlyRate.Equal(decimal.NewFromInt(25)))
}

func TestGetSalaryConfigMissing(t *testing.T) {
	db := testInit(t)
	ctx := context.Background()

	organization := createTestOrg(t, ctx, db)
	repo := NewSalaryConfigRepository(db)

	_, err := repo.GetByEmployee(ctx, organization.ID, uuid.NewString())
	assert.ErrorIs(t, err, salary.ErrNoSalaryConfigured)
}

func TestCreatePeriodOverlapRejected(t *testing.T) {
	db := testInit(t)
	ctx := context.Background()

	organization := createTestOrg(t, ctx, db)
	repo := NewPayrollRepository(db)

	_, err := repo.CreatePeriod(ctx, payroll.Period{
		OrgID:     organization.ID,
		Name:      "March 2026",
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = repo.CreatePeriod(ctx, payroll.Period{
		OrgID:     organization.ID,
		Name:      "Late March 2026",
		StartDate: time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, payroll.ErrPeriodOverlaps)
}

func TestCreatePeriodOverlapScopedToOrg(t *testing.T) {
	db := testInit(t)
	ctx := context.Background()

	orgA := createTestOrg(t, ctx, db)
	orgB := createTestOrg(t, ctx, db)
	repo := NewPayrollRepository(db)

	_, err := repo.CreatePeriod(ctx, payroll.Period{
		OrgID:     orgA.ID,
		Name:      "May 2026",
		StartDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = repo.CreatePeriod(ctx, payroll.Period{
		OrgID:     orgB.ID,
		Name:      "May 2026",
		StartDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
}

func TestReplacePayslipsIsWholesale(t *testing.T) {
	db := testInit(t)
	ctx := context.Background()

	organization := createTestOrg(t, ctx, db)
	employeeA := createTestEmployee(t, ctx, db, organization.ID)
	employeeB := createTestEmployee(t, ctx, db, organization.ID)
	repo := NewPayrollRepository(db)

	period, err := repo.CreatePeriod(ctx, payroll.Period{
		OrgID:     organization.ID,
		Name:      "June 2026",
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	slip := func(employeeID string) payroll.Payslip {
		return payroll.Payslip{
			EmployeeID:    employeeID,
			Currency:      "MYR",
			BaseSalary:    decimal.NewFromInt(3000),
			HoursWorked:   decimal.NewFromInt(160),
			OvertimeHours: decimal.Zero,
			OvertimePay:   decimal.Zero,
			Bonuses:       decimal.Zero,
			Deductions:    decimal.Zero,
			NetPay:        decimal.NewFromInt(3000),
		}
	}

	_, err = repo.ReplacePayslips(ctx, period.ID, []payroll.Payslip{slip(employeeA), slip(employeeB)})
	require.NoError(t, err)

	count, err := repo.CountPayslips(ctx, period.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	_, err = repo.ReplacePayslips(ctx, period.ID, []payroll.Payslip{slip(employeeA)})
	require.NoError(t, err)

	count, err = repo.CountPayslips(ctx, period.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestDeletePeriodCascadesPayslips(t *testing.T) {
	db := testInit(t)
	ctx := context.Background()

	organization := createTestOrg(t, ctx, db)
	employeeID := createTestEmployee(t, ctx, db, organization.ID)
	repo := NewPayrollRepository(db)

	period, err := repo.CreatePeriod(ctx, payroll.Period{
		OrgID:     organization.ID,
		Name:      "July 2026",
		StartDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = repo.ReplacePayslips(ctx, period.ID, []payroll.Payslip{{
		EmployeeID:    employeeID,
		Currency:      "MYR",
		BaseSalary:    decimal.NewFromInt(3000),
		HoursWorked:   decimal.Zero,
		OvertimeHours: decimal.Zero,
		OvertimePay:   decimal.Zero,
		Bonuses:       decimal.Zero,
		Deductions:    decimal.Zero,
		NetPay:        decimal.NewFromInt(3000),
	}})
	require.NoError(t, err)

	require.NoError(t, repo.DeletePeriod(ctx, period.ID, organization.ID))

	count, err := repo.CountPayslips(ctx, period.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	_, err = repo.GetPeriod(ctx, period.ID, organization.ID)
	assert.ErrorIs(t, err, payroll.ErrPeriodNotFound)
}

func TestLockPeriodContention(t *testing.T) {
	db := testInit(t)
	ctx := context.Background()

	organization := createTestOrg(t, ctx, db)
	repo := NewPayrollRepository(db)

	period, err := repo.CreatePeriod(ctx, payroll.Period{
		OrgID:     organization.ID,
		Name:      "August 2026",
		StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	locked := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- WithTransaction(ctx, db, func(txCtx context.Context) error {
			if _, err := repo.LockPeriod(txCtx, period.ID, organization.ID); err != nil {
				return err
			}
			close(locked)
			<-release
			return nil
		})
	}()

	<-locked
	err = WithTransaction(ctx, db, func(txCtx context.Context) error {
		_, err := repo.LockPeriod(txCtx, period.ID, organization.ID)
		return err
	})
	assert.ErrorIs(t, err, payroll.ErrGenerationInProgress)

	close(release)
	require.NoError(t, <-done)
}

func TestOrgScopingOnReads(t *testing.T) {
	db := testInit(t)
	ctx := context.Background()

	orgA := createTestOrg(t, ctx, db)
	orgB := createTestOrg(t, ctx, db)
	employeeID := createTestEmployee(t, ctx, db, orgA.ID)

	sessionRepo := NewSessionRepository(db)
	_, err := sessionRepo.CreateOpen(ctx, attendance.Session{
		OrgID:      orgA.ID,
		EmployeeID: employeeID,
		ClockIn:    time.Now().UTC(),
	})
	require.NoError(t, err)

	open, err := sessionRepo.GetOpen(ctx, orgB.ID, employeeID)
	require.NoError(t, err)
	assert.Nil(t, open)

	sessions, _, err := sessionRepo.List(ctx, orgB.ID, attendance.SessionFilter{EmployeeID: &employeeID})
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
