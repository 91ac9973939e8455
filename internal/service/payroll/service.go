package payroll

import (
	"context"
	"time"

	"github.com/staffsync/timeclock-backend-go/internal/domain/attendance"
	"github.com/staffsync/timeclock-backend-go/internal/domain/leave"
	"github.com/staffsync/timeclock-backend-go/internal/domain/org"
	"github.com/staffsync/timeclock-backend-go/internal/domain/payroll"
	"github.com/staffsync/timeclock-backend-go/internal/domain/salary"
	"github.com/staffsync/timeclock-backend-go/internal/pkg/database"
	"github.com/staffsync/timeclock-backend-go/internal/pkg/tenant"
	"github.com/staffsync/timeclock-backend-go/internal/repository/postgresql"
)

type service struct {
	db          *database.DB
	periodRepo  payroll.PeriodRepository
	sessionRepo attendance.SessionRepository
	requestRepo leave.RequestRepository
	configRepo  salary.ConfigRepository
	orgRepo     org.OrganizationRepository
}

func NewService(
	db *database.DB,
	periodRepo payroll.PeriodRepository,
	sessionRepo attendance.SessionRepository,
	requestRepo leave.RequestRepository,
	configRepo salary.ConfigRepository,
	orgRepo org.OrganizationRepository,
) payroll.PayrollService {
	return &service{
		db:          db,
		periodRepo:  periodRepo,
		sessionRepo: sessionRepo,
		requestRepo: requestRepo,
		configRepo:  configRepo,
		orgRepo:     orgRepo,
	}
}

// CreatePeriod implements payroll.PayrollService.
func (s *service) CreatePeriod(ctx context.Context, req payroll.CreatePeriodRequest) (payroll.PeriodResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return payroll.PeriodResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	period, err := s.periodRepo.CreatePeriod(ctx, payroll.Period{
		OrgID:     identity.OrgID,
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    payroll.PeriodStatusOpen,
	})
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	return payroll.ToPeriodResponse(period), nil
}

// ListPeriods implements payroll.PayrollService.
func (s *service) ListPeriods(ctx context.Context) ([]payroll.PeriodResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	periods, err := s.periodRepo.ListPeriods(ctx, identity.OrgID)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		result = append(result, payroll.ToPeriodResponse(p))
	}

	return result, nil
}

// GetPeriod implements payroll.PayrollService.
func (s *service) GetPeriod(ctx context.Context, id string) (payroll.PeriodResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	period, err := s.periodRepo.GetPeriod(ctx, id, identity.OrgID)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	return payroll.ToPeriodResponse(period), nil
}

// Generate implements payroll.PayrollService.
//
// The whole run happens inside one transaction holding the period row
// lock, so concurrent Generate calls on the same period serialize and
// a reader never observes a half-replaced payslip set.
func (s *service) Generate(ctx context.Context, periodID string) (payroll.GenerateResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return payroll.GenerateResponse{}, err
	}

	var resp payroll.GenerateResponse
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		period, err := s.periodRepo.LockPeriod(txCtx, periodID, identity.OrgID)
		if err != nil {
			return err
		}
		if period.Status == payroll.PeriodStatusFinalized {
			return payroll.ErrPeriodFinalized
		}

		organization, err := s.orgRepo.GetByID(txCtx, identity.OrgID)
		if err != nil {
			return err
		}

		start, end := period.Bounds()
		sessions, err := s.sessionRepo.ListAllInRange(txCtx, identity.OrgID, start, end)
		if err != nil {
			return err
		}
		approved, err := s.requestRepo.ListApprovedInRange(txCtx, identity.OrgID, period.StartDate, period.EndDate)
		if err != nil {
			return err
		}
		configs, err := s.configRepo.ListByOrgID(txCtx, identity.OrgID)
		if err != nil {
			return err
		}

		result := payroll.Generate(payroll.GenerationInput{
			Period: period,
			Policy: payroll.WorkPolicy{
				StandardDailyHours: organization.StandardDailyHours,
				Workdays:           organization.Workdays,
			},
			Configs:       configs,
			Sessions:      sessions,
			ApprovedLeave: approved,
		})

		payslips, err := s.periodRepo.ReplacePayslips(txCtx, period.ID, result.Payslips)
		if err != nil {
			return err
		}

		if err := s.periodRepo.SetPeriodStatus(txCtx, period.ID, identity.OrgID, payroll.PeriodStatusGenerated); err != nil {
			return err
		}
		period.Status = payroll.PeriodStatusGenerated

		resp = payroll.GenerateResponse{
			Period:             payroll.ToPeriodResponse(period),
			GeneratedCount:     len(payslips),
			SkippedCount:       len(result.Skipped),
			SkippedEmployeeIDs: result.Skipped,
		}
		return nil
	})
	if err != nil {
		return payroll.GenerateResponse{}, err
	}

	return resp, nil
}

// Finalize implements payroll.PayrollService.
func (s *service) Finalize(ctx context.Context, periodID string) (payroll.PeriodResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	var resp payroll.PeriodResponse
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		period, err := s.periodRepo.LockPeriod(txCtx, periodID, identity.OrgID)
		if err != nil {
			return err
		}
		if period.Status == payroll.PeriodStatusFinalized {
			return payroll.ErrPeriodFinalized
		}
		if period.Status != payroll.PeriodStatusGenerated {
			return payroll.ErrNoPayslipsGenerated
		}

		count, err := s.periodRepo.CountPayslips(txCtx, period.ID)
		if err != nil {
			return err
		}
		if count == 0 {
			return payroll.ErrNoPayslipsGenerated
		}

		if err := s.periodRepo.SetPeriodStatus(txCtx, period.ID, identity.OrgID, payroll.PeriodStatusFinalized); err != nil {
			return err
		}
		period.Status = payroll.PeriodStatusFinalized

		resp = payroll.ToPeriodResponse(period)
		return nil
	})
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	return resp, nil
}

// DeletePeriod implements payroll.PayrollService.
func (s *service) DeletePeriod(ctx context.Context, periodID string) error {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		period, err := s.periodRepo.LockPeriod(txCtx, periodID, identity.OrgID)
		if err != nil {
			return err
		}
		if period.Status == payroll.PeriodStatusFinalized {
			return payroll.ErrPeriodFinalized
		}

		return s.periodRepo.DeletePeriod(txCtx, period.ID, identity.OrgID)
	})
}

// ListPayslips implements payroll.PayrollService.
func (s *service) ListPayslips(ctx context.Context, periodID string) ([]payroll.PayslipResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.periodRepo.GetPeriod(ctx, periodID, identity.OrgID); err != nil {
		return nil, err
	}

	payslips, err := s.periodRepo.ListPayslips(ctx, periodID, identity.OrgID)
	if err != nil {
		return nil, err
	}

	return payroll.ToPayslipResponses(payslips), nil
}

// GetMyPayslips implements payroll.PayrollService.
func (s *service) GetMyPayslips(ctx context.Context) ([]payroll.PayslipResponse, error) {
	identity, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	payslips, err := s.periodRepo.ListPayslipsByEmployee(ctx, identity.OrgID, identity.EmployeeID)
	if err != nil {
		return nil, err
	}

	return payroll.ToPayslipResponses(payslips), nil
}
