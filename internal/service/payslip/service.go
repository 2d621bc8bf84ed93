package payslip

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nimbushr/payroll-backend-go/internal/domain/audit"
	"github.com/nimbushr/payroll-backend-go/internal/domain/payslip"
	"github.com/nimbushr/payroll-backend-go/internal/domain/period"
	auditsvc "github.com/nimbushr/payroll-backend-go/internal/service/audit"
)

type PayslipServiceImpl struct {
	payslipRepo payslip.Repository
	auditor     *auditsvc.Recorder
}

func NewPayslipService(payslipRepo payslip.Repository, auditor *auditsvc.Recorder) payslip.Service {
	return &PayslipServiceImpl{payslipRepo: payslipRepo, auditor: auditor}
}

func (s *PayslipServiceImpl) ViewForPeriod(ctx context.Context, viewerID, employeeID int, p period.PayPeriod) (*payslip.Payslip, error) {
	slip, err := s.payslipRepo.FindByEmployeeAndPeriod(ctx, employeeID, p)
	if err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, strconv.Itoa(viewerID), audit.EventPayslipViewPeriod,
		fmt.Sprintf("employee %d period %s", employeeID, p.Key()))
	return slip, nil
}

func (s *PayslipServiceImpl) ViewLatest(ctx context.Context, viewerID, employeeID int) (*payslip.Payslip, error) {
	slip, err := s.payslipRepo.FindLatestByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, strconv.Itoa(viewerID), audit.EventPayslipViewLatest,
		fmt.Sprintf("employee %d transaction %s", employeeID, slip.TransactionID))
	return slip, nil
}

func (s *PayslipServiceImpl) History(ctx context.Context, viewerID, employeeID int) ([]*payslip.Payslip, error) {
	slips, err := s.payslipRepo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, strconv.Itoa(viewerID), audit.EventPayslipViewHistory,
		fmt.Sprintf("employee %d: %d payslips", employeeID, len(slips)))
	return slips, nil
}
