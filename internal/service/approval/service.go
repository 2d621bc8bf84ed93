package approval

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nimbushr/payroll-backend-go/internal/domain/approval"
	"github.com/nimbushr/payroll-backend-go/internal/domain/audit"
	"github.com/nimbushr/payroll-backend-go/internal/domain/payslip"
	"github.com/nimbushr/payroll-backend-go/internal/domain/period"
	auditsvc "github.com/nimbushr/payroll-backend-go/internal/service/audit"
)

type ApprovalServiceImpl struct {
	approvalRepo approval.Repository
	auditor      *auditsvc.Recorder
}

func NewApprovalService(approvalRepo approval.Repository, auditor *auditsvc.Recorder) approval.Service {
	return &ApprovalServiceImpl{approvalRepo: approvalRepo, auditor: auditor}
}

func (s *ApprovalServiceImpl) ApproveAttendance(ctx context.Context, employeeID int, p period.PayPeriod, approverID int) (bool, error) {
	return s.setAttendance(ctx, employeeID, p, approverID, approval.StatusApproved, audit.EventAttendanceApproved)
}

func (s *ApprovalServiceImpl) RejectAttendance(ctx context.Context, employeeID int, p period.PayPeriod, approverID int) (bool, error) {
	return s.setAttendance(ctx, employeeID, p, approverID, approval.StatusRejected, audit.EventAttendanceRejected)
}

func (s *ApprovalServiceImpl) setAttendance(ctx context.Context, employeeID int, p period.PayPeriod, approverID int, status approval.Status, eventKind string) (bool, error) {
	actor := strconv.Itoa(approverID)
	detail := fmt.Sprintf("employee %d period %s", employeeID, p.Key())

	// Released payroll freezes the attendance dimension; changing it
	// would desynchronize the tracker from the ledger.
	payrollStatus, err := s.approvalRepo.GetPayrollStatus(ctx, employeeID, p)
	if err != nil {
		return false, err
	}
	if payrollStatus == approval.StatusApproved {
		s.auditor.Record(ctx, actor, audit.EventAttendanceApprovalDenied, detail)
		return false, nil
	}

	transactionID := payslip.TransactionID(employeeID, p)
	if err := s.approvalRepo.UpsertAttendanceApproval(ctx, employeeID, p, transactionID, status, approverID); err != nil {
		return false, err
	}

	s.auditor.Record(ctx, actor, eventKind, detail)
	return true, nil
}

func (s *ApprovalServiceImpl) GetRecord(ctx context.Context, employeeID int, p period.PayPeriod) (*approval.Record, error) {
	return s.approvalRepo.Get(ctx, employeeID, p)
}

func (s *ApprovalServiceImpl) ListByPeriod(ctx context.Context, p period.PayPeriod) ([]*approval.Record, error) {
	return s.approvalRepo.FindByPeriod(ctx, p)
}
