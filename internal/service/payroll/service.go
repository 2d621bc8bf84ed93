package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/nimbushr/payroll-backend-go/internal/domain/approval"
	"github.com/nimbushr/payroll-backend-go/internal/domain/audit"
	"github.com/nimbushr/payroll-backend-go/internal/domain/employee"
	"github.com/nimbushr/payroll-backend-go/internal/domain/payroll"
	"github.com/nimbushr/payroll-backend-go/internal/domain/payslip"
	"github.com/nimbushr/payroll-backend-go/internal/domain/period"
	auditsvc "github.com/nimbushr/payroll-backend-go/internal/service/audit"
)

// PeriodTxRunner executes fn atomically for one employee-period. The
// production implementation wraps a database transaction holding an
// advisory lock, so two concurrent runs for the same key serialize and
// the loser observes the winner's committed state.
type PeriodTxRunner interface {
	RunInPeriodScope(ctx context.Context, employeeID int, p period.PayPeriod, fn func(ctx context.Context) error) error
}

type PayrollServiceImpl struct {
	txRunner     PeriodTxRunner
	engine       *Engine
	employeeRepo employee.Repository
	approvalRepo approval.Repository
	payslipRepo  payslip.Repository
	auditor      *auditsvc.Recorder
	logger       *slog.Logger
}

func NewPayrollService(
	txRunner PeriodTxRunner,
	engine *Engine,
	employeeRepo employee.Repository,
	approvalRepo approval.Repository,
	payslipRepo payslip.Repository,
	auditor *auditsvc.Recorder,
	logger *slog.Logger,
) payroll.Service {
	return &PayrollServiceImpl{
		txRunner:     txRunner,
		engine:       engine,
		employeeRepo: employeeRepo,
		approvalRepo: approvalRepo,
		payslipRepo:  payslipRepo,
		auditor:      auditor,
		logger:       logger,
	}
}

func (s *PayrollServiceImpl) ResolvePeriod(date time.Time) period.PayPeriod {
	return period.FromDateSemiMonthly(date)
}

func (s *PayrollServiceImpl) ProcessPayrollForEmployee(ctx context.Context, employeeID int, p period.PayPeriod, processedBy int) (*payroll.RunResult, error) {
	result, err := s.processOne(ctx, employeeID, p, processedBy)

	// Audit entries are written outside the transaction so a rolled-back
	// run still leaves a trace.
	actor := strconv.Itoa(processedBy)
	detail := fmt.Sprintf("employee %d period %s", employeeID, p.Key())
	switch {
	case err != nil:
		s.auditor.Record(ctx, actor, audit.EventPayrollFailed, fmt.Sprintf("%s: %v", detail, err))
		return nil, err
	case result.Success:
		s.auditor.Record(ctx, actor, audit.EventPayrollOK, detail+": generated "+result.TransactionID)
	case result.Message == payroll.MsgAlreadyApproved:
		s.auditor.Record(ctx, actor, audit.EventPayrollSkippedApproved, detail)
	case result.Message == payroll.MsgAttendanceNotApproved:
		s.auditor.Record(ctx, actor, audit.EventPayrollSkippedDTRPending, detail)
	default:
		s.auditor.Record(ctx, actor, audit.EventPayrollFailed, detail+": "+result.Message)
	}

	return result, nil
}

func (s *PayrollServiceImpl) processOne(ctx context.Context, employeeID int, p period.PayPeriod, processedBy int) (*payroll.RunResult, error) {
	transactionID := payslip.TransactionID(employeeID, p)
	result := &payroll.RunResult{
		EmployeeID:    employeeID,
		TransactionID: transactionID,
	}

	err := s.txRunner.RunInPeriodScope(ctx, employeeID, p, func(ctx context.Context) error {
		if err := s.approvalRepo.EnsureRowExists(ctx, employeeID, p, transactionID); err != nil {
			return err
		}

		// Approved payroll is terminal: a rerun must not touch the
		// ledger or the tracker again.
		payrollStatus, err := s.approvalRepo.GetPayrollStatus(ctx, employeeID, p)
		if err != nil {
			return err
		}
		if payrollStatus == approval.StatusApproved {
			result.Message = payroll.MsgAlreadyApproved
			return nil
		}

		attendanceStatus, err := s.approvalRepo.GetAttendanceStatus(ctx, employeeID, p)
		if err != nil {
			return err
		}
		if attendanceStatus != approval.StatusApproved {
			result.Message = payroll.MsgAttendanceNotApproved
			return nil
		}

		slip, err := s.engine.ComputePayslip(ctx, employeeID, p, processedBy)
		if err != nil {
			return err
		}

		if err := s.payslipRepo.Save(ctx, slip); err != nil {
			if errors.Is(err, payslip.ErrDuplicateTransaction) {
				result.Message = payroll.MsgDuplicateTransaction
				return nil
			}
			return err
		}

		if err := s.approvalRepo.UpsertPayrollApproval(ctx, employeeID, p, transactionID, approval.StatusApproved, processedBy); err != nil {
			return err
		}

		result.Success = true
		result.Payslip = slip
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *PayrollServiceImpl) ProcessPayrollForPeriod(ctx context.Context, p period.PayPeriod, processedBy int) (*payroll.BatchSummary, error) {
	employees, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	summary := &payroll.BatchSummary{}
	for _, emp := range employees {
		// Cancellation stops the batch between employees, never mid-run.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := s.ProcessPayrollForEmployee(ctx, emp.EmployeeID, p, processedBy)
		if err != nil {
			s.logger.Error("payroll run failed",
				"employee_id", emp.EmployeeID, "period", p.Key(), "error", err)
			result = &payroll.RunResult{
				EmployeeID:    emp.EmployeeID,
				TransactionID: payslip.TransactionID(emp.EmployeeID, p),
				Message:       err.Error(),
			}
		}

		summary.Results = append(summary.Results, result)
		summary.Total++
		if result.Success {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}

	s.auditor.Record(ctx, strconv.Itoa(processedBy), audit.EventPayrollBatchDone,
		fmt.Sprintf("period %s: %d processed, %d succeeded, %d failed",
			p.Key(), summary.Total, summary.Succeeded, summary.Failed))
	s.logger.Info("payroll batch done",
		"period", p.Key(), "total", summary.Total,
		"succeeded", summary.Succeeded, "failed", summary.Failed)

	return summary, nil
}
