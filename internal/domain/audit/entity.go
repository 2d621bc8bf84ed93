package audit

import "time"

// Event kinds recorded by payroll and payslip operations.
const (
	EventPayrollOK                = "PAYROLL_OK"
	EventPayrollFailed            = "PAYROLL_FAILED"
	EventPayrollSkippedApproved   = "PAYROLL_SKIPPED_ALREADY_APPROVED"
	EventPayrollSkippedDTRPending = "PAYROLL_SKIPPED_DTR_NOT_APPROVED"
	EventPayrollBatchDone         = "PAYROLL_BATCH_DONE"
	EventAttendanceApproved       = "DTR_APPROVED"
	EventAttendanceRejected       = "DTR_REJECTED"
	EventAttendanceApprovalDenied = "DTR_APPROVAL_DENIED_PAYROLL_LOCKED"
	EventPayslipViewPeriod        = "PAYSLIP_VIEW_PERIOD"
	EventPayslipViewLatest        = "PAYSLIP_VIEW_LATEST"
	EventPayslipViewHistory       = "PAYSLIP_VIEW_HISTORY"
	EventLeaveCreditsSynced       = "LEAVE_CREDITS_SYNCED"
)

type Entry struct {
	ID        string    `json:"id"`
	Actor     string    `json:"actor"`
	EventKind string    `json:"event_kind"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}
