package payroll

import (
	"github.com/nimbushr/payroll-backend-go/internal/domain/payslip"
)

// Skip and failure messages surfaced in run results.
const (
	MsgAlreadyApproved       = "payroll already approved for this period"
	MsgAttendanceNotApproved = "attendance not approved for this period"
	MsgDuplicateTransaction  = "payslip already exists for this transaction id"
)

// RunResult reports the outcome of processing one employee. A batch run
// yields one result per employee regardless of individual failures.
type RunResult struct {
	EmployeeID    int              `json:"employee_id"`
	TransactionID string           `json:"transaction_id"`
	Success       bool             `json:"success"`
	Message       string           `json:"message"`
	Payslip       *payslip.Payslip `json:"payslip,omitempty"`
}

// BatchSummary aggregates a period-wide run.
type BatchSummary struct {
	Total     int          `json:"total"`
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
	Results   []*RunResult `json:"results"`
}
