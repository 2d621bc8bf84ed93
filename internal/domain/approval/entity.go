package approval

import (
	"time"

	"github.com/nimbushr/payroll-backend-go/internal/domain/period"
)

// Status is one dimension of the approval tracker.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// ParseStatus maps stored text to a Status. Unknown or empty values read
// as PENDING, so a corrupt cell can never unlock downstream processing.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusApproved:
		return StatusApproved
	case StatusRejected:
		return StatusRejected
	default:
		return StatusPending
	}
}

// Record tracks the two independent approval dimensions for one
// employee-period: attendance sign-off and payroll release.
type Record struct {
	EmployeeID           int        `json:"employee_id"`
	PeriodStart          time.Time  `json:"period_start"`
	PeriodEnd            time.Time  `json:"period_end"`
	TransactionID        string     `json:"transaction_id"`
	AttendanceStatus     Status     `json:"attendance_status"`
	AttendanceApprovedBy *int       `json:"attendance_approved_by"`
	AttendanceApprovedAt *time.Time `json:"attendance_approved_at"`
	PayrollStatus        Status     `json:"payroll_status"`
	PayrollApprovedBy    *int       `json:"payroll_approved_by"`
	PayrollApprovedAt    *time.Time `json:"payroll_approved_at"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func (r *Record) Period() period.PayPeriod {
	return period.PayPeriod{StartDate: r.PeriodStart, EndDate: r.PeriodEnd}
}
