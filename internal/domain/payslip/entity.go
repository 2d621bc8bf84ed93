package payslip

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nimbushr/payroll-backend-go/internal/domain/period"
)

// Payslip is one computed payroll result for an employee-period. Rows are
// append-only; a transaction id can be written at most once.
type Payslip struct {
	TransactionID     string          `json:"transaction_id"`
	EmployeeID        int             `json:"employee_id"`
	LastName          string          `json:"last_name"`
	FirstName         string          `json:"first_name"`
	PeriodStart       time.Time       `json:"period_start"`
	PeriodEnd         time.Time       `json:"period_end"`
	BasicSalary       decimal.Decimal `json:"basic_salary"`
	RiceAllowance     decimal.Decimal `json:"rice_allowance"`
	PhoneAllowance    decimal.Decimal `json:"phone_allowance"`
	ClothingAllowance decimal.Decimal `json:"clothing_allowance"`
	HourlyRate        decimal.Decimal `json:"hourly_rate"`
	TotalHoursWorked  float64         `json:"total_hours_worked"`
	OvertimePay       decimal.Decimal `json:"overtime_pay"`
	GrossIncome       decimal.Decimal `json:"gross_income"`
	LateDeduction     decimal.Decimal `json:"late_deduction"`
	SSS               decimal.Decimal `json:"sss"`
	PhilHealth        decimal.Decimal `json:"philhealth"`
	PagIbig           decimal.Decimal `json:"pagibig"`
	WithholdingTax    decimal.Decimal `json:"withholding_tax"`
	TotalDeductions   decimal.Decimal `json:"total_deductions"`
	NetPay            decimal.Decimal `json:"net_pay"`
	ProcessedBy       int             `json:"processed_by"`
	ProcessedAt       time.Time       `json:"processed_at"`
}

// TransactionID derives the deterministic ledger key for an
// employee-period, e.g. "TX-10001-240601-240615". Rerunning payroll for
// the same inputs always lands on the same key.
func TransactionID(employeeID int, p period.PayPeriod) string {
	return fmt.Sprintf("TX-%d-%s", employeeID, p.Key())
}

func (p *Payslip) Period() period.PayPeriod {
	return period.PayPeriod{StartDate: p.PeriodStart, EndDate: p.PeriodEnd}
}
