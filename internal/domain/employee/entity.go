package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the compensation profile used by payroll calculation.
// Monetary fields are monthly amounts except HourlyRate.
type Employee struct {
	EmployeeID           int             `json:"employee_id"`
	LastName             string          `json:"last_name"`
	FirstName            string          `json:"first_name"`
	BasicSalary          decimal.Decimal `json:"basic_salary"`
	RiceAllowance        decimal.Decimal `json:"rice_allowance"`
	PhoneAllowance       decimal.Decimal `json:"phone_allowance"`
	ClothingAllowance    decimal.Decimal `json:"clothing_allowance"`
	GrossSemiMonthlyRate decimal.Decimal `json:"gross_semi_monthly_rate"`
	HourlyRate           decimal.Decimal `json:"hourly_rate"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
