package response

import (
	"errors"
	"net/http"

	"github.com/nimbushr/payroll-backend-go/internal/domain/approval"
	"github.com/nimbushr/payroll-backend-go/internal/domain/attendance"
	"github.com/nimbushr/payroll-backend-go/internal/domain/employee"
	"github.com/nimbushr/payroll-backend-go/internal/domain/leave"
	"github.com/nimbushr/payroll-backend-go/internal/domain/payslip"
	"github.com/nimbushr/payroll-backend-go/internal/domain/period"
	"github.com/nimbushr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEntryNotFound):
		NotFound(w, "Attendance entry not found")
	case errors.Is(err, attendance.ErrDuplicateEntry):
		Conflict(w, "Attendance entry already exists for this date")
	case errors.Is(err, attendance.ErrInvalidTimeSpan):
		BadRequest(w, "Time out cannot be before time in", nil)

	// Approval tracker errors
	case errors.Is(err, approval.ErrRecordNotFound):
		NotFound(w, "Approval record not found")

	// Payslip ledger errors
	case errors.Is(err, payslip.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payslip.ErrDuplicateTransaction):
		Conflict(w, "Payslip already exists for this transaction id")

	// Leave domain errors
	case errors.Is(err, leave.ErrCreditsNotFound):
		NotFound(w, "Leave credits not found")

	// Period errors
	case errors.Is(err, period.ErrInvalidRange):
		BadRequest(w, "Pay period end date cannot be before start date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
