package payslip

import "errors"

var (
	ErrPayslipNotFound      = errors.New("payslip not found")
	ErrDuplicateTransaction = errors.New("payslip with this transaction id already exists")
)
