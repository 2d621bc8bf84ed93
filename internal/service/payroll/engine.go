package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nimbushr/payroll-backend-go/internal/domain/attendance"
	"github.com/nimbushr/payroll-backend-go/internal/domain/employee"
	"github.com/nimbushr/payroll-backend-go/internal/domain/payslip"
	"github.com/nimbushr/payroll-backend-go/internal/domain/period"
	deductionsvc "github.com/nimbushr/payroll-backend-go/internal/service/deduction"
)

// Workday boundaries in minutes from midnight. Arrivals through the
// grace window are treated as on time; later arrivals are charged from
// the workday start, not from the grace end.
const (
	workStartMinute = 8 * 60
	graceEndMinute  = 8*60 + 10
	workEndMinute   = 17 * 60

	lunchThresholdMinutes = 240
	lunchBreakMinutes     = 60
	regularDailyHours     = 8.0
)

var (
	minutesPerHour = decimal.NewFromInt(60)
	overtimeFactor = decimal.RequireFromString("1.25")
	two            = decimal.NewFromInt(2)
)

// Engine computes a payslip from the employee's compensation profile,
// attendance entries, and the deduction tables. It never persists
// anything; the orchestrator owns saving and approval state.
type Engine struct {
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	calculator     *deductionsvc.Calculator
}

func NewEngine(
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	calculator *deductionsvc.Calculator,
) *Engine {
	return &Engine{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		calculator:     calculator,
	}
}

func (e *Engine) ComputePayslip(ctx context.Context, employeeID int, p period.PayPeriod, processedBy int) (*payslip.Payslip, error) {
	emp, err := e.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("load employee %d: %w", employeeID, err)
	}

	entries, err := e.attendanceRepo.EntriesForPeriod(ctx, employeeID, p.StartDate, p.EndDate)
	if err != nil {
		return nil, fmt.Errorf("load attendance for employee %d: %w", employeeID, err)
	}

	perMinuteRate := emp.HourlyRate.Div(minutesPerHour)

	var totalHoursWorked float64
	lateDeduction := decimal.Zero
	overtimePay := decimal.Zero

	for _, entry := range entries {
		// Days with a missing punch contribute nothing, in hours or
		// in deductions.
		if !entry.HasCompletePunches() {
			continue
		}

		inMinute := minuteOfDay(*entry.TimeIn)
		outMinute := minuteOfDay(*entry.TimeOut)

		dailyHours := workedHours(inMinute, outMinute)
		totalHoursWorked += dailyHours

		if inMinute > graceEndMinute {
			minutesLate := int64(inMinute - workStartMinute)
			lateDeduction = lateDeduction.Add(perMinuteRate.Mul(decimal.NewFromInt(minutesLate)))
		}

		if outMinute < workEndMinute {
			minutesUndertime := int64(workEndMinute - outMinute)
			lateDeduction = lateDeduction.Add(perMinuteRate.Mul(decimal.NewFromInt(minutesUndertime)))
		}

		if dailyHours > regularDailyHours {
			otHours := decimal.NewFromFloat(dailyHours - regularDailyHours)
			overtimePay = overtimePay.Add(otHours.Mul(emp.HourlyRate).Mul(overtimeFactor))
		}
	}

	basicHalf := emp.BasicSalary.Div(two)
	riceHalf := emp.RiceAllowance.Div(two)
	phoneHalf := emp.PhoneAllowance.Div(two)
	clothingHalf := emp.ClothingAllowance.Div(two)

	grossIncome := basicHalf.Add(riceHalf).Add(phoneHalf).Add(clothingHalf).Add(overtimePay)

	payAfterTimeDeduction := grossIncome.Sub(lateDeduction)
	if payAfterTimeDeduction.IsNegative() {
		payAfterTimeDeduction = decimal.Zero
	}

	sss := e.calculator.SSS(ctx, payAfterTimeDeduction)
	philHealth := e.calculator.PhilHealth(ctx, payAfterTimeDeduction)
	pagIbig := e.calculator.PagIbig(ctx, payAfterTimeDeduction)
	govDeductions := sss.Add(philHealth).Add(pagIbig)

	taxableIncome := payAfterTimeDeduction.Sub(govDeductions)
	if taxableIncome.IsNegative() {
		taxableIncome = decimal.Zero
	}
	withholdingTax := e.calculator.WithholdingTax(ctx, taxableIncome)

	totalDeductions := lateDeduction.Add(govDeductions).Add(withholdingTax)

	// Total deductions subtract from the pre-deduction gross here, so
	// the late deduction is not applied twice.
	netPay := grossIncome.Sub(totalDeductions)
	if netPay.IsNegative() {
		netPay = decimal.Zero
	}

	return &payslip.Payslip{
		TransactionID:     payslip.TransactionID(employeeID, p),
		EmployeeID:        employeeID,
		LastName:          emp.LastName,
		FirstName:         emp.FirstName,
		PeriodStart:       p.StartDate,
		PeriodEnd:         p.EndDate,
		BasicSalary:       basicHalf,
		RiceAllowance:     riceHalf,
		PhoneAllowance:    phoneHalf,
		ClothingAllowance: clothingHalf,
		HourlyRate:        emp.HourlyRate,
		TotalHoursWorked:  totalHoursWorked,
		OvertimePay:       overtimePay,
		GrossIncome:       grossIncome,
		LateDeduction:     lateDeduction,
		SSS:               sss,
		PhilHealth:        philHealth,
		PagIbig:           pagIbig,
		WithholdingTax:    withholdingTax,
		TotalDeductions:   totalDeductions,
		NetPay:            netPay,
		ProcessedBy:       processedBy,
		ProcessedAt:       time.Now().UTC(),
	}, nil
}

// workedHours converts a punch span to hours, subtracting the lunch
// break from spans longer than four hours. A time-out before time-in
// counts as zero hours.
func workedHours(inMinute, outMinute int) float64 {
	minutes := outMinute - inMinute
	if minutes > lunchThresholdMinutes {
		minutes -= lunchBreakMinutes
	}
	if minutes < 0 {
		return 0
	}
	return float64(minutes) / 60.0
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
