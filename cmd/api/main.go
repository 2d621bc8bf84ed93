package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/nimbushr/payroll-backend-go/internal/config"
	appHTTP "github.com/nimbushr/payroll-backend-go/internal/handler/http"
	"github.com/nimbushr/payroll-backend-go/internal/pkg/database"
	"github.com/nimbushr/payroll-backend-go/internal/pkg/jwt"
	"github.com/nimbushr/payroll-backend-go/internal/repository/csvtable"
	"github.com/nimbushr/payroll-backend-go/internal/repository/postgresql"
	approvalService "github.com/nimbushr/payroll-backend-go/internal/service/approval"
	attendanceService "github.com/nimbushr/payroll-backend-go/internal/service/attendance"
	auditService "github.com/nimbushr/payroll-backend-go/internal/service/audit"
	deductionService "github.com/nimbushr/payroll-backend-go/internal/service/deduction"
	leaveService "github.com/nimbushr/payroll-backend-go/internal/service/leave"
	payrollService "github.com/nimbushr/payroll-backend-go/internal/service/payroll"
	payslipService "github.com/nimbushr/payroll-backend-go/internal/service/payslip"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := newLogger(cfg.App.LogLevel)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if err := db.Migrate(context.Background(), cfg.Payroll.MigrationsDir); err != nil {
		fmt.Println("Error applying migrations:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	approvalRepo := postgresql.NewApprovalRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	leaveCreditsRepo := postgresql.NewLeaveCreditsRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)
	tableRepo := csvtable.NewTableRepository(cfg.Payroll.DeductionTableDir)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	auditor := auditService.NewRecorder(auditRepo, logger)
	calculator := deductionService.NewCalculator(tableRepo, logger)
	engine := payrollService.NewEngine(employeeRepo, attendanceRepo, calculator)
	periodTxManager := postgresql.NewPeriodTxManager(db)
	payrollSvc := payrollService.NewPayrollService(periodTxManager, engine, employeeRepo, approvalRepo, payslipRepo, auditor, logger)
	approvalSvc := approvalService.NewApprovalService(approvalRepo, auditor)
	payslipSvc := payslipService.NewPayslipService(payslipRepo, auditor)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, leaveCreditsRepo, auditor)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	approvalHandler := appHTTP.NewApprovalHandler(approvalSvc)
	payslipHandler := appHTTP.NewPayslipHandler(payslipSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	auditHandler := appHTTP.NewAuditHandler(auditor)
	devTokenHandler := appHTTP.NewDevTokenHandler(JWTService)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		JWTService,
		payrollHandler,
		approvalHandler,
		payslipHandler,
		attendanceHandler,
		leaveHandler,
		auditHandler,
		devTokenHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
