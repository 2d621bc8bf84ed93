package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/nimbushr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/nimbushr/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	env string,
	jwtService jwt.Service,
	payrollHandler PayrollHandler,
	approvalHandler ApprovalHandler,
	payslipHandler PayslipHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	auditHandler AuditHandler,
	devTokenHandler DevTokenHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "nimbus-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Development only: mint tokens for the protected routes.
		if env == "development" {
			r.Post("/auth/dev-tokens", devTokenHandler.IssueToken)
		}

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/periods", payrollHandler.ResolvePeriod)
				r.Post("/runs", payrollHandler.RunForEmployee)
				r.Post("/batch-runs", payrollHandler.RunForPeriod)
			})

			r.Route("/approvals", func(r chi.Router) {
				r.Get("/", approvalHandler.ListByPeriod)
				r.Get("/{employeeID}", approvalHandler.GetRecord)
				r.Post("/attendance/approve", approvalHandler.ApproveAttendance)
				r.Post("/attendance/reject", approvalHandler.RejectAttendance)
			})

			r.Route("/payslips/{employeeID}", func(r chi.Router) {
				r.Get("/", payslipHandler.GetForPeriod)
				r.Get("/latest", payslipHandler.GetLatest)
				r.Get("/history", payslipHandler.GetHistory)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/entries", attendanceHandler.CreateEntry)
				r.Get("/entries/{employeeID}", attendanceHandler.ListEntries)
			})

			r.Route("/leave/{employeeID}", func(r chi.Router) {
				r.Get("/balance", leaveHandler.GetBalance)
				r.Post("/sync", leaveHandler.SyncTakenHours)
			})

			r.Get("/audit", auditHandler.ListRecent)
		})
	})
	return r
}
