package http

import (
	"encoding/json"
	"net/http"

	"github.com/nimbushr/payroll-backend-go/internal/domain/payroll"
	"github.com/nimbushr/payroll-backend-go/internal/handler/http/response"
	"github.com/nimbushr/payroll-backend-go/internal/pkg/validator"
)

type PayrollHandler interface {
	ResolvePeriod(w http.ResponseWriter, r *http.Request)
	RunForEmployee(w http.ResponseWriter, r *http.Request)
	RunForPeriod(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

type runEmployeeRequest struct {
	EmployeeID int    `json:"employee_id"`
	Date       string `json:"date"`
}

type runPeriodRequest struct {
	Date string `json:"date"`
}

func (h *payrollHandlerImpl) ResolvePeriod(w http.ResponseWriter, r *http.Request) {
	var errs validator.ValidationErrors
	p := periodFromDateString(r.URL.Query().Get("date"), &errs)
	if len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	response.Success(w, p)
}

func (h *payrollHandlerImpl) RunForEmployee(w http.ResponseWriter, r *http.Request) {
	var req runEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	var errs validator.ValidationErrors
	if req.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a positive integer"})
	}
	p := periodFromDateString(req.Date, &errs)
	if len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	actorID, err := actorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.payrollService.ProcessPayrollForEmployee(r.Context(), req.EmployeeID, p, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) RunForPeriod(w http.ResponseWriter, r *http.Request) {
	var req runPeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	var errs validator.ValidationErrors
	p := periodFromDateString(req.Date, &errs)
	if len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	actorID, err := actorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	summary, err := h.payrollService.ProcessPayrollForPeriod(r.Context(), p, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
