package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nimbushr/payroll-backend-go/internal/domain/approval"
	"github.com/nimbushr/payroll-backend-go/internal/domain/period"
	"github.com/nimbushr/payroll-backend-go/internal/handler/http/response"
	"github.com/nimbushr/payroll-backend-go/internal/pkg/validator"
)

type ApprovalHandler interface {
	ApproveAttendance(w http.ResponseWriter, r *http.Request)
	RejectAttendance(w http.ResponseWriter, r *http.Request)
	GetRecord(w http.ResponseWriter, r *http.Request)
	ListByPeriod(w http.ResponseWriter, r *http.Request)
}

type approvalHandlerImpl struct {
	approvalService approval.Service
}

func NewApprovalHandler(approvalService approval.Service) ApprovalHandler {
	return &approvalHandlerImpl{approvalService: approvalService}
}

type attendanceDecisionRequest struct {
	EmployeeID int    `json:"employee_id"`
	Date       string `json:"date"`
}

func (h *approvalHandlerImpl) ApproveAttendance(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.approvalService.ApproveAttendance, "Attendance approved")
}

func (h *approvalHandlerImpl) RejectAttendance(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.approvalService.RejectAttendance, "Attendance rejected")
}

func (h *approvalHandlerImpl) decide(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, employeeID int, p period.PayPeriod, approverID int) (bool, error),
	message string,
) {
	var req attendanceDecisionRequest
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

	approverID, err := actorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	updated, err := op(r.Context(), req.EmployeeID, p, approverID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !updated {
		response.Conflict(w, "Payroll already approved for this period")
		return
	}

	response.SuccessWithMessage(w, message, nil)
}

func (h *approvalHandlerImpl) GetRecord(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDParam(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	var errs validator.ValidationErrors
	p := periodFromDateString(r.URL.Query().Get("date"), &errs)
	if len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	record, err := h.approvalService.GetRecord(r.Context(), employeeID, p)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

func (h *approvalHandlerImpl) ListByPeriod(w http.ResponseWriter, r *http.Request) {
	var errs validator.ValidationErrors
	p := periodFromDateString(r.URL.Query().Get("date"), &errs)
	if len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	records, err := h.approvalService.ListByPeriod(r.Context(), p)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
