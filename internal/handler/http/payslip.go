package http

import (
	"net/http"

	"github.com/nimbushr/payroll-backend-go/internal/domain/payslip"
	"github.com/nimbushr/payroll-backend-go/internal/handler/http/response"
	"github.com/nimbushr/payroll-backend-go/internal/pkg/validator"
)

type PayslipHandler interface {
	GetForPeriod(w http.ResponseWriter, r *http.Request)
	GetLatest(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	payslipService payslip.Service
}

func NewPayslipHandler(payslipService payslip.Service) PayslipHandler {
	return &payslipHandlerImpl{payslipService: payslipService}
}

func (h *payslipHandlerImpl) GetForPeriod(w http.ResponseWriter, r *http.Request) {
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

	viewerID, err := actorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	slip, err := h.payslipService.ViewForPeriod(r.Context(), viewerID, employeeID, p)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, slip)
}

func (h *payslipHandlerImpl) GetLatest(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDParam(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	viewerID, err := actorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	slip, err := h.payslipService.ViewLatest(r.Context(), viewerID, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, slip)
}

func (h *payslipHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDParam(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	viewerID, err := actorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	slips, err := h.payslipService.History(r.Context(), viewerID, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, slips)
}
