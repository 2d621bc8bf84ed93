package http

import (
	"net/http"

	"github.com/nimbushr/payroll-backend-go/internal/domain/leave"
	"github.com/nimbushr/payroll-backend-go/internal/handler/http/response"
	"github.com/nimbushr/payroll-backend-go/internal/pkg/validator"
)

type LeaveHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	SyncTakenHours(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

type leaveBalanceResponse struct {
	EmployeeID      int     `json:"employee_id"`
	UsedThisPeriod  float64 `json:"used_this_period"`
	TakenYearToDate float64 `json:"taken_year_to_date"`
	Remaining       float64 `json:"remaining"`
}

func (h *leaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
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

	used, err := h.leaveService.LeaveHoursUsed(r.Context(), employeeID, p)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	takenYtd, err := h.leaveService.LeaveTakenYearToDate(r.Context(), employeeID, p)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	remaining, err := h.leaveService.RemainingCredits(r.Context(), employeeID, p)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaveBalanceResponse{
		EmployeeID:      employeeID,
		UsedThisPeriod:  used,
		TakenYearToDate: takenYtd,
		Remaining:       remaining,
	})
}

func (h *leaveHandlerImpl) SyncTakenHours(w http.ResponseWriter, r *http.Request) {
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

	if err := h.leaveService.SyncLeaveTakenYearToDate(r.Context(), employeeID, p); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave taken hours synchronized", nil)
}
