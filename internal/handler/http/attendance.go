package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/nimbushr/payroll-backend-go/internal/domain/attendance"
	"github.com/nimbushr/payroll-backend-go/internal/handler/http/response"
	"github.com/nimbushr/payroll-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	CreateEntry(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

type createEntryRequest struct {
	EmployeeID int    `json:"employee_id"`
	Date       string `json:"date"`
	TimeIn     string `json:"time_in"`
	TimeOut    string `json:"time_out"`
}

func (h *attendanceHandlerImpl) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	var errs validator.ValidationErrors
	if req.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a positive integer"})
	}

	var date time.Time
	if validator.IsEmpty(req.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "is required"})
	} else if parsed, ok := validator.IsValidDate(req.Date); ok {
		date = parsed
	} else {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}

	timeIn := parseOptionalTime(req.TimeIn, "time_in", &errs)
	timeOut := parseOptionalTime(req.TimeOut, "time_out", &errs)
	if len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	entry := &attendance.Entry{
		EmployeeID: req.EmployeeID,
		Date:       date,
		TimeIn:     timeIn,
		TimeOut:    timeOut,
	}
	if err := h.attendanceService.IngestEntry(r.Context(), entry); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance entry recorded", entry)
}

func (h *attendanceHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
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

	entries, err := h.attendanceService.EntriesForPeriod(r.Context(), employeeID, p.StartDate, p.EndDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

func parseOptionalTime(raw, field string, errs *validator.ValidationErrors) *time.Time {
	if validator.IsEmpty(raw) {
		return nil
	}

	t, ok := validator.IsValidDateTime(raw)
	if !ok {
		*errs = append(*errs, validator.ValidationError{Field: field, Message: "must be an RFC3339 timestamp"})
		return nil
	}
	return &t
}
