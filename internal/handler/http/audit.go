package http

import (
	"net/http"
	"strconv"

	"github.com/nimbushr/payroll-backend-go/internal/handler/http/response"
	auditsvc "github.com/nimbushr/payroll-backend-go/internal/service/audit"
)

type AuditHandler interface {
	ListRecent(w http.ResponseWriter, r *http.Request)
}

type auditHandlerImpl struct {
	recorder *auditsvc.Recorder
}

func NewAuditHandler(recorder *auditsvc.Recorder) AuditHandler {
	return &auditHandlerImpl{recorder: recorder}
}

func (h *auditHandlerImpl) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.recorder.Recent(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
