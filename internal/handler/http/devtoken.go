package http

import (
	"encoding/json"
	"net/http"

	"github.com/nimbushr/payroll-backend-go/internal/handler/http/response"
	"github.com/nimbushr/payroll-backend-go/internal/pkg/jwt"
	"github.com/nimbushr/payroll-backend-go/internal/pkg/validator"
)

// DevTokenHandler mints access tokens for exercising the protected
// routes. It is only routed in the development environment; production
// deployments receive tokens from the identity provider.
type DevTokenHandler interface {
	IssueToken(w http.ResponseWriter, r *http.Request)
}

type devTokenHandlerImpl struct {
	jwtService jwt.Service
}

func NewDevTokenHandler(jwtService jwt.Service) DevTokenHandler {
	return &devTokenHandlerImpl{jwtService: jwtService}
}

type devTokenRequest struct {
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
}

type devTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

func (h *devTokenHandlerImpl) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req devTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	var errs validator.ValidationErrors
	if req.UserID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "must be a positive integer"})
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	role := req.Role
	if validator.IsEmpty(role) {
		role = "admin"
	}

	token, expiresAt, err := h.jwtService.GenerateAccessToken(req.UserID, role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, devTokenResponse{Token: token, ExpiresAt: expiresAt})
}
