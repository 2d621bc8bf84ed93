package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/nimbushr/payroll-backend-go/internal/domain/period"
	"github.com/nimbushr/payroll-backend-go/internal/pkg/validator"
)

// actorFromContext reads the acting user's id from the JWT claims.
func actorFromContext(ctx context.Context) (int, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	// Numeric JSON claims decode as float64.
	raw, ok := claims["user_id"].(float64)
	if !ok {
		return 0, fmt.Errorf("user_id claim is missing or invalid")
	}

	return int(raw), nil
}

// periodFromDateString resolves a request date to its semi-monthly
// period, collecting a validation error when the date is malformed.
func periodFromDateString(dateStr string, errs *validator.ValidationErrors) period.PayPeriod {
	if validator.IsEmpty(dateStr) {
		*errs = append(*errs, validator.ValidationError{Field: "date", Message: "is required"})
		return period.PayPeriod{}
	}

	date, ok := validator.IsValidDate(dateStr)
	if !ok {
		*errs = append(*errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
		return period.PayPeriod{}
	}

	return period.FromDateSemiMonthly(date)
}

// employeeIDParam parses the {employeeID} URL parameter.
func employeeIDParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "employeeID")
	if !validator.IsNumeric(raw) {
		return 0, fmt.Errorf("employee id must be numeric")
	}
	return strconv.Atoi(raw)
}
