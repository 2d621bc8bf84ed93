package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbushr/payroll-backend-go/internal/pkg/jwt"
)

func TestDevTokenHandler_IssueToken(t *testing.T) {
	const secret = "test-secret"
	handler := NewDevTokenHandler(jwt.NewJWTService(secret, "1h"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/dev-tokens",
		strings.NewReader(`{"user_id": 9001, "role": "admin"}`))
	rec := httptest.NewRecorder()
	handler.IssueToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Token     string `json:"token"`
			ExpiresAt int64  `json:"expires_at"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.NotEmpty(t, body.Data.Token)
	assert.Greater(t, body.Data.ExpiresAt, int64(0))

	// The minted token must decode under the same secret and carry the
	// claims the auth middleware and actor extraction rely on.
	ja := jwtauth.New("HS256", []byte(secret), nil)
	token, err := ja.Decode(body.Data.Token)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(9001), claims["user_id"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestDevTokenHandler_IssueToken_DefaultsRole(t *testing.T) {
	handler := NewDevTokenHandler(jwt.NewJWTService("test-secret", "1h"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/dev-tokens",
		strings.NewReader(`{"user_id": 9001}`))
	rec := httptest.NewRecorder()
	handler.IssueToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)
}

func TestDevTokenHandler_IssueToken_RejectsInvalidUserID(t *testing.T) {
	handler := NewDevTokenHandler(jwt.NewJWTService("test-secret", "1h"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/dev-tokens",
		strings.NewReader(`{"user_id": 0}`))
	rec := httptest.NewRecorder()
	handler.IssueToken(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "user_id")
}
