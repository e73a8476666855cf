//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"dropengine/internal/handler/dto/request"
	resdto "dropengine/internal/handler/dto/response"
	"dropengine/internal/pkg/password"
	"dropengine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const TestPassword = "password123"

// PasswordHash returns a fresh bcrypt hash of TestPassword.
func PasswordHash(t *testing.T) string {
	t.Helper()
	hash, err := password.HashPassword(TestPassword)
	require.NoError(t, err)
	return hash
}

func LoginAdmin(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp resdto.LoginResponse
	httptest.DecodeResponseBody(t, w.Body, &resp)
	require.NotEmpty(t, resp.AccessToken, "access token missing from login response")
	return resp.AccessToken
}
