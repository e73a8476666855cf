package api

import (
	"errors"
	"net/http"

	reqdto "dropengine/internal/handler/dto/request"
	resdto "dropengine/internal/handler/dto/response"
	"dropengine/internal/handler/httperr"
	"dropengine/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	expiresIn   int64
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, tokenSeconds int64) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		expiresIn:   tokenSeconds,
	}
}

// @Summary Admin login
// @Description Login with the configured admin username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.ToCredentials())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid username or password", nil)
		case errors.Is(err, usecase.ErrAdminDisabled):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Admin login is disabled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoginResult(result, h.expiresIn))
}
