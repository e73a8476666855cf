//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"dropengine/internal/domain/operator"
	"dropengine/internal/pkg/config"
	"dropengine/internal/pkg/jwt"
	"dropengine/internal/usecase"
	"dropengine/tests/common/authtest"
	"dropengine/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthUseCase_Login(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)
	logger := slog.New(slog.DiscardHandler)
	admin := usecase.AdminAccount{Username: "admin", PasswordHash: authtest.PasswordHash(t)}

	t.Run("valid credentials issue an admin token", func(t *testing.T) {
		uc := usecase.NewAuthUseCase(admin, jwtService, logger)

		result, err := uc.Login(context.Background(), builder.NewAuthBuilder().BuildCredentials())
		require.NoError(t, err)
		assert.Equal(t, "admin", result.Operator)
		assert.Equal(t, operator.RoleAdmin, result.Role)

		name, role, err := usecase.NewTokenValidator(jwtService).ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin", name)
		assert.Equal(t, operator.RoleAdmin, role)
	})

	cases := []struct {
		name        string
		admin       usecase.AdminAccount
		credentials usecase.Credentials
		errIs       error
	}{
		{
			name:        "wrong password",
			admin:       admin,
			credentials: builder.NewAuthBuilder().WithPassword("wrong-password").BuildCredentials(),
			errIs:       usecase.ErrInvalidCredentials,
		},
		{
			name:        "unknown username",
			admin:       admin,
			credentials: usecase.Credentials{Username: "root", Password: authtest.TestPassword},
			errIs:       usecase.ErrInvalidCredentials,
		},
		{
			name:        "empty password",
			admin:       admin,
			credentials: usecase.Credentials{Username: "admin"},
			errIs:       usecase.ErrInvalidCredentials,
		},
		{
			name:        "no password hash configured",
			admin:       usecase.AdminAccount{Username: "admin"},
			credentials: builder.NewAuthBuilder().BuildCredentials(),
			errIs:       usecase.ErrAdminDisabled,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := usecase.NewAuthUseCase(tc.admin, jwtService, logger)

			result, err := uc.Login(context.Background(), tc.credentials)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, tc.errIs), "got %v", err)
		})
	}
}

func TestTokenValidator(t *testing.T) {
	helper := authtest.NewJWTHelper(config.NewTestConfig().JWT)
	validator := usecase.NewTokenValidator(helper.Service(t))

	t.Run("expired token", func(t *testing.T) {
		_, _, err := validator.ValidateToken(helper.CreateExpiredToken(t, "admin", operator.RoleAdmin))
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateToken("admin", operator.RoleAdmin)
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("viewer token", func(t *testing.T) {
		_, role, err := validator.ValidateToken(helper.GenerateToken(t, "watcher", operator.RoleViewer))
		require.NoError(t, err)
		assert.Equal(t, operator.RoleViewer, role)
	})
}
