package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"

	"dropengine/internal/domain/operator"
	"dropengine/internal/pkg/errs"
	"dropengine/internal/pkg/jwt"
	"dropengine/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.ErrInvalidCredentials
	ErrAdminDisabled      = errs.ErrAdminDisabled
	ErrTokenGeneration    = errors.New("token generation failed")
)

// Credentials carries an operator login attempt.
type Credentials struct {
	Username string
	Password string
}

type LoginResult struct {
	Token    string
	Operator string
	Role     operator.Role
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials Credentials) (*LoginResult, error)
}

// AdminAccount is the single configured operator allowed to run admin drop
// operations.
type AdminAccount struct {
	Username     string
	PasswordHash string
}

type authUseCaseImpl struct {
	admin      AdminAccount
	jwtService *jwt.Service
	logger     *slog.Logger
}

func NewAuthUseCase(admin AdminAccount, jwtService *jwt.Service, logger *slog.Logger) AuthUseCase {
	return &authUseCaseImpl{
		admin:      admin,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials Credentials) (*LoginResult, error) {
	if a.admin.PasswordHash == "" {
		return nil, ErrAdminDisabled
	}

	if subtle.ConstantTimeCompare([]byte(credentials.Username), []byte(a.admin.Username)) != 1 {
		a.logger.WarnContext(ctx, "Admin login rejected", "username", credentials.Username)
		return nil, ErrInvalidCredentials
	}
	if err := password.ComparePassword(a.admin.PasswordHash, credentials.Password); err != nil {
		a.logger.WarnContext(ctx, "Admin login rejected", "username", credentials.Username)
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(a.admin.Username, operator.RoleAdmin)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "sign admin token"), ErrTokenGeneration)
	}

	a.logger.InfoContext(ctx, "Admin logged in", "username", a.admin.Username)
	return &LoginResult{
		Token:    token,
		Operator: a.admin.Username,
		Role:     operator.RoleAdmin,
	}, nil
}
