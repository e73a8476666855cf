//go:build unit || e2e

package builder

import (
	reqdto "dropengine/internal/handler/dto/request"
	"dropengine/internal/usecase"
)

type AuthBuilder struct {
	Username string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Username: "admin",
		Password: "password123",
	}
}

func (a *AuthBuilder) WithPassword(password string) *AuthBuilder {
	a.Password = password
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: a.Username,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildCredentials() usecase.Credentials {
	return usecase.Credentials{
		Username: a.Username,
		Password: a.Password,
	}
}
