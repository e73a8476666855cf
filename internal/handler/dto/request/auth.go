package request

import (
	"strings"

	"dropengine/internal/usecase"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToCredentials() usecase.Credentials {
	return usecase.Credentials{
		Username: strings.TrimSpace(r.Username),
		Password: r.Password,
	}
}
