package response

import "dropengine/internal/usecase"

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
	Operator    string `json:"operator"`
	Role        string `json:"role"`
}

func FromLoginResult(r *usecase.LoginResult, expiresIn int64) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.Token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		Operator:    r.Operator,
		Role:        r.Role.String(),
	}
}
