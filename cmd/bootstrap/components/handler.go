package components

import (
	"time"

	"dropengine/internal/handler"
	"dropengine/internal/handler/api"
	"dropengine/internal/handler/middleware"
	"dropengine/internal/pkg/config"
	"dropengine/internal/pkg/jwt"
	"dropengine/internal/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewDropHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewClaimLimiter,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(authUseCase usecase.AuthUseCase, jwtService *jwt.Service) *api.AuthHandler {
	return api.NewAuthHandler(authUseCase, int64(jwtService.TokenDuration()/time.Second))
}

func NewClaimLimiter(cfg config.Config) *middleware.ClaimLimiter {
	return middleware.NewClaimLimiter(cfg.Drop.ClaimRate, cfg.Drop.ClaimBurst, 10*time.Minute)
}

func NewHandlers(
	auth *api.AuthHandler,
	drop *api.DropHandler,
	admin *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	limiter *middleware.ClaimLimiter,
	gatherer prometheus.Gatherer,
) handler.Handlers {
	return handler.Handlers{
		Auth:           auth,
		Drop:           drop,
		Admin:          admin,
		AuthMiddleware: authMiddleware,
		ClaimLimiter:   limiter,
		Gatherer:       gatherer,
	}
}
