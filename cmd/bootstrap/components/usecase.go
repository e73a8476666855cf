package components

import (
	"log/slog"

	"dropengine/internal/domain/prize"
	"dropengine/internal/pkg/config"
	"dropengine/internal/pkg/jwt"
	"dropengine/internal/pkg/password"
	"dropengine/internal/pkg/random"
	"dropengine/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseEngineModule,
	usecaseAuthModule,
)

var usecaseBaseOption = fx.Provide(
	random.NewSource,
	prize.DefaultCatalog,
	usecase.NewEngineConfig,
)

var usecaseEngineModule = fx.Module("usecase/engine",
	fx.Provide(
		usecase.NewEngine,
		func(e *usecase.Engine) usecase.DropCommands { return e },
		func(e *usecase.Engine) usecase.DropQueries { return e },
	),
)

var usecaseAuthModule = fx.Module("usecase/auth",
	fx.Provide(
		NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)

func NewAuthUseCase(cfg config.Config, jwtService *jwt.Service, logger *slog.Logger) usecase.AuthUseCase {
	hash := cfg.Admin.PasswordHash
	switch err := password.ValidateHash(hash); {
	case hash == "":
		logger.Warn("ADMIN_PASSWORD_HASH is not set, admin routes are unreachable")
	case err != nil:
		logger.Error("ADMIN_PASSWORD_HASH rejected, admin login disabled", "error", err)
		hash = ""
	}
	return usecase.NewAuthUseCase(usecase.AdminAccount{
		Username:     cfg.Admin.Username,
		PasswordHash: hash,
	}, jwtService, logger)
}
