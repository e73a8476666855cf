package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dropengine/internal/domain/operator"
	"dropengine/internal/handler/api"
	"dropengine/internal/handler/middleware"
	"dropengine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth           *api.AuthHandler
	Drop           *api.DropHandler
	Admin          *api.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
	ClaimLimiter   *middleware.ClaimLimiter
	Gatherer       prometheus.Gatherer
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// outermost first, so Recovery sees panics from everything below it
	engine.Use(middleware.Recovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.Gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})
		}

		drops := apiGroup.Group("/drops")
		{
			addRoutes(drops, []route{
				{Method: http.MethodGet, Path: "/status", Handler: h.Drop.Status},
				{Method: http.MethodGet, Path: "/history", Handler: h.Drop.History},
				{Method: http.MethodGet, Path: "/cycle", Handler: h.Drop.Cycle},
				{Method: http.MethodGet, Path: "/next", Handler: h.Drop.NextSpawn},
				{Method: http.MethodGet, Path: "/active", Handler: h.Drop.Active},
				{Method: http.MethodPost, Path: "/claims", Handler: h.Drop.Claim, Mw: []gin.HandlerFunc{h.ClaimLimiter.Middleware()}},
			})
		}

		admin := apiGroup.Group("/admin/drops")
		admin.Use(h.AuthMiddleware.RequireAuth(), h.AuthMiddleware.RequireRoleAtLeast(operator.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/tick", Handler: h.Admin.Tick},
				{Method: http.MethodPost, Path: "/force", Handler: h.Admin.ForceDrop},
				{Method: http.MethodPost, Path: "/reset-pool", Handler: h.Admin.ResetPool},
				{Method: http.MethodPost, Path: "/reset-history", Handler: h.Admin.ResetHistory},
				{Method: http.MethodPost, Path: "/reset-cycle", Handler: h.Admin.ResetCycle},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
