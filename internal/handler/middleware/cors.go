package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"dropengine/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// exposedHeaders are always visible to browser clients polling drops.
var exposedHeaders = []string{"Retry-After", RequestIDHeader}

// NewCORSMiddleware builds the CORS policy. A "*" origin allows every origin
// and turns credentials off; no origins at all disables CORS handling.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	if len(cfg.AllowOrigins) == 0 {
		logger.Info("CORS disabled")
		return func(c *gin.Context) { c.Next() }
	}

	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    mergeHeaders(cfg.ExposeHeaders, exposedHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}

	logger.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_all", corsCfg.AllowAllOrigins,
		"credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}

func mergeHeaders(base, extra []string) []string {
	out := slices.Clone(base)
	for _, h := range extra {
		if !slices.ContainsFunc(out, func(s string) bool { return strings.EqualFold(s, h) }) {
			out = append(out, h)
		}
	}
	return out
}
