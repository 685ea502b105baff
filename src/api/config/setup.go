package config

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIConfig contiene la configuración del módulo API base
type APIConfig struct {
	DB      *sql.DB
	Version string
}

// DefaultAPIConfig devuelve una configuración por defecto
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		Version: "dev",
	}
}

// SetupAPIModule registra el health check en la raíz y bajo /api/v1
func SetupAPIModule(router *gin.Engine, v1 *gin.RouterGroup, cfg APIConfig) {
	handler := func(ctx *gin.Context) {
		status := "ok"
		dbStatus := "not configured"

		if cfg.DB != nil {
			if err := cfg.DB.PingContext(ctx.Request.Context()); err != nil {
				status = "degraded"
				dbStatus = "down"
			} else {
				dbStatus = "up"
			}
		}

		code := http.StatusOK
		if status != "ok" {
			code = http.StatusServiceUnavailable
		}

		ctx.JSON(code, gin.H{
			"status":   status,
			"database": dbStatus,
			"version":  cfg.Version,
		})
	}

	router.GET("/health", handler)
	v1.GET("/health", handler)
}
