package auth

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type RouteLimits struct {
	LoginRPS   float64
	LoginBurst int
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, limits RouteLimits, logger *zap.Logger) {
	auth := r.Group("/auth")
	auth.Use(middleware.ContextLogger(logger))
	{
		auth.POST("/login", middleware.RateLimitByIP(rate.Limit(limits.LoginRPS), limits.LoginBurst), handler.Login)
		auth.GET("/session", handler.Session)
		auth.POST("/logout", handler.Logout)
	}
}
