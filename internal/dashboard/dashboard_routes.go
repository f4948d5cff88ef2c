package dashboard

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	requireSession gin.HandlerFunc,
	logger *zap.Logger,
) {
	r.POST("/dashboard",
		middleware.ContextLogger(logger),
		requireSession,
		middleware.RateLimitByUser(3, 10),
		handler.Render,
	)
}
