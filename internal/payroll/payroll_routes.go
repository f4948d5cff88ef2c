package payroll

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
	payslips := r.Group("/payslips")
	payslips.Use(middleware.ContextLogger(logger))
	{
		payslips.POST("",
			requireSession,
			middleware.RateLimitByUser(3, 10),
			handler.Compute,
		)

		payslips.POST("/links",
			requireSession,
			middleware.RateLimitByUser(1, 5),
			handler.IssueLink,
		)

		payslips.GET("/download",
			middleware.RateLimitByIP(1, 5),
			handler.Download,
		)
	}
}
