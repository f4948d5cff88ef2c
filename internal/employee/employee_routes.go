package employee

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	requireSession gin.HandlerFunc,
	logger *zap.Logger,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	employees := r.Group("/employees")
	employees.Use(middleware.ContextLogger(logger))
	{
		if redisClient != nil {
			employees.POST("/register",
				middleware.RateLimitByIP(0.5, 3),
				middleware.Idempotency(redisClient),
				handler.Register,
			)
		} else {
			employees.POST("/register",
				middleware.RateLimitByIP(0.5, 3),
				handler.Register,
			)
		}

		employees.GET("",
			requireSession,
			middleware.RateLimitByUser(3, 10),
			handler.List,
		)
	}
}
