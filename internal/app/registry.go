package app

import (
	"net/http"

	"go-payroll/internal/auth"
	"go-payroll/internal/dashboard"
	"go-payroll/internal/employee"
	"go-payroll/internal/middleware"
	"go-payroll/internal/payroll"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"
	"go-payroll/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Router builds the gin engine with every module mounted under /api/v1.
func (a *App) Router() (*gin.Engine, error) {
	if a.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID())

	if err := registerModules(router, a); err != nil {
		return nil, err
	}
	return router, nil
}

func registerModules(router *gin.Engine, a *App) error {
	apperror.Init()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.RegisterRules(v); err != nil {
			return err
		}
	}

	logger := a.Logger
	requireSession := middleware.RequireSession(auth.ResolveSession(a.Auth))

	// --- Handlers ---
	authHandler := auth.NewHandler(a.Auth, logger)
	employeeHandler := employee.NewHandler(a.Employees, logger)
	payrollHandler := payroll.NewHandler(a.Payroll, logger)
	dashboardHandler := dashboard.NewHandler(a.Dashboards, logger)

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, auth.RouteLimits{
			LoginRPS:   a.Config.RateLimit.RPS,
			LoginBurst: a.Config.RateLimit.Burst,
		}, logger)
		employee.RegisterRoutes(api, employeeHandler, requireSession, logger, a.Redis)
		payroll.RegisterRoutes(api, payrollHandler, requireSession, logger)
		dashboard.RegisterRoutes(api, dashboardHandler, requireSession, logger)
	}

	return nil
}
