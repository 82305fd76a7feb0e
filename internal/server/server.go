// Package server assembles the echo instance: middleware chain and routes.
package server

import (
	"net/http"

	"fire-tracker/internal/config"
	"fire-tracker/internal/handlers"
	"fire-tracker/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Handlers groups the HTTP handlers the router dispatches to
type Handlers struct {
	Auth        *handlers.AuthHandler
	Transaction *handlers.TransactionHandler
	Budget      *handlers.BudgetHandler
	Profile     *handlers.ProfileHandler
	NetWorth    *handlers.NetWorthHandler
	Dashboard   *handlers.DashboardHandler
	Fire        *handlers.FireHandler
	Activity    *handlers.ActivityHandler
	Admin       *handlers.AdminHandler
	Health      *handlers.HealthCheckHandler
	// Dev is nil unless demo data is enabled
	Dev *handlers.DevHandler
}

// New builds the echo instance with the global middleware chain:
// RequestID, PanicRecovery, SecurityHeaders, CORS, rate limiting.
func New(cfg *config.Config, limiter *middleware.VisitorLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(limiter.Middleware())

	return e
}

// RegisterRoutes mounts every endpoint. requireAuth guards everything under
// /api/v1 except registration, login and refresh.
func RegisterRoutes(e *echo.Echo, h Handlers, requireAuth echo.MiddlewareFunc) {
	e.GET("/health", h.Health.HealthCheck)
	e.GET("/metrics", h.Health.Metrics)

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)
	auth.POST("/logout", h.Auth.Logout, requireAuth)
	auth.PUT("/password", h.Auth.ChangePassword, requireAuth)

	protected := api.Group("", requireAuth)

	protected.POST("/transactions", h.Transaction.CreateTransaction)
	protected.GET("/transactions", h.Transaction.ListTransactions)
	protected.GET("/transactions/:id", h.Transaction.GetTransaction)
	protected.PUT("/transactions/:id", h.Transaction.UpdateTransaction)
	protected.DELETE("/transactions/:id", h.Transaction.DeleteTransaction)

	protected.POST("/budgets", h.Budget.CreateBudget)
	protected.GET("/budgets", h.Budget.ListBudgets)
	protected.GET("/budgets/overview", h.Budget.GetOverview)
	protected.GET("/budgets/:id", h.Budget.GetBudget)
	protected.PUT("/budgets/:id", h.Budget.UpdateBudget)
	protected.DELETE("/budgets/:id", h.Budget.DeleteBudget)

	protected.GET("/profile", h.Profile.GetProfile)
	protected.PUT("/profile", h.Profile.UpdateProfile)

	protected.POST("/net-worth", h.NetWorth.RecordSnapshot)
	protected.GET("/net-worth", h.NetWorth.ListSnapshots)
	protected.GET("/net-worth/latest", h.NetWorth.GetLatestSnapshot)
	protected.DELETE("/net-worth/:id", h.NetWorth.DeleteSnapshot)

	protected.GET("/dashboard/summary", h.Dashboard.GetSummary)
	protected.GET("/dashboard/category-spending", h.Dashboard.GetCategorySpending)

	protected.GET("/fire/progress", h.Fire.GetProgress)

	protected.GET("/activity", h.Activity.GetActivity)

	admin := protected.Group("/admin", middleware.RequireAdmin())
	admin.POST("/users/:userId/unlock", h.Admin.UnlockUser)
	admin.POST("/maintenance/run", h.Admin.RunMaintenance)

	if h.Dev != nil {
		protected.POST("/dev/demo-data", h.Dev.GenerateDemoData)
	}
}
