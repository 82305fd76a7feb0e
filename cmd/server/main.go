package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fire-tracker/internal/config"
	"fire-tracker/internal/database"
	"fire-tracker/internal/handlers"
	"fire-tracker/internal/middleware"
	"fire-tracker/internal/models"
	"fire-tracker/internal/palette"
	"fire-tracker/internal/repositories"
	"fire-tracker/internal/server"
	"fire-tracker/internal/services"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration rejected", "error", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	// Repositories
	userRepo := repositories.NewUserRepository(db.DB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db.DB)
	blacklistRepo := repositories.NewBlacklistedTokenRepository(db.DB)
	auditLogRepo := repositories.NewAuditLogRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)
	profileRepo := repositories.NewProfileRepository(db.DB)
	netWorthRepo := repositories.NewNetWorthRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	auditLogger := services.NewAuditLogger(logger)
	auditService := services.NewAuditService(auditLogRepo)
	tokenService := services.NewTokenService(&cfg.JWT)
	passwordService := services.NewPasswordService(userRepo, services.PasswordPolicy{
		BCryptCost:          cfg.Security.BCryptCost,
		MinLength:           cfg.Security.PasswordMinLength,
		RequireUppercase:    cfg.Security.RequireUppercase,
		RequireLowercase:    cfg.Security.RequireLowercase,
		RequireNumbers:      cfg.Security.RequireNumbers,
		RequireSpecialChars: cfg.Security.RequireSpecialChars,
	})
	profileService := services.NewProfileService(profileRepo, models.ProfileDefaults{
		SwrRate:         cfg.Fire.DefaultSwrRate,
		CurrentAge:      cfg.Fire.DefaultCurrentAge,
		RetirementAge:   cfg.Fire.DefaultRetirementAge,
		ExpectedReturn:  cfg.Fire.DefaultExpectedReturn,
		MonthlyExpenses: cfg.Fire.DefaultMonthlyExpenses,
		AnnualExpenses:  cfg.Fire.DefaultAnnualExpenses,
	}, auditLogger)
	authService := services.NewAuthService(services.AuthServiceDeps{
		Users:             userRepo,
		Sessions:          refreshTokenRepo,
		Blacklist:         blacklistRepo,
		AuditLogs:         auditLogRepo,
		Passwords:         passwordService,
		Tokens:            tokenService,
		Profiles:          profileService,
		Metrics:           metrics,
		Logger:            logger,
		MaxFailedAttempts: cfg.Security.MaxFailedAttempts,
	})
	transactionService := services.NewTransactionService(transactionRepo, auditLogger, metrics)
	budgetService := services.NewBudgetService(budgetRepo, transactionRepo, auditLogger, metrics)
	netWorthService := services.NewNetWorthService(netWorthRepo, metrics)
	dashboardService := services.NewDashboardService(transactionRepo,
		palette.New(cfg.Palette.CategoryColors, cfg.Palette.Fallback), auditLogger)
	fireService := services.NewFireService(profileService, netWorthRepo, transactionRepo,
		auditLogger, metrics, cfg.Fire.TrailingExpenseMonths)
	maintenanceService := services.NewMaintenanceService(refreshTokenRepo, blacklistRepo, auditLogRepo,
		auditLogger, metrics, services.MaintenanceConfig{
			Interval:          cfg.Maintenance.Interval,
			RevokedTokenTTL:   cfg.Maintenance.RevokedTokenTTL,
			AuditLogRetention: cfg.Maintenance.AuditLogRetention,
		})

	// Handlers
	h := server.Handlers{
		Auth:        handlers.NewAuthHandler(authService, passwordService, auditService),
		Transaction: handlers.NewTransactionHandler(transactionService, auditService),
		Budget:      handlers.NewBudgetHandler(budgetService, auditService),
		Profile:     handlers.NewProfileHandler(profileService, auditService),
		NetWorth:    handlers.NewNetWorthHandler(netWorthService, auditService),
		Dashboard:   handlers.NewDashboardHandler(dashboardService),
		Fire:        handlers.NewFireHandler(fireService),
		Activity:    handlers.NewActivityHandler(auditService),
		Admin:       handlers.NewAdminHandler(userRepo, auditService, maintenanceService),
		Health:      handlers.NewHealthCheckHandler(db.DB, prometheus.DefaultGatherer),
	}
	if cfg.Server.DemoDataEnabled {
		demoDataService := services.NewDemoDataService(transactionRepo, services.NewTransactionGenerator(), auditLogger, metrics)
		h.Dev = handlers.NewDevHandler(demoDataService, auditService)
		logger.Warn("demo data endpoint enabled", "environment", cfg.Server.Environment)
	}

	limiter := middleware.NewVisitorLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2, "/health", "/metrics")
	go limiter.RunCleanup(ctx)

	e := server.New(cfg, limiter)
	server.RegisterRoutes(e, h, middleware.RequireAuth(tokenService, blacklistRepo))

	if cfg.Maintenance.Enabled {
		go maintenanceService.Start(ctx)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting fire-tracker server",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
