package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homezy/config"
	"homezy/i18n"
	"homezy/routes"
	"homezy/services/catalog"
	"homezy/services/user"
	"homezy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	localizer := i18n.NewLocalizer(cfg.DefaultLocale)
	tokens := utils.NewTokenIssuer(cfg.JWTSecret, utils.AccessTokenTTL)

	// services.
	userService := user.NewDefaultUserService(tokens, logger)
	if _, err := userService.AddAccount(cfg.DemoFullName, cfg.DemoEmail, "", cfg.DemoPassword); err != nil {
		logger.Sugar().Fatalf("main: failed to seed demo account: %v", err)
	}
	logger.Info("Demo account ready", zap.String("email", cfg.DemoEmail))

	router := routes.NewRouter(routes.Deps{
		Logger:            logger,
		Localizer:         localizer,
		UserService:       userService,
		Catalog:           catalog.NewService(),
		FrontendOrigin:    cfg.FrontendOrigin,
		MaxRequestsPerMin: cfg.MaxRequestsPerMin,
		TrustedProxies:    cfg.TrustedProxies,
	})

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
