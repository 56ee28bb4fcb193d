package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/justsurfingit/placement-portal/internal/auth"
	"github.com/justsurfingit/placement-portal/internal/config"
	"github.com/justsurfingit/placement-portal/internal/database"
	"github.com/justsurfingit/placement-portal/internal/handlers"
	"github.com/justsurfingit/placement-portal/internal/logging"
	"github.com/justsurfingit/placement-portal/internal/metrics"
	"github.com/justsurfingit/placement-portal/internal/server"
	"github.com/justsurfingit/placement-portal/internal/services"
)

func main() {
	// 1. Load Environment Variables
	if err := config.LoadDotEnv(); err != nil {
		logrus.WithError(err).Info("no .env file loaded, using process environment")
	}
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	// 2. Database Connection
	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	}, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	// 3. Services and token issuer
	issuer, err := auth.NewIssuer(cfg.JWTSecret, cfg.JWTExpiresIn)
	if err != nil {
		log.WithError(err).Fatal("failed to create token issuer")
	}
	companyService := services.NewCompanyService(database.NewCompanyStore(db))
	adminService := services.NewAdminService(database.NewAdminStore(db))

	// 4. Router
	router := server.NewRouter(server.Dependencies{
		CompanyHandler: handlers.NewCompanyHandler(companyService, log),
		AdminHandler:   handlers.NewAdminHandler(adminService, log),
		Verifier:       issuer,
		Metrics:        metrics.NewCollector(),
		Log:            log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := server.Run(ctx, ":"+cfg.Port, router, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
