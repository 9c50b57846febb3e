package app

import (
	"fmt"
	"time"

	"niddle_backend/internal/auth"
	"niddle_backend/internal/config"
	"niddle_backend/internal/database"
	"niddle_backend/internal/email"
	"niddle_backend/internal/handlers"
	"niddle_backend/internal/logger"
	"niddle_backend/internal/routes"
	"niddle_backend/internal/services"
	"niddle_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Run boots the whole application: config, logging, database, mail,
// storage, services and the HTTP server.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.Database.Driver, cfg.Database.DSN, nil)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	auth.Configure(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)

	store, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	// Without an SMTP host mail is recorded in memory, which keeps local
	// development and CI runnable.
	var mailer email.Provider
	if cfg.Email.SMTPHost != "" {
		mailer = email.NewSMTPProvider(cfg)
	} else {
		logger.With("component", "email").Warn("no smtp host configured, using mock mail provider")
		mailer = email.NewMockProvider()
	}

	svc := services.NewServiceContainer(store, mailer)
	h := handlers.NewAppHandlers(svc, store)
	router := routes.SetupRouter(db, h)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.With("component", "server").Info("listening", "addr", addr)
	return router.Run(addr)
}
