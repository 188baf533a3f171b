package main

import (
	"fmt"
	"os"

	"gastos/internal/config"
	"gastos/internal/database"
	"gastos/internal/i18n"
	"gastos/internal/logger"
	"gastos/internal/router"
	"gastos/internal/token"
	"gastos/internal/validator"
)

// @title           Gastos API
// @version         1.0
// @description     Gastos is a multi-tenant expense tracker: users own namespaces, namespaces own categories and categories own expenses.

// @host      localhost:8000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

func main() {
	logger.Init(os.Getenv("APP_ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.Open(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	engine := router.New(dbManager.DB(), router.Options{
		Tokens:      token.NewService(appConfig.Secret, appConfig.TokenTTL),
		Validator:   validator.New(nil),
		AdminAPIKey: appConfig.AdminAPIKey,
		Locale:      i18n.ParseTag(appConfig.DefaultLocale),
		Health:      dbManager,
	})

	if appConfig.AdminAPIKey == "" {
		log.Warn("ADMIN_API_KEY is not set; user provisioning is disabled")
	}
	log.Infof("Starting Gastos server on port %s (%s)", appConfig.Port, appConfig.Env)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return engine.Run(":" + appConfig.Port)
}
