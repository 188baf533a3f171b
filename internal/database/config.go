package database

import (
	"fmt"

	"gastos/internal/config"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds database configuration
type Config struct {
	Driver         string
	URL            string
	MigrationsPath string
}

// NewConfig derives the database configuration from the application config.
func NewConfig(app *config.Config) (*Config, error) {
	cfg := &Config{
		Driver:         app.DatabaseDriver,
		URL:            app.DatabaseURL,
		MigrationsPath: app.MigrationsPath,
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverPostgres
	}
	if cfg.Driver != DriverPostgres && cfg.Driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if cfg.URL == "" {
		return nil, fmt.Errorf("database url is required")
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}
	return cfg, nil
}

// MigrationsSource returns the golang-migrate source URL for the migrations directory.
func (c *Config) MigrationsSource() string {
	return "file://" + c.MigrationsPath
}
