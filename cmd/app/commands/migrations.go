package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/allisson/mailinglist/internal/config"
)

// RunMigrations applies the SQL migrations for the postgres and mysql drivers.
// The document store and in-memory drivers have no schema, so the command only
// logs and returns. Returns nil when there are no migrations to apply.
func RunMigrations(logger *slog.Logger, dbDriver, dbConnectionString string) error {
	logger.Info("running database migrations", slog.String("driver", dbDriver))

	var migrationsPath, databaseURL string
	switch dbDriver {
	case config.DriverMongoDB, config.DriverMemory:
		logger.Info("driver has no schema migrations, skipping", slog.String("driver", dbDriver))
		return nil
	case config.DriverPostgres:
		migrationsPath = "file://migrations/postgresql"
		databaseURL = dbConnectionString
	case config.DriverMySQL:
		migrationsPath = "file://migrations/mysql"
		databaseURL = dbConnectionString
		if !strings.HasPrefix(databaseURL, "mysql://") {
			databaseURL = "mysql://" + databaseURL
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", dbDriver)
	}

	m, err := migrate.New(migrationsPath, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}
