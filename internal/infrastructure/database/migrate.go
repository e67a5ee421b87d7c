package database

import (
	"errors"
	"fmt"
	"strings"

	"doctor-verification/config"
	"doctor-verification/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

// MigrateDirection selects which way RunMigrations moves the schema
type MigrateDirection string

const (
	MigrateUp   MigrateDirection = "up"
	MigrateDown MigrateDirection = "down"
)

// RunMigrations applies the embedded SQL migrations. Down rolls back one step.
func RunMigrations(cfg config.DBConfig, direction MigrateDirection) error {
	return RunMigrationsURL(cfg.MigrationURL(), direction)
}

// RunMigrationsURL is RunMigrations for a ready-made database URL.
// postgres:// and postgresql:// URLs are routed to the pgx/v5 driver.
func RunMigrationsURL(databaseURL string, direction MigrateDirection) error {
	for _, scheme := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(databaseURL, scheme) {
			databaseURL = "pgx5://" + strings.TrimPrefix(databaseURL, scheme)
			break
		}
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer m.Close()

	switch direction {
	case MigrateUp:
		err = m.Up()
	case MigrateDown:
		err = m.Steps(-1)
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", verr)
	}
	logrus.WithFields(logrus.Fields{
		"direction": direction,
		"version":   version,
		"dirty":     dirty,
	}).Info("Migrations applied")

	return nil
}
