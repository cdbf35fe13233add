package postgres

import (
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/config"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/logging"
	"github.com/Larryveryhandsome/taiwan-legal-ai/pkg/errors"
)

// Migrate applies all pending schema migrations from the configured
// migration directory.  A database already at the latest version is not an
// error.
func Migrate(cfg config.DatabaseConfig, log logging.Logger) error {
	url := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode)

	m, err := migrate.New("file://"+cfg.MigrationPath, url)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "opening migration source")
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "applying migrations")
	}

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "reading migration version")
	}
	log.Info("schema migrations applied",
		logging.Any("version", version),
		logging.Bool("dirty", dirty),
	)
	return nil
}
