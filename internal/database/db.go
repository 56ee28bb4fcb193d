package database

import (
	"time"

	"github.com/juju/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/justsurfingit/placement-portal/internal/models"
)

type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Connect opens the Postgres pool and migrates the schema.
func Connect(cfg Config, log logrus.FieldLogger) (*gorm.DB, error) {
	db, err := Open(postgres.Open(cfg.DSN))
	if err != nil {
		return nil, errors.Annotate(err, "connecting to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Trace(err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	log.Info("database connection established")

	log.Info("running migrations")
	if err := Migrate(db); err != nil {
		return nil, errors.Trace(err)
	}
	return db, nil
}

// Open wraps gorm.Open with the settings every store relies on. Duplicate
// key violations come back as gorm.ErrDuplicatedKey.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return errors.Annotate(db.AutoMigrate(&models.Company{}, &models.Admin{}), "migrating schema")
}
