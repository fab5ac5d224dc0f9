// Package db opens the relational store and keeps its schema up to date
package db

import (
	"bitwise74/chores-api/internal/model"
	"bitwise74/chores-api/pkg/util"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every table managed by AutoMigrate
var Models = []any{
	&model.Household{},
	&model.User{},
	&model.Account{},
	&model.Session{},
	&model.VerificationToken{},
	&model.ResendRequest{},
	&model.Chore{},
	&model.ChoreCompletion{},
	&model.Achievement{},
	&model.UserAchievement{},
	&model.Migration{},
}

// New opens the database configured under db.* and migrates it
func New() (*gorm.DB, error) {
	driver := viper.GetString("db.driver")
	dsn := viper.GetString("db.dsn")

	// If running in a docker container don't allow the sqlite file to be created.
	// The host should instead mount it using volumes
	if driver == "sqlite" && util.IsRunningInDocker() {
		if _, err := os.Stat(dsn); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("SQLite database file not mounted, please use docker volumes to mount it to %s", dsn)
		}
	}

	db, err := Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Open connects to the database without migrating it. Unique constraint
// failures are translated to gorm.ErrDuplicatedKey.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database, %w", driver, err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("failed to automigrate tables, %w", err)
	}

	for _, m := range dataMigrations {
		if err := applyOnce(db, m); err != nil {
			return err
		}
	}

	return nil
}

func applyOnce(db *gorm.DB, m dataMigration) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Migration{}).Where("name = ?", m.name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check migration %s, %w", m.name, err)
		}

		if count > 0 {
			return nil
		}

		if err := m.up(tx); err != nil {
			return fmt.Errorf("migration %s failed, %w", m.name, err)
		}

		zap.L().Info("Applied data migration", zap.String("name", m.name))

		return tx.Create(&model.Migration{Name: m.name}).Error
	})
}
