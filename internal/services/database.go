package services

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bank_portal_echo/internal/models"
)

// InitDB connects to the Postgres database at dsn
func InitDB(dsn string, log *zap.Logger) (*gorm.DB, error) {
	return Open(postgres.Open(dsn), log)
}

// Open connects through any gorm dialector and sizes the pool for the portal
func Open(dialector gorm.Dialector, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info("Database connection established", zap.String("dialect", dialector.Name()))
	return db, nil
}

// AutoMigrate creates or updates the case and task tables
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("Running database migrations")

	if err := db.AutoMigrate(
		&models.SupportCase{},
		&models.ScheduledTask{},
		&models.ScheduledTaskHistory{},
	); err != nil {
		return err
	}

	log.Info("Database migrations completed")
	return nil
}
