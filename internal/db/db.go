package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-scheduler/internal/config"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Client{},
		&models.Address{},
		&models.Service{},
		&models.Schedule{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// shift is a closed 3-value set at the column level as well.
	db.Exec(`
        ALTER TABLE schedules
        DROP CONSTRAINT IF EXISTS chk_schedules_shift
    `)
	db.Exec(`
        ALTER TABLE schedules
        ADD CONSTRAINT chk_schedules_shift
        CHECK (shift IN ('morning', 'afternoon', 'evening'))
    `)

	return db
}
