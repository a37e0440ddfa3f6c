package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mukeshkdas03/hostel-management-system/config"
	"github.com/mukeshkdas03/hostel-management-system/models"
)

// Connect opens the postgres database and migrates the schema. Only called
// when STORE_DRIVER=postgres; the default deployment runs on the in-memory
// store.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Credential{},
		&models.Student{},
		&models.MessAttendance{},
		&models.MessAuthority{},
		&models.HostelAuthority{},
		&models.Outpass{},
		&models.Complaint{},
		&models.MenuItem{},
		&models.Schedule{},
		&models.HostelImage{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
