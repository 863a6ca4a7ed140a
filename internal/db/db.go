package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bobthecat1708/barber-finder-api/internal/config"
	"github.com/bobthecat1708/barber-finder-api/internal/models"
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
		&models.BarberShop{},
		&models.Customer{},
		&models.Barber{},
		&models.Service{},
		&models.ScheduleEntry{},
		&models.Appointment{},
		&models.FavouriteShop{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := createSlotIndex(db); err != nil {
		log.Fatalf("failed to create booking slot index: %v", err)
	}

	return db
}

// createSlotIndex installs the last line of defense against double
// booking: at most one non-cancelled appointment per (barber, slot),
// whatever the transaction isolation does. AutoMigrate cannot express a
// partial index, so it is created by hand. The service must not start
// without it.
func createSlotIndex(db *gorm.DB) error {
	return db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_barber_slot
        ON appointments (barber_id, appointment_time)
        WHERE status <> 'cancelled'
    `).Error
}

// Close releases the underlying connection pool. Called once on shutdown.
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("failed to close database: %v", err)
	}
}
