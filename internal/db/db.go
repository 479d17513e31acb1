package db

import (
	"log"
	"time"

	"github.com/navalhaapps/barbershop-api/internal/config"
	"github.com/navalhaapps/barbershop-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
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
		&models.User{},
		&models.Service{},
		&models.BarberSchedule{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Backstop for the slot uniqueness rule: two concurrent creates can
	// both pass the application-level conflict check, so the database must
	// refuse the second insert. Cancelled rows free the slot again.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uq_bookings_slot
        ON bookings (barber_id, date)
        WHERE status <> 'CANCELLED'
    `)

	return db
}
