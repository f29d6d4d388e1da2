package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ChetanKaturde/smart-college/config"
	"github.com/ChetanKaturde/smart-college/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	// TranslateError lets unique-index violations surface as
	// gorm.ErrDuplicatedKey; the attendance guards depend on it.
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}

// Migrate runs AutoMigrate for every model. Split out so tests can run the
// same migration against their own database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Student{},
		&models.Teacher{},
		&models.Course{},
		&models.Subject{},
		&models.Enrollment{},
		&models.Timetable{},
		&models.TimetableSlot{},
		&models.AttendanceSession{},
		&models.AttendanceRecord{},
		&models.User{},
	)
}
