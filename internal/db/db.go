package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/barberia-elite/booking-api/internal/config"
	"github.com/barberia-elite/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barber{},
		&models.Service{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	if cfg.SeedData {
		seed(db)
	}

	return db
}

// seed inserts the minimum catalog a fresh install needs. Inserts are keyed
// on fixed ids so re-running is a no-op.
func seed(db *gorm.DB) {
	email := "barbero@barberiaelite.com"
	barbers := []models.Barber{
		{ID: 1, Name: "Barbero Principal", Email: &email, Phone: "+541100000000"},
	}

	services := []models.Service{
		{ID: 1, Name: "Corte Degradé", Description: "Corte de pelo con desvanecido perfecto", DurationMin: 40, Price: 28000},
		{ID: 2, Name: "Corte + Barba", Description: "Corte con degradé y perfilado completo de barba con navaja", DurationMin: 60, Price: 38000},
		{ID: 3, Name: "Perfilado de Barba", Description: "Diseño, recorte y delineado de barba a navaja y productos", DurationMin: 25, Price: 18000},
		{ID: 4, Name: "Corte Base", Description: "Corte uniforme sin degradé o estilo clásico definido", DurationMin: 30, Price: 25000},
		{ID: 5, Name: "Global (Coloración Completa)", Description: "Aplicación de color uniforme en toda la cabeza", DurationMin: 210, Price: 120000},
		{ID: 6, Name: "Mechas", Description: "Reflejos, mechas selectivas", DurationMin: 150, Price: 65000},
	}

	for _, b := range barbers {
		if err := db.Where("id = ?", b.ID).FirstOrCreate(&b).Error; err != nil {
			log.Warn().Err(err).Uint("barber_id", b.ID).Msg("seed barber failed")
		}
	}
	for _, s := range services {
		if err := db.Where("id = ?", s.ID).FirstOrCreate(&s).Error; err != nil {
			log.Warn().Err(err).Uint("service_id", s.ID).Msg("seed service failed")
		}
	}
}
