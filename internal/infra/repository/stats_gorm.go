package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domainAppointment "github.com/barberia-elite/booking-api/internal/domain/appointment"
	"github.com/barberia-elite/booking-api/internal/domain/stats"
	"github.com/barberia-elite/booking-api/internal/models"
)

type StatsGormRepository struct {
	db *gorm.DB
}

func NewStatsGormRepository(db *gorm.DB) *StatsGormRepository {
	return &StatsGormRepository{db: db}
}

func (r *StatsGormRepository) CountForDay(
	ctx context.Context,
	dayStart time.Time,
	dayEnd time.Time,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"start_time >= ? AND start_time < ? AND status <> ?",
			dayStart,
			dayEnd,
			string(domainAppointment.StatusCancelled),
		).
		Count(&count).Error

	return count, err
}

func (r *StatsGormRepository) CountByStatus(
	ctx context.Context,
	status string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("status = ?", status).
		Count(&count).Error

	return count, err
}

func (r *StatsGormRepository) DailyStats(
	ctx context.Context,
	dayStart time.Time,
	dayEnd time.Time,
) (stats.DailyStats, error) {

	var daily stats.DailyStats
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select(`
			COUNT(*) AS total_appointments,
			COALESCE(SUM(CASE WHEN appointments.status = 'confirmed' THEN 1 ELSE 0 END), 0) AS confirmed,
			COALESCE(SUM(CASE WHEN appointments.status = 'pending' THEN 1 ELSE 0 END), 0) AS pending,
			COALESCE(SUM(CASE WHEN appointments.status = 'cancelled' THEN 1 ELSE 0 END), 0) AS cancelled,
			COALESCE(SUM(services.price), 0) AS revenue`).
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("appointments.start_time >= ? AND appointments.start_time < ?", dayStart, dayEnd).
		Scan(&daily).Error

	return daily, err
}

func (r *StatsGormRepository) TopBarbers(
	ctx context.Context,
	since time.Time,
	limit int,
) ([]stats.BarberRank, error) {

	var ranks []stats.BarberRank
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("barbers.name AS name, COUNT(*) AS appointment_count").
		Joins("JOIN barbers ON barbers.id = appointments.barber_id").
		Where("appointments.start_time >= ?", since).
		Group("barbers.id, barbers.name").
		Order("appointment_count DESC").
		Limit(limit).
		Scan(&ranks).Error

	return ranks, err
}

func (r *StatsGormRepository) TopServices(
	ctx context.Context,
	since time.Time,
	limit int,
) ([]stats.ServiceRank, error) {

	var ranks []stats.ServiceRank
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("services.name AS name, COUNT(*) AS service_count, COALESCE(SUM(services.price), 0) AS revenue").
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("appointments.start_time >= ?", since).
		Group("services.id, services.name").
		Order("service_count DESC").
		Limit(limit).
		Scan(&ranks).Error

	return ranks, err
}

// Compile-time check
var _ stats.Repository = (*StatsGormRepository)(nil)
