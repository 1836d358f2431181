package stats

import (
	"context"
	"time"
)

// Derived read-only views over the appointment repository. Every value is a
// point-in-time snapshot; nothing here is cached.

type Summary struct {
	Today     int64 `json:"today"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
	Total     int64 `json:"total"`
}

type DailyStats struct {
	TotalAppointments int64   `json:"total_appointments"`
	Confirmed         int64   `json:"confirmed"`
	Pending           int64   `json:"pending"`
	Cancelled         int64   `json:"cancelled"`
	Revenue           float64 `json:"revenue"`
}

type BarberRank struct {
	Name             string `json:"name"`
	AppointmentCount int64  `json:"appointment_count"`
}

type ServiceRank struct {
	Name         string  `json:"name"`
	ServiceCount int64   `json:"service_count"`
	Revenue      float64 `json:"revenue"`
}

type Dashboard struct {
	Daily           DailyStats    `json:"daily"`
	PopularBarbers  []BarberRank  `json:"popular_barbers"`
	PopularServices []ServiceRank `json:"popular_services"`
	Timestamp       time.Time     `json:"timestamp"`
}

type Repository interface {
	// CountForDay counts non-cancelled appointments starting within
	// [dayStart, dayEnd).
	CountForDay(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
	) (int64, error)

	CountByStatus(
		ctx context.Context,
		status string,
	) (int64, error)

	DailyStats(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
	) (DailyStats, error)

	TopBarbers(
		ctx context.Context,
		since time.Time,
		limit int,
	) ([]BarberRank, error)

	TopServices(
		ctx context.Context,
		since time.Time,
		limit int,
	) ([]ServiceRank, error)
}
