package dto

import (
	"time"

	"github.com/barberia-elite/booking-api/internal/models"
)

// AppointmentDTO is the enriched shape returned to callers: the raw row plus
// the joined service name/price and barber name.
type AppointmentDTO struct {
	ID uint `json:"id"`

	BarberID  uint `json:"barber_id"`
	ServiceID uint `json:"service_id"`

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email,omitempty"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Duration  int       `json:"duration"`
	Status    string    `json:"status"`

	ServiceName  string  `json:"service_name"`
	ServicePrice float64 `json:"service_price"`
	BarberName   string  `json:"barber_name"`

	CreatedAt time.Time `json:"created_at"`
}

func FromAppointment(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:            ap.ID,
		BarberID:      ap.BarberID,
		ServiceID:     ap.ServiceID,
		CustomerName:  ap.CustomerName,
		CustomerPhone: ap.CustomerPhone,
		CustomerEmail: ap.CustomerEmail,
		StartTime:     ap.StartTime,
		EndTime:       ap.EndTime,
		Duration:      ap.DurationMin,
		Status:        ap.Status,
		ServiceName:   ap.Service.Name,
		ServicePrice:  ap.Service.Price,
		BarberName:    ap.Barber.Name,
		CreatedAt:     ap.CreatedAt,
	}
}

func FromAppointments(aps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, FromAppointment(&aps[i]))
	}
	return out
}
