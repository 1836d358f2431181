package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/barberia-elite/booking-api/internal/domain/appointment"
	"github.com/barberia-elite/booking-api/internal/httperr"
	"github.com/barberia-elite/booking-api/internal/httpresp"
	ucAppointment "github.com/barberia-elite/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC     *ucAppointment.CreateAppointment
	confirmUC    *ucAppointment.ConfirmAppointment
	cancelUC     *ucAppointment.CancelAppointment
	listByDateUC *ucAppointment.ListAppointmentsByDate
	listAllUC    *ucAppointment.ListAllAppointments
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	confirmUC *ucAppointment.ConfirmAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listAllUC *ucAppointment.ListAllAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		confirmUC:    confirmUC,
		cancelUC:     cancelUC,
		listByDateUC: listByDateUC,
		listAllUC:    listAllUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID        uint   `json:"barber_id"`
	ServiceID       uint   `json:"service_id"`
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerEmail   string `json:"customer_email"`
	AppointmentDate string `json:"appointment_date"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		BarberID:        req.BarberID,
		ServiceID:       req.ServiceID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		AppointmentDate: req.AppointmentDate,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message":     "appointment booked",
		"appointment": created,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "date and barber_id are required")
		return
	}

	barberID, err := parseUintQuery(c, "barber_id")
	if err != nil {
		httperr.BadRequest(c, "date and barber_id are required")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid date")
		return
	}

	appointments, err := h.listByDateUC.Execute(c.Request.Context(), date, barberID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	var filter domain.Filter

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid date")
			return
		}
		filter.Date = &date
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.Status(statusStr)
		filter.Status = &status
	}

	appointments, err := h.listAllUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, appointments)
}

// ======================================================
// CONFIRM / CANCEL
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	ap, err := h.confirmUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":     "appointment confirmed",
		"appointment": ap,
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":     "appointment cancelled",
		"appointment": ap,
	})
}
