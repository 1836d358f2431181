package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberia-elite/booking-api/internal/audit"
	"github.com/barberia-elite/booking-api/internal/httperr"
	"github.com/barberia-elite/booking-api/internal/httpresp"
	"github.com/barberia-elite/booking-api/internal/middleware"
	"github.com/barberia-elite/booking-api/internal/models"
	"github.com/barberia-elite/booking-api/internal/storage"
)

type BarberHandler struct {
	db     *gorm.DB
	images storage.ImageStore
	audit  *audit.Dispatcher
}

func NewBarberHandler(
	db *gorm.DB,
	images storage.ImageStore,
	auditDispatcher *audit.Dispatcher,
) *BarberHandler {
	return &BarberHandler{
		db:     db,
		images: images,
		audit:  auditDispatcher,
	}
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("name ASC").Find(&barbers).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "barber not found")
			return
		}
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, barber)
}

// Create accepts a multipart form: name (required), email, phone and an
// optional image file.
func (h *BarberHandler) Create(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		httperr.BadRequest(c, "name is required")
		return
	}

	barber := models.Barber{
		Name:  name,
		Phone: strings.TrimSpace(c.PostForm("phone")),
	}

	if email := strings.ToLower(strings.TrimSpace(c.PostForm("email"))); email != "" {
		barber.Email = &email
	}

	if url, ok := h.uploadImage(c); ok {
		barber.ImageURL = url
	} else if c.IsAborted() {
		return
	}

	if err := h.db.Create(&barber).Error; err != nil {
		if isDuplicate(err) {
			httperr.Conflict(c, "email already in use")
			return
		}
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    middleware.AdminActor(c),
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: &barber.ID,
	})

	httpresp.Created(c, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "barber not found")
			return
		}
		httperr.Respond(c, err)
		return
	}

	if name := strings.TrimSpace(c.PostForm("name")); name != "" {
		barber.Name = name
	}
	if phone := strings.TrimSpace(c.PostForm("phone")); phone != "" {
		barber.Phone = phone
	}
	if email := strings.ToLower(strings.TrimSpace(c.PostForm("email"))); email != "" {
		barber.Email = &email
	}

	oldImage := barber.ImageURL
	if url, ok := h.uploadImage(c); ok {
		barber.ImageURL = url
	} else if c.IsAborted() {
		return
	}

	if err := h.db.Save(&barber).Error; err != nil {
		if isDuplicate(err) {
			httperr.Conflict(c, "email already in use")
			return
		}
		httperr.Respond(c, err)
		return
	}

	// Replaced picture: drop the previous object, best effort.
	if oldImage != "" && oldImage != barber.ImageURL {
		_ = h.images.Delete(c.Request.Context(), oldImage)
	}

	h.audit.Dispatch(audit.Event{
		Actor:    middleware.AdminActor(c),
		Action:   "barber_updated",
		Entity:   "barber",
		EntityID: &barber.ID,
	})

	httpresp.OK(c, barber)
}

// Delete removes the barber, its stored image and, through the schema
// cascade, every appointment referencing it. The number of appointments
// destroyed is surfaced so the caller knows what the cascade took.
func (h *BarberHandler) Delete(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "barber not found")
			return
		}
		httperr.Respond(c, err)
		return
	}

	var removed int64
	h.db.Model(&models.Appointment{}).Where("barber_id = ?", id).Count(&removed)

	if err := h.db.Delete(&barber).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	if barber.ImageURL != "" {
		_ = h.images.Delete(c.Request.Context(), barber.ImageURL)
	}

	h.audit.Dispatch(audit.Event{
		Actor:    middleware.AdminActor(c),
		Action:   "barber_deleted",
		Entity:   "barber",
		EntityID: &barber.ID,
		Metadata: map[string]any{"appointments_removed": removed},
	})

	httpresp.OK(c, gin.H{
		"message":              "barber deleted",
		"appointments_removed": removed,
	})
}

// uploadImage stores the optional "image" form file. Returns (url, true) on
// upload, ("", false) when no file was sent; aborts the request on failure.
func (h *BarberHandler) uploadImage(c *gin.Context) (string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", false
	}

	if !h.images.Enabled() {
		httperr.BadRequest(c, "image storage is not configured")
		c.Abort()
		return "", false
	}

	f, err := file.Open()
	if err != nil {
		httperr.Respond(c, err)
		c.Abort()
		return "", false
	}
	defer f.Close()

	url, err := h.images.UploadBarberImage(c.Request.Context(), f)
	if err != nil {
		httperr.BadRequest(c, "could not process image")
		c.Abort()
		return "", false
	}

	return url, true
}
