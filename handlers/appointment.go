package handlers

import (
	"errors"
	"net/http"
	"time"

	"occlusa/middleware"
	"occlusa/models"
	"occlusa/services/scheduling"
	"occlusa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the scheduling engine over HTTP.
type AppointmentHandler struct {
	Svc scheduling.SchedulingService
}

func NewAppointmentHandler(svc scheduling.SchedulingService) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc}
}

// respondSchedulingError maps the engine's typed errors to HTTP statuses.
// Unexpected failures are logged here and reported as a generic message.
func respondSchedulingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduling.ErrPermissionDenied):
		utils.JSONError(c, http.StatusForbidden, "Permission denied", err.Error())
	case errors.Is(err, scheduling.ErrInvalidTimeRange):
		utils.JSONError(c, http.StatusBadRequest, "Invalid time range", err.Error())
	case errors.Is(err, scheduling.ErrConflict):
		utils.JSONError(c, http.StatusConflict, "Scheduling conflict", err.Error())
	case errors.Is(err, scheduling.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Appointment not found", err.Error())
	default:
		utils.GetLogger().Error("scheduling operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{
			Message: "Internal Server Error",
			Details: "An unexpected error occurred. Please try again later.",
		})
	}
}

// CreateAppointmentHandler books a time range (structured shape).
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	userCtx, ok := middleware.GetUserContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	var input models.CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Svc.CreateAppointment(c.Request.Context(), input, userCtx)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// UpdateAppointmentHandler applies a partial update to an appointment.
func (h *AppointmentHandler) UpdateAppointmentHandler(c *gin.Context) {
	userCtx, ok := middleware.GetUserContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	var updates models.UpdateAppointmentInput
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Svc.UpdateAppointment(c.Request.Context(), c.Param("id"), updates, userCtx)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// CancelAppointmentHandler soft-deletes an appointment. The patient-app path
// carries no staff token, so the user context is optional here.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	var userCtx *models.UserContext
	if ctx, ok := middleware.GetUserContext(c); ok {
		userCtx = &ctx
	}

	if err := h.Svc.CancelAppointment(c.Request.Context(), c.Param("id"), userCtx); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// CreateSimpleAppointmentHandler books a discrete slot from the patient-app form.
func (h *AppointmentHandler) CreateSimpleAppointmentHandler(c *gin.Context) {
	var input models.SimpleAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, err := h.Svc.CreateSimpleAppointment(c.Request.Context(), input)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetDayScheduleHandler lists appointments for a date string, optionally for
// one provider name (the form shape's day-schedule view).
func (h *AppointmentHandler) GetDayScheduleHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	appts, err := h.Svc.GetAppointmentsForDate(c.Request.Context(), date, c.Query("provider"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// GetAppointmentsForDayHandler lists appointments starting on a calendar day,
// optionally for one provider id (the structured shape).
func (h *AppointmentHandler) GetAppointmentsForDayHandler(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	date, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		// Accept a bare date as well.
		date, err = time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date", "details": err.Error()})
			return
		}
	}

	appts, err := h.Svc.GetAppointmentsForDay(c.Request.Context(), date, c.Query("providerId"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// GetAvailableSlotsHandler returns a provider's open slot labels for a date.
func (h *AppointmentHandler) GetAvailableSlotsHandler(c *gin.Context) {
	provider := c.Query("provider")
	date := c.Query("date")
	if provider == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provider and date query parameters are required"})
		return
	}

	slots, err := h.Svc.GetAvailableSlots(c.Request.Context(), provider, date)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
