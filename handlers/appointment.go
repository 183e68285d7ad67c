package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hajz/models"
	"hajz/services/booking"
	"hajz/utils"
)

// AppointmentHandler serves the reservation wire surface: the authoritative
// appointment read used to build availability views, and the reservation
// attempt itself.
type AppointmentHandler struct {
	Service booking.BookingService
}

// NewAppointmentHandler creates a new appointment handler.
func NewAppointmentHandler(svc booking.BookingService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// ListAppointmentsHandler returns the confirmed appointments for a
// doctor+date.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	doctorID := c.Query("doctor_id")
	date := c.Query("date")

	appts, err := h.Service.ListAppointments(c.Request.Context(), doctorID, date)
	if err != nil {
		if booking.IsValidation(err) {
			utils.JSONError(c, http.StatusBadRequest, "invalid query", err.Error())
			return
		}
		getLogger(c).Error("failed to list appointments", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, appts)
}

// GetAvailabilityHandler returns the free/taken partition for a doctor+date.
func (h *AppointmentHandler) GetAvailabilityHandler(c *gin.Context) {
	doctorID := c.Query("doctor_id")
	date := c.Query("date")
	if doctorID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "doctor_id and date are required", "")
		return
	}

	view, err := h.Service.GetAvailability(c.Request.Context(), doctorID, date)
	if err != nil {
		if booking.IsValidation(err) {
			utils.JSONError(c, http.StatusBadRequest, "invalid query", err.Error())
			return
		}
		getLogger(c).Error("failed to compute availability", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// CreateAppointmentHandler attempts a reservation. 201 on success, 409 when
// the slot was won by a concurrent booker, 400 for invalid input.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	var input models.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Service.CreateAppointment(c.Request.Context(), input)
	if err != nil {
		switch {
		case booking.IsValidation(err):
			utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
		case booking.IsConflict(err):
			// Clients react to the status code alone: refresh
			// availability, disable the lost slot, re-choose.
			utils.JSONError(c, http.StatusConflict, "time slot already booked", err.Error())
		default:
			getLogger(c).Error("failed to create appointment", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to create appointment", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, appt)
}
