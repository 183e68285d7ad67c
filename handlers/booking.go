package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hajz/services/booking"
	"hajz/utils"
)

// BookingHandler serves the stateful booking session endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// InitiateSession opens a booking session for a doctor.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		DoctorID string `json:"doctor_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.InitiateSession(c.Request.Context(), input.DoctorID)
	if err != nil {
		if booking.IsValidation(err) {
			utils.JSONError(c, http.StatusBadRequest, "cannot open booking session", err.Error())
			return
		}
		h.Logger.Error("failed to open booking session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to open booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSession selects a date on the session and returns the availability
// view for it.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, view, err := h.Service.SelectDate(c.Request.Context(), sessionID, input.Date)
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
			return
		}
		if booking.IsValidation(err) {
			utils.JSONError(c, http.StatusBadRequest, "cannot select date", err.Error())
			return
		}
		h.Logger.Error("failed to update booking session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update booking session", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":      session,
		"availability": view,
	})
}

// ConfirmBooking runs the reservation attempt for the session. The refreshed
// session rides along with the 409 so a client can disable the lost slot
// without another round trip.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var input struct {
		SessionID    string `json:"sessionID"`
		PatientName  string `json:"patient_name"`
		PatientPhone string `json:"patient_phone"`
		TimeSlot     string `json:"time_slot"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.ConfirmBooking(c.Request.Context(),
		input.SessionID, input.PatientName, input.PatientPhone, input.TimeSlot)
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
			return
		}
		switch {
		case booking.IsConflict(err):
			c.JSON(http.StatusConflict, gin.H{
				"error":   "time slot already booked",
				"session": session,
			})
		case booking.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   err.Error(),
				"session": session,
			})
		default:
			h.Logger.Error("booking confirmation failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "booking confirmation failed", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session": session,
		"booking": session.Booked,
	})
}

// CancelSession abandons a booking session with no side effect.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Service.CancelSession(c.Request.Context(), sessionID); err != nil {
		h.Logger.Error("failed to cancel booking session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
