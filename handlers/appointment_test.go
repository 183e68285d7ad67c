package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hajz/models"
	"hajz/services/booking"
)

// stubBookingService returns canned results so the handler's status-code
// mapping can be checked in isolation.
type stubBookingService struct {
	appts      []models.Appointment
	view       *models.AvailabilityView
	appt       *models.Appointment
	session    *models.BookingSession
	err        error
	confirmErr error
}

func (s *stubBookingService) ListAppointments(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	return s.appts, s.err
}

func (s *stubBookingService) GetAvailability(ctx context.Context, doctorID, date string) (*models.AvailabilityView, error) {
	return s.view, s.err
}

func (s *stubBookingService) CreateAppointment(ctx context.Context, input models.AppointmentInput) (*models.Appointment, error) {
	return s.appt, s.err
}

func (s *stubBookingService) InitiateSession(ctx context.Context, doctorID string) (*models.BookingSession, error) {
	return s.session, s.err
}

func (s *stubBookingService) SelectDate(ctx context.Context, sessionID, date string) (*models.BookingSession, *models.AvailabilityView, error) {
	return s.session, s.view, s.err
}

func (s *stubBookingService) ConfirmBooking(ctx context.Context, sessionID, patientName, patientPhone, timeSlot string) (*models.BookingSession, error) {
	return s.session, s.confirmErr
}

func (s *stubBookingService) CancelSession(ctx context.Context, sessionID string) error {
	return s.err
}

func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newAppointmentRouter(stub *stubBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAppointmentHandler(stub)
	r.GET("/api/appointments", h.ListAppointmentsHandler)
	r.GET("/api/availability", h.GetAvailabilityHandler)
	r.POST("/api/appointments", h.CreateAppointmentHandler)
	return r
}

func TestCreateAppointmentHandler(t *testing.T) {
	input := models.AppointmentInput{
		PatientName:  "Sara",
		PatientPhone: "0790000000",
		DoctorID:     "doc-1",
		Date:         "2026-09-08",
		TimeSlot:     "09:30",
	}

	t.Run("Created", func(t *testing.T) {
		stub := &stubBookingService{appt: &models.Appointment{ID: "a1", TimeSlot: "09:30"}}
		w := performRequest(newAppointmentRouter(stub), http.MethodPost, "/api/appointments", input)

		assert.Equal(t, http.StatusCreated, w.Code)
		var got models.Appointment
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "a1", got.ID)
	})

	t.Run("Conflict Maps To 409", func(t *testing.T) {
		stub := &stubBookingService{err: booking.NewConflictError("slot already held")}
		w := performRequest(newAppointmentRouter(stub), http.MethodPost, "/api/appointments", input)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "time slot already booked")
	})

	t.Run("Validation Maps To 400", func(t *testing.T) {
		stub := &stubBookingService{err: booking.NewValidationError("missing required booking data")}
		w := performRequest(newAppointmentRouter(stub), http.MethodPost, "/api/appointments", input)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		stub := &stubBookingService{}
		r := newAppointmentRouter(stub)
		req := httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListAppointmentsHandler(t *testing.T) {
	stub := &stubBookingService{appts: []models.Appointment{{ID: "a1"}}}
	w := performRequest(newAppointmentRouter(stub), http.MethodGet, "/api/appointments?doctor_id=doc-1&date=2026-09-08", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
}

func TestGetAvailabilityHandler(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		stub := &stubBookingService{view: &models.AvailabilityView{
			DoctorID: "doc-1", Date: "2026-09-08",
			Free: []string{"09:00"}, Taken: []string{"09:30"},
		}}
		w := performRequest(newAppointmentRouter(stub), http.MethodGet, "/api/availability?doctor_id=doc-1&date=2026-09-08", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var got models.AvailabilityView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, []string{"09:30"}, got.Taken)
	})

	t.Run("Missing Query", func(t *testing.T) {
		w := performRequest(newAppointmentRouter(&stubBookingService{}), http.MethodGet, "/api/availability?doctor_id=doc-1", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func newBookingRouter(stub *stubBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(stub, zap.NewNop())
	r.POST("/api/booking/session", h.InitiateSession)
	r.PUT("/api/booking/session/:sessionID", h.UpdateSession)
	r.POST("/api/booking/confirm", h.ConfirmBooking)
	r.DELETE("/api/booking/session/:sessionID", h.CancelSession)
	return r
}

func TestBookingSessionHandlers(t *testing.T) {
	session := &models.BookingSession{
		SessionID: "s1",
		Doctor:    models.Doctor{ID: "doc-1"},
		Status:    models.SessionIdle,
	}

	t.Run("Initiate", func(t *testing.T) {
		stub := &stubBookingService{session: session}
		w := performRequest(newBookingRouter(stub), http.MethodPost, "/api/booking/session", gin.H{"doctor_id": "doc-1"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"sessionId":"s1"`)
	})

	t.Run("Update Unknown Session", func(t *testing.T) {
		stub := &stubBookingService{err: booking.ErrSessionNotFound}
		w := performRequest(newBookingRouter(stub), http.MethodPut, "/api/booking/session/nope", gin.H{"date": "2026-09-08"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Update Returns Session And Availability", func(t *testing.T) {
		stub := &stubBookingService{
			session: session,
			view:    &models.AvailabilityView{Free: []string{"09:00"}, Taken: []string{}},
		}
		w := performRequest(newBookingRouter(stub), http.MethodPut, "/api/booking/session/s1", gin.H{"date": "2026-09-08"})

		assert.Equal(t, http.StatusOK, w.Code)
		var got struct {
			Session      models.BookingSession   `json:"session"`
			Availability models.AvailabilityView `json:"availability"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "s1", got.Session.SessionID)
		assert.Equal(t, []string{"09:00"}, got.Availability.Free)
	})

	t.Run("Confirm Conflict Carries Refreshed Session", func(t *testing.T) {
		refreshed := &models.BookingSession{
			SessionID:  "s1",
			Status:     models.SessionError,
			TakenSlots: []string{"09:30"},
			LastError:  "this time slot was just booked, please pick another",
		}
		stub := &stubBookingService{session: refreshed, confirmErr: booking.NewConflictError("lost the race")}
		w := performRequest(newBookingRouter(stub), http.MethodPost, "/api/booking/confirm", gin.H{
			"sessionID":     "s1",
			"patient_name":  "Sara",
			"patient_phone": "0790000000",
			"time_slot":     "09:30",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		var got struct {
			Error   string                `json:"error"`
			Session models.BookingSession `json:"session"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, models.SessionError, got.Session.Status)
		assert.Contains(t, got.Session.TakenSlots, "09:30", "the 409 carries the refreshed taken set")
	})

	t.Run("Confirm Success", func(t *testing.T) {
		done := &models.BookingSession{
			SessionID: "s1",
			Status:    models.SessionSuccess,
			Booked:    &models.Appointment{ID: "a1", TimeSlot: "09:30"},
		}
		stub := &stubBookingService{session: done}
		w := performRequest(newBookingRouter(stub), http.MethodPost, "/api/booking/confirm", gin.H{
			"sessionID":     "s1",
			"patient_name":  "Sara",
			"patient_phone": "0790000000",
			"time_slot":     "09:30",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"success"`)
	})

	t.Run("Cancel", func(t *testing.T) {
		stub := &stubBookingService{}
		w := performRequest(newBookingRouter(stub), http.MethodDelete, "/api/booking/session/s1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "cancelled")
	})
}
