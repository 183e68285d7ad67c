package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	appointmentRepo "hajz/database/repository/appointment"
	directoryRepo "hajz/database/repository/directory"
	"hajz/models"
	"hajz/services/schedule"
	"hajz/utils"
)

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// DefaultBookingService implements BookingService on top of the appointment
// store, the directory, and Redis for sessions and availability snapshots.
type DefaultBookingService struct {
	Directory       directoryRepo.DirectoryRepository
	Appointments    appointmentRepo.AppointmentRepository
	Sessions        SessionStore
	Cache           *redis.Client
	AvailabilityTTL time.Duration
	Refresh         RefreshNotifier
	Logger          *zap.Logger

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

// ListAppointments returns the confirmed appointments for a doctor+date
// straight from the store.
func (s *DefaultBookingService) ListAppointments(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	if doctorID == "" || date == "" {
		return nil, NewValidationError("doctor_id and date are required")
	}
	if !schedule.ValidDate(date) {
		return nil, NewValidationError("date must be formatted as YYYY-MM-DD")
	}
	appts, err := s.Appointments.GetByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	return appts, nil
}

// GetAvailability serves the free/taken partition cache-aside: a hit within
// the snapshot TTL is returned as-is, a miss triggers an authoritative read.
func (s *DefaultBookingService) GetAvailability(ctx context.Context, doctorID, date string) (*models.AvailabilityView, error) {
	key := utils.AvailabilityKey(doctorID, date)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var view models.AvailabilityView
			if err := json.Unmarshal([]byte(cached), &view); err == nil {
				return &view, nil
			}
		}
	}
	return s.refreshAvailability(ctx, doctorID, date)
}

// refreshAvailability reads the store, recomputes the partition, and
// overwrites the cached snapshot.
func (s *DefaultBookingService) refreshAvailability(ctx context.Context, doctorID, date string) (*models.AvailabilityView, error) {
	doctor, err := s.Directory.GetDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("load doctor: %w", err)
	}
	if doctor == nil {
		return nil, NewValidationError("unknown doctor")
	}
	appts, err := s.Appointments.GetByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("read appointments: %w", err)
	}

	view := ComputeAvailability(*doctor, date, appts, s.now())

	if s.Cache != nil {
		if data, err := json.Marshal(view); err == nil {
			if err := s.Cache.Set(ctx, utils.AvailabilityKey(doctorID, date), data, s.AvailabilityTTL).Err(); err != nil {
				s.logger().Warn("failed to cache availability snapshot",
					zap.String("doctorID", doctorID), zap.String("date", date), zap.Error(err))
			}
		}
	}
	return &view, nil
}

// CreateAppointment validates the reservation attempt and hands it to the
// store. The store's unique index is the arbiter for concurrent attempts on
// the same slot; this method never pre-checks availability, so there is no
// check-then-write window.
func (s *DefaultBookingService) CreateAppointment(ctx context.Context, input models.AppointmentInput) (*models.Appointment, error) {
	input.PatientName = strings.TrimSpace(input.PatientName)
	input.PatientPhone = strings.TrimSpace(input.PatientPhone)

	if input.PatientName == "" || input.PatientPhone == "" || input.DoctorID == "" ||
		input.Date == "" || input.TimeSlot == "" {
		return nil, NewValidationError("missing required booking data")
	}
	if !schedule.ValidDate(input.Date) {
		return nil, NewValidationError("date must be formatted as YYYY-MM-DD")
	}

	doctor, err := s.Directory.GetDoctorByID(ctx, input.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("load doctor: %w", err)
	}
	if doctor == nil {
		return nil, NewValidationError("unknown doctor")
	}
	if !doctor.HasSlot(input.TimeSlot) {
		return nil, NewValidationError("time slot is not part of the doctor's schedule")
	}

	appt := &models.Appointment{
		ID:           uuid.New().String(),
		DoctorID:     input.DoctorID,
		Date:         input.Date,
		TimeSlot:     input.TimeSlot,
		PatientName:  input.PatientName,
		PatientPhone: input.PatientPhone,
		CreatedAt:    s.now(),
	}

	if err := s.Appointments.Insert(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, NewConflictError("this time slot was just booked for that doctor and date")
		}
		return nil, fmt.Errorf("persist appointment: %w", err)
	}

	s.logger().Info("appointment created",
		zap.String("appointmentID", appt.ID),
		zap.String("doctorID", appt.DoctorID),
		zap.String("date", appt.Date),
		zap.String("slot", appt.TimeSlot))

	s.notifyBooked(ctx, appt.DoctorID, appt.Date)
	return appt, nil
}

// notifyBooked hands the invalidation of the cached availability snapshot to
// the background worker; if that fails the snapshot is dropped inline so the
// next read is authoritative either way.
func (s *DefaultBookingService) notifyBooked(ctx context.Context, doctorID, date string) {
	if s.Refresh != nil {
		if err := s.Refresh.NotifyBooked(doctorID, date); err == nil {
			return
		} else {
			s.logger().Warn("refresh enqueue failed, invalidating inline", zap.Error(err))
		}
	}
	if s.Cache != nil {
		if err := s.Cache.Del(ctx, utils.AvailabilityKey(doctorID, date)).Err(); err != nil {
			s.logger().Warn("failed to invalidate availability snapshot", zap.Error(err))
		}
	}
}

// InitiateSession opens a new booking session for the doctor and caches it
// under a fresh session id.
func (s *DefaultBookingService) InitiateSession(ctx context.Context, doctorID string) (*models.BookingSession, error) {
	if doctorID == "" {
		return nil, NewValidationError("doctor_id is required")
	}
	doctor, err := s.Directory.GetDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("load doctor: %w", err)
	}
	if doctor == nil {
		return nil, NewValidationError("unknown doctor")
	}

	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		Doctor:    *doctor,
		Status:    models.SessionIdle,
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectDate records the chosen date and returns the availability view for
// it. The session's taken set becomes a cache of this read.
func (s *DefaultBookingService) SelectDate(ctx context.Context, sessionID, date string) (*models.BookingSession, *models.AvailabilityView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if !schedule.ValidDate(date) {
		return nil, nil, NewValidationError("date must be formatted as YYYY-MM-DD")
	}
	if schedule.IsPastDate(date, s.now()) {
		return nil, nil, NewValidationError("cannot book a date before today")
	}

	view, err := s.GetAvailability(ctx, session.Doctor.ID, date)
	if err != nil {
		return nil, nil, err
	}

	session.Date = date
	session.Status = models.SessionIdle
	session.OutsideWorkingDays = view.OutsideWorkingDays
	session.LastError = ""
	session.ReplaceTaken(view.Taken)
	if err := s.saveSession(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, view, nil
}

// ConfirmBooking runs one reservation attempt for the session.
//
// The validation gate is hard: an attempt with missing fields never reaches
// the store and deterministically lands the session in the error state. On a
// conflict the taken set is refreshed from the store before control returns,
// so the lost slot is disabled for the next attempt. A successful session is
// terminal.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, sessionID, patientName, patientPhone, timeSlot string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	switch session.Status {
	case models.SessionSuccess:
		return session, NewValidationError("session already completed a booking")
	case models.SessionLoading:
		return session, NewValidationError("a booking attempt is already in flight for this session")
	}

	patientName = strings.TrimSpace(patientName)
	patientPhone = strings.TrimSpace(patientPhone)
	if patientName == "" || patientPhone == "" || session.Date == "" || timeSlot == "" {
		session.Status = models.SessionError
		session.LastError = "missing required booking data"
		if err := s.saveSession(ctx, session); err != nil {
			return nil, err
		}
		return session, NewValidationError("missing required booking data")
	}

	session.Status = models.SessionLoading
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	appt, err := s.CreateAppointment(ctx, models.AppointmentInput{
		PatientName:  patientName,
		PatientPhone: patientPhone,
		DoctorID:     session.Doctor.ID,
		Date:         session.Date,
		TimeSlot:     timeSlot,
	})

	switch {
	case err == nil:
		// Optimistic local update: mark the slot taken immediately
		// without waiting for a fresh read.
		session.MergeTaken(timeSlot)
		session.Status = models.SessionSuccess
		session.Booked = appt
		session.LastError = ""
		if saveErr := s.saveSession(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		return session, nil

	case IsConflict(err):
		// Mandatory refresh: the session must see the winner's booking
		// before the user can retry, otherwise the stale slot would
		// still look selectable.
		view, refreshErr := s.refreshAvailability(ctx, session.Doctor.ID, session.Date)
		if refreshErr != nil {
			session.Status = models.SessionError
			session.LastError = "booking failed, please retry"
			_ = s.saveSession(ctx, session)
			return session, fmt.Errorf("refresh after conflict: %w", refreshErr)
		}
		session.ReplaceTaken(view.Taken)
		session.Status = models.SessionError
		session.LastError = "this time slot was just booked, please pick another"
		if saveErr := s.saveSession(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		return session, err

	case IsValidation(err):
		session.Status = models.SessionError
		session.LastError = err.Error()
		if saveErr := s.saveSession(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		return session, err

	default:
		// Transport or unexpected store failure: retryable, says nothing
		// about the slot's state.
		session.Status = models.SessionError
		session.LastError = "unexpected error, please try again"
		if saveErr := s.saveSession(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		return session, err
	}
}

// CancelSession abandons the session. Nothing was persisted before the
// store accepted, so there is no compensating action.
func (s *DefaultBookingService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

func (s *DefaultBookingService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.Sessions.Get(ctx, sessionID)
}

func (s *DefaultBookingService) saveSession(ctx context.Context, session *models.BookingSession) error {
	return s.Sessions.Save(ctx, session)
}
