package booking

import (
	"context"

	"hajz/models"
)

// BookingService drives the reservation protocol: availability reads,
// reservation attempts, and the stateful booking session a client walks
// through. The session is the conflict resolver: after a lost race it
// re-reads availability before handing control back, so a stale slot can
// never be resubmitted unchallenged.
type BookingService interface {
	// ListAppointments returns the confirmed appointments for a doctor on
	// a date. Authoritative read, never served from cache.
	ListAppointments(ctx context.Context, doctorID, date string) ([]models.Appointment, error)

	// GetAvailability returns the free/taken partition for a doctor+date,
	// served cache-aside with a short TTL.
	GetAvailability(ctx context.Context, doctorID, date string) (*models.AvailabilityView, error)

	// CreateAppointment validates and atomically persists a reservation.
	// Returns ValidationError for bad input, ConflictError when the slot
	// is already held.
	CreateAppointment(ctx context.Context, input models.AppointmentInput) (*models.Appointment, error)

	// InitiateSession opens a booking session for one doctor.
	InitiateSession(ctx context.Context, doctorID string) (*models.BookingSession, error)

	// SelectDate records the chosen date on the session and returns the
	// availability view for it.
	SelectDate(ctx context.Context, sessionID, date string) (*models.BookingSession, *models.AvailabilityView, error)

	// ConfirmBooking runs the validation gate and the reservation attempt
	// for the session. On conflict the session's taken set is refreshed
	// from the store before the error is returned.
	ConfirmBooking(ctx context.Context, sessionID, patientName, patientPhone, timeSlot string) (*models.BookingSession, error)

	// CancelSession abandons a session with no side effect.
	CancelSession(ctx context.Context, sessionID string) error
}

// RefreshNotifier is told whenever a reservation is accepted so cached
// availability snapshots for that doctor+date can be dropped out-of-band.
type RefreshNotifier interface {
	NotifyBooked(doctorID, date string) error
}
