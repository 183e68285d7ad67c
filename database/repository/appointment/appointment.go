package appointmentRepo

import (
	"context"
	"errors"

	"hajz/models"
)

// ErrSlotTaken is returned by Insert when another appointment already holds
// the same (doctor_id, date, time_slot) triple.
var ErrSlotTaken = errors.New("time slot already booked")

// AppointmentRepository is the durable store of confirmed appointments.
type AppointmentRepository interface {
	// Insert persists a new appointment. The store guarantees the
	// uniqueness of (doctor_id, date, time_slot) atomically with respect
	// to concurrent callers: of two simultaneous inserts for the same
	// triple exactly one succeeds and the other gets ErrSlotTaken.
	Insert(ctx context.Context, appt *models.Appointment) error

	// GetByDoctorAndDate returns all appointments for a doctor on a date,
	// oldest first.
	GetByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)

	// GetByID retrieves one appointment, or nil when absent.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
}
