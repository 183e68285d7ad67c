package booking

import (
	"time"

	"hajz/models"
	"hajz/services/schedule"
)

// ComputeAvailability partitions the doctor's slots into free and taken for
// one calendar date. Taken slots are those named by an appointment for the
// same doctor and date; comparison is exact string equality. Both result
// lists preserve the doctor's original slot ordering (stable partition).
//
// The result is a point-in-time read. It is advisory to the client and is
// re-validated by the store at reservation time.
func ComputeAvailability(doctor models.Doctor, date string, appts []models.Appointment, now time.Time) models.AvailabilityView {
	booked := make(map[string]bool, len(appts))
	for _, a := range appts {
		if a.DoctorID == doctor.ID && a.Date == date {
			booked[a.TimeSlot] = true
		}
	}

	view := models.AvailabilityView{
		DoctorID:           doctor.ID,
		Date:               date,
		Free:               []string{},
		Taken:              []string{},
		OutsideWorkingDays: !schedule.DayAllowed(date, doctor.DaysAvailable),
		PastDate:           schedule.IsPastDate(date, now),
	}
	for _, slot := range doctor.TimeSlots {
		if booked[slot] {
			view.Taken = append(view.Taken, slot)
		} else {
			view.Free = append(view.Free, slot)
		}
	}
	return view
}
