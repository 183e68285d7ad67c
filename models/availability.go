package models

// AvailabilityView is the free/taken partition of a doctor's slots for one
// calendar date. It is derived from the appointment records current at read
// time and is advisory: the store re-validates at reservation time.
//
// Free and Taken preserve the doctor's original TimeSlots ordering.
type AvailabilityView struct {
	DoctorID string   `json:"doctor_id"`
	Date     string   `json:"date"`
	Free     []string `json:"free"`
	Taken    []string `json:"taken"`

	// OutsideWorkingDays warns that the date does not fall on one of the
	// doctor's working weekdays. Advisory only, never blocks a booking.
	OutsideWorkingDays bool `json:"outside_working_days,omitempty"`

	// PastDate marks a date before the current calendar day. The slot
	// picker must not offer such dates.
	PastDate bool `json:"past_date,omitempty"`
}
