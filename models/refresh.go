package models

// AvailabilityRefreshPayload identifies the doctor+date whose cached
// availability snapshot must be dropped after a confirmed booking.
type AvailabilityRefreshPayload struct {
	DoctorID string `json:"doctor_id"`
	Date     string `json:"date"`
}
