package models

import "time"

// Appointment is a confirmed reservation of one doctor slot on one calendar
// day. At most one appointment may exist per (doctor_id, date, time_slot);
// the store enforces that with a unique index. Appointments are immutable
// once created.
type Appointment struct {
	ID           string    `bson:"id" json:"id"`
	DoctorID     string    `bson:"doctor_id" json:"doctor_id"`
	Date         string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	TimeSlot     string    `bson:"time_slot" json:"time_slot"`
	PatientName  string    `bson:"patient_name" json:"patient_name"`
	PatientPhone string    `bson:"patient_phone" json:"patient_phone"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// AppointmentInput carries a reservation attempt as submitted by a client.
type AppointmentInput struct {
	PatientName  string `json:"patient_name"`
	PatientPhone string `json:"patient_phone"`
	DoctorID     string `json:"doctor_id"`
	Date         string `json:"date"`
	TimeSlot     string `json:"time_slot"`
}
