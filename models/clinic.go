package models

// Clinic groups doctors under a hospital department.
type Clinic struct {
	ID          string   `bson:"id" json:"id"`
	HospitalID  string   `bson:"hospital_id" json:"hospital_id"`
	Name        string   `bson:"name" json:"name"`
	Specialties []string `bson:"specialties,omitempty" json:"specialties,omitempty"`
}
