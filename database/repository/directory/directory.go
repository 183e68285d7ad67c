package directoryRepo

import (
	"context"

	"hajz/models"
)

// DirectoryRepository is the read store of hospitals, clinics and doctors.
// The booking core treats this data as given; only hospitals can be added
// through the public surface.
type DirectoryRepository interface {
	ListHospitals(ctx context.Context) ([]models.Hospital, error)
	InsertHospital(ctx context.Context, h *models.Hospital) error

	// ListClinics returns the clinics of one hospital.
	ListClinics(ctx context.Context, hospitalID string) ([]models.Clinic, error)

	// ListDoctors filters by clinic and/or specialty substring; empty
	// arguments mean no filter.
	ListDoctors(ctx context.Context, clinicID, specialty string) ([]models.Doctor, error)

	// GetDoctorByID retrieves one doctor, or nil when absent.
	GetDoctorByID(ctx context.Context, id string) (*models.Doctor, error)
}
