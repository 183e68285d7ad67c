package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hajz/models"
)

type memDirectoryRepo struct {
	hospitals []models.Hospital
	clinics   []models.Clinic
	doctors   []models.Doctor
}

func (m *memDirectoryRepo) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	return m.hospitals, nil
}

func (m *memDirectoryRepo) InsertHospital(ctx context.Context, h *models.Hospital) error {
	m.hospitals = append(m.hospitals, *h)
	return nil
}

func (m *memDirectoryRepo) ListClinics(ctx context.Context, hospitalID string) ([]models.Clinic, error) {
	var out []models.Clinic
	for _, c := range m.clinics {
		if c.HospitalID == hospitalID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memDirectoryRepo) ListDoctors(ctx context.Context, clinicID, specialty string) ([]models.Doctor, error) {
	var out []models.Doctor
	for _, d := range m.doctors {
		if clinicID != "" && d.ClinicID != clinicID {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (m *memDirectoryRepo) GetDoctorByID(ctx context.Context, id string) (*models.Doctor, error) {
	for _, d := range m.doctors {
		if d.ID == id {
			copied := d
			return &copied, nil
		}
	}
	return nil, nil
}

func newTestDirectory() (*DefaultDirectoryService, *memDirectoryRepo) {
	repo := &memDirectoryRepo{}
	return &DefaultDirectoryService{Repo: repo, Logger: zap.NewNop()}, repo
}

func TestCreateHospital(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Publishes One Event", func(t *testing.T) {
		svc, repo := newTestDirectory()

		var events []ChangeEvent
		svc.Subscribe(func(ev ChangeEvent) {
			events = append(events, ev)
		})

		h, err := svc.CreateHospital(ctx, models.HospitalInput{
			Name:    "  مستشفى الشفاء  ",
			City:    "Amman",
			Address: "Queen Rania St 12",
			Phone:   "065000000",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, h.ID)
		assert.Equal(t, "مستشفى الشفاء", h.Name, "input is trimmed before persisting")
		assert.Len(t, repo.hospitals, 1)

		require.Len(t, events, 1)
		assert.Equal(t, HospitalCreated, events[0].Kind)
		assert.Equal(t, h.ID, events[0].ID)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		svc, repo := newTestDirectory()

		var published int
		svc.Subscribe(func(ChangeEvent) { published++ })

		_, err := svc.CreateHospital(ctx, models.HospitalInput{Name: "X", City: " "})
		require.Error(t, err)
		assert.Empty(t, repo.hospitals)
		assert.Zero(t, published, "no event on a rejected create")
	})
}

func TestListEndpointsReturnEmptySlices(t *testing.T) {
	svc, _ := newTestDirectory()
	ctx := context.Background()

	hospitals, err := svc.ListHospitals(ctx)
	require.NoError(t, err)
	assert.NotNil(t, hospitals)

	clinics, err := svc.ListClinics(ctx, "h1")
	require.NoError(t, err)
	assert.NotNil(t, clinics)

	doctors, err := svc.ListDoctors(ctx, "c1", "")
	require.NoError(t, err)
	assert.NotNil(t, doctors)
}

func TestListClinicsFiltersByHospital(t *testing.T) {
	svc, repo := newTestDirectory()
	repo.clinics = []models.Clinic{
		{ID: "c1", HospitalID: "h1", Name: "Cardiology"},
		{ID: "c2", HospitalID: "h2", Name: "Dermatology"},
	}

	clinics, err := svc.ListClinics(context.Background(), "h1")
	require.NoError(t, err)
	require.Len(t, clinics, 1)
	assert.Equal(t, "c1", clinics[0].ID)
}
