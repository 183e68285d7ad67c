// Package directory serves the hospital/clinic/doctor catalogue patients
// browse before booking. The booking core consumes this data read-only.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	directoryRepo "hajz/database/repository/directory"
	"hajz/models"
	"hajz/utils"
)

const hospitalsCacheKey = "directory:hospitals"

// DirectoryService exposes the catalogue and hospital registration.
type DirectoryService interface {
	ListHospitals(ctx context.Context) ([]models.Hospital, error)
	CreateHospital(ctx context.Context, input models.HospitalInput) (*models.Hospital, error)
	ListClinics(ctx context.Context, hospitalID string) ([]models.Clinic, error)
	ListDoctors(ctx context.Context, clinicID, specialty string) ([]models.Doctor, error)
	GetDoctor(ctx context.Context, id string) (*models.Doctor, error)

	// Subscribe registers a callback for directory change events.
	Subscribe(fn Subscriber)
}

// DefaultDirectoryService implements DirectoryService with a Redis-cached
// hospital list.
type DefaultDirectoryService struct {
	Repo     directoryRepo.DirectoryRepository
	Cache    *redis.Client
	CacheTTL time.Duration
	Logger   *zap.Logger

	broker eventBroker
}

func (s *DefaultDirectoryService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

// Subscribe registers a callback for directory change events.
func (s *DefaultDirectoryService) Subscribe(fn Subscriber) {
	s.broker.subscribe(fn)
}

// ListHospitals returns the hospital directory, cache-aside.
func (s *DefaultDirectoryService) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, hospitalsCacheKey).Result(); err == nil {
			var hospitals []models.Hospital
			if err := json.Unmarshal([]byte(cached), &hospitals); err == nil {
				return hospitals, nil
			}
		}
	}

	hospitals, err := s.Repo.ListHospitals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	if hospitals == nil {
		hospitals = []models.Hospital{}
	}

	if s.Cache != nil {
		if data, err := json.Marshal(hospitals); err == nil {
			if err := s.Cache.Set(ctx, hospitalsCacheKey, data, s.CacheTTL).Err(); err != nil {
				s.logger().Warn("failed to cache hospital list", zap.Error(err))
			}
		}
	}
	return hospitals, nil
}

// CreateHospital validates and persists a new hospital, drops the cached
// list, and publishes a HospitalCreated event to subscribers.
func (s *DefaultDirectoryService) CreateHospital(ctx context.Context, input models.HospitalInput) (*models.Hospital, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.City = strings.TrimSpace(input.City)
	input.Address = strings.TrimSpace(input.Address)
	if input.Name == "" || input.City == "" || input.Address == "" {
		return nil, fmt.Errorf("name, city and address are required")
	}

	hospital := &models.Hospital{
		ID:        uuid.New().String(),
		Name:      input.Name,
		City:      input.City,
		Address:   input.Address,
		Phone:     strings.TrimSpace(input.Phone),
		CreatedAt: time.Now(),
	}
	if err := s.Repo.InsertHospital(ctx, hospital); err != nil {
		return nil, fmt.Errorf("create hospital: %w", err)
	}

	if s.Cache != nil {
		if err := s.Cache.Del(ctx, hospitalsCacheKey).Err(); err != nil {
			s.logger().Warn("failed to drop hospital list cache", zap.Error(err))
		}
	}

	s.broker.publish(ChangeEvent{Kind: HospitalCreated, ID: hospital.ID, Name: hospital.Name})
	return hospital, nil
}

// ListClinics returns the clinics of one hospital.
func (s *DefaultDirectoryService) ListClinics(ctx context.Context, hospitalID string) ([]models.Clinic, error) {
	clinics, err := s.Repo.ListClinics(ctx, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("list clinics: %w", err)
	}
	if clinics == nil {
		clinics = []models.Clinic{}
	}
	return clinics, nil
}

// ListDoctors returns doctors filtered by clinic and specialty.
func (s *DefaultDirectoryService) ListDoctors(ctx context.Context, clinicID, specialty string) ([]models.Doctor, error) {
	doctors, err := s.Repo.ListDoctors(ctx, clinicID, strings.TrimSpace(specialty))
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}
	return doctors, nil
}

// GetDoctor retrieves one doctor, or nil when absent.
func (s *DefaultDirectoryService) GetDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	return s.Repo.GetDoctorByID(ctx, id)
}
