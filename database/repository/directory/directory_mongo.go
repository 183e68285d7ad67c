package directoryRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"hajz/database"
	"hajz/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDirectoryRepo implements DirectoryRepository using MongoDB.
type MongoDirectoryRepo struct {
	hospitals *mongo.Collection
	clinics   *mongo.Collection
	doctors   *mongo.Collection
}

// NewMongoDirectoryRepo creates a new directory repository and ensures its
// indexes.
func NewMongoDirectoryRepo() DirectoryRepository {
	db := database.DB()
	repo := &MongoDirectoryRepo{
		hospitals: db.Collection("hospitals"),
		clinics:   db.Collection("clinics"),
		doctors:   db.Collection("doctors"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create directory indexes: %v\n", err)
	}
	return repo
}

func (r *MongoDirectoryRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.hospitals.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("hospital indexes: %w", err)
	}
	if _, err := r.clinics.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "hospital_id", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("clinic indexes: %w", err)
	}
	if _, err := r.doctors.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "clinic_id", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("doctor indexes: %w", err)
	}
	return nil
}

// ListHospitals returns the full hospital directory, newest first.
func (r *MongoDirectoryRepo) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.hospitals.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find hospitals: %w", err)
	}
	defer cursor.Close(ctx)

	var hospitals []models.Hospital
	if err := cursor.All(ctx, &hospitals); err != nil {
		return nil, fmt.Errorf("decode hospitals: %w", err)
	}
	return hospitals, nil
}

// InsertHospital persists a new hospital.
func (r *MongoDirectoryRepo) InsertHospital(ctx context.Context, h *models.Hospital) error {
	if _, err := r.hospitals.InsertOne(ctx, h); err != nil {
		return fmt.Errorf("insert hospital: %w", err)
	}
	return nil
}

// ListClinics returns the clinics attached to a hospital.
func (r *MongoDirectoryRepo) ListClinics(ctx context.Context, hospitalID string) ([]models.Clinic, error) {
	cursor, err := r.clinics.Find(ctx, bson.M{"hospital_id": hospitalID})
	if err != nil {
		return nil, fmt.Errorf("find clinics: %w", err)
	}
	defer cursor.Close(ctx)

	var clinics []models.Clinic
	if err := cursor.All(ctx, &clinics); err != nil {
		return nil, fmt.Errorf("decode clinics: %w", err)
	}
	return clinics, nil
}

// ListDoctors returns doctors filtered by clinic and/or specialty. The
// specialty filter is a case-insensitive substring match, mirroring the
// free-text search box on the explorer page.
func (r *MongoDirectoryRepo) ListDoctors(ctx context.Context, clinicID, specialty string) ([]models.Doctor, error) {
	filter := bson.M{}
	if clinicID != "" {
		filter["clinic_id"] = clinicID
	}
	if specialty != "" {
		filter["specialty"] = primitive.Regex{Pattern: regexp.QuoteMeta(specialty), Options: "i"}
	}

	cursor, err := r.doctors.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("decode doctors: %w", err)
	}
	return doctors, nil
}

// GetDoctorByID retrieves one doctor by its identifier.
func (r *MongoDirectoryRepo) GetDoctorByID(ctx context.Context, id string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.doctors.FindOne(ctx, bson.M{"id": id}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("get doctor by id: %w", err)
	}
	return &doctor, nil
}
