package models

import "time"

// Hospital is a directory entry patients browse before picking a clinic.
type Hospital struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	City      string    `bson:"city" json:"city"`
	Address   string    `bson:"address" json:"address"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// HospitalInput carries the fields accepted when registering a hospital.
type HospitalInput struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
}
