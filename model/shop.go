package model

import (
	"time"
)

// Shop is a builder/tuner business profile. Each user owns at most one shop;
// shops own builds and receive leads.
type Shop struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Location    string    `json:"location,omitempty"`
	Specialties []string  `json:"specialties,omitempty"`
	Instagram   string    `json:"instagram,omitempty"`
	Website     string    `json:"website,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
