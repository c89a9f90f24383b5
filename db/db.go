package db

import (
	"context"

	"github.com/picardie-nature/GeoNature-citizen/models"
)

// Database persists user accounts and sightings.
type Database interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	AllUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user CreateUser) (models.User, error)

	CreateSighting(ctx context.Context, sighting CreateSighting) (models.Sighting, error)
	AllSightings(ctx context.Context) ([]models.Sighting, error)
}

// CreateUser carries the fields of a new account. PwdHash must already be
// hashed; the database layer never sees plaintext passwords.
type CreateUser struct {
	Username string
	Email    string
	Name     string
	Surname  string
	PwdHash  string
}

// CreateSighting carries the fields of a new observation.
type CreateSighting struct {
	Species      string
	Count        int
	Date         string
	Latitude     float64
	Longitude    float64
	Municipality string
	Comment      string
	Observer     string
}
