package service

import (
	"context"

	"github.com/picardie-nature/GeoNature-citizen/db"
	"github.com/picardie-nature/GeoNature-citizen/forms"
	"github.com/picardie-nature/GeoNature-citizen/models"
)

// SightService persists and lists species observations.
type SightService struct {
	db db.Database
}

func NewSightService(db db.Database) *SightService {
	return &SightService{db: db}
}

// Submit persists a validated observation. The observer is the username of
// the authenticated contributor, never taken from the payload.
func (s *SightService) Submit(ctx context.Context, form forms.SightForm, observer string) (models.Sighting, error) {
	count := form.Count
	if count == 0 {
		count = 1
	}

	return s.db.CreateSighting(ctx, db.CreateSighting{
		Species:      form.Species,
		Count:        count,
		Date:         form.Date,
		Latitude:     *form.Latitude,
		Longitude:    *form.Longitude,
		Municipality: form.Municipality,
		Comment:      form.Comment,
		Observer:     observer,
	})
}

// All returns every recorded observation, newest first.
func (s *SightService) All(ctx context.Context) ([]models.Sighting, error) {
	return s.db.AllSightings(ctx)
}
