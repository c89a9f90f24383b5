package service

import (
	"context"
	"testing"

	"github.com/picardie-nature/GeoNature-citizen/db"
	"github.com/picardie-nature/GeoNature-citizen/forms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coord(v float64) *float64 {
	return &v
}

func TestSubmit_AttributesObserver(t *testing.T) {
	ctx := context.Background()
	s := NewSightService(db.NewMemory())

	sighting, err := s.Submit(ctx, forms.SightForm{
		Species:   "Erithacus rubecula",
		Date:      "2026-08-29",
		Latitude:  coord(49.894),
		Longitude: coord(2.295),
	}, "alice")
	require.NoError(t, err)

	assert.Equal(t, "alice", sighting.Observer)
	assert.Equal(t, "Erithacus rubecula", sighting.Species)
	assert.Equal(t, 49.894, sighting.Latitude)
	assert.False(t, sighting.ID.IsZero())
}

func TestSubmit_ZeroCoordinatesPersisted(t *testing.T) {
	ctx := context.Background()
	s := NewSightService(db.NewMemory())

	// 0,0 is a legitimate position, distinct from a missing one
	sighting, err := s.Submit(ctx, forms.SightForm{
		Species:   "Sula sula",
		Date:      "2026-08-29",
		Latitude:  coord(0),
		Longitude: coord(0),
	}, "alice")
	require.NoError(t, err)

	assert.Equal(t, 0.0, sighting.Latitude)
	assert.Equal(t, 0.0, sighting.Longitude)
}

func TestSubmit_CountDefaultsToOne(t *testing.T) {
	ctx := context.Background()
	s := NewSightService(db.NewMemory())

	sighting, err := s.Submit(ctx, forms.SightForm{
		Species:   "Pica pica",
		Date:      "2026-08-29",
		Latitude:  coord(49.9),
		Longitude: coord(2.3),
	}, "bob")
	require.NoError(t, err)
	assert.Equal(t, 1, sighting.Count)

	sighting, err = s.Submit(ctx, forms.SightForm{
		Species:   "Pica pica",
		Date:      "2026-08-29",
		Latitude:  coord(49.9),
		Longitude: coord(2.3),
		Count:     4,
	}, "bob")
	require.NoError(t, err)
	assert.Equal(t, 4, sighting.Count)
}

func TestAll_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewSightService(db.NewMemory())

	first, err := s.Submit(ctx, forms.SightForm{
		Species: "Pica pica", Date: "2026-08-28", Latitude: coord(49.9), Longitude: coord(2.3),
	}, "alice")
	require.NoError(t, err)
	second, err := s.Submit(ctx, forms.SightForm{
		Species: "Turdus merula", Date: "2026-08-29", Latitude: coord(49.9), Longitude: coord(2.3),
	}, "alice")
	require.NoError(t, err)

	all, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}
