package db

import (
	"context"
	"sync"
	"time"

	"github.com/picardie-nature/GeoNature-citizen/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Memory is an in-process Database used in tests. It mirrors the unique
// username constraint the MongoDB implementation enforces with an index.
type Memory struct {
	mu        sync.RWMutex
	users     map[string]models.User
	sightings []models.Sighting
}

var _ Database = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{users: make(map[string]models.User)}
}

func (m *Memory) CreateUser(_ context.Context, user CreateUser) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.Username]; ok {
		return models.User{}, models.ErrDuplicateUser
	}

	dbuser := models.User{
		ID:        bson.NewObjectID(),
		CreatedAt: time.Now().Unix(),
		Username:  user.Username,
		Email:     user.Email,
		Name:      user.Name,
		Surname:   user.Surname,
		Password:  user.PwdHash,
	}
	m.users[user.Username] = dbuser

	return dbuser, nil
}

func (m *Memory) UsernameExists(_ context.Context, username string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.users[username]
	return ok, nil
}

func (m *Memory) FindByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[username]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}

	return user, nil
}

func (m *Memory) AllUsers(_ context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]models.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}

	return users, nil
}

func (m *Memory) DeleteUser(_ context.Context, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.users, username)
	return nil
}

func (m *Memory) CreateSighting(_ context.Context, sighting CreateSighting) (models.Sighting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dbsighting := models.Sighting{
		ID:           bson.NewObjectID(),
		CreatedAt:    time.Now().Unix(),
		Species:      sighting.Species,
		Count:        sighting.Count,
		Date:         sighting.Date,
		Latitude:     sighting.Latitude,
		Longitude:    sighting.Longitude,
		Municipality: sighting.Municipality,
		Comment:      sighting.Comment,
		Observer:     sighting.Observer,
	}
	m.sightings = append(m.sightings, dbsighting)

	return dbsighting, nil
}

func (m *Memory) AllSightings(_ context.Context) ([]models.Sighting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sightings := make([]models.Sighting, 0, len(m.sightings))
	for i := len(m.sightings) - 1; i >= 0; i-- {
		sightings = append(sightings, m.sightings[i])
	}

	return sightings, nil
}
