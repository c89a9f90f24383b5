package db

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/picardie-nature/GeoNature-citizen/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// verify MongoDB implements the database interface at compile time
var _ Database = (*MongoDB)(nil)

const (
	USER_COLL  = "users"
	SIGHT_COLL = "sightings"
)

type MongoDB struct {
	client *mongo.Client
	db     string
}

// NewMongo connects to the given MongoDB instance and ensures the unique
// username index exists. The index, not the pre-insert check, is what
// guarantees username uniqueness under concurrent registration.
func NewMongo(ctx context.Context, conn string, db string) (*MongoDB, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(conn))
	if err != nil {
		return nil, err
	}

	m := &MongoDB{client: client, db: db}
	if err := m.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *MongoDB) ensureIndexes(ctx context.Context) error {
	_, err := m.users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (m *MongoDB) users() *mongo.Collection {
	return m.client.Database(m.db).Collection(USER_COLL)
}

func (m *MongoDB) sightings() *mongo.Collection {
	return m.client.Database(m.db).Collection(SIGHT_COLL)
}

func (m *MongoDB) CreateUser(ctx context.Context, user CreateUser) (models.User, error) {
	dbuser := models.User{
		CreatedAt: time.Now().Unix(),
		Username:  user.Username,
		Email:     strings.ToLower(strings.TrimSpace(user.Email)),
		Name:      user.Name,
		Surname:   user.Surname,
		Password:  user.PwdHash,
	}

	result, err := m.users().InsertOne(ctx, dbuser)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, models.ErrDuplicateUser
		}
		slog.Error("failed to insert user", "error", err, "username", user.Username)
		return models.User{}, err
	}

	dbuser.ID = result.InsertedID.(bson.ObjectID)
	return dbuser, nil
}

func (m *MongoDB) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := m.FindByUsername(ctx, username)
	if errors.Is(err, models.ErrUserNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

func (m *MongoDB) FindByUsername(ctx context.Context, username string) (user models.User, err error) {
	err = m.users().FindOne(ctx, bson.D{{Key: "username", Value: username}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user, models.ErrUserNotFound
	}

	return user, err
}

func (m *MongoDB) AllUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := m.users().Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (m *MongoDB) CreateSighting(ctx context.Context, sighting CreateSighting) (models.Sighting, error) {
	dbsighting := models.Sighting{
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

	result, err := m.sightings().InsertOne(ctx, dbsighting)
	if err != nil {
		slog.Error("failed to insert sighting", "error", err, "observer", sighting.Observer)
		return models.Sighting{}, err
	}

	dbsighting.ID = result.InsertedID.(bson.ObjectID)
	return dbsighting, nil
}

func (m *MongoDB) AllSightings(ctx context.Context) ([]models.Sighting, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := m.sightings().Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	sightings := []models.Sighting{}
	if err := cursor.All(ctx, &sightings); err != nil {
		return nil, err
	}

	return sightings, nil
}
